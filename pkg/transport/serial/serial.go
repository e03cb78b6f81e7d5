// Package serial talks to a radio microcontroller over a serial line. The
// firmware prints one JSON object per line for every decoded frame and
// accepts {"code":...} lines to transmit.
package serial

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"io"
	"sync"
	"time"

	"github.com/tarm/serial"
	"go.uber.org/zap"
	"liyu1981.xyz/rf-code-hub/pkg/common"
	"liyu1981.xyz/rf-code-hub/pkg/transport"
)

var ErrNotOpen = errors.New("serial transport not open")

type Config struct {
	Device      string
	Baud        int
	ReadTimeout time.Duration
}

func ConfigFromEnv() Config {
	return Config{
		Device: common.GetEnvOr(common.EnvKeyRFSerialDevice, "/dev/ttyUSB0"),
		Baud:   common.GetEnvInt(common.EnvKeyRFSerialBaud, 9600),
	}
}

type Transport struct {
	cfg    Config
	open   func(*serial.Config) (io.ReadWriteCloser, error)
	logger *zap.Logger

	mu     sync.Mutex
	port   io.ReadWriteCloser
	events chan []byte
	done   chan struct{}
	once   sync.Once
}

func New(cfg Config) *Transport {
	return newTransport(cfg, func(c *serial.Config) (io.ReadWriteCloser, error) {
		return serial.OpenPort(c)
	})
}

func newTransport(cfg Config, open func(*serial.Config) (io.ReadWriteCloser, error)) *Transport {
	return &Transport{
		cfg:  cfg,
		open: open,
		logger: common.GetLoggerWith(
			common.LoggerNameTransport,
			zap.String("kind", "serial"),
			zap.String("device", cfg.Device),
		),
		events: make(chan []byte, 64),
		done:   make(chan struct{}),
	}
}

func (t *Transport) Open(ctx context.Context) error {
	port, err := t.open(&serial.Config{Name: t.cfg.Device, Baud: t.cfg.Baud, ReadTimeout: t.cfg.ReadTimeout})
	if err != nil {
		return err
	}

	t.mu.Lock()
	t.port = port
	t.mu.Unlock()

	t.logger.Info("Serial port opened", zap.Int("baud", t.cfg.Baud))
	go t.readLoop(ctx, port)
	return nil
}

// readLoop forwards every non-blank line. Validation is the ingestor's job,
// so garbage lines travel on and get rejected there.
func (t *Transport) readLoop(ctx context.Context, port io.Reader) {
	defer close(t.events)

	scanner := bufio.NewScanner(port)
	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		frame := make([]byte, len(line))
		copy(frame, line)

		select {
		case t.events <- frame:
		case <-ctx.Done():
			return
		case <-t.done:
			return
		}
	}

	if err := scanner.Err(); err != nil {
		select {
		case <-t.done:
		default:
			t.logger.Error("Serial read failed", zap.Error(err))
		}
		return
	}
	t.logger.Warn("Serial port reached EOF")
}

func (t *Transport) Events() <-chan []byte {
	return t.events
}

func (t *Transport) Send(ctx context.Context, code string) error {
	frame, err := transport.EncodeSend(code)
	if err != nil {
		return err
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if t.port == nil {
		return ErrNotOpen
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := t.port.Write(append(frame, '\n')); err != nil {
		return err
	}
	t.logger.Debug("Sent code", zap.String("code", code))
	return nil
}

func (t *Transport) Close() error {
	var err error
	t.once.Do(func() {
		close(t.done)
		t.mu.Lock()
		defer t.mu.Unlock()
		if t.port != nil {
			err = t.port.Close()
		}
	})
	return err
}
