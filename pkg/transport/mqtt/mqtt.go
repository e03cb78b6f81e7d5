// Package mqtt receives codes from radio gateways (rtl_433, OpenMQTTGateway,
// Tasmota RF bridges) that publish decoded frames to an MQTT topic, and asks
// them to transmit by publishing to another.
package mqtt

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	pahomqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"liyu1981.xyz/rf-code-hub/pkg/common"
	"liyu1981.xyz/rf-code-hub/pkg/transport"
)

const (
	connectTimeout    = 10 * time.Second
	publishTimeout    = 5 * time.Second
	disconnectQuiesce = 250
	qos               = 1
)

var ErrNotOpen = errors.New("mqtt transport not open")

type Config struct {
	Broker   string
	ClientID string
	Username string
	Password string
	RxTopic  string
	TxTopic  string
}

func ConfigFromEnv() Config {
	return Config{
		Broker:   common.GetEnvOr(common.EnvKeyRFMqttBroker, "tcp://localhost:1883"),
		ClientID: "rfhub-" + uuid.NewString()[:8],
		Username: common.GetEnvOr(common.EnvKeyRFMqttUsername, ""),
		Password: common.GetEnvOr(common.EnvKeyRFMqttPassword, ""),
		RxTopic:  common.GetEnvOr(common.EnvKeyRFMqttRxTopic, "rf/rx"),
		TxTopic:  common.GetEnvOr(common.EnvKeyRFMqttTxTopic, "rf/tx"),
	}
}

// broker is the slice of paho the transport uses.
type broker interface {
	Connect() error
	Subscribe(topic string, handler func(topic string, payload []byte)) error
	Publish(topic string, payload []byte) error
	Disconnect()
}

type Transport struct {
	cfg    Config
	broker broker
	logger *zap.Logger

	mu     sync.RWMutex
	opened bool
	closed bool
	events chan []byte
	done   chan struct{}
	once   sync.Once
}

func New(cfg Config) *Transport {
	return newTransport(cfg, newPahoBroker(cfg))
}

func newTransport(cfg Config, b broker) *Transport {
	return &Transport{
		cfg:    cfg,
		broker: b,
		logger: common.GetLoggerWith(
			common.LoggerNameTransport,
			zap.String("kind", "mqtt"),
			zap.String("broker", cfg.Broker),
		),
		events: make(chan []byte, 64),
		done:   make(chan struct{}),
	}
}

func (t *Transport) Open(ctx context.Context) error {
	if err := t.broker.Connect(); err != nil {
		return err
	}
	if err := t.broker.Subscribe(t.cfg.RxTopic, t.onMessage(ctx)); err != nil {
		t.broker.Disconnect()
		return err
	}

	t.mu.Lock()
	t.opened = true
	t.mu.Unlock()

	t.logger.Info("Subscribed to code topic", zap.String("topic", t.cfg.RxTopic))
	return nil
}

// onMessage runs on paho's goroutines. The read lock keeps Close from
// closing the channel under a pending send.
func (t *Transport) onMessage(ctx context.Context) func(string, []byte) {
	return func(topic string, payload []byte) {
		t.mu.RLock()
		defer t.mu.RUnlock()
		if t.closed {
			return
		}

		frame := make([]byte, len(payload))
		copy(frame, payload)

		select {
		case t.events <- frame:
		case <-ctx.Done():
		case <-t.done:
		}
	}
}

func (t *Transport) Events() <-chan []byte {
	return t.events
}

func (t *Transport) Send(ctx context.Context, code string) error {
	t.mu.RLock()
	opened, closed := t.opened, t.closed
	t.mu.RUnlock()
	if !opened || closed {
		return ErrNotOpen
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	frame, err := transport.EncodeSend(code)
	if err != nil {
		return err
	}
	if err := t.broker.Publish(t.cfg.TxTopic, frame); err != nil {
		return err
	}
	t.logger.Debug("Sent code", zap.String("code", code), zap.String("topic", t.cfg.TxTopic))
	return nil
}

func (t *Transport) Close() error {
	// done first so blocked handlers let go of the read lock
	t.once.Do(func() { close(t.done) })

	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return nil
	}
	t.closed = true
	opened := t.opened
	close(t.events)
	t.mu.Unlock()

	if opened {
		t.broker.Disconnect()
	}
	return nil
}

type pahoBroker struct {
	client pahomqtt.Client
	logger *zap.Logger

	mu   sync.Mutex
	subs map[string]pahomqtt.MessageHandler
}

func newPahoBroker(cfg Config) *pahoBroker {
	b := &pahoBroker{
		subs: make(map[string]pahomqtt.MessageHandler),
		logger: common.GetLoggerWith(
			common.LoggerNameTransport,
			zap.String("kind", "mqtt"),
			zap.String("broker", cfg.Broker),
		),
	}

	opts := pahomqtt.NewClientOptions()
	opts.AddBroker(cfg.Broker)
	opts.SetClientID(cfg.ClientID)
	if cfg.Username != "" {
		opts.SetUsername(cfg.Username)
		opts.SetPassword(cfg.Password)
	}
	opts.SetCleanSession(true)
	opts.SetAutoReconnect(true)
	opts.SetConnectTimeout(connectTimeout)
	opts.SetOnConnectHandler(func(c pahomqtt.Client) {
		b.resubscribe(c)
	})
	opts.SetConnectionLostHandler(func(_ pahomqtt.Client, err error) {
		b.logger.Warn("MQTT connection lost", zap.Error(err))
	})

	b.client = pahomqtt.NewClient(opts)
	return b
}

func (b *pahoBroker) Connect() error {
	token := b.client.Connect()
	if !token.WaitTimeout(connectTimeout) {
		return fmt.Errorf("mqtt connect: timeout after %v", connectTimeout)
	}
	if err := token.Error(); err != nil {
		return fmt.Errorf("mqtt connect: %w", err)
	}
	return nil
}

// resubscribe restores subscriptions after a reconnect; clean sessions drop
// them on the broker side.
func (b *pahoBroker) resubscribe(c pahomqtt.Client) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for topic, handler := range b.subs {
		if token := c.Subscribe(topic, qos, handler); token.Wait() && token.Error() != nil {
			b.logger.Error("MQTT resubscribe failed", zap.String("topic", topic), zap.Error(token.Error()))
		}
	}
}

func (b *pahoBroker) Subscribe(topic string, handler func(string, []byte)) error {
	wrapped := func(_ pahomqtt.Client, msg pahomqtt.Message) {
		handler(msg.Topic(), msg.Payload())
	}

	b.mu.Lock()
	b.subs[topic] = wrapped
	b.mu.Unlock()

	if token := b.client.Subscribe(topic, qos, wrapped); token.Wait() && token.Error() != nil {
		return fmt.Errorf("mqtt subscribe %s: %w", topic, token.Error())
	}
	return nil
}

func (b *pahoBroker) Publish(topic string, payload []byte) error {
	token := b.client.Publish(topic, qos, false, payload)
	if !token.WaitTimeout(publishTimeout) {
		return fmt.Errorf("mqtt publish %s: timeout after %v", topic, publishTimeout)
	}
	if err := token.Error(); err != nil {
		return fmt.Errorf("mqtt publish %s: %w", topic, err)
	}
	return nil
}

func (b *pahoBroker) Disconnect() {
	b.client.Disconnect(disconnectQuiesce)
}
