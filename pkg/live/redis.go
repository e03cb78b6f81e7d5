package live

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"liyu1981.xyz/rf-code-hub/pkg/common"
)

const publishTimeout = 2 * time.Second

// RedisMirror republishes every live event on a Redis pub/sub channel so
// other processes can follow the engine without a websocket.
type RedisMirror struct {
	client  *redis.Client
	channel string
	logger  *zap.Logger
}

func NewRedisClient(addr string) *redis.Client {
	return redis.NewClient(&redis.Options{Addr: addr})
}

func NewRedisMirror(client *redis.Client, channel string) *RedisMirror {
	return &RedisMirror{
		client:  client,
		channel: channel,
		logger: common.GetLoggerWith(
			common.LoggerNameLive,
			zap.String("sink", "redis"),
			zap.String("channel", channel),
		),
	}
}

func (m *RedisMirror) Ping(ctx context.Context) error {
	return m.client.Ping(ctx).Err()
}

func (m *RedisMirror) Broadcast(event string, payload any) error {
	data, err := encodeEvent(event, payload, time.Now())
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()

	receivers, err := m.client.Publish(ctx, m.channel, data).Result()
	if err != nil {
		return err
	}
	m.logger.Debug("Mirrored live event", zap.String("event", event), zap.Int64("receivers", receivers))
	return nil
}

func (m *RedisMirror) Close() error {
	return m.client.Close()
}
