package notify

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/limbo/levelup/pkg/cleanup"
)

const DefaultChannel = "levelup:events"

type RedisConfig struct {
	Address  string
	Password string
	DB       int
}

// NewRedisClient connects and pings Redis. Closing the client is registered
// as a cleanup job.
func NewRedisClient(ctx context.Context, cfg RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Address,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing redis client",
		F:    client.Close,
	})
	return client, nil
}

// RedisPublisher publishes encoded events on a Redis channel. Every instance
// running a RedisBridge on that channel delivers them to its clients.
type RedisPublisher struct {
	client  *redis.Client
	channel string
	logger  *slog.Logger
}

func NewRedisPublisher(client *redis.Client, channel string, logger *slog.Logger) *RedisPublisher {
	return &RedisPublisher{client: client, channel: channel, logger: logger}
}

func (p *RedisPublisher) Publish(ctx context.Context, topic string, payload any) {
	msg, err := encode(topic, payload)
	if err != nil {
		p.logger.Error("encoding event error", slog.String("event", topic), slog.String("error", err.Error()))
		return
	}
	if err = p.client.Publish(ctx, p.channel, msg).Err(); err != nil {
		p.logger.Error("publishing event to redis error", slog.String("event", topic), slog.String("error", err.Error()))
	}
}

// RedisBridge feeds events from a Redis channel into the local hub.
type RedisBridge struct {
	client  *redis.Client
	channel string
	hub     *Hub
	logger  *slog.Logger
}

func NewRedisBridge(client *redis.Client, channel string, hub *Hub, logger *slog.Logger) *RedisBridge {
	return &RedisBridge{client: client, channel: channel, hub: hub, logger: logger}
}

// Run blocks until ctx is done or the subscription fails.
func (b *RedisBridge) Run(ctx context.Context) error {
	sub := b.client.Subscribe(ctx, b.channel)
	defer sub.Close()
	if _, err := sub.Receive(ctx); err != nil {
		return fmt.Errorf("subscribing to %s: %w", b.channel, err)
	}
	b.logger.Info("listening for events", slog.String("channel", b.channel))
	messages := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-messages:
			if !ok {
				return fmt.Errorf("subscription to %s closed", b.channel)
			}
			b.hub.Broadcast([]byte(msg.Payload))
		}
	}
}
