// Package realtime implements the live message transport behind the bus.
package realtime

import (
	"context"
	"log/slog"
	"sync"

	"closeout-market/internal/pkg/config"
	"closeout-market/internal/pkg/errs"
	"closeout-market/internal/pkg/sl"
	"closeout-market/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// RedisTransport fans channel messages out across API nodes with Redis pub/sub.
type RedisTransport struct {
	client     *redis.Client
	prefix     string
	bufferSize int
}

func NewRedisTransport(cfg config.RealtimeConfig) *RedisTransport {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	return newRedisTransport(client, cfg)
}

func newRedisTransport(client *redis.Client, cfg config.RealtimeConfig) *RedisTransport {
	size := cfg.BufferSize
	if size <= 0 {
		size = 64
	}
	return &RedisTransport{client: client, prefix: cfg.TopicPrefix, bufferSize: size}
}

func (t *RedisTransport) topic(channelID uuid.UUID) string {
	return t.prefix + channelID.String()
}

func (t *RedisTransport) Ping(ctx context.Context) error {
	if err := t.client.Ping(ctx).Err(); err != nil {
		return errs.Wrap(err, "redis ping failed")
	}
	return nil
}

func (t *RedisTransport) Publish(ctx context.Context, channelID uuid.UUID, payload []byte) error {
	if err := t.client.Publish(ctx, t.topic(channelID), payload).Err(); err != nil {
		return errs.Wrapf(err, "failed to publish to %s", t.topic(channelID))
	}
	return nil
}

func (t *RedisTransport) Subscribe(ctx context.Context, channelID uuid.UUID) (shared.TransportSubscription, error) {
	ps := t.client.Subscribe(ctx, t.topic(channelID))
	// Wait for the SUBSCRIBE confirmation so the caller's history read happens after attach.
	if _, err := ps.Receive(ctx); err != nil {
		_ = ps.Close()
		return nil, errs.Wrapf(err, "failed to subscribe to %s", t.topic(channelID))
	}

	sub := &redisSubscription{
		ps:  ps,
		out: make(chan []byte, t.bufferSize),
	}
	sub.wg.Add(1)
	go sub.forward(ps.Channel())
	return sub, nil
}

func (t *RedisTransport) Close() error {
	if err := t.client.Close(); err != nil {
		return errs.Wrap(err, "failed to close redis client")
	}
	return nil
}

type redisSubscription struct {
	ps   *redis.PubSub
	out  chan []byte
	wg   sync.WaitGroup
	once sync.Once
}

func (s *redisSubscription) forward(in <-chan *redis.Message) {
	defer s.wg.Done()
	defer close(s.out)
	for m := range in {
		select {
		case s.out <- []byte(m.Payload):
		default:
			// Slow consumer: the subscriber recovers the gap from history.
			slog.Warn("dropping live message for slow subscriber", slog.String("topic", m.Channel))
		}
	}
}

func (s *redisSubscription) Messages() <-chan []byte {
	return s.out
}

func (s *redisSubscription) Close() error {
	var err error
	s.once.Do(func() {
		if err = s.ps.Close(); err != nil {
			slog.Warn("failed to close redis pubsub", sl.Err(err))
		}
		s.wg.Wait()
	})
	return err
}
