// Package broker holds the EventPublisher implementations the outbox relay forwards to.
package broker

import (
	"context"
	"time"

	"closeout-market/internal/pkg/errs"

	"github.com/segmentio/kafka-go"
)

const headerEventType = "event_type"

type KafkaPublisher struct {
	writer *kafka.Writer
}

func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireAll,
			BatchTimeout: 10 * time.Millisecond,
		},
	}
}

// Publish keys by aggregate id so events of one aggregate stay on one partition.
func (p *KafkaPublisher) Publish(ctx context.Context, key, eventType string, payload []byte) error {
	err := p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(key),
		Value: payload,
		Headers: []kafka.Header{
			{Key: headerEventType, Value: []byte(eventType)},
		},
	})
	if err != nil {
		return errs.Wrapf(err, "kafka publish %s", eventType)
	}
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
