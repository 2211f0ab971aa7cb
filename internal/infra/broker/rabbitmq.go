package broker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"closeout-market/internal/pkg/errs"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	dialAttempts = 10
	dialBackoff  = 2 * time.Second
)

type RabbitMQPublisher struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	queue   string
	mu      sync.Mutex
}

// NewRabbitMQPublisher retries the dial because the broker may still be starting.
func NewRabbitMQPublisher(ctx context.Context, url, queue string) (*RabbitMQPublisher, error) {
	var conn *amqp.Connection
	var err error
	for i := 0; i < dialAttempts; i++ {
		conn, err = amqp.Dial(url)
		if err == nil {
			break
		}
		slog.Warn("rabbitmq not reachable, retrying",
			slog.Int("attempt", i+1),
			slog.Duration("backoff", dialBackoff))
		select {
		case <-ctx.Done():
			return nil, errs.Wrap(ctx.Err(), "rabbitmq dial aborted")
		case <-time.After(dialBackoff):
		}
	}
	if err != nil {
		return nil, errs.Wrap(err, "failed to connect to rabbitmq")
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, errs.Wrap(err, "failed to open rabbitmq channel")
	}

	_, err = ch.QueueDeclare(
		queue, // name
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, errs.Wrap(err, "failed to declare rabbitmq queue")
	}

	return &RabbitMQPublisher{conn: conn, channel: ch, queue: queue}, nil
}

func (p *RabbitMQPublisher) Publish(ctx context.Context, key, eventType string, payload []byte) error {
	// amqp channels are not safe for concurrent publishes.
	p.mu.Lock()
	defer p.mu.Unlock()

	err := p.channel.PublishWithContext(ctx,
		"",      // exchange
		p.queue, // routing key
		false,   // mandatory
		false,   // immediate
		amqp.Publishing{
			MessageId:    key,
			Type:         eventType,
			ContentType:  "application/json",
			Body:         payload,
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now(),
		})
	if err != nil {
		return errs.Wrapf(err, "rabbitmq publish %s", eventType)
	}
	return nil
}

func (p *RabbitMQPublisher) Close() error {
	chErr := p.channel.Close()
	connErr := p.conn.Close()
	if chErr != nil {
		return errs.Wrap(chErr, "failed to close rabbitmq channel")
	}
	if connErr != nil {
		return errs.Wrap(connErr, "failed to close rabbitmq connection")
	}
	return nil
}
