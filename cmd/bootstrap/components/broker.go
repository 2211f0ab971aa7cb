package components

import (
	"context"
	"fmt"

	"closeout-market/internal/infra/broker"
	"closeout-market/internal/pkg/config"
	"closeout-market/internal/usecase/shared"

	"go.uber.org/fx"
)

var BrokerModule = fx.Module("broker",
	fx.Provide(
		NewEventPublisher,
	),
)

func NewEventPublisher(lc fx.Lifecycle, cfg config.Config) (shared.EventPublisher, error) {
	var (
		pub shared.EventPublisher
		err error
	)
	switch cfg.Broker.Kind {
	case "kafka":
		pub = broker.NewKafkaPublisher(cfg.Broker.KafkaBrokers, cfg.Broker.KafkaTopic)
	case "rabbitmq":
		pub, err = broker.NewRabbitMQPublisher(context.Background(), cfg.Broker.RabbitMQURL, cfg.Broker.RabbitMQQueue)
		if err != nil {
			return nil, err
		}
	case "log":
		pub = broker.NewLogPublisher()
	default:
		return nil, fmt.Errorf("unknown BROKER_KIND %q", cfg.Broker.Kind)
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return pub.Close()
		},
	})
	return pub, nil
}
