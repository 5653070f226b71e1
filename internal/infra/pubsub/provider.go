package pubsub

import (
	"context"
	"log/slog"

	"catalog/config"
	"catalog/internal/domain/constants"
	"catalog/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// noopPublisher is a no-op implementation when Pub/Sub is disabled
type noopPublisher struct {
	logger *slog.Logger
}

func (p *noopPublisher) PublishCatalogEvent(ctx context.Context, event *service.CatalogEvent) error {
	p.logger.Debug("[NoopPubSub] Event publishing disabled, skipping",
		slog.String("type", event.Type),
		slog.String("restaurant_id", event.RestaurantID),
	)

	return nil
}

func (p *noopPublisher) Close() error {
	return nil
}

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc          fx.Lifecycle
	Ctx         context.Context
	Config      *config.Config
	Logger      *slog.Logger
	Broadcaster service.Broadcaster `optional:"true"`
}

// NewEventPublisher creates an EventPublisher based on configuration
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	publisher, err := newProviderPublisher(params.Ctx, params.Config, params.Logger)
	if err != nil {
		return nil, err
	}

	if params.Broadcaster != nil {
		publisher = NewBroadcastPublisher(publisher, params.Broadcaster, params.Logger)
	}

	logger := params.Logger
	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing EventPublisher")

			return publisher.Close()
		},
	})

	return publisher, nil
}

func newProviderPublisher(ctx context.Context, appCfg *config.Config, logger *slog.Logger) (service.EventPublisher, error) {
	cfg := appCfg.PubSub

	if cfg == nil || cfg.Provider == "" || cfg.Provider == constants.PubSubProviderNoop {
		logger.Info("PubSub not configured, using no-op publisher")

		return &noopPublisher{logger: logger}, nil
	}

	switch cfg.Provider {
	case constants.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("local endpoint is required for local provider")
		}
		logger.Info("Using local HTTP publisher for Pub/Sub",
			slog.String("endpoint", cfg.LocalEndpoint),
		)

		return NewLocalHTTPPublisher(cfg.LocalEndpoint, logger), nil

	case constants.PubSubProviderGoogle:
		if cfg.ProjectID == "" {
			return nil, errors.New("project ID is required for google provider")
		}
		if cfg.TopicID == "" {
			return nil, errors.New("topic ID is required for google provider")
		}
		logger.Info("Using Google Pub/Sub publisher",
			slog.String("project_id", cfg.ProjectID),
			slog.String("topic_id", cfg.TopicID),
		)

		return NewGooglePubSubPublisher(ctx, cfg.ProjectID, cfg.TopicID, logger)

	case constants.PubSubProviderKafka:
		kafkaCfg := appCfg.Kafka
		if kafkaCfg == nil || len(kafkaCfg.Brokers) == 0 {
			return nil, errors.New("kafka brokers are required for kafka provider")
		}
		if kafkaCfg.CatalogTopic == "" {
			return nil, errors.New("catalog topic is required for kafka provider")
		}
		logger.Info("Using Kafka publisher",
			slog.Any("brokers", kafkaCfg.Brokers),
			slog.String("topic", kafkaCfg.CatalogTopic),
		)

		return NewKafkaPublisher(kafkaCfg.Brokers, kafkaCfg.CatalogTopic, logger), nil

	default:
		return nil, errors.Errorf("unknown pubsub provider: %s", cfg.Provider)
	}
}

// Module provides the Pub/Sub FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewEventPublisher),
)
