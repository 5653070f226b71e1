package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"

	"catalog/internal/domain/service"
)

// broadcastPublisher forwards every published event to realtime subscribers of its restaurant.
type broadcastPublisher struct {
	next        service.EventPublisher
	broadcaster service.Broadcaster
	logger      *slog.Logger
}

// NewBroadcastPublisher decorates next so that successfully published events also reach websocket clients.
func NewBroadcastPublisher(next service.EventPublisher, broadcaster service.Broadcaster, logger *slog.Logger) service.EventPublisher {
	return &broadcastPublisher{
		next:        next,
		broadcaster: broadcaster,
		logger:      logger,
	}
}

func (p *broadcastPublisher) PublishCatalogEvent(ctx context.Context, event *service.CatalogEvent) error {
	err := p.next.PublishCatalogEvent(ctx, event)

	if event.RestaurantID == "" {
		return err
	}

	payload, marshalErr := json.Marshal(event)
	if marshalErr != nil {
		p.logger.Warn("failed to encode realtime event", slog.Any("error", marshalErr))

		return err
	}
	p.broadcaster.Broadcast(event.RestaurantID, payload)

	return err
}

func (p *broadcastPublisher) Close() error {
	return p.next.Close()
}
