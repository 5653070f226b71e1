package service

import (
	"context"
	"time"
)

// CatalogEvent describes a committed change of the catalog.
type CatalogEvent struct {
	EventID      string    `json:"event_id"`
	RequestID    string    `json:"request_id,omitempty"` // For distributed tracing
	Type         string    `json:"type"`
	RestaurantID string    `json:"restaurant_id,omitempty"`
	MenuID       string    `json:"menu_id,omitempty"`
	CategoryID   string    `json:"category_id,omitempty"`
	Status       string    `json:"status,omitempty"`
	ActorID      string    `json:"actor_id,omitempty"`
	OccurredAt   time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishCatalogEvent publishes a catalog change for downstream consumers
	PublishCatalogEvent(ctx context.Context, event *CatalogEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
