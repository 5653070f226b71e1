package pubsub

import (
	"encoding/json"

	"catalog/internal/domain/service"

	"github.com/pkg/errors"
)

// encodeCatalogEvent serializes event and builds the attributes used for filtering and tracing.
func encodeCatalogEvent(event *service.CatalogEvent) ([]byte, map[string]string, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, nil, errors.WithStack(err)
	}

	attributes := map[string]string{
		"event_id": event.EventID,
		"type":     event.Type,
	}
	if event.RestaurantID != "" {
		attributes["restaurant_id"] = event.RestaurantID
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return data, attributes, nil
}
