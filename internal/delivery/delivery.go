// Package delivery holds the inbound adapters of the catalog: the HTTP API, the worker push
// endpoint and the Kafka stats consumer.
package delivery

import "context"

// Delivery is a long-running inbound adapter started by the fx entrypoints.
type Delivery interface {
	Serve(ctx context.Context) error
}
