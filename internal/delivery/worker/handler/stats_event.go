package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	deliverycontext "catalog/internal/delivery/context"
	"catalog/internal/domain/constants"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// StatsEvent is the envelope other systems publish to the stats topics.
type StatsEvent struct {
	EventID   string          `json:"event_id"`
	RequestID string          `json:"request_id,omitempty"` // For distributed tracing
	Type      string          `json:"type"`
	Payload   json.RawMessage `json:"payload"`
}

// ErrUnknownEventType is returned for event types this service does not consume.
var ErrUnknownEventType = errors.New("unknown stats event type")

// retryableError wraps an error to indicate the delivery should be retried
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

func newRetryableError(err error) error {
	return &retryableError{err: err}
}

// IsRetryable reports whether err should trigger a redelivery.
func IsRetryable(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}

// StatsEventRouterParams holds dependencies for the StatsEventRouter, injected by Fx.
type StatsEventRouterParams struct {
	fx.In

	StatsUC usecase.StatsUsecase
	Logger  *slog.Logger
}

// StatsEventRouter decodes a StatsEvent and hands its payload to the StatsUsecase.
// The push endpoint and the Kafka consumer share it.
type StatsEventRouter struct {
	statsUC usecase.StatsUsecase
	logger  *slog.Logger
}

// NewStatsEventRouter creates the router
func NewStatsEventRouter(params StatsEventRouterParams) *StatsEventRouter {
	return &StatsEventRouter{
		statsUC: params.StatsUC,
		logger:  params.Logger,
	}
}

// Decode parses raw into a StatsEvent.
func (r *StatsEventRouter) Decode(raw []byte) (*StatsEvent, error) {
	var event StatsEvent
	if err := json.Unmarshal(raw, &event); err != nil {
		return nil, errors.Wrap(err, "failed to parse stats event")
	}
	if event.Type == "" {
		return nil, errors.New("stats event type is missing")
	}

	return &event, nil
}

// WithTracing returns ctx carrying the request id and a request-scoped logger for event.
// requestID wins over the id inside the event when set.
func (r *StatsEventRouter) WithTracing(ctx context.Context, event *StatsEvent, requestID string) (context.Context, *slog.Logger) {
	if requestID == "" {
		requestID = event.RequestID
	}
	if requestID == "" {
		requestID = deliverycontext.GetRequestIDFromContext(ctx)
	}
	if requestID == "" {
		requestID = uuid.New().String()
	}

	logger := r.logger.With(
		slog.String("request_id", requestID),
		slog.String("event_id", event.EventID),
		slog.String("event_type", event.Type),
	)
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, logger)

	return ctx, logger
}

// Dispatch applies event. Unknown types return ErrUnknownEventType, infrastructure failures
// are wrapped as retryable and business rejections are returned as they are.
func (r *StatsEventRouter) Dispatch(ctx context.Context, event *StatsEvent) error {
	var err error
	switch event.Type {
	case constants.StatsOrderCompleted:
		var payload usecase.OrderCompletedEvent
		if err = unmarshalPayload(event, &payload); err == nil {
			err = r.statsUC.HandleOrderCompleted(ctx, payload)
		}
	case constants.StatsReviewCreated:
		var payload usecase.ReviewCreatedEvent
		if err = unmarshalPayload(event, &payload); err == nil {
			err = r.statsUC.HandleReviewCreated(ctx, payload)
		}
	case constants.StatsWishlistChanged:
		var payload usecase.WishlistChangedEvent
		if err = unmarshalPayload(event, &payload); err == nil {
			err = r.statsUC.HandleWishlistChanged(ctx, payload)
		}
	default:
		return errors.Wrap(ErrUnknownEventType, event.Type)
	}

	return classify(err)
}

func unmarshalPayload(event *StatsEvent, target any) error {
	if len(event.Payload) == 0 {
		return domainerrors.ErrValidationFailed.WithDetails("stats event payload is missing")
	}
	if err := json.Unmarshal(event.Payload, target); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("invalid stats event payload")
	}

	return nil
}

// classify marks every failure that is not a 4xx business rejection as retryable.
func classify(err error) error {
	if err == nil {
		return nil
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) && appErr.HTTPCode() < http.StatusInternalServerError {
		return err
	}

	return newRetryableError(err)
}
