package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	deliverycontext "catalog/internal/delivery/context"
	"catalog/internal/domain/constants"
	domainerrors "catalog/internal/domain/errors"
	usecasemocks "catalog/internal/mocks/usecase"
	"catalog/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) (*StatsEventRouter, *usecasemocks.MockStatsUsecase) {
	t.Helper()

	statsUC := usecasemocks.NewMockStatsUsecase(t)

	return NewStatsEventRouter(StatsEventRouterParams{
		StatsUC: statsUC,
		Logger:  slog.New(slog.DiscardHandler),
	}), statsUC
}

func mustEvent(t *testing.T, eventType string, payload any) *StatsEvent {
	t.Helper()

	raw, err := json.Marshal(payload)
	require.NoError(t, err)

	return &StatsEvent{EventID: "evt-1", Type: eventType, Payload: raw}
}

func TestStatsEventRouter_Decode(t *testing.T) {
	router, _ := newTestRouter(t)

	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{name: "valid", raw: `{"event_id":"evt-1","type":"order.completed","payload":{}}`},
		{name: "invalid json", raw: `{`, wantErr: true},
		{name: "missing type", raw: `{"event_id":"evt-1"}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			event, err := router.Decode([]byte(tt.raw))
			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, constants.StatsOrderCompleted, event.Type)
		})
	}
}

func TestStatsEventRouter_WithTracing(t *testing.T) {
	router, _ := newTestRouter(t)

	t.Run("explicit id wins", func(t *testing.T) {
		ctx, _ := router.WithTracing(context.Background(), &StatsEvent{RequestID: "from-event"}, "from-header")
		assert.Equal(t, "from-header", deliverycontext.GetRequestIDFromContext(ctx))
	})

	t.Run("falls back to the event", func(t *testing.T) {
		ctx, _ := router.WithTracing(context.Background(), &StatsEvent{RequestID: "from-event"}, "")
		assert.Equal(t, "from-event", deliverycontext.GetRequestIDFromContext(ctx))
	})

	t.Run("generates one when absent", func(t *testing.T) {
		ctx, logger := router.WithTracing(context.Background(), &StatsEvent{}, "")
		assert.NotEmpty(t, deliverycontext.GetRequestIDFromContext(ctx))
		assert.Same(t, logger, deliverycontext.GetLoggerOrDefault(ctx, nil))
	})
}

func TestStatsEventRouter_Dispatch(t *testing.T) {
	t.Run("order completed", func(t *testing.T) {
		router, statsUC := newTestRouter(t)
		payload := usecase.OrderCompletedEvent{
			OrderID:      "ORD-1",
			RestaurantID: "REST-00000001",
			Items:        []usecase.OrderedMenu{{MenuID: "MENU-1", Quantity: 2}},
		}
		statsUC.EXPECT().HandleOrderCompleted(mock.Anything, payload).Return(nil)

		err := router.Dispatch(context.Background(), mustEvent(t, constants.StatsOrderCompleted, payload))
		assert.NoError(t, err)
	})

	t.Run("review created", func(t *testing.T) {
		router, statsUC := newTestRouter(t)
		payload := usecase.ReviewCreatedEvent{ReviewID: "RV-1", RestaurantID: "REST-00000001", Rating: 4.5}
		statsUC.EXPECT().HandleReviewCreated(mock.Anything, payload).Return(nil)

		err := router.Dispatch(context.Background(), mustEvent(t, constants.StatsReviewCreated, payload))
		assert.NoError(t, err)
	})

	t.Run("wishlist changed", func(t *testing.T) {
		router, statsUC := newTestRouter(t)
		payload := usecase.WishlistChangedEvent{RestaurantID: "REST-00000001", Action: "ADDED"}
		statsUC.EXPECT().HandleWishlistChanged(mock.Anything, payload).Return(nil)

		err := router.Dispatch(context.Background(), mustEvent(t, constants.StatsWishlistChanged, payload))
		assert.NoError(t, err)
	})

	t.Run("unknown type", func(t *testing.T) {
		router, _ := newTestRouter(t)

		err := router.Dispatch(context.Background(), &StatsEvent{Type: "coupon.issued"})
		assert.ErrorIs(t, err, ErrUnknownEventType)
		assert.False(t, IsRetryable(err))
	})

	t.Run("missing payload is permanent", func(t *testing.T) {
		router, _ := newTestRouter(t)

		err := router.Dispatch(context.Background(), &StatsEvent{Type: constants.StatsReviewCreated})
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		assert.False(t, IsRetryable(err))
	})

	t.Run("business rejection is permanent", func(t *testing.T) {
		router, statsUC := newTestRouter(t)
		statsUC.EXPECT().HandleReviewCreated(mock.Anything, mock.Anything).Return(domainerrors.ErrInvalidReviewRating)

		err := router.Dispatch(context.Background(), mustEvent(t, constants.StatsReviewCreated, usecase.ReviewCreatedEvent{Rating: 9}))
		assert.ErrorIs(t, err, domainerrors.ErrInvalidReviewRating)
		assert.False(t, IsRetryable(err))
	})

	t.Run("infrastructure failure is retryable", func(t *testing.T) {
		router, statsUC := newTestRouter(t)
		statsUC.EXPECT().HandleWishlistChanged(mock.Anything, mock.Anything).Return(errors.New("connection reset"))

		err := router.Dispatch(context.Background(), mustEvent(t, constants.StatsWishlistChanged, usecase.WishlistChangedEvent{Action: "ADDED"}))
		assert.True(t, IsRetryable(err))
	})
}
