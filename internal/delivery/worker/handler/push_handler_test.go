package handler

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"catalog/internal/domain/constants"
	domainerrors "catalog/internal/domain/errors"
	usecasemocks "catalog/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func newPushHandler(t *testing.T, verify bool, validate tokenValidator) (*PushHandler, *usecasemocks.MockStatsUsecase) {
	t.Helper()

	router, statsUC := newTestRouter(t)

	return &PushHandler{
		verifyPushAuth: verify,
		audience:       "https://worker.example.com/push",
		validate:       validate,
		router:         router,
		logger:         slog.New(slog.DiscardHandler),
	}, statsUC
}

func pushBody(t *testing.T, data string) []byte {
	t.Helper()

	var msg PubSubMessage
	msg.Message.MessageID = "msg-1"
	msg.Message.Data = data
	msg.Message.Attributes = map[string]string{"request_id": "req-1"}
	msg.Subscription = "projects/demo/subscriptions/catalog-stats"

	raw, err := json.Marshal(msg)
	require.NoError(t, err)

	return raw
}

func encodedEvent(t *testing.T, eventType string, payload any) string {
	t.Helper()

	raw, err := json.Marshal(mustEvent(t, eventType, payload))
	require.NoError(t, err)

	return base64.StdEncoding.EncodeToString(raw)
}

func servePush(h *PushHandler, body []byte, authorization string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}
	rec := httptest.NewRecorder()
	_ = h.HandlePush(e.NewContext(req, rec))

	return rec
}

func TestPushHandler_HandlePush(t *testing.T) {
	review := map[string]any{"review_id": "RV-1", "restaurant_id": "REST-00000001", "rating": 4}

	tests := []struct {
		name     string
		data     string
		stubErr  error
		expectUC bool
		wantCode int
	}{
		{name: "processed", data: encodedEvent(t, constants.StatsReviewCreated, review), expectUC: true, wantCode: http.StatusOK},
		{name: "invalid base64", data: "%%%", wantCode: http.StatusBadRequest},
		{name: "invalid event", data: base64.StdEncoding.EncodeToString([]byte("{")), wantCode: http.StatusBadRequest},
		{name: "unknown type is acked", data: encodedEvent(t, "coupon.issued", review), wantCode: http.StatusOK},
		{name: "business rejection is acked", data: encodedEvent(t, constants.StatsReviewCreated, review), expectUC: true, stubErr: domainerrors.ErrRestaurantNotFound, wantCode: http.StatusOK},
		{name: "infrastructure failure is retried", data: encodedEvent(t, constants.StatsReviewCreated, review), expectUC: true, stubErr: errors.New("deadlock detected"), wantCode: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, statsUC := newPushHandler(t, false, nil)
			if tt.expectUC {
				statsUC.EXPECT().HandleReviewCreated(mock.Anything, mock.Anything).Return(tt.stubErr)
			}

			rec := servePush(h, pushBody(t, tt.data), "")

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestPushHandler_VerifyToken(t *testing.T) {
	data := encodedEvent(t, constants.StatsWishlistChanged, map[string]any{"restaurant_id": "REST-00000001", "action": "ADDED"})

	t.Run("missing header", func(t *testing.T) {
		h, _ := newPushHandler(t, true, nil)

		rec := servePush(h, pushBody(t, data), "")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		h, _ := newPushHandler(t, true, func(_ context.Context, _, _ string) (*idtoken.Payload, error) {
			return &idtoken.Payload{Issuer: "https://evil.example.com"}, nil
		})

		rec := servePush(h, pushBody(t, data), "Bearer signed")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("unverified email", func(t *testing.T) {
		h, _ := newPushHandler(t, true, func(_ context.Context, _, _ string) (*idtoken.Payload, error) {
			return &idtoken.Payload{
				Issuer: "https://accounts.google.com",
				Claims: map[string]any{"email_verified": false},
			}, nil
		})

		rec := servePush(h, pushBody(t, data), "Bearer signed")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid token uses the configured audience", func(t *testing.T) {
		var gotAudience string
		h, statsUC := newPushHandler(t, true, func(_ context.Context, token, audience string) (*idtoken.Payload, error) {
			gotAudience = audience
			assert.Equal(t, "signed", token)

			return &idtoken.Payload{
				Issuer: "accounts.google.com",
				Claims: map[string]any{"email_verified": true},
			}, nil
		})
		statsUC.EXPECT().HandleWishlistChanged(mock.Anything, mock.Anything).Return(nil)

		rec := servePush(h, pushBody(t, data), "Bearer signed")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "https://worker.example.com/push", gotAudience)
	})
}
