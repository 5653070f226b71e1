package worker_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"catalog/config"
	"catalog/internal/delivery/worker"
	"catalog/internal/delivery/worker/handler"
	usecasemocks "catalog/internal/mocks/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newWorkerConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Env.ServiceName = "catalog-worker"
	cfg.HTTP.MaxRequestBodySize = "1M"
	cfg.PubSub = &config.PubSubConfig{Provider: "local"}
	cfg.Kafka = &config.KafkaConfig{ConsumerEnabled: true}

	return cfg
}

func TestWorkerEcho_Routes(t *testing.T) {
	cfg := newWorkerConfig()
	logger := slog.New(slog.DiscardHandler)
	router := handler.NewStatsEventRouter(handler.StatsEventRouterParams{
		StatsUC: usecasemocks.NewMockStatsUsecase(t),
		Logger:  logger,
	})
	pushHandler := handler.NewPushHandler(handler.PushHandlerParams{Config: cfg, Logger: logger, Router: router})
	e := worker.NewEcho(cfg, logger, pushHandler)

	t.Run("health", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "catalog-worker", body["service"])
		assert.Equal(t, true, body["kafka_consumer"])
		assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
	})

	t.Run("malformed push is rejected", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/push", bytes.NewBufferString(`{"message":{"data":"%%%"}}`))
		req.Header.Set("Content-Type", "application/json")
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
