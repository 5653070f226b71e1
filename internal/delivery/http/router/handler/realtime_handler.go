package handler

import (
	"log/slog"
	"net/http"

	"catalog/internal/delivery/http/response"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// StatusFeed attaches a websocket connection to the change feed of one restaurant.
type StatusFeed interface {
	Attach(conn *websocket.Conn, restaurantID string)
}

// RealtimeHandlerParams holds dependencies for RealtimeHandler, injected by Fx.
type RealtimeHandlerParams struct {
	fx.In

	Feed   StatusFeed `optional:"true"`
	Logger *slog.Logger
}

// RealtimeHandler upgrades status-feed requests to websockets.
type RealtimeHandler struct {
	feed     StatusFeed
	upgrader websocket.Upgrader
	logger   *slog.Logger
}

// NewRealtimeHandler is the constructor for RealtimeHandler
func NewRealtimeHandler(params RealtimeHandlerParams) *RealtimeHandler {
	return &RealtimeHandler{
		feed: params.Feed,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// The feed is read-only public data.
			CheckOrigin: func(*http.Request) bool { return true },
		},
		logger: params.Logger,
	}
}

// Enabled reports whether a feed is wired.
func (h *RealtimeHandler) Enabled() bool {
	return h != nil && h.feed != nil
}

// Subscribe streams the catalog events of one restaurant until the client disconnects.
func (h *RealtimeHandler) Subscribe(c echo.Context) error {
	if !h.Enabled() {
		return response.Error(c, http.StatusServiceUnavailable, "REALTIME_DISABLED", "Realtime feed is disabled", "")
	}

	restaurantID := c.Param("id")
	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		// The upgrader has already replied to the client.
		h.logger.Warn("websocket upgrade failed",
			slog.String("restaurant_id", restaurantID),
			slog.Any("error", err),
		)

		return nil
	}

	h.feed.Attach(conn, restaurantID)

	return nil
}
