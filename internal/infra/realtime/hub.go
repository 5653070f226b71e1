// Package realtime keeps websocket subscribers per restaurant and fans catalog events out to them.
package realtime

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"catalog/config"
	"catalog/internal/domain/service"

	"github.com/gorilla/websocket"
	"go.uber.org/fx"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = 30 * time.Second
	maxMessageSize = 1 << 12
)

type client struct {
	hub          *Hub
	conn         *websocket.Conn
	send         chan []byte
	restaurantID string

	mu     sync.Mutex
	closed bool
}

// enqueue reports false when the buffer is full. A closed client swallows the payload.
func (c *client) enqueue(payload []byte) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return true
	}
	select {
	case c.send <- payload:
		return true
	default:
		return false
	}
}

func (c *client) close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	c.closed = true
	close(c.send)
	_ = c.conn.Close()
}

// Hub implements service.Broadcaster over websocket connections.
type Hub struct {
	mu         sync.RWMutex
	topics     map[string]map[*client]struct{}
	sendBuffer int
	logger     *slog.Logger
}

// NewHub creates a hub whose clients buffer up to the configured number of pending messages.
func NewHub(cfg *config.Config, logger *slog.Logger) *Hub {
	sendBuffer := 16
	if cfg != nil && cfg.Realtime != nil && cfg.Realtime.SendBuffer > 0 {
		sendBuffer = cfg.Realtime.SendBuffer
	}

	return &Hub{
		topics:     make(map[string]map[*client]struct{}),
		sendBuffer: sendBuffer,
		logger:     logger,
	}
}

// Attach subscribes conn to restaurantID and blocks until the peer goes away.
func (h *Hub) Attach(conn *websocket.Conn, restaurantID string) {
	c := &client{
		hub:          h,
		conn:         conn,
		send:         make(chan []byte, h.sendBuffer),
		restaurantID: restaurantID,
	}

	h.mu.Lock()
	if h.topics[restaurantID] == nil {
		h.topics[restaurantID] = make(map[*client]struct{})
	}
	h.topics[restaurantID][c] = struct{}{}
	h.mu.Unlock()

	h.logger.Debug("realtime client attached", slog.String("restaurant_id", restaurantID))

	go c.writePump()
	c.readPump()
}

// Broadcast queues payload for every subscriber of restaurantID. Clients with a full buffer are dropped.
func (h *Hub) Broadcast(restaurantID string, payload []byte) {
	h.mu.RLock()
	clients := make([]*client, 0, len(h.topics[restaurantID]))
	for c := range h.topics[restaurantID] {
		clients = append(clients, c)
	}
	h.mu.RUnlock()

	for _, c := range clients {
		if !c.enqueue(payload) {
			h.logger.Warn("realtime send buffer full, dropping client", slog.String("restaurant_id", restaurantID))
			go h.detach(c)
		}
	}
}

// Subscribers returns the number of clients attached to restaurantID.
func (h *Hub) Subscribers(restaurantID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.topics[restaurantID])
}

// Close disconnects every client.
func (h *Hub) Close() {
	h.mu.Lock()
	var clients []*client
	for _, subs := range h.topics {
		for c := range subs {
			clients = append(clients, c)
		}
	}
	h.topics = make(map[string]map[*client]struct{})
	h.mu.Unlock()

	for _, c := range clients {
		c.close()
	}
}

func (h *Hub) detach(c *client) {
	h.mu.Lock()
	if subs, ok := h.topics[c.restaurantID]; ok {
		delete(subs, c)
		if len(subs) == 0 {
			delete(h.topics, c.restaurantID)
		}
	}
	h.mu.Unlock()

	c.close()
}

func (c *client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case msg, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})

				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				go c.hub.detach(c)

				return
			}
		case <-ticker.C:
			if err := c.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				go c.hub.detach(c)

				return
			}
		}
	}
}

// readPump only drains control frames; subscribers never send data.
func (c *client) readPump() {
	defer c.hub.detach(c)

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				c.hub.logger.Debug("realtime read failed", slog.Any("error", err))
			}

			return
		}
	}
}

// HubParams holds dependencies for the hub, injected by Fx
type HubParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

func provideHub(params HubParams) *Hub {
	hub := NewHub(params.Config, params.Logger)
	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			hub.Close()

			return nil
		},
	})

	return hub
}

// provideBroadcaster exposes the hub to the publisher only when the feed is enabled.
func provideBroadcaster(cfg *config.Config, hub *Hub) service.Broadcaster {
	if cfg.Realtime == nil || !cfg.Realtime.Enabled {
		return nil
	}

	return hub
}

// Module provides the hub both as itself and as the Broadcaster the publisher decorates with.
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		provideHub,
		provideBroadcaster,
	),
)
