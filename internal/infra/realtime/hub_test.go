package realtime

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"catalog/config"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, hub *Hub) *httptest.Server {
	t.Helper()

	upgrader := websocket.Upgrader{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		hub.Attach(conn, strings.TrimPrefix(r.URL.Path, "/"))
	}))
	t.Cleanup(server.Close)

	return server
}

func dial(t *testing.T, server *httptest.Server, restaurantID string) *websocket.Conn {
	t.Helper()

	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/" + restaurantID
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	if resp != nil && resp.Body != nil {
		_ = resp.Body.Close()
	}
	t.Cleanup(func() { _ = conn.Close() })

	return conn
}

func TestHub_BroadcastReachesOnlyRestaurantSubscribers(t *testing.T) {
	hub := NewHub(&config.Config{Realtime: &config.RealtimeConfig{SendBuffer: 4}}, slog.New(slog.DiscardHandler))
	server := newTestServer(t, hub)

	first := dial(t, server, "REST-1")
	other := dial(t, server, "REST-2")

	require.Eventually(t, func() bool {
		return hub.Subscribers("REST-1") == 1 && hub.Subscribers("REST-2") == 1
	}, time.Second, 10*time.Millisecond)

	hub.Broadcast("REST-1", []byte(`{"type":"restaurant.status_changed"}`))

	require.NoError(t, first.SetReadDeadline(time.Now().Add(time.Second)))
	_, msg, err := first.ReadMessage()
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"restaurant.status_changed"}`, string(msg))

	require.NoError(t, other.SetReadDeadline(time.Now().Add(100*time.Millisecond)))
	_, _, err = other.ReadMessage()
	assert.Error(t, err)
}

func TestHub_DetachOnDisconnect(t *testing.T) {
	hub := NewHub(nil, slog.New(slog.DiscardHandler))
	server := newTestServer(t, hub)

	conn := dial(t, server, "REST-1")
	require.Eventually(t, func() bool { return hub.Subscribers("REST-1") == 1 }, time.Second, 10*time.Millisecond)

	require.NoError(t, conn.Close())
	assert.Eventually(t, func() bool { return hub.Subscribers("REST-1") == 0 }, time.Second, 10*time.Millisecond)
}

func TestHub_Close(t *testing.T) {
	hub := NewHub(nil, slog.New(slog.DiscardHandler))
	server := newTestServer(t, hub)

	conn := dial(t, server, "REST-1")
	require.Eventually(t, func() bool { return hub.Subscribers("REST-1") == 1 }, time.Second, 10*time.Millisecond)

	hub.Close()
	assert.Equal(t, 0, hub.Subscribers("REST-1"))

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(time.Second)))
	_, _, err := conn.ReadMessage()
	assert.Error(t, err)

	hub.Broadcast("REST-1", []byte("ignored"))
}
