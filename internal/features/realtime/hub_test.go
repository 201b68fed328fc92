package realtime

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHub() *Hub {
	return NewHub(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// newHubConn attaches a websocket client to the hub through a real
// upgrade. With drain set the normal serveClient loop runs; without it
// the client is registered with a one-slot send buffer and nothing
// draining it, which is how a stalled peer looks to Publish.
func newHubConn(t *testing.T, hub *Hub, spaceID uuid.UUID, drain bool) *websocket.Conn {
	t.Helper()

	upgrader := websocket.Upgrader{}
	attached := make(chan struct{})

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Error(err)
			return
		}

		c := &client{conn: conn, spaceID: spaceID, send: make(chan []byte, 1)}
		close(attached)

		if drain {
			hub.serveClient(c)
		} else {
			hub.add(c)
		}
	}))
	t.Cleanup(server.Close)

	url := "ws" + strings.TrimPrefix(server.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	<-attached

	return conn
}

func Test_Publish_DeliversToSubscribedSpace(t *testing.T) {
	hub := newTestHub()
	spaceID := uuid.New()

	conn := newHubConn(t, hub, spaceID, true)

	hub.Publish(spaceID, "staff_members")

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, payload, err := conn.ReadMessage()
	require.NoError(t, err)

	var event ChangeEvent
	require.NoError(t, json.Unmarshal(payload, &event))
	assert.Equal(t, "staff_members", event.Table)
	assert.Equal(t, spaceID, event.SpaceID)
}

func Test_Publish_EvictsSlowClientAndClosesConn(t *testing.T) {
	hub := newTestHub()
	spaceID := uuid.New()

	conn := newHubConn(t, hub, spaceID, false)
	require.Equal(t, 1, hub.ClientCount())

	// First publish fills the stalled buffer, second one evicts.
	hub.Publish(spaceID, "stream_events")
	hub.Publish(spaceID, "stream_events")

	assert.Equal(t, 0, hub.ClientCount())

	// Eviction tears down the connection itself, not just the send
	// channel: the peer sees the close instead of a half-dead socket.
	// Nothing was ever written, so the first read already fails.
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, _, err := conn.ReadMessage()
	assert.Error(t, err)
}
