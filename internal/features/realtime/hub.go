package realtime

import (
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// ChangeEvent tells subscribed clients that rows in a table changed for
// their space. Clients respond by re-fetching the whole collection; no
// row-level payload is sent.
type ChangeEvent struct {
	Table   string    `json:"table"`
	SpaceID uuid.UUID `json:"spaceId"`
}

type client struct {
	conn    *websocket.Conn
	spaceID uuid.UUID
	send    chan []byte
}

type Hub struct {
	mu      sync.RWMutex
	clients map[*client]struct{}
	logger  *slog.Logger
}

func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		clients: make(map[*client]struct{}),
		logger:  logger,
	}
}

// Publish broadcasts a change event to every client subscribed to the
// space. Slow or dead clients are evicted instead of blocking the caller.
func (h *Hub) Publish(spaceID uuid.UUID, table string) {
	payload, err := json.Marshal(ChangeEvent{Table: table, SpaceID: spaceID})
	if err != nil {
		h.logger.Error("Failed to marshal change event", "error", err)
		return
	}

	h.mu.RLock()
	var stale []*client
	for c := range h.clients {
		if c.spaceID != spaceID {
			continue
		}

		select {
		case c.send <- payload:
		default:
			stale = append(stale, c)
		}
	}
	h.mu.RUnlock()

	for _, c := range stale {
		h.remove(c)
	}
}

func (h *Hub) add(c *client) {
	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()
}

func (h *Hub) remove(c *client) {
	h.mu.Lock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
		_ = c.conn.Close()
	}
	h.mu.Unlock()
}

func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *Hub) serveClient(c *client) {
	h.add(c)

	go func() {
		for payload := range c.send {
			if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				h.remove(c)
				return
			}
		}
	}()

	// Read loop only detects disconnects; clients never send data.
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			h.remove(c)
			return
		}
	}
}
