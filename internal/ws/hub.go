package ws

import (
	"encoding/json"
	"sync"

	"wheel_backend/internal/domain"
	"wheel_backend/internal/logger"
)

// Hub fans spin events out to connected dashboard clients. It is
// broadcast-only: clients never send anything the server acts on.
type Hub struct {
	mu      sync.RWMutex
	clients map[*Client]struct{}
}

func NewHub() *Hub {
	return &Hub{clients: make(map[*Client]struct{})}
}

func (h *Hub) register(c *Client) {
	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()
	logger.Debug("feed client connected", "user", c.Username)
}

func (h *Hub) unregister(c *Client) {
	h.mu.Lock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
	}
	h.mu.Unlock()
	logger.Debug("feed client disconnected", "user", c.Username)
}

// PublishSpin implements service.Publisher. Slow clients are dropped
// rather than allowed to stall the spin path.
func (h *Hub) PublishSpin(entry domain.PlayLogEntry) {
	msg, err := json.Marshal(feedEvent{Type: "spin", Play: entry})
	if err != nil {
		return
	}

	h.mu.RLock()
	stale := make([]*Client, 0)
	for c := range h.clients {
		select {
		case c.send <- msg:
		default:
			stale = append(stale, c)
		}
	}
	h.mu.RUnlock()

	for _, c := range stale {
		h.unregister(c)
	}
}

type feedEvent struct {
	Type string              `json:"type"`
	Play domain.PlayLogEntry `json:"play"`
}
