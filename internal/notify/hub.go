// Package notify fans database change events out to dashboard clients.
// Triggers on the domain tables emit pg_notify payloads; a listener
// forwards them to an in-process hub and each connected client gets the
// stream over SSE.
package notify

import "sync"

// Hub manages the change-feed subscribers.
type Hub struct {
	mu      sync.Mutex
	clients map[chan []byte]struct{}
}

func NewHub() *Hub {
	return &Hub{clients: make(map[chan []byte]struct{})}
}

// Broadcast delivers an event to every subscriber. A subscriber whose
// buffer is full misses the event rather than blocking the feed.
func (h *Hub) Broadcast(data []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for ch := range h.clients {
		select {
		case ch <- data:
		default:
		}
	}
}

// Subscribe registers a new client. Returns the channel and an
// unsubscribe func.
func (h *Hub) Subscribe() (chan []byte, func()) {
	ch := make(chan []byte, 32)
	h.mu.Lock()
	h.clients[ch] = struct{}{}
	h.mu.Unlock()
	return ch, func() {
		h.mu.Lock()
		delete(h.clients, ch)
		h.mu.Unlock()
		close(ch)
	}
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}
