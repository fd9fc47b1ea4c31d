package notify

import "net/http"

type HTTPHandler struct {
	hub *Hub
}

func NewHTTPHandler(hub *Hub) *HTTPHandler {
	return &HTTPHandler{hub: hub}
}

// Events handles GET /events, streaming the change feed over SSE.
// SSE keeps the dashboard live without a WebSocket dependency.
func (h *HTTPHandler) Events(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming not supported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	flusher.Flush()

	ch, unsub := h.hub.Subscribe()
	defer unsub()

	for {
		select {
		case <-r.Context().Done():
			return
		case data := <-ch:
			w.Write([]byte("data: "))
			w.Write(data)
			w.Write([]byte("\n\n"))
			flusher.Flush()
		}
	}
}
