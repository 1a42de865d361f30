package server

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow local connections
	},
}

// StateMessage is one frame's recognizer state, pushed to WebSocket
// clients by the frame pipeline.
type StateMessage struct {
	Gesture   string `json:"gesture"`
	Hand      string `json:"hand"`
	Hands     int    `json:"hands"`
	Enabled   bool   `json:"enabled"`
	Dragging  bool   `json:"dragging"`
	Timestamp int64  `json:"timestamp"`
}

// StateHandler broadcasts recognizer state via WebSocket. Unlike a
// polling handler it holds no camera or detector of its own; the frame
// pipeline publishes into it after each processed frame.
type StateHandler struct {
	clients map[*websocket.Conn]bool
	mu      sync.RWMutex
}

// NewStateHandler creates a StateHandler with no connected clients.
func NewStateHandler() *StateHandler {
	return &StateHandler{
		clients: make(map[*websocket.Conn]bool),
	}
}

// ServeHTTP handles WebSocket upgrade requests.
func (h *StateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("websocket upgrade error: %v", err)
		return
	}
	defer conn.Close()

	h.mu.Lock()
	h.clients[conn] = true
	h.mu.Unlock()

	defer func() {
		h.mu.Lock()
		delete(h.clients, conn)
		h.mu.Unlock()
	}()

	// Keep connection alive by reading messages
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}

// Publish sends the state to all connected clients. It is cheap when no
// client is connected, so the pipeline can call it every frame.
func (h *StateHandler) Publish(msg StateMessage) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if len(h.clients) == 0 {
		return
	}

	if msg.Timestamp == 0 {
		msg.Timestamp = time.Now().UnixMilli()
	}

	data, err := json.Marshal(msg)
	if err != nil {
		return
	}

	for conn := range h.clients {
		conn.WriteMessage(websocket.TextMessage, data)
	}
}

// ClientCount returns the number of connected WebSocket clients.
func (h *StateHandler) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
