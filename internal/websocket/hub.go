package websocket

import (
	"encoding/json"
	"log"
	"sync"
)

// Hub maintains active WebSocket connections and pushes booking
// snapshots to them. Connections are keyed by connection id so a user
// may keep several listing views open at once.
type Hub struct {
	clients map[string]*Client

	broadcast  chan *envelope
	register   chan *Client
	unregister chan *Client

	mu sync.RWMutex
}

// envelope routes a payload to a single user or to a whole role.
type envelope struct {
	userID string
	role   string
	data   []byte
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[string]*Client),
		broadcast:  make(chan *envelope, 256),
		register:   make(chan *Client),
		unregister: make(chan *Client),
	}
}

// Run starts the hub's main loop.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.ID] = client
			h.mu.Unlock()
			log.Printf("✅ [WEBSOCKET] Client connected: user=%s role=%s (total %d)",
				client.UserID, client.Role, h.ClientCount())

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client.ID]; ok {
				delete(h.clients, client.ID)
				close(client.send)
			}
			h.mu.Unlock()
			log.Printf("🔴 [WEBSOCKET] Client disconnected: user=%s (remaining %d)",
				client.UserID, h.ClientCount())

		case msg := <-h.broadcast:
			h.deliver(msg)
		}
	}
}

func (h *Hub) deliver(msg *envelope) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for id, client := range h.clients {
		if msg.userID != "" && client.UserID != msg.userID {
			continue
		}
		if msg.role != "" && client.Role != msg.role {
			continue
		}
		select {
		case client.send <- msg.data:
		default:
			// Buffer full, drop the connection.
			close(client.send)
			delete(h.clients, id)
			log.Printf("⚠️ Client buffer full, disconnecting user %s", client.UserID)
		}
	}
}

// BroadcastToUser sends a payload to every connection of one user.
func (h *Hub) BroadcastToUser(userID string, data interface{}) {
	h.enqueue(&envelope{userID: userID}, data)
}

// BroadcastToRole sends a payload to every connection with a role.
func (h *Hub) BroadcastToRole(role string, data interface{}) {
	h.enqueue(&envelope{role: role}, data)
}

func (h *Hub) enqueue(msg *envelope, data interface{}) {
	raw, err := json.Marshal(data)
	if err != nil {
		log.Printf("❌ Failed to marshal broadcast message: %v", err)
		return
	}
	msg.data = raw
	h.broadcast <- msg
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
