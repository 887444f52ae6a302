package websocket

import (
	"encoding/json"
	"sync"
	"time"

	"agorahub/internal/debate"

	"github.com/gorilla/websocket"
)

// Hub manages websocket rooms, one per active debate. It implements
// debate.Publisher, so the core hands it every broadcast the moment the
// originating mutation commits.
type Hub struct {
	mu    sync.RWMutex
	rooms map[string]*room
}

// room holds the connections attached to one debate.
type room struct {
	debateID string
	mu       sync.RWMutex
	clients  map[*websocket.Conn]*Client
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{rooms: make(map[string]*room)}
}

// Register adds a connection to the debate's room, creating the room on first
// use, and broadcasts the updated presence count.
func (h *Hub) Register(debateID string, conn *websocket.Conn, client *Client) {
	h.mu.Lock()
	r, exists := h.rooms[debateID]
	if !exists {
		r = &room{
			debateID: debateID,
			clients:  make(map[*websocket.Conn]*Client),
		}
		h.rooms[debateID] = r
	}
	h.mu.Unlock()

	r.mu.Lock()
	r.clients[conn] = client
	count := len(r.clients)
	r.mu.Unlock()

	h.broadcastPresence(debateID, count)
}

// Unregister removes a connection and broadcasts the updated presence count.
func (h *Hub) Unregister(debateID string, conn *websocket.Conn) {
	h.mu.RLock()
	r, exists := h.rooms[debateID]
	h.mu.RUnlock()

	if !exists {
		return
	}

	r.mu.Lock()
	delete(r.clients, conn)
	count := len(r.clients)
	r.mu.Unlock()

	h.broadcastPresence(debateID, count)
}

// CloseRoom drops the room for a torn-down debate and closes its
// connections. Idempotent like the registry removal it accompanies.
func (h *Hub) CloseRoom(debateID string) {
	h.mu.Lock()
	r, exists := h.rooms[debateID]
	delete(h.rooms, debateID)
	h.mu.Unlock()

	if !exists {
		return
	}

	r.mu.Lock()
	for _, client := range r.clients {
		client.shutdown()
	}
	r.clients = make(map[*websocket.Conn]*Client)
	r.mu.Unlock()
}

// Publish fans an event out to every client in the debate's room.
func (h *Hub) Publish(debateID string, event *debate.Event) {
	// Clients expect the payload as an object, not an encoded string.
	var payload interface{}
	if err := json.Unmarshal(event.Payload, &payload); err != nil {
		payload = json.RawMessage(event.Payload)
	}

	h.send(debateID, map[string]interface{}{
		"type":      event.Type,
		"payload":   payload,
		"timestamp": event.Timestamp,
	})
}

func (h *Hub) broadcastPresence(debateID string, connected int) {
	h.send(debateID, map[string]interface{}{
		"type":      debate.EventPresence,
		"payload":   debate.PresencePayload{Connected: connected},
		"timestamp": time.Now().Unix(),
	})
}

func (h *Hub) send(debateID string, message interface{}) {
	h.mu.RLock()
	r, exists := h.rooms[debateID]
	h.mu.RUnlock()

	if !exists {
		return
	}

	r.mu.RLock()
	clients := make([]*Client, 0, len(r.clients))
	for _, client := range r.clients {
		clients = append(clients, client)
	}
	r.mu.RUnlock()

	// Hand-off only; the per-client writer goroutines do the socket I/O. A
	// client whose queue is full has stopped reading and gets dropped, so a
	// broadcast never blocks the debate that emitted it.
	for _, client := range clients {
		if !client.enqueue(message) {
			h.Unregister(debateID, client.conn)
			client.shutdown()
		}
	}
}
