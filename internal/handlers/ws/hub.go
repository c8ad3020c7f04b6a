package ws

import (
	"encoding/json"
	"log"
	"sync"
)

// Envelope is the wire frame for every message in both directions
type Envelope struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}

// Hub tracks connected clients and their room membership. It is the send
// side of the transport: services hand it events and it fans them out.
// Sends never block; a client whose buffer is full misses the frame.
type Hub struct {
	mu      sync.RWMutex
	clients map[string]*Client
	rooms   map[string]map[string]*Client
}

// NewHub creates an empty hub
func NewHub() *Hub {
	return &Hub{
		clients: make(map[string]*Client),
		rooms:   make(map[string]map[string]*Client),
	}
}

// Register adds a connected client
func (h *Hub) Register(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[client.ID] = client
}

// Unregister drops a client and its room memberships
func (h *Hub) Unregister(connID string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	client, ok := h.clients[connID]
	if !ok {
		return
	}
	delete(h.clients, connID)
	for _, members := range h.rooms {
		delete(members, connID)
	}
	close(client.send)
}

// Unicast sends an event to a single connection
func (h *Hub) Unicast(connID, event string, data any) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if client, ok := h.clients[connID]; ok {
		h.deliver(client, event, data)
	}
}

// Broadcast sends an event to every member of a room
func (h *Hub) Broadcast(roomID, event string, data any) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, client := range h.rooms[roomID] {
		h.deliver(client, event, data)
	}
}

// JoinRoom adds a connection to a room, creating the room on first join
func (h *Hub) JoinRoom(roomID, connID string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	client, ok := h.clients[connID]
	if !ok {
		return
	}
	if h.rooms[roomID] == nil {
		h.rooms[roomID] = make(map[string]*Client)
	}
	h.rooms[roomID][connID] = client
}

// CloseRoom forgets a room. Connections stay open; only the membership goes.
func (h *Hub) CloseRoom(roomID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.rooms, roomID)
}

// deliver pushes one frame onto the client's buffer. Callers hold at least
// the read lock so the buffer cannot close mid-send.
func (h *Hub) deliver(client *Client, event string, data any) {
	frame, err := json.Marshal(Envelope{Event: event, Data: data})
	if err != nil {
		log.Printf("failed to encode %s frame: %v", event, err)
		return
	}

	select {
	case client.send <- frame:
	default:
		log.Printf("dropping %s frame for slow client %s", event, client.ID)
	}
}
