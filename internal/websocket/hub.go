package websocket

import (
	"sync"

	"corp-portal-be/internal/pkg/logger"
)

// Hub tracks which clients are in which department room and fans messages
// out to them. All operations take the single hub lock; none of them block
// on the network, a client that cannot keep up is pruned instead.
type Hub struct {
	rooms map[string]map[*Client]struct{}
	mu    sync.RWMutex
	log   logger.ILogger
}

func NewHub(log logger.ILogger) *Hub {
	return &Hub{
		rooms: make(map[string]map[*Client]struct{}),
		log:   log,
	}
}

// Join places the client in the room, moving it out of its previous room
// first. A client is in at most one room.
func (h *Hub) Join(client *Client, room string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if client.CurrentRoom != "" {
		h.removeLocked(client)
	}
	if h.rooms[room] == nil {
		h.rooms[room] = make(map[*Client]struct{})
	}
	h.rooms[room][client] = struct{}{}
	client.CurrentRoom = room

	h.log.Info("Hub", "client joined room", map[string]interface{}{
		"room":      room,
		"room_size": len(h.rooms[room]),
	})
}

// Leave removes the client from its room and closes its send channel.
func (h *Hub) Leave(client *Client) {
	h.mu.Lock()
	h.removeLocked(client)
	client.closed = true
	h.mu.Unlock()
	client.closeSend()
}

// removeLocked drops the client from its current room. Caller holds h.mu.
func (h *Hub) removeLocked(client *Client) {
	room := client.CurrentRoom
	if room == "" {
		return
	}
	if clients, ok := h.rooms[room]; ok {
		delete(clients, client)
		if len(clients) == 0 {
			delete(h.rooms, room)
		}
	}
	client.CurrentRoom = ""
}

// Broadcast delivers the payload to every client in the room, including the
// sender. Clients whose buffers are full are dropped from the room.
func (h *Hub) Broadcast(room string, payload []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for client := range h.rooms[room] {
		select {
		case client.Send <- payload:
		default:
			h.log.Warn("Hub", "client buffer full, pruning", map[string]interface{}{"room": room})
			h.pruneLocked(client)
		}
	}
}

// EmitTo delivers the payload to a single client, pruning it on a full
// buffer. Emits to a client the hub has already evicted or released are
// dropped.
func (h *Hub) EmitTo(client *Client, payload []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if client.closed {
		return
	}
	select {
	case client.Send <- payload:
	default:
		h.pruneLocked(client)
	}
}

// pruneLocked evicts a client that cannot keep up. Closing the send channel
// stops the write pump and closing the connection ends the read loop.
// Caller holds h.mu.
func (h *Hub) pruneLocked(client *Client) {
	h.removeLocked(client)
	client.closed = true
	client.closeSend()
	if client.Conn != nil {
		client.Conn.Close()
	}
}

// RoomSize reports how many clients are currently in the room.
func (h *Hub) RoomSize(room string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[room])
}
