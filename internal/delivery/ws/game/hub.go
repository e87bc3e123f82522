package ws_game

import (
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	EventGameCreated     = "gameCreated"
	EventPlayerJoined    = "playerJoined"
	EventPlayerLeft      = "playerLeft"
	EventSettingsUpdated = "settingsUpdated"
	EventGameStarted     = "gameStarted"
	EventTimerUpdate     = "timerUpdate"
	EventTimerExpired    = "timerExpired"
	EventKicked          = "kicked"
	EventError           = "error"
)

type Event struct {
	Type    string `json:"type"`
	Payload any    `json:"payload,omitempty"`
}

// Client is one live connection. SocketID doubles as the player id of
// whichever game the connection joins.
type Client struct {
	SocketID string
	Conn     *websocket.Conn
	Send     chan Event

	// Guarded by the hub's mutex.
	roomCode string
}

func NewClient(conn *websocket.Conn) *Client {
	return &Client{
		SocketID: uuid.New().String(),
		Conn:     conn,
		Send:     make(chan Event, 16),
	}
}

// Hub tracks live connections and their room subscriptions, and fans
// events out per room or per socket.
type Hub struct {
	mu sync.Mutex

	// Connections by socket id, for directed emits.
	clients map[string]*Client
	// Sets of clients subscribed to each room code.
	rooms map[string]map[*Client]bool

	logger *slog.Logger
}

func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		clients: make(map[string]*Client),
		rooms:   make(map[string]map[*Client]bool),
		logger:  logger,
	}
}

func (h *Hub) Register(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.clients[client.SocketID] = client

	h.logger.Info("client registered", "socket_id", client.SocketID)
}

func (h *Hub) Unregister(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[client.SocketID]; !ok {
		return
	}
	delete(h.clients, client.SocketID)
	close(client.Send)

	h.dropFromRoom(client)

	h.logger.Info("client unregistered", "socket_id", client.SocketID, "room", client.roomCode)
}

// Subscribe joins the client to a room's broadcast channel. A client
// subscribes to at most one room; re-subscribing moves it.
func (h *Hub) Subscribe(client *Client, roomCode string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[client.SocketID]; !ok {
		return
	}

	h.dropFromRoom(client)
	client.roomCode = roomCode

	if _, exists := h.rooms[roomCode]; !exists {
		h.rooms[roomCode] = make(map[*Client]bool)
	}
	h.rooms[roomCode][client] = true

	h.logger.Info("client subscribed", "socket_id", client.SocketID, "room", roomCode)
}

func (h *Hub) dropFromRoom(client *Client) {
	if client.roomCode == "" {
		return
	}
	if roomClients, exists := h.rooms[client.roomCode]; exists {
		delete(roomClients, client)
		if len(roomClients) == 0 {
			delete(h.rooms, client.roomCode)
		}
	}
	client.roomCode = ""
}

func (h *Hub) BroadcastToRoom(roomCode string, event Event) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if roomClients, exists := h.rooms[roomCode]; exists {
		for client := range roomClients {
			h.deliver(client, event)
		}
	}
}

// SendToSocket emits to exactly one connection. Reports whether the
// socket was still live.
func (h *Hub) SendToSocket(socketID string, event Event) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	client, ok := h.clients[socketID]
	if !ok {
		return false
	}
	h.deliver(client, event)
	return true
}

// deliver assumes the hub mutex is held. A client whose send buffer is
// full is dropped rather than allowed to stall the whole room.
func (h *Hub) deliver(client *Client, event Event) {
	select {
	case client.Send <- event:
	default:
		delete(h.clients, client.SocketID)
		close(client.Send)
		h.dropFromRoom(client)
	}
}

// TimerUpdate implements the timer service's broadcaster.
func (h *Hub) TimerUpdate(roomCode string, remaining int) {
	h.BroadcastToRoom(roomCode, Event{Type: EventTimerUpdate, Payload: remaining})
}

// TimerExpired implements the timer service's broadcaster.
func (h *Hub) TimerExpired(roomCode string) {
	h.BroadcastToRoom(roomCode, Event{Type: EventTimerExpired})
}
