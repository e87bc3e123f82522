package ws_game

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/humanbelnik/fakeartist/core/internal/model"
	"github.com/humanbelnik/fakeartist/core/internal/service/roles"
	"github.com/humanbelnik/fakeartist/core/internal/service/timer"
	usecase_game "github.com/humanbelnik/fakeartist/core/internal/usecase/game"
)

const (
	msgGameNotFound    = "Game not found"
	msgInvalidSettings = "Invalid settings"
	msgInternalError   = "Something went wrong"
)

// Gateway routes inbound socket actions to the game usecase and fans the
// results back out: room-wide broadcasts for shared state, directed emits
// for per-member secrets and signals.
type Gateway struct {
	usecase *usecase_game.Usecase
	hub     *Hub
	timers  *timer.Service
	logger  *slog.Logger
}

func NewGateway(usecase *usecase_game.Usecase, hub *Hub, timers *timer.Service) *Gateway {
	return &Gateway{
		usecase: usecase,
		hub:     hub,
		timers:  timers,
		logger:  slog.Default(),
	}
}

type inboundMessage struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

type joinGamePayload struct {
	GameCode   string `json:"gameCode"`
	PlayerName string `json:"playerName"`
}

type removePlayerPayload struct {
	GameCode string `json:"gameCode"`
	PlayerID string `json:"playerId"`
}

type updateSettingsPayload struct {
	GameCode string         `json:"gameCode"`
	Settings model.Settings `json:"settings"`
}

// Serve pumps one connection until it drops, then runs the implicit
// leave. Called from the upgrade handler's goroutine.
func (g *Gateway) Serve(client *Client) {
	g.hub.Register(client)
	go g.startClientWriting(client)
	g.startClientReading(client)
}

func (g *Gateway) startClientReading(client *Client) {
	defer func() {
		g.handleDisconnect(context.Background(), client)
		client.Conn.Close()
	}()

	for {
		_, raw, err := client.Conn.ReadMessage()
		if err != nil {
			break
		}
		g.handleMessage(context.Background(), client, raw)
	}
}

func (g *Gateway) startClientWriting(client *Client) {
	defer client.Conn.Close()

	for event := range client.Send {
		if err := client.Conn.WriteJSON(event); err != nil {
			break
		}
	}
}

func (g *Gateway) handleMessage(ctx context.Context, client *Client, raw []byte) {
	var msg inboundMessage
	if err := json.Unmarshal(raw, &msg); err != nil {
		g.logger.Warn("malformed message", "socket_id", client.SocketID, "error", err)
		return
	}

	switch msg.Event {
	case "createGame":
		g.handleCreateGame(ctx, client, msg.Data)
	case "joinGame":
		g.handleJoinGame(ctx, client, msg.Data)
	case "joinRoom":
		g.handleJoinRoom(client, msg.Data)
	case "startGame":
		g.handleStartGame(ctx, client, msg.Data)
	case "removePlayer":
		g.handleRemovePlayer(ctx, client, msg.Data)
	case "updateSettings":
		g.handleUpdateSettings(ctx, client, msg.Data)
	default:
		g.logger.Warn("unknown event", "event", msg.Event, "socket_id", client.SocketID)
	}
}

func (g *Gateway) handleCreateGame(ctx context.Context, client *Client, data json.RawMessage) {
	var playerName string
	if err := json.Unmarshal(data, &playerName); err != nil || playerName == "" {
		g.sendError(client, msgInternalError)
		return
	}

	game, err := g.usecase.CreateGame(ctx, client.SocketID, playerName)
	if err != nil {
		g.logger.Error("failed to create game", "error", err)
		g.sendError(client, msgInternalError)
		return
	}

	g.hub.Subscribe(client, game.Code)
	g.hub.SendToSocket(client.SocketID, Event{Type: EventGameCreated, Payload: newGameView(game)})
}

func (g *Gateway) handleJoinGame(ctx context.Context, client *Client, data json.RawMessage) {
	var payload joinGamePayload
	if err := json.Unmarshal(data, &payload); err != nil {
		g.sendError(client, msgInternalError)
		return
	}

	game, err := g.usecase.JoinGame(ctx, payload.GameCode, client.SocketID, payload.PlayerName)
	if err != nil {
		if errors.Is(err, usecase_game.ErrGameNotFound) {
			g.sendError(client, msgGameNotFound)
			return
		}
		g.logger.Error("failed to join game", "room", payload.GameCode, "error", err)
		g.sendError(client, msgInternalError)
		return
	}

	g.hub.Subscribe(client, game.Code)
	g.hub.BroadcastToRoom(game.Code, Event{Type: EventPlayerJoined, Payload: newGameView(game)})
}

// joinRoom only subscribes the connection to the room's broadcasts, for
// page loads that already hold a membership. No state is mutated.
func (g *Gateway) handleJoinRoom(client *Client, data json.RawMessage) {
	var code string
	if err := json.Unmarshal(data, &code); err != nil || code == "" {
		return
	}
	g.hub.Subscribe(client, code)
}

func (g *Gateway) handleStartGame(ctx context.Context, client *Client, data json.RawMessage) {
	var code string
	if err := json.Unmarshal(data, &code); err != nil {
		return
	}

	game, result, err := g.usecase.StartGame(ctx, code, client.SocketID)
	if err != nil {
		// A non-master pressing start is ignored, same as a stale code.
		g.logger.Info("start rejected", "room", code, "socket_id", client.SocketID, "error", err)
		return
	}

	go g.timers.Run(context.Background(), game.Code)

	// One shared round result, N single-recipient messages. The secret
	// word never rides a broadcast.
	view := newGameView(game)
	for _, delivery := range result.Deliveries {
		g.hub.SendToSocket(delivery.PlayerID, Event{
			Type:    EventGameStarted,
			Payload: newStartedView(view, delivery),
		})
	}
}

func (g *Gateway) handleRemovePlayer(ctx context.Context, client *Client, data json.RawMessage) {
	var payload removePlayerPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return
	}

	game, err := g.usecase.RemovePlayer(ctx, payload.GameCode, client.SocketID, payload.PlayerID)
	if err != nil {
		g.logger.Info("remove rejected", "room", payload.GameCode, "socket_id", client.SocketID, "error", err)
		return
	}

	g.hub.BroadcastToRoom(game.Code, Event{Type: EventPlayerLeft, Payload: newGameView(game)})
	g.hub.SendToSocket(payload.PlayerID, Event{Type: EventKicked})
}

func (g *Gateway) handleUpdateSettings(ctx context.Context, client *Client, data json.RawMessage) {
	var payload updateSettingsPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return
	}

	game, err := g.usecase.UpdateSettings(ctx, payload.GameCode, client.SocketID, payload.Settings)
	if err != nil {
		if errors.Is(err, usecase_game.ErrInvalidSettings) {
			g.sendError(client, msgInvalidSettings)
			return
		}
		g.logger.Info("settings update rejected", "room", payload.GameCode, "socket_id", client.SocketID, "error", err)
		return
	}

	g.hub.BroadcastToRoom(game.Code, Event{Type: EventSettingsUpdated, Payload: newGameView(game)})
}

// handleDisconnect runs the implicit leave. Idempotent: a connection that
// never joined a game broadcasts nothing.
func (g *Gateway) handleDisconnect(ctx context.Context, client *Client) {
	g.hub.Unregister(client)

	game, err := g.usecase.Leave(ctx, client.SocketID)
	if err != nil {
		g.logger.Error("failed to process disconnect", "socket_id", client.SocketID, "error", err)
		return
	}
	if game != nil {
		g.hub.BroadcastToRoom(game.Code, Event{Type: EventPlayerLeft, Payload: newGameView(*game)})
	}
}

func (g *Gateway) sendError(client *Client, message string) {
	g.hub.SendToSocket(client.SocketID, Event{Type: EventError, Payload: message})
}

// gameView is the shared state clients may see. The secret word, fake
// artist id and confused word stay server-side; they reach members only
// through their own gameStarted delivery.
type gameView struct {
	Code     string         `json:"code"`
	Players  []model.Player `json:"players"`
	State    string         `json:"state"`
	Settings model.Settings `json:"settings"`
	Category string         `json:"category,omitempty"`
	Timer    int            `json:"timer,omitempty"`
}

func newGameView(game model.Game) gameView {
	return gameView{
		Code:     game.Code,
		Players:  game.Players,
		State:    game.State,
		Settings: game.Settings,
		Category: game.Category,
		Timer:    game.Timer,
	}
}

type startedView struct {
	gameView
	Role roles.Role `json:"role"`
	Word *string    `json:"word"`
}

func newStartedView(view gameView, delivery roles.Delivery) startedView {
	return startedView{
		gameView: view,
		Role:     delivery.Role,
		Word:     delivery.Word,
	}
}
