package websocket

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/tictactoe-api/internal/config"
	"github.com/rocketscienceinc/tictactoe-api/internal/entity"
	"github.com/rocketscienceinc/tictactoe-api/internal/metrics"
	"github.com/rocketscienceinc/tictactoe-api/internal/service"
)

const (
	defaultWriteTimeout = 10 * time.Second
	defaultPongTimeout  = 60 * time.Second
	defaultSendBuffer   = 16

	maxMessageSize = 4096
	publishTimeout = 5 * time.Second
)

type userAuthenticator interface {
	Authenticate(ctx context.Context, token string) (*entity.User, *service.Claims, error)
}

type gameUseCase interface {
	GetGame(ctx context.Context, userID, gameID string) (*entity.Game, error)
	MakeTurn(ctx context.Context, userID, gameID string, cell int) (*entity.Game, error)
	Resign(ctx context.Context, userID, gameID string) (*entity.Game, error)
}

type eventPublisher interface {
	Publish(ctx context.Context, event *entity.GameEvent) error
}

type Server struct {
	logger  *slog.Logger
	metrics *metrics.Metrics

	upgrader websocket.Upgrader
	hub      *hub

	writeTimeout time.Duration
	pongTimeout  time.Duration
	sendBuffer   int

	users  userAuthenticator
	games  gameUseCase
	events eventPublisher

	handlers map[string]func(ctx context.Context, c *client, payload *Payload) error
}

func New(
	logger *slog.Logger,
	conf config.WebSocket,
	metrics *metrics.Metrics,
	users userAuthenticator,
	games gameUseCase,
	events eventPublisher,
) *Server {
	server := &Server{
		logger:  logger.With("component", "websocket"),
		metrics: metrics,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(_ *http.Request) bool {
				return true
			},
		},
		hub:          newHub(),
		writeTimeout: durationOr(conf.WriteTimeout, defaultWriteTimeout),
		pongTimeout:  durationOr(conf.PongTimeout, defaultPongTimeout),
		sendBuffer:   defaultSendBuffer,
		users:        users,
		games:        games,
		events:       events,

		handlers: make(map[string]func(context.Context, *client, *Payload) error),
	}

	if conf.SendBuffer > 0 {
		server.sendBuffer = conf.SendBuffer
	}

	server.handlers[actionGameTurn] = server.handleGameTurn
	server.handlers[actionGameState] = server.handleGameState
	server.handlers[actionGameLeave] = server.handleGameLeave
	server.handlers[actionChat] = server.handleChatMessage

	return server
}

// Serve - upgrades the request and serves the socket of one user in one game until it disconnects.
func (that *Server) Serve(writer http.ResponseWriter, req *http.Request, gameID string) {
	log := that.logger.With("method", "Serve", "gameID", gameID)

	conn, err := that.upgrader.Upgrade(writer, req, nil)
	if err != nil {
		log.Warn("failed to upgrade connection", "error", err)
		return
	}

	ctx, cancel := context.WithCancel(req.Context())
	defer cancel()

	user, _, err := that.users.Authenticate(ctx, req.URL.Query().Get("token"))
	if err != nil {
		log.Info("rejecting unauthenticated socket", "error", err)
		that.reject(conn, "authentication required")
		return
	}

	game, err := that.games.GetGame(ctx, user.ID, gameID)
	if err != nil || !game.IsParticipant(user.ID) {
		log.Info("rejecting socket of non participant", "userID", user.ID, "error", err)
		that.reject(conn, "not a participant of the game")
		return
	}

	c := newClient(conn, user, gameID, that.sendBuffer)

	that.hub.join(c)
	that.metrics.ConnectionOpened()

	go c.writePump(that.writeTimeout, that.pingPeriod())

	that.sendTo(c, entity.EventConnected, Payload{
		GameID:   gameID,
		Game:     game,
		UserID:   user.ID,
		Username: user.Username,
		Message:  "Connected to game " + gameID,
	})

	that.broadcast(ctx, &entity.GameEvent{
		Action:   entity.EventPlayerJoined,
		GameID:   gameID,
		UserID:   user.ID,
		Username: user.Username,
	})

	log.Info("WebSocket connection established", "userID", user.ID)

	that.handleMessages(ctx, c)

	that.disconnect(ctx, c)
}

// handleMessages - processes messages from the client until the socket fails.
func (that *Server) handleMessages(ctx context.Context, c *client) {
	log := that.logger.With("method", "handleMessages", "gameID", c.gameID, "userID", c.user.ID)

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(that.pongTimeout))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(that.pongTimeout))
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure, websocket.CloseNoStatusReceived) {
				log.Warn("error reading message", "error", err)
			}

			return
		}

		var message Message
		if err = json.Unmarshal(data, &message); err != nil {
			that.sendError(c, "", "malformed message")
			continue
		}

		handler, ok := that.handlers[message.Action]
		if !ok {
			that.sendError(c, message.Action, "unknown action "+message.Action)
			continue
		}

		payload, err := decodePayload(&message)
		if err != nil {
			that.sendError(c, message.Action, "malformed payload")
			continue
		}

		if err = handler(ctx, c, payload); err != nil {
			log.Info("failed to process message", "action", message.Action, "error", err)
			that.sendError(c, message.Action, errorDetail(err))
		}
	}
}

func (that *Server) disconnect(ctx context.Context, c *client) {
	c.close()

	if !that.hub.leave(c) {
		return
	}

	that.metrics.ConnectionClosed()

	that.broadcast(context.WithoutCancel(ctx), &entity.GameEvent{
		Action:   entity.EventPlayerLeft,
		GameID:   c.gameID,
		UserID:   c.user.ID,
		Username: c.user.Username,
	})

	that.logger.Info("WebSocket connection closed", "gameID", c.gameID, "userID", c.user.ID)
}

// Dispatch - delivers the event to every socket of its game held by this process.
func (that *Server) Dispatch(event *entity.GameEvent) {
	log := that.logger.With("method", "Dispatch")

	clients := that.hub.clients(event.GameID)
	if len(clients) == 0 {
		return
	}

	data, err := encodeEvent(event)
	if err != nil {
		log.Error("failed to encode event", "action", event.Action, "error", err)
		return
	}

	for _, c := range clients {
		if !c.enqueue(data) {
			log.Warn("dropping slow client", "gameID", c.gameID, "userID", c.user.ID)
		}
	}
}

// Close - disconnects every socket, used on shutdown.
func (that *Server) Close() {
	deadline := time.Now().Add(that.writeTimeout)
	message := websocket.FormatCloseMessage(websocket.CloseGoingAway, "server is shutting down")

	for _, c := range that.hub.all() {
		_ = c.conn.WriteControl(websocket.CloseMessage, message, deadline)
		c.close()
	}
}

// Connections - number of sockets watching the game on this process.
func (that *Server) Connections(gameID string) int {
	return that.hub.count(gameID)
}

// broadcast - publishes through the event bus, falls back to local delivery when the bus is down.
func (that *Server) broadcast(ctx context.Context, event *entity.GameEvent) {
	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	if err := that.events.Publish(ctx, event); err != nil {
		that.logger.Error("failed to publish event", "action", event.Action, "gameID", event.GameID, "error", err)
		that.Dispatch(event)
	}
}

func (that *Server) sendTo(c *client, action string, payload Payload) {
	data, err := encodeMessage(action, payload)
	if err != nil {
		that.logger.Error("failed to encode message", "action", action, "error", err)
		return
	}

	c.enqueue(data)
}

func (that *Server) sendError(c *client, action, detail string) {
	that.sendTo(c, entity.EventError, Payload{
		GameID:  c.gameID,
		Message: action,
		Error:   detail,
	})
}

func (that *Server) reject(conn *websocket.Conn, reason string) {
	message := websocket.FormatCloseMessage(websocket.ClosePolicyViolation, reason)

	_ = conn.WriteControl(websocket.CloseMessage, message, time.Now().Add(that.writeTimeout))
	_ = conn.Close()
}

func (that *Server) pingPeriod() time.Duration {
	return that.pongTimeout * 9 / 10
}

func durationOr(value, fallback time.Duration) time.Duration {
	if value <= 0 {
		return fallback
	}

	return value
}
