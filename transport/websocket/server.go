package websocket

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"

	"github.com/rocketscienceinc/multigame-backend/internal/entity"
)

type sessionService interface {
	StartSession(ctx context.Context, playerX, playerO, mode string) (*entity.Session, error)
	GetSession(ctx context.Context, id string) (*entity.Session, error)
	ChangePlayers(ctx context.Context, id, playerX, playerO string) (*entity.Session, error)
	SelectMode(ctx context.Context, id, mode string) (*entity.Session, error)
	MakeMove(ctx context.Context, id string, position int) (*entity.Session, error)
	ResetGame(ctx context.Context, id string) (*entity.Session, error)
	AbandonGame(ctx context.Context, id string) (*entity.Session, error)
}

type handlerFunc func(ctx context.Context, payload *Payload) (ResponsePayload, error)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(*http.Request) bool {
		return true
	},
}

type Server struct {
	logger   *slog.Logger
	sessions sessionService
	hub      *Hub

	handlers map[string]handlerFunc
	srv      *http.Server
}

func New(logger *slog.Logger, port string, sessions sessionService, hub *Hub) *Server {
	server := &Server{
		logger:   logger.With("component", "websocket"),
		sessions: sessions,
		hub:      hub,

		handlers: make(map[string]handlerFunc),
	}

	server.handlers[actionSessionStart] = server.handleStart
	server.handlers[actionSessionGet] = server.handleGet
	server.handlers[actionSessionPlayers] = server.handlePlayers
	server.handlers[actionSessionMode] = server.handleMode
	server.handlers[actionSessionMove] = server.handleMove
	server.handlers[actionSessionReset] = server.handleReset
	server.handlers[actionSessionAbandon] = server.handleAbandon
	server.handlers[actionLeaderboardGet] = server.handleLeaderboard

	server.srv = &http.Server{
		Addr:        ":" + port,
		Handler:     server.Router(),
		ReadTimeout: 10 * time.Second,
		IdleTimeout: 30 * time.Second,
	}

	return server
}

func (that *Server) Router() *httprouter.Router {
	router := httprouter.New()
	router.GET("/ws", that.upgradeToWebSocket)

	return router
}

// Start - starts WebSocket server.
func (that *Server) Start() error {
	that.logger.Info("Starting WebSocket server", "addr", that.srv.Addr)

	if err := that.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown - stops accepting connections and closes the open ones.
func (that *Server) Shutdown(ctx context.Context) error {
	err := that.srv.Shutdown(ctx)
	that.hub.Close()

	if err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}

	return nil
}

// upgradeToWebSocket - upgrades the connection to WebSocket.
func (that *Server) upgradeToWebSocket(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	log := that.logger.With("method", "upgradeToWebSocket")

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error("failed to upgrade connection", "error", err)
		return
	}

	c := &client{
		conn: conn,
		send: make(chan Message, sendBufferSize),
	}

	that.hub.register(c)

	log.Info("WebSocket connection established")

	go that.writePump(c)
	that.readPump(c)
}

// readPump - processes messages from the client until the connection is closed.
func (that *Server) readPump(c *client) {
	log := that.logger.With("method", "readPump")

	defer func() {
		that.hub.unregister(c)
		_ = c.conn.Close()
	}()

	for {
		var message Message
		if err := c.conn.ReadJSON(&message); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Error("error reading message", "error", err)
			}
			return
		}

		that.hub.trySend(c, that.handleMessage(&message))
	}
}

func (that *Server) writePump(c *client) {
	defer c.conn.Close()

	for message := range c.send {
		if err := c.conn.WriteJSON(message); err != nil {
			that.logger.Error("failed to write message", "method", "writePump", "error", err)
			return
		}
	}
}
