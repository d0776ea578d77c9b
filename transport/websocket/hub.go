package websocket

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/multigame-backend/internal/entity"
)

const sendBufferSize = 16

type standingsSource interface {
	Standings(ctx context.Context) ([]entity.PlayerRecord, error)
}

type client struct {
	conn *websocket.Conn
	send chan Message
}

// Hub - the open connections, the leaderboard is pushed to all of them after every finished game.
type Hub struct {
	logger      *slog.Logger
	leaderboard standingsSource

	mu      sync.RWMutex
	clients map[*client]struct{}
}

func NewHub(logger *slog.Logger, leaderboard standingsSource) *Hub {
	return &Hub{
		logger:      logger.With("component", "websocket-hub"),
		leaderboard: leaderboard,
		clients:     make(map[*client]struct{}),
	}
}

func (that *Hub) register(c *client) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.clients[c] = struct{}{}
}

func (that *Hub) unregister(c *client) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if _, ok := that.clients[c]; ok {
		delete(that.clients, c)
		close(c.send)
	}
}

// OnGameFinished - sends the updated leaderboard to every connection.
func (that *Hub) OnGameFinished(ctx context.Context, event entity.GameFinished) {
	log := that.logger.With("method", "OnGameFinished", "sessionID", event.SessionID)

	records, err := that.leaderboard.Standings(ctx)
	if err != nil {
		log.Error("failed to get leaderboard", "error", err)
		return
	}

	message, err := newMessage(actionLeaderboardUpdate, ResponsePayload{Leaderboard: records})
	if err != nil {
		log.Error("failed to build leaderboard update", "error", err)
		return
	}

	that.broadcast(message)
}

func (that *Hub) broadcast(message Message) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	for c := range that.clients {
		that.trySend(c, message)
	}
}

// trySend - a slow connection loses the message instead of blocking the game.
func (that *Hub) trySend(c *client, message Message) {
	select {
	case c.send <- message:
	default:
		that.logger.Warn("connection is too slow, message dropped", "action", message.Action)
	}
}

// Close - disconnects every client.
func (that *Hub) Close() {
	that.mu.RLock()
	defer that.mu.RUnlock()

	for c := range that.clients {
		_ = c.conn.Close()
	}
}

func newMessage(action string, payload ResponsePayload) (Message, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return Message{}, fmt.Errorf("failed to marshal payload: %w", err)
	}

	return Message{Action: action, Payload: raw}, nil
}
