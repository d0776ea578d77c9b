package websocket

import (
	"encoding/json"

	"github.com/rocketscienceinc/multigame-backend/internal/entity"
)

const (
	actionSessionStart   = "session:start"
	actionSessionGet     = "session:get"
	actionSessionPlayers = "session:players"
	actionSessionMode    = "session:mode"
	actionSessionMove    = "session:move"
	actionSessionReset   = "session:reset"
	actionSessionAbandon = "session:abandon"
	actionLeaderboardGet = "leaderboard:get"

	actionLeaderboardUpdate = "leaderboard:update"
)

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type Payload struct {
	SessionID string `json:"sessionId,omitempty"`
	PlayerX   string `json:"playerX,omitempty"`
	PlayerO   string `json:"playerO,omitempty"`
	Mode      string `json:"mode,omitempty"`
	Position  *int   `json:"position,omitempty"`
}

type ResponsePayload struct {
	Session     *entity.Session       `json:"session,omitempty"`
	Leaderboard []entity.PlayerRecord `json:"leaderboard,omitempty"`
	Error       string                `json:"error,omitempty"`
}
