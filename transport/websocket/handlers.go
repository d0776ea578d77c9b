package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rocketscienceinc/multigame-backend/internal/apperror"
	"github.com/rocketscienceinc/multigame-backend/internal/entity"
)

var (
	ErrUnknownAction    = errors.New("unknown action")
	ErrMissingSessionID = errors.New("session id is required")
	ErrMissingPosition  = errors.New("position is required")
)

// handleMessage - runs the handler of the action, the reply echoes the action.
func (that *Server) handleMessage(message *Message) Message {
	log := that.logger.With("method", "handleMessage", "action", message.Action)
	ctx := context.Background()

	response, err := that.dispatch(ctx, message)
	if err != nil {
		if !apperror.IsValidation(err) && !errors.Is(err, apperror.ErrNotFound) {
			log.Error("error processing message", "error", err)
		}

		response = ResponsePayload{Error: err.Error()}
	}

	reply, err := newMessage(message.Action, response)
	if err != nil {
		log.Error("failed to build reply", "error", err)
		reply = Message{Action: message.Action}
	}

	return reply
}

func (that *Server) dispatch(ctx context.Context, message *Message) (ResponsePayload, error) {
	handler, ok := that.handlers[message.Action]
	if !ok {
		return ResponsePayload{}, fmt.Errorf("%w: %q", ErrUnknownAction, message.Action)
	}

	var payload Payload
	if len(message.Payload) > 0 {
		if err := json.Unmarshal(message.Payload, &payload); err != nil {
			return ResponsePayload{}, fmt.Errorf("failed to unmarshal payload: %w", err)
		}
	}

	return handler(ctx, &payload)
}

func sessionResponse(session *entity.Session, err error) (ResponsePayload, error) {
	if err != nil {
		return ResponsePayload{}, err
	}

	return ResponsePayload{Session: session}, nil
}

func (that *Server) handleStart(ctx context.Context, payload *Payload) (ResponsePayload, error) {
	return sessionResponse(that.sessions.StartSession(ctx, payload.PlayerX, payload.PlayerO, payload.Mode))
}

func (that *Server) handleGet(ctx context.Context, payload *Payload) (ResponsePayload, error) {
	if payload.SessionID == "" {
		return ResponsePayload{}, ErrMissingSessionID
	}

	return sessionResponse(that.sessions.GetSession(ctx, payload.SessionID))
}

func (that *Server) handlePlayers(ctx context.Context, payload *Payload) (ResponsePayload, error) {
	if payload.SessionID == "" {
		return ResponsePayload{}, ErrMissingSessionID
	}

	return sessionResponse(that.sessions.ChangePlayers(ctx, payload.SessionID, payload.PlayerX, payload.PlayerO))
}

func (that *Server) handleMode(ctx context.Context, payload *Payload) (ResponsePayload, error) {
	if payload.SessionID == "" {
		return ResponsePayload{}, ErrMissingSessionID
	}

	return sessionResponse(that.sessions.SelectMode(ctx, payload.SessionID, payload.Mode))
}

func (that *Server) handleMove(ctx context.Context, payload *Payload) (ResponsePayload, error) {
	if payload.SessionID == "" {
		return ResponsePayload{}, ErrMissingSessionID
	}

	if payload.Position == nil {
		return ResponsePayload{}, ErrMissingPosition
	}

	return sessionResponse(that.sessions.MakeMove(ctx, payload.SessionID, *payload.Position))
}

func (that *Server) handleReset(ctx context.Context, payload *Payload) (ResponsePayload, error) {
	if payload.SessionID == "" {
		return ResponsePayload{}, ErrMissingSessionID
	}

	return sessionResponse(that.sessions.ResetGame(ctx, payload.SessionID))
}

func (that *Server) handleAbandon(ctx context.Context, payload *Payload) (ResponsePayload, error) {
	if payload.SessionID == "" {
		return ResponsePayload{}, ErrMissingSessionID
	}

	return sessionResponse(that.sessions.AbandonGame(ctx, payload.SessionID))
}

func (that *Server) handleLeaderboard(ctx context.Context, _ *Payload) (ResponsePayload, error) {
	records, err := that.hub.leaderboard.Standings(ctx)
	if err != nil {
		return ResponsePayload{}, fmt.Errorf("failed to get leaderboard: %w", err)
	}

	return ResponsePayload{Leaderboard: records}, nil
}
