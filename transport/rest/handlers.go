package rest

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

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
	EndSession(ctx context.Context, id string) error
}

type leaderboardService interface {
	Standings(ctx context.Context) ([]entity.PlayerRecord, error)
	RecentGames(ctx context.Context) ([]*entity.GameResult, error)
	RecordGame(ctx context.Context, result *entity.GameResult) (*entity.GameResult, error)
}

type playersRequest struct {
	PlayerX string `json:"playerX"`
	PlayerO string `json:"playerO"`
	Mode    string `json:"mode"`
}

type modeRequest struct {
	Mode string `json:"mode"`
}

type moveRequest struct {
	Position *int `json:"position"`
}

type Handlers struct {
	logger      *slog.Logger
	sessions    sessionService
	leaderboard leaderboardService
}

func NewHandlers(logger *slog.Logger, sessions sessionService, leaderboard leaderboardService) *Handlers {
	return &Handlers{
		logger:      logger,
		sessions:    sessions,
		leaderboard: leaderboard,
	}
}

func (that *Handlers) StartSession(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	log := that.logger.With("method", "StartSession")

	var req playersRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(log, w, err)
		return
	}

	session, err := that.sessions.StartSession(r.Context(), req.PlayerX, req.PlayerO, req.Mode)
	if err != nil {
		writeError(log, w, err)
		return
	}

	writeJSON(log, w, http.StatusCreated, session)
}

func (that *Handlers) GetSession(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	log := that.logger.With("method", "GetSession")

	session, err := that.sessions.GetSession(r.Context(), ps.ByName("id"))
	if err != nil {
		writeError(log, w, err)
		return
	}

	writeJSON(log, w, http.StatusOK, session)
}

func (that *Handlers) EndSession(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	log := that.logger.With("method", "EndSession")

	if err := that.sessions.EndSession(r.Context(), ps.ByName("id")); err != nil {
		writeError(log, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (that *Handlers) ChangePlayers(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	log := that.logger.With("method", "ChangePlayers")

	var req playersRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(log, w, err)
		return
	}

	session, err := that.sessions.ChangePlayers(r.Context(), ps.ByName("id"), req.PlayerX, req.PlayerO)
	if err != nil {
		writeError(log, w, err)
		return
	}

	writeJSON(log, w, http.StatusOK, session)
}

func (that *Handlers) SelectMode(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	log := that.logger.With("method", "SelectMode")

	var req modeRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(log, w, err)
		return
	}

	session, err := that.sessions.SelectMode(r.Context(), ps.ByName("id"), req.Mode)
	if err != nil {
		writeError(log, w, err)
		return
	}

	writeJSON(log, w, http.StatusOK, session)
}

func (that *Handlers) MakeMove(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	log := that.logger.With("method", "MakeMove")

	var req moveRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(log, w, err)
		return
	}

	if req.Position == nil {
		writeError(log, w, fmt.Errorf("%w: position is required", errMalformedBody))
		return
	}

	session, err := that.sessions.MakeMove(r.Context(), ps.ByName("id"), *req.Position)
	if err != nil {
		writeError(log, w, err)
		return
	}

	writeJSON(log, w, http.StatusOK, session)
}

func (that *Handlers) ResetGame(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	log := that.logger.With("method", "ResetGame")

	session, err := that.sessions.ResetGame(r.Context(), ps.ByName("id"))
	if err != nil {
		writeError(log, w, err)
		return
	}

	writeJSON(log, w, http.StatusOK, session)
}

func (that *Handlers) AbandonGame(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	log := that.logger.With("method", "AbandonGame")

	session, err := that.sessions.AbandonGame(r.Context(), ps.ByName("id"))
	if err != nil {
		writeError(log, w, err)
		return
	}

	writeJSON(log, w, http.StatusOK, session)
}

func (that *Handlers) Standings(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	log := that.logger.With("method", "Standings")

	records, err := that.leaderboard.Standings(r.Context())
	if err != nil {
		writeError(log, w, err)
		return
	}

	writeJSON(log, w, http.StatusOK, records)
}

func (that *Handlers) RecentGames(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	log := that.logger.With("method", "RecentGames")

	games, err := that.leaderboard.RecentGames(r.Context())
	if err != nil {
		writeError(log, w, err)
		return
	}

	if games == nil {
		games = []*entity.GameResult{}
	}

	writeJSON(log, w, http.StatusOK, games)
}

func (that *Handlers) RecordGame(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	log := that.logger.With("method", "RecordGame")

	var result entity.GameResult
	if err := decodeBody(r, &result); err != nil {
		writeError(log, w, err)
		return
	}

	stored, err := that.leaderboard.RecordGame(r.Context(), &result)
	if err != nil {
		writeError(log, w, err)
		return
	}

	writeJSON(log, w, http.StatusCreated, stored)
}
