package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/rocketscienceinc/multigame-backend/internal/apperror"
	"github.com/rocketscienceinc/multigame-backend/internal/connectfour"
	"github.com/rocketscienceinc/multigame-backend/internal/entity"
	"github.com/rocketscienceinc/multigame-backend/internal/pkg"
	"github.com/rocketscienceinc/multigame-backend/internal/tictactoe"
)

type sessionRepo interface {
	CreateOrUpdate(ctx context.Context, session *entity.Session) error
	GetByID(ctx context.Context, id string) (*entity.Session, error)
	DeleteByID(ctx context.Context, id string) error
}

// OutcomeObserver - is told about every finished game exactly once.
type OutcomeObserver interface {
	OnGameFinished(ctx context.Context, event entity.GameFinished)
}

// SessionManager - owns the state of every session and reports finished games to the observer.
type SessionManager struct {
	logger *slog.Logger

	mu          sync.Mutex
	sessionRepo sessionRepo
	observer    OutcomeObserver
}

func NewSessionManager(logger *slog.Logger, sessionRepo sessionRepo, observer OutcomeObserver) *SessionManager {
	return &SessionManager{
		logger:      logger,
		sessionRepo: sessionRepo,
		observer:    observer,
	}
}

// StartSession - creates a session for two players, both games start in progress.
func (that *SessionManager) StartSession(ctx context.Context, playerX, playerO, mode string) (*entity.Session, error) {
	log := that.logger.With("method", "StartSession")

	mode, err := normalizeMode(mode)
	if err != nil {
		return nil, err
	}

	session, err := newSession(pkg.GenerateSessionID(), mode, playerX, playerO)
	if err != nil {
		return nil, err
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	if err = that.sessionRepo.CreateOrUpdate(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	log.Info("session started", "sessionID", session.ID, "mode", session.Mode)

	return session, nil
}

func (that *SessionManager) GetSession(ctx context.Context, id string) (*entity.Session, error) {
	session, err := that.sessionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	return session, nil
}

// ChangePlayers - renames the players and starts both games over.
func (that *SessionManager) ChangePlayers(ctx context.Context, id, playerX, playerO string) (*entity.Session, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	session, err := that.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}

	updated, err := newSession(session.ID, session.Mode, playerX, playerO)
	if err != nil {
		return nil, err
	}

	if err = that.sessionRepo.CreateOrUpdate(ctx, updated); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	return updated, nil
}

// SelectMode - switches the session to mode with a fresh board for it.
func (that *SessionManager) SelectMode(ctx context.Context, id, mode string) (*entity.Session, error) {
	mode, err := normalizeMode(mode)
	if err != nil {
		return nil, err
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	session, err := that.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}

	session.Mode = mode
	resetCurrentGame(session)

	if err = that.sessionRepo.CreateOrUpdate(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	return session, nil
}

// MakeMove - plays position (a cell or a column) in the current game of the session.
// Moves the rules do not allow leave the session unchanged and are not errors.
func (that *SessionManager) MakeMove(ctx context.Context, id string, position int) (*entity.Session, error) {
	log := that.logger.With("method", "MakeMove", "sessionID", id)

	that.mu.Lock()
	defer that.mu.Unlock()

	session, err := that.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}

	finished, err := applyMove(session, position)
	if apperror.IsIgnoredMove(err) {
		log.Debug("move ignored", "position", position, "reason", err)
		return session, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to make move: %w", err)
	}

	if err = that.sessionRepo.CreateOrUpdate(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	if finished {
		event := finishedEvent(session)
		log.Info("game finished", "mode", event.Mode, "kind", event.Kind, "winner", event.WinnerName())
		that.notify(ctx, event)
	}

	return session, nil
}

// ResetGame - clears the board of the current game, players and mode stay.
func (that *SessionManager) ResetGame(ctx context.Context, id string) (*entity.Session, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	session, err := that.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}

	resetCurrentGame(session)

	if err = that.sessionRepo.CreateOrUpdate(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	return session, nil
}

// AbandonGame - ends a connect four game in progress without a winner, both players get a loss.
func (that *SessionManager) AbandonGame(ctx context.Context, id string) (*entity.Session, error) {
	log := that.logger.With("method", "AbandonGame", "sessionID", id)

	that.mu.Lock()
	defer that.mu.Unlock()

	session, err := that.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}

	game := session.ConnectFour
	if session.Mode != entity.ConnectFourMode || !game.IsInProgress() || game.IsEmpty() {
		return nil, apperror.ErrNothingToAbandon
	}

	connectfour.Reset(game)

	if err = that.sessionRepo.CreateOrUpdate(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	log.Info("game abandoned")

	that.notify(ctx, entity.GameFinished{
		SessionID: session.ID,
		Mode:      entity.ConnectFourMode,
		PlayerX:   session.PlayerX,
		PlayerO:   session.PlayerO,
		Kind:      entity.OutcomeNoWinner,
	})

	return session, nil
}

func (that *SessionManager) EndSession(ctx context.Context, id string) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if err := that.sessionRepo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to end session: %w", err)
	}

	return nil
}

func (that *SessionManager) notify(ctx context.Context, event entity.GameFinished) {
	if that.observer == nil {
		return
	}

	that.observer.OnGameFinished(ctx, event)
}

func normalizeMode(mode string) (string, error) {
	mode = strings.TrimSpace(mode)
	if mode == "" {
		return entity.TicTacToeMode, nil
	}

	if !entity.IsKnownMode(mode) {
		return "", fmt.Errorf("%w: %s", apperror.ErrUnknownGameMode, mode)
	}

	return mode, nil
}

func newSession(id, mode, playerX, playerO string) (*entity.Session, error) {
	ticTacToe, err := tictactoe.Start(playerX, playerO)
	if err != nil {
		return nil, err
	}

	// the leaderboard is keyed by name
	if ticTacToe.PlayerX == ticTacToe.PlayerO {
		return nil, fmt.Errorf("%w: %s", apperror.ErrSamePlayerNames, ticTacToe.PlayerX)
	}

	connectFour, err := connectfour.Start(playerX, playerO)
	if err != nil {
		return nil, err
	}

	return &entity.Session{
		ID:          id,
		Mode:        mode,
		PlayerX:     ticTacToe.PlayerX,
		PlayerO:     ticTacToe.PlayerO,
		TicTacToe:   ticTacToe,
		ConnectFour: connectFour,
	}, nil
}

func resetCurrentGame(session *entity.Session) {
	if session.Mode == entity.ConnectFourMode {
		connectfour.Reset(session.ConnectFour)
		return
	}

	tictactoe.Reset(session.TicTacToe)
}

func applyMove(session *entity.Session, position int) (bool, error) {
	if session.Mode == entity.ConnectFourMode {
		return connectfour.MakeTurn(session.ConnectFour, position)
	}

	return tictactoe.MakeTurn(session.TicTacToe, position)
}

func finishedEvent(session *entity.Session) entity.GameFinished {
	event := entity.GameFinished{
		SessionID: session.ID,
		Mode:      session.Mode,
		PlayerX:   session.PlayerX,
		PlayerO:   session.PlayerO,
	}

	status, winner := session.TicTacToe.Status, session.TicTacToe.Winner
	if session.Mode == entity.ConnectFourMode {
		status, winner = session.ConnectFour.Status, session.ConnectFour.Winner
	}

	if status == entity.StatusTie {
		event.Kind = entity.OutcomeTie
		return event
	}

	event.Kind = entity.OutcomeWin
	event.WinnerMark = winner

	return event
}
