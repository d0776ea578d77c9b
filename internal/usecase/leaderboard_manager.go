package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/rocketscienceinc/multigame-backend/internal/apperror"
	"github.com/rocketscienceinc/multigame-backend/internal/entity"
	"github.com/rocketscienceinc/multigame-backend/internal/leaderboard"
)

type leaderboardRepo interface {
	Load(ctx context.Context) ([]entity.PlayerRecord, error)
	Save(ctx context.Context, records []entity.PlayerRecord) error
}

type historyRepo interface {
	Add(ctx context.Context, result *entity.GameResult) (*entity.GameResult, error)
	Recent(ctx context.Context) ([]*entity.GameResult, error)
}

// LeaderboardManager - keeps the persisted leaderboard and the recent game history up to date.
type LeaderboardManager struct {
	logger *slog.Logger

	mu              sync.Mutex
	pending         sync.WaitGroup
	leaderboardRepo leaderboardRepo
	historyRepo     historyRepo
	rules           leaderboard.Rules
}

func NewLeaderboardManager(logger *slog.Logger, leaderboardRepo leaderboardRepo, historyRepo historyRepo, rules leaderboard.Rules) *LeaderboardManager {
	return &LeaderboardManager{
		logger:          logger,
		leaderboardRepo: leaderboardRepo,
		historyRepo:     historyRepo,
		rules:           rules,
	}
}

// OnGameFinished - folds event into the stored leaderboard and records it in the history.
// Storage failures are logged, the game itself is never affected.
func (that *LeaderboardManager) OnGameFinished(ctx context.Context, event entity.GameFinished) {
	log := that.logger.With("method", "OnGameFinished", "sessionID", event.SessionID)

	that.updateLeaderboard(ctx, log, event)
	that.recordHistory(ctx, log, event)
}

func (that *LeaderboardManager) updateLeaderboard(ctx context.Context, log *slog.Logger, event entity.GameFinished) {
	that.mu.Lock()
	defer that.mu.Unlock()

	records, err := that.leaderboardRepo.Load(ctx)
	switch {
	case errors.Is(err, apperror.ErrMalformedLeaderboard):
		log.Warn("stored leaderboard is malformed, starting from an empty one", "error", err)
		records = []entity.PlayerRecord{}
	case err != nil:
		log.Error("failed to load leaderboard, game is not counted", "error", err)
		return
	}

	updated := leaderboard.Apply(records, event.PlayerX, event.PlayerO, leaderboard.FromEvent(event), that.rules)

	if err = that.leaderboardRepo.Save(ctx, updated); err != nil {
		log.Error("failed to save leaderboard", "error", err)
	}
}

func (that *LeaderboardManager) recordHistory(ctx context.Context, log *slog.Logger, event entity.GameFinished) {
	result := entity.NewGameResult(event)
	if result == nil || that.historyRepo == nil {
		return
	}

	ctx = context.WithoutCancel(ctx)

	that.pending.Add(1)
	go func() {
		defer that.pending.Done()

		if _, err := that.historyRepo.Add(ctx, result); err != nil {
			log.Error("failed to record game history", "error", err)
		}
	}()
}

// Wait - blocks until every history write started by OnGameFinished is done.
func (that *LeaderboardManager) Wait() {
	that.pending.Wait()
}

// Standings - the stored leaderboard, empty when nothing is stored yet or the stored value is malformed.
func (that *LeaderboardManager) Standings(ctx context.Context) ([]entity.PlayerRecord, error) {
	log := that.logger.With("method", "Standings")

	that.mu.Lock()
	defer that.mu.Unlock()

	records, err := that.leaderboardRepo.Load(ctx)
	if errors.Is(err, apperror.ErrMalformedLeaderboard) {
		log.Warn("stored leaderboard is malformed", "error", err)
		return []entity.PlayerRecord{}, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to load leaderboard: %w", err)
	}

	return records, nil
}

// RecentGames - the latest recorded games, newest first.
func (that *LeaderboardManager) RecentGames(ctx context.Context) ([]*entity.GameResult, error) {
	games, err := that.historyRepo.Recent(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get recent games: %w", err)
	}

	return games, nil
}

// RecordGame - stores a result reported from outside a session.
func (that *LeaderboardManager) RecordGame(ctx context.Context, result *entity.GameResult) (*entity.GameResult, error) {
	if err := validateResult(result); err != nil {
		return nil, err
	}

	stored, err := that.historyRepo.Add(ctx, result)
	if err != nil {
		return nil, fmt.Errorf("failed to record game: %w", err)
	}

	return stored, nil
}

func validateResult(result *entity.GameResult) error {
	if result == nil {
		return apperror.ErrInvalidGameResult
	}

	result.WinnerName = strings.TrimSpace(result.WinnerName)
	result.LoserName = strings.TrimSpace(result.LoserName)

	if result.WinnerName == "" || result.LoserName == "" {
		return fmt.Errorf("%w: both player names are required", apperror.ErrInvalidGameResult)
	}

	if result.Mode != "" && !entity.IsKnownMode(result.Mode) {
		return fmt.Errorf("%w: %w: %s", apperror.ErrInvalidGameResult, apperror.ErrUnknownGameMode, result.Mode)
	}

	return nil
}
