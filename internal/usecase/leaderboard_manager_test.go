package usecase

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/multigame-backend/internal/apperror"
	"github.com/rocketscienceinc/multigame-backend/internal/entity"
	"github.com/rocketscienceinc/multigame-backend/internal/leaderboard"
	mockedUseCase "github.com/rocketscienceinc/multigame-backend/mocks/usecase"
)

var defaultRules = leaderboard.Rules{RecordLosses: true}

func winEvent(mark string) entity.GameFinished {
	return entity.GameFinished{
		SessionID:  "session-1",
		Mode:       entity.TicTacToeMode,
		PlayerX:    "Ann",
		PlayerO:    "Bob",
		Kind:       entity.OutcomeWin,
		WinnerMark: mark,
	}
}

func TestLeaderboardManager_OnGameFinished(t *testing.T) {
	ctx := context.Background()

	t.Run("Credits the winner and records the game", func(t *testing.T) {
		// Given: Ann already has a win
		leaderboardRepo := mockedUseCase.NewMockleaderboardRepo(t)
		historyRepo := mockedUseCase.NewMockhistoryRepo(t)
		manager := NewLeaderboardManager(discardLogger(), leaderboardRepo, historyRepo, defaultRules)

		leaderboardRepo.EXPECT().
			Load(mock.Anything).
			Return([]entity.PlayerRecord{{Name: "Ann", Wins: 1}}, nil).
			Once()
		leaderboardRepo.EXPECT().
			Save(mock.Anything, []entity.PlayerRecord{
				{Name: "Ann", Wins: 2},
				{Name: "Bob", Losses: 1},
			}).
			Return(nil).
			Once()
		historyRepo.EXPECT().
			Add(mock.Anything, &entity.GameResult{
				Mode:         entity.TicTacToeMode,
				WinnerName:   "Ann",
				WinnerSymbol: entity.PlayerX,
				LoserName:    "Bob",
				LoserSymbol:  entity.PlayerO,
			}).
			Return(&entity.GameResult{ID: "game-1"}, nil).
			Once()

		// When: Ann wins again
		manager.OnGameFinished(ctx, winEvent(entity.PlayerX))
		manager.Wait()
	})

	t.Run("Wins only rules leave the loser untouched", func(t *testing.T) {
		leaderboardRepo := mockedUseCase.NewMockleaderboardRepo(t)
		historyRepo := mockedUseCase.NewMockhistoryRepo(t)
		manager := NewLeaderboardManager(discardLogger(), leaderboardRepo, historyRepo, leaderboard.Rules{})

		leaderboardRepo.EXPECT().Load(mock.Anything).Return([]entity.PlayerRecord{}, nil).Once()
		leaderboardRepo.EXPECT().
			Save(mock.Anything, []entity.PlayerRecord{{Name: "Bob", Wins: 1}}).
			Return(nil).
			Once()
		historyRepo.EXPECT().Add(mock.Anything, mock.Anything).Return(&entity.GameResult{}, nil).Once()

		manager.OnGameFinished(ctx, winEvent(entity.PlayerO))
		manager.Wait()
	})

	t.Run("An abandoned game counts a loss for both and is not recorded", func(t *testing.T) {
		leaderboardRepo := mockedUseCase.NewMockleaderboardRepo(t)
		historyRepo := mockedUseCase.NewMockhistoryRepo(t)
		manager := NewLeaderboardManager(discardLogger(), leaderboardRepo, historyRepo, defaultRules)

		leaderboardRepo.EXPECT().Load(mock.Anything).Return([]entity.PlayerRecord{}, nil).Once()
		leaderboardRepo.EXPECT().
			Save(mock.Anything, []entity.PlayerRecord{
				{Name: "Ann", Losses: 1},
				{Name: "Bob", Losses: 1},
			}).
			Return(nil).
			Once()

		manager.OnGameFinished(ctx, entity.GameFinished{
			SessionID: "session-1",
			Mode:      entity.ConnectFourMode,
			PlayerX:   "Ann",
			PlayerO:   "Bob",
			Kind:      entity.OutcomeNoWinner,
		})
		manager.Wait()
	})

	t.Run("A malformed leaderboard starts over", func(t *testing.T) {
		leaderboardRepo := mockedUseCase.NewMockleaderboardRepo(t)
		historyRepo := mockedUseCase.NewMockhistoryRepo(t)
		manager := NewLeaderboardManager(discardLogger(), leaderboardRepo, historyRepo, defaultRules)

		leaderboardRepo.EXPECT().
			Load(mock.Anything).
			Return(nil, fmt.Errorf("%w: bad json", apperror.ErrMalformedLeaderboard)).
			Once()
		leaderboardRepo.EXPECT().
			Save(mock.Anything, []entity.PlayerRecord{
				{Name: "Ann", Ties: 1},
				{Name: "Bob", Ties: 1},
			}).
			Return(nil).
			Once()
		historyRepo.EXPECT().
			Add(mock.Anything, mock.MatchedBy(func(result *entity.GameResult) bool {
				return result.IsTie
			})).
			Return(&entity.GameResult{}, nil).
			Once()

		manager.OnGameFinished(ctx, entity.GameFinished{
			SessionID: "session-1",
			Mode:      entity.TicTacToeMode,
			PlayerX:   "Ann",
			PlayerO:   "Bob",
			Kind:      entity.OutcomeTie,
		})
		manager.Wait()
	})

	t.Run("Storage failures do not stop the history", func(t *testing.T) {
		// Given: redis is down and the history fails as well
		leaderboardRepo := mockedUseCase.NewMockleaderboardRepo(t)
		historyRepo := mockedUseCase.NewMockhistoryRepo(t)
		manager := NewLeaderboardManager(discardLogger(), leaderboardRepo, historyRepo, defaultRules)

		leaderboardRepo.EXPECT().Load(mock.Anything).Return(nil, errRedisDown).Once()
		historyRepo.EXPECT().Add(mock.Anything, mock.Anything).Return(nil, errStorageIsFull).Once()

		// When: a game finishes
		// Then: nothing is saved and nothing panics
		manager.OnGameFinished(ctx, winEvent(entity.PlayerX))
		manager.Wait()
	})

	t.Run("History is written after the request context is gone", func(t *testing.T) {
		leaderboardRepo := mockedUseCase.NewMockleaderboardRepo(t)
		historyRepo := mockedUseCase.NewMockhistoryRepo(t)
		manager := NewLeaderboardManager(discardLogger(), leaderboardRepo, historyRepo, defaultRules)

		reqCtx, cancel := context.WithCancel(ctx)

		leaderboardRepo.EXPECT().Load(mock.Anything).Return([]entity.PlayerRecord{}, nil).Once()
		leaderboardRepo.EXPECT().Save(mock.Anything, mock.Anything).Return(nil).Once()
		historyRepo.EXPECT().
			Add(mock.MatchedBy(func(ctx context.Context) bool { return ctx.Err() == nil }), mock.Anything).
			Return(&entity.GameResult{}, nil).
			Once()

		manager.OnGameFinished(reqCtx, winEvent(entity.PlayerX))
		cancel()
		manager.Wait()
	})
}

func TestLeaderboardManager_Standings(t *testing.T) {
	ctx := context.Background()

	t.Run("Returns the stored records", func(t *testing.T) {
		leaderboardRepo := mockedUseCase.NewMockleaderboardRepo(t)
		manager := NewLeaderboardManager(discardLogger(), leaderboardRepo, nil, defaultRules)

		stored := []entity.PlayerRecord{{Name: "Ann", Wins: 3}}
		leaderboardRepo.EXPECT().Load(mock.Anything).Return(stored, nil).Once()

		records, err := manager.Standings(ctx)

		require.NoError(t, err)
		assert.Equal(t, stored, records)
	})

	t.Run("Malformed data reads as empty", func(t *testing.T) {
		leaderboardRepo := mockedUseCase.NewMockleaderboardRepo(t)
		manager := NewLeaderboardManager(discardLogger(), leaderboardRepo, nil, defaultRules)

		leaderboardRepo.EXPECT().Load(mock.Anything).Return(nil, apperror.ErrMalformedLeaderboard).Once()

		records, err := manager.Standings(ctx)

		require.NoError(t, err)
		assert.NotNil(t, records)
		assert.Empty(t, records)
	})

	t.Run("Returns error when storage is down", func(t *testing.T) {
		leaderboardRepo := mockedUseCase.NewMockleaderboardRepo(t)
		manager := NewLeaderboardManager(discardLogger(), leaderboardRepo, nil, defaultRules)

		leaderboardRepo.EXPECT().Load(mock.Anything).Return(nil, errRedisDown).Once()

		_, err := manager.Standings(ctx)

		require.ErrorIs(t, err, errRedisDown)
	})
}

func TestLeaderboardManager_RecentGames(t *testing.T) {
	ctx := context.Background()

	historyRepo := mockedUseCase.NewMockhistoryRepo(t)
	manager := NewLeaderboardManager(discardLogger(), mockedUseCase.NewMockleaderboardRepo(t), historyRepo, defaultRules)

	games := []*entity.GameResult{{ID: "game-2"}, {ID: "game-1"}}
	historyRepo.EXPECT().Recent(mock.Anything).Return(games, nil).Once()

	recent, err := manager.RecentGames(ctx)

	require.NoError(t, err)
	assert.Equal(t, games, recent)
}

func TestLeaderboardManager_RecordGame(t *testing.T) {
	ctx := context.Background()

	t.Run("Stores a valid result", func(t *testing.T) {
		historyRepo := mockedUseCase.NewMockhistoryRepo(t)
		manager := NewLeaderboardManager(discardLogger(), mockedUseCase.NewMockleaderboardRepo(t), historyRepo, defaultRules)

		result := &entity.GameResult{WinnerName: " Ann ", WinnerSymbol: "X", LoserName: "Bob", LoserSymbol: "O"}
		historyRepo.EXPECT().
			Add(mock.Anything, mock.MatchedBy(func(result *entity.GameResult) bool {
				return result.WinnerName == "Ann"
			})).
			Return(&entity.GameResult{ID: "game-1", WinnerName: "Ann"}, nil).
			Once()

		stored, err := manager.RecordGame(ctx, result)

		require.NoError(t, err)
		assert.Equal(t, "game-1", stored.ID)
	})

	t.Run("Rejects a result without names", func(t *testing.T) {
		manager := NewLeaderboardManager(discardLogger(), mockedUseCase.NewMockleaderboardRepo(t), mockedUseCase.NewMockhistoryRepo(t), defaultRules)

		_, err := manager.RecordGame(ctx, &entity.GameResult{WinnerName: "Ann"})

		require.ErrorIs(t, err, apperror.ErrInvalidGameResult)
		assert.True(t, apperror.IsValidation(err))
	})

	t.Run("Rejects an unknown mode", func(t *testing.T) {
		manager := NewLeaderboardManager(discardLogger(), mockedUseCase.NewMockleaderboardRepo(t), mockedUseCase.NewMockhistoryRepo(t), defaultRules)

		_, err := manager.RecordGame(ctx, &entity.GameResult{Mode: "chess", WinnerName: "Ann", LoserName: "Bob"})

		require.ErrorIs(t, err, apperror.ErrInvalidGameResult)
		require.ErrorIs(t, err, apperror.ErrUnknownGameMode)
	})
}
