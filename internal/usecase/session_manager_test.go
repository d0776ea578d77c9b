package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/multigame-backend/internal/apperror"
	"github.com/rocketscienceinc/multigame-backend/internal/entity"
	mockedUseCase "github.com/rocketscienceinc/multigame-backend/mocks/usecase"
)

var (
	errRedisDown     = errors.New("redis down")
	errStorageIsFull = errors.New("storage is full")
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func mustSession(t *testing.T, mode string) *entity.Session {
	t.Helper()

	session, err := newSession("session-1", mode, "Ann", "Bob")
	require.NoError(t, err)

	return session
}

func TestSessionManager_StartSession(t *testing.T) {
	ctx := context.Background()

	t.Run("Starts a tic-tac-toe session when no mode is given", func(t *testing.T) {
		// Given: a repository that accepts the session
		sessionRepo := mockedUseCase.NewMocksessionRepo(t)
		manager := NewSessionManager(discardLogger(), sessionRepo, nil)

		sessionRepo.EXPECT().
			CreateOrUpdate(mock.Anything, mock.AnythingOfType("*entity.Session")).
			Return(nil).
			Once()

		// When: a session is started with padded names
		session, err := manager.StartSession(ctx, "  Ann ", "Bob", "")

		// Then: both games are ready and names are trimmed
		require.NoError(t, err)
		assert.NotEmpty(t, session.ID)
		assert.Equal(t, entity.TicTacToeMode, session.Mode)
		assert.Equal(t, "Ann", session.PlayerX)
		assert.Equal(t, entity.StatusInProgress, session.TicTacToe.Status)
		assert.Equal(t, entity.StatusInProgress, session.ConnectFour.Status)
		assert.Equal(t, entity.Red, session.ConnectFour.Turn)
	})

	t.Run("Rejects an empty player name", func(t *testing.T) {
		sessionRepo := mockedUseCase.NewMocksessionRepo(t)
		manager := NewSessionManager(discardLogger(), sessionRepo, nil)

		// When: the second player has no name
		session, err := manager.StartSession(ctx, "Ann", " ", entity.ConnectFourMode)

		// Then: nothing is stored
		require.ErrorIs(t, err, apperror.ErrEmptyPlayerName)
		assert.Nil(t, session)
	})

	t.Run("Rejects two players with the same name", func(t *testing.T) {
		sessionRepo := mockedUseCase.NewMocksessionRepo(t)
		manager := NewSessionManager(discardLogger(), sessionRepo, nil)

		// When: both players are called Ann once trimmed
		session, err := manager.StartSession(ctx, "Ann", " Ann ", entity.TicTacToeMode)

		// Then: nothing is stored
		require.ErrorIs(t, err, apperror.ErrSamePlayerNames)
		assert.True(t, apperror.IsValidation(err))
		assert.Nil(t, session)
	})

	t.Run("Rejects an unknown mode", func(t *testing.T) {
		sessionRepo := mockedUseCase.NewMocksessionRepo(t)
		manager := NewSessionManager(discardLogger(), sessionRepo, nil)

		_, err := manager.StartSession(ctx, "Ann", "Bob", "chess")

		require.ErrorIs(t, err, apperror.ErrUnknownGameMode)
		assert.True(t, apperror.IsValidation(err))
	})

	t.Run("Returns error when the session can't be stored", func(t *testing.T) {
		sessionRepo := mockedUseCase.NewMocksessionRepo(t)
		manager := NewSessionManager(discardLogger(), sessionRepo, nil)

		sessionRepo.EXPECT().
			CreateOrUpdate(mock.Anything, mock.Anything).
			Return(errStorageIsFull).
			Once()

		_, err := manager.StartSession(ctx, "Ann", "Bob", entity.TicTacToeMode)

		require.ErrorIs(t, err, errStorageIsFull)
	})
}

func TestSessionManager_GetSession(t *testing.T) {
	ctx := context.Background()

	sessionRepo := mockedUseCase.NewMocksessionRepo(t)
	manager := NewSessionManager(discardLogger(), sessionRepo, nil)

	sessionRepo.EXPECT().
		GetByID(mock.Anything, "missing").
		Return((*entity.Session)(nil), apperror.ErrNotFound).
		Once()

	session, err := manager.GetSession(ctx, "missing")

	require.ErrorIs(t, err, apperror.ErrNotFound)
	assert.Nil(t, session)
}

func TestSessionManager_MakeMove(t *testing.T) {
	ctx := context.Background()

	t.Run("Reports a tic-tac-toe win exactly once", func(t *testing.T) {
		// Given: X has 0 and 1, O has 3 and 4
		session := mustSession(t, entity.TicTacToeMode)
		session.TicTacToe.Board = [9]string{"X", "X", "", "O", "O", "", "", "", ""}

		sessionRepo := mockedUseCase.NewMocksessionRepo(t)
		observer := mockedUseCase.NewMockOutcomeObserver(t)
		manager := NewSessionManager(discardLogger(), sessionRepo, observer)

		sessionRepo.EXPECT().GetByID(mock.Anything, session.ID).Return(session, nil)
		sessionRepo.EXPECT().CreateOrUpdate(mock.Anything, session).Return(nil).Once()
		observer.EXPECT().
			OnGameFinished(mock.Anything, entity.GameFinished{
				SessionID:  session.ID,
				Mode:       entity.TicTacToeMode,
				PlayerX:    "Ann",
				PlayerO:    "Bob",
				Kind:       entity.OutcomeWin,
				WinnerMark: entity.PlayerX,
			}).
			Return().
			Once()

		// When: X completes the top row, then someone clicks again
		updated, err := manager.MakeMove(ctx, session.ID, 2)
		require.NoError(t, err)

		again, err := manager.MakeMove(ctx, session.ID, 8)

		// Then: the game is won once and the extra click changes nothing
		require.NoError(t, err)
		assert.Equal(t, entity.StatusWin, updated.TicTacToe.Status)
		assert.Equal(t, []int{0, 1, 2}, updated.TicTacToe.WinningLine)
		assert.Equal(t, entity.EmptyCell, again.TicTacToe.Board[8])
	})

	t.Run("Ignores a move on an occupied cell", func(t *testing.T) {
		session := mustSession(t, entity.TicTacToeMode)
		session.TicTacToe.Board[4] = entity.PlayerX
		session.TicTacToe.Turn = entity.PlayerO

		sessionRepo := mockedUseCase.NewMocksessionRepo(t)
		manager := NewSessionManager(discardLogger(), sessionRepo, mockedUseCase.NewMockOutcomeObserver(t))

		sessionRepo.EXPECT().GetByID(mock.Anything, session.ID).Return(session, nil).Once()

		updated, err := manager.MakeMove(ctx, session.ID, 4)

		require.NoError(t, err)
		assert.Equal(t, entity.PlayerX, updated.TicTacToe.Board[4])
		assert.Equal(t, entity.PlayerO, updated.TicTacToe.Turn)
	})

	t.Run("Drops a disc in the current connect four game", func(t *testing.T) {
		session := mustSession(t, entity.ConnectFourMode)

		sessionRepo := mockedUseCase.NewMocksessionRepo(t)
		manager := NewSessionManager(discardLogger(), sessionRepo, mockedUseCase.NewMockOutcomeObserver(t))

		sessionRepo.EXPECT().GetByID(mock.Anything, session.ID).Return(session, nil).Once()
		sessionRepo.EXPECT().CreateOrUpdate(mock.Anything, session).Return(nil).Once()

		updated, err := manager.MakeMove(ctx, session.ID, 3)

		require.NoError(t, err)
		assert.Equal(t, entity.Red, updated.ConnectFour.Board[entity.Rows-1][3])
		assert.Equal(t, entity.Yellow, updated.ConnectFour.Turn)
		assert.Equal(t, [9]string{}, updated.TicTacToe.Board)
	})

	t.Run("Reports a connect four tie", func(t *testing.T) {
		// Given: a board one disc short of full without four in a row
		session := mustSession(t, entity.ConnectFourMode)
		game := session.ConnectFour
		for _, pair := range [][2]int{{0, 2}, {1, 3}, {4, 6}} {
			fillPair(game, pair[0], pair[1])
		}
		for row := 1; row < entity.Rows; row++ {
			game.Board[row][5] = alternate(row)
		}
		game.Turn = entity.Yellow

		sessionRepo := mockedUseCase.NewMocksessionRepo(t)
		observer := mockedUseCase.NewMockOutcomeObserver(t)
		manager := NewSessionManager(discardLogger(), sessionRepo, observer)

		sessionRepo.EXPECT().GetByID(mock.Anything, session.ID).Return(session, nil).Once()
		sessionRepo.EXPECT().CreateOrUpdate(mock.Anything, session).Return(nil).Once()
		observer.EXPECT().
			OnGameFinished(mock.Anything, mock.MatchedBy(func(event entity.GameFinished) bool {
				return event.Kind == entity.OutcomeTie && event.Mode == entity.ConnectFourMode
			})).
			Return().
			Once()

		// When: the last disc fills column 5
		updated, err := manager.MakeMove(ctx, session.ID, 5)

		// Then: the game ends in a tie
		require.NoError(t, err)
		assert.Equal(t, entity.StatusTie, updated.ConnectFour.Status)
	})

	t.Run("Does not notify when the session can't be stored", func(t *testing.T) {
		session := mustSession(t, entity.TicTacToeMode)
		session.TicTacToe.Board = [9]string{"X", "X", "", "O", "O", "", "", "", ""}

		sessionRepo := mockedUseCase.NewMocksessionRepo(t)
		manager := NewSessionManager(discardLogger(), sessionRepo, mockedUseCase.NewMockOutcomeObserver(t))

		sessionRepo.EXPECT().GetByID(mock.Anything, session.ID).Return(session, nil).Once()
		sessionRepo.EXPECT().CreateOrUpdate(mock.Anything, session).Return(errRedisDown).Once()

		_, err := manager.MakeMove(ctx, session.ID, 2)

		require.ErrorIs(t, err, errRedisDown)
	})
}

// fillPair - fills columns a and b with six discs each, no four in a row in any direction.
func fillPair(game *entity.ConnectFour, a, b int) {
	for row := range entity.Rows {
		game.Board[row][a] = alternate(row)
		game.Board[row][b] = alternate(row + 1)
	}
}

func alternate(row int) string {
	if row%2 == 0 {
		return entity.Red
	}

	return entity.Yellow
}

func TestSessionManager_SelectMode(t *testing.T) {
	ctx := context.Background()

	t.Run("Switches mode with a fresh board", func(t *testing.T) {
		session := mustSession(t, entity.TicTacToeMode)
		session.ConnectFour.Board[entity.Rows-1][0] = entity.Red
		session.ConnectFour.Turn = entity.Yellow

		sessionRepo := mockedUseCase.NewMocksessionRepo(t)
		manager := NewSessionManager(discardLogger(), sessionRepo, nil)

		sessionRepo.EXPECT().GetByID(mock.Anything, session.ID).Return(session, nil).Once()
		sessionRepo.EXPECT().CreateOrUpdate(mock.Anything, session).Return(nil).Once()

		updated, err := manager.SelectMode(ctx, session.ID, entity.ConnectFourMode)

		require.NoError(t, err)
		assert.Equal(t, entity.ConnectFourMode, updated.Mode)
		assert.True(t, updated.ConnectFour.IsEmpty())
		assert.Equal(t, entity.Red, updated.ConnectFour.Turn)
		assert.Equal(t, entity.StatusInProgress, updated.ConnectFour.Status)
	})

	t.Run("Rejects an unknown mode", func(t *testing.T) {
		manager := NewSessionManager(discardLogger(), mockedUseCase.NewMocksessionRepo(t), nil)

		_, err := manager.SelectMode(ctx, "session-1", "go")

		require.ErrorIs(t, err, apperror.ErrUnknownGameMode)
	})
}

func TestSessionManager_ChangePlayers(t *testing.T) {
	ctx := context.Background()

	session := mustSession(t, entity.TicTacToeMode)
	session.TicTacToe.Board[0] = entity.PlayerX

	sessionRepo := mockedUseCase.NewMocksessionRepo(t)
	manager := NewSessionManager(discardLogger(), sessionRepo, nil)

	sessionRepo.EXPECT().GetByID(mock.Anything, session.ID).Return(session, nil).Once()
	sessionRepo.EXPECT().CreateOrUpdate(mock.Anything, mock.AnythingOfType("*entity.Session")).Return(nil).Once()

	updated, err := manager.ChangePlayers(ctx, session.ID, "Cid", "Dee")

	require.NoError(t, err)
	assert.Equal(t, session.ID, updated.ID)
	assert.Equal(t, "Cid", updated.PlayerX)
	assert.Equal(t, "Dee", updated.ConnectFour.PlayerYellow)
	assert.Equal(t, entity.EmptyCell, updated.TicTacToe.Board[0])
}

func TestSessionManager_ChangePlayers_SameName(t *testing.T) {
	ctx := context.Background()

	session := mustSession(t, entity.TicTacToeMode)

	sessionRepo := mockedUseCase.NewMocksessionRepo(t)
	manager := NewSessionManager(discardLogger(), sessionRepo, nil)

	sessionRepo.EXPECT().GetByID(mock.Anything, session.ID).Return(session, nil).Once()

	_, err := manager.ChangePlayers(ctx, session.ID, "Bob", "Bob")

	require.ErrorIs(t, err, apperror.ErrSamePlayerNames)
	assert.Equal(t, "Ann", session.PlayerX)
}

func TestSessionManager_ResetGame(t *testing.T) {
	ctx := context.Background()

	session := mustSession(t, entity.TicTacToeMode)
	session.TicTacToe.Board = [9]string{"X", "X", "X", "O", "O", "", "", "", ""}
	session.TicTacToe.Status = entity.StatusWin
	session.TicTacToe.Winner = entity.PlayerX

	sessionRepo := mockedUseCase.NewMocksessionRepo(t)
	manager := NewSessionManager(discardLogger(), sessionRepo, nil)

	sessionRepo.EXPECT().GetByID(mock.Anything, session.ID).Return(session, nil).Once()
	sessionRepo.EXPECT().CreateOrUpdate(mock.Anything, session).Return(nil).Once()

	updated, err := manager.ResetGame(ctx, session.ID)

	require.NoError(t, err)
	assert.Equal(t, entity.StatusInProgress, updated.TicTacToe.Status)
	assert.Equal(t, entity.PlayerX, updated.TicTacToe.Turn)
	assert.Empty(t, updated.TicTacToe.Winner)
	assert.Equal(t, "Ann", updated.TicTacToe.PlayerX)
}

func TestSessionManager_AbandonGame(t *testing.T) {
	ctx := context.Background()

	t.Run("Ends a started connect four game without a winner", func(t *testing.T) {
		session := mustSession(t, entity.ConnectFourMode)
		session.ConnectFour.Board[entity.Rows-1][3] = entity.Red
		session.ConnectFour.Turn = entity.Yellow

		sessionRepo := mockedUseCase.NewMocksessionRepo(t)
		observer := mockedUseCase.NewMockOutcomeObserver(t)
		manager := NewSessionManager(discardLogger(), sessionRepo, observer)

		sessionRepo.EXPECT().GetByID(mock.Anything, session.ID).Return(session, nil).Once()
		sessionRepo.EXPECT().CreateOrUpdate(mock.Anything, session).Return(nil).Once()
		observer.EXPECT().
			OnGameFinished(mock.Anything, entity.GameFinished{
				SessionID: session.ID,
				Mode:      entity.ConnectFourMode,
				PlayerX:   "Ann",
				PlayerO:   "Bob",
				Kind:      entity.OutcomeNoWinner,
			}).
			Return().
			Once()

		updated, err := manager.AbandonGame(ctx, session.ID)

		require.NoError(t, err)
		assert.True(t, updated.ConnectFour.IsEmpty())
	})

	t.Run("Refuses an empty board", func(t *testing.T) {
		session := mustSession(t, entity.ConnectFourMode)

		sessionRepo := mockedUseCase.NewMocksessionRepo(t)
		manager := NewSessionManager(discardLogger(), sessionRepo, mockedUseCase.NewMockOutcomeObserver(t))

		sessionRepo.EXPECT().GetByID(mock.Anything, session.ID).Return(session, nil).Once()

		_, err := manager.AbandonGame(ctx, session.ID)

		require.ErrorIs(t, err, apperror.ErrNothingToAbandon)
	})

	t.Run("Refuses a tic-tac-toe session", func(t *testing.T) {
		session := mustSession(t, entity.TicTacToeMode)
		session.ConnectFour.Board[entity.Rows-1][3] = entity.Red

		sessionRepo := mockedUseCase.NewMocksessionRepo(t)
		manager := NewSessionManager(discardLogger(), sessionRepo, mockedUseCase.NewMockOutcomeObserver(t))

		sessionRepo.EXPECT().GetByID(mock.Anything, session.ID).Return(session, nil).Once()

		_, err := manager.AbandonGame(ctx, session.ID)

		require.ErrorIs(t, err, apperror.ErrNothingToAbandon)
	})
}

func TestSessionManager_EndSession(t *testing.T) {
	ctx := context.Background()

	sessionRepo := mockedUseCase.NewMocksessionRepo(t)
	manager := NewSessionManager(discardLogger(), sessionRepo, nil)

	sessionRepo.EXPECT().DeleteByID(mock.Anything, "session-1").Return(nil).Once()
	sessionRepo.EXPECT().DeleteByID(mock.Anything, "missing").Return(apperror.ErrNotFound).Once()

	require.NoError(t, manager.EndSession(ctx, "session-1"))
	require.ErrorIs(t, manager.EndSession(ctx, "missing"), apperror.ErrNotFound)
}
