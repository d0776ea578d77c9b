package tictactoe

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/multigame-backend/internal/apperror"
	"github.com/rocketscienceinc/multigame-backend/internal/entity"
)

// Start - creates a game for two named players, X moves first.
func Start(playerX, playerO string) (*entity.TicTacToe, error) {
	playerX, playerO = strings.TrimSpace(playerX), strings.TrimSpace(playerO)
	if playerX == "" || playerO == "" {
		return nil, apperror.ErrEmptyPlayerName
	}

	game := entity.NewTicTacToe(playerX, playerO)
	game.Status = entity.StatusInProgress

	return game, nil
}

// Reset - clears the board and keeps the players.
func Reset(game *entity.TicTacToe) {
	*game = *entity.NewTicTacToe(game.PlayerX, game.PlayerO)
	game.Status = entity.StatusInProgress
}

// MakeTurn - places the current mark on cell. finished is true only for the move that ends the game.
func MakeTurn(game *entity.TicTacToe, cell int) (bool, error) {
	if game.IsFinished() {
		return false, apperror.ErrGameFinished
	}

	if !game.IsInProgress() {
		return false, apperror.ErrGameIsNotStarted
	}

	if err := validateMove(game, cell); err != nil {
		return false, fmt.Errorf("invalid turn: %w", err)
	}

	game.Board[cell] = game.Turn
	game.Turn = toggleMark(game.Turn)

	return updateGameStatus(game), nil
}

// validateMove - checks if the move is valid.
func validateMove(game *entity.TicTacToe, cell int) error {
	if cell < 0 || cell >= len(game.Board) {
		return fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, cell)
	}

	if game.Board[cell] != entity.EmptyCell {
		return apperror.ErrCellOccupied
	}

	return nil
}

// updateGameStatus - checks the game status after a move.
func updateGameStatus(game *entity.TicTacToe) bool {
	switch winner, line := CheckGameStatus(game.Board); winner {
	case entity.PlayerX, entity.PlayerO:
		game.Winner = winner
		game.WinningLine = line
		game.Status = entity.StatusWin
	case entity.PlayerTie:
		game.Status = entity.StatusTie
	default:
		return false
	}

	return true
}

func toggleMark(currentMark string) string {
	if currentMark == entity.PlayerX {
		return entity.PlayerO
	}
	return entity.PlayerX
}

// CheckGameStatus - returns the winning mark and its line, PlayerTie for a full board, or "" while the game goes on.
// When several lines are complete the first one of WinCombos is reported.
func CheckGameStatus(board [9]string) (string, []int) {
	for _, combo := range entity.WinCombos {
		a, b, c := board[combo[0]], board[combo[1]], board[combo[2]]
		if a != entity.EmptyCell && a == b && b == c {
			return a, []int{combo[0], combo[1], combo[2]}
		}
	}

	for _, cell := range board {
		if cell == entity.EmptyCell {
			return "", nil
		}
	}

	return entity.PlayerTie, nil
}
