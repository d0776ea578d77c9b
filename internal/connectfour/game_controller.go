package connectfour

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/multigame-backend/internal/apperror"
	"github.com/rocketscienceinc/multigame-backend/internal/entity"
)

// directions scanned from every disc, as {row step, column step}: horizontal, vertical, down-right, up-right.
var directions = [][2]int{
	{0, 1},
	{1, 0},
	{1, 1},
	{-1, 1},
}

// Start - creates a game for two named players, Red drops first.
func Start(playerRed, playerYellow string) (*entity.ConnectFour, error) {
	playerRed, playerYellow = strings.TrimSpace(playerRed), strings.TrimSpace(playerYellow)
	if playerRed == "" || playerYellow == "" {
		return nil, apperror.ErrEmptyPlayerName
	}

	game := entity.NewConnectFour(playerRed, playerYellow)
	game.Status = entity.StatusInProgress

	return game, nil
}

// Reset - clears the board and keeps the players.
func Reset(game *entity.ConnectFour) {
	*game = *entity.NewConnectFour(game.PlayerRed, game.PlayerYellow)
	game.Status = entity.StatusInProgress
}

// MakeTurn - drops the current color into column. finished is true only for the move that ends the game.
func MakeTurn(game *entity.ConnectFour, column int) (bool, error) {
	if game.IsFinished() {
		return false, apperror.ErrGameFinished
	}

	if !game.IsInProgress() {
		return false, apperror.ErrGameIsNotStarted
	}

	if column < 0 || column >= entity.Columns {
		return false, fmt.Errorf("invalid turn: %w: column %d", apperror.ErrInvalidColumn, column)
	}

	row := lowestEmptyRow(game.Board, column)
	if row < 0 {
		return false, fmt.Errorf("invalid turn: %w: column %d", apperror.ErrColumnFull, column)
	}

	game.Board[row][column] = game.Turn
	game.Turn = toggleColor(game.Turn)

	return updateGameStatus(game), nil
}

func lowestEmptyRow(board [entity.Rows][entity.Columns]string, column int) int {
	for row := entity.Rows - 1; row >= 0; row-- {
		if board[row][column] == entity.EmptyCell {
			return row
		}
	}

	return -1
}

func updateGameStatus(game *entity.ConnectFour) bool {
	switch winner, discs := CheckGameStatus(game.Board); winner {
	case entity.Red, entity.Yellow:
		game.Winner = winner
		game.WinningDiscs = discs
		game.Status = entity.StatusWin
	case entity.PlayerTie:
		game.Status = entity.StatusTie
	default:
		return false
	}

	return true
}

func toggleColor(current string) string {
	if current == entity.Red {
		return entity.Yellow
	}
	return entity.Red
}

// CheckGameStatus - returns the winning color with its four discs, PlayerTie for a full board, or "" while the game goes on.
// Discs are scanned row by row, then column, then in the order of directions; the first run found is reported.
func CheckGameStatus(board [entity.Rows][entity.Columns]string) (string, [][2]int) {
	full := true

	for row := range entity.Rows {
		for col := range entity.Columns {
			disc := board[row][col]
			if disc == entity.EmptyCell {
				full = false
				continue
			}

			for _, dir := range directions {
				if run := runFrom(board, row, col, dir); run != nil {
					return disc, run
				}
			}
		}
	}

	if full {
		return entity.PlayerTie, nil
	}

	return "", nil
}

// runFrom - the ConnectLength discs starting at row, col along dir, nil unless all match and stay on the board.
func runFrom(board [entity.Rows][entity.Columns]string, row, col int, dir [2]int) [][2]int {
	disc := board[row][col]
	run := make([][2]int, 0, entity.ConnectLength)

	for i := range entity.ConnectLength {
		r, c := row+i*dir[0], col+i*dir[1]
		if r < 0 || c < 0 || r >= entity.Rows || c >= entity.Columns || board[r][c] != disc {
			return nil
		}

		run = append(run, [2]int{r, c})
	}

	return run
}
