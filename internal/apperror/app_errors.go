package apperror

import "errors"

// validation errors, reported back to the player.
var (
	ErrEmptyPlayerName   = errors.New("please enter names for both players")
	ErrSamePlayerNames   = errors.New("players must have different names")
	ErrUnknownGameMode   = errors.New("unknown game mode")
	ErrInvalidGameResult = errors.New("invalid game result")
)

// ignored moves, the game state stays as it was.
var (
	ErrGameFinished     = errors.New("game is already finished")
	ErrGameIsNotStarted = errors.New("game is not started")
	ErrCellOccupied     = errors.New("cell is already occupied")
	ErrInvalidCell      = errors.New("invalid cell index")
	ErrColumnFull       = errors.New("column is full")
	ErrInvalidColumn    = errors.New("invalid column index")
)

var (
	ErrNotFound             = errors.New("not found")
	ErrNothingToAbandon     = errors.New("no connect four game in progress to abandon")
	ErrMalformedLeaderboard = errors.New("malformed leaderboard")
)

var ignoredMoves = []error{
	ErrGameFinished,
	ErrGameIsNotStarted,
	ErrCellOccupied,
	ErrInvalidCell,
	ErrColumnFull,
	ErrInvalidColumn,
}

// IsIgnoredMove - reports whether err rejects a move without being a failure.
func IsIgnoredMove(err error) bool {
	for _, target := range ignoredMoves {
		if errors.Is(err, target) {
			return true
		}
	}

	return false
}

// IsValidation - reports whether err is caused by bad player input.
func IsValidation(err error) bool {
	return errors.Is(err, ErrEmptyPlayerName) ||
		errors.Is(err, ErrSamePlayerNames) ||
		errors.Is(err, ErrUnknownGameMode) ||
		errors.Is(err, ErrInvalidGameResult)
}
