package entity

const (
	StatusNotStarted = "not_started"
	StatusInProgress = "in_progress"
	StatusWin        = "win"
	StatusTie        = "tie"

	PlayerX   = "X"
	PlayerO   = "O"
	PlayerTie = "-"

	EmptyCell = ""
)

const (
	TicTacToeMode   = "tic-tac-toe"
	ConnectFourMode = "connect-four"
)

var WinCombos = [][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// TicTacToe - state of a single tic-tac-toe game.
type TicTacToe struct {
	Board       [9]string `json:"board"`
	Turn        string    `json:"turn"`
	Status      string    `json:"status"`
	Winner      string    `json:"winner,omitempty"`
	WinningLine []int     `json:"winningLine,omitempty"`
	PlayerX     string    `json:"playerX"`
	PlayerO     string    `json:"playerO"`
}

func NewTicTacToe(playerX, playerO string) *TicTacToe {
	return &TicTacToe{
		Board:   [9]string{EmptyCell, EmptyCell, EmptyCell, EmptyCell, EmptyCell, EmptyCell, EmptyCell, EmptyCell, EmptyCell},
		Turn:    PlayerX,
		Status:  StatusNotStarted,
		PlayerX: playerX,
		PlayerO: playerO,
	}
}

func (that *TicTacToe) IsFinished() bool {
	return IsTerminal(that.Status)
}

func (that *TicTacToe) IsInProgress() bool {
	return that.Status == StatusInProgress
}

// PlayerName - returns the name of the player who places mark.
func (that *TicTacToe) PlayerName(mark string) string {
	switch mark {
	case PlayerX:
		return that.PlayerX
	case PlayerO:
		return that.PlayerO
	default:
		return ""
	}
}

// IsTerminal - reports whether no more moves are accepted in status.
func IsTerminal(status string) bool {
	return status == StatusWin || status == StatusTie
}

// IsKnownMode - reports whether mode names one of the games.
func IsKnownMode(mode string) bool {
	return mode == TicTacToeMode || mode == ConnectFourMode
}
