package entity

const (
	Rows          = 6
	Columns       = 7
	ConnectLength = 4

	Red    = "Red"
	Yellow = "Yellow"
)

// ConnectFour - state of a single connect four game. Row 0 is the top row.
type ConnectFour struct {
	Board        [Rows][Columns]string `json:"board"`
	Turn         string                `json:"turn"`
	Status       string                `json:"status"`
	Winner       string                `json:"winner,omitempty"`
	WinningDiscs [][2]int              `json:"winningDiscs,omitempty"`
	PlayerRed    string                `json:"playerRed"`
	PlayerYellow string                `json:"playerYellow"`
}

func NewConnectFour(playerRed, playerYellow string) *ConnectFour {
	return &ConnectFour{
		Turn:         Red,
		Status:       StatusNotStarted,
		PlayerRed:    playerRed,
		PlayerYellow: playerYellow,
	}
}

func (that *ConnectFour) IsFinished() bool {
	return IsTerminal(that.Status)
}

func (that *ConnectFour) IsInProgress() bool {
	return that.Status == StatusInProgress
}

func (that *ConnectFour) IsEmpty() bool {
	for col := range Columns {
		if that.Board[Rows-1][col] != EmptyCell {
			return false
		}
	}

	return true
}

func (that *ConnectFour) PlayerName(color string) string {
	switch color {
	case Red:
		return that.PlayerRed
	case Yellow:
		return that.PlayerYellow
	default:
		return ""
	}
}
