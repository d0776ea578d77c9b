package entity

const (
	OutcomeWin      = "win"
	OutcomeTie      = "tie"
	OutcomeNoWinner = "no_winner"
)

// GameFinished - emitted once when a game of a session reaches a terminal outcome.
type GameFinished struct {
	SessionID  string `json:"sessionId"`
	Mode       string `json:"mode"`
	PlayerX    string `json:"playerX"`
	PlayerO    string `json:"playerO"`
	Kind       string `json:"kind"`
	WinnerMark string `json:"winnerMark,omitempty"`
}

// IsFirstPlayerMark - X and Red belong to the first player, O and Yellow to the second.
func IsFirstPlayerMark(mark string) bool {
	return mark == PlayerX || mark == Red
}

func (that GameFinished) WinnerName() string {
	if that.Kind != OutcomeWin {
		return ""
	}

	if IsFirstPlayerMark(that.WinnerMark) {
		return that.PlayerX
	}

	return that.PlayerO
}

func (that GameFinished) LoserName() string {
	if that.Kind != OutcomeWin {
		return ""
	}

	if IsFirstPlayerMark(that.WinnerMark) {
		return that.PlayerO
	}

	return that.PlayerX
}

func (that GameFinished) LoserMark() string {
	switch that.WinnerMark {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	case Red:
		return Yellow
	case Yellow:
		return Red
	default:
		return ""
	}
}
