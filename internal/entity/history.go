package entity

import "time"

// GameResult - one entry of the recent game history.
type GameResult struct {
	ID           string    `json:"id"`
	Mode         string    `json:"mode,omitempty"`
	WinnerName   string    `json:"winnerName"`
	WinnerSymbol string    `json:"winnerSymbol"`
	LoserName    string    `json:"loserName"`
	LoserSymbol  string    `json:"loserSymbol"`
	IsTie        bool      `json:"isTie"`
	CreatedAt    time.Time `json:"createdAt"`
}

// NewGameResult - builds the history entry of a finished game, nil when nobody won or tied.
func NewGameResult(event GameFinished) *GameResult {
	switch event.Kind {
	case OutcomeWin:
		return &GameResult{
			Mode:         event.Mode,
			WinnerName:   event.WinnerName(),
			WinnerSymbol: event.WinnerMark,
			LoserName:    event.LoserName(),
			LoserSymbol:  event.LoserMark(),
		}
	case OutcomeTie:
		first, second := PlayerX, PlayerO
		if event.Mode == ConnectFourMode {
			first, second = Red, Yellow
		}

		return &GameResult{
			Mode:         event.Mode,
			WinnerName:   event.PlayerX,
			WinnerSymbol: first,
			LoserName:    event.PlayerO,
			LoserSymbol:  second,
			IsTie:        true,
		}
	default:
		return nil
	}
}
