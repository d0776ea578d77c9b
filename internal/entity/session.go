package entity

// Session - two named players sharing one screen, with the state of both games.
// The first player plays X and Red, the second plays O and Yellow.
type Session struct {
	ID          string       `json:"id"`
	Mode        string       `json:"mode"`
	PlayerX     string       `json:"playerX"`
	PlayerO     string       `json:"playerO"`
	TicTacToe   *TicTacToe   `json:"ticTacToe"`
	ConnectFour *ConnectFour `json:"connectFour"`
}

// CurrentStatus - status of the game selected by Mode.
func (that *Session) CurrentStatus() string {
	if that.Mode == ConnectFourMode {
		return that.ConnectFour.Status
	}

	return that.TicTacToe.Status
}
