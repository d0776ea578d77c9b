package entity

// PlayerRecord - leaderboard entry of a single player, keyed by name.
type PlayerRecord struct {
	Name   string `json:"name"`
	Wins   int    `json:"wins"`
	Losses int    `json:"losses"`
	Ties   int    `json:"ties"`
}
