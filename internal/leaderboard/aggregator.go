// Package leaderboard folds finished games into per-player win/loss/tie tallies.
package leaderboard

import (
	"slices"

	"github.com/rocketscienceinc/multigame-backend/internal/entity"
)

// Rules - scoring switches.
type Rules struct {
	// RecordLosses counts a loss for the loser of a won game.
	RecordLosses bool
}

// Outcome - how a game ended. Mark is the winner's mark or color for OutcomeWin.
type Outcome struct {
	Kind string
	Mark string
}

// FromEvent - the outcome carried by a finished game event.
func FromEvent(event entity.GameFinished) Outcome {
	return Outcome{Kind: event.Kind, Mark: event.WinnerMark}
}

// Apply - returns board updated with the outcome of one game between playerX and playerO.
// board is left untouched; new players are appended in the order they are credited.
func Apply(board []entity.PlayerRecord, playerX, playerO string, outcome Outcome, rules Rules) []entity.PlayerRecord {
	updated := slices.Clone(board)

	switch outcome.Kind {
	case entity.OutcomeWin:
		winner, loser := playerX, playerO
		if !entity.IsFirstPlayerMark(outcome.Mark) {
			winner, loser = playerO, playerX
		}

		updated = credit(updated, winner, func(record *entity.PlayerRecord) { record.Wins++ })
		if rules.RecordLosses {
			updated = credit(updated, loser, func(record *entity.PlayerRecord) { record.Losses++ })
		}
	case entity.OutcomeTie:
		for _, name := range []string{playerX, playerO} {
			updated = credit(updated, name, func(record *entity.PlayerRecord) { record.Ties++ })
		}
	case entity.OutcomeNoWinner:
		for _, name := range []string{playerX, playerO} {
			updated = credit(updated, name, func(record *entity.PlayerRecord) { record.Losses++ })
		}
	}

	return updated
}

func credit(board []entity.PlayerRecord, name string, update func(record *entity.PlayerRecord)) []entity.PlayerRecord {
	idx := slices.IndexFunc(board, func(record entity.PlayerRecord) bool {
		return record.Name == name
	})

	if idx < 0 {
		board = append(board, entity.PlayerRecord{Name: name})
		idx = len(board) - 1
	}

	update(&board[idx])

	return board
}

// Find - the record of name, false when the player has no games yet.
func Find(board []entity.PlayerRecord, name string) (entity.PlayerRecord, bool) {
	for _, record := range board {
		if record.Name == name {
			return record, true
		}
	}

	return entity.PlayerRecord{}, false
}
