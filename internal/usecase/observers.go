package usecase

import (
	"context"

	"github.com/rocketscienceinc/multigame-backend/internal/entity"
)

// Observers - passes every finished game to each observer in order.
type Observers []OutcomeObserver

func (that Observers) OnGameFinished(ctx context.Context, event entity.GameFinished) {
	for _, observer := range that {
		observer.OnGameFinished(ctx, event)
	}
}
