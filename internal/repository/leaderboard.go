package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/multigame-backend/internal/apperror"
	"github.com/rocketscienceinc/multigame-backend/internal/entity"
)

// LeaderboardRepository - the leaderboard kept as a single JSON array of player records.
type LeaderboardRepository interface {
	Load(ctx context.Context) ([]entity.PlayerRecord, error)
	Save(ctx context.Context, records []entity.PlayerRecord) error
}

type dbLeaderboard struct {
	client *redis.Client
	key    string
}

func NewLeaderboardRepository(client *redis.Client, key string) LeaderboardRepository {
	return &dbLeaderboard{
		client: client,
		key:    key,
	}
}

// Load - returns an empty leaderboard when nothing was saved yet.
func (that *dbLeaderboard) Load(ctx context.Context) ([]entity.PlayerRecord, error) {
	response, err := that.client.Get(ctx, that.key).Bytes()

	if errors.Is(err, redis.Nil) {
		return []entity.PlayerRecord{}, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get leaderboard: %w", err)
	}

	records := []entity.PlayerRecord{}
	if err = json.Unmarshal(response, &records); err != nil {
		return nil, fmt.Errorf("%w: %w", apperror.ErrMalformedLeaderboard, err)
	}

	return records, nil
}

func (that *dbLeaderboard) Save(ctx context.Context, records []entity.PlayerRecord) error {
	if records == nil {
		records = []entity.PlayerRecord{}
	}

	leaderboardJSON, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("could not marshal leaderboard: %w", err)
	}

	if err = that.client.Set(ctx, that.key, leaderboardJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to set leaderboard: %w", err)
	}

	return nil
}
