package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/multigame-backend/internal/entity"
	"github.com/rocketscienceinc/multigame-backend/internal/pkg"
)

const historyKey = "games"

// HistoryRepository - the most recent game results, newest first.
type HistoryRepository interface {
	Add(ctx context.Context, result *entity.GameResult) (*entity.GameResult, error)
	Recent(ctx context.Context) ([]*entity.GameResult, error)
}

// stamp - fills the id and time of a result that has not been stored yet.
func stamp(result *entity.GameResult) *entity.GameResult {
	stored := *result
	if stored.ID == "" {
		stored.ID = pkg.GenerateResultID()
	}

	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = time.Now().UTC()
	}

	return &stored
}

type dbHistory struct {
	client *redis.Client
	limit  int
}

// NewHistoryRepository - redis list trimmed to the limit newest results.
func NewHistoryRepository(client *redis.Client, limit int) HistoryRepository {
	return &dbHistory{
		client: client,
		limit:  limit,
	}
}

func (that *dbHistory) Add(ctx context.Context, result *entity.GameResult) (*entity.GameResult, error) {
	stored := stamp(result)

	resultJSON, err := json.Marshal(stored)
	if err != nil {
		return nil, fmt.Errorf("could not marshal game result: %w", err)
	}

	_, err = that.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.LPush(ctx, historyKey, resultJSON)
		pipe.LTrim(ctx, historyKey, 0, int64(that.limit-1))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to push game result: %w", err)
	}

	return stored, nil
}

func (that *dbHistory) Recent(ctx context.Context) ([]*entity.GameResult, error) {
	response, err := that.client.LRange(ctx, historyKey, 0, int64(that.limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get game history: %w", err)
	}

	results := make([]*entity.GameResult, 0, len(response))
	for _, item := range response {
		var result entity.GameResult
		if err = json.Unmarshal([]byte(item), &result); err != nil {
			return nil, fmt.Errorf("failed to unmarshal game result: %w", err)
		}

		results = append(results, &result)
	}

	return results, nil
}

type sqlHistory struct {
	conn  *sql.DB
	limit int
}

// NewSQLHistoryRepository - history kept in the games table of a sqlite database.
func NewSQLHistoryRepository(conn *sql.DB, limit int) HistoryRepository {
	return &sqlHistory{
		conn:  conn,
		limit: limit,
	}
}

func (that *sqlHistory) Add(ctx context.Context, result *entity.GameResult) (*entity.GameResult, error) {
	stored := stamp(result)

	query := `INSERT INTO games (id, mode, winner_name, winner_symbol, loser_name, loser_symbol, is_tie, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := that.conn.ExecContext(ctx, query,
		stored.ID,
		stored.Mode,
		stored.WinnerName,
		stored.WinnerSymbol,
		stored.LoserName,
		stored.LoserSymbol,
		stored.IsTie,
		stored.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return nil, fmt.Errorf("can't save game result: %w", err)
	}

	return stored, nil
}

func (that *sqlHistory) Recent(ctx context.Context) ([]*entity.GameResult, error) {
	query := `SELECT id, mode, winner_name, winner_symbol, loser_name, loser_symbol, is_tie, created_at
		FROM games ORDER BY seq DESC LIMIT ?`

	rows, err := that.conn.QueryContext(ctx, query, that.limit)
	if err != nil {
		return nil, fmt.Errorf("can't query game history: %w", err)
	}
	defer rows.Close()

	results := make([]*entity.GameResult, 0, that.limit)
	for rows.Next() {
		var (
			result    entity.GameResult
			createdAt string
		)

		err = rows.Scan(
			&result.ID,
			&result.Mode,
			&result.WinnerName,
			&result.WinnerSymbol,
			&result.LoserName,
			&result.LoserSymbol,
			&result.IsTie,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("can't scan game result: %w", err)
		}

		if result.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt); err != nil {
			return nil, fmt.Errorf("can't parse game time: %w", err)
		}

		results = append(results, &result)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("can't read game history: %w", err)
	}

	return results, nil
}
