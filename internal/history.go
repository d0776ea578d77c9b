package application

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/multigame-backend/internal/config"
	"github.com/rocketscienceinc/multigame-backend/internal/repository"
	"github.com/rocketscienceinc/multigame-backend/internal/repository/storage"
	"github.com/rocketscienceinc/multigame-backend/internal/service"
)

// newHistory - the game history store selected by the history driver, with its cleanup.
func newHistory(ctx context.Context, conf *config.Config, redisStorage *redis.Client) (repository.HistoryRepository, func(), error) {
	noop := func() {}

	switch conf.History.Driver {
	case config.HistoryDriverRedis:
		return repository.NewHistoryRepository(redisStorage, conf.History.Limit), noop, nil
	case config.HistoryDriverSQLite:
		conn, err := storage.NewSQLite(ctx, conf.History.SQLitePath)
		if err != nil {
			return nil, noop, fmt.Errorf("could not open sqlite history: %w", err)
		}

		return repository.NewSQLHistoryRepository(conn, conf.History.Limit), func() { _ = conn.Close() }, nil
	case config.HistoryDriverRemote:
		return service.NewHistoryClient(conf.History.RemoteURL, conf.History.Limit, conf.History.Timeout), noop, nil
	default:
		return nil, noop, fmt.Errorf("%w: %s", ErrUnknownHistoryDriver, conf.History.Driver)
	}
}
