package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	"github.com/rocketscienceinc/multigame-backend/internal/config"
	"github.com/rocketscienceinc/multigame-backend/internal/leaderboard"
	"github.com/rocketscienceinc/multigame-backend/internal/repository"
	"github.com/rocketscienceinc/multigame-backend/internal/repository/storage"
	"github.com/rocketscienceinc/multigame-backend/internal/usecase"
	"github.com/rocketscienceinc/multigame-backend/transport/rest"
	"github.com/rocketscienceinc/multigame-backend/transport/websocket"
)

const shutdownTimeout = 10 * time.Second

var (
	ErrAddrNotFound         = errors.New("redis address string is empty")
	ErrUnknownHistoryDriver = errors.New("unknown history driver")
)

// RunApp - runs the application until ctx is canceled or a signal is received.
func RunApp(ctx context.Context, logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	redisAddrString := conf.Redis.GetRedisAddr()
	if redisAddrString == "" {
		return ErrAddrNotFound
	}

	redisStorage, err := storage.New(ctx, redisAddrString)
	if err != nil {
		return fmt.Errorf("could not connect to redis storage: %w", err)
	}

	defer func() {
		if err = redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}()

	history, closeHistory, err := newHistory(ctx, conf, redisStorage)
	if err != nil {
		return err
	}
	defer closeHistory()

	sessionRepo := repository.NewSessionRepository(redisStorage)
	leaderboardRepo := repository.NewLeaderboardRepository(redisStorage, conf.Leaderboard.Key)

	rules := leaderboard.Rules{RecordLosses: !conf.Leaderboard.WinsOnly}
	leaderboardManager := usecase.NewLeaderboardManager(logger, leaderboardRepo, history, rules)
	hub := websocket.NewHub(logger, leaderboardManager)
	sessionManager := usecase.NewSessionManager(logger, sessionRepo, usecase.Observers{leaderboardManager, hub})

	restServer := rest.New(logger, conf.HTTPPort, sessionManager, leaderboardManager)
	wsServer := websocket.New(logger, conf.SocketPort, sessionManager, hub)

	errCh := make(chan error, 2)
	go func() {
		if httpErr := restServer.Start(); httpErr != nil {
			errCh <- fmt.Errorf("HTTP server error: %w", httpErr)
		}
	}()

	go func() {
		if wsErr := wsServer.Start(); wsErr != nil {
			errCh <- fmt.Errorf("WebSocket server error: %w", wsErr)
		}
	}()

	select {
	case err = <-errCh:
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if shutdownErr := restServer.Shutdown(shutdownCtx); shutdownErr != nil {
		log.Error("could not stop HTTP server", "error", shutdownErr)
	}

	if shutdownErr := wsServer.Shutdown(shutdownCtx); shutdownErr != nil {
		log.Error("could not stop WebSocket server", "error", shutdownErr)
	}

	leaderboardManager.Wait()

	return err
}
