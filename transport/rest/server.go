package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
)

type Server struct {
	logger *slog.Logger
	srv    *http.Server
}

// New - builds the REST server with every route registered on an httprouter.
func New(logger *slog.Logger, port string, sessions sessionService, leaderboard leaderboardService) *Server {
	handlers := NewHandlers(logger, sessions, leaderboard)

	return &Server{
		logger: logger.With("component", "rest"),
		srv: &http.Server{
			Addr:         ":" + port,
			Handler:      NewRouter(handlers),
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  30 * time.Second,
		},
	}
}

func NewRouter(handlers *Handlers) *httprouter.Router {
	router := httprouter.New()

	router.GET("/ping", handlers.Ping)

	router.POST("/api/sessions", handlers.StartSession)
	router.GET("/api/sessions/:id", handlers.GetSession)
	router.DELETE("/api/sessions/:id", handlers.EndSession)
	router.PUT("/api/sessions/:id/players", handlers.ChangePlayers)
	router.PUT("/api/sessions/:id/mode", handlers.SelectMode)
	router.POST("/api/sessions/:id/moves", handlers.MakeMove)
	router.POST("/api/sessions/:id/reset", handlers.ResetGame)
	router.POST("/api/sessions/:id/abandon", handlers.AbandonGame)

	router.GET("/api/leaderboard", handlers.Standings)
	router.GET("/api/games", handlers.RecentGames)
	router.POST("/api/games", handlers.RecordGame)

	return router
}

// Start - serves until Shutdown is called.
func (that *Server) Start() error {
	that.logger.Info("Starting HTTP server", "addr", that.srv.Addr)

	if err := that.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

func (that *Server) Shutdown(ctx context.Context) error {
	if err := that.srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}

	return nil
}
