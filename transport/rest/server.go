package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rocketscienceinc/tictactoe-history/internal/entity"
)

const shutdownTimeout = 5 * time.Second

type sessionUseCase interface {
	StartSession(ctx context.Context) (*entity.Session, error)
	GetSession(ctx context.Context, sessionID string) (*entity.Session, error)
	EndSession(ctx context.Context, sessionID string) error

	MakeMove(ctx context.Context, sessionID string, cell int) (*entity.Session, error)
	JumpTo(ctx context.Context, sessionID string, move int) (*entity.Session, error)
}

type handlers struct {
	logger   *slog.Logger
	sessions sessionUseCase
}

// NewRouter - builds the gin engine with every endpoint.
func NewRouter(logger *slog.Logger, sessions sessionUseCase) *gin.Engine {
	h := &handlers{
		logger:   logger.With("component", "rest"),
		sessions: sessions,
	}

	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(h.logger))

	r.GET("/ping", pingHandler)

	s := r.Group("/sessions")
	{
		s.POST("", h.startSession)
		s.GET("/:id", h.getSession)
		s.DELETE("/:id", h.endSession)
		s.POST("/:id/moves", h.makeMove)
		s.POST("/:id/jump", h.jumpTo)
	}

	return r
}

// Start - serves handler on port until ctx is canceled.
func Start(ctx context.Context, port string, handler http.Handler) error {
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("failed to start server: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}

	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server stopped: %w", err)
	}

	return nil
}
