package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/tictactoe-history/internal/entity"
)

type SessionUseCase interface {
	StartSession(ctx context.Context) (*entity.Session, error)
	GetSession(ctx context.Context, sessionID string) (*entity.Session, error)
	EndSession(ctx context.Context, sessionID string) error

	MakeMove(ctx context.Context, sessionID string, cell int) (*entity.Session, error)
	JumpTo(ctx context.Context, sessionID string, move int) (*entity.Session, error)
}

type sessionRepo interface {
	CreateOrUpdate(ctx context.Context, session *entity.Session) error
	GetByID(ctx context.Context, id string) (*entity.Session, error)
	DeleteByID(ctx context.Context, id string) error
}

type sessionUseCase struct {
	logger      *slog.Logger
	sessionRepo sessionRepo
	newID       func() string

	// serializes load-change-store so two requests never interleave on one session
	mu sync.Mutex
}

func NewSessionUseCase(logger *slog.Logger, sessionRepo sessionRepo) SessionUseCase {
	return &sessionUseCase{
		logger:      logger.With("component", "session"),
		sessionRepo: sessionRepo,
		newID:       uuid.NewString,
	}
}

func (that *sessionUseCase) StartSession(ctx context.Context) (*entity.Session, error) {
	session := entity.NewSession(that.newID())

	if err := that.sessionRepo.CreateOrUpdate(ctx, session); err != nil {
		return nil, fmt.Errorf("could not create session: %w", err)
	}

	that.logger.Info("Session started", "sessionID", session.ID)

	return session, nil
}

func (that *sessionUseCase) GetSession(ctx context.Context, sessionID string) (*entity.Session, error) {
	session, err := that.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	return session, nil
}

func (that *sessionUseCase) EndSession(ctx context.Context, sessionID string) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if err := that.sessionRepo.DeleteByID(ctx, sessionID); err != nil {
		return fmt.Errorf("failed to end session: %w", err)
	}

	that.logger.Info("Session ended", "sessionID", sessionID)

	return nil
}

// MakeMove - applies a move for whoever is on turn. Ignored moves return the
// unchanged session and are not written back.
func (that *sessionUseCase) MakeMove(ctx context.Context, sessionID string, cell int) (*entity.Session, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	session, err := that.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	mark := session.Turn()

	applied, err := session.ApplyMove(cell)
	if err != nil {
		return nil, fmt.Errorf("failed to make move: %w", err)
	}

	if !applied {
		that.logger.Debug("Move ignored", "sessionID", sessionID, "cell", cell)
		return session, nil
	}

	if err = that.sessionRepo.CreateOrUpdate(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to update session: %w", err)
	}

	log := that.logger.With("sessionID", sessionID)
	log.Info("Move made", "mark", mark, "cell", cell, "move", session.CurrentIndex)

	if winner := session.Winner(); winner != entity.EmptyCell {
		log.Info("Game won", "winner", winner, "move", session.CurrentIndex)
	}

	return session, nil
}

func (that *sessionUseCase) JumpTo(ctx context.Context, sessionID string, move int) (*entity.Session, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	session, err := that.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	if err = session.JumpTo(move); err != nil {
		return nil, fmt.Errorf("failed to jump: %w", err)
	}

	if err = that.sessionRepo.CreateOrUpdate(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to update session: %w", err)
	}

	that.logger.Info("Jumped to move", "sessionID", sessionID, "move", move)

	return session, nil
}
