package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/rocketscienceinc/tictactoe-history/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-history/internal/entity"
)

// memSession keeps sessions for the lifetime of the process.
type memSession struct {
	mu       sync.RWMutex
	sessions map[string]*entity.Session
}

func NewMemorySessionRepository() SessionRepository {
	return &memSession{
		sessions: make(map[string]*entity.Session),
	}
}

func (that *memSession) CreateOrUpdate(_ context.Context, session *entity.Session) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.sessions[session.ID] = session.Clone()

	return nil
}

func (that *memSession) GetByID(_ context.Context, id string) (*entity.Session, error) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	session, ok := that.sessions[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", apperror.ErrSessionNotFound, id)
	}

	// callers mutate what they get back
	return session.Clone(), nil
}

func (that *memSession) DeleteByID(_ context.Context, id string) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if _, ok := that.sessions[id]; !ok {
		return fmt.Errorf("%w: %s", apperror.ErrSessionNotFound, id)
	}

	delete(that.sessions, id)

	return nil
}
