package repository

import (
	"context"
	"sync"

	"github.com/rocketscienceinc/voice-tictactoe/internal/apperror"
	"github.com/rocketscienceinc/voice-tictactoe/internal/entity"
)

type memorySession struct {
	mu       sync.RWMutex
	sessions map[string]*entity.Session
}

var _ SessionRepository = (*memorySession)(nil)

// NewMemorySessionRepository keeps sessions in process memory. Stored and
// returned sessions are copies.
func NewMemorySessionRepository() SessionRepository {
	return &memorySession{sessions: make(map[string]*entity.Session)}
}

func (that *memorySession) CreateOrUpdate(_ context.Context, session *entity.Session) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.sessions[session.ID] = session.Clone()

	return nil
}

func (that *memorySession) GetByID(_ context.Context, id string) (*entity.Session, error) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	session, ok := that.sessions[id]
	if !ok {
		return nil, apperror.ErrSessionNotFound
	}

	return session.Clone(), nil
}

func (that *memorySession) DeleteByID(_ context.Context, id string) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if _, ok := that.sessions[id]; !ok {
		return apperror.ErrSessionNotFound
	}

	delete(that.sessions, id)

	return nil
}
