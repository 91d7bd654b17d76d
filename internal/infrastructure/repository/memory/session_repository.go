package memory

import (
	"context"
	"sync"

	"github.com/ekalbevoldog/contested/internal/domain/session"
	"github.com/ekalbevoldog/contested/internal/domain/storage"
)

type SessionRepository struct {
	mu    sync.RWMutex
	items map[string]session.Session
}

func NewSessionRepository() *SessionRepository {
	return &SessionRepository{
		items: make(map[string]session.Session),
	}
}

func (r *SessionRepository) Create(_ context.Context, s session.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[s.TokenHash]; ok {
		return storage.ErrConflict
	}

	r.items[s.TokenHash] = s
	return nil
}

func (r *SessionRepository) GetByTokenHash(_ context.Context, tokenHash string) (session.Session, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.items[tokenHash]
	if !ok {
		return session.Session{}, false, nil
	}

	return s, true, nil
}

func (r *SessionRepository) DeleteByTokenHash(_ context.Context, tokenHash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.items, tokenHash)
	return nil
}

func (r *SessionRepository) DeleteByUser(_ context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for hash, s := range r.items {
		if s.UserID == userID {
			delete(r.items, hash)
		}
	}

	return nil
}
