package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/ekalbevoldog/contested/internal/domain/storage"
	"github.com/ekalbevoldog/contested/internal/domain/user"
)

type UserRepository struct {
	mu    sync.RWMutex
	items map[string]user.User
	order []string
}

func NewUserRepository() *UserRepository {
	return &UserRepository{
		items: make(map[string]user.User),
	}
}

func (r *UserRepository) Create(_ context.Context, u user.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[u.ID]; ok {
		return storage.ErrConflict
	}
	for _, existing := range r.items {
		if strings.EqualFold(existing.Email, u.Email) || strings.EqualFold(existing.Username, u.Username) {
			return storage.ErrConflict
		}
	}

	r.items[u.ID] = u
	r.order = append(r.order, u.ID)
	return nil
}

func (r *UserRepository) GetByID(_ context.Context, userID string) (user.User, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.items[userID]
	if !ok {
		return user.User{}, false, nil
	}

	return u, true, nil
}

func (r *UserRepository) GetByEmail(_ context.Context, email string) (user.User, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.items {
		if strings.EqualFold(u.Email, email) {
			return u, true, nil
		}
	}

	return user.User{}, false, nil
}

func (r *UserRepository) GetByUsername(_ context.Context, username string) (user.User, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.items {
		if strings.EqualFold(u.Username, username) {
			return u, true, nil
		}
	}

	return user.User{}, false, nil
}

func (r *UserRepository) ListByRole(_ context.Context, role user.Role) ([]user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]user.User, 0)
	for _, id := range r.order {
		if u := r.items[id]; u.Role == role {
			out = append(out, u)
		}
	}

	return out, nil
}
