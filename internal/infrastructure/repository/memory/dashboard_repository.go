package memory

import (
	"context"
	"sync"

	"github.com/ekalbevoldog/contested/internal/domain/dashboard"
)

type DashboardRepository struct {
	mu    sync.RWMutex
	items map[string]dashboard.Config
}

func NewDashboardRepository() *DashboardRepository {
	return &DashboardRepository{
		items: make(map[string]dashboard.Config),
	}
}

func (r *DashboardRepository) Upsert(_ context.Context, c dashboard.Config) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	c.Layout = append([]byte(nil), c.Layout...)
	r.items[c.UserID] = c
	return nil
}

func (r *DashboardRepository) GetByUserID(_ context.Context, userID string) (dashboard.Config, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.items[userID]
	if !ok {
		return dashboard.Config{}, false, nil
	}

	c.Layout = append([]byte(nil), c.Layout...)
	return c, true, nil
}
