package memory

import (
	"context"
	"sync"

	"github.com/ekalbevoldog/contested/internal/domain/match"
)

type MatchRepository struct {
	mu    sync.RWMutex
	items map[string]match.Match
	order []string
}

func NewMatchRepository() *MatchRepository {
	return &MatchRepository{
		items: make(map[string]match.Match),
	}
}

// Upsert keys on (athlete, campaign): re-ingesting a score replaces the
// earlier row instead of accumulating duplicates.
func (r *MatchRepository) Upsert(_ context.Context, m match.Match) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, id := range r.order {
		existing := r.items[id]
		if existing.AthleteID == m.AthleteID && existing.CampaignID == m.CampaignID {
			m.ID = existing.ID
			m.CreatedAt = existing.CreatedAt
			r.items[existing.ID] = m
			return nil
		}
	}

	r.items[m.ID] = m
	r.order = append(r.order, m.ID)
	return nil
}

func (r *MatchRepository) GetByID(_ context.Context, matchID string) (match.Match, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.items[matchID]
	if !ok {
		return match.Match{}, false, nil
	}

	return m, true, nil
}

func (r *MatchRepository) ListByAthlete(_ context.Context, athleteID string) ([]match.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]match.Match, 0)
	for _, id := range r.order {
		if m := r.items[id]; m.AthleteID == athleteID {
			out = append(out, m)
		}
	}

	return out, nil
}

func (r *MatchRepository) ListByBusiness(_ context.Context, businessID string) ([]match.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]match.Match, 0)
	for _, id := range r.order {
		if m := r.items[id]; m.BusinessID == businessID {
			out = append(out, m)
		}
	}

	return out, nil
}
