package memory

import (
	"context"
	"sync"

	"github.com/ekalbevoldog/contested/internal/domain/offer"
	"github.com/ekalbevoldog/contested/internal/domain/storage"
)

type OfferRepository struct {
	mu    sync.Mutex
	items map[string]offer.Offer
	order []string
}

func NewOfferRepository() *OfferRepository {
	return &OfferRepository{
		items: make(map[string]offer.Offer),
	}
}

func (r *OfferRepository) Create(_ context.Context, o offer.Offer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[o.ID]; ok {
		return storage.ErrConflict
	}

	r.items[o.ID] = o
	r.order = append(r.order, o.ID)
	return nil
}

func (r *OfferRepository) GetByID(_ context.Context, offerID string) (offer.Offer, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	o, ok := r.items[offerID]
	if !ok {
		return offer.Offer{}, false, nil
	}

	return o, true, nil
}

func (r *OfferRepository) ListByAthlete(_ context.Context, athleteID string) ([]offer.Offer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]offer.Offer, 0)
	for _, id := range r.order {
		if o := r.items[id]; o.AthleteID == athleteID {
			out = append(out, o)
		}
	}

	return out, nil
}

func (r *OfferRepository) ListByBusiness(_ context.Context, businessID string) ([]offer.Offer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]offer.Offer, 0)
	for _, id := range r.order {
		if o := r.items[id]; o.BusinessID == businessID {
			out = append(out, o)
		}
	}

	return out, nil
}

// ApplyTransition performs the check-and-set under the repository lock; only
// a pending offer is changed, mirroring the conditional UPDATE the SQL
// backends issue.
func (r *OfferRepository) ApplyTransition(_ context.Context, t offer.Transition) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	o, ok := r.items[t.OfferID]
	if !ok || o.Status != offer.StatusPending {
		return false, nil
	}

	o.Status = t.To
	o.CounterCents = t.CounterCents
	respondedAt := t.RespondedAt
	o.RespondedAt = &respondedAt
	o.UpdatedAt = t.RespondedAt
	r.items[t.OfferID] = o

	return true, nil
}
