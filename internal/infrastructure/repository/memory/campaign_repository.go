package memory

import (
	"context"
	"sync"

	"github.com/ekalbevoldog/contested/internal/domain/campaign"
	"github.com/ekalbevoldog/contested/internal/domain/storage"
)

type CampaignRepository struct {
	mu    sync.RWMutex
	items map[string]campaign.Campaign
	order []string
}

func NewCampaignRepository() *CampaignRepository {
	return &CampaignRepository{
		items: make(map[string]campaign.Campaign),
	}
}

func (r *CampaignRepository) Create(_ context.Context, c campaign.Campaign) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[c.ID]; ok {
		return storage.ErrConflict
	}

	r.items[c.ID] = c
	r.order = append(r.order, c.ID)
	return nil
}

func (r *CampaignRepository) Update(_ context.Context, c campaign.Campaign) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[c.ID]; !ok {
		return storage.ErrNotFound
	}

	r.items[c.ID] = c
	return nil
}

func (r *CampaignRepository) GetByID(_ context.Context, campaignID string) (campaign.Campaign, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.items[campaignID]
	if !ok {
		return campaign.Campaign{}, false, nil
	}

	return c, true, nil
}

func (r *CampaignRepository) ListByBusiness(_ context.Context, businessID string) ([]campaign.Campaign, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]campaign.Campaign, 0)
	for _, id := range r.order {
		if c := r.items[id]; c.BusinessID == businessID {
			out = append(out, c)
		}
	}

	return out, nil
}

func (r *CampaignRepository) ListByStatus(_ context.Context, status string) ([]campaign.Campaign, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]campaign.Campaign, 0)
	for _, id := range r.order {
		if c := r.items[id]; c.Status == status {
			out = append(out, c)
		}
	}

	return out, nil
}
