package cache

import (
	"context"
	"testing"
	"time"

	"github.com/ekalbevoldog/contested/internal/domain/campaign"
	"github.com/ekalbevoldog/contested/internal/infrastructure/repository/memory"
	basecache "github.com/ekalbevoldog/contested/internal/platform/cache"
)

type countingCampaignRepo struct {
	campaign.Repository
	gets int
}

func (r *countingCampaignRepo) GetByID(ctx context.Context, campaignID string) (campaign.Campaign, bool, error) {
	r.gets++
	return r.Repository.GetByID(ctx, campaignID)
}

func TestCampaignRepositoryCachesReads(t *testing.T) {
	ctx := context.Background()
	inner := &countingCampaignRepo{Repository: memory.NewCampaignRepository()}
	repo := NewCampaignRepository(inner, basecache.NewStore(time.Minute))

	c := campaign.Campaign{
		ID:          "camp-1",
		BusinessID:  "biz-1",
		Title:       "Spring launch",
		BudgetCents: 250_000,
		Status:      campaign.StatusOpen,
		CreatedAt:   time.Now().UTC(),
		UpdatedAt:   time.Now().UTC(),
	}
	if err := repo.Create(ctx, c); err != nil {
		t.Fatalf("create: %v", err)
	}

	for i := 0; i < 3; i++ {
		got, ok, err := repo.GetByID(ctx, c.ID)
		if err != nil || !ok {
			t.Fatalf("get #%d: ok=%v err=%v", i, ok, err)
		}
		if got.Title != c.Title {
			t.Fatalf("got title %q, want %q", got.Title, c.Title)
		}
	}
	if inner.gets != 1 {
		t.Fatalf("inner repository hit %d times, want 1", inner.gets)
	}
}

func TestCampaignRepositoryInvalidatesOnUpdate(t *testing.T) {
	ctx := context.Background()
	inner := &countingCampaignRepo{Repository: memory.NewCampaignRepository()}
	repo := NewCampaignRepository(inner, basecache.NewStore(time.Minute))

	c := campaign.Campaign{
		ID:          "camp-2",
		BusinessID:  "biz-1",
		Title:       "Before",
		BudgetCents: 100_000,
		Status:      campaign.StatusDraft,
		CreatedAt:   time.Now().UTC(),
		UpdatedAt:   time.Now().UTC(),
	}
	if err := repo.Create(ctx, c); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, _, err := repo.GetByID(ctx, c.ID); err != nil {
		t.Fatalf("warm read: %v", err)
	}

	c.Title = "After"
	if err := repo.Update(ctx, c); err != nil {
		t.Fatalf("update: %v", err)
	}

	got, ok, err := repo.GetByID(ctx, c.ID)
	if err != nil || !ok {
		t.Fatalf("read after update: ok=%v err=%v", ok, err)
	}
	if got.Title != "After" {
		t.Fatalf("stale read after update: got %q", got.Title)
	}
}
