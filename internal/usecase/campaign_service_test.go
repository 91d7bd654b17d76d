package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/ekalbevoldog/contested/internal/domain/campaign"
	"github.com/ekalbevoldog/contested/internal/domain/user"
	"github.com/ekalbevoldog/contested/internal/infrastructure/repository/memory"
	"github.com/ekalbevoldog/contested/internal/platform/id"
)

func TestCampaignCreateAndListOpen(t *testing.T) {
	stores := memory.NewStores()
	svc := NewCampaignService(stores.Campaigns, id.NewRandomGenerator())
	ctx := context.Background()
	business := user.Principal{UserID: "biz-1", Role: user.RoleBusiness}

	created, err := svc.Create(ctx, business, CreateCampaignInput{
		Title:       "Fall launch",
		Brief:       "Content series.",
		BudgetCents: 100000,
		Status:      campaign.StatusOpen,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.BusinessID != business.UserID {
		t.Fatalf("campaign owner should be the caller, got %q", created.BusinessID)
	}

	if _, err := svc.Create(ctx, business, CreateCampaignInput{Title: "Draft one"}); err != nil {
		t.Fatalf("create draft: %v", err)
	}

	open, err := svc.ListOpen(ctx)
	if err != nil {
		t.Fatalf("list open: %v", err)
	}
	if len(open) != 1 || open[0].ID != created.ID {
		t.Fatalf("expected only the open campaign, got %+v", open)
	}
}

func TestCampaignCreateForbiddenForAthlete(t *testing.T) {
	stores := memory.NewStores()
	svc := NewCampaignService(stores.Campaigns, id.NewRandomGenerator())

	_, err := svc.Create(context.Background(), user.Principal{UserID: "ath-1", Role: user.RoleAthlete}, CreateCampaignInput{Title: "Nope"})
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestCampaignUpdateByNonOwnerForbidden(t *testing.T) {
	stores := memory.NewStores()
	svc := NewCampaignService(stores.Campaigns, id.NewRandomGenerator())
	ctx := context.Background()

	created, err := svc.Create(ctx, user.Principal{UserID: "biz-1", Role: user.RoleBusiness}, CreateCampaignInput{Title: "Mine"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	_, err = svc.Update(ctx, user.Principal{UserID: "biz-2", Role: user.RoleBusiness}, created.ID, UpdateCampaignInput{Title: "Stolen"})
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestCampaignUpdatePartialMerge(t *testing.T) {
	stores := memory.NewStores()
	svc := NewCampaignService(stores.Campaigns, id.NewRandomGenerator())
	ctx := context.Background()
	business := user.Principal{UserID: "biz-1", Role: user.RoleBusiness}

	created, err := svc.Create(ctx, business, CreateCampaignInput{
		Title:       "Original",
		Brief:       "Original brief.",
		BudgetCents: 5000,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := svc.Update(ctx, business, created.ID, UpdateCampaignInput{Status: campaign.StatusOpen})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Title != "Original" || updated.Brief != "Original brief." || updated.BudgetCents != 5000 {
		t.Fatalf("partial update must keep earlier fields: %+v", updated)
	}
	if updated.Status != campaign.StatusOpen {
		t.Fatalf("expected open status, got %q", updated.Status)
	}
}

func TestCampaignRejectsUnknownStatus(t *testing.T) {
	stores := memory.NewStores()
	svc := NewCampaignService(stores.Campaigns, id.NewRandomGenerator())
	ctx := context.Background()
	business := user.Principal{UserID: "biz-1", Role: user.RoleBusiness}

	_, err := svc.Create(ctx, business, CreateCampaignInput{Title: "Bad", Status: "archived"})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for unknown status on create, got %v", err)
	}

	created, err := svc.Create(ctx, business, CreateCampaignInput{Title: "Good"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	_, err = svc.Update(ctx, business, created.ID, UpdateCampaignInput{Status: "paused"})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for unknown status on update, got %v", err)
	}
}

func TestCampaignGetMissing(t *testing.T) {
	stores := memory.NewStores()
	svc := NewCampaignService(stores.Campaigns, id.NewRandomGenerator())

	_, err := svc.Get(context.Background(), "no-such-campaign")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
