package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/ekalbevoldog/contested/internal/domain/user"
	"github.com/ekalbevoldog/contested/internal/infrastructure/repository/memory"
	"github.com/ekalbevoldog/contested/internal/platform/id"
)

func newDashboardFixture(t *testing.T) (*DashboardService, *memory.Stores) {
	t.Helper()
	stores := memory.NewStores()
	if err := stores.Seed(context.Background()); err != nil {
		t.Fatalf("seed stores: %v", err)
	}
	svc := NewDashboardService(stores.Dashboards, stores.Campaigns, stores.Matches, stores.Offers, stores.Messages)
	return svc, stores
}

func TestDashboardSaveAndGetConfig(t *testing.T) {
	svc, _ := newDashboardFixture(t)
	ctx := context.Background()
	principal := user.Principal{UserID: memory.SeedAthleteID, Role: user.RoleAthlete}

	layout := []byte(`{"widgets":["offers","matches"]}`)
	saved, err := svc.SaveConfig(ctx, principal, layout)
	if err != nil {
		t.Fatalf("save config: %v", err)
	}
	if string(saved.Layout) != string(layout) {
		t.Fatalf("stored layout differs: %s", saved.Layout)
	}

	got, err := svc.GetConfig(ctx, principal)
	if err != nil {
		t.Fatalf("get config: %v", err)
	}
	if string(got.Layout) != string(layout) {
		t.Fatalf("fetched layout differs: %s", got.Layout)
	}
}

func TestDashboardGetConfigDefaultsToEmptyObject(t *testing.T) {
	svc, _ := newDashboardFixture(t)

	got, err := svc.GetConfig(context.Background(), user.Principal{UserID: "fresh-user"})
	if err != nil {
		t.Fatalf("get config: %v", err)
	}
	if string(got.Layout) != "{}" {
		t.Fatalf("expected empty object default, got %s", got.Layout)
	}
}

func TestDashboardSaveConfigRejectsMalformedJSON(t *testing.T) {
	svc, _ := newDashboardFixture(t)

	_, err := svc.SaveConfig(context.Background(), user.Principal{UserID: "u-1"}, []byte(`{"widgets":`))
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestDashboardSummaryForAthlete(t *testing.T) {
	svc, stores := newDashboardFixture(t)
	ctx := context.Background()
	principal := user.Principal{UserID: memory.SeedAthleteID, Role: user.RoleAthlete}

	msgSvc := NewMessageService(stores.Messages, id.NewRandomGenerator())
	if _, err := msgSvc.Send(ctx, principal, SendMessageInput{SessionID: "sess-1", Body: "hello"}); err != nil {
		t.Fatalf("send message: %v", err)
	}

	summary, err := svc.Summary(ctx, principal)
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if summary.Campaigns != 1 {
		t.Fatalf("expected 1 open campaign, got %d", summary.Campaigns)
	}
	if summary.Matches != 1 {
		t.Fatalf("expected 1 match, got %d", summary.Matches)
	}
	if summary.PendingOffers != 0 || summary.ResolvedOffers != 0 {
		t.Fatalf("expected no offers, got %+v", summary)
	}
	if summary.MessageSessions != 1 {
		t.Fatalf("expected 1 message session, got %d", summary.MessageSessions)
	}
}
