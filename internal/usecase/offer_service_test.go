package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/ekalbevoldog/contested/internal/domain/campaign"
	"github.com/ekalbevoldog/contested/internal/domain/offer"
	"github.com/ekalbevoldog/contested/internal/domain/user"
	"github.com/ekalbevoldog/contested/internal/infrastructure/repository/memory"
	"github.com/ekalbevoldog/contested/internal/platform/id"
)

type recordingPublisher struct {
	mu     sync.Mutex
	events []OfferEvent
}

func (p *recordingPublisher) PublishOfferEvent(_ context.Context, event OfferEvent) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
}

func newOfferFixture(t *testing.T) (*OfferService, *recordingPublisher, user.Principal, user.Principal, offer.Offer) {
	t.Helper()
	ctx := context.Background()
	stores := memory.NewStores()
	now := time.Now().UTC()

	athlete := user.User{ID: "ath-1", Email: "a@example.com", Username: "a", Role: user.RoleAthlete, CreatedAt: now, UpdatedAt: now}
	business := user.User{ID: "biz-1", Email: "b@example.com", Username: "b", Role: user.RoleBusiness, CreatedAt: now, UpdatedAt: now}
	for _, u := range []user.User{athlete, business} {
		if err := stores.Users.Create(ctx, u); err != nil {
			t.Fatalf("seed user: %v", err)
		}
	}
	if err := stores.Campaigns.Create(ctx, campaign.Campaign{
		ID: "camp-1", BusinessID: business.ID, Title: "Launch", Status: campaign.StatusOpen, CreatedAt: now, UpdatedAt: now,
	}); err != nil {
		t.Fatalf("seed campaign: %v", err)
	}

	publisher := &recordingPublisher{}
	svc := NewOfferService(stores.Offers, stores.Campaigns, stores.Users, publisher, id.NewRandomGenerator())

	bizPrincipal := user.Principal{UserID: business.ID, Role: user.RoleBusiness}
	athPrincipal := user.Principal{UserID: athlete.ID, Role: user.RoleAthlete}

	created, err := svc.Create(ctx, bizPrincipal, CreateOfferInput{
		CampaignID:  "camp-1",
		AthleteID:   athlete.ID,
		AmountCents: 50000,
		Terms:       "Two posts per week.",
	})
	if err != nil {
		t.Fatalf("create offer: %v", err)
	}
	if created.Status != offer.StatusPending {
		t.Fatalf("new offer must be pending, got %s", created.Status)
	}

	return svc, publisher, athPrincipal, bizPrincipal, created
}

func TestOfferAcceptThenSecondResponseConflicts(t *testing.T) {
	svc, publisher, athlete, _, created := newOfferFixture(t)
	ctx := context.Background()

	accepted, err := svc.Respond(ctx, athlete, created.ID, RespondOfferInput{Action: "accept"})
	if err != nil {
		t.Fatalf("accept: %v", err)
	}
	if accepted.Status != offer.StatusAccepted {
		t.Fatalf("expected accepted, got %s", accepted.Status)
	}
	if accepted.RespondedAt == nil {
		t.Fatalf("expected responded_at to be set")
	}

	_, err = svc.Respond(ctx, athlete, created.ID, RespondOfferInput{Action: "decline"})
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
	if !strings.Contains(err.Error(), "accepted") {
		t.Fatalf("conflict should name the winning status, got %q", err.Error())
	}

	if len(publisher.events) != 1 || publisher.events[0].To != offer.StatusAccepted {
		t.Fatalf("expected exactly one accepted event, got %+v", publisher.events)
	}
}

func TestOfferConcurrentResponsesHaveOneWinner(t *testing.T) {
	svc, publisher, athlete, _, created := newOfferFixture(t)
	ctx := context.Background()

	actions := []string{"accept", "decline", "counter", "accept", "decline"}
	errs := make([]error, len(actions))

	var wg sync.WaitGroup
	for i, action := range actions {
		wg.Add(1)
		go func(i int, action string) {
			defer wg.Done()
			input := RespondOfferInput{Action: action}
			if action == "counter" {
				input.CounterCents = 75000
			}
			_, errs[i] = svc.Respond(ctx, athlete, created.ID, input)
		}(i, action)
	}
	wg.Wait()

	winners := 0
	for _, err := range errs {
		if err == nil {
			winners++
			continue
		}
		if !errors.Is(err, ErrConflict) {
			t.Fatalf("losers must see ErrConflict, got %v", err)
		}
	}
	if winners != 1 {
		t.Fatalf("expected exactly one winner, got %d", winners)
	}
	if len(publisher.events) != 1 {
		t.Fatalf("expected exactly one event, got %d", len(publisher.events))
	}
}

func TestOfferCounterRequiresAmount(t *testing.T) {
	svc, _, athlete, _, created := newOfferFixture(t)

	_, err := svc.Respond(context.Background(), athlete, created.ID, RespondOfferInput{Action: "counter"})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestOfferCounterStoresAmount(t *testing.T) {
	svc, _, athlete, _, created := newOfferFixture(t)

	countered, err := svc.Respond(context.Background(), athlete, created.ID, RespondOfferInput{
		Action:       "counter",
		CounterCents: 80000,
	})
	if err != nil {
		t.Fatalf("counter: %v", err)
	}
	if countered.Status != offer.StatusCountered {
		t.Fatalf("expected countered, got %s", countered.Status)
	}
	if countered.CounterCents == nil || *countered.CounterCents != 80000 {
		t.Fatalf("expected counter amount 80000, got %+v", countered.CounterCents)
	}
}

func TestOfferCancelByOwningBusiness(t *testing.T) {
	svc, _, athlete, business, created := newOfferFixture(t)
	ctx := context.Background()

	canceled, err := svc.Cancel(ctx, business, created.ID)
	if err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if canceled.Status != offer.StatusCanceled {
		t.Fatalf("expected canceled, got %s", canceled.Status)
	}

	_, err = svc.Respond(ctx, athlete, created.ID, RespondOfferInput{Action: "accept"})
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict after cancel, got %v", err)
	}
}

func TestOfferRespondByWrongAthlete(t *testing.T) {
	svc, _, _, _, created := newOfferFixture(t)

	stranger := user.Principal{UserID: "ath-2", Role: user.RoleAthlete}
	_, err := svc.Respond(context.Background(), stranger, created.ID, RespondOfferInput{Action: "accept"})
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestOfferCancelByAthleteForbidden(t *testing.T) {
	svc, _, athlete, _, created := newOfferFixture(t)

	_, err := svc.Cancel(context.Background(), athlete, created.ID)
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestOfferCreateRequiresExistingAthlete(t *testing.T) {
	svc, _, _, business, _ := newOfferFixture(t)

	_, err := svc.Create(context.Background(), business, CreateOfferInput{
		CampaignID:  "camp-1",
		AthleteID:   "no-such-athlete",
		AmountCents: 1000,
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
