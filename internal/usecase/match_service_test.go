package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/ekalbevoldog/contested/internal/domain/user"
	"github.com/ekalbevoldog/contested/internal/infrastructure/repository/memory"
	"github.com/ekalbevoldog/contested/internal/platform/id"
)

func TestIngestScoresUpsertsByAthleteAndCampaign(t *testing.T) {
	stores := memory.NewStores()
	svc := NewMatchService(stores.Matches, id.NewRandomGenerator())
	ctx := context.Background()

	stored, err := svc.IngestScores(ctx, []IngestMatchScoreInput{
		{AthleteID: "ath-1", BusinessID: "biz-1", CampaignID: "camp-1", Score: 70},
		{AthleteID: "ath-2", BusinessID: "biz-1", CampaignID: "camp-1", Score: 55},
	})
	if err != nil {
		t.Fatalf("ingest: %v", err)
	}
	if stored != 2 {
		t.Fatalf("expected 2 stored, got %d", stored)
	}

	// Re-ingesting the same athlete+campaign pair replaces, not duplicates.
	if _, err := svc.IngestScores(ctx, []IngestMatchScoreInput{
		{AthleteID: "ath-1", BusinessID: "biz-1", CampaignID: "camp-1", Score: 91},
	}); err != nil {
		t.Fatalf("re-ingest: %v", err)
	}

	items, err := svc.ListForPrincipal(ctx, user.Principal{UserID: "ath-1", Role: user.RoleAthlete})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 match for athlete, got %d", len(items))
	}
	if items[0].Score != 91 {
		t.Fatalf("expected replaced score 91, got %v", items[0].Score)
	}
}

func TestIngestScoresRejectsOutOfRange(t *testing.T) {
	stores := memory.NewStores()
	svc := NewMatchService(stores.Matches, id.NewRandomGenerator())

	_, err := svc.IngestScores(context.Background(), []IngestMatchScoreInput{
		{AthleteID: "ath-1", BusinessID: "biz-1", CampaignID: "camp-1", Score: 130},
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestListMatchesForComplianceForbidden(t *testing.T) {
	stores := memory.NewStores()
	svc := NewMatchService(stores.Matches, id.NewRandomGenerator())

	_, err := svc.ListForPrincipal(context.Background(), user.Principal{UserID: "c-1", Role: user.RoleCompliance})
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}
