package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/ekalbevoldog/contested/internal/domain/user"
	"github.com/ekalbevoldog/contested/internal/infrastructure/repository/memory"
)

func TestSaveAthleteProfileMergesPartialUpdates(t *testing.T) {
	stores := memory.NewStores()
	svc := NewProfileService(stores.Profiles)
	ctx := context.Background()
	principal := user.Principal{UserID: "ath-1", Role: user.RoleAthlete}

	first, err := svc.SaveAthleteProfile(ctx, principal, SaveAthleteProfileInput{
		DisplayName: "Jordan Reyes",
		Sport:       "basketball",
		League:      "NCAA D1",
		SocialReach: 40000,
	})
	if err != nil {
		t.Fatalf("first save: %v", err)
	}

	second, err := svc.SaveAthleteProfile(ctx, principal, SaveAthleteProfileInput{
		Bio: "Point guard.",
	})
	if err != nil {
		t.Fatalf("second save: %v", err)
	}
	if second.DisplayName != first.DisplayName || second.Sport != first.Sport {
		t.Fatalf("partial update must keep earlier fields: %+v", second)
	}
	if second.Bio != "Point guard." {
		t.Fatalf("expected merged bio, got %q", second.Bio)
	}
	if second.CreatedAt != first.CreatedAt {
		t.Fatalf("created_at must not move on update")
	}
}

func TestSaveAthleteProfileRejectsWrongRole(t *testing.T) {
	stores := memory.NewStores()
	svc := NewProfileService(stores.Profiles)

	_, err := svc.SaveAthleteProfile(context.Background(), user.Principal{UserID: "biz-1", Role: user.RoleBusiness}, SaveAthleteProfileInput{
		DisplayName: "Nope",
		Sport:       "golf",
	})
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestSaveBusinessProfileRequiresCompanyName(t *testing.T) {
	stores := memory.NewStores()
	svc := NewProfileService(stores.Profiles)

	_, err := svc.SaveBusinessProfile(context.Background(), user.Principal{UserID: "biz-1", Role: user.RoleBusiness}, SaveBusinessProfileInput{
		Industry: "retail",
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestGetAthleteProfileNotFound(t *testing.T) {
	stores := memory.NewStores()
	svc := NewProfileService(stores.Profiles)

	_, err := svc.GetAthleteProfile(context.Background(), "missing-user")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
