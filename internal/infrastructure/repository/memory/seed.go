package memory

import (
	"context"
	"time"

	"github.com/ekalbevoldog/contested/internal/domain/campaign"
	"github.com/ekalbevoldog/contested/internal/domain/match"
	"github.com/ekalbevoldog/contested/internal/domain/profile"
	"github.com/ekalbevoldog/contested/internal/domain/user"
	"github.com/ekalbevoldog/contested/internal/platform/password"
)

const (
	SeedAthleteID  = "seed-athlete-01"
	SeedBusinessID = "seed-business-01"
	SeedCampaignID = "seed-campaign-01"

	// Shared by every seeded account so the dev stack is usable out of the box.
	SeedPassword = "contested-dev"
)

// Stores groups the memory repositories so seeding and wiring stay in one
// place for the dev backend.
type Stores struct {
	Users      *UserRepository
	Sessions   *SessionRepository
	Profiles   *ProfileRepository
	Campaigns  *CampaignRepository
	Matches    *MatchRepository
	Offers     *OfferRepository
	Messages   *MessageRepository
	Feedbacks  *FeedbackRepository
	Dashboards *DashboardRepository
}

func NewStores() *Stores {
	return &Stores{
		Users:      NewUserRepository(),
		Sessions:   NewSessionRepository(),
		Profiles:   NewProfileRepository(),
		Campaigns:  NewCampaignRepository(),
		Matches:    NewMatchRepository(),
		Offers:     NewOfferRepository(),
		Messages:   NewMessageRepository(),
		Feedbacks:  NewFeedbackRepository(),
		Dashboards: NewDashboardRepository(),
	}
}

// Seed loads a small demo marketplace: one athlete, one business, an open
// campaign and a stored match score between them.
func (s *Stores) Seed(ctx context.Context) error {
	now := time.Now().UTC()

	hash, salt, err := password.Hash(SeedPassword)
	if err != nil {
		return err
	}

	users := []user.User{
		{
			ID:           SeedAthleteID,
			Email:        "jordan.reyes@example.com",
			Username:     "jordanreyes",
			FullName:     "Jordan Reyes",
			Role:         user.RoleAthlete,
			PasswordHash: hash,
			PasswordSalt: salt,
			CreatedAt:    now,
			UpdatedAt:    now,
		},
		{
			ID:           SeedBusinessID,
			Email:        "partnerships@summitgear.example.com",
			Username:     "summitgear",
			FullName:     "Summit Gear Co.",
			Role:         user.RoleBusiness,
			PasswordHash: hash,
			PasswordSalt: salt,
			CreatedAt:    now,
			UpdatedAt:    now,
		},
	}
	for _, u := range users {
		if err := s.Users.Create(ctx, u); err != nil {
			return err
		}
	}

	if err := s.Profiles.UpsertAthlete(ctx, profile.Athlete{
		UserID:      SeedAthleteID,
		DisplayName: "Jordan Reyes",
		Sport:       "basketball",
		League:      "NCAA D1",
		Bio:         "Point guard, junior year.",
		SocialReach: 48000,
		CreatedAt:   now,
		UpdatedAt:   now,
	}); err != nil {
		return err
	}

	if err := s.Profiles.UpsertBusiness(ctx, profile.Business{
		UserID:      SeedBusinessID,
		CompanyName: "Summit Gear Co.",
		Industry:    "sporting goods",
		Website:     "https://summitgear.example.com",
		CreatedAt:   now,
		UpdatedAt:   now,
	}); err != nil {
		return err
	}

	if err := s.Campaigns.Create(ctx, campaign.Campaign{
		ID:          SeedCampaignID,
		BusinessID:  SeedBusinessID,
		Title:       "Spring basketball launch",
		Brief:       "Short-form video series featuring our new trail shoe line.",
		BudgetCents: 250000,
		Status:      campaign.StatusOpen,
		CreatedAt:   now,
		UpdatedAt:   now,
	}); err != nil {
		return err
	}

	return s.Matches.Upsert(ctx, match.Match{
		ID:         "seed-match-01",
		AthleteID:  SeedAthleteID,
		BusinessID: SeedBusinessID,
		CampaignID: SeedCampaignID,
		Score:      87.5,
		CreatedAt:  now,
		UpdatedAt:  now,
	})
}
