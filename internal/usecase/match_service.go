package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ekalbevoldog/contested/internal/domain/match"
	"github.com/ekalbevoldog/contested/internal/domain/user"
	"github.com/ekalbevoldog/contested/internal/platform/id"
)

type IngestMatchScoreInput struct {
	AthleteID  string
	BusinessID string
	CampaignID string
	Score      float64
}

type MatchService struct {
	matchRepo match.Repository
	idGen     id.Generator
	now       func() time.Time
}

func NewMatchService(matchRepo match.Repository, idGen id.Generator) *MatchService {
	return &MatchService{
		matchRepo: matchRepo,
		idGen:     idGen,
		now:       time.Now,
	}
}

// IngestScores stores a batch of externally computed match scores. Scoring
// itself happens upstream; this service persists whatever arrives.
func (s *MatchService) IngestScores(ctx context.Context, inputs []IngestMatchScoreInput) (int, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.IngestScores")
	defer span.End()

	if len(inputs) == 0 {
		return 0, fmt.Errorf("%w: at least one score is required", ErrInvalidInput)
	}

	stored := 0
	now := s.now().UTC()
	for i, input := range inputs {
		matchID, err := s.idGen.NewID()
		if err != nil {
			return stored, fmt.Errorf("generate match id: %w", err)
		}

		item := match.Match{
			ID:         matchID,
			AthleteID:  strings.TrimSpace(input.AthleteID),
			BusinessID: strings.TrimSpace(input.BusinessID),
			CampaignID: strings.TrimSpace(input.CampaignID),
			Score:      input.Score,
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		if err := item.Validate(); err != nil {
			return stored, fmt.Errorf("%w: score %d: %v", ErrInvalidInput, i, err)
		}

		if err := s.matchRepo.Upsert(ctx, item); err != nil {
			return stored, fmt.Errorf("upsert match score %d: %w", i, err)
		}
		stored++
	}

	return stored, nil
}

func (s *MatchService) Get(ctx context.Context, matchID string) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Get")
	defer span.End()

	matchID = strings.TrimSpace(matchID)
	if matchID == "" {
		return match.Match{}, fmt.Errorf("%w: match_id is required", ErrInvalidInput)
	}

	found, exists, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return match.Match{}, fmt.Errorf("get match: %w", err)
	}
	if !exists {
		return match.Match{}, fmt.Errorf("%w: match not found", ErrNotFound)
	}

	return found, nil
}

// ListForPrincipal returns the caller's matches: athletes see matches where
// they are the subject, businesses see matches against their campaigns.
func (s *MatchService) ListForPrincipal(ctx context.Context, principal user.Principal) ([]match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.ListForPrincipal")
	defer span.End()

	switch principal.Role {
	case user.RoleAthlete:
		items, err := s.matchRepo.ListByAthlete(ctx, principal.UserID)
		if err != nil {
			return nil, fmt.Errorf("list matches by athlete: %w", err)
		}
		return items, nil
	case user.RoleBusiness:
		items, err := s.matchRepo.ListByBusiness(ctx, principal.UserID)
		if err != nil {
			return nil, fmt.Errorf("list matches by business: %w", err)
		}
		return items, nil
	default:
		return nil, fmt.Errorf("%w: matches are scoped to athletes and businesses", ErrForbidden)
	}
}
