package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/ekalbevoldog/contested/internal/domain/profile"
	qb "github.com/ekalbevoldog/contested/internal/platform/querybuilder"
)

type ProfileRepository struct {
	db *sqlx.DB
}

func NewProfileRepository(db *sqlx.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

func (r *ProfileRepository) UpsertAthlete(ctx context.Context, p profile.Athlete) error {
	model := athleteProfileTableModel{
		UserID:      p.UserID,
		DisplayName: p.DisplayName,
		Sport:       p.Sport,
		League:      optionalString(p.League),
		Bio:         optionalString(p.Bio),
		SocialReach: p.SocialReach,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}

	query, args, err := qb.InsertModel("athlete_profiles", model, `ON CONFLICT (user_id)
DO UPDATE SET
    display_name = EXCLUDED.display_name,
    sport = EXCLUDED.sport,
    league = EXCLUDED.league,
    bio = EXCLUDED.bio,
    social_reach = EXCLUDED.social_reach,
    updated_at = EXCLUDED.updated_at`)
	if err != nil {
		return fmt.Errorf("build upsert athlete profile query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert athlete profile: %w", translateError(err))
	}

	return nil
}

func (r *ProfileRepository) GetAthleteByUserID(ctx context.Context, userID string) (profile.Athlete, bool, error) {
	query, args, err := qb.Select("*").From("athlete_profiles").
		Where(qb.Eq("user_id", userID)).
		Limit(1).
		ToSQL()
	if err != nil {
		return profile.Athlete{}, false, fmt.Errorf("build get athlete profile query: %w", err)
	}

	var row athleteProfileTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return profile.Athlete{}, false, nil
		}
		return profile.Athlete{}, false, fmt.Errorf("get athlete profile: %w", translateError(err))
	}

	return athleteProfileFromRow(row), true, nil
}

func (r *ProfileRepository) UpsertBusiness(ctx context.Context, p profile.Business) error {
	model := businessProfileTableModel{
		UserID:      p.UserID,
		CompanyName: p.CompanyName,
		Industry:    optionalString(p.Industry),
		Website:     optionalString(p.Website),
		Bio:         optionalString(p.Bio),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}

	query, args, err := qb.InsertModel("business_profiles", model, `ON CONFLICT (user_id)
DO UPDATE SET
    company_name = EXCLUDED.company_name,
    industry = EXCLUDED.industry,
    website = EXCLUDED.website,
    bio = EXCLUDED.bio,
    updated_at = EXCLUDED.updated_at`)
	if err != nil {
		return fmt.Errorf("build upsert business profile query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert business profile: %w", translateError(err))
	}

	return nil
}

func (r *ProfileRepository) GetBusinessByUserID(ctx context.Context, userID string) (profile.Business, bool, error) {
	query, args, err := qb.Select("*").From("business_profiles").
		Where(qb.Eq("user_id", userID)).
		Limit(1).
		ToSQL()
	if err != nil {
		return profile.Business{}, false, fmt.Errorf("build get business profile query: %w", err)
	}

	var row businessProfileTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return profile.Business{}, false, nil
		}
		return profile.Business{}, false, fmt.Errorf("get business profile: %w", translateError(err))
	}

	return businessProfileFromRow(row), true, nil
}
