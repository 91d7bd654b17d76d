package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/ekalbevoldog/contested/internal/domain/match"
	qb "github.com/ekalbevoldog/contested/internal/platform/querybuilder"
)

type MatchRepository struct {
	db *sqlx.DB
}

func NewMatchRepository(db *sqlx.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

func (r *MatchRepository) Upsert(ctx context.Context, m match.Match) error {
	model := matchTableModel{
		ID:         m.ID,
		AthleteID:  m.AthleteID,
		BusinessID: m.BusinessID,
		CampaignID: m.CampaignID,
		Score:      m.Score,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}

	query, args, err := qb.InsertModel("match_scores", model, `ON CONFLICT (athlete_id, campaign_id)
DO UPDATE SET
    business_id = EXCLUDED.business_id,
    score = EXCLUDED.score,
    updated_at = EXCLUDED.updated_at`)
	if err != nil {
		return fmt.Errorf("build upsert match query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert match: %w", translateError(err))
	}

	return nil
}

func (r *MatchRepository) GetByID(ctx context.Context, matchID string) (match.Match, bool, error) {
	query, args, err := qb.Select("*").From("match_scores").
		Where(qb.Eq("id", matchID)).
		Limit(1).
		ToSQL()
	if err != nil {
		return match.Match{}, false, fmt.Errorf("build get match query: %w", err)
	}

	var row matchTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return match.Match{}, false, nil
		}
		return match.Match{}, false, fmt.Errorf("get match: %w", translateError(err))
	}

	return matchFromRow(row), true, nil
}

func (r *MatchRepository) ListByAthlete(ctx context.Context, athleteID string) ([]match.Match, error) {
	return r.list(ctx, qb.Eq("athlete_id", athleteID))
}

func (r *MatchRepository) ListByBusiness(ctx context.Context, businessID string) ([]match.Match, error) {
	return r.list(ctx, qb.Eq("business_id", businessID))
}

func (r *MatchRepository) list(ctx context.Context, condition qb.Condition) ([]match.Match, error) {
	query, args, err := qb.Select("*").From("match_scores").
		Where(condition).
		OrderBy("created_at").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list matches query: %w", err)
	}

	var rows []matchTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list matches: %w", translateError(err))
	}

	out := make([]match.Match, 0, len(rows))
	for _, row := range rows {
		out = append(out, matchFromRow(row))
	}

	return out, nil
}
