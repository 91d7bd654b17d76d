package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/ekalbevoldog/contested/internal/domain/offer"
	qb "github.com/ekalbevoldog/contested/internal/platform/querybuilder"
)

type OfferRepository struct {
	db *sqlx.DB
}

func NewOfferRepository(db *sqlx.DB) *OfferRepository {
	return &OfferRepository{db: db}
}

func (r *OfferRepository) Create(ctx context.Context, o offer.Offer) error {
	model := offerTableModel{
		ID:           o.ID,
		CampaignID:   o.CampaignID,
		BusinessID:   o.BusinessID,
		AthleteID:    o.AthleteID,
		MatchID:      optionalString(o.MatchID),
		AmountCents:  o.AmountCents,
		Terms:        optionalString(o.Terms),
		Status:       string(o.Status),
		CounterCents: optionalInt64(o.CounterCents),
		RespondedAt:  o.RespondedAt,
		CreatedAt:    o.CreatedAt,
		UpdatedAt:    o.UpdatedAt,
	}

	query, args, err := qb.InsertModel("partnership_offers", model, "")
	if err != nil {
		return fmt.Errorf("build insert offer query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert offer: %w", translateError(err))
	}

	return nil
}

func (r *OfferRepository) GetByID(ctx context.Context, offerID string) (offer.Offer, bool, error) {
	query, args, err := qb.Select("*").From("partnership_offers").
		Where(qb.Eq("id", offerID)).
		Limit(1).
		ToSQL()
	if err != nil {
		return offer.Offer{}, false, fmt.Errorf("build get offer query: %w", err)
	}

	var row offerTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return offer.Offer{}, false, nil
		}
		return offer.Offer{}, false, fmt.Errorf("get offer: %w", translateError(err))
	}

	return offerFromRow(row), true, nil
}

func (r *OfferRepository) ListByAthlete(ctx context.Context, athleteID string) ([]offer.Offer, error) {
	return r.list(ctx, qb.Eq("athlete_id", athleteID))
}

func (r *OfferRepository) ListByBusiness(ctx context.Context, businessID string) ([]offer.Offer, error) {
	return r.list(ctx, qb.Eq("business_id", businessID))
}

// ApplyTransition issues one conditional UPDATE guarded on the pending
// status. The affected-row count decides the race: zero rows means another
// responder already moved the offer out of pending (or it never existed).
func (r *OfferRepository) ApplyTransition(ctx context.Context, t offer.Transition) (bool, error) {
	query, args, err := qb.Update("partnership_offers").
		Set("status", string(t.To)).
		Set("counter_cents", optionalInt64(t.CounterCents)).
		Set("responded_at", t.RespondedAt).
		Set("updated_at", t.RespondedAt).
		Where(
			qb.Eq("id", t.OfferID),
			qb.Eq("status", string(offer.StatusPending)),
		).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build offer transition query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("apply offer transition: %w", translateError(err))
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("offer transition rows affected: %w", err)
	}

	return affected == 1, nil
}

func (r *OfferRepository) list(ctx context.Context, condition qb.Condition) ([]offer.Offer, error) {
	query, args, err := qb.Select("*").From("partnership_offers").
		Where(condition).
		OrderBy("created_at").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list offers query: %w", err)
	}

	var rows []offerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list offers: %w", translateError(err))
	}

	out := make([]offer.Offer, 0, len(rows))
	for _, row := range rows {
		out = append(out, offerFromRow(row))
	}

	return out, nil
}
