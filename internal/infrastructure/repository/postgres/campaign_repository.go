package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/ekalbevoldog/contested/internal/domain/campaign"
	"github.com/ekalbevoldog/contested/internal/domain/storage"
	qb "github.com/ekalbevoldog/contested/internal/platform/querybuilder"
)

type CampaignRepository struct {
	db *sqlx.DB
}

func NewCampaignRepository(db *sqlx.DB) *CampaignRepository {
	return &CampaignRepository{db: db}
}

func (r *CampaignRepository) Create(ctx context.Context, c campaign.Campaign) error {
	model := campaignTableModel{
		ID:          c.ID,
		BusinessID:  c.BusinessID,
		Title:       c.Title,
		Brief:       optionalString(c.Brief),
		BudgetCents: c.BudgetCents,
		Status:      c.Status,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}

	query, args, err := qb.InsertModel("campaigns", model, "")
	if err != nil {
		return fmt.Errorf("build insert campaign query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert campaign: %w", translateError(err))
	}

	return nil
}

func (r *CampaignRepository) Update(ctx context.Context, c campaign.Campaign) error {
	query, args, err := qb.Update("campaigns").
		Set("title", c.Title).
		Set("brief", optionalString(c.Brief)).
		Set("budget_cents", c.BudgetCents).
		Set("status", c.Status).
		Set("updated_at", c.UpdatedAt).
		Where(qb.Eq("id", c.ID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update campaign query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update campaign: %w", translateError(err))
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return fmt.Errorf("update campaign: %w", storage.ErrNotFound)
	}

	return nil
}

func (r *CampaignRepository) GetByID(ctx context.Context, campaignID string) (campaign.Campaign, bool, error) {
	query, args, err := qb.Select("*").From("campaigns").
		Where(qb.Eq("id", campaignID)).
		Limit(1).
		ToSQL()
	if err != nil {
		return campaign.Campaign{}, false, fmt.Errorf("build get campaign query: %w", err)
	}

	var row campaignTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return campaign.Campaign{}, false, nil
		}
		return campaign.Campaign{}, false, fmt.Errorf("get campaign: %w", translateError(err))
	}

	return campaignFromRow(row), true, nil
}

func (r *CampaignRepository) ListByBusiness(ctx context.Context, businessID string) ([]campaign.Campaign, error) {
	return r.list(ctx, qb.Eq("business_id", businessID))
}

func (r *CampaignRepository) ListByStatus(ctx context.Context, status string) ([]campaign.Campaign, error) {
	return r.list(ctx, qb.Eq("status", status))
}

func (r *CampaignRepository) list(ctx context.Context, condition qb.Condition) ([]campaign.Campaign, error) {
	query, args, err := qb.Select("*").From("campaigns").
		Where(condition).
		OrderBy("created_at").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list campaigns query: %w", err)
	}

	var rows []campaignTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list campaigns: %w", translateError(err))
	}

	out := make([]campaign.Campaign, 0, len(rows))
	for _, row := range rows {
		out = append(out, campaignFromRow(row))
	}

	return out, nil
}
