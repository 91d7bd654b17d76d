package postgres

import (
	"database/sql"
	"time"

	"github.com/ekalbevoldog/contested/internal/domain/campaign"
)

type campaignTableModel struct {
	ID          string         `db:"id"`
	BusinessID  string         `db:"business_id"`
	Title       string         `db:"title"`
	Brief       sql.NullString `db:"brief"`
	BudgetCents int64          `db:"budget_cents"`
	Status      string         `db:"status"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

func campaignFromRow(row campaignTableModel) campaign.Campaign {
	return campaign.Campaign{
		ID:          row.ID,
		BusinessID:  row.BusinessID,
		Title:       row.Title,
		Brief:       row.Brief.String,
		BudgetCents: row.BudgetCents,
		Status:      row.Status,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}
