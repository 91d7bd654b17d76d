package postgres

import (
	"database/sql"
	"time"

	"github.com/ekalbevoldog/contested/internal/domain/offer"
)

type offerTableModel struct {
	ID           string         `db:"id"`
	CampaignID   string         `db:"campaign_id"`
	BusinessID   string         `db:"business_id"`
	AthleteID    string         `db:"athlete_id"`
	MatchID      sql.NullString `db:"match_id"`
	AmountCents  int64          `db:"amount_cents"`
	Terms        sql.NullString `db:"terms"`
	Status       string         `db:"status"`
	CounterCents sql.NullInt64  `db:"counter_cents"`
	RespondedAt  *time.Time     `db:"responded_at"`
	CreatedAt    time.Time      `db:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at"`
}

func offerFromRow(row offerTableModel) offer.Offer {
	return offer.Offer{
		ID:           row.ID,
		CampaignID:   row.CampaignID,
		BusinessID:   row.BusinessID,
		AthleteID:    row.AthleteID,
		MatchID:      row.MatchID.String,
		AmountCents:  row.AmountCents,
		Terms:        row.Terms.String,
		Status:       offer.Status(row.Status),
		CounterCents: nullInt64Ptr(row.CounterCents),
		RespondedAt:  row.RespondedAt,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
}
