package postgres

import (
	"time"

	"github.com/ekalbevoldog/contested/internal/domain/match"
)

type matchTableModel struct {
	ID         string    `db:"id"`
	AthleteID  string    `db:"athlete_id"`
	BusinessID string    `db:"business_id"`
	CampaignID string    `db:"campaign_id"`
	Score      float64   `db:"score"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`
}

func matchFromRow(row matchTableModel) match.Match {
	return match.Match{
		ID:         row.ID,
		AthleteID:  row.AthleteID,
		BusinessID: row.BusinessID,
		CampaignID: row.CampaignID,
		Score:      row.Score,
		CreatedAt:  row.CreatedAt,
		UpdatedAt:  row.UpdatedAt,
	}
}
