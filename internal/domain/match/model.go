package match

import (
	"fmt"
	"time"
)

// Match links an athlete to a business campaign with a relevance score. The
// score is computed upstream and ingested as-is; this service only stores and
// serves it.
type Match struct {
	ID         string
	AthleteID  string
	BusinessID string
	CampaignID string
	Score      float64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (m Match) Validate() error {
	if m.ID == "" {
		return fmt.Errorf("match id is required")
	}
	if m.AthleteID == "" {
		return fmt.Errorf("match athlete id is required")
	}
	if m.BusinessID == "" {
		return fmt.Errorf("match business id is required")
	}
	if m.CampaignID == "" {
		return fmt.Errorf("match campaign id is required")
	}
	if m.Score < 0 || m.Score > 100 {
		return fmt.Errorf("match score must be between 0 and 100")
	}

	return nil
}
