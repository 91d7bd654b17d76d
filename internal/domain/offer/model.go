package offer

import (
	"fmt"
	"time"
)

// Status is the lifecycle state of a partnership offer. Pending is the sole
// initial state; every other status is terminal and can only be reached from
// pending. Transitions are never reversed.
type Status string

const (
	StatusPending   Status = "pending"
	StatusAccepted  Status = "accepted"
	StatusDeclined  Status = "declined"
	StatusCountered Status = "countered"
	StatusCanceled  Status = "canceled"
)

func ParseStatus(v string) (Status, bool) {
	switch Status(v) {
	case StatusPending, StatusAccepted, StatusDeclined, StatusCountered, StatusCanceled:
		return Status(v), true
	default:
		return "", false
	}
}

func (s Status) Terminal() bool {
	return s != StatusPending
}

// CanTransition reports whether moving from s to target is legal.
func (s Status) CanTransition(target Status) bool {
	if s != StatusPending {
		return false
	}
	switch target {
	case StatusAccepted, StatusDeclined, StatusCountered, StatusCanceled:
		return true
	default:
		return false
	}
}

// Offer is a partnership proposal from a business to an athlete, optionally
// referencing the stored match that prompted it. CounterCents is set only when
// the athlete counters.
type Offer struct {
	ID           string
	CampaignID   string
	BusinessID   string
	AthleteID    string
	MatchID      string
	AmountCents  int64
	Terms        string
	Status       Status
	CounterCents *int64
	RespondedAt  *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (o Offer) Validate() error {
	if o.ID == "" {
		return fmt.Errorf("offer id is required")
	}
	if o.CampaignID == "" {
		return fmt.Errorf("offer campaign id is required")
	}
	if o.BusinessID == "" {
		return fmt.Errorf("offer business id is required")
	}
	if o.AthleteID == "" {
		return fmt.Errorf("offer athlete id is required")
	}
	if o.AmountCents <= 0 {
		return fmt.Errorf("offer amount must be positive")
	}
	if _, ok := ParseStatus(string(o.Status)); !ok {
		return fmt.Errorf("offer status %q is not valid", o.Status)
	}

	return nil
}
