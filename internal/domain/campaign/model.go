package campaign

import (
	"fmt"
	"time"
)

const (
	StatusDraft  = "draft"
	StatusOpen   = "open"
	StatusClosed = "closed"
)

// Campaign is a sponsorship brief owned by a business. Status is one of
// draft, open, or closed; the database enforces the same set.
type Campaign struct {
	ID          string
	BusinessID  string
	Title       string
	Brief       string
	BudgetCents int64
	Status      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (c Campaign) Validate() error {
	if c.ID == "" {
		return fmt.Errorf("campaign id is required")
	}
	if c.BusinessID == "" {
		return fmt.Errorf("campaign business id is required")
	}
	if c.Title == "" {
		return fmt.Errorf("campaign title is required")
	}
	if c.BudgetCents < 0 {
		return fmt.Errorf("campaign budget cannot be negative")
	}
	if !ValidStatus(c.Status) {
		return fmt.Errorf("campaign status must be one of %s, %s, %s", StatusDraft, StatusOpen, StatusClosed)
	}

	return nil
}

func ValidStatus(status string) bool {
	switch status {
	case StatusDraft, StatusOpen, StatusClosed:
		return true
	}
	return false
}
