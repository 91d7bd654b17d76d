package feedback

import (
	"fmt"
	"time"
)

const (
	StatusPublished = "published"
	StatusFlagged   = "flagged"
	StatusRemoved   = "removed"
)

// Feedback is a user-authored review of another marketplace participant.
type Feedback struct {
	ID        string
	AuthorID  string
	SubjectID string
	Rating    int
	Comment   string
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (f Feedback) Validate() error {
	if f.ID == "" {
		return fmt.Errorf("feedback id is required")
	}
	if f.AuthorID == "" {
		return fmt.Errorf("feedback author id is required")
	}
	if f.SubjectID == "" {
		return fmt.Errorf("feedback subject id is required")
	}
	if f.AuthorID == f.SubjectID {
		return fmt.Errorf("feedback author cannot review themselves")
	}
	if f.Rating < 1 || f.Rating > 5 {
		return fmt.Errorf("feedback rating must be between 1 and 5")
	}

	return nil
}
