package profile

import (
	"fmt"
	"time"
)

// Athlete is the marketing profile an athlete exposes to businesses. It is 1:1
// with a user account.
type Athlete struct {
	UserID      string
	DisplayName string
	Sport       string
	League      string
	Bio         string
	SocialReach int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (a Athlete) Validate() error {
	if a.UserID == "" {
		return fmt.Errorf("athlete profile user id is required")
	}
	if a.DisplayName == "" {
		return fmt.Errorf("athlete profile display name is required")
	}
	if a.Sport == "" {
		return fmt.Errorf("athlete profile sport is required")
	}

	return nil
}

// Business is the profile a sponsoring business exposes to athletes.
type Business struct {
	UserID      string
	CompanyName string
	Industry    string
	Website     string
	Bio         string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (b Business) Validate() error {
	if b.UserID == "" {
		return fmt.Errorf("business profile user id is required")
	}
	if b.CompanyName == "" {
		return fmt.Errorf("business profile company name is required")
	}

	return nil
}
