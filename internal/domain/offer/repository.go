package offer

import (
	"context"
	"time"
)

// Transition carries one conditional status update. Backends must apply it as
// a single guarded write (status may only leave StatusPending) and report
// whether any row actually changed, so concurrent responders get exactly one
// winner.
type Transition struct {
	OfferID      string
	To           Status
	CounterCents *int64
	RespondedAt  time.Time
}

type Repository interface {
	Create(ctx context.Context, o Offer) error
	GetByID(ctx context.Context, offerID string) (Offer, bool, error)
	ListByAthlete(ctx context.Context, athleteID string) ([]Offer, error)
	ListByBusiness(ctx context.Context, businessID string) ([]Offer, error)
	// ApplyTransition returns (false, nil) when the offer exists but is no
	// longer pending, and (false, nil) when the offer does not exist; callers
	// disambiguate with GetByID.
	ApplyTransition(ctx context.Context, t Transition) (bool, error)
}
