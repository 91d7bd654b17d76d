package match

import "context"

type Repository interface {
	// Upsert keys on (athlete, campaign): re-ingesting a score overwrites the
	// previous value for the same pair.
	Upsert(ctx context.Context, m Match) error
	GetByID(ctx context.Context, matchID string) (Match, bool, error)
	ListByAthlete(ctx context.Context, athleteID string) ([]Match, error)
	ListByBusiness(ctx context.Context, businessID string) ([]Match, error)
}
