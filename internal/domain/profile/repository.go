package profile

import "context"

type Repository interface {
	UpsertAthlete(ctx context.Context, p Athlete) error
	GetAthleteByUserID(ctx context.Context, userID string) (Athlete, bool, error)
	UpsertBusiness(ctx context.Context, p Business) error
	GetBusinessByUserID(ctx context.Context, userID string) (Business, bool, error)
}
