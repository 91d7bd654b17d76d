package dashboard

import "context"

type Repository interface {
	Upsert(ctx context.Context, c Config) error
	GetByUserID(ctx context.Context, userID string) (Config, bool, error)
}
