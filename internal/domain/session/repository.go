package session

import "context"

type Repository interface {
	Create(ctx context.Context, s Session) error
	GetByTokenHash(ctx context.Context, tokenHash string) (Session, bool, error)
	// DeleteByTokenHash is idempotent: deleting an unknown hash is not an error.
	DeleteByTokenHash(ctx context.Context, tokenHash string) error
	DeleteByUser(ctx context.Context, userID string) error
}
