package message

import "context"

type Repository interface {
	Append(ctx context.Context, m Message) error
	// ListBySession returns messages in creation order. A session with no
	// messages yields an empty slice, not an error.
	ListBySession(ctx context.Context, sessionID string) ([]Message, error)
	ListSessionIDsByUser(ctx context.Context, userID string) ([]string, error)
}
