package postgres

import (
	"time"

	"github.com/ekalbevoldog/contested/internal/domain/session"
)

type sessionTableModel struct {
	TokenHash string    `db:"token_hash"`
	UserID    string    `db:"user_id"`
	Role      string    `db:"role"`
	Payload   []byte    `db:"payload"`
	ExpiresAt time.Time `db:"expires_at"`
	CreatedAt time.Time `db:"created_at"`
}

func sessionFromRow(row sessionTableModel) session.Session {
	return session.Session{
		TokenHash: row.TokenHash,
		UserID:    row.UserID,
		Role:      row.Role,
		Payload:   row.Payload,
		ExpiresAt: row.ExpiresAt,
		CreatedAt: row.CreatedAt,
	}
}
