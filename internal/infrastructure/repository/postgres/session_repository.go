package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/ekalbevoldog/contested/internal/domain/session"
	qb "github.com/ekalbevoldog/contested/internal/platform/querybuilder"
)

type SessionRepository struct {
	db *sqlx.DB
}

func NewSessionRepository(db *sqlx.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

func (r *SessionRepository) Create(ctx context.Context, s session.Session) error {
	model := sessionTableModel{
		TokenHash: s.TokenHash,
		UserID:    s.UserID,
		Role:      s.Role,
		Payload:   s.Payload,
		ExpiresAt: s.ExpiresAt,
		CreatedAt: s.CreatedAt,
	}

	query, args, err := qb.InsertModel("sessions", model, "")
	if err != nil {
		return fmt.Errorf("build insert session query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert session: %w", translateError(err))
	}

	return nil
}

func (r *SessionRepository) GetByTokenHash(ctx context.Context, tokenHash string) (session.Session, bool, error) {
	query, args, err := qb.Select("*").From("sessions").
		Where(qb.Eq("token_hash", tokenHash)).
		Limit(1).
		ToSQL()
	if err != nil {
		return session.Session{}, false, fmt.Errorf("build get session query: %w", err)
	}

	var row sessionTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return session.Session{}, false, nil
		}
		return session.Session{}, false, fmt.Errorf("get session: %w", translateError(err))
	}

	return sessionFromRow(row), true, nil
}

func (r *SessionRepository) DeleteByTokenHash(ctx context.Context, tokenHash string) error {
	query, args, err := qb.DeleteFrom("sessions").
		Where(qb.Eq("token_hash", tokenHash)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build delete session query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete session: %w", translateError(err))
	}

	return nil
}

func (r *SessionRepository) DeleteByUser(ctx context.Context, userID string) error {
	query, args, err := qb.DeleteFrom("sessions").
		Where(qb.Eq("user_id", userID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build delete user sessions query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete user sessions: %w", translateError(err))
	}

	return nil
}
