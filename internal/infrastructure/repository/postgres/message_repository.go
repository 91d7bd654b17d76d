package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/ekalbevoldog/contested/internal/domain/message"
	qb "github.com/ekalbevoldog/contested/internal/platform/querybuilder"
)

type MessageRepository struct {
	db *sqlx.DB
}

func NewMessageRepository(db *sqlx.DB) *MessageRepository {
	return &MessageRepository{db: db}
}

func (r *MessageRepository) Append(ctx context.Context, m message.Message) error {
	model := messageTableModel{
		ID:        m.ID,
		SessionID: m.SessionID,
		SenderID:  m.SenderID,
		Body:      m.Body,
		CreatedAt: m.CreatedAt,
	}

	query, args, err := qb.InsertModel("messages", model, "")
	if err != nil {
		return fmt.Errorf("build insert message query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert message: %w", translateError(err))
	}

	return nil
}

func (r *MessageRepository) ListBySession(ctx context.Context, sessionID string) ([]message.Message, error) {
	query, args, err := qb.Select("*").From("messages").
		Where(qb.Eq("session_id", sessionID)).
		OrderBy("created_at", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list messages query: %w", err)
	}

	var rows []messageTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list messages: %w", translateError(err))
	}

	out := make([]message.Message, 0, len(rows))
	for _, row := range rows {
		out = append(out, messageFromRow(row))
	}

	return out, nil
}

func (r *MessageRepository) ListSessionIDsByUser(ctx context.Context, userID string) ([]string, error) {
	query, args, err := qb.Select("session_id").From("messages").
		Where(qb.Eq("sender_id", userID)).
		GroupBy("session_id").
		OrderBy("session_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list session ids query: %w", err)
	}

	var out []string
	if err := r.db.SelectContext(ctx, &out, query, args...); err != nil {
		return nil, fmt.Errorf("list session ids: %w", translateError(err))
	}

	return out, nil
}
