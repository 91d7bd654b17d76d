package postgres

import (
	"time"

	"github.com/ekalbevoldog/contested/internal/domain/message"
)

type messageTableModel struct {
	ID        string    `db:"id"`
	SessionID string    `db:"session_id"`
	SenderID  string    `db:"sender_id"`
	Body      string    `db:"body"`
	CreatedAt time.Time `db:"created_at"`
}

func messageFromRow(row messageTableModel) message.Message {
	return message.Message{
		ID:        row.ID,
		SessionID: row.SessionID,
		SenderID:  row.SenderID,
		Body:      row.Body,
		CreatedAt: row.CreatedAt,
	}
}
