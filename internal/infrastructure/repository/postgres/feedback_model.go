package postgres

import (
	"database/sql"
	"time"

	"github.com/ekalbevoldog/contested/internal/domain/feedback"
)

type feedbackTableModel struct {
	ID        string         `db:"id"`
	AuthorID  string         `db:"author_id"`
	SubjectID string         `db:"subject_id"`
	Rating    int            `db:"rating"`
	Comment   sql.NullString `db:"comment"`
	Status    string         `db:"status"`
	CreatedAt time.Time      `db:"created_at"`
	UpdatedAt time.Time      `db:"updated_at"`
}

func feedbackFromRow(row feedbackTableModel) feedback.Feedback {
	return feedback.Feedback{
		ID:        row.ID,
		AuthorID:  row.AuthorID,
		SubjectID: row.SubjectID,
		Rating:    row.Rating,
		Comment:   row.Comment.String,
		Status:    row.Status,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}
