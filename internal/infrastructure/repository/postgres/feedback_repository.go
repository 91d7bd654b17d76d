package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/ekalbevoldog/contested/internal/domain/feedback"
	"github.com/ekalbevoldog/contested/internal/domain/storage"
	qb "github.com/ekalbevoldog/contested/internal/platform/querybuilder"
)

type FeedbackRepository struct {
	db *sqlx.DB
}

func NewFeedbackRepository(db *sqlx.DB) *FeedbackRepository {
	return &FeedbackRepository{db: db}
}

func (r *FeedbackRepository) Create(ctx context.Context, f feedback.Feedback) error {
	model := feedbackTableModel{
		ID:        f.ID,
		AuthorID:  f.AuthorID,
		SubjectID: f.SubjectID,
		Rating:    f.Rating,
		Comment:   optionalString(f.Comment),
		Status:    f.Status,
		CreatedAt: f.CreatedAt,
		UpdatedAt: f.UpdatedAt,
	}

	query, args, err := qb.InsertModel("feedbacks", model, "")
	if err != nil {
		return fmt.Errorf("build insert feedback query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert feedback: %w", translateError(err))
	}

	return nil
}

func (r *FeedbackRepository) GetByID(ctx context.Context, feedbackID string) (feedback.Feedback, bool, error) {
	query, args, err := qb.Select("*").From("feedbacks").
		Where(qb.Eq("id", feedbackID)).
		Limit(1).
		ToSQL()
	if err != nil {
		return feedback.Feedback{}, false, fmt.Errorf("build get feedback query: %w", err)
	}

	var row feedbackTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return feedback.Feedback{}, false, nil
		}
		return feedback.Feedback{}, false, fmt.Errorf("get feedback: %w", translateError(err))
	}

	return feedbackFromRow(row), true, nil
}

func (r *FeedbackRepository) UpdateStatus(ctx context.Context, feedbackID, status string) error {
	query, args, err := qb.Update("feedbacks").
		Set("status", status).
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("id", feedbackID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update feedback status query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update feedback status: %w", translateError(err))
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return fmt.Errorf("update feedback status: %w", storage.ErrNotFound)
	}

	return nil
}

func (r *FeedbackRepository) ListBySubject(ctx context.Context, subjectID string) ([]feedback.Feedback, error) {
	query, args, err := qb.Select("*").From("feedbacks").
		Where(qb.Eq("subject_id", subjectID)).
		OrderBy("created_at").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list feedback query: %w", err)
	}

	var rows []feedbackTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list feedback: %w", translateError(err))
	}

	out := make([]feedback.Feedback, 0, len(rows))
	for _, row := range rows {
		out = append(out, feedbackFromRow(row))
	}

	return out, nil
}
