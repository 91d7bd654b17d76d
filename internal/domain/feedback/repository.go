package feedback

import "context"

type Repository interface {
	Create(ctx context.Context, f Feedback) error
	GetByID(ctx context.Context, feedbackID string) (Feedback, bool, error)
	UpdateStatus(ctx context.Context, feedbackID, status string) error
	ListBySubject(ctx context.Context, subjectID string) ([]Feedback, error)
}
