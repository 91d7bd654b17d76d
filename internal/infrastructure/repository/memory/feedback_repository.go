package memory

import (
	"context"
	"sync"

	"github.com/ekalbevoldog/contested/internal/domain/feedback"
	"github.com/ekalbevoldog/contested/internal/domain/storage"
)

type FeedbackRepository struct {
	mu    sync.RWMutex
	items map[string]feedback.Feedback
	order []string
}

func NewFeedbackRepository() *FeedbackRepository {
	return &FeedbackRepository{
		items: make(map[string]feedback.Feedback),
	}
}

func (r *FeedbackRepository) Create(_ context.Context, f feedback.Feedback) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[f.ID]; ok {
		return storage.ErrConflict
	}

	r.items[f.ID] = f
	r.order = append(r.order, f.ID)
	return nil
}

func (r *FeedbackRepository) GetByID(_ context.Context, feedbackID string) (feedback.Feedback, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	f, ok := r.items[feedbackID]
	if !ok {
		return feedback.Feedback{}, false, nil
	}

	return f, true, nil
}

func (r *FeedbackRepository) UpdateStatus(_ context.Context, feedbackID, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	f, ok := r.items[feedbackID]
	if !ok {
		return storage.ErrNotFound
	}

	f.Status = status
	r.items[feedbackID] = f
	return nil
}

func (r *FeedbackRepository) ListBySubject(_ context.Context, subjectID string) ([]feedback.Feedback, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]feedback.Feedback, 0)
	for _, id := range r.order {
		if f := r.items[id]; f.SubjectID == subjectID {
			out = append(out, f)
		}
	}

	return out, nil
}
