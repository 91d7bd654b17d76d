package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ekalbevoldog/contested/internal/domain/feedback"
	"github.com/ekalbevoldog/contested/internal/domain/user"
	"github.com/ekalbevoldog/contested/internal/platform/id"
)

type CreateFeedbackInput struct {
	SubjectID string
	Rating    int
	Comment   string
}

type FeedbackService struct {
	feedbackRepo feedback.Repository
	userRepo     user.Repository
	idGen        id.Generator
	now          func() time.Time
}

func NewFeedbackService(feedbackRepo feedback.Repository, userRepo user.Repository, idGen id.Generator) *FeedbackService {
	return &FeedbackService{
		feedbackRepo: feedbackRepo,
		userRepo:     userRepo,
		idGen:        idGen,
		now:          time.Now,
	}
}

func (s *FeedbackService) Create(ctx context.Context, principal user.Principal, input CreateFeedbackInput) (feedback.Feedback, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FeedbackService.Create")
	defer span.End()

	input.SubjectID = strings.TrimSpace(input.SubjectID)
	if _, exists, err := s.userRepo.GetByID(ctx, input.SubjectID); err != nil {
		return feedback.Feedback{}, fmt.Errorf("get subject user: %w", err)
	} else if !exists {
		return feedback.Feedback{}, fmt.Errorf("%w: subject user not found", ErrNotFound)
	}

	feedbackID, err := s.idGen.NewID()
	if err != nil {
		return feedback.Feedback{}, fmt.Errorf("generate feedback id: %w", err)
	}

	now := s.now().UTC()
	created := feedback.Feedback{
		ID:        feedbackID,
		AuthorID:  principal.UserID,
		SubjectID: input.SubjectID,
		Rating:    input.Rating,
		Comment:   strings.TrimSpace(input.Comment),
		Status:    feedback.StatusPublished,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := created.Validate(); err != nil {
		return feedback.Feedback{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.feedbackRepo.Create(ctx, created); err != nil {
		return feedback.Feedback{}, fmt.Errorf("create feedback: %w", err)
	}

	return created, nil
}

func (s *FeedbackService) ListBySubject(ctx context.Context, subjectID string) ([]feedback.Feedback, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FeedbackService.ListBySubject")
	defer span.End()

	subjectID = strings.TrimSpace(subjectID)
	if subjectID == "" {
		return nil, fmt.Errorf("%w: subject_id is required", ErrInvalidInput)
	}

	items, err := s.feedbackRepo.ListBySubject(ctx, subjectID)
	if err != nil {
		return nil, fmt.Errorf("list feedback: %w", err)
	}

	out := make([]feedback.Feedback, 0, len(items))
	for _, item := range items {
		if item.Status == feedback.StatusRemoved {
			continue
		}
		out = append(out, item)
	}

	return out, nil
}

// Moderate lets compliance officers flag or remove a review.
func (s *FeedbackService) Moderate(ctx context.Context, principal user.Principal, feedbackID, status string) (feedback.Feedback, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FeedbackService.Moderate")
	defer span.End()

	if principal.Role != user.RoleCompliance && principal.Role != user.RoleAdmin {
		return feedback.Feedback{}, fmt.Errorf("%w: only compliance officers can moderate feedback", ErrForbidden)
	}

	feedbackID = strings.TrimSpace(feedbackID)
	status = strings.TrimSpace(status)
	switch status {
	case feedback.StatusPublished, feedback.StatusFlagged, feedback.StatusRemoved:
	default:
		return feedback.Feedback{}, fmt.Errorf("%w: unknown moderation status %q", ErrInvalidInput, status)
	}

	existing, exists, err := s.feedbackRepo.GetByID(ctx, feedbackID)
	if err != nil {
		return feedback.Feedback{}, fmt.Errorf("get feedback: %w", err)
	}
	if !exists {
		return feedback.Feedback{}, fmt.Errorf("%w: feedback not found", ErrNotFound)
	}

	if err := s.feedbackRepo.UpdateStatus(ctx, feedbackID, status); err != nil {
		return feedback.Feedback{}, fmt.Errorf("update feedback status: %w", err)
	}

	existing.Status = status
	existing.UpdatedAt = s.now().UTC()
	return existing, nil
}
