package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ekalbevoldog/contested/internal/domain/message"
	"github.com/ekalbevoldog/contested/internal/domain/user"
	"github.com/ekalbevoldog/contested/internal/platform/id"
)

type SendMessageInput struct {
	SessionID string
	Body      string
}

type MessageService struct {
	messageRepo message.Repository
	idGen       id.Generator
	now         func() time.Time
}

func NewMessageService(messageRepo message.Repository, idGen id.Generator) *MessageService {
	return &MessageService{
		messageRepo: messageRepo,
		idGen:       idGen,
		now:         time.Now,
	}
}

func (s *MessageService) Send(ctx context.Context, principal user.Principal, input SendMessageInput) (message.Message, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MessageService.Send")
	defer span.End()

	messageID, err := s.idGen.NewID()
	if err != nil {
		return message.Message{}, fmt.Errorf("generate message id: %w", err)
	}

	created := message.Message{
		ID:        messageID,
		SessionID: strings.TrimSpace(input.SessionID),
		SenderID:  principal.UserID,
		Body:      strings.TrimSpace(input.Body),
		CreatedAt: s.now().UTC(),
	}
	if err := created.Validate(); err != nil {
		return message.Message{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.messageRepo.Append(ctx, created); err != nil {
		return message.Message{}, fmt.Errorf("append message: %w", err)
	}

	return created, nil
}

// List returns the session's messages in creation order. A session with no
// messages yields an empty slice.
func (s *MessageService) List(ctx context.Context, sessionID string) ([]message.Message, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MessageService.List")
	defer span.End()

	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return nil, fmt.Errorf("%w: session_id is required", ErrInvalidInput)
	}

	items, err := s.messageRepo.ListBySession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	if items == nil {
		items = []message.Message{}
	}

	return items, nil
}

// Sessions lists the distinct session IDs the caller has posted into.
func (s *MessageService) Sessions(ctx context.Context, principal user.Principal) ([]string, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MessageService.Sessions")
	defer span.End()

	ids, err := s.messageRepo.ListSessionIDsByUser(ctx, principal.UserID)
	if err != nil {
		return nil, fmt.Errorf("list message sessions: %w", err)
	}
	if ids == nil {
		ids = []string{}
	}

	return ids, nil
}
