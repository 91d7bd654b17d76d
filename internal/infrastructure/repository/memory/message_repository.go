package memory

import (
	"context"
	"sync"

	"github.com/ekalbevoldog/contested/internal/domain/message"
)

type MessageRepository struct {
	mu         sync.RWMutex
	bySession  map[string][]message.Message
	sessionIDs []string
}

func NewMessageRepository() *MessageRepository {
	return &MessageRepository{
		bySession: make(map[string][]message.Message),
	}
}

func (r *MessageRepository) Append(_ context.Context, m message.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.bySession[m.SessionID]; !ok {
		r.sessionIDs = append(r.sessionIDs, m.SessionID)
	}
	r.bySession[m.SessionID] = append(r.bySession[m.SessionID], m)
	return nil
}

func (r *MessageRepository) ListBySession(_ context.Context, sessionID string) ([]message.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := r.bySession[sessionID]
	out := make([]message.Message, len(items))
	copy(out, items)
	return out, nil
}

func (r *MessageRepository) ListSessionIDsByUser(_ context.Context, userID string) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, 0)
	for _, sessionID := range r.sessionIDs {
		for _, m := range r.bySession[sessionID] {
			if m.SenderID == userID {
				out = append(out, sessionID)
				break
			}
		}
	}

	return out, nil
}
