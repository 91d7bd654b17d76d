package message

import (
	"fmt"
	"time"
)

// Message is one entry in a session-scoped chat log. Messages are append-only
// and listed in creation order.
type Message struct {
	ID        string
	SessionID string
	SenderID  string
	Body      string
	CreatedAt time.Time
}

func (m Message) Validate() error {
	if m.ID == "" {
		return fmt.Errorf("message id is required")
	}
	if m.SessionID == "" {
		return fmt.Errorf("message session id is required")
	}
	if m.SenderID == "" {
		return fmt.Errorf("message sender id is required")
	}
	if m.Body == "" {
		return fmt.Errorf("message body is required")
	}

	return nil
}
