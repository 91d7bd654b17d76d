package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/ekalbevoldog/contested/internal/domain/user"
	"github.com/ekalbevoldog/contested/internal/infrastructure/repository/memory"
	"github.com/ekalbevoldog/contested/internal/platform/id"
)

func TestMessagesListInCreationOrder(t *testing.T) {
	stores := memory.NewStores()
	svc := NewMessageService(stores.Messages, id.NewRandomGenerator())
	ctx := context.Background()
	sender := user.Principal{UserID: "u-1", Role: user.RoleAthlete}

	for i := 0; i < 5; i++ {
		if _, err := svc.Send(ctx, sender, SendMessageInput{
			SessionID: "sess-1",
			Body:      fmt.Sprintf("message %d", i),
		}); err != nil {
			t.Fatalf("send message %d: %v", i, err)
		}
	}

	items, err := svc.List(ctx, "sess-1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 5 {
		t.Fatalf("expected 5 messages, got %d", len(items))
	}
	for i, item := range items {
		want := fmt.Sprintf("message %d", i)
		if item.Body != want {
			t.Fatalf("message %d out of order: got %q, want %q", i, item.Body, want)
		}
	}
}

func TestMessagesEmptySessionYieldsEmptySlice(t *testing.T) {
	stores := memory.NewStores()
	svc := NewMessageService(stores.Messages, id.NewRandomGenerator())

	items, err := svc.List(context.Background(), "never-used")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if items == nil {
		t.Fatalf("expected empty slice, got nil")
	}
	if len(items) != 0 {
		t.Fatalf("expected no messages, got %d", len(items))
	}
}

func TestSendMessageRequiresBody(t *testing.T) {
	stores := memory.NewStores()
	svc := NewMessageService(stores.Messages, id.NewRandomGenerator())

	_, err := svc.Send(context.Background(), user.Principal{UserID: "u-1"}, SendMessageInput{
		SessionID: "sess-1",
		Body:      "   ",
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
