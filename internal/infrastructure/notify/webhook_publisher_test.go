package notify

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	sonic "github.com/bytedance/sonic"

	"github.com/ekalbevoldog/contested/internal/domain/offer"
	"github.com/ekalbevoldog/contested/internal/platform/logging"
	"github.com/ekalbevoldog/contested/internal/usecase"
)

func TestWebhookPublisherDeliversSignedEvent(t *testing.T) {
	const secret = "webhook-secret"

	var (
		mu        sync.Mutex
		body      []byte
		signature string
	)
	done := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		mu.Lock()
		body = raw
		signature = r.Header.Get("X-Contested-Signature")
		mu.Unlock()
		close(done)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	pub, err := NewWebhookPublisher(WebhookPublisherConfig{
		Endpoints:     []string{srv.URL},
		SigningSecret: secret,
	}, logging.NewNop())
	if err != nil {
		t.Fatalf("new publisher: %v", err)
	}
	defer pub.Close()

	pub.PublishOfferEvent(context.Background(), usecase.OfferEvent{
		OfferID:    "offer-1",
		CampaignID: "camp-1",
		BusinessID: "biz-1",
		AthleteID:  "ath-1",
		From:       offer.StatusPending,
		To:         offer.StatusAccepted,
		OccurredAt: time.Now().UTC(),
	})

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("webhook was not delivered")
	}

	mu.Lock()
	defer mu.Unlock()

	var payload struct {
		Event   string `json:"event"`
		OfferID string `json:"offer_id"`
		From    string `json:"from"`
		To      string `json:"to"`
	}
	if err := sonic.Unmarshal(body, &payload); err != nil {
		t.Fatalf("decode delivered payload: %v", err)
	}
	if payload.Event != "offer.accepted" || payload.OfferID != "offer-1" {
		t.Fatalf("unexpected payload: %+v", payload)
	}
	if payload.From != "pending" || payload.To != "accepted" {
		t.Fatalf("unexpected transition in payload: %+v", payload)
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	if want := hex.EncodeToString(mac.Sum(nil)); signature != want {
		t.Fatalf("signature mismatch: got %q want %q", signature, want)
	}
}

func TestWebhookPublisherRejectsBadEndpoints(t *testing.T) {
	if _, err := NewWebhookPublisher(WebhookPublisherConfig{Endpoints: []string{"ftp://example.com"}}, logging.NewNop()); err == nil {
		t.Fatal("expected error for non-http endpoint")
	}
	if _, err := NewWebhookPublisher(WebhookPublisherConfig{}, logging.NewNop()); err == nil {
		t.Fatal("expected error when no endpoints are configured")
	}
}
