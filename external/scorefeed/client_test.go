package scorefeed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ekalbevoldog/contested/internal/platform/logging"
	"github.com/ekalbevoldog/contested/internal/platform/resilience"
)

func TestFetchScores_DecodesEnvelope(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("api_token"); got != "feed-token" {
			t.Errorf("unexpected api_token %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[{"athlete_id":"ath-1","business_id":"biz-1","campaign_id":"camp-1","score":82.5,"updated_at":"2026-03-01T10:00:00Z"}]}`))
	}))
	defer server.Close()

	client := NewClient(ClientConfig{
		BaseURL: server.URL,
		Token:   "feed-token",
		Logger:  logging.NewNop(),
	})

	scores, err := client.FetchScores(context.Background(), time.Time{})
	if err != nil {
		t.Fatalf("fetch scores: %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("expected 1 score, got %d", len(scores))
	}
	if scores[0].AthleteID != "ath-1" || scores[0].Score != 82.5 {
		t.Fatalf("unexpected score row: %+v", scores[0])
	}
}

func TestFetchScores_RetriesTransientStatus(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[]}`))
	}))
	defer server.Close()

	client := NewClient(ClientConfig{
		BaseURL:    server.URL,
		Token:      "feed-token",
		MaxRetries: 2,
		Logger:     logging.NewNop(),
	})

	if _, err := client.FetchScores(context.Background(), time.Time{}); err != nil {
		t.Fatalf("fetch scores: %v", err)
	}
	if got := calls.Load(); got != 2 {
		t.Fatalf("expected 2 calls, got %d", got)
	}
}

func TestFetchScores_DoesNotRetryClientError(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	client := NewClient(ClientConfig{
		BaseURL:    server.URL,
		Token:      "feed-token",
		MaxRetries: 3,
		Logger:     logging.NewNop(),
	})

	if _, err := client.FetchScores(context.Background(), time.Time{}); err == nil {
		t.Fatal("expected error for 403 response")
	}
	if got := calls.Load(); got != 1 {
		t.Fatalf("expected 1 call, got %d", got)
	}
}

func TestFetchScores_CircuitOpenShortCircuits(t *testing.T) {
	t.Parallel()

	client := NewClient(ClientConfig{
		BaseURL: "http://127.0.0.1:0",
		Token:   "feed-token",
		Logger:  logging.NewNop(),
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          true,
			FailureThreshold: 1,
			OpenTimeout:      time.Minute,
			HalfOpenMaxReq:   1,
		},
	})

	// First call fails transport and trips the breaker.
	if _, err := client.FetchScores(context.Background(), time.Time{}); err == nil {
		t.Fatal("expected transport error")
	}
	_, err := client.FetchScores(context.Background(), time.Time{})
	if err == nil {
		t.Fatal("expected circuit-open error")
	}
}
