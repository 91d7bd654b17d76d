// Command scoreimport pulls fresh match scores from the external scoring
// provider and hands them to the API through the internal ingestion endpoint.
// It is meant to run on a schedule.
package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"

	"github.com/ekalbevoldog/contested/external/scorefeed"
	"github.com/ekalbevoldog/contested/internal/platform/logging"
	"github.com/ekalbevoldog/contested/internal/platform/resilience"
)

type ingestScoreItem struct {
	AthleteID  string  `json:"athlete_id"`
	BusinessID string  `json:"business_id"`
	CampaignID string  `json:"campaign_id"`
	Score      float64 `json:"score"`
}

type ingestRequest struct {
	Scores []ingestScoreItem `json:"scores"`
}

func main() {
	logger := logging.NewJSON(logging.LevelInfo)
	defer func() { _ = logger.Sync() }()

	feedURL := strings.TrimSpace(os.Getenv("SCOREFEED_URL"))
	if feedURL == "" {
		logger.Error("SCOREFEED_URL is required")
		os.Exit(1)
	}
	jobToken := strings.TrimSpace(os.Getenv("INTERNAL_JOB_TOKEN"))
	if jobToken == "" {
		logger.Error("INTERNAL_JOB_TOKEN is required")
		os.Exit(1)
	}
	apiURL := strings.TrimSpace(os.Getenv("CONTESTED_API_URL"))
	if apiURL == "" {
		apiURL = "http://localhost:8080"
	}

	lookback := 24 * time.Hour
	if raw := strings.TrimSpace(os.Getenv("SCOREFEED_LOOKBACK")); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			logger.Error("parse SCOREFEED_LOOKBACK", "error", err)
			os.Exit(1)
		}
		lookback = parsed
	}
	maxRetries := 2
	if raw := strings.TrimSpace(os.Getenv("SCOREFEED_MAX_RETRIES")); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			logger.Error("parse SCOREFEED_MAX_RETRIES", "error", err)
			os.Exit(1)
		}
		maxRetries = parsed
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	client := scorefeed.NewClient(scorefeed.ClientConfig{
		BaseURL:        feedURL,
		Token:          strings.TrimSpace(os.Getenv("SCOREFEED_TOKEN")),
		MaxRetries:     maxRetries,
		Logger:         logger,
		CircuitBreaker: resilience.DefaultCircuitBreakerConfig(),
	})

	since := time.Now().UTC().Add(-lookback)
	scores, err := client.FetchScores(ctx, since)
	if err != nil {
		logger.Error("fetch scores", "error", err)
		os.Exit(1)
	}
	if len(scores) == 0 {
		logger.Info("no new scores", "since", since)
		return
	}

	ingested, err := ingest(ctx, apiURL, jobToken, scores)
	if err != nil {
		logger.Error("ingest scores", "error", err)
		os.Exit(1)
	}

	logger.Info("scores imported", "fetched", len(scores), "ingested", ingested, "since", since)
}

func ingest(ctx context.Context, apiURL, jobToken string, scores []scorefeed.Score) (int, error) {
	payload := ingestRequest{Scores: make([]ingestScoreItem, 0, len(scores))}
	for _, s := range scores {
		payload.Scores = append(payload.Scores, ingestScoreItem{
			AthleteID:  s.AthleteID,
			BusinessID: s.BusinessID,
			CampaignID: s.CampaignID,
			Score:      s.Score,
		})
	}

	body, err := sonic.Marshal(payload)
	if err != nil {
		return 0, fmt.Errorf("encode ingestion payload: %w", err)
	}

	endpoint := strings.TrimRight(apiURL, "/") + "/api/internal/match-scores"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return 0, fmt.Errorf("build ingestion request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Internal-Job-Token", jobToken)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("send ingestion request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return 0, fmt.Errorf("read ingestion response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("ingestion status=%d body=%s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	var out struct {
		Data struct {
			Ingested int `json:"ingested"`
		} `json:"data"`
	}
	if err := sonic.Unmarshal(raw, &out); err != nil {
		return 0, fmt.Errorf("decode ingestion response: %w", err)
	}

	return out.Data.Ingested, nil
}
