// Package notify delivers offer lifecycle events to configured webhook
// endpoints. Delivery is best-effort: failures are logged and counted against
// a circuit breaker, never surfaced to the request that produced the event.
package notify

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"net/http"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/cockroachdb/errors"
	"github.com/panjf2000/ants/v2"
	"github.com/valyala/bytebufferpool"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/ekalbevoldog/contested/internal/platform/logging"
	"github.com/ekalbevoldog/contested/internal/platform/resilience"
	"github.com/ekalbevoldog/contested/internal/usecase"
)

const signatureHeader = "X-Contested-Signature"

type WebhookPublisherConfig struct {
	Endpoints      []string
	SigningSecret  string
	Timeout        time.Duration
	Workers        int
	DeliveryWindow time.Duration
}

type WebhookPublisher struct {
	client         *http.Client
	endpoints      []string
	signingSecret  []byte
	pool           *ants.Pool
	breakers       map[string]*resilience.CircuitBreaker
	deliveryWindow time.Duration
	logger         *logging.Logger
}

func NewWebhookPublisher(cfg WebhookPublisherConfig, logger *logging.Logger) (*WebhookPublisher, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = 8
	}
	window := cfg.DeliveryWindow
	if window <= 0 {
		window = 30 * time.Second
	}
	if logger == nil {
		logger = logging.Default()
	}

	endpoints := make([]string, 0, len(cfg.Endpoints))
	breakers := make(map[string]*resilience.CircuitBreaker, len(cfg.Endpoints))
	for _, raw := range cfg.Endpoints {
		endpoint := strings.TrimSpace(raw)
		if endpoint == "" {
			continue
		}
		if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
			return nil, errors.Newf("webhook endpoint %q must be http or https", endpoint)
		}
		endpoints = append(endpoints, endpoint)
		breakers[endpoint] = resilience.NewCircuitBreaker(5, 30*time.Second, 2)
	}
	if len(endpoints) == 0 {
		return nil, errors.New("at least one webhook endpoint is required")
	}

	pool, err := ants.NewPool(workers, ants.WithNonblocking(true))
	if err != nil {
		return nil, errors.Wrap(err, "create webhook worker pool")
	}

	return &WebhookPublisher{
		client: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		endpoints:      endpoints,
		signingSecret:  []byte(cfg.SigningSecret),
		pool:           pool,
		breakers:       breakers,
		deliveryWindow: window,
		logger:         logger,
	}, nil
}

type offerEventPayload struct {
	Event      string    `json:"event"`
	OfferID    string    `json:"offer_id"`
	CampaignID string    `json:"campaign_id"`
	BusinessID string    `json:"business_id"`
	AthleteID  string    `json:"athlete_id"`
	From       string    `json:"from"`
	To         string    `json:"to"`
	OccurredAt time.Time `json:"occurred_at"`
}

// PublishOfferEvent fans the event out to every endpoint on the worker pool
// and returns immediately. Deliveries run against a background deadline, not
// the request context that produced the event.
func (p *WebhookPublisher) PublishOfferEvent(_ context.Context, event usecase.OfferEvent) {
	payload := offerEventPayload{
		Event:      "offer." + string(event.To),
		OfferID:    event.OfferID,
		CampaignID: event.CampaignID,
		BusinessID: event.BusinessID,
		AthleteID:  event.AthleteID,
		From:       string(event.From),
		To:         string(event.To),
		OccurredAt: event.OccurredAt,
	}

	for _, endpoint := range p.endpoints {
		endpoint := endpoint
		submitErr := p.pool.Submit(func() {
			p.deliver(endpoint, event.OfferID, payload)
		})
		if submitErr != nil {
			p.logger.Warn("webhook delivery dropped",
				"endpoint", endpoint,
				"offer_id", event.OfferID,
				"error", submitErr,
			)
		}
	}
}

func (p *WebhookPublisher) deliver(endpoint, offerID string, payload offerEventPayload) {
	breaker := p.breakers[endpoint]
	if err := breaker.Allow(); err != nil {
		p.logger.Warn("webhook circuit open", "endpoint", endpoint, "offer_id", offerID)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), p.deliveryWindow)
	defer cancel()

	err := p.post(ctx, endpoint, payload)
	if err != nil {
		breaker.RecordFailure()
		p.logger.Error("webhook delivery failed",
			"endpoint", endpoint,
			"offer_id", offerID,
			"error", err,
		)
		return
	}

	breaker.RecordSuccess()
	p.logger.Debug("webhook delivered", "endpoint", endpoint, "offer_id", offerID)
}

func (p *WebhookPublisher) post(ctx context.Context, endpoint string, payload offerEventPayload) error {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)
	if err := sonic.ConfigDefault.NewEncoder(buf).Encode(payload); err != nil {
		return errors.Wrap(err, "encode webhook body")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(buf.Bytes()))
	if err != nil {
		return errors.Wrap(err, "build webhook request")
	}
	req.Header.Set("Content-Type", "application/json")
	if len(p.signingSecret) > 0 {
		req.Header.Set(signatureHeader, p.sign(buf.Bytes()))
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return errors.Wrap(err, "post webhook")
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode/100 != 2 {
		return errors.Newf("webhook endpoint returned status %d", resp.StatusCode)
	}

	return nil
}

func (p *WebhookPublisher) sign(body []byte) string {
	mac := hmac.New(sha256.New, p.signingSecret)
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

func (p *WebhookPublisher) Close() {
	p.pool.Release()
}
