// Package restapi implements the repositories against a hosted PostgREST
// endpoint (Supabase). Filters use the query syntax `column=eq.value`; writes
// ask for representation so affected rows can be counted.
package restapi

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/ekalbevoldog/contested/internal/domain/storage"
)

const (
	preferReturnRepresentation = "return=representation"
	preferResolveUpsert        = "resolution=merge-duplicates"
)

type Client struct {
	baseURL    string
	serviceKey string
	http       *http.Client
}

func NewClient(baseURL, serviceKey string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		serviceKey: serviceKey,
		http: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

func (c *Client) get(ctx context.Context, table string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, table, query, nil, "", out)
}

func (c *Client) insert(ctx context.Context, table string, body any) error {
	return c.do(ctx, http.MethodPost, table, nil, body, "", nil)
}

// upsert resolves duplicates against the columns named in onConflict, or the
// primary key when onConflict is empty.
func (c *Client) upsert(ctx context.Context, table, onConflict string, body any) error {
	var query url.Values
	if onConflict != "" {
		query = url.Values{"on_conflict": {onConflict}}
	}
	return c.do(ctx, http.MethodPost, table, query, body, preferResolveUpsert, nil)
}

func (c *Client) patch(ctx context.Context, table string, query url.Values, body any, out any) error {
	return c.do(ctx, http.MethodPatch, table, query, body, preferReturnRepresentation, out)
}

func (c *Client) delete(ctx context.Context, table string, query url.Values) error {
	return c.do(ctx, http.MethodDelete, table, query, nil, "", nil)
}

func (c *Client) do(ctx context.Context, method, table string, query url.Values, body any, prefer string, out any) error {
	endpoint := c.baseURL + "/rest/v1/" + table
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := sonic.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s body: %w", table, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("build %s request: %w", table, err)
	}
	req.Header.Set("apikey", c.serviceKey)
	req.Header.Set("Authorization", "Bearer "+c.serviceKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if prefer != "" {
		req.Header.Set("Prefer", prefer)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, table, storage.ErrUnavailable)
	}
	defer resp.Body.Close()

	if err := translateStatus(resp.StatusCode); err != nil {
		io.Copy(io.Discard, resp.Body)
		return fmt.Errorf("%s %s: %w", method, table, err)
	}

	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read %s response: %w", table, err)
	}
	if err := sonic.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode %s response: %w", table, err)
	}

	return nil
}

// translateStatus is the single place hosted-API status codes become storage
// errors. 404 and 406 both mean "no rows" under PostgREST and are not errors
// here; absence is reported by empty result sets.
func translateStatus(code int) error {
	switch {
	case code >= 200 && code < 300:
		return nil
	case code == http.StatusNotFound, code == http.StatusNotAcceptable:
		return nil
	case code == http.StatusConflict:
		return storage.ErrConflict
	case code == http.StatusUnauthorized, code == http.StatusForbidden:
		return fmt.Errorf("hosted backend rejected credentials: %w", storage.ErrUnavailable)
	case code >= 500:
		return storage.ErrUnavailable
	default:
		return fmt.Errorf("unexpected status %d", code)
	}
}

func eq(value string) string {
	return "eq." + value
}
