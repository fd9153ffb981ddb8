// Package snipeit implements a typed client for the Snipe-IT v1 REST API.
//
// Mutating endpoints in Snipe-IT respond with HTTP 200 and a
// {"status","messages","payload"} envelope; the client unwraps it and maps
// error envelopes onto the package's sentinel kinds so callers can treat
// transport and API failures uniformly with errors.Is.
package snipeit

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/malekian/snipemcp/pkg/logger"
	"github.com/malekian/snipemcp/pkg/metrics"
)

const (
	defaultTimeout   = 30 * time.Second
	defaultUserAgent = "snipemcp"

	// maxErrorBodyBytes bounds error snippets carried in wrapped errors.
	maxErrorBodyBytes = 512
)

// Client talks to a single Snipe-IT instance.
type Client struct {
	baseURL   *url.URL
	token     string
	httpc     *http.Client
	log       logger.Logger
	userAgent string

	Assets       *AssetService
	Consumables  *ConsumableService
	Maintenances *MaintenanceService
}

// Option applies a configuration option to the Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		if h != nil {
			c.httpc = h
		}
	}
}

// WithTimeout sets the per-request timeout on the default HTTP client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.httpc.Timeout = d
		}
	}
}

// WithLogger sets a logger for request tracing.
func WithLogger(l logger.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.log = l
		}
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

// New creates a Client for the given instance URL and API token.
func New(rawURL, token string, opts ...Option) (*Client, error) {
	if strings.TrimSpace(rawURL) == "" || strings.TrimSpace(token) == "" {
		return nil, fmt.Errorf("%w: set snipeit_url and snipeit_token", ErrNotConfigured)
	}
	u, err := url.Parse(strings.TrimRight(rawURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("%w: invalid base URL: %w", ErrNotConfigured, err)
	}

	c := &Client{
		baseURL:   u,
		token:     token,
		httpc:     &http.Client{Timeout: defaultTimeout},
		userAgent: defaultUserAgent,
	}
	for _, opt := range opts {
		opt(c)
	}

	c.Assets = &AssetService{client: c}
	c.Consumables = &ConsumableService{client: c}
	c.Maintenances = &MaintenanceService{client: c}
	return c, nil
}

// endpoint builds an API v1 URL from path segments.
func (c *Client) endpoint(segments ...string) *url.URL {
	return c.baseURL.JoinPath(append([]string{"api", "v1"}, segments...)...)
}

// do issues a request and maps HTTP-level failures to sentinel kinds.
// The op label names the logical operation for metrics and tracing.
func (c *Client) do(ctx context.Context, op, method string, u *url.URL, contentType string, body io.Reader) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTransport, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)

	start := time.Now()
	resp, err := c.httpc.Do(req)
	if err != nil {
		metrics.RecordUpstreamError("transport")
		return nil, fmt.Errorf("%w: %s %s: %w", ErrTransport, method, u.Path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	durationMs := float64(time.Since(start).Milliseconds())
	metrics.RecordUpstreamRequest(op, method, strconv.Itoa(resp.StatusCode))
	metrics.ObserveUpstreamDuration(op, durationMs)
	if c.log != nil {
		c.log.Debug(ctx, "snipe-it request",
			logger.String("op", op),
			logger.String("method", method),
			logger.String("request_id", requestID),
			logger.Int("status", resp.StatusCode),
			logger.Float64("duration_ms", durationMs),
		)
	}
	if err != nil {
		metrics.RecordUpstreamError("transport")
		return nil, fmt.Errorf("%w: reading response: %w", ErrTransport, err)
	}

	if kindErr := errorForStatus(resp.StatusCode, data); kindErr != nil {
		metrics.RecordUpstreamError(Kind(kindErr))
		return nil, kindErr
	}
	return data, nil
}

// errorForStatus maps non-2xx responses to sentinel kinds.
func errorForStatus(status int, body []byte) error {
	if status >= 200 && status < 300 {
		return nil
	}
	snippet := bodySnippet(body)
	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%w: HTTP %d: %s", ErrAuth, status, snippet)
	case http.StatusNotFound:
		return fmt.Errorf("%w: HTTP %d", ErrNotFound, status)
	case http.StatusTooManyRequests:
		return fmt.Errorf("%w: HTTP %d", ErrRateLimited, status)
	default:
		return fmt.Errorf("%w: HTTP %d: %s", ErrAPI, status, snippet)
	}
}

func bodySnippet(body []byte) string {
	s := strings.TrimSpace(string(body))
	if len(s) > maxErrorBodyBytes {
		s = s[:maxErrorBodyBytes]
	}
	if s == "" {
		return "(empty body)"
	}
	return s
}

// getJSON issues a GET and decodes a plain JSON response. Lookup
// endpoints report missing records as an HTTP 200 error envelope, so the
// body is checked for one before decoding.
func (c *Client) getJSON(ctx context.Context, op string, u *url.URL, out any) error {
	data, err := c.do(ctx, op, http.MethodGet, u, "", nil)
	if err != nil {
		return err
	}
	var env envelope
	if err := json.Unmarshal(data, &env); err == nil && env.Status == "error" {
		return apiError(env.Messages)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return nil
}

// sendJSON issues a mutating request and unwraps the status envelope.
// out, when non-nil, receives the envelope payload.
func (c *Client) sendJSON(ctx context.Context, op, method string, u *url.URL, body, out any) error {
	var rd io.Reader
	if body != nil {
		encoded, err := jsonBody(body)
		if err != nil {
			return err
		}
		rd = encoded
	}
	data, err := c.do(ctx, op, method, u, "application/json", rd)
	if err != nil {
		return err
	}
	return c.unwrap(data, out)
}

// jsonBody encodes a request body.
func jsonBody(v any) (io.Reader, error) {
	encoded, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("%w: encoding request: %w", ErrDecode, err)
	}
	return bytes.NewReader(encoded), nil
}

// envelope is the mutation response wrapper used by Snipe-IT.
type envelope struct {
	Status   string          `json:"status"`
	Messages json.RawMessage `json:"messages"`
	Payload  json.RawMessage `json:"payload"`
}

// unwrap decodes a status envelope and maps error envelopes to sentinel
// kinds. Responses without a status field are decoded directly into out.
func (c *Client) unwrap(data []byte, out any) error {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return fmt.Errorf("%w: %w", ErrDecode, err)
	}
	switch env.Status {
	case "error":
		return apiError(env.Messages)
	case "success":
		if out == nil || len(env.Payload) == 0 || string(env.Payload) == "null" {
			return nil
		}
		if err := json.Unmarshal(env.Payload, out); err != nil {
			return fmt.Errorf("%w: payload: %w", ErrDecode, err)
		}
		return nil
	default:
		// Not an envelope; decode the body as-is.
		if out == nil {
			return nil
		}
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("%w: %w", ErrDecode, err)
		}
		return nil
	}
}

// apiError maps an error envelope's messages onto a sentinel kind:
// missing-record wording becomes ErrNotFound, everything else
// ErrValidation.
func apiError(messages json.RawMessage) error {
	msg := flattenMessages(messages)
	lower := strings.ToLower(msg)
	if strings.Contains(lower, "not found") || strings.Contains(lower, "does not exist") {
		metrics.RecordUpstreamError("not_found")
		return fmt.Errorf("%w: %s", ErrNotFound, msg)
	}
	metrics.RecordUpstreamError("validation")
	return fmt.Errorf("%w: %s", ErrValidation, msg)
}

// flattenMessages renders the messages field, which is either a plain
// string or a map of field name to message list.
func flattenMessages(raw json.RawMessage) string {
	if len(raw) == 0 {
		return "unknown error"
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var m map[string][]string
	if err := json.Unmarshal(raw, &m); err == nil {
		parts := make([]string, 0, len(m))
		for field, msgs := range m {
			parts = append(parts, field+": "+strings.Join(msgs, "; "))
		}
		return strings.Join(parts, ", ")
	}
	return strings.TrimSpace(string(raw))
}

// listQuery renders ListOptions as URL query parameters.
func listQuery(opts ListOptions) url.Values {
	q := url.Values{}
	q.Set("limit", strconv.Itoa(opts.Limit))
	q.Set("offset", strconv.Itoa(opts.Offset))
	if opts.Search != "" {
		q.Set("search", opts.Search)
	}
	if opts.Sort != "" {
		q.Set("sort", opts.Sort)
	}
	if opts.Order != "" {
		q.Set("order", opts.Order)
	}
	return q
}
