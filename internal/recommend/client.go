package recommend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const (
	DefaultBaseURL  = "http://localhost:8080"
	DefaultEndpoint = "/recommend"
)

// Config holds the client settings.
type Config struct {
	BaseURL  string
	Endpoint string
	// Timeout of zero leaves the transport default in place.
	Timeout time.Duration
}

// Client posts quiz records to the recommendation endpoint.
type Client struct {
	url        string
	httpClient *http.Client
	logger     Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithLogger sets where transport failures are reported.
func WithLogger(l Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewClient resolves the endpoint URL and returns a ready client.
func NewClient(cfg Config, opts ...Option) (*Client, error) {
	target, err := ResolveEndpoint(cfg.BaseURL, cfg.Endpoint)
	if err != nil {
		return nil, err
	}
	c := &Client{
		url:        target,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		logger:     discardLogger{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// ResolveEndpoint joins base and endpoint. An absolute endpoint wins.
func ResolveEndpoint(base, endpoint string) (string, error) {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	ep, err := url.Parse(endpoint)
	if err != nil {
		return "", fmt.Errorf("parse endpoint %q: %w", endpoint, err)
	}
	if ep.IsAbs() {
		return ep.String(), nil
	}
	if base == "" {
		base = DefaultBaseURL
	}
	b, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("parse base url %q: %w", base, err)
	}
	if !b.IsAbs() {
		return "", fmt.Errorf("base url %q must be absolute", base)
	}
	return b.ResolveReference(ep).String(), nil
}

// URL returns the resolved endpoint.
func (c *Client) URL() string {
	return c.url
}

// Submit posts req and settles to an Outcome. It never returns without a
// classification: success, server error or network error.
func (c *Client) Submit(ctx context.Context, req Request) Outcome {
	start := time.Now()
	status, rec, body, err := c.post(ctx, req)
	out := Classify(status, rec, err)
	out.Latency = time.Since(start)
	out.Body = body

	if out.Kind == KindNetworkError {
		c.logger.Printf("submit %s: %v", c.url, err)
	}
	return out
}

// post performs the request. status is zero when no response arrived.
func (c *Client) post(ctx context.Context, req Request) (int, *Recommendation, []byte, error) {
	payload, err := json.Marshal(req.Record)
	if err != nil {
		return 0, nil, nil, fmt.Errorf("marshal record: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return 0, nil, nil, &ErrTransport{Err: err}
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return 0, nil, nil, &ErrTransport{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, nil, &ErrTransport{Err: fmt.Errorf("read body: %w", err)}
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		rec, err := decodeRecommendation(resp.StatusCode, body)
		return resp.StatusCode, rec, body, err
	}
	return resp.StatusCode, nil, body, serverError(resp.StatusCode, body)
}

// serverError builds the error for a non-2xx response. Any JSON body is
// a server error; the message comes from an "error" string when present.
func serverError(status int, body []byte) error {
	var parsed any
	if err := json.Unmarshal(body, &parsed); err != nil {
		return &ErrInvalidResponse{Status: status, Body: body, Err: err}
	}
	msg := fmt.Sprintf("server error %d", status)
	if _, ok := parsed.(map[string]any); ok {
		var payload ErrorPayload
		if json.Unmarshal(body, &payload) == nil && payload.Error != "" {
			msg = payload.Error
		}
	}
	return &ErrServer{Status: status, Message: msg}
}

// Classify maps a submission result to an Outcome. Only *ErrServer is a
// server error; everything else that failed is a network error. status
// is the HTTP status received, or zero if none was.
func Classify(status int, rec *Recommendation, err error) Outcome {
	if err == nil && rec != nil {
		return Outcome{Kind: KindSuccess, Recommendation: rec, Status: status}
	}
	if err == nil {
		err = errors.New("empty recommendation")
	}

	var serverErr *ErrServer
	if errors.As(err, &serverErr) {
		return Outcome{
			Kind:    KindServerError,
			Status:  serverErr.Status,
			Message: serverErr.Message,
			Err:     err,
		}
	}

	return Outcome{Kind: KindNetworkError, Status: status, Message: ConnectionErrorMessage, Err: err}
}
