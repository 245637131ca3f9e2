package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/openlearn/lms-gateway/pkg/config"
	appErrors "github.com/openlearn/lms-gateway/pkg/errors"
	"github.com/openlearn/lms-gateway/pkg/middleware/requestid"
)

// Response carries a successful upstream reply. The body is relayed to the
// client unchanged in shape.
type Response struct {
	Status int
	Body   json.RawMessage
}

// Decode unmarshals the response body into v.
func (r *Response) Decode(v interface{}) error {
	if r == nil || len(r.Body) == 0 {
		return appErrors.Clone(appErrors.ErrUpstream, "empty upstream response body")
	}
	if err := json.Unmarshal(r.Body, v); err != nil {
		return appErrors.Wrap(err, appErrors.ErrUpstream.Code, appErrors.ErrUpstream.Status, "malformed upstream response body")
	}
	return nil
}

// Observer receives timing data for upstream calls.
type Observer interface {
	ObserveUpstream(method, path string, status int, duration time.Duration)
}

// Client is the single component that talks to the backend REST API. It
// performs exactly one attempt per call; retries are the caller's business.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *zap.Logger
	metrics Observer
}

// NewClient builds a backend client from configuration. A zero timeout
// disables the client-side deadline entirely.
func NewClient(cfg config.BackendConfig, logger *zap.Logger, metrics Observer) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL: cfg.BaseURL,
		http:    &http.Client{Timeout: cfg.Timeout},
		logger:  logger,
		metrics: metrics,
	}
}

// Do forwards a request to the backend. The bearer token is attached when
// non-empty; otherwise the request goes out unauthenticated and the backend
// decides whether to reject it. Non-2xx replies are translated into typed
// errors; only 2xx replies produce a Response.
func (c *Client) Do(ctx context.Context, method, path, token string, body interface{}) (*Response, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to encode request body")
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to build upstream request")
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	reqID := requestid.FromContext(ctx)
	if reqID == "" {
		reqID = uuid.NewString()
	}
	req.Header.Set("X-Request-ID", reqID)

	start := time.Now()
	resp, err := c.http.Do(req)
	duration := time.Since(start)
	if err != nil {
		c.logger.Warn("upstream request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Duration("duration", duration),
			zap.Error(err))
		if c.metrics != nil {
			c.metrics.ObserveUpstream(method, path, 0, duration)
		}
		return nil, appErrors.Wrap(err, appErrors.ErrUpstream.Code, appErrors.ErrUpstream.Status, appErrors.ErrUpstream.Message)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrUpstream.Code, appErrors.ErrUpstream.Status, "failed to read upstream response")
	}

	if c.metrics != nil {
		c.metrics.ObserveUpstream(method, path, resp.StatusCode, duration)
	}
	c.logger.Debug("upstream request",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", duration))

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return &Response{Status: resp.StatusCode, Body: data}, nil
	}

	return nil, Translate(resp.StatusCode, data)
}
