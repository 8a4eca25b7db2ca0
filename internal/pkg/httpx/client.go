// Package httpx wraps outbound HTTP calls with the fixed per-service timeout
// and error mapping every upstream client shares. Calls are never retried.
package httpx

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/michaelekornrud/BouvetRadar/internal/pkg/constants"
)

// DefaultTimeout bounds each outbound call unless overridden per client.
const DefaultTimeout = 30 * time.Second

// Client issues GET requests against a single external service.
type Client struct {
	service string
	client  *http.Client
	timeout time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets the per-request timeout. Defaults to DefaultTimeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// NewClient creates a client for the named service. The name ends up in
// timeout and transport errors so callers can tell upstreams apart.
func NewClient(service string, opts ...Option) *Client {
	c := &Client{service: service, timeout: DefaultTimeout}
	for _, opt := range opts {
		opt(c)
	}
	c.client = &http.Client{Timeout: c.timeout}
	return c
}

// Timeout reports the configured per-request timeout.
func (c *Client) Timeout() time.Duration { return c.timeout }

// Get fetches url and returns the response body. header may be nil.
// Timeouts map to APITimeoutError, everything else to ExternalAPIError.
func (c *Client) Get(ctx context.Context, url string, header http.Header) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, constants.NewExternalAPIError(c.service, "invalid request", err)
	}
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}

	resp, err := c.client.Do(req)
	if err != nil {
		if isTimeout(err) {
			return nil, constants.NewAPITimeoutError(c.service, c.timeout)
		}
		return nil, constants.NewExternalAPIError(c.service, "request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, constants.NewExternalAPIError(
			c.service,
			fmt.Sprintf("unexpected status %d", resp.StatusCode),
			fmt.Errorf("GET %s: %s", url, resp.Status),
		)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		if isTimeout(err) {
			return nil, constants.NewAPITimeoutError(c.service, c.timeout)
		}
		return nil, constants.NewExternalAPIError(c.service, "reading response failed", err)
	}

	return body, nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}
