// Package klass loads flat classification tables from the SSB klass API and
// serves lookups and hierarchy reconstruction over them. A table (one per
// classification version, e.g. NUTS or STYRK) is fetched once, indexed, and
// kept immutable until its cache entry expires.
package klass

import (
	"context"
	"net/http"
	"time"

	"github.com/michaelekornrud/BouvetRadar/internal/pkg/constants"
	"github.com/michaelekornrud/BouvetRadar/internal/pkg/httpx"
)

// DefaultBaseURL is the SSB klass classification-version endpoint.
const DefaultBaseURL = "https://data.ssb.no/api/klass/v1/versions/"

// Client fetches raw classification tables for specific versions.
type Client struct {
	baseURL string
	http    *httpx.Client
}

// NewClient creates a klass client. An empty baseURL falls back to
// DefaultBaseURL; a zero timeout falls back to the httpx default.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		http:    httpx.NewClient(constants.ServiceSSB, httpx.WithTimeout(timeout)),
	}
}

// FetchVersion retrieves the semicolon-delimited table for one
// classification version. Errors come back unchanged from httpx: a timeout
// maps to APITimeoutError, anything else to ExternalAPIError.
func (c *Client) FetchVersion(ctx context.Context, version string) ([]byte, error) {
	header := http.Header{}
	header.Set("Accept", "text/csv")
	header.Set("charset", "ISO-8859-1")
	return c.http.Get(ctx, c.baseURL+version, header)
}
