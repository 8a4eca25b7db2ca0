package doffin

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/michaelekornrud/BouvetRadar/internal/pkg/constants"
	"github.com/michaelekornrud/BouvetRadar/internal/pkg/httpx"
)

// DefaultBaseURL is the public Doffin API root.
const DefaultBaseURL = "https://api.doffin.no/public/v2"

const subscriptionKeyHeader = "Ocp-Apim-Subscription-Key"

// Client handles raw HTTP communication with the Doffin API.
type Client struct {
	baseURL string
	apiKey  string
	http    *httpx.Client
}

// NewClient creates a Doffin client. An empty baseURL falls back to
// DefaultBaseURL; a zero timeout falls back to the httpx default.
func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    httpx.NewClient(constants.ServiceDoffin, httpx.WithTimeout(timeout)),
	}
}

func (c *Client) header() http.Header {
	h := http.Header{}
	h.Set(subscriptionKeyHeader, c.apiKey)
	return h
}

// Search issues the notice search and returns the raw JSON body.
func (c *Client) Search(ctx context.Context, params url.Values) ([]byte, error) {
	return c.http.Get(ctx, c.baseURL+"/search?"+params.Encode(), c.header())
}

// Download retrieves the raw notice document by Doffin id.
func (c *Client) Download(ctx context.Context, doffinID string) ([]byte, error) {
	return c.http.Get(ctx, c.baseURL+"/download/"+url.PathEscape(doffinID), c.header())
}
