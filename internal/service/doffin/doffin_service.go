// Package doffin proxies notice searches to the Doffin API, translating
// human-friendly location names into NUTS codes on the way out. Results are
// passed through unchanged; consumers receive the upstream schema verbatim.
package doffin

import (
	"context"
	"net/url"
	"strconv"
	"time"

	"github.com/bytedance/sonic"

	"github.com/michaelekornrud/BouvetRadar/internal/domain"
	"github.com/michaelekornrud/BouvetRadar/internal/pkg/constants"
	"github.com/michaelekornrud/BouvetRadar/internal/service/ssb"
)

// Config carries the construction-time settings for the service.
type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// Service owns the Doffin client and the NUTS service used for location
// resolution.
type Service struct {
	client *Client
	nuts   *ssb.Service
}

// NewService creates the search proxy. A missing API key is a fatal
// configuration error raised here, not on the first call.
func NewService(cfg Config, nuts *ssb.Service) (*Service, error) {
	if cfg.APIKey == "" {
		return nil, constants.NewConfigurationError(
			"DOFFIN_API_KEY not found in environment",
			constants.ViperDoffinAPIKey,
		)
	}
	return &Service{
		client: NewClient(cfg.BaseURL, cfg.APIKey, cfg.Timeout),
		nuts:   nuts,
	}, nil
}

// SearchNotices forwards the validated filter to the Doffin search endpoint
// and returns the decoded JSON result unchanged. Location identifiers are
// resolved to NUTS codes first; unresolved ones fail the whole call with a
// validation error naming each of them.
func (s *Service) SearchNotices(ctx context.Context, params *domain.SearchParams) (map[string]any, error) {
	q := url.Values{}
	q.Set("numHitsPerPage", strconv.Itoa(params.HitsPerPage))
	q.Set("page", strconv.Itoa(params.Page))

	if params.SearchStr != "" {
		q.Set("searchString", params.SearchStr)
	}
	for _, code := range params.CPVCodes {
		q.Add("cpvCode", code)
	}
	if len(params.LocationIDs) > 0 {
		locations, err := s.nuts.ResolveLocations(ctx, params.LocationIDs)
		if err != nil {
			return nil, err
		}
		for _, loc := range locations {
			q.Add("location", loc)
		}
	}
	for _, status := range params.Status {
		q.Add("status", string(status))
	}

	body, err := s.client.Search(ctx, q)
	if err != nil {
		return nil, err
	}

	var result map[string]any
	if err := sonic.Unmarshal(body, &result); err != nil {
		return nil, constants.NewParsingError("invalid JSON in Doffin search response", "json")
	}
	return result, nil
}

// Download fetches the raw notice document by Doffin id.
func (s *Service) Download(ctx context.Context, doffinID string) ([]byte, error) {
	return s.client.Download(ctx, doffinID)
}
