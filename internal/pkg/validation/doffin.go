// Package validation holds the pure parameter validators used by the API
// controllers. Each function is total: it either returns a normalized value
// or a CodedError from the shared taxonomy. Multi-item problems are reported
// in one batch error rather than one at a time.
package validation

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/michaelekornrud/BouvetRadar/internal/domain"
	"github.com/michaelekornrud/BouvetRadar/internal/pkg/constants"
)

// validate backs both these functions and the echo router's Validator.
var validate = validator.New()

// Validator exposes the shared validator instance.
func Validator() *validator.Validate { return validate }

// Defaults applied when the query omits paging parameters.
const (
	DefaultHitsPerPage = 100
	DefaultPage        = 1
)

// ParseSearchParams validates the full Doffin search query in one pass.
// Query keys follow the upstream contract: search, cpvCode (repeatable),
// location (repeatable), status (repeatable), page, hitsPerPage.
func ParseSearchParams(q url.Values) (*domain.SearchParams, error) {
	hitsPerPage, err := HitsPerPage(valueOr(q, "hitsPerPage", strconv.Itoa(DefaultHitsPerPage)))
	if err != nil {
		return nil, err
	}
	page, err := Page(valueOr(q, "page", strconv.Itoa(DefaultPage)))
	if err != nil {
		return nil, err
	}
	cpvCodes, err := CPVCodes(q["cpvCode"])
	if err != nil {
		return nil, err
	}
	status, err := Status(q["status"])
	if err != nil {
		return nil, err
	}

	return &domain.SearchParams{
		SearchStr:   SearchStr(q.Get("search")),
		CPVCodes:    cpvCodes,
		LocationIDs: LocationIDs(q["location"]),
		Status:      status,
		HitsPerPage: hitsPerPage,
		Page:        page,
	}, nil
}

// valueOr falls back only when the key is absent; an explicitly empty value
// is passed through and fails the integer parse.
func valueOr(q url.Values, key, fallback string) string {
	if !q.Has(key) {
		return fallback
	}
	return q.Get(key)
}

// HitsPerPage parses and range-checks the hitsPerPage parameter.
func HitsPerPage(raw string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, constants.NewInvalidParameterTypeError("hitsPerPage", "integer", raw)
	}
	if err := validate.Var(n, "gte=1,lte=1000"); err != nil {
		return 0, constants.NewValidationError(
			"Parameter 'hitsPerPage' must be between 1 and 1000",
			"hitsPerPage",
			n,
		)
	}
	return n, nil
}

// Page parses and range-checks the page parameter.
func Page(raw string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, constants.NewInvalidParameterTypeError("page", "integer", raw)
	}
	if err := validate.Var(n, "gte=1"); err != nil {
		return 0, constants.NewValidationError(
			"Parameter 'page' must be greater than 0",
			"page",
			n,
		)
	}
	return n, nil
}

// SearchStr trims the free-text search parameter. Empty after trimming means
// absent, never an error.
func SearchStr(raw string) string {
	return strings.TrimSpace(raw)
}

// CPVCodes trims the given codes, drops empties and requires the remainder
// to be all-digit strings. Every offending value is reported in one error.
// nil is returned when nothing remains.
func CPVCodes(values []string) ([]string, error) {
	codes := compact(values)
	if len(codes) == 0 {
		return nil, nil
	}

	var invalid []string
	for _, code := range codes {
		if err := validate.Var(code, "number"); err != nil {
			invalid = append(invalid, code)
		}
	}
	if len(invalid) > 0 {
		return nil, constants.NewValidationError(
			fmt.Sprintf("Invalid CPV code format (must be numeric): %s", strings.Join(invalid, ", ")),
			"cpvCode",
			invalid,
		)
	}
	return codes, nil
}

// LocationIDs trims the given identifiers and drops empties. Format and
// existence are checked later against the loaded NUTS table.
func LocationIDs(values []string) []string {
	ids := compact(values)
	if len(ids) == 0 {
		return nil
	}
	return ids
}

// Status trims and uppercases each value and checks it against the closed
// status set. nil is returned when nothing remains.
func Status(values []string) ([]domain.NoticeStatus, error) {
	var result []domain.NoticeStatus
	for _, raw := range values {
		s := strings.ToUpper(strings.TrimSpace(raw))
		if s == "" {
			continue
		}
		if err := validate.Var(s, "oneof=ACTIVE AWARDED CANCELLED EXPIRED"); err != nil {
			return nil, constants.NewValidationError(
				fmt.Sprintf("Invalid status '%s'. Must be one of: %s", s, joinStatuses()),
				"status",
				s,
			)
		}
		result = append(result, domain.NoticeStatus(s))
	}
	return result, nil
}

func joinStatuses() string {
	names := make([]string, len(domain.ValidNoticeStatuses))
	for i, s := range domain.ValidNoticeStatuses {
		names[i] = string(s)
	}
	return strings.Join(names, ", ")
}

func compact(values []string) []string {
	var out []string
	for _, v := range values {
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
