// Package cpv serves the in-process CPV (Common Procurement Vocabulary)
// reference table. The table is static and ships with the binary.
package cpv

import (
	"sort"
	"strconv"
	"strings"

	"github.com/michaelekornrud/BouvetRadar/internal/pkg/constants"
)

// Service answers CPV code lookups.
type Service struct{}

func NewService() *Service {
	return &Service{}
}

// Description returns the description for a CPV code.
func (s *Service) Description(code int) (string, bool) {
	desc, ok := cpvCodes[code]
	return desc, ok
}

// Code returns the CPV code for an exact description.
func (s *Service) Code(description string) (int, bool) {
	for code, desc := range cpvCodes {
		if desc == description {
			return code, true
		}
	}
	return 0, false
}

// codePrefix returns the leading two digits of code, or the whole number
// when it is shorter.
func codePrefix(code int) string {
	s := strconv.Itoa(code)
	if len(s) < 2 {
		return s
	}
	return s[:2]
}

// CodesByCategory returns every code sharing the first two digits with
// categoryCode.
func (s *Service) CodesByCategory(categoryCode int) map[int]string {
	prefix := codePrefix(categoryCode)
	out := make(map[int]string)
	for code, desc := range cpvCodes {
		if strings.HasPrefix(strconv.Itoa(code), prefix) {
			out[code] = desc
		}
	}
	return out
}

// SearchDescriptions returns every code whose description contains query,
// case-insensitively.
func (s *Service) SearchDescriptions(query string) map[int]string {
	needle := strings.ToLower(query)
	out := make(map[int]string)
	for code, desc := range cpvCodes {
		if strings.Contains(strings.ToLower(desc), needle) {
			out[code] = desc
		}
	}
	return out
}

// AllCodes returns a copy of the full table.
func (s *Service) AllCodes() map[int]string {
	out := make(map[int]string, len(cpvCodes))
	for code, desc := range cpvCodes {
		out[code] = desc
	}
	return out
}

// MainCategories returns the top-level categories in code order.
func (s *Service) MainCategories() []MainCategory {
	out := make([]MainCategory, len(mainCategories))
	copy(out, mainCategories)
	return out
}

// CategoryForCode maps a code to its top-level category name via the leading
// two digits.
func (s *Service) CategoryForCode(code int) string {
	prefix := codePrefix(code)
	for _, cat := range mainCategories {
		if codePrefix(cat.Code) == prefix {
			return cat.Name
		}
	}
	return "Other"
}

// Detail is the full record for one CPV code.
type Detail struct {
	Code         int            `json:"code"`
	Description  string         `json:"description"`
	Category     string         `json:"category"`
	RelatedCodes []CodeListItem `json:"related_codes"`
}

// CodeListItem is a code/description pair in listings.
type CodeListItem struct {
	Code        int    `json:"code"`
	Description string `json:"description"`
}

// Describe returns the detail record for code, including the other codes in
// its category. Unknown codes raise CPV_CODE_NOT_FOUND.
func (s *Service) Describe(code int) (*Detail, error) {
	desc, ok := s.Description(code)
	if !ok {
		return nil, constants.NewCPVCodeNotFoundError(code)
	}

	related := s.CodesByCategory(code)
	delete(related, code)

	items := make([]CodeListItem, 0, len(related))
	for c, d := range related {
		items = append(items, CodeListItem{Code: c, Description: d})
	}
	sortCodeListItems(items)

	return &Detail{
		Code:         code,
		Description:  desc,
		Category:     s.CategoryForCode(code),
		RelatedCodes: items,
	}, nil
}

// Stats summarizes the table for dashboard use.
type Stats struct {
	TotalCodes           int              `json:"total_codes"`
	MainCategories       map[string]int   `json:"main_categories"`
	TopLevelDistribution map[string]int   `json:"top_level_distribution"`
	CategoryDetails      []CategoryDetail `json:"category_details"`
}

// CategoryDetail describes one main category in the stats response.
type CategoryDetail struct {
	Code        int    `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Count       int    `json:"count"`
}

// Statistics computes per-category and per-prefix code counts.
func (s *Service) Statistics() *Stats {
	stats := &Stats{
		TotalCodes:           len(cpvCodes),
		MainCategories:       make(map[string]int),
		TopLevelDistribution: make(map[string]int),
	}
	for code := range cpvCodes {
		stats.MainCategories[s.CategoryForCode(code)]++
		stats.TopLevelDistribution[codePrefix(code)]++
	}
	for _, cat := range mainCategories {
		stats.CategoryDetails = append(stats.CategoryDetails, CategoryDetail{
			Code:        cat.Code,
			Name:        cat.Name,
			Description: cpvCodes[cat.Code],
			Count:       stats.MainCategories[cat.Name],
		})
	}
	return stats
}

func sortCodeListItems(items []CodeListItem) {
	sort.Slice(items, func(i, j int) bool { return items[i].Code < items[j].Code })
}
