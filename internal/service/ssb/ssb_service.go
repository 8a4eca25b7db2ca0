// Package ssb serves SSB classification hierarchies. One Service instance
// exists per classification domain (NUTS geography, STYRK occupations); both
// share the process-wide klass cache and differ only by version and
// hierarchy descriptor.
package ssb

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/michaelekornrud/BouvetRadar/internal/domain"
	"github.com/michaelekornrud/BouvetRadar/internal/pkg/constants"
	"github.com/michaelekornrud/BouvetRadar/internal/pkg/klass"
)

// Classification versions on the SSB klass API.
const (
	VersionNUTS  = "2482"
	VersionSTYRK = "33"
)

// NUTS codes are two uppercase letters followed by digits, e.g. NO081.
var locationCodeRe = regexp.MustCompile(`^[A-Z]{2}\d+$`)

var nutsDescriptor = klass.Descriptor{
	MaxLevel: domain.Level3,
	ChildKeys: map[domain.Level]string{
		domain.Level2: "counties",
		domain.Level3: "municipalities",
	},
	// County names come dual-language joined by "/"; keep the first form.
	CleanName: func(level domain.Level, name string) string {
		if level != domain.Level2 {
			return name
		}
		return strings.TrimSpace(strings.SplitN(name, "/", 2)[0])
	},
}

var styrkDescriptor = klass.Descriptor{
	MaxLevel: domain.Level4,
	ChildKeys: map[domain.Level]string{
		domain.Level2: "subgroups",
		domain.Level3: "roles",
		domain.Level4: "titles",
	},
}

// Service answers hierarchy and name lookups for one classification domain.
type Service struct {
	cache      *klass.Cache
	version    string
	descriptor klass.Descriptor
}

// NewNUTSService creates the geographic classification service.
func NewNUTSService(cache *klass.Cache) *Service {
	return &Service{cache: cache, version: VersionNUTS, descriptor: nutsDescriptor}
}

// NewSTYRKService creates the occupational classification service.
func NewSTYRKService(cache *klass.Cache) *Service {
	return &Service{cache: cache, version: VersionSTYRK, descriptor: styrkDescriptor}
}

// MaxLevel reports the deepest level this domain supports.
func (s *Service) MaxLevel() domain.Level { return s.descriptor.MaxLevel }

// HierarchyByLevel reconstructs the nested structure down to level. Level 1
// returns the flat top-level entries.
func (s *Service) HierarchyByLevel(ctx context.Context, level domain.Level) ([]*klass.Node, error) {
	ix, err := s.cache.Get(ctx, s.version)
	if err != nil {
		return nil, err
	}
	return klass.BuildToLevel(ix, s.descriptor, level)
}

// SearchByName returns every classification entry whose name contains
// fragment, case-insensitively.
func (s *Service) SearchByName(ctx context.Context, fragment string) ([]domain.SearchHit, error) {
	ix, err := s.cache.Get(ctx, s.version)
	if err != nil {
		return nil, err
	}
	return ix.SearchByName(fragment), nil
}

// Description looks up the name for a classification code.
func (s *Service) Description(ctx context.Context, code string) (string, error) {
	ix, err := s.cache.Get(ctx, s.version)
	if err != nil {
		return "", err
	}
	name, ok := ix.Description(code)
	if !ok {
		return "", constants.NewNotFoundError(
			fmt.Sprintf("Classification code %s not found", code),
			"classification_code",
			code,
		)
	}
	return name, nil
}

// ResolveLocations translates location identifiers into classification
// codes. Identifiers matching the code pattern are checked for existence and
// passed through; everything else is treated as a region or county name
// (levels 1-2, municipality names are not accepted) and resolved
// case-insensitively. All failures are collected and reported in one
// validation error; on success codes come back in input order.
func (s *Service) ResolveLocations(ctx context.Context, identifiers []string) ([]string, error) {
	ix, err := s.cache.Get(ctx, s.version)
	if err != nil {
		return nil, err
	}

	resolved := make([]string, 0, len(identifiers))
	var unresolved []string
	for _, id := range identifiers {
		if locationCodeRe.MatchString(id) {
			if _, ok := ix.Description(id); ok {
				resolved = append(resolved, id)
			} else {
				unresolved = append(unresolved, id)
			}
			continue
		}
		if code, ok := ix.ResolveByName(id, domain.Level2); ok {
			resolved = append(resolved, code)
		} else {
			unresolved = append(unresolved, id)
		}
	}

	if len(unresolved) > 0 {
		return nil, constants.NewValidationError(
			fmt.Sprintf("Unknown location(s): %s", strings.Join(unresolved, ", ")),
			"location",
			unresolved,
		)
	}
	return resolved, nil
}
