package validation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/michaelekornrud/BouvetRadar/internal/domain"
	"github.com/michaelekornrud/BouvetRadar/internal/pkg/constants"
)

// NUTSLevel validates the level parameter for geographic hierarchies:
// 1 = region, 2 = county, 3 = municipality.
func NUTSLevel(raw string) (domain.Level, error) {
	return level(raw, domain.Level3)
}

// STYRKLevel validates the level parameter for occupational hierarchies:
// 1 = major group, 2 = sub-group, 3 = unit group, 4 = occupation.
func STYRKLevel(raw string) (domain.Level, error) {
	return level(raw, domain.Level4)
}

func level(raw string, max domain.Level) (domain.Level, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, constants.NewMissingParameterError("level")
	}
	n, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, constants.NewInvalidParameterTypeError("level", "integer", raw)
	}
	lvl := domain.Level(n)
	if !lvl.Valid() || lvl > max {
		return 0, constants.NewValidationError(
			fmt.Sprintf("Parameter 'level' must be between 1 and %d", max),
			"level",
			n,
		)
	}
	return lvl, nil
}
