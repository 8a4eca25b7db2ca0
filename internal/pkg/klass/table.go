package klass

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"github.com/michaelekornrud/BouvetRadar/internal/domain"
	"github.com/michaelekornrud/BouvetRadar/internal/pkg/constants"
)

var requiredColumns = []string{"code", "parentCode", "level", "name"}

// Table is the parsed flat classification table for one version, in the row
// order the source delivered it. It is never mutated after parsing.
type Table struct {
	Rows []domain.ClassificationRow
}

// ParseTable parses the raw semicolon-delimited text of a classification
// version. Missing required columns raise a DataProcessingError naming them;
// rows that are not well-formed tabular data raise a ParsingError.
func ParseTable(raw []byte) (*Table, error) {
	r := csv.NewReader(bytes.NewReader(raw))
	r.Comma = ';'
	r.LazyQuotes = true
	r.TrimLeadingSpace = true

	records, err := r.ReadAll()
	if err != nil {
		return nil, constants.NewParsingError(
			fmt.Sprintf("malformed classification table: %s", err),
			"csv",
		)
	}
	if len(records) == 0 {
		return nil, constants.NewDataProcessingError("classification table is empty", "parse")
	}

	header := records[0]
	col := make(map[string]int, len(header))
	for i, h := range header {
		col[strings.TrimSpace(h)] = i
	}

	var missing []string
	for _, c := range requiredColumns {
		if _, ok := col[c]; !ok {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return nil, constants.NewDataProcessingError(
			fmt.Sprintf("classification table missing required columns: %s", strings.Join(missing, ", ")),
			"parse",
		)
	}

	rows := make([]domain.ClassificationRow, 0, len(records)-1)
	for _, rec := range records[1:] {
		levelStr := strings.TrimSpace(rec[col["level"]])
		level, err := strconv.Atoi(levelStr)
		if err != nil {
			return nil, constants.NewParsingError(
				fmt.Sprintf("invalid level %q for code %q", levelStr, rec[col["code"]]),
				"level",
			)
		}
		rows = append(rows, domain.ClassificationRow{
			Code:       strings.TrimSpace(rec[col["code"]]),
			ParentCode: strings.TrimSpace(rec[col["parentCode"]]),
			Level:      domain.Level(level),
			Name:       strings.TrimSpace(rec[col["name"]]),
		})
	}

	return &Table{Rows: rows}, nil
}
