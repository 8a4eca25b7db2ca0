package domain

// Level enumerates classification hierarchy depths. NUTS uses 1..3
// (region, county, municipality), STYRK uses 1..4 (major group, sub-group,
// unit group, occupation).
type Level int

const (
	Level1 Level = 1
	Level2 Level = 2
	Level3 Level = 3
	Level4 Level = 4
)

// Valid reports whether l is within the closed 1..4 range.
func (l Level) Valid() bool {
	return l >= Level1 && l <= Level4
}

// ClassificationRow is one row of a flat klass table. ParentCode is empty
// for level 1 rows; for every other row it names an existing code one level
// up.
type ClassificationRow struct {
	Code       string
	ParentCode string
	Level      Level
	Name       string
}

// Entry is the code/name pair returned by listing operations.
type Entry struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// SearchHit is one match from a name search over a classification table.
type SearchHit struct {
	Code       string `json:"code"`
	Name       string `json:"name"`
	Level      Level  `json:"level"`
	ParentCode string `json:"parentCode,omitempty"`
}
