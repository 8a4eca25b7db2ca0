package klass

import (
	"strings"

	"github.com/michaelekornrud/BouvetRadar/internal/domain"
)

// Index provides code, level and parent lookups over one classification
// table. Built once per table load; read-only afterwards, so it is safe for
// concurrent use.
type Index struct {
	rows     []domain.ClassificationRow
	names    map[string]string
	levels   map[string]domain.Level
	parents  map[string]string
	children map[string][]domain.Entry
	byLevel  map[domain.Level][]domain.Entry
}

// NewIndex builds the index from t in a single scan, preserving table row
// order in every derived listing.
func NewIndex(t *Table) *Index {
	ix := &Index{
		rows:     t.Rows,
		names:    make(map[string]string, len(t.Rows)),
		levels:   make(map[string]domain.Level, len(t.Rows)),
		parents:  make(map[string]string, len(t.Rows)),
		children: make(map[string][]domain.Entry),
		byLevel:  make(map[domain.Level][]domain.Entry),
	}
	for _, row := range t.Rows {
		entry := domain.Entry{Code: row.Code, Name: row.Name}
		ix.names[row.Code] = row.Name
		ix.levels[row.Code] = row.Level
		ix.byLevel[row.Level] = append(ix.byLevel[row.Level], entry)
		if row.ParentCode != "" {
			ix.parents[row.Code] = row.ParentCode
			ix.children[row.ParentCode] = append(ix.children[row.ParentCode], entry)
		}
	}
	return ix
}

// Len returns the number of rows behind the index.
func (ix *Index) Len() int { return len(ix.rows) }

// Description returns the name for code.
func (ix *Index) Description(code string) (string, bool) {
	name, ok := ix.names[code]
	return name, ok
}

// Children returns the direct children of parentCode in table row order.
func (ix *Index) Children(parentCode string) []domain.Entry {
	return ix.children[parentCode]
}

// ByLevel returns all entries at exactly the given level, in table row order.
func (ix *Index) ByLevel(level domain.Level) []domain.Entry {
	return ix.byLevel[level]
}

// Parent resolves the immediate parent of code. The second return is false
// when code is unknown or has no parent.
func (ix *Index) Parent(code string) (domain.Entry, bool) {
	parentCode, ok := ix.parents[code]
	if !ok {
		return domain.Entry{}, false
	}
	name, ok := ix.names[parentCode]
	if !ok {
		return domain.Entry{}, false
	}
	return domain.Entry{Code: parentCode, Name: name}, true
}

// ResolveByName finds the code whose name equals name, case-insensitively.
// When maxLevel is > 0 only rows at or below that level are candidates.
// The first match in table row order wins.
func (ix *Index) ResolveByName(name string, maxLevel domain.Level) (string, bool) {
	for _, row := range ix.rows {
		if maxLevel > 0 && row.Level > maxLevel {
			continue
		}
		if strings.EqualFold(row.Name, name) {
			return row.Code, true
		}
	}
	return "", false
}

// SearchByName returns every row whose name contains fragment,
// case-insensitively, in table row order.
func (ix *Index) SearchByName(fragment string) []domain.SearchHit {
	needle := strings.ToLower(fragment)
	var hits []domain.SearchHit
	for _, row := range ix.rows {
		if strings.Contains(strings.ToLower(row.Name), needle) {
			hits = append(hits, domain.SearchHit{
				Code:       row.Code,
				Name:       row.Name,
				Level:      row.Level,
				ParentCode: row.ParentCode,
			})
		}
	}
	return hits
}
