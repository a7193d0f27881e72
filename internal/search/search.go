package search

import (
	"github.com/sahilm/fuzzy"

	"github.com/LFroesch/fap/internal/listing"
)

// rowSource exposes navigable row names to the fuzzy matcher
type rowSource struct {
	rows    listing.Listing
	indexes []int
}

func newRowSource(rows listing.Listing) rowSource {
	src := rowSource{rows: rows}
	for i, row := range rows {
		if row.Kind == listing.KindDir || row.Kind == listing.KindFile {
			src.indexes = append(src.indexes, i)
		}
	}
	return src
}

func (s rowSource) String(i int) string {
	return s.rows[s.indexes[i]].Name()
}

func (s rowSource) Len() int {
	return len(s.indexes)
}

// Find returns the listing indexes of entries matching query, best match first
func Find(query string, rows listing.Listing) []int {
	if query == "" {
		return nil
	}

	src := newRowSource(rows)
	matches := fuzzy.FindFrom(query, src)

	result := make([]int, len(matches))
	for i, match := range matches {
		result[i] = src.indexes[match.Index]
	}
	return result
}

// Matches remembers the last search and walks through its hits
type Matches struct {
	Query   string
	indexes []int
	pos     int
}

// NewMatches runs query against rows
func NewMatches(query string, rows listing.Listing) *Matches {
	return &Matches{Query: query, indexes: Find(query, rows)}
}

func (m *Matches) Len() int {
	if m == nil {
		return 0
	}
	return len(m.indexes)
}

// Current is the listing index of the selected hit
func (m *Matches) Current() (int, bool) {
	if m.Len() == 0 {
		return 0, false
	}
	return m.indexes[m.pos], true
}

// Next moves n hits forward, wrapping; negative n moves backwards
func (m *Matches) Next(n int) (int, bool) {
	if m.Len() == 0 {
		return 0, false
	}
	count := len(m.indexes)
	m.pos = ((m.pos+n)%count + count) % count
	return m.indexes[m.pos], true
}
