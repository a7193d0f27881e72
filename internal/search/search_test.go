package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LFroesch/fap/internal/listing"
)

func sampleListing() listing.Listing {
	return listing.Listing{
		{Text: "====", Width: 4, Kind: listing.KindHeader},
		{Text: "/tmp/docs", Width: 9, Kind: listing.KindHeader},
		{Text: "====", Width: 4, Kind: listing.KindHeader},
		{Target: "/tmp", Text: "../", Width: 3, Kind: listing.KindParent},
		{Target: "/tmp/docs", Text: "./", Width: 2, Kind: listing.KindSelf},
		{Target: "/tmp/docs/drafts", Text: "drafts/", Width: 7, Kind: listing.KindDir},
		{Target: "/tmp/docs/file1.txt", Text: "file1.txt", Width: 9, Kind: listing.KindFile},
		{Target: "/tmp/docs/file2.txt", Text: "file2.txt", Width: 9, Kind: listing.KindFile},
		{Target: "/tmp/docs/readme.md", Text: "readme.md", Width: 9, Kind: listing.KindFile},
	}
}

func TestFind(t *testing.T) {
	rows := sampleListing()

	tests := []struct {
		name          string
		query         string
		expectedCount int
	}{
		{"exact match", "readme.md", 1},
		{"fuzzy match", "fl", 2},
		{"directory without slash", "drafts", 1},
		{"no match", "xyz", 0},
		{"empty query", "", 0},
		{"header text is not searched", "tmp", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results := Find(tt.query, rows)
			assert.Len(t, results, tt.expectedCount)
			for _, i := range results {
				assert.True(t, rows[i].Navigable())
			}
		})
	}
}

func TestFindReturnsListingIndexes(t *testing.T) {
	results := Find("readme", sampleListing())
	require.Len(t, results, 1)
	assert.Equal(t, 8, results[0])
}

func TestMatchesCycle(t *testing.T) {
	m := NewMatches("file", sampleListing())
	require.Equal(t, 2, m.Len())

	first, ok := m.Current()
	require.True(t, ok)

	second, ok := m.Next(1)
	require.True(t, ok)
	assert.NotEqual(t, first, second)

	wrapped, _ := m.Next(1)
	assert.Equal(t, first, wrapped)

	back, _ := m.Next(-1)
	assert.Equal(t, second, back)
}

func TestMatchesEmpty(t *testing.T) {
	var nilMatches *Matches
	_, ok := nilMatches.Current()
	assert.False(t, ok)

	m := NewMatches("zzz", sampleListing())
	_, ok = m.Next(1)
	assert.False(t, ok)
}
