package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLeaderboard_Ranking(t *testing.T) {
	people := []string{"adi", "ilovebeabadoobee", "weij", "ezpeasy", "riyal or fake"}
	totals := map[string]int{
		"ilovebeabadoobee": 1495,
		"ezpeasy":          38,
		"riyal or fake":    38,
		"weij":             24,
		"adi":              19,
	}

	entries := Leaderboard(people, totals)

	require.Len(t, entries, 5)
	assert.Equal(t, LeaderboardEntry{Rank: 1, Person: "ilovebeabadoobee", Slug: "ilovebeabadoobee", Cards: 1495}, entries[0])
	assert.Equal(t, "ezpeasy", entries[1].Person)
	assert.Equal(t, 2, entries[1].Rank)
	assert.Equal(t, "riyal or fake", entries[2].Person, "ties keep configured order")
	assert.Equal(t, 2, entries[2].Rank)
	assert.Equal(t, "riyal-or-fake", entries[2].Slug)
	assert.Equal(t, 4, entries[3].Rank)
	assert.Equal(t, 5, entries[4].Rank)
}

func TestLeaderboard_AllZero(t *testing.T) {
	entries := Leaderboard([]string{"a", "b"}, map[string]int{})

	require.Len(t, entries, 2)
	assert.Equal(t, 1, entries[0].Rank)
	assert.Equal(t, 1, entries[1].Rank)
	assert.Equal(t, "a", entries[0].Person)
}

func TestScanResult_Leaderboard(t *testing.T) {
	r := NewScanResult("run-1", ScanModeDocument, "d1", []string{"a", "b"})
	r.Add(DocumentResult{Ref: DocumentRef{ID: "d1"}, Counts: map[string]int{"a": 1, "b": 2}})

	entries := r.Leaderboard()

	assert.Equal(t, "b", entries[0].Person)
	assert.Equal(t, "a", entries[1].Person)
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"ilovebeabadoobee", "ilovebeabadoobee"},
		{"Riyal Or Fake", "riyal-or-fake"},
		{"  spaced   out  ", "spaced-out"},
		{"émile_o'neil!", "mileoneil"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.in))
		})
	}
}
