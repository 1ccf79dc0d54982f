package domain

import (
	"regexp"
	"sort"
	"strings"
)

var (
	slugSpaceRe   = regexp.MustCompile(`\s+`)
	slugInvalidRe = regexp.MustCompile(`[^a-z0-9-]`)
)

// LeaderboardEntry is one ranked person.
type LeaderboardEntry struct {
	Rank   int
	Person string
	Slug   string
	Cards  int
}

// Leaderboard ranks people by cards, highest first. Ties keep the order of
// people and share a rank; the next rank skips accordingly (1, 2, 2, 4).
func Leaderboard(people []string, totals map[string]int) []LeaderboardEntry {
	entries := make([]LeaderboardEntry, len(people))
	for i, p := range people {
		entries[i] = LeaderboardEntry{Person: p, Slug: Slugify(p), Cards: totals[p]}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Cards > entries[j].Cards
	})

	for i := range entries {
		if i > 0 && entries[i].Cards == entries[i-1].Cards {
			entries[i].Rank = entries[i-1].Rank
			continue
		}
		entries[i].Rank = i + 1
	}

	return entries
}

// Leaderboard ranks the people of this result.
func (r *ScanResult) Leaderboard() []LeaderboardEntry {
	return Leaderboard(r.People, r.Totals)
}

// Slugify turns a display name into a URL-safe slug.
func Slugify(name string) string {
	s := strings.TrimSpace(strings.ToLower(name))
	s = slugSpaceRe.ReplaceAllString(s, "-")
	return slugInvalidRe.ReplaceAllString(s, "")
}
