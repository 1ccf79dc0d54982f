package services

import (
	"regexp"
	"unicode"
	"unicode/utf8"

	"github.com/custodia-labs/cardscan/internal/core/domain"
)

// markerSlash is the comment-style marker character.
const markerSlash = '/'

// TagMatcher counts occurrences of one tag written after a "//" or "/"
// marker, e.g. "//alice", "/ alice" or "  //  alice".
//
// A match is optional spaces or tabs, then "//" or a "/" that is not
// directly preceded by another "/", then optional spaces or tabs, then the
// literal tag (case-insensitive), then a word boundary. Matches never span
// a newline and are counted left to right without overlap.
type TagMatcher struct {
	tag string
	re  *regexp.Regexp
}

// NewTagMatcher compiles a matcher for tag. The tag is matched literally.
func NewTagMatcher(tag string) *TagMatcher {
	// Group 1 is the marker. RE2 has no look-behind, so the "not preceded
	// by /" rule for a single marker and the trailing word boundary are
	// checked in Count.
	re := regexp.MustCompile(`(?i)[ \t]*(//?)[ \t]*` + regexp.QuoteMeta(tag))
	return &TagMatcher{tag: tag, re: re}
}

// Tag returns the tag this matcher counts.
func (m *TagMatcher) Tag() string {
	return m.tag
}

// Count returns the number of non-overlapping matches in text.
func (m *TagMatcher) Count(text string) int {
	if m.tag == "" {
		return 0
	}

	count := 0
	pos := 0
	for pos < len(text) {
		loc := m.re.FindStringSubmatchIndex(text[pos:])
		if loc == nil {
			break
		}

		markerStart := pos + loc[2]
		markerLen := loc[3] - loc[2]
		end := pos + loc[1]

		singleAfterSlash := markerLen == 1 && markerStart > 0 && text[markerStart-1] == markerSlash
		if singleAfterSlash || !atWordBoundary(text, end) {
			// Every candidate starting before the marker shares this
			// marker and tag, so resume just past the marker.
			pos = markerStart + 1
			continue
		}

		count++
		pos = end
	}
	return count
}

// atWordBoundary reports whether a word boundary lies at byte offset i,
// using Unicode letters, digits and underscore as word characters.
func atWordBoundary(text string, i int) bool {
	before, after := false, false
	if i > 0 {
		r, _ := utf8.DecodeLastRuneInString(text[:i])
		before = isWordRune(r)
	}
	if i < len(text) {
		r, _ := utf8.DecodeRuneInString(text[i:])
		after = isWordRune(r)
	}
	return before != after
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}

// CountTag counts the occurrences of tag in text. See TagMatcher.
func CountTag(text, tag string) int {
	return NewTagMatcher(tag).Count(text)
}

// CountCardsForPerson sums CountTag over tags. An occurrence matching two
// different tags counts once per tag.
func CountCardsForPerson(text string, tags []string) int {
	total := 0
	for _, tag := range tags {
		total += CountTag(text, tag)
	}
	return total
}

// PersonMatcher counts cards for one person with pre-compiled tags.
type PersonMatcher struct {
	Person   string
	matchers []*TagMatcher
}

// NewPersonMatcher compiles a matcher for each tag.
func NewPersonMatcher(person string, tags []string) *PersonMatcher {
	pm := &PersonMatcher{Person: person, matchers: make([]*TagMatcher, len(tags))}
	for i, tag := range tags {
		pm.matchers[i] = NewTagMatcher(tag)
	}
	return pm
}

// Count sums the matches of every tag in text.
func (p *PersonMatcher) Count(text string) int {
	total := 0
	for _, m := range p.matchers {
		total += m.Count(text)
	}
	return total
}

// CountMapping counts every person's cards in text. Every person of the
// mapping is present in the result, zero included.
func CountMapping(text string, mapping domain.TagMapping) map[string]int {
	counts := make(map[string]int, len(mapping))
	for _, m := range compileMapping(mapping) {
		counts[m.Person] = m.Count(text)
	}
	return counts
}
