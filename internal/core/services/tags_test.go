package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/cardscan/internal/core/domain"
)

func TestCountTag(t *testing.T) {
	tests := []struct {
		name string
		text string
		tag  string
		want int
	}{
		{"double marker", "//foo", "foo", 1},
		{"single marker", "/foo", "foo", 1},
		{"suffix extended rejected", "//foobar", "foo", 0},
		{"digit suffix rejected", "//emily2", "emily", 0},
		{"underscore suffix rejected", "//emily_b", "emily", 0},
		{"unicode letter suffix rejected", "//emilyé", "emily", 0},
		{"leading and inner whitespace", "  //  foo", "foo", 1},
		{"tabs allowed", "\t//\tfoo", "foo", 1},
		{"mid line", "card text //foo more", "foo", 1},
		{"punctuation after tag", "//foo, //foo.", "foo", 2},
		{"no marker", "foo foo", "foo", 0},
		{"newline between marker and tag", "//\nfoo", "foo", 0},
		{"case insensitive", "//FOO /Foo", "foo", 2},
		{"tag case insensitive", "//foo", "FOO", 1},
		{"triple slash counts once", "///foo", "foo", 1},
		{"adjacent markers", "x/foo/foo", "foo", 2},
		{"url path", "https://example.com/foo", "foo", 1},
		{"multiple lines", "//foo\n/foo\n  //  foo\n", "foo", 3},
		{"regex metacharacters literal", "//a.b //axb", "a.b", 1},
		{"plus tag", "//c++ ", "c++", 0},
		{"tag with space", "// riyal or fake.", "riyal or fake", 1},
		{"empty tag", "//", "", 0},
		{"empty text", "", "foo", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CountTag(tt.text, tt.tag))
		})
	}
}

func TestCountTag_DoubleMarkerNotDoubleCounted(t *testing.T) {
	assert.NotEqual(t, 2, CountTag("//foo", "foo"))
}

func TestCountTag_CaseInsensitiveProperty(t *testing.T) {
	texts := []string{
		"//alice and /bob\n  //  ALICE\n",
		"nothing here",
		"//alice2 //alice_ /alice",
		"tab\t/\talice\tend",
	}
	tags := []string{"alice", "bob", "Alice"}

	for _, s := range texts {
		for _, tag := range tags {
			assert.Equal(t, CountTag(s, tag), CountTag(strings.ToUpper(s), tag), "%q / %q", s, tag)
		}
	}
}

func TestCountCardsForPerson(t *testing.T) {
	text := "//a card\n/b card\n// a again\nplain a b\n"

	got := CountCardsForPerson(text, []string{"a", "b"})

	assert.Equal(t, CountTag(text, "a")+CountTag(text, "b"), got)
	assert.Equal(t, 3, got)
}

func TestCountCardsForPerson_Additive(t *testing.T) {
	// "bea" and "beabadoobee" are distinct tags; each marker counts for
	// the tag that matches it.
	text := "//bea //beabadoobee"

	assert.Equal(t, 2, CountCardsForPerson(text, []string{"bea", "beabadoobee"}))
	assert.Equal(t, 0, CountCardsForPerson(text, nil))
}

func TestTagMatcher_Reuse(t *testing.T) {
	m := NewTagMatcher("ez")

	assert.Equal(t, "ez", m.Tag())
	assert.Equal(t, 1, m.Count("//ez"))
	assert.Equal(t, 2, m.Count("/ez\n//ez"))
}

func TestPersonMatcher_Count(t *testing.T) {
	pm := NewPersonMatcher("ilovebeabadoobee", []string{"bea", "ilovebeabadoobee"})

	assert.Equal(t, "ilovebeabadoobee", pm.Person)
	assert.Equal(t, 3, pm.Count("//bea\n// ilovebeabadoobee\n/BEA\n//beab"))
}

func TestCountMapping(t *testing.T) {
	mapping := domain.TagMapping{
		{Person: "alice", Tags: []string{"alice", "al"}},
		{Person: "bob", Tags: []string{"bob"}},
		{Person: "carol", Tags: []string{"carol"}},
	}

	got := CountMapping("//alice\n/al\n// bob\nalice", mapping)
	assert.Equal(t, map[string]int{"alice": 2, "bob": 1, "carol": 0}, got)

	assert.Empty(t, CountMapping("//alice", nil))
}
