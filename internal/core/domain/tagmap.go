package domain

import (
	"fmt"
	"strings"
)

// Separators of the compact mapping format "person:tag1,tag2|person2:tag3".
const (
	mappingEntrySep = "|"
	mappingPairSep  = ":"
	mappingTagSep   = ","
)

// PersonTags associates a person with the tags attributed to them.
type PersonTags struct {
	// Person is the label counts are attributed to.
	Person string

	// Tags are matched independently; each occurrence counts once per tag.
	Tags []string
}

// TagMapping is an ordered person to tags mapping.
// Construct it with NewTagMapping, ParseTagMapping or MappingFromNames so
// that it is validated.
type TagMapping []PersonTags

// NewTagMapping validates and normalises entries into a TagMapping.
// Person names and tags are trimmed. Empty person names, empty tag lists,
// blank tags and duplicate persons are rejected. Tags repeated within one
// person (ignoring case) are collapsed since matching is case-insensitive.
func NewTagMapping(entries []PersonTags) (TagMapping, error) {
	mapping := make(TagMapping, 0, len(entries))
	seen := make(map[string]bool, len(entries))

	for i, entry := range entries {
		person := strings.TrimSpace(entry.Person)
		if person == "" {
			return nil, fmt.Errorf("%w: entry %d has an empty person name", ErrInvalidTagMapping, i+1)
		}
		if seen[person] {
			return nil, fmt.Errorf("%w: person %q listed more than once", ErrInvalidTagMapping, person)
		}
		seen[person] = true

		if len(entry.Tags) == 0 {
			return nil, fmt.Errorf("%w: person %q has no tags", ErrInvalidTagMapping, person)
		}

		tags := make([]string, 0, len(entry.Tags))
		folded := make(map[string]bool, len(entry.Tags))
		for _, tag := range entry.Tags {
			tag = strings.TrimSpace(tag)
			if tag == "" {
				return nil, fmt.Errorf("%w: person %q has a blank tag", ErrInvalidTagMapping, person)
			}
			key := strings.ToLower(tag)
			if folded[key] {
				continue
			}
			folded[key] = true
			tags = append(tags, tag)
		}

		mapping = append(mapping, PersonTags{Person: person, Tags: tags})
	}

	return mapping, nil
}

// ParseTagMapping parses the compact "person:tag1,tag2|person2:tag3" form.
// Segments that are entirely blank (e.g. a trailing "|") are ignored;
// anything else that is malformed is an error.
func ParseTagMapping(s string) (TagMapping, error) {
	var entries []PersonTags

	for _, segment := range strings.Split(s, mappingEntrySep) {
		if strings.TrimSpace(segment) == "" {
			continue
		}

		person, tagList, ok := strings.Cut(segment, mappingPairSep)
		if !ok {
			return nil, fmt.Errorf("%w: %q is missing %q between person and tags",
				ErrInvalidTagMapping, strings.TrimSpace(segment), mappingPairSep)
		}

		var tags []string
		if strings.TrimSpace(tagList) != "" {
			tags = strings.Split(tagList, mappingTagSep)
		}
		entries = append(entries, PersonTags{Person: person, Tags: tags})
	}

	return NewTagMapping(entries)
}

// MappingFromNames builds a mapping where each name is its own person and
// its own sole tag. Blank names are skipped.
func MappingFromNames(names []string) (TagMapping, error) {
	entries := make([]PersonTags, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		entries = append(entries, PersonTags{Person: name, Tags: []string{name}})
	}
	return NewTagMapping(entries)
}

// SplitNames splits a comma-separated name list.
func SplitNames(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return strings.Split(s, mappingTagSep)
}

// People returns the person names in mapping order.
func (m TagMapping) People() []string {
	people := make([]string, len(m))
	for i := range m {
		people[i] = m[i].Person
	}
	return people
}

// IsEmpty returns true if the mapping has no people.
func (m TagMapping) IsEmpty() bool {
	return len(m) == 0
}

// String renders the mapping in the compact format.
func (m TagMapping) String() string {
	parts := make([]string, len(m))
	for i := range m {
		parts[i] = m[i].Person + mappingPairSep + strings.Join(m[i].Tags, mappingTagSep)
	}
	return strings.Join(parts, mappingEntrySep)
}
