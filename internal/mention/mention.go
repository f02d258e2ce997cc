// Package mention extracts @name tokens from task tags and comment text and
// suggests member names for mention autocomplete.
package mention

import (
	"regexp"
	"strings"

	"github.com/sahilm/fuzzy"
)

var pattern = regexp.MustCompile(`@([A-Za-z0-9_]+)`)

// Extract returns the mentioned names in text, in order of appearance.
// Raw matches: mentioning the same user twice yields two entries.
func Extract(text string) []string {
	matches := pattern.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return nil
	}
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, m[1])
	}
	return out
}

// FromTags returns the names of @-prefixed tags, in tag order.
func FromTags(tags []string) []string {
	var out []string
	for _, tag := range tags {
		if strings.HasPrefix(tag, "@") && len(tag) > 1 {
			out = append(out, tag[1:])
		}
	}
	return out
}

// Suggest ranks member names against a partial query for the mention
// dropdown. An empty query returns the full roster.
func Suggest(query string, members []string) []string {
	query = strings.TrimSpace(query)
	if query == "" {
		return append([]string(nil), members...)
	}
	matches := fuzzy.Find(query, members)
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, members[m.Index])
	}
	return out
}
