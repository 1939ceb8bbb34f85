package feature

import (
	"strings"

	"github.com/sahilm/fuzzy"
)

const maxSuggestions = 3

// Suggest returns up to three registered ids that fuzzily match pattern,
// best match first. Wildcard suffixes are ignored.
func (r *Registry) Suggest(pattern string) []string {
	needle := strings.TrimSuffix(strings.TrimSuffix(pattern, "*"), ".")
	if needle == "" {
		return nil
	}
	matches := fuzzy.Find(needle, r.IDs())
	var out []string
	for _, m := range matches {
		out = append(out, m.Str)
		if len(out) == maxSuggestions {
			break
		}
	}
	return out
}
