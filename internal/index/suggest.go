package index

import (
	"strings"

	"aas-refmap/internal/match"
	"aas-refmap/internal/reference"
)

const minSuggestionScore = 0.6

// Suggest returns up to n indexed references that look like ref.
// Candidates are compared on their lower-cased text form.
func (x *Index) Suggest(ref reference.Reference, n int) []reference.Reference {
	if n <= 0 || ref.IsEmpty() {
		return nil
	}

	byText := make(map[string]reference.Reference, len(x.entries))
	candidates := make([]string, 0, len(x.entries))

	for _, e := range x.entries {
		text := strings.ToLower(e.ref.String())
		if _, dup := byText[text]; dup {
			continue
		}

		byText[text] = e.ref
		candidates = append(candidates, text)
	}

	ranked := match.Closest(strings.ToLower(ref.String()), candidates, n, minSuggestionScore)

	out := make([]reference.Reference, 0, len(ranked))
	for _, r := range ranked {
		out = append(out, byText[r.Value])
	}

	return out
}
