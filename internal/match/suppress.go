package match

import (
	"strings"

	"aas-refmap/internal/tree"
)

// SuppressionList is a set of case-insensitive substrings matched against a
// node's IdShort and the values of its semantic tag keys.
type SuppressionList struct {
	tokens []string
}

// ParseSuppressionList splits a space-delimited list. Empty tokens and
// duplicates are dropped.
func ParseSuppressionList(s string) SuppressionList {
	seen := make(map[string]struct{})

	var tokens []string

	for _, f := range strings.Fields(s) {
		f = strings.ToLower(f)
		if _, ok := seen[f]; ok {
			continue
		}

		seen[f] = struct{}{}
		tokens = append(tokens, f)
	}

	return SuppressionList{tokens: tokens}
}

// Tokens returns the normalized tokens.
func (l SuppressionList) Tokens() []string {
	return append([]string(nil), l.tokens...)
}

// IsEmpty reports whether the list suppresses nothing.
func (l SuppressionList) IsEmpty() bool {
	return len(l.tokens) == 0
}

// Match returns the first token found in the node's IdShort or semantic tag.
func (l SuppressionList) Match(n tree.Node) (string, bool) {
	if n == nil || len(l.tokens) == 0 {
		return "", false
	}

	haystacks := []string{strings.ToLower(n.IdShort())}

	if sem, ok := n.SemanticTag(); ok {
		for _, k := range sem.Keys() {
			haystacks = append(haystacks, strings.ToLower(k.Value))
		}
	}

	for _, tok := range l.tokens {
		for _, h := range haystacks {
			if strings.Contains(h, tok) {
				return tok, true
			}
		}
	}

	return "", false
}

// Matches reports whether the node is suppressed. It has the signature of
// the mapper's Suppress predicate.
func (l SuppressionList) Matches(n tree.Node) bool {
	_, ok := l.Match(n)
	return ok
}
