package reference

import (
	"fmt"
	"strings"
)

// PathKey is one typed segment of a Reference.
type PathKey struct {
	Kind  KeyKind
	Value string
}

// Key is a convenience constructor for PathKey.
func Key(kind KeyKind, value string) PathKey {
	return PathKey{Kind: kind, Value: value}
}

// NormalizedValue returns the trimmed, lower-cased value used for comparison.
func (k PathKey) NormalizedValue() string {
	return strings.ToLower(strings.TrimSpace(k.Value))
}

// Equal reports whether both keys have the same kind and the same normalized value.
func (k PathKey) Equal(other PathKey) bool {
	return k.Kind == other.Kind && k.NormalizedValue() == other.NormalizedValue()
}

// String returns the key in "(Kind)Value" form.
func (k PathKey) String() string {
	return "(" + k.Kind.String() + ")" + k.Value
}

// ParseKey parses a key in "(Kind)Value" form.
func ParseKey(s string) (PathKey, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "(") {
		return PathKey{}, fmt.Errorf("invalid key %q: missing \"(Kind)\" prefix", s)
	}

	end := strings.IndexByte(s, ')')
	if end < 0 {
		return PathKey{}, fmt.Errorf("invalid key %q: unterminated kind", s)
	}

	kind, err := ParseKind(s[1:end])
	if err != nil {
		return PathKey{}, fmt.Errorf("invalid key %q: %w", s, err)
	}

	value := strings.TrimSpace(s[end+1:])
	if value == "" {
		return PathKey{}, fmt.Errorf("invalid key %q: empty value", s)
	}

	return PathKey{Kind: kind, Value: value}, nil
}
