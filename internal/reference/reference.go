package reference

import (
	"errors"
	"fmt"
	"strings"
)

// Reference is an ordered path of keys from a root to a node.
// A Reference is a value: every operation that changes the path returns a
// new Reference and never writes into the receiver's backing array.
type Reference struct {
	keys []PathKey
}

// New creates a Reference from the given keys. The keys are copied.
func New(keys ...PathKey) Reference {
	if len(keys) == 0 {
		return Reference{}
	}

	return Reference{keys: append([]PathKey(nil), keys...)}
}

// Parse parses a reference in "(Kind)Value,(Kind)Value" form.
// Commas inside values are kept as long as they are not followed by "(".
func Parse(s string) (Reference, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Reference{}, errors.New("empty reference")
	}

	var keys []PathKey

	for _, part := range splitKeys(s) {
		k, err := ParseKey(part)
		if err != nil {
			return Reference{}, fmt.Errorf("invalid reference %q: %w", s, err)
		}

		keys = append(keys, k)
	}

	return Reference{keys: keys}, nil
}

// MustParse is like Parse but panics on error. Intended for tests and constants.
func MustParse(s string) Reference {
	r, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return r
}

// splitKeys splits on commas that start a new "(Kind)" key.
func splitKeys(s string) []string {
	var parts []string

	start := 0

	for i := 0; i < len(s); i++ {
		if s[i] != ',' {
			continue
		}

		rest := strings.TrimLeft(s[i+1:], " \t")
		if strings.HasPrefix(rest, "(") {
			parts = append(parts, s[start:i])
			start = i + 1
		}
	}

	return append(parts, s[start:])
}

// IsEmpty reports whether the reference has no keys.
func (r Reference) IsEmpty() bool {
	return len(r.keys) == 0
}

// Len returns the number of keys.
func (r Reference) Len() int {
	return len(r.keys)
}

// Key returns the i-th key.
func (r Reference) Key(i int) PathKey {
	return r.keys[i]
}

// Keys returns a copy of the keys.
func (r Reference) Keys() []PathKey {
	return append([]PathKey(nil), r.keys...)
}

// Last returns the last key and false if the reference is empty.
func (r Reference) Last() (PathKey, bool) {
	if len(r.keys) == 0 {
		return PathKey{}, false
	}

	return r.keys[len(r.keys)-1], true
}

// Append returns a new Reference with key added at the end.
func (r Reference) Append(key PathKey) Reference {
	keys := make([]PathKey, len(r.keys), len(r.keys)+1)
	copy(keys, r.keys)

	return Reference{keys: append(keys, key)}
}

// Parent returns the reference without its last key.
// The parent of a single-key reference is empty.
func (r Reference) Parent() Reference {
	if len(r.keys) <= 1 {
		return Reference{}
	}

	return Reference{keys: r.keys[:len(r.keys)-1:len(r.keys)-1]}
}

// Equal compares two references key by key.
func (r Reference) Equal(other Reference) bool {
	if len(r.keys) != len(other.keys) {
		return false
	}

	for i := range r.keys {
		if !r.keys[i].Equal(other.keys[i]) {
			return false
		}
	}

	return true
}

// HasPrefix reports whether prefix matches the leading keys of r.
func (r Reference) HasPrefix(prefix Reference) bool {
	if len(prefix.keys) > len(r.keys) {
		return false
	}

	for i := range prefix.keys {
		if !r.keys[i].Equal(prefix.keys[i]) {
			return false
		}
	}

	return true
}

// String returns the reference in "(Kind)Value,(Kind)Value" form.
func (r Reference) String() string {
	parts := make([]string, len(r.keys))
	for i, k := range r.keys {
		parts[i] = k.String()
	}

	return strings.Join(parts, ",")
}

// MarshalText implements encoding.TextMarshaler.
func (r Reference) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *Reference) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}

	*r = parsed

	return nil
}
