package reference

import (
	"strings"

	"github.com/cespare/xxhash/v2"
)

const (
	unitSep   = "\x1f" // between kind and value of one key
	recordSep = "\x1e" // between keys
)

// separators inside values are escaped so that distinct key lists can never
// produce the same canonical text
var escapeSeparators = strings.NewReplacer(`\`, `\\`, unitSep, `\x1f`, recordSep, `\x1e`)

// Canonical returns the normalized text that Equal and Hash agree on.
// Two references are Equal exactly when their canonical forms are identical.
func (r Reference) Canonical() string {
	var b strings.Builder

	for i, k := range r.keys {
		if i > 0 {
			b.WriteString(recordSep)
		}

		b.WriteString(strings.ToLower(k.Kind.String()))
		b.WriteString(unitSep)
		b.WriteString(escapeSeparators.Replace(k.NormalizedValue()))
	}

	return b.String()
}

// Hash returns the 64-bit xxhash of the canonical form.
// Key order is significant: permuting keys changes the hash.
func (r Reference) Hash() uint64 {
	return xxhash.Sum64String(r.Canonical())
}
