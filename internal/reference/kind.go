package reference

import (
	"fmt"
	"strings"
)

//go:generate go tool stringer -type=KeyKind -trimprefix=Kind -output=kind_string.go

// KeyKind is the type of a single key in a Reference.
type KeyKind int

const (
	_ KeyKind = iota // zero value is invalid

	KindSubmodel
	KindEntity
	KindSubmodelElementCollection
	KindSubmodelElementList
	KindProperty
	KindMultiLanguageProperty
	KindRange
	KindFile
	KindBlob
	KindRelationshipElement
	KindAnnotatedRelationshipElement
	KindReferenceElement
	KindOperation
	KindCapability
	KindBasicEventElement
	KindGlobalReference
	KindConceptDescription
	KindAssetAdministrationShell
	KindFragmentReference

	// KindTotal is the number of defined kinds plus the invalid zero value.
	KindTotal = int(iota)
)

var kindsByName = func() map[string]KeyKind {
	m := make(map[string]KeyKind, KindTotal)
	for k := KeyKind(1); int(k) < KindTotal; k++ {
		m[strings.ToLower(k.String())] = k
	}

	return m
}()

// ParseKind parses a kind name case-insensitively.
func ParseKind(s string) (KeyKind, error) {
	if k, ok := kindsByName[strings.ToLower(strings.TrimSpace(s))]; ok {
		return k, nil
	}

	return 0, fmt.Errorf("unknown key kind %q", s)
}

// IsValid reports whether k is one of the defined kinds.
func (k KeyKind) IsValid() bool {
	return k > 0 && int(k) < KindTotal
}

// IsIdentifiable reports whether keys of this kind carry a global identifier
// rather than an IdShort.
func (k KeyKind) IsIdentifiable() bool {
	switch k {
	default:
		return false
	case KindSubmodel, KindAssetAdministrationShell, KindConceptDescription, KindGlobalReference:
		return true
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k KeyKind) MarshalText() ([]byte, error) {
	if !k.IsValid() {
		return nil, fmt.Errorf("invalid key kind %d", int(k))
	}

	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *KeyKind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}

	*k = parsed

	return nil
}
