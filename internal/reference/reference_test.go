package reference

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKind(t *testing.T) {
	k, err := ParseKind("submodelelementcollection")
	require.NoError(t, err)
	assert.Equal(t, KindSubmodelElementCollection, k)
	assert.Equal(t, "SubmodelElementCollection", k.String())

	_, err = ParseKind("Widget")
	require.Error(t, err)

	assert.False(t, KeyKind(0).IsValid())
	assert.Equal(t, "KeyKind(0)", KeyKind(0).String())
}

func TestPathKey_Equal(t *testing.T) {
	a := Key(KindProperty, "  Title ")
	b := Key(KindProperty, "title")
	c := Key(KindFile, "title")

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c), "kind must participate in equality")
}

func TestParse(t *testing.T) {
	r, err := Parse("(Submodel)SM1, (SubmodelElementCollection)Interface,(Property)title")
	require.NoError(t, err)
	require.Equal(t, 3, r.Len())

	assert.Equal(t, Key(KindSubmodel, "SM1"), r.Key(0))
	assert.Equal(t, Key(KindSubmodelElementCollection, "Interface"), r.Key(1))
	assert.Equal(t, Key(KindProperty, "title"), r.Key(2))
	assert.Equal(t, "(Submodel)SM1,(SubmodelElementCollection)Interface,(Property)title", r.String())
}

func TestParse_CommaInsideValue(t *testing.T) {
	r, err := Parse("(GlobalReference)urn:a,b,(Property)x")
	require.NoError(t, err)
	require.Equal(t, 2, r.Len())
	assert.Equal(t, "urn:a,b", r.Key(0).Value)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"no kind", "SM1"},
		{"unterminated", "(Submodel SM1"},
		{"unknown kind", "(Widget)x"},
		{"empty value", "(Property) "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input)
			assert.Error(t, err)
		})
	}
}

func TestReference_AppendDoesNotAlias(t *testing.T) {
	base := New(Key(KindSubmodel, "SM1"))
	parent := base.Append(Key(KindSubmodelElementCollection, "C"))

	left := parent.Append(Key(KindProperty, "left"))
	right := parent.Append(Key(KindProperty, "right"))

	assert.Equal(t, 2, parent.Len(), "appending to a copy must not grow the original")
	assert.Equal(t, "left", left.Key(2).Value)
	assert.Equal(t, "right", right.Key(2).Value, "sibling paths must not share the last segment")
}

func TestReference_ParentDoesNotAlias(t *testing.T) {
	r := MustParse("(Submodel)SM1,(Property)a")
	p := r.Parent()
	_ = p.Append(Key(KindProperty, "b"))

	assert.Equal(t, "a", r.Key(1).Value)
	assert.True(t, New().IsEmpty())
	assert.True(t, New(Key(KindSubmodel, "x")).Parent().IsEmpty())
}

func TestReference_Equal(t *testing.T) {
	a := MustParse("(Submodel)SM1,(Property)Title")
	b := MustParse("(submodel) sm1 ,(property)title")
	c := MustParse("(Submodel)SM1")

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.True(t, a.HasPrefix(c))
	assert.False(t, c.HasPrefix(a))
	assert.Equal(t, a.Canonical(), b.Canonical())
	assert.Equal(t, a.Hash(), b.Hash())
}

func TestReference_TextRoundTrip(t *testing.T) {
	var r Reference
	require.NoError(t, r.UnmarshalText([]byte("(Submodel)SM1,(Entity)Motor")))

	text, err := r.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "(Submodel)SM1,(Entity)Motor", string(text))
}

func TestCanonical_SeparatorsInValuesAreEscaped(t *testing.T) {
	joined := New(Key(KindProperty, "x\x1eproperty\x1fy"))
	split := New(Key(KindProperty, "x"), Key(KindProperty, "y"))

	assert.False(t, joined.Equal(split))
	assert.NotEqual(t, joined.Canonical(), split.Canonical())
}
