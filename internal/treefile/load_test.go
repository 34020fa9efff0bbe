package treefile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aas-refmap/internal/diagnostic"
	"aas-refmap/internal/index"
	"aas-refmap/internal/reference"
	"aas-refmap/internal/tree"
)

const sensor = `
roots:
  - kind: Submodel
    idShort: SM1
    semanticId: (GlobalReference)urn:example:sensor
    children:
      - kind: SubmodelElementCollection
        idShort: Interface
        children:
          - kind: Property
            idShort: title
            value: Sensor A
            valueType: xs:string
          - kind: RelationshipElement
            idShort: rel
            first: (Submodel)SM1,(SubmodelElementCollection)Interface,(Property)title
            second: (Submodel)SM1,(SubmodelElementCollection)Interface
      - kind: Entity
        idShort: Motor
        children:
          - kind: Property
            idShort: speed
            value: 1500
          - kind: ReferenceElement
            idShort: datasheet
            target: (Submodel)SM1,(SubmodelElementCollection)Interface
          - kind: AnnotatedRelationshipElement
            idShort: drives
            first: (Submodel)SM1,(Entity)Motor
            second: (Submodel)SM1,(SubmodelElementCollection)Interface
            annotations:
              - kind: Property
                idShort: since
                value: "2021"
`

func TestParse(t *testing.T) {
	roots, diags, err := Parse([]byte(sensor), "sensor.yaml")
	require.NoError(t, err)
	require.Zero(t, diags.Len(), "%v", diags.All())
	require.Len(t, roots, 1)

	sm := roots[0]
	assert.Equal(t, reference.KindSubmodel, sm.Kind())

	sem, ok := sm.SemanticTag()
	require.True(t, ok)
	assert.Equal(t, "(GlobalReference)urn:example:sensor", sem.String())

	x := index.New()
	require.Zero(t, x.Index(roots).Len())
	assert.Equal(t, 9, x.Len())

	n, ok := x.FindByReference(reference.MustParse("(Submodel)SM1,(Entity)Motor,(Property)speed"))
	require.True(t, ok)
	leaf, ok := n.(*tree.Leaf)
	require.True(t, ok)
	assert.Equal(t, "1500", leaf.Value())

	n, ok = x.FindByReference(reference.MustParse(
		"(Submodel)SM1,(Entity)Motor,(AnnotatedRelationshipElement)drives,(Property)since"))
	require.True(t, ok, "annotations are children of the relationship")
	assert.Equal(t, "since", n.IdShort())

	n, ok = x.FindByReference(reference.MustParse("(Submodel)SM1,(Entity)Motor,(ReferenceElement)datasheet"))
	require.True(t, ok)
	assert.Equal(t, tree.ShapeReferenceElement, n.Shape())
}

func TestParse_MalformedEntriesAreSkipped(t *testing.T) {
	data := `
roots:
  - kind: Submodel
    idShort: SM
    children:
      - kind: Widget
        idShort: w
        children:
          - {kind: Property, idShort: hidden}
      - kind: Property
        idShort: "  "
      - kind: RelationshipElement
        idShort: rel
        first: (Submodel)SM
      - kind: ReferenceElement
        idShort: ref
        target: nonsense
      - kind: GlobalReference
        idShort: g
      - kind: Property
        idShort: ok
        semanticId: "broken("
        children:
          - {kind: Property, idShort: dropped}
`

	roots, diags, err := Parse([]byte(data), "bad.yaml")
	require.NoError(t, err)
	require.Len(t, roots, 1)

	children := roots[0].Children()
	require.Len(t, children, 1)
	assert.Equal(t, "ok", children[0].IdShort())

	_, hasSemantic := children[0].SemanticTag()
	assert.False(t, hasSemantic)

	assert.Equal(t, 7, diags.Count(diagnostic.CodeMalformedNode))
	assert.Contains(t, diags.Warnings[0].Message, "bad.yaml:6")

	var paths []string
	for _, d := range diags.Warnings {
		paths = append(paths, d.Path)
	}

	assert.Equal(t, []string{"/SM", "/SM", "/SM/rel", "/SM/ref", "/SM/g", "/SM/ok", "/SM/ok"}, paths)
}

func TestParse_SyntaxError(t *testing.T) {
	_, _, err := Parse([]byte("roots: [\n"), "x.yaml")
	require.Error(t, err)

	_, _, err = Parse([]byte("roots: 3\n"), "x.yaml")
	require.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sensor.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sensor), 0o644))

	roots, diags, err := LoadFile(path)
	require.NoError(t, err)
	assert.Zero(t, diags.Len())
	assert.Len(t, roots, 1)

	_, _, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestWriteFile_RoundTrip(t *testing.T) {
	roots, _, err := Parse([]byte(sensor), "sensor.yaml")
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "out.yaml")
	require.NoError(t, WriteFile(roots, path))

	again, diags, err := LoadFile(path)
	require.NoError(t, err)
	require.Zero(t, diags.Len())

	before, after := index.New(), index.New()
	before.Index(roots)
	after.Index(again)

	require.Equal(t, before.Len(), after.Len())

	for i, ref := range before.References() {
		assert.True(t, ref.Equal(after.References()[i]), "%s", ref)
	}

	rel, ok := after.FindByReference(reference.MustParse("(Submodel)SM1,(SubmodelElementCollection)Interface,(RelationshipElement)rel"))
	require.True(t, ok)
	assert.Equal(t, "(Submodel)SM1,(SubmodelElementCollection)Interface", rel.(*tree.Relationship).Second().String())
}
