package treemap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aas-refmap/internal/index"
	"aas-refmap/internal/tree"
)

func TestGraphFactory(t *testing.T) {
	roots, iface, title, _ := scenario("(Submodel)SM1,(SubmodelElementCollection)Interface")

	idx := index.New()
	idx.Index(roots)

	m, err := New(Options[*GraphNode]{
		Index:      idx,
		Factory:    NewGraphFactory(idx),
		ShowValues: true,
	})
	require.NoError(t, err)

	res := m.Run(roots)
	require.Len(t, res.Artifacts, 2)

	node := res.Artifacts[title]
	assert.Equal(t, "title = Sensor A", node.Label)
	assert.Equal(t, "Property", node.Kind)
	assert.Equal(t, "(Submodel)SM1,(SubmodelElementCollection)Interface,(Property)title", node.Path)
	assert.NotEqual(t, res.Artifacts[iface].ID, node.ID)

	again := m.Run(roots)
	assert.Equal(t, node.ID, again.Artifacts[title].ID, "ids are stable across runs")
}

func TestGraphFactory_UnindexedNode(t *testing.T) {
	f := NewGraphFactory(index.New())

	_, err := f(tree.NewProperty("x", ""), "x", nil)
	require.ErrorIs(t, err, index.ErrNotIndexed)
}
