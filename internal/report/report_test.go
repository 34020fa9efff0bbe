package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"aas-refmap/internal/index"
	"aas-refmap/internal/reference"
	"aas-refmap/internal/tree"
	"aas-refmap/internal/treemap"
)

func sample(t *testing.T) (*Report, *treemap.Result[*treemap.GraphNode]) {
	t.Helper()

	title := tree.NewProperty("title", "Sensor A")
	rel := tree.NewRelationship("rel",
		reference.MustParse("(Submodel)SM1,(Property)title"),
		reference.MustParse("(Submodel)SM1,(Property)missing"),
	)
	ref := tree.NewReferenceElement("ref", reference.MustParse("(Submodel)SM1,(Property)title"))
	roots := []tree.Node{tree.NewSubmodel("SM1").Add(title, rel, ref)}

	idx := index.New()
	idx.Index(roots)

	m, err := treemap.New(treemap.Options[*treemap.GraphNode]{Index: idx, Factory: treemap.NewGraphFactory(idx)})
	require.NoError(t, err)

	res := m.Run(roots)

	return New(res, idx), res
}

func TestNew(t *testing.T) {
	r, res := sample(t)

	require.Len(t, r.Nodes, 2)
	require.Len(t, r.Links, 1)
	assert.Equal(t, "relation", r.Links[0].Kind)
	assert.Equal(t, "(Submodel)SM1,(ReferenceElement)ref", r.Links[0].Via)
	assert.Equal(t, res.Artifacts[res.Links[0].ToNode].ID, r.Links[0].To)

	require.Len(t, r.Dropped, 1)
	assert.Equal(t, treemap.DropUnresolved, r.Dropped[0].Reason)
	assert.Equal(t, "(Submodel)SM1,(Property)title", r.Dropped[0].From)
	assert.Empty(t, r.Dropped[0].To)
}

func TestWrite(t *testing.T) {
	r, _ := sample(t)

	var js bytes.Buffer
	require.NoError(t, Write(&js, "json", r))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(js.Bytes(), &decoded))
	assert.Len(t, decoded["nodes"], 2)
	assert.Equal(t, 1.0, decoded["stats"].(map[string]any)["links_emitted"])

	var ym bytes.Buffer
	require.NoError(t, Write(&ym, "yaml", r))

	var back struct {
		Links []struct {
			From string `yaml:"from"`
		} `yaml:"links"`
	}
	require.NoError(t, yaml.Unmarshal(ym.Bytes(), &back))
	require.Len(t, back.Links, 1)
	assert.Equal(t, r.Links[0].From.String(), back.Links[0].From)

	require.Error(t, Write(&bytes.Buffer{}, "xmi", r))
}

func TestSummary(t *testing.T) {
	_, res := sample(t)

	var buf bytes.Buffer
	require.NoError(t, Summary(&buf, res.Stats, res.Diagnostics, false))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Equal(t, "4 nodes, 2 artifacts, 1/2 links (1 dropped), 1 unresolved, 0 suppressed", lines[0])
	assert.Len(t, lines, 3)
	assert.Contains(t, lines[1], "unresolved_reference")
	assert.NotContains(t, buf.String(), "\x1b[")

	buf.Reset()
	require.NoError(t, Summary(&buf, res.Stats, res.Diagnostics, true))
	assert.Contains(t, buf.String(), "\x1b[33m")
}
