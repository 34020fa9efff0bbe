package treemap

import (
	"github.com/google/uuid"

	"aas-refmap/internal/index"
	"aas-refmap/internal/tree"
)

// graphNamespace scopes the name-based UUIDs of graph nodes.
var graphNamespace = uuid.MustParse("6f1c2a52-3c1e-5b8e-9a44-0d2b7b3f5e10")

// GraphNode is a drawing-agnostic artifact. Its ID is derived from the node
// path, so repeated runs over the same tree produce the same IDs.
type GraphNode struct {
	ID      uuid.UUID `yaml:"id" json:"id"`
	Label   string    `yaml:"label" json:"label"`
	Kind    string    `yaml:"kind" json:"kind"`
	IdShort string    `yaml:"id_short" json:"id_short"`
	Path    string    `yaml:"path" json:"path"`
	Hints   Hints     `yaml:"hints,omitempty" json:"hints,omitempty"`
}

// NewGraphFactory returns a factory producing GraphNodes for nodes of idx.
func NewGraphFactory(idx *index.Index) ArtifactFactory[*GraphNode] {
	return func(n tree.Node, label string, hints Hints) (*GraphNode, error) {
		ref, ok := idx.ReferenceOf(n)
		if !ok {
			return nil, index.ErrNotIndexed
		}

		return &GraphNode{
			ID:      uuid.NewSHA1(graphNamespace, []byte(ref.Canonical())),
			Label:   label,
			Kind:    n.Kind().String(),
			IdShort: n.IdShort(),
			Path:    ref.String(),
			Hints:   hints,
		}, nil
	}
}
