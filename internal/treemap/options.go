package treemap

import (
	"errors"

	"github.com/rs/zerolog"

	"aas-refmap/internal/index"
	"aas-refmap/internal/reference"
	"aas-refmap/internal/tree"
)

var (
	// ErrNoIndex is returned by New when Options.Index is nil.
	ErrNoIndex = errors.New("treemap: index is required")
	// ErrNoFactory is returned by New when Options.Factory is nil.
	ErrNoFactory = errors.New("treemap: artifact factory is required")
)

// Hints are opaque style hints passed through to the artifact factory.
type Hints map[string]string

// ArtifactFactory creates the host artifact for a node.
type ArtifactFactory[A any] func(n tree.Node, label string, hints Hints) (A, error)

// Options configure a Mapper.
type Options[A any] struct {
	// Index resolves cross references. It must be built over the same roots.
	Index *index.Index
	// Factory creates artifacts in pass 2.
	Factory ArtifactFactory[A]
	// Include selects nodes for materialization in addition to relation participants.
	Include func(tree.Node) bool
	// Suppress removes a node and its whole subtree from materialization and linking.
	Suppress func(tree.Node) bool
	// Hints supplies per-node style hints.
	Hints func(tree.Node) Hints
	// MaxDepth stops recursion below nodes at this depth; roots have depth 0.
	// Zero or negative means unlimited.
	MaxDepth int
	// WrapColumn soft-wraps labels; zero or negative disables wrapping.
	WrapColumn int
	// ShowValues renders scalar labels as "idShort = value".
	ShowValues bool
	// ContainmentKinds are the parent kinds that link to their materialized
	// children. Defaults to Entity.
	ContainmentKinds []reference.KeyKind
	// Logger receives soft failures. Defaults to a no-op logger.
	Logger *zerolog.Logger
}

// Mapper runs the three passes. A Mapper holds no per-run state and may be
// reused for several runs over the same index.
type Mapper[A any] struct {
	opts        Options[A]
	containment map[reference.KeyKind]struct{}
	logger      zerolog.Logger
}

// New validates opts and creates a Mapper.
func New[A any](opts Options[A]) (*Mapper[A], error) {
	if opts.Index == nil {
		return nil, ErrNoIndex
	}

	if opts.Factory == nil {
		return nil, ErrNoFactory
	}

	kinds := opts.ContainmentKinds
	if kinds == nil {
		kinds = []reference.KeyKind{reference.KindEntity}
	}

	m := &Mapper[A]{
		opts:        opts,
		containment: make(map[reference.KeyKind]struct{}, len(kinds)),
		logger:      zerolog.Nop(),
	}

	for _, k := range kinds {
		m.containment[k] = struct{}{}
	}

	if opts.Logger != nil {
		m.logger = *opts.Logger
	}

	return m, nil
}

// Run executes Discover, Materialize and Link in order.
func (m *Mapper[A]) Run(roots []tree.Node) *Result[A] {
	disc := m.Discover(roots)
	res := m.Materialize(roots, disc)
	m.Link(roots, disc, res)

	m.logger.Debug().
		Int("artifacts", res.Stats.ArtifactsCreated).
		Int("links", res.Stats.LinksEmitted).
		Int("dropped", res.Stats.LinksDropped).
		Msg("mapping finished")

	return res
}

func (m *Mapper[A]) included(n tree.Node) bool {
	return m.opts.Include != nil && m.opts.Include(n)
}

func (m *Mapper[A]) suppressed(n tree.Node) bool {
	return m.opts.Suppress != nil && m.opts.Suppress(n)
}

func (m *Mapper[A]) hints(n tree.Node) Hints {
	if m.opts.Hints == nil {
		return nil
	}

	return m.opts.Hints(n)
}

func (m *Mapper[A]) pathOf(n tree.Node) string {
	if ref, ok := m.opts.Index.ReferenceOf(n); ok {
		return ref.String()
	}

	return n.IdShort()
}
