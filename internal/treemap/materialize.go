package treemap

import (
	"fmt"

	"aas-refmap/internal/diagnostic"
	"aas-refmap/internal/index"
	"aas-refmap/internal/label"
	"aas-refmap/internal/tree"
)

// Materialize is pass 2. It creates an artifact for every node outside
// suppressed subtrees that participates in a relation or is included by the
// caller. Nodes that are not selected are still walked for their children.
func (m *Mapper[A]) Materialize(roots []tree.Node, disc *Discovery) *Result[A] {
	res := newResult[A]()
	res.Diagnostics.Merge(disc.Diagnostics())
	res.Stats.Participants = disc.Participants()
	res.Stats.UnresolvedRefs = disc.Unresolved()

	m.walk(roots, func(v visit) {
		n := v.node

		if v.unindexed {
			m.reportUnindexed(res, v)
			return
		}

		res.Stats.NodesVisited++

		if v.suppressed {
			res.Stats.SuppressedNodes++
			res.suppressed[n] = struct{}{}

			if v.suppressionRoot {
				path := m.pathOf(n)
				res.Diagnostics.AddInfo(diagnostic.CodeSuppressedSubtree, "subtree suppressed", "materialize", path)
				m.logger.Debug().Str("code", diagnostic.CodeSuppressedSubtree).Str("path", path).Msg("subtree suppressed")
			}

			return
		}

		if !disc.Participates(n) && !m.included(n) {
			return
		}

		res.selected[n] = struct{}{}

		a, err := m.create(n)
		if err != nil {
			path := m.pathOf(n)
			res.Stats.ArtifactFailures++
			res.Diagnostics.AddWarning(diagnostic.CodeArtifactFailed, err.Error(), "materialize", path)
			m.logger.Warn().Err(err).Str("code", diagnostic.CodeArtifactFailed).Str("path", path).Msg("no artifact for node")

			return
		}

		res.Artifacts[n] = a
		res.Order = append(res.Order, n)
		res.Stats.ArtifactsCreated++
	})

	return res
}

func (m *Mapper[A]) reportUnindexed(res *Result[A], v visit) {
	res.Stats.MalformedNodes++

	var msg, path string

	if v.nilNode {
		path = "<root>"
		if v.parent != nil {
			path = m.pathOf(v.parent)
		}

		msg = fmt.Sprintf("nil node below %s; skipping it", path)
	} else {
		path = v.node.IdShort()
		msg = fmt.Sprintf("%s node %q is not indexed; skipping its subtree", v.node.Shape(), path)
	}

	res.Diagnostics.AddWarning(diagnostic.CodeMalformedNode, msg, "materialize", path)
	m.logger.Warn().Str("code", diagnostic.CodeMalformedNode).Str("path", path).Msg(msg)
}

// create calls the factory. A panicking factory is treated like a failing
// one, except for index invariant violations, which keep propagating.
func (m *Mapper[A]) create(n tree.Node) (a A, err error) {
	defer func() {
		if r := recover(); r != nil {
			if inv, ok := r.(*index.InvariantError); ok {
				panic(inv)
			}

			err = fmt.Errorf("artifact factory panicked: %v", r)
		}
	}()

	text := label.For(n, m.opts.ShowValues, m.opts.WrapColumn)

	return m.opts.Factory(n, text, m.hints(n))
}
