package treemap

import (
	"aas-refmap/internal/tree"
)

// visit describes one node reached by walk.
type visit struct {
	node  tree.Node
	depth int
	// suppressed is set when the node or one of its ancestors is suppressed.
	suppressed bool
	// suppressionRoot is set on the topmost suppressed node of a subtree.
	suppressionRoot bool
	// unindexed nodes are malformed or were added after indexing; their
	// subtree is not walked.
	unindexed bool
	// nilNode marks a typed nil child; node must not be called and parent
	// holds the node it was found below.
	nilNode bool
	parent  tree.Node
}

// walk visits roots depth-first, honouring MaxDepth. Every pass uses it so
// that all passes see exactly the same set of nodes.
func (m *Mapper[A]) walk(roots []tree.Node, fn func(v visit)) {
	for _, root := range roots {
		m.walkNode(root, nil, 0, false, fn)
	}
}

func (m *Mapper[A]) walkNode(n, parent tree.Node, depth int, inherited bool, fn func(v visit)) {
	if n == nil {
		return
	}

	v := visit{node: n, parent: parent, depth: depth, suppressed: inherited}

	if tree.IsNil(n) {
		v.unindexed = true
		v.nilNode = true
		fn(v)

		return
	}

	if _, ok := m.opts.Index.ReferenceOf(n); !ok {
		v.unindexed = true
		fn(v)

		return
	}

	if !inherited && m.suppressed(n) {
		v.suppressed = true
		v.suppressionRoot = true
	}

	fn(v)

	if m.opts.MaxDepth > 0 && depth >= m.opts.MaxDepth {
		return
	}

	for _, child := range n.Children() {
		m.walkNode(child, n, depth+1, v.suppressed, fn)
	}
}
