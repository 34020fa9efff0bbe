package index

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"aas-refmap/internal/diagnostic"
	"aas-refmap/internal/reference"
	"aas-refmap/internal/tree"
)

const stage = "index"

type entry struct {
	ref  reference.Reference
	node tree.Node
}

// Index maps references to nodes. Node implementations must be comparable
// (pointer types), since nodes are also used as map keys.
type Index struct {
	buckets map[uint64][]entry
	refs    map[tree.Node]reference.Reference
	entries []entry
	logger  zerolog.Logger
}

// Option configures an Index.
type Option func(*Index)

// WithLogger sets the logger used for soft failures.
func WithLogger(logger zerolog.Logger) Option {
	return func(x *Index) {
		x.logger = logger
	}
}

// New creates an empty index.
func New(opts ...Option) *Index {
	x := &Index{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(x)
	}

	x.reset()

	return x
}

func (x *Index) reset() {
	x.buckets = make(map[uint64][]entry)
	x.refs = make(map[tree.Node]reference.Reference)
	x.entries = nil
}

// Index clears the index and indexes every node below roots.
// Malformed nodes are skipped together with their subtree and reported in
// the returned diagnostics.
func (x *Index) Index(roots []tree.Node) *diagnostic.Diagnostics {
	x.reset()

	diags := diagnostic.New()

	for i, root := range roots {
		if root == nil {
			x.logger.Debug().Int("root", i).Msg("skipping nil root")
			continue
		}

		if tree.IsNil(root) {
			x.reportNil(reference.Reference{}, diags)
			continue
		}

		x.walk(root, reference.Reference{}, diags)
	}

	x.logger.Debug().Int("nodes", len(x.entries)).Int("buckets", len(x.buckets)).Msg("index built")

	return diags
}

// walk indexes n below parent. parent is never modified; each child gets
// its own path value.
func (x *Index) walk(n tree.Node, parent reference.Reference, diags *diagnostic.Diagnostics) {
	if strings.TrimSpace(n.IdShort()) == "" || !n.Kind().IsValid() {
		where := parent.String()
		if where == "" {
			where = "<root>"
		}

		msg := fmt.Sprintf("skipping %s node without idShort or kind below %s", n.Shape(), where)
		diags.AddWarning(diagnostic.CodeMalformedNode, msg, stage, where)
		x.logger.Warn().Str("code", diagnostic.CodeMalformedNode).Str("parent", where).Msg(msg)

		return
	}

	path := parent.Append(tree.KeyOf(n))
	x.add(path, n, diags)

	for _, child := range n.Children() {
		if child == nil {
			continue
		}

		if tree.IsNil(child) {
			x.reportNil(path, diags)
			continue
		}

		x.walk(child, path, diags)
	}
}

// reportNil records a typed nil node found below parent.
func (x *Index) reportNil(parent reference.Reference, diags *diagnostic.Diagnostics) {
	where := parent.String()
	if where == "" {
		where = "<root>"
	}

	msg := fmt.Sprintf("skipping nil node below %s", where)
	diags.AddWarning(diagnostic.CodeMalformedNode, msg, stage, where)
	x.logger.Warn().Str("code", diagnostic.CodeMalformedNode).Str("parent", where).Msg(msg)
}

func (x *Index) add(path reference.Reference, n tree.Node, diags *diagnostic.Diagnostics) {
	h := path.Hash()

	for _, e := range x.buckets[h] {
		if checkContract(path, e.ref) {
			msg := fmt.Sprintf("path %s is used by more than one node; lookups return the first", path)
			diags.AddWarning(diagnostic.CodeDuplicatePath, msg, stage, path.String())
			x.logger.Warn().Str("code", diagnostic.CodeDuplicatePath).Str("path", path.String()).Msg(msg)

			break
		}
	}

	e := entry{ref: path, node: n}
	x.buckets[h] = append(x.buckets[h], e)
	x.entries = append(x.entries, e)

	if _, seen := x.refs[n]; !seen {
		x.refs[n] = path
	}
}

// FindByReference returns the first node whose path equals ref.
func (x *Index) FindByReference(ref reference.Reference) (tree.Node, bool) {
	if ref.IsEmpty() {
		return nil, false
	}

	for _, e := range x.buckets[ref.Hash()] {
		if checkContract(ref, e.ref) {
			return e.node, true
		}
	}

	return nil, false
}

// ReferenceOf returns the path recorded for n during indexing.
func (x *Index) ReferenceOf(n tree.Node) (reference.Reference, bool) {
	ref, ok := x.refs[n]
	return ref, ok
}

// Len returns the number of indexed nodes.
func (x *Index) Len() int {
	return len(x.entries)
}

// References returns every indexed path in depth-first order.
func (x *Index) References() []reference.Reference {
	refs := make([]reference.Reference, len(x.entries))
	for i, e := range x.entries {
		refs[i] = e.ref
	}

	return refs
}
