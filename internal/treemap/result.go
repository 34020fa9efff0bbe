package treemap

import (
	"aas-refmap/internal/diagnostic"
	"aas-refmap/internal/tree"
)

// LinkKind distinguishes containment links from relation links.
type LinkKind int

const (
	LinkContainment LinkKind = iota + 1
	LinkRelation
)

// String returns the link kind name.
func (k LinkKind) String() string {
	switch k {
	case LinkContainment:
		return "containment"
	case LinkRelation:
		return "relation"
	default:
		return "unknown"
	}
}

// Reasons a requested link was dropped.
const (
	DropUnresolved      = "unresolved"
	DropSuppressed      = "suppressed"
	DropNotMaterialized = "not_materialized"
)

// Link connects two artifacts.
type Link[A any] struct {
	Kind     LinkKind
	From     A
	To       A
	FromNode tree.Node
	ToNode   tree.Node
	// Via is the relationship or reference element that requested a relation
	// link; nil for containment links.
	Via tree.Node
}

// DroppedLink records a requested link that was not emitted.
type DroppedLink struct {
	Kind   LinkKind
	Via    tree.Node
	From   tree.Node
	To     tree.Node
	Reason string
}

// Stats summarizes one run.
type Stats struct {
	NodesVisited     int `yaml:"nodes_visited" json:"nodes_visited"`
	Participants     int `yaml:"participants" json:"participants"`
	ArtifactsCreated int `yaml:"artifacts_created" json:"artifacts_created"`
	ArtifactFailures int `yaml:"artifact_failures" json:"artifact_failures"`
	MalformedNodes   int `yaml:"malformed_nodes" json:"malformed_nodes"`
	SuppressedNodes  int `yaml:"suppressed_nodes" json:"suppressed_nodes"`
	UnresolvedRefs   int `yaml:"unresolved_refs" json:"unresolved_refs"`
	LinksRequested   int `yaml:"links_requested" json:"links_requested"`
	LinksEmitted     int `yaml:"links_emitted" json:"links_emitted"`
	LinksDropped     int `yaml:"links_dropped" json:"links_dropped"`
}

// Result is the derived output of a run.
type Result[A any] struct {
	// Artifacts maps every materialized node to its artifact.
	Artifacts map[tree.Node]A
	// Order lists materialized nodes in creation order.
	Order []tree.Node
	// Links are the emitted links in pass 3 order.
	Links   []Link[A]
	Dropped []DroppedLink
	Stats   Stats

	Diagnostics *diagnostic.Diagnostics

	selected   map[tree.Node]struct{}
	suppressed map[tree.Node]struct{}
}

func newResult[A any]() *Result[A] {
	return &Result[A]{
		Artifacts:   make(map[tree.Node]A),
		Diagnostics: diagnostic.New(),
		selected:    make(map[tree.Node]struct{}),
		suppressed:  make(map[tree.Node]struct{}),
	}
}

// Artifact returns the artifact of n.
func (r *Result[A]) Artifact(n tree.Node) (A, bool) {
	a, ok := r.Artifacts[n]
	return a, ok
}

// ArtifactsInOrder returns the artifacts in creation order.
func (r *Result[A]) ArtifactsInOrder() []A {
	out := make([]A, 0, len(r.Order))
	for _, n := range r.Order {
		out = append(out, r.Artifacts[n])
	}

	return out
}

// DroppedBy counts dropped links by reason.
func (r *Result[A]) DroppedBy(reason string) int {
	n := 0

	for _, d := range r.Dropped {
		if d.Reason == reason {
			n++
		}
	}

	return n
}

// LinksByKind counts emitted links by kind.
func (r *Result[A]) LinksByKind() map[LinkKind]int {
	counts := make(map[LinkKind]int)

	for _, l := range r.Links {
		counts[l.Kind]++
	}

	return counts
}
