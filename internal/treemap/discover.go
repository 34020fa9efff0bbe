package treemap

import (
	"fmt"

	"aas-refmap/internal/diagnostic"
	"aas-refmap/internal/reference"
	"aas-refmap/internal/tree"
)

const maxSuggestions = 3

// Endpoint is one resolved (or unresolved) cross reference of a relation node.
type Endpoint struct {
	Role string
	Ref  reference.Reference
	// Node is nil when Ref did not resolve.
	Node tree.Node
}

// Resolved reports whether the reference matched an indexed node.
func (e Endpoint) Resolved() bool {
	return e.Node != nil
}

// Discovery is the output of pass 1.
type Discovery struct {
	participants map[tree.Node]struct{}
	relations    map[tree.Node][]Endpoint
	relOrder     []tree.Node
	unresolved   int
	diags        *diagnostic.Diagnostics
}

// Participates reports whether n is an endpoint of at least one relation.
func (d *Discovery) Participates(n tree.Node) bool {
	_, ok := d.participants[n]
	return ok
}

// Participants returns the number of participating nodes.
func (d *Discovery) Participants() int {
	return len(d.participants)
}

// Endpoints returns the endpoints recorded for a relation node.
func (d *Discovery) Endpoints(relation tree.Node) []Endpoint {
	return d.relations[relation]
}

// Relations returns the relation nodes in visit order.
func (d *Discovery) Relations() []tree.Node {
	return append([]tree.Node(nil), d.relOrder...)
}

// Unresolved returns the number of cross references that matched nothing.
func (d *Discovery) Unresolved() int {
	return d.unresolved
}

// Diagnostics returns the findings of pass 1.
func (d *Discovery) Diagnostics() *diagnostic.Diagnostics {
	return d.diags
}

// Discover is pass 1. It resolves the cross references of every relationship
// and reference element and marks the resolved endpoints as participants.
// Suppression does not apply here: a relation inside a suppressed subtree
// still makes its endpoints participate. It creates no artifacts.
func (m *Mapper[A]) Discover(roots []tree.Node) *Discovery {
	d := &Discovery{
		participants: make(map[tree.Node]struct{}),
		relations:    make(map[tree.Node][]Endpoint),
		diags:        diagnostic.New(),
	}

	m.walk(roots, func(v visit) {
		if v.unindexed {
			return
		}

		switch v.node.Shape() {
		case tree.ShapeRelationship, tree.ShapeReferenceElement:
			m.discoverRelation(d, v.node)
		}
	})

	return d
}

func (m *Mapper[A]) discoverRelation(d *Discovery, rel tree.Node) {
	refs := rel.CrossReferences()
	endpoints := make([]Endpoint, 0, len(refs))
	allResolved := true

	for _, cr := range refs {
		ep := Endpoint{Role: cr.Role, Ref: cr.Ref}

		if target, ok := m.opts.Index.FindByReference(cr.Ref); ok {
			ep.Node = target
			d.participants[target] = struct{}{}
		} else {
			allResolved = false
			d.unresolved++
			m.reportUnresolved(d, rel, cr)
		}

		endpoints = append(endpoints, ep)
	}

	// a reference element is itself the source of its link
	if rel.Shape() == tree.ShapeReferenceElement && allResolved {
		d.participants[rel] = struct{}{}
	}

	d.relations[rel] = endpoints
	d.relOrder = append(d.relOrder, rel)
}

func (m *Mapper[A]) reportUnresolved(d *Discovery, rel tree.Node, cr tree.CrossRef) {
	path := m.pathOf(rel)
	msg := fmt.Sprintf("%s reference %q does not resolve", cr.Role, cr.Ref.String())

	var suggestions []string
	for _, s := range m.opts.Index.Suggest(cr.Ref, maxSuggestions) {
		suggestions = append(suggestions, s.String())
	}

	d.diags.Add(diagnostic.Diagnostic{
		Severity:    diagnostic.SeverityWarning,
		Code:        diagnostic.CodeUnresolvedReference,
		Message:     msg,
		Stage:       "discover",
		Path:        path,
		Suggestions: suggestions,
	})

	m.logger.Warn().
		Str("code", diagnostic.CodeUnresolvedReference).
		Str("path", path).
		Str("role", cr.Role).
		Str("ref", cr.Ref.String()).
		Msg("unresolved reference")
}
