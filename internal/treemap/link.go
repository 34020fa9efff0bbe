package treemap

import (
	"fmt"

	"aas-refmap/internal/common"
	"aas-refmap/internal/diagnostic"
	"aas-refmap/internal/tree"
)

// Link is pass 3. It requests containment links from containment parents to
// their selected children and one relation link per relationship or
// reference element found by Discover. Relations located inside a suppressed
// subtree are requested and dropped as suppressed. A link is emitted only when both
// endpoints have an artifact; every other request is recorded in
// Result.Dropped, so LinksRequested == LinksEmitted + LinksDropped.
func (m *Mapper[A]) Link(roots []tree.Node, disc *Discovery, res *Result[A]) {
	m.walk(roots, func(v visit) {
		if v.unindexed {
			return
		}

		n := v.node

		if !v.suppressed && m.isContainmentParent(n, v.depth, res) {
			for _, child := range n.Children() {
				if tree.IsNil(child) {
					continue
				}

				if _, ok := res.selected[child]; !ok {
					continue
				}

				m.request(res, LinkContainment, nil, n, child)
			}
		}

		switch n.Shape() {
		case tree.ShapeRelationship:
			from, to := endpoint(disc, n, tree.RoleFirst), endpoint(disc, n, tree.RoleSecond)
			m.requestRelation(res, n, from, to)
		case tree.ShapeReferenceElement:
			to := endpoint(disc, n, tree.RoleTarget)
			m.requestRelation(res, n, Endpoint{Node: n}, to)
		}
	})
}

func (m *Mapper[A]) isContainmentParent(n tree.Node, depth int, res *Result[A]) bool {
	if _, ok := m.containment[n.Kind()]; !ok {
		return false
	}

	if m.opts.MaxDepth > 0 && depth >= m.opts.MaxDepth {
		return false
	}

	_, ok := res.selected[n]

	return ok
}

func endpoint(disc *Discovery, rel tree.Node, role string) Endpoint {
	byRole := func(ep Endpoint) bool { return ep.Role == role }

	if ep, ok := common.First(common.Filter(disc.Endpoints(rel), byRole)); ok {
		return ep
	}

	return Endpoint{Role: role}
}

func (m *Mapper[A]) requestRelation(res *Result[A], via tree.Node, from, to Endpoint) {
	if _, ok := res.suppressed[via]; ok {
		res.Stats.LinksRequested++
		m.drop(res, DroppedLink{Kind: LinkRelation, Via: via, From: from.Node, To: to.Node, Reason: DropSuppressed})

		return
	}

	if !from.Resolved() || !to.Resolved() {
		res.Stats.LinksRequested++
		m.drop(res, DroppedLink{Kind: LinkRelation, Via: via, From: from.Node, To: to.Node, Reason: DropUnresolved})

		return
	}

	m.request(res, LinkRelation, via, from.Node, to.Node)
}

func (m *Mapper[A]) request(res *Result[A], kind LinkKind, via, from, to tree.Node) {
	res.Stats.LinksRequested++

	_, fromSuppressed := res.suppressed[from]
	_, toSuppressed := res.suppressed[to]

	if fromSuppressed || toSuppressed {
		m.drop(res, DroppedLink{Kind: kind, Via: via, From: from, To: to, Reason: DropSuppressed})
		return
	}

	fromArtifact, okFrom := res.Artifacts[from]
	toArtifact, okTo := res.Artifacts[to]

	if !okFrom || !okTo {
		m.drop(res, DroppedLink{Kind: kind, Via: via, From: from, To: to, Reason: DropNotMaterialized})
		return
	}

	res.Links = append(res.Links, Link[A]{
		Kind:     kind,
		From:     fromArtifact,
		To:       toArtifact,
		FromNode: from,
		ToNode:   to,
		Via:      via,
	})
	res.Stats.LinksEmitted++
}

func (m *Mapper[A]) drop(res *Result[A], d DroppedLink) {
	res.Dropped = append(res.Dropped, d)
	res.Stats.LinksDropped++

	path := ""
	if d.Via != nil {
		path = m.pathOf(d.Via)
	} else if d.From != nil {
		path = m.pathOf(d.From)
	}

	msg := fmt.Sprintf("%s link dropped: %s", d.Kind, d.Reason)
	if d.Reason == DropSuppressed {
		res.Diagnostics.AddInfo(diagnostic.CodeLinkDropped, msg, "link", path)
	} else {
		res.Diagnostics.AddWarning(diagnostic.CodeLinkDropped, msg, "link", path)
	}

	m.logger.Debug().Str("code", diagnostic.CodeLinkDropped).Str("path", path).Str("reason", d.Reason).Msg("link dropped")
}
