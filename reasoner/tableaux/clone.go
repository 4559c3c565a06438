package tableaux

import "github.com/nodeadmin/owl2-reasoner/ontology"

// cloneGraph deep-copies g so a union choice point can be explored and,
// on clash, discarded without disturbing sibling branches. This trades
// the classically taught "undo log" approach for the same outcome using
// ordinary Go value semantics — simpler to keep correct, at the cost of
// copying the whole completion graph per branch. Completion graphs in
// this reasoner are short-lived and small enough (spec.md §3) that this
// is a deliberate simplicity-over-micro-optimization choice, not an
// oversight.
func cloneGraph(g *graph) *graph {
	cp := &graph{
		nodes:    make([]*node, len(g.nodes)),
		roleKeys: g.roleKeys, // role identities are immutable for the life of a query
		fresh:    g.fresh,
	}
	for i, n := range g.nodes {
		cp.nodes[i] = cloneNode(n)
	}
	return cp
}

func cloneNode(n *node) *node {
	nc := &node{
		id:          n.id,
		parent:      n.parent,
		label:       n.label,
		concepts:    make(map[ontology.ClassExpression]struct{}, len(n.concepts)),
		conceptKeys: make(map[string]ontology.ClassExpression, len(n.conceptKeys)),
		edges:       make(map[*roleKey][]nodeID, len(n.edges)),
		blockedBy:   n.blockedBy,
		mergeTarget: n.mergeTarget,
		clash:       n.clash,
	}
	for k, v := range n.concepts {
		nc.concepts[k] = v
	}
	for k, v := range n.conceptKeys {
		nc.conceptKeys[k] = v
	}
	for rk, targets := range n.edges {
		nc.edges[rk] = append([]nodeID(nil), targets...)
	}
	return nc
}
