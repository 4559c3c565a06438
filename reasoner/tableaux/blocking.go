package tableaux

// isBlocked reports whether node id is blocked by some ancestor — its
// concept set is a subset of an ancestor's — per spec.md §4.1's blocking
// rule: "A node N is blocked by an ancestor A ... when the concept set of
// N is a subset of the concept set of A." Blocking is recomputed on every
// call rather than cached on the node, so that a shrinking ancestor set
// or a growing descendant set releases the block immediately, as the
// spec requires ("recomputed whenever a node's concept set changes").
func isBlocked(g *graph, id nodeID) (blockedBy nodeID, blocked bool) {
	n := g.node(id)
	for _, anc := range g.ancestors(id) {
		if isSubsetOfConcepts(n, g.node(anc)) {
			return anc, true
		}
	}
	return notBlocked, false
}

// isSubsetOfConcepts reports whether every concept in n's set also
// appears in anc's set, keyed by canonical structural key (two distinct
// ClassExpression values with the same structural shape count as equal
// for blocking purposes, matching how the completion graph treats
// concept identity everywhere else).
func isSubsetOfConcepts(n, anc *node) bool {
	if len(n.conceptKeys) > len(anc.conceptKeys) {
		return false
	}
	for k := range n.conceptKeys {
		if _, ok := anc.conceptKeys[k]; !ok {
			return false
		}
	}
	return true
}
