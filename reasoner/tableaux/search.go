package tableaux

import "github.com/nodeadmin/owl2-reasoner/ontology"

// satisfiable runs the full tableau — deterministic saturation, union
// branching with backtracking, and cardinality resolution — over g as its
// caller seeded it (one root node for IsClassSatisfiable, one node per
// individual for IsConsistent). Depth-first on union
// branches, per spec.md §4.1's "Search strategy": each choice point is
// tried in order and abandoned (not merely paused) on clash, which is a
// simplification of true dependency-directed backtracking (see
// clone.go's doc comment) that is sound and complete, just not maximally
// efficient — acceptable per spec.md §1's Non-goal of "full SROIQ
// completeness for every combination of expressive constructs".
func (e *Engine) satisfiable(g *graph, b *budget, op string) (bool, error) {
	pending, err := e.expandDeterministic(g, b, op)
	if err != nil {
		return false, err
	}
	if anyClash(g) {
		return false, nil
	}
	if len(pending) == 0 {
		return e.resolveCardinalities(g, b, op)
	}

	// Rule 3: branch on the first unresolved union in the first pending
	// node, preferring deterministic rules everywhere else first (already
	// guaranteed since expandDeterministic ran to a fixpoint).
	id := pending[0]
	n := g.node(id)
	var union ontology.ObjectUnionOf
	found := false
	for _, ce := range n.conceptKeys {
		if u, ok := ce.(ontology.ObjectUnionOf); ok && !resolvedUnion(n, u) {
			union = u
			found = true
			break
		}
	}
	if !found {
		return false, errInternalInvariant(op, "pending union reported but none found on re-scan")
	}

	for _, disjunct := range union.Operands {
		if err := b.step(op); err != nil {
			return false, err
		}
		branch := cloneGraph(g)
		addConcept(branch.node(id), disjunct)
		ok, err := e.satisfiable(branch, b, op)
		if err != nil {
			return false, err
		}
		if ok {
			*g = *branch
			return true, nil
		}
	}
	return false, nil
}

func resolvedUnion(n *node, u ontology.ObjectUnionOf) bool {
	for _, op := range u.Operands {
		if hasConcept(n, op) {
			return true
		}
	}
	return false
}

func anyClash(g *graph) bool {
	for _, n := range g.nodes {
		if n.mergeTarget == notMerged && n.clash {
			return true
		}
	}
	return false
}

// resolveCardinalities applies number-restriction merging (at-most) and
// creation (at-least), per spec.md §4.1 rule 6. This is a single
// non-recursive pass: at-least restrictions create fresh distinct
// successors (mirroring the existential rule), at-most restrictions merge
// surplus successors, and a functional (or inverse-functional) role merges
// all of a node's successors along it. Merging individuals asserted
// distinct via DifferentIndividuals shows up as a clash on the merged
// node (see IsConsistent) — a simplified treatment of the full SHOIQ
// merging rule.
func (e *Engine) resolveCardinalities(g *graph, b *budget, op string) (bool, error) {
	changed := false
	for id := nodeID(0); id < nodeID(len(g.nodes)); id++ {
		n := g.node(id)
		if n.mergeTarget != notMerged {
			continue
		}
		for _, ce := range copyConcepts(n) {
			card, ok := ce.(ontology.ObjectCardinality)
			if !ok {
				continue
			}
			if err := b.step(op); err != nil {
				return false, err
			}
			switch card.Kind {
			case ontology.CardinalityMin:
				if applyMinCardinality(g, n, card) {
					changed = true
				}
			case ontology.CardinalityExact:
				if applyMinCardinality(g, n, ontology.ObjectCardinality{Kind: ontology.CardinalityMin, N: card.N, Property: card.Property, Filler: card.Filler}) {
					changed = true
				}
				if applyMaxCardinality(g, n, card) {
					changed = true
				}
			case ontology.CardinalityMax:
				if applyMaxCardinality(g, n, card) {
					changed = true
				}
			}
		}
		// Functional R (or inverse-functional R⁻): all R-successors merge.
		for rk, targets := range n.edges {
			inv := roleKey{name: rk.name, inverse: !rk.inverse}
			if len(targets) < 2 || (!e.functional[*rk] && !e.inverseFunc[inv]) {
				continue
			}
			first := g.resolve(targets[0])
			for _, t := range targets[1:] {
				if r := g.resolve(t); r != first {
					mergeNodes(g, r, first)
					changed = true
				}
			}
		}
	}
	if changed {
		// New successors or merges may feed further deterministic rules
		// (e.g. a merged node's concepts must propagate); re-saturate.
		return e.satisfiable(g, b, op)
	}
	if anyClash(g) {
		return false, nil
	}
	return true, nil
}

func copyConcepts(n *node) []ontology.ClassExpression {
	out := make([]ontology.ClassExpression, 0, len(n.conceptKeys))
	for _, ce := range n.conceptKeys {
		out = append(out, ce)
	}
	return out
}

func fillerMatches(g *graph, id nodeID, filler ontology.ClassExpression) bool {
	if filler == nil {
		return true
	}
	return hasConcept(g.node(id), filler)
}

func applyMinCardinality(g *graph, n *node, card ontology.ObjectCardinality) bool {
	matching := 0
	for _, s := range n.edges[g.internRole(card.Property)] {
		if fillerMatches(g, s, card.Filler) {
			matching++
		}
	}
	changed := false
	for matching < int(card.N) {
		succ := g.newNode(n.id, "")
		addConcept(succ, ontology.Top)
		if card.Filler != nil {
			addConcept(succ, card.Filler)
		}
		addEdge(g, n.id, succ.id, card.Property)
		matching++
		changed = true
	}
	return changed
}

// applyMaxCardinality merges surplus matching successors down to N,
// choosing the lowest-indexed successors as merge targets so the process
// is deterministic. Merging two successors that are named individuals
// known distinct via a DifferentIndividuals axiom is itself a clash,
// flagged on the merged node: IsConsistent gives each such individual its
// own nominal and the complement of the others', so the merge puts both
// {b} and ¬{b} on one node.
func applyMaxCardinality(g *graph, n *node, card ontology.ObjectCardinality) bool {
	var matching []nodeID
	for _, s := range n.edges[g.internRole(card.Property)] {
		if fillerMatches(g, s, card.Filler) {
			matching = append(matching, g.resolve(s))
		}
	}
	if len(matching) <= int(card.N) {
		return false
	}
	target := matching[0]
	changed := false
	for _, extra := range matching[int(card.N):] {
		if extra == target {
			continue
		}
		mergeNodes(g, extra, target)
		changed = true
	}
	return changed
}

// mergeNodes collapses src into dst: dst inherits src's concepts and
// outgoing edges, and src is marked merged so later passes skip it.
func mergeNodes(g *graph, src, dst nodeID) {
	if src == dst {
		return
	}
	s := g.node(src)
	d := g.node(dst)
	for key, ce := range s.conceptKeys {
		if _, ok := d.conceptKeys[key]; !ok {
			d.concepts[ce] = struct{}{}
			d.conceptKeys[key] = ce
		}
	}
	for rk, targets := range s.edges {
		d.edges[rk] = append(d.edges[rk], targets...)
	}
	s.mergeTarget = dst
}
