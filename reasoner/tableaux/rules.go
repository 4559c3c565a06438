package tableaux

import (
	"context"

	"github.com/nodeadmin/owl2-reasoner/ontology"
)

// budget tracks the cooperative step check spec.md §5 describes: a hard
// step ceiling plus a context for wall-clock/cancellation. It is checked
// once per rule application, the tableau's only suspension point.
type budget struct {
	ctx       context.Context
	remaining int
}

func (b *budget) step(op string) error {
	select {
	case <-b.ctx.Done():
		if b.ctx.Err() == context.DeadlineExceeded {
			return errStepBudgetExceeded(op)
		}
		return errCancelled(op)
	default:
	}
	if b.remaining <= 0 {
		return errStepBudgetExceeded(op)
	}
	b.remaining--
	return nil
}

// addConcept adds ce to n's concept set if not already present (compared
// structurally), returning whether it was new.
func addConcept(n *node, ce ontology.ClassExpression) bool {
	key := ontology.ClassExpressionKey(ce)
	if _, ok := n.conceptKeys[key]; ok {
		return false
	}
	n.concepts[ce] = struct{}{}
	n.conceptKeys[key] = ce
	return true
}

func hasConcept(n *node, ce ontology.ClassExpression) bool {
	_, ok := n.conceptKeys[ontology.ClassExpressionKey(ce)]
	return ok
}

func hasConceptKey(n *node, key string) bool {
	_, ok := n.conceptKeys[key]
	return ok
}

// addEdge records an R-edge from src to dst, and — since this reasoner
// does not maintain a separate reverse-edge index — mirrors it as a
// forward edge under the inverse role so rule 4/5/8's "R-successor"
// lookups work uniformly in both directions (generalizing the teacher's
// addLink, reasoner/saturate.go, which maintains explicit forward/reverse
// maps; here the inverse-role mirroring plays that role).
func addEdge(g *graph, src, dst nodeID, p ontology.PropertyExpression) {
	rk := g.internRole(p)
	s := g.node(src)
	for _, existing := range s.edges[rk] {
		if existing == dst {
			return
		}
	}
	s.edges[rk] = append(s.edges[rk], dst)
	inv := g.internRole(ontology.Invert(p))
	d := g.node(dst)
	for _, existing := range d.edges[inv] {
		if existing == src {
			return
		}
	}
	d.edges[inv] = append(d.edges[inv], src)
}

func successors(g *graph, n *node, p ontology.PropertyExpression) []nodeID {
	rk := g.internRole(p)
	return n.edges[rk]
}

// hasClash reports whether n contains an explicit contradiction: both C
// and ¬C for some C, or ⊥ directly (spec.md §4.1's Clash definition,
// excluding the cardinality-after-merge case handled separately in
// search.go).
func hasClash(n *node) bool {
	if hasConceptKey(n, ontology.ClassExpressionKey(ontology.Bottom)) {
		return true
	}
	for key, ce := range n.conceptKeys {
		if comp, ok := ce.(ontology.ObjectComplementOf); ok {
			if hasConceptKey(n, ontology.ClassExpressionKey(comp.Of)) {
				return true
			}
		}
		_ = key
	}
	return false
}

// expandDeterministic applies the unfolding, intersection, universal,
// existential, and role-characteristic rules to a fixpoint across the
// whole graph, returning the list of nodes still carrying an unresolved
// union disjunction once no deterministic rule applies. Within a node the
// deterministic rules fire concept by concept in map-iteration order, with
// no priority among intersection, universal and existential; union
// branching and cardinality resolution (search.go) run only after this
// fixpoint.
func (e *Engine) expandDeterministic(g *graph, b *budget, op string) ([]nodeID, error) {
	for {
		progressed := false

		for id := nodeID(0); id < nodeID(len(g.nodes)); id++ {
			n := g.node(id)
			if n.mergeTarget != notMerged {
				continue
			}
			if by, blocked := isBlocked(g, id); blocked {
				n.blockedBy = by
				continue
			}
			n.blockedBy = notBlocked

			changed, err := e.expandNodeDeterministic(g, n, b, op)
			if err != nil {
				return nil, err
			}
			if changed {
				progressed = true
			}
			if hasClash(n) {
				n.clash = true
			}
		}
		if !progressed {
			break
		}
	}

	var pendingUnions []nodeID
	for id := nodeID(0); id < nodeID(len(g.nodes)); id++ {
		n := g.node(id)
		if n.mergeTarget != notMerged || n.clash {
			continue
		}
		if _, blocked := isBlocked(g, id); blocked {
			continue
		}
		if hasUnresolvedUnion(n) {
			pendingUnions = append(pendingUnions, id)
		}
	}
	return pendingUnions, nil
}

func hasUnresolvedUnion(n *node) bool {
	for _, ce := range n.conceptKeys {
		u, ok := ce.(ontology.ObjectUnionOf)
		if !ok {
			continue
		}
		resolved := false
		for _, op := range u.Operands {
			if hasConcept(n, op) {
				resolved = true
				break
			}
		}
		if !resolved {
			return true
		}
	}
	return false
}

// expandNodeDeterministic applies one pass of the non-branching rules to
// n, returning whether anything changed.
func (e *Engine) expandNodeDeterministic(g *graph, n *node, b *budget, op string) (bool, error) {
	changed := false

	// Snapshot current concepts so additions made mid-loop don't cause
	// us to iterate a mutating map; re-run the outer fixpoint loop to
	// pick those up on the next pass.
	current := make([]ontology.ClassExpression, 0, len(n.conceptKeys))
	for _, ce := range n.conceptKeys {
		current = append(current, ce)
	}

	for _, ce := range current {
		if err := b.step(op); err != nil {
			return changed, err
		}

		// Rule 1 (unfolding) + GCIs: any axiom SubClassOf(ce, D).
		if sups, ok := e.subClassOf[ontology.ClassExpressionKey(ce)]; ok {
			for _, d := range sups {
				if addConcept(n, d) {
					changed = true
				}
			}
		}

		switch c := ce.(type) {
		case ontology.ObjectIntersectionOf: // Rule 2
			for _, op := range c.Operands {
				if addConcept(n, op) {
					changed = true
				}
			}

		case ontology.ObjectAllValuesFrom: // Rule 5
			for _, succID := range successors(g, n, c.Property) {
				if addConcept(g.node(succID), c.Filler) {
					changed = true
				}
			}
			if e.transitive[roleKeyOf(c.Property)] {
				// Transitive ∀R.C propagates through R-chains: if R is
				// transitive, ∀R.C at N also holds at every R-successor
				// (spec.md §4.1 rule 8).
				for _, succID := range successors(g, n, c.Property) {
					if addConcept(g.node(succID), c) {
						changed = true
					}
				}
			}

		case ontology.ObjectSomeValuesFrom: // Rule 4
			if e.applyExistential(g, n, c) {
				changed = true
			}

		case ontology.ObjectHasSelf:
			addEdge(g, n.id, n.id, c.Property)

		case ontology.ObjectHasValue:
			// ∃R.{a}: ensure an edge to the node representing individual a.
			succID := e.individualNode(g, c.Individual)
			addEdge(g, n.id, succID, c.Property)
			if addConcept(g.node(succID), ontology.ObjectOneOf{Individuals: []ontology.Entity{c.Individual}}) {
				changed = true
			}
		}
	}

	// Rule 7 for DisjointClasses: a node carrying both classes of an
	// asserted disjoint pair gets ⊥, whether or not it carries their
	// conjunction as a single concept.
	for _, pair := range e.disjointPairs {
		if hasConceptKey(n, pair[0]) && hasConceptKey(n, pair[1]) {
			if addConcept(n, ontology.Bottom) {
				changed = true
			}
		}
	}

	if e.applyRoleCharacteristics(g, n) {
		changed = true
	}

	return changed, nil
}

// applyExistential implements rule 4: if no existing R-successor already
// carries the filler, create one (generalizing the teacher's CR3,
// reasoner/saturate.go, from "create a link to an existing named
// concept" to "create a genuinely fresh anonymous node").
func (e *Engine) applyExistential(g *graph, n *node, c ontology.ObjectSomeValuesFrom) bool {
	for _, succID := range successors(g, n, c.Property) {
		if hasConcept(g.node(succID), c.Filler) {
			return false
		}
	}
	g.fresh++
	succ := g.newNode(n.id, "")
	addConcept(succ, ontology.Top)
	addConcept(succ, c.Filler)
	addEdge(g, n.id, succ.id, c.Property)
	return true
}

// individualNode returns (creating if necessary) the node representing a
// named or anonymous individual, memoized on label so repeated references
// to the same individual share one node.
func (e *Engine) individualNode(g *graph, ind ontology.Entity) nodeID {
	label := ind.IRI.String()
	for _, n := range g.nodes {
		if n.label == label {
			return n.id
		}
	}
	n := g.newNode(noParent, label)
	addConcept(n, ontology.Top)
	return n.id
}

// applyRoleCharacteristics materialises symmetric reverse edges and
// reflexive self-edges (spec.md §4.1 rule 8). Functional/inverse-functional
// forcing merges are applied during cardinality resolution (search.go),
// since they interact with number restrictions.
func (e *Engine) applyRoleCharacteristics(g *graph, n *node) bool {
	changed := false
	for rk, targets := range n.edges {
		if e.symmetric[*rk] {
			for _, t := range targets {
				tn := g.node(t)
				already := false
				for _, back := range tn.edges[rk] {
					if back == n.id {
						already = true
						break
					}
				}
				if !already {
					tn.edges[rk] = append(tn.edges[rk], n.id)
					changed = true
				}
			}
		}
	}
	for rk := range e.reflexive {
		if hasSelfEdge(n, rk) {
			continue
		}
		n.edges[g.internRoleFromKey(rk)] = append(n.edges[g.internRoleFromKey(rk)], n.id)
		changed = true
	}
	return changed
}

func hasSelfEdge(n *node, rk roleKey) bool {
	for edgeKey, targets := range n.edges {
		if *edgeKey != rk {
			continue
		}
		for _, t := range targets {
			if t == n.id {
				return true
			}
		}
	}
	return false
}
