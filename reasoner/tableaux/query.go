package tableaux

import (
	"context"
	"time"

	"github.com/nodeadmin/owl2-reasoner/ontology"
)

// newBudget wires a Config's step ceiling and, when MaxDepth is non-zero
// and the caller's context has no deadline, a two-minute deadline into a
// single budget shared across one top-level query.
func (e *Engine) newBudget(ctx context.Context) (*budget, context.CancelFunc) {
	cancel := context.CancelFunc(func() {})
	if _, hasDeadline := ctx.Deadline(); !hasDeadline && e.cfg.MaxDepth > 0 {
		ctx, cancel = context.WithTimeout(ctx, 2*time.Minute)
	}
	return &budget{ctx: ctx, remaining: e.cfg.StepBudget}, cancel
}

// IsClassSatisfiable reports whether some model can assign a non-empty
// extension to ce without contradiction — spec.md §4.1's core decision
// procedure. owl:Nothing and owl:Thing are answered directly; every other
// expression goes to the tableau, since satisfiability of an arbitrary
// class expression has no cheaper test.
func (e *Engine) IsClassSatisfiable(ctx context.Context, ce ontology.ClassExpression) (bool, error) {
	if atomic, ok := ontology.AsAtomic(ce); ok && atomic.IRI == ontology.OWLNothing {
		return false, nil
	}
	if atomic, ok := ontology.AsAtomic(ce); ok && atomic.IRI == ontology.OWLThing {
		return true, nil
	}

	b, cancel := e.newBudget(ctx)
	defer cancel()

	g := newGraph()
	root := g.newNode(noParent, "")
	addConcept(root, ce)
	addConcept(root, ontology.Top)

	op := "IsClassSatisfiable"
	return e.satisfiable(g, b, op)
}

// IsConsistent reports whether the ontology's ABox (all class, property,
// same/different-individual assertions) admits a model jointly with the
// TBox — spec.md §4.1's global consistency check. One completion graph is
// seeded with a node per asserted individual, all its ClassAssertion
// concepts, and an edge per ObjectPropertyAssertion, then run to
// saturation exactly as a single-class satisfiability query would be.
func (e *Engine) IsConsistent(ctx context.Context) (bool, error) {
	b, cancel := e.newBudget(ctx)
	defer cancel()

	g := newGraph()
	nodes := make(map[string]nodeID)

	nodeFor := func(ind ontology.Entity) nodeID {
		label := ind.IRI.String()
		if id, ok := nodes[label]; ok {
			return id
		}
		n := g.newNode(noParent, label)
		addConcept(n, ontology.Top)
		nodes[label] = n.id
		return n.id
	}

	for _, raw := range e.ont.AxiomsOf(ontology.KindClassAssertion) {
		ax := raw.(ontology.ClassAssertionAxiom)
		id := nodeFor(ax.Individual)
		addConcept(g.node(id), ax.Class)
	}
	for _, raw := range e.ont.AxiomsOf(ontology.KindObjectPropertyAssertion) {
		ax := raw.(ontology.ObjectPropertyAssertionAxiom)
		src := nodeFor(ax.Subject)
		dst := nodeFor(ax.Object)
		addEdge(g, src, dst, ax.Property)
	}
	// DifferentIndividuals: each listed individual carries its own nominal
	// and the complement of every other one's, so any later merge of two
	// of them puts {b} and ¬{b} on one node — a clash.
	for _, raw := range e.ont.AxiomsOf(ontology.KindDifferentIndividuals) {
		ax := raw.(ontology.DifferentIndividualsAxiom)
		for i, ind := range ax.Individuals {
			n := g.node(nodeFor(ind))
			addConcept(n, ontology.ObjectOneOf{Individuals: []ontology.Entity{ind}})
			for j, other := range ax.Individuals {
				if i != j {
					addConcept(n, ontology.ObjectComplementOf{Of: ontology.ObjectOneOf{Individuals: []ontology.Entity{other}}})
				}
			}
		}
	}
	// SameIndividual assertions are realised as an up-front merge so the
	// tableau's functional-property forcing and cardinality counting see
	// one representative node per equivalence class.
	for _, raw := range e.ont.AxiomsOf(ontology.KindSameIndividual) {
		ax := raw.(ontology.SameIndividualAxiom)
		if len(ax.Individuals) == 0 {
			continue
		}
		target := nodeFor(ax.Individuals[0])
		for _, ind := range ax.Individuals[1:] {
			mergeNodes(g, nodeFor(ind), target)
		}
	}

	if len(g.nodes) == 0 {
		return true, nil
	}

	op := "IsConsistent"
	return e.satisfiable(g, b, op)
}

// IsSubclassOf decides SubClassOf(sub, super) by the structural shortcuts
// of spec.md §4.1 before falling back to the tableau: reflexivity, a
// directly asserted SubClassOf edge, reachability over the asserted
// subsumption graph, and explicit EquivalentClasses membership. Only when
// none of those settle it does it ask the tableau whether
// sub ⊓ ¬super is unsatisfiable.
func (e *Engine) IsSubclassOf(ctx context.Context, sub, super ontology.ClassExpression) (bool, error) {
	subKey, superKey := ontology.ClassExpressionKey(sub), ontology.ClassExpressionKey(super)
	if subKey == superKey {
		return true, nil
	}
	if atomic, ok := ontology.AsAtomic(super); ok && atomic.IRI == ontology.OWLThing {
		return true, nil
	}
	if atomic, ok := ontology.AsAtomic(sub); ok && atomic.IRI == ontology.OWLNothing {
		return true, nil
	}

	if e.reachableViaAssertedSubsumption(subKey, superKey) {
		return true, nil
	}
	if e.equivalentByAxiom(subKey, superKey) {
		return true, nil
	}

	complement := ontology.ObjectComplementOf{Of: super}
	conj, _ := ontology.NewObjectIntersectionOf(sub, complement)
	sat, err := e.IsClassSatisfiable(ctx, conj)
	if err != nil {
		return false, err
	}
	return !sat, nil
}

// reachableViaAssertedSubsumption does a BFS over e.subClassOf, the
// asserted-and-GCI-reduced subsumption edges built in buildIndices, so
// that cases entailed purely by transitive asserted SubClassOf chains
// never need a tableau call.
func (e *Engine) reachableViaAssertedSubsumption(fromKey, toKey string) bool {
	visited := map[string]bool{fromKey: true}
	queue := []string{fromKey}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, next := range e.subClassOf[cur] {
			nextKey := ontology.ClassExpressionKey(next)
			if nextKey == toKey {
				return true
			}
			if !visited[nextKey] {
				visited[nextKey] = true
				queue = append(queue, nextKey)
			}
		}
	}
	return false
}

func (e *Engine) equivalentByAxiom(aKey, bKey string) bool {
	for _, raw := range e.ont.EquivalentClassesAxioms() {
		hasA, hasB := false, false
		for _, ce := range raw.Classes {
			key := ontology.ClassExpressionKey(ce)
			if key == aKey {
				hasA = true
			}
			if key == bKey {
				hasB = true
			}
		}
		if hasA && hasB {
			return true
		}
	}
	return false
}

// AreDisjointClasses decides DisjointClasses(a, b): the asserted-pairs
// shortcut of spec.md §4.1 first, then falling back to testing
// a ⊓ b for unsatisfiability.
func (e *Engine) AreDisjointClasses(ctx context.Context, a, b ontology.ClassExpression) (bool, error) {
	aKey, bKey := ontology.ClassExpressionKey(a), ontology.ClassExpressionKey(b)
	for _, pair := range e.disjointPairs {
		if (pair[0] == aKey && pair[1] == bKey) || (pair[0] == bKey && pair[1] == aKey) {
			return true, nil
		}
	}
	conj, err := ontology.NewObjectIntersectionOf(a, b)
	if err != nil {
		return false, nil
	}
	sat, err := e.IsClassSatisfiable(ctx, conj)
	if err != nil {
		return false, err
	}
	return !sat, nil
}
