package classify

import (
	"github.com/nodeadmin/owl2-reasoner/ontology"
	"github.com/nodeadmin/owl2-reasoner/reasoner/elsaturation"
)

// FromELSaturation adapts the output of elsaturation.ClassifyEL into a
// ClassHierarchy. It skips the tableau-backed phases 3 and 4 (derived
// equivalence and disjointness): EL's completion rules already saturate
// every subsumption the fragment entails, so there is nothing left for a
// pairwise tableau query to add beyond what BuildTaxonomy's direct-parent
// edges already encode. Explicit DisjointClasses axioms are folded in
// directly from ont so phase 5's integrity check still has something to
// verify against.
func FromELSaturation(ont *ontology.Ontology, hierarchy *elsaturation.ClassifiedHierarchy) (*ClassHierarchy, error) {
	h := &ClassHierarchy{
		direct:   make(map[string]map[string]struct{}),
		super:    make(map[string]map[string]struct{}),
		sub:      make(map[string]map[string]struct{}),
		equiv:    make(map[string]map[string]struct{}),
		disjoint: make(map[string]map[string]struct{}),
	}
	ensure := func(iri string) {
		if h.direct[iri] == nil {
			h.allClasses = append(h.allClasses, iri)
			h.direct[iri] = newStringSet()
			h.super[iri] = newStringSet()
			h.sub[iri] = newStringSet()
			h.equiv[iri] = newStringSet()
			h.disjoint[iri] = newStringSet()
		}
	}

	for _, cc := range hierarchy.Concepts {
		ensure(cc.ID)
		for _, p := range cc.DirectParents {
			ensure(p)
			h.direct[cc.ID][p] = struct{}{}
		}
	}

	for _, ax := range ont.DisjointClassesAxioms() {
		iris := make([]string, 0, len(ax.Classes))
		for _, ce := range ax.Classes {
			if iri, ok := classIRIOf(ce); ok {
				ensure(iri)
				iris = append(iris, iri)
			}
		}
		for i := range iris {
			for j := range iris {
				if i != j {
					h.disjoint[iris[i]][iris[j]] = struct{}{}
				}
			}
		}
	}

	for _, iri := range h.allClasses {
		visited := map[string]bool{iri: true}
		queue := []string{iri}
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			for next := range h.direct[cur] {
				if visited[next] {
					continue
				}
				visited[next] = true
				h.super[iri][next] = struct{}{}
				queue = append(queue, next)
			}
		}
	}
	for sub, supers := range h.super {
		for sup := range supers {
			h.sub[sup][sub] = struct{}{}
		}
	}

	// Mutual reachability in the direct-edge graph means two classes sit
	// in the same strongly-connected component — the EL fragment's only
	// way to entail equivalence without an explicit EquivalentClasses
	// axiom (e.g. spec scenario S4: SubClassOf(A,B) + SubClassOf(B,A)).
	// The tableau's phase 3 derives this via pairwise subsumption
	// queries; here it falls straight out of h.super, since saturation
	// has already closed the graph transitively.
	for a, supers := range h.super {
		for b := range supers {
			if _, ok := h.super[b][a]; ok {
				h.equiv[a][b] = struct{}{}
				h.equiv[b][a] = struct{}{}
			}
		}
	}

	if err := (&Classifier{}).phase5Integrity(h); err != nil {
		return nil, err
	}
	return h, nil
}
