// Package classify builds the full class hierarchy over an ontology: the
// directed graph of subsumption, equivalence, and disjointness
// relationships every named class participates in. It generalizes the
// teacher's BuildTaxonomy (anusornc-parser-onto/reasoner/taxonomy.go) from
// a single EL-saturation-result transitive reduction into the five-phase
// algorithm spec.md §4.2 describes: direct edges, transitive closure,
// derived equivalence, derived disjointness, and an integrity pass.
package classify

import (
	"github.com/nodeadmin/owl2-reasoner/ontology"
)

// ClassHierarchy is the classified result: for every declared class IRI,
// its computed superclasses, subclasses, equivalents, and disjoints.
// Mirrors the teacher's ClassifiedHierarchy/Taxonomy split (taxonomy.go)
// but keyed by IRI string instead of integer ConceptID, since classify
// operates directly on ontology.Entity rather than a saturation-pass
// symbol table.
type ClassHierarchy struct {
	direct     map[string]map[string]struct{} // asserted + GCI-reduced direct superclass edges
	super      map[string]map[string]struct{} // full transitive closure, excluding self
	sub        map[string]map[string]struct{} // inverse of super
	equiv      map[string]map[string]struct{}
	disjoint   map[string]map[string]struct{}
	allClasses []string
}

// GetAllSuperclasses returns every class that subsumes classIRI,
// transitively, per spec.md §4.2's get_all_superclasses operation.
func (h *ClassHierarchy) GetAllSuperclasses(classIRI string) []string {
	return setToSlice(h.super[classIRI])
}

// GetAllSubclasses returns every class subsumed by classIRI, transitively.
func (h *ClassHierarchy) GetAllSubclasses(classIRI string) []string {
	return setToSlice(h.sub[classIRI])
}

// GetEquivalentClasses returns every class known equivalent to classIRI,
// whether by explicit EquivalentClasses axiom or by mutual subsumption
// derived during classification (spec.md §4.2 phase 3).
func (h *ClassHierarchy) GetEquivalentClasses(classIRI string) []string {
	return setToSlice(h.equiv[classIRI])
}

// GetDisjointClasses returns every class known disjoint from classIRI.
func (h *ClassHierarchy) GetDisjointClasses(classIRI string) []string {
	return setToSlice(h.disjoint[classIRI])
}

// DirectSuperclasses returns only classIRI's immediate (non-transitive)
// superclasses, the edges the hierarchy graph itself stores.
func (h *ClassHierarchy) DirectSuperclasses(classIRI string) []string {
	return setToSlice(h.direct[classIRI])
}

// AllClasses lists every class the hierarchy has an entry for.
func (h *ClassHierarchy) AllClasses() []string {
	out := make([]string, len(h.allClasses))
	copy(out, h.allClasses)
	return out
}

func setToSlice(s map[string]struct{}) []string {
	out := make([]string, 0, len(s))
	for k := range s {
		out = append(out, k)
	}
	return out
}

func newStringSet() map[string]struct{} { return make(map[string]struct{}) }

func classIRIOf(ce ontology.ClassExpression) (string, bool) {
	atomic, ok := ontology.AsAtomic(ce)
	if !ok {
		return "", false
	}
	return atomic.IRI.String(), true
}
