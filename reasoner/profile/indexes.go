package profile

import "github.com/nodeadmin/owl2-reasoner/ontology"

// indexes precomputes per-ontology facts every profile check needs, so
// EL/QL/RL validation share one ontology walk instead of three —
// generalizing ProfileIndexes::analyze_ontology from
// original_source/owl2-reasoner/src/profiles/common.rs.
type indexes struct {
	totalAxioms      int
	transitiveRoles  map[string]bool
	asymmetricRoles  map[string]bool
	irreflexiveRoles map[string]bool
	functionalRoles  map[string]bool
}

func analyzeOntology(ont *ontology.Ontology) *indexes {
	idx := &indexes{
		transitiveRoles:  make(map[string]bool),
		asymmetricRoles:  make(map[string]bool),
		irreflexiveRoles: make(map[string]bool),
		functionalRoles:  make(map[string]bool),
	}
	idx.totalAxioms = len(ont.AllAxioms())
	for _, raw := range ont.AxiomsOf(ontology.KindTransitiveObjectProperty) {
		if p, ok := ontology.PropertyOf(raw); ok {
			idx.transitiveRoles[ontology.PropertyExpressionKey(p)] = true
		}
	}
	for _, raw := range ont.AxiomsOf(ontology.KindAsymmetricObjectProperty) {
		if p, ok := ontology.PropertyOf(raw); ok {
			idx.asymmetricRoles[ontology.PropertyExpressionKey(p)] = true
		}
	}
	for _, raw := range ont.AxiomsOf(ontology.KindIrreflexiveObjectProperty) {
		if p, ok := ontology.PropertyOf(raw); ok {
			idx.irreflexiveRoles[ontology.PropertyExpressionKey(p)] = true
		}
	}
	for _, raw := range ont.AxiomsOf(ontology.KindFunctionalObjectProperty) {
		if p, ok := ontology.PropertyOf(raw); ok {
			idx.functionalRoles[ontology.PropertyExpressionKey(p)] = true
		}
	}
	return idx
}
