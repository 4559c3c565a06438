package profile

import "github.com/nodeadmin/owl2-reasoner/ontology"

// validateRL enforces the OWL2 RL profile, grounded on
// original_source/owl2-reasoner/src/profiles/rl/validator.rs: no
// nominals (ObjectOneOf/DataOneOf), no ObjectComplementOf on the
// superclass side of an axiom, no ObjectHasSelf, and class-expression
// nesting restricted by position — RL's rule-based forward-chaining
// semantics require subclass expressions stay existential/intersection
// only and superclass expressions allow universal restriction and
// cardinality limited to {0,1}.
func validateRL(ont *ontology.Ontology, idx *indexes, r *Result) {
	for _, ax := range ont.SubClassOfAxioms() {
		checkRLSubclassExpression(ax.Sub, r)
		checkRLSuperclassExpression(ax.Super, r)
	}
	for _, ax := range ont.EquivalentClassesAxioms() {
		for _, ce := range ax.Classes {
			checkRLSubclassExpression(ce, r)
		}
	}
}

func checkRLSubclassExpression(ce ontology.ClassExpression, r *Result) {
	switch c := ce.(type) {
	case ontology.AtomicClass:
	case ontology.ObjectIntersectionOf:
		for _, op := range c.Operands {
			checkRLSubclassExpression(op, r)
		}
	case ontology.ObjectSomeValuesFrom:
		checkRLSubclassExpression(c.Filler, r)
	case ontology.ObjectHasValue:
	case ontology.ObjectOneOf:
		r.addError(ViolationNominal, "RL profile forbids ObjectOneOf (nominals)", entitiesOf(c)...)
	case ontology.ObjectHasSelf:
		r.addError(ViolationObjectHasSelf, "RL profile forbids ObjectHasSelf", entitiesOf(c)...)
	default:
		r.addError(ViolationUnsupportedConstruct, "RL profile forbids this construct on SubClassOf's left side", entitiesOf(ce)...)
	}
}

func checkRLSuperclassExpression(ce ontology.ClassExpression, r *Result) {
	switch c := ce.(type) {
	case ontology.AtomicClass:
	case ontology.ObjectIntersectionOf:
		for _, op := range c.Operands {
			checkRLSuperclassExpression(op, r)
		}
	case ontology.ObjectAllValuesFrom:
		checkRLSuperclassExpression(c.Filler, r)
	case ontology.ObjectHasValue:
	case ontology.ObjectCardinality:
		if c.N > 1 {
			r.addError(ViolationComplexCardinalityRestriction, "RL profile restricts cardinality restrictions to 0 or 1", entitiesOf(c)...)
		}
	case ontology.ObjectComplementOf:
		r.addError(ViolationObjectComplementOf, "RL profile forbids ObjectComplementOf on SubClassOf's right side", entitiesOf(c)...)
	case ontology.ObjectOneOf:
		r.addError(ViolationObjectOneOf, "RL profile forbids ObjectOneOf (nominals) on SubClassOf's right side", entitiesOf(c)...)
	case ontology.ObjectHasSelf:
		r.addError(ViolationObjectHasSelf, "RL profile forbids ObjectHasSelf", entitiesOf(c)...)
	default:
		r.addError(ViolationUnsupportedConstruct, "RL profile forbids this construct on SubClassOf's right side", entitiesOf(ce)...)
	}
}
