package profile

import "github.com/nodeadmin/owl2-reasoner/ontology"

// validateEL enforces the OWL2 EL profile's restrictions, grounded on
// original_source/owl2-reasoner/src/profiles/el/optimization.rs: no
// DisjointClasses, no EquivalentClasses over non-atomic expressions, no
// union/complement/universal-restriction/cardinality, object property
// restrictions limited to existential (∃R.C) and self, no
// InverseObjectProperties axioms (an inverse property inside an
// existential restriction is not checked), no functional/inverse-
// functional/symmetric/asymmetric/irreflexive role characteristics
// beyond reflexivity and transitivity (both of which EL does allow), and
// data restrictions limited to DataSomeValuesFrom over a named datatype.
func validateEL(ont *ontology.Ontology, idx *indexes, r *Result) {
	for _, raw := range ont.AxiomsOf(ontology.KindDisjointClasses) {
		ax := raw.(ontology.DisjointClassesAxiom)
		r.addError(ViolationDisjointClassesAxiom, "EL profile forbids DisjointClasses axioms", classesIRIs(ax.Classes)...)
	}
	for _, ax := range ont.EquivalentClassesAxioms() {
		entities := classesIRIs(ax.Classes)
		for _, ce := range ax.Classes {
			if _, ok := ontology.AsAtomic(ce); !ok {
				r.addError(ViolationEquivalentClassesAxiom, "EL profile requires EquivalentClasses operands to be atomic classes", entities...)
			}
		}
	}
	for _, ax := range ont.SubClassOfAxioms() {
		checkELClassExpression(ax.Sub, r)
		checkELClassExpression(ax.Super, r)
	}
	repeatError := func(kind ontology.AxiomKind, msg string) {
		for _, raw := range ont.AxiomsOf(kind) {
			var entities []ontology.IRI
			if pe, ok := ontology.PropertyOf(raw); ok {
				appendProperty(&entities, pe)
			} else if inv, ok := raw.(ontology.InverseObjectPropertiesAxiom); ok {
				appendProperty(&entities, inv.First)
				appendProperty(&entities, inv.Second)
			}
			r.addError(ViolationComplexPropertyRestriction, msg, entities...)
		}
	}
	repeatError(ontology.KindSymmetricObjectProperty, "EL profile forbids SymmetricObjectProperty")
	repeatError(ontology.KindAsymmetricObjectProperty, "EL profile forbids AsymmetricObjectProperty")
	repeatError(ontology.KindIrreflexiveObjectProperty, "EL profile forbids IrreflexiveObjectProperty")
	repeatError(ontology.KindFunctionalObjectProperty, "EL profile forbids FunctionalObjectProperty")
	repeatError(ontology.KindInverseFunctionalObjectProperty, "EL profile forbids InverseFunctionalObjectProperty")
	repeatError(ontology.KindInverseObjectProperties, "EL profile forbids InverseObjectProperties")
}

// checkELClassExpression rejects every class-expression constructor EL
// excludes: union, complement, universal restriction, has-value,
// cardinality (of any kind), and one-of. Intersection and existential
// restriction recurse into their operands/fillers since EL permits
// arbitrary nesting of those two.
func checkELClassExpression(ce ontology.ClassExpression, r *Result) {
	switch c := ce.(type) {
	case ontology.AtomicClass:
	case ontology.ObjectIntersectionOf:
		for _, op := range c.Operands {
			checkELClassExpression(op, r)
		}
	case ontology.ObjectSomeValuesFrom:
		checkELClassExpression(c.Filler, r)
	case ontology.ObjectHasSelf:
	case ontology.ObjectUnionOf:
		r.addError(ViolationComplexClassExpression, "EL profile forbids ObjectUnionOf", entitiesOf(c)...)
	case ontology.ObjectComplementOf:
		r.addError(ViolationComplexClassExpression, "EL profile forbids ObjectComplementOf", entitiesOf(c)...)
	case ontology.ObjectAllValuesFrom:
		r.addError(ViolationComplexClassExpression, "EL profile forbids ObjectAllValuesFrom", entitiesOf(c)...)
	case ontology.ObjectHasValue:
		r.addError(ViolationComplexClassExpression, "EL profile forbids ObjectHasValue", entitiesOf(c)...)
	case ontology.ObjectCardinality:
		r.addError(ViolationComplexCardinalityRestriction, "EL profile forbids object cardinality restrictions", entitiesOf(c)...)
	case ontology.ObjectOneOf:
		r.addError(ViolationNominal, "EL profile forbids ObjectOneOf (nominals)", entitiesOf(c)...)
	case ontology.DataSomeValuesFrom:
		if _, ok := c.Range.(ontology.Datatype); !ok {
			r.addError(ViolationDataPropertyRange, "EL profile restricts data property restrictions to atomic datatypes only", entitiesOf(c)...)
		}
	case ontology.DataAllValuesFrom, ontology.DataHasValue, ontology.DataCardinality:
		r.addError(ViolationDataPropertyRange, "EL profile forbids data universal, has-value and cardinality restrictions", entitiesOf(c)...)
	default:
		r.addError(ViolationUnsupportedConstruct, "EL profile: unrecognized class expression construct", entitiesOf(ce)...)
	}
}
