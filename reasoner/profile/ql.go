package profile

import "github.com/nodeadmin/owl2-reasoner/ontology"

// validateQL enforces the OWL2 QL profile, grounded on
// original_source/owl2-reasoner/src/profiles/ql/optimization.rs: no
// transitive, asymmetric, or irreflexive object properties (QL requires
// role hierarchies stay first-order rewritable into SQL, which
// transitivity breaks), no property chains, subclass expressions
// restricted to atomic classes and existential-over-atomic, superclass
// expressions restricted to those plus intersections of them and the
// complement of an atomic class (no union or cardinality on either side
// of SubClassOf). EquivalentClasses axioms are not checked.
func validateQL(ont *ontology.Ontology, idx *indexes, r *Result) {
	for _, raw := range ont.AxiomsOf(ontology.KindTransitiveObjectProperty) {
		pe, _ := ontology.PropertyOf(raw)
		var entities []ontology.IRI
		appendProperty(&entities, pe)
		r.addError(ViolationTransitiveProperty, "QL profile forbids TransitiveObjectProperty", entities...)
	}
	for _, raw := range ont.AxiomsOf(ontology.KindAsymmetricObjectProperty) {
		pe, _ := ontology.PropertyOf(raw)
		var entities []ontology.IRI
		appendProperty(&entities, pe)
		r.addError(ViolationAsymmetricProperty, "QL profile forbids AsymmetricObjectProperty", entities...)
	}
	for _, raw := range ont.AxiomsOf(ontology.KindIrreflexiveObjectProperty) {
		pe, _ := ontology.PropertyOf(raw)
		var entities []ontology.IRI
		appendProperty(&entities, pe)
		r.addError(ViolationIrreflexiveProperty, "QL profile forbids IrreflexiveObjectProperty", entities...)
	}
	for _, raw := range ont.AxiomsOf(ontology.KindSubObjectPropertyOf) {
		ax := raw.(ontology.SubObjectPropertyOfAxiom)
		if len(ax.Chain) > 1 {
			var entities []ontology.IRI
			for _, p := range ax.Chain {
				appendProperty(&entities, p)
			}
			appendProperty(&entities, ax.Super)
			r.addError(ViolationPropertyChainAxiom, "QL profile forbids property chain axioms", entities...)
		}
	}
	for _, ax := range ont.SubClassOfAxioms() {
		checkQLSubclassExpression(ax.Sub, r)
		checkQLSuperclassExpression(ax.Super, r)
	}
}

// checkQLSubclassExpression validates the left-hand side of a SubClassOf
// axiom: QL allows an atomic class or an existential restriction to an
// atomic class (∃R.C or ∃R.⊤), nothing more complex.
func checkQLSubclassExpression(ce ontology.ClassExpression, r *Result) {
	switch c := ce.(type) {
	case ontology.AtomicClass:
	case ontology.ObjectSomeValuesFrom:
		if _, ok := ontology.AsAtomic(c.Filler); !ok {
			r.addError(ViolationComplexClassExpression, "QL profile restricts ∃R.C to atomic or ⊤ fillers", entitiesOf(c)...)
		}
	default:
		r.addError(ViolationComplexClassExpression, "QL profile restricts SubClassOf's left side to atomic classes or simple existentials", entitiesOf(ce)...)
	}
}

// checkQLSuperclassExpression validates the right-hand side: QL allows
// intersections of atomic classes/existentials and negation of an atomic
// class (to express disjointness), but nothing else.
func checkQLSuperclassExpression(ce ontology.ClassExpression, r *Result) {
	switch c := ce.(type) {
	case ontology.AtomicClass:
	case ontology.ObjectSomeValuesFrom:
		if _, ok := ontology.AsAtomic(c.Filler); !ok {
			r.addError(ViolationComplexClassExpression, "QL profile restricts ∃R.C to atomic or ⊤ fillers", entitiesOf(c)...)
		}
	case ontology.ObjectComplementOf:
		if _, ok := ontology.AsAtomic(c.Of); !ok {
			r.addError(ViolationComplexClassExpression, "QL profile restricts ¬C to an atomic class", entitiesOf(c)...)
		}
	case ontology.ObjectIntersectionOf:
		for _, op := range c.Operands {
			checkQLSuperclassExpression(op, r)
		}
	default:
		r.addError(ViolationComplexClassExpression, "QL profile forbids this construct on SubClassOf's right side", entitiesOf(ce)...)
	}
}
