package elsaturation

import (
	"github.com/nodeadmin/owl2-reasoner/ontology"
)

// Normalize converts the EL-profile fragment of ont into a SymbolTable and
// AxiomStore suitable for completion-rule saturation (Saturate/SaturateParallel).
// It is a faster alternative to the tableau for ontologies that validate
// under profile.ProfileEL: EL's restricted syntax (no union, no complement,
// no universal restriction, no cardinality beyond existential) is exactly
// the fragment the six normal forms below can express, so callers should
// check profile.Validate(ont, profile.ProfileEL).IsValid before relying on
// this path — Normalize silently drops anything outside the fragment rather
// than erroring, since a non-EL axiom simply contributes nothing to the
// saturation-only classification it feeds.
func Normalize(ont *ontology.Ontology) (*SymbolTable, *AxiomStore) {
	st := NewSymbolTable()

	for _, e := range ont.Classes() {
		st.InternConcept(e.IRI.String())
	}
	for _, raw := range ont.AllAxioms() {
		internAxiomSymbols(st, raw)
	}

	store := NewAxiomStore(st)
	store.Grow(st.ConceptCount())
	store.GrowRoles(st.RoleCount())

	for _, raw := range ont.SubClassOfAxioms() {
		normalizeSubClassOf(st, store, raw.Sub, raw.Super)
	}
	for _, raw := range ont.EquivalentClassesAxioms() {
		for i := 0; i < len(raw.Classes); i++ {
			for j := 0; j < len(raw.Classes); j++ {
				if i != j {
					normalizeSubClassOf(st, store, raw.Classes[i], raw.Classes[j])
				}
			}
		}
	}
	for _, raw := range ont.SubObjectPropertyOfAxioms() {
		normalizeRoleAxiom(st, store, raw)
	}
	for _, raw := range ont.AllAxioms() {
		switch raw.Kind() {
		case ontology.KindTransitiveObjectProperty, ontology.KindReflexiveObjectProperty:
			p, ok := ontology.PropertyOf(raw)
			if !ok {
				continue
			}
			role := st.InternRole(ontology.PropertyExpressionKey(p))
			if raw.Kind() == ontology.KindTransitiveObjectProperty {
				store.SetTransitive(role)
			} else {
				store.SetReflexive(role)
			}
		}
	}

	return st, store
}

// internAxiomSymbols walks every class/property expression an axiom
// mentions so SymbolTable has an ID ready before normalization assigns
// normal-form entries against it.
func internAxiomSymbols(st *SymbolTable, raw ontology.Axiom) {
	switch ax := raw.(type) {
	case ontology.SubClassOfAxiom:
		internClassExpr(st, ax.Sub)
		internClassExpr(st, ax.Super)
	case ontology.EquivalentClassesAxiom:
		for _, c := range ax.Classes {
			internClassExpr(st, c)
		}
	case ontology.SubObjectPropertyOfAxiom:
		for _, p := range ax.Chain {
			internPropertyExpr(st, p)
		}
		internPropertyExpr(st, ax.Super)
	default:
		if p, ok := ontology.PropertyOf(raw); ok {
			internPropertyExpr(st, p)
		}
	}
}

func internClassExpr(st *SymbolTable, ce ontology.ClassExpression) {
	ontology.WalkClassExpression(ce, func(sub ontology.ClassExpression) {
		if atomic, ok := ontology.AsAtomic(sub); ok {
			st.InternConcept(atomic.IRI.String())
		}
		if some, ok := sub.(ontology.ObjectSomeValuesFrom); ok {
			internPropertyExpr(st, some.Property)
		}
	})
}

func internPropertyExpr(st *SymbolTable, p ontology.PropertyExpression) {
	st.InternRole(ontology.PropertyExpressionKey(p))
}

// normalizeSubClassOf classifies sub ⊑ super into one of NF1-NF4, dropping
// the axiom if either side falls outside the EL fragment those normal
// forms can express.
func normalizeSubClassOf(st *SymbolTable, store *AxiomStore, sub, super ontology.ClassExpression) {
	if existential, ok := super.(ontology.ObjectSomeValuesFrom); ok {
		// NF3: A ⊑ ∃R.B
		subAtomic, ok := ontology.AsAtomic(sub)
		fillerAtomic, fok := ontology.AsAtomic(existential.Filler)
		if !ok || !fok {
			return
		}
		store.AddExistRight(
			st.InternConcept(subAtomic.IRI.String()),
			st.InternRole(ontology.PropertyExpressionKey(existential.Property)),
			st.InternConcept(fillerAtomic.IRI.String()),
		)
		return
	}

	if existential, ok := sub.(ontology.ObjectSomeValuesFrom); ok {
		// NF4: ∃R.A ⊑ B
		superAtomic, ok := ontology.AsAtomic(super)
		fillerAtomic, fok := ontology.AsAtomic(existential.Filler)
		if !ok || !fok {
			return
		}
		store.AddExistLeft(
			st.InternRole(ontology.PropertyExpressionKey(existential.Property)),
			st.InternConcept(fillerAtomic.IRI.String()),
			st.InternConcept(superAtomic.IRI.String()),
		)
		return
	}

	superAtomic, sok := ontology.AsAtomic(super)
	if !sok {
		return
	}
	if inter, ok := sub.(ontology.ObjectIntersectionOf); ok && len(inter.Operands) == 2 {
		// NF2: A1 ⊓ A2 ⊑ B
		left1, ok1 := ontology.AsAtomic(inter.Operands[0])
		left2, ok2 := ontology.AsAtomic(inter.Operands[1])
		if !ok1 || !ok2 {
			return
		}
		store.AddConjunction(
			st.InternConcept(left1.IRI.String()),
			st.InternConcept(left2.IRI.String()),
			st.InternConcept(superAtomic.IRI.String()),
		)
		return
	}

	if subAtomic, ok := ontology.AsAtomic(sub); ok {
		// NF1: A ⊑ B
		store.AddSubsumption(
			st.InternConcept(subAtomic.IRI.String()),
			st.InternConcept(superAtomic.IRI.String()),
		)
	}
}

// normalizeRoleAxiom handles simple role subsumption (NF5) and the binary
// property chains (NF6) the completion rules support; chains of length
// other than 2 fall outside the fragment and are dropped.
func normalizeRoleAxiom(st *SymbolTable, store *AxiomStore, ax ontology.SubObjectPropertyOfAxiom) {
	superID := st.InternRole(ontology.PropertyExpressionKey(ax.Super))
	switch len(ax.Chain) {
	case 1:
		store.AddRoleSub(st.InternRole(ontology.PropertyExpressionKey(ax.Chain[0])), superID)
	case 2:
		store.AddRoleChain(
			st.InternRole(ontology.PropertyExpressionKey(ax.Chain[0])),
			st.InternRole(ontology.PropertyExpressionKey(ax.Chain[1])),
			superID,
		)
	}
}
