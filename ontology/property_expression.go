package ontology

// PropertyExpression is a tagged sum over named object properties and
// inverse-of expressions. It is a sealed interface (the unexported
// isPropertyExpression method), so no other package can add variants, per
// spec.md §9's "dynamic dispatch over class-expression variants → tagged
// sum" design note. Go does not check switches over its variants for
// exhaustiveness; propKey ends in a default case that panics instead.
type PropertyExpression interface {
	isPropertyExpression()
	// Named returns the underlying named property and true, or the zero
	// Entity and false if this expression is an InverseOf chain.
	Named() (Entity, bool)
}

// NamedProperty wraps a declared object property by IRI.
type NamedProperty struct {
	Property Entity
}

func (NamedProperty) isPropertyExpression() {}
func (p NamedProperty) Named() (Entity, bool) { return p.Property, true }

// InverseOf wraps another property expression. It is structurally
// recursive (InverseOf(InverseOf(R))) but spec.md §3 notes this nests at
// most once in practice; Invert() below collapses a double inverse.
type InverseOf struct {
	Of PropertyExpression
}

func (InverseOf) isPropertyExpression() {}
func (InverseOf) Named() (Entity, bool) { return Entity{}, false }

// Invert returns the property expression denoting the inverse of p,
// collapsing InverseOf(InverseOf(R)) to R rather than growing unboundedly.
func Invert(p PropertyExpression) PropertyExpression {
	if inv, ok := p.(InverseOf); ok {
		return inv.Of
	}
	return InverseOf{Of: p}
}

// DataPropertyExpression is always a named data property: OWL2 does not
// permit inverse data properties.
type DataPropertyExpression struct {
	Property Entity
}
