package ontology

import "fmt"

// ClassExpression is a tagged sum over every OWL2 class-expression
// constructor in spec.md §3. The sealed interface pattern (unexported
// isClassExpression method) keeps other packages from adding variants.
// Go does not check type switches over its variants for exhaustiveness,
// so the switches that must cover every variant (WalkClassExpression,
// ceKey) end in a default case that panics on an unhandled type.
type ClassExpression interface {
	isClassExpression()
}

// AtomicClass is a named class, referenced by IRI.
type AtomicClass struct {
	IRI IRI
}

func (AtomicClass) isClassExpression() {}

// AsAtomic returns the underlying AtomicClass and true if ce names one.
func AsAtomic(ce ClassExpression) (AtomicClass, bool) {
	a, ok := ce.(AtomicClass)
	return a, ok
}

// Top and Bottom are the class-expression forms of owl:Thing and
// owl:Nothing — the universal and empty concepts every completion graph
// node and profile check compares against. Distinct from the
// TopEntity/BottomEntity values in entity.go (which name the class as a
// declarable entity); these are the AtomicClass wrapping the same IRIs,
// for use wherever a ClassExpression is expected.
var (
	Top    ClassExpression = AtomicClass{IRI: OWLThing}
	Bottom ClassExpression = AtomicClass{IRI: OWLNothing}
)

// ObjectIntersectionOf requires at least two operands per spec.md §3's
// invariant.
type ObjectIntersectionOf struct {
	Operands []ClassExpression
}

func (ObjectIntersectionOf) isClassExpression() {}

// ObjectUnionOf requires at least two operands.
type ObjectUnionOf struct {
	Operands []ClassExpression
}

func (ObjectUnionOf) isClassExpression() {}

// ObjectComplementOf negates a single class expression.
type ObjectComplementOf struct {
	Of ClassExpression
}

func (ObjectComplementOf) isClassExpression() {}

// ObjectSomeValuesFrom is the existential restriction ∃R.C.
type ObjectSomeValuesFrom struct {
	Property PropertyExpression
	Filler   ClassExpression
}

func (ObjectSomeValuesFrom) isClassExpression() {}

// ObjectAllValuesFrom is the universal restriction ∀R.C.
type ObjectAllValuesFrom struct {
	Property PropertyExpression
	Filler   ClassExpression
}

func (ObjectAllValuesFrom) isClassExpression() {}

// ObjectHasValue restricts R to a specific individual filler.
type ObjectHasValue struct {
	Property   PropertyExpression
	Individual Entity
}

func (ObjectHasValue) isClassExpression() {}

// CardinalityKind distinguishes min/max/exact number restrictions.
type CardinalityKind uint8

const (
	CardinalityMin CardinalityKind = iota
	CardinalityMax
	CardinalityExact
)

// ObjectCardinality is a (qualified or unqualified) number restriction on
// a property. Filler is nil for the unqualified form (⩾n R / ⩽n R / =n R).
// N must fit in 32 bits per spec.md §3's invariant.
type ObjectCardinality struct {
	Kind     CardinalityKind
	N        uint32
	Property PropertyExpression
	Filler   ClassExpression // may be nil
}

func (ObjectCardinality) isClassExpression() {}

// ObjectHasSelf is the ∃R.Self restriction.
type ObjectHasSelf struct {
	Property PropertyExpression
}

func (ObjectHasSelf) isClassExpression() {}

// ObjectOneOf is a nominal: the class containing exactly the listed
// individuals.
type ObjectOneOf struct {
	Individuals []Entity
}

func (ObjectOneOf) isClassExpression() {}

// --- Data-property analogues ---

// DataSomeValuesFrom is ∃D.range for a data property D.
type DataSomeValuesFrom struct {
	Property DataPropertyExpression
	Range    DataRange
}

func (DataSomeValuesFrom) isClassExpression() {}

// DataAllValuesFrom is ∀D.range for a data property D.
type DataAllValuesFrom struct {
	Property DataPropertyExpression
	Range    DataRange
}

func (DataAllValuesFrom) isClassExpression() {}

// DataHasValue restricts D to a specific literal.
type DataHasValue struct {
	Property DataPropertyExpression
	Value    Literal
}

func (DataHasValue) isClassExpression() {}

// DataCardinality is a number restriction on a data property.
type DataCardinality struct {
	Kind     CardinalityKind
	N        uint32
	Property DataPropertyExpression
	Range    DataRange // may be nil (unqualified)
}

func (DataCardinality) isClassExpression() {}

// NewObjectIntersectionOf validates the two-or-more-operand invariant.
func NewObjectIntersectionOf(operands ...ClassExpression) (ClassExpression, error) {
	if len(operands) < 2 {
		return nil, fmt.Errorf("ontology: ObjectIntersectionOf requires at least two operands, got %d", len(operands))
	}
	return ObjectIntersectionOf{Operands: operands}, nil
}

// NewObjectUnionOf validates the two-or-more-operand invariant.
func NewObjectUnionOf(operands ...ClassExpression) (ClassExpression, error) {
	if len(operands) < 2 {
		return nil, fmt.Errorf("ontology: ObjectUnionOf requires at least two operands, got %d", len(operands))
	}
	return ObjectUnionOf{Operands: operands}, nil
}

// NewObjectCardinality validates that N fits a non-negative 32-bit range
// (always true for uint32, but this guards future signed-input callers)
// and that Kind is one of the three recognised kinds.
func NewObjectCardinality(kind CardinalityKind, n uint32, prop PropertyExpression, filler ClassExpression) (ClassExpression, error) {
	if kind != CardinalityMin && kind != CardinalityMax && kind != CardinalityExact {
		return nil, fmt.Errorf("ontology: unrecognised cardinality kind %d", kind)
	}
	return ObjectCardinality{Kind: kind, N: n, Property: prop, Filler: filler}, nil
}

// WalkClassExpression calls visit on ce and, recursively, on every
// sub-expression it contains. Every variant must be handled here —
// adding a new ClassExpression constructor without updating this function
// is the one place the "exhaustive pattern matching" discipline must be
// manually maintained, since Go has no compiler-enforced sum types.
func WalkClassExpression(ce ClassExpression, visit func(ClassExpression)) {
	if ce == nil {
		return
	}
	visit(ce)
	switch c := ce.(type) {
	case AtomicClass:
	case ObjectIntersectionOf:
		for _, op := range c.Operands {
			WalkClassExpression(op, visit)
		}
	case ObjectUnionOf:
		for _, op := range c.Operands {
			WalkClassExpression(op, visit)
		}
	case ObjectComplementOf:
		WalkClassExpression(c.Of, visit)
	case ObjectSomeValuesFrom:
		WalkClassExpression(c.Filler, visit)
	case ObjectAllValuesFrom:
		WalkClassExpression(c.Filler, visit)
	case ObjectHasValue:
	case ObjectCardinality:
		if c.Filler != nil {
			WalkClassExpression(c.Filler, visit)
		}
	case ObjectHasSelf:
	case ObjectOneOf:
	case DataSomeValuesFrom:
	case DataAllValuesFrom:
	case DataHasValue:
	case DataCardinality:
	default:
		panic(fmt.Sprintf("ontology: WalkClassExpression: unhandled ClassExpression variant %T", ce))
	}
}

// ContainsClass reports whether ce textually mentions the class named by
// iri anywhere in its structure. The type index (reasoner/cache) does not
// use it: that index files an assertion only under the atomic class it
// names.
func ContainsClass(ce ClassExpression, iri IRI) bool {
	found := false
	WalkClassExpression(ce, func(sub ClassExpression) {
		if a, ok := sub.(AtomicClass); ok && a.IRI == iri {
			found = true
		}
	})
	return found
}
