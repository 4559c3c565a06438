package ontology

import (
	"fmt"
	"sort"
	"strings"
)

// AxiomKind tags the axiom partitions an Ontology indexes by, per
// spec.md §3: "for each axiom kind, an ordered collection of the axioms
// of that kind (this per-kind partition is the primary index and avoids a
// runtime kind-tag dispatch on every traversal)".
type AxiomKind uint8

const (
	KindSubClassOf AxiomKind = iota
	KindEquivalentClasses
	KindDisjointClasses
	KindSubObjectPropertyOf
	KindEquivalentObjectProperties
	KindInverseObjectProperties
	KindObjectPropertyDomain
	KindObjectPropertyRange
	KindTransitiveObjectProperty
	KindSymmetricObjectProperty
	KindAsymmetricObjectProperty
	KindReflexiveObjectProperty
	KindIrreflexiveObjectProperty
	KindFunctionalObjectProperty
	KindInverseFunctionalObjectProperty
	KindClassAssertion
	KindObjectPropertyAssertion
	KindDataPropertyAssertion
	KindSameIndividual
	KindDifferentIndividuals
	KindImport
	numAxiomKinds // sentinel, not a real kind
)

// Axiom is a tagged sum over every axiom form in spec.md §3. Axioms are
// immutable once added to an Ontology.
type Axiom interface {
	isAxiom()
	Kind() AxiomKind
	// structuralKey returns a canonical string uniquely identifying this
	// axiom's logical content, used to reject duplicate axioms within a
	// partition (spec.md §3 invariant (b)).
	structuralKey() string
}

func iriKey(i IRI) string { return i.String() }

// ClassExpressionKey returns a canonical string uniquely identifying ce's
// structural shape, exported for use by reasoner/tableaux and
// reasoner/cache where concept identity must be compared without relying
// on ClassExpression's (partial) Go comparability.
func ClassExpressionKey(ce ClassExpression) string { return ceKey(ce) }

// PropertyExpressionKey is the PropertyExpression analogue of
// ClassExpressionKey.
func PropertyExpressionKey(p PropertyExpression) string { return propKey(p) }

func ceKey(ce ClassExpression) string {
	if ce == nil {
		return "<nil>"
	}
	switch c := ce.(type) {
	case AtomicClass:
		return "C:" + iriKey(c.IRI)
	case ObjectIntersectionOf:
		parts := make([]string, len(c.Operands))
		for i, op := range c.Operands {
			parts[i] = ceKey(op)
		}
		sort.Strings(parts)
		return "AND(" + strings.Join(parts, ",") + ")"
	case ObjectUnionOf:
		parts := make([]string, len(c.Operands))
		for i, op := range c.Operands {
			parts[i] = ceKey(op)
		}
		sort.Strings(parts)
		return "OR(" + strings.Join(parts, ",") + ")"
	case ObjectComplementOf:
		return "NOT(" + ceKey(c.Of) + ")"
	case ObjectSomeValuesFrom:
		return fmt.Sprintf("SOME(%s,%s)", propKey(c.Property), ceKey(c.Filler))
	case ObjectAllValuesFrom:
		return fmt.Sprintf("ALL(%s,%s)", propKey(c.Property), ceKey(c.Filler))
	case ObjectHasValue:
		return fmt.Sprintf("HASVALUE(%s,%s)", propKey(c.Property), iriKey(c.Individual.IRI))
	case ObjectCardinality:
		filler := "<unqualified>"
		if c.Filler != nil {
			filler = ceKey(c.Filler)
		}
		return fmt.Sprintf("CARD(%d,%d,%s,%s)", c.Kind, c.N, propKey(c.Property), filler)
	case ObjectHasSelf:
		return "SELF(" + propKey(c.Property) + ")"
	case ObjectOneOf:
		parts := make([]string, len(c.Individuals))
		for i, ind := range c.Individuals {
			parts[i] = iriKey(ind.IRI)
		}
		sort.Strings(parts)
		return "ONEOF(" + strings.Join(parts, ",") + ")"
	case DataSomeValuesFrom:
		return fmt.Sprintf("DSOME(%s,%v)", iriKey(c.Property.Property.IRI), c.Range)
	case DataAllValuesFrom:
		return fmt.Sprintf("DALL(%s,%v)", iriKey(c.Property.Property.IRI), c.Range)
	case DataHasValue:
		return fmt.Sprintf("DHASVALUE(%s,%s)", iriKey(c.Property.Property.IRI), c.Value.LexicalForm)
	case DataCardinality:
		return fmt.Sprintf("DCARD(%d,%d,%s,%v)", c.Kind, c.N, iriKey(c.Property.Property.IRI), c.Range)
	default:
		panic(fmt.Sprintf("ontology: ceKey: unhandled ClassExpression variant %T", ce))
	}
}

func propKey(p PropertyExpression) string {
	switch pe := p.(type) {
	case NamedProperty:
		return "P:" + iriKey(pe.Property.IRI)
	case InverseOf:
		return "INV(" + propKey(pe.Of) + ")"
	default:
		panic(fmt.Sprintf("ontology: propKey: unhandled PropertyExpression variant %T", p))
	}
}

// --- Class axioms ---

type SubClassOfAxiom struct {
	Sub   ClassExpression
	Super ClassExpression
}

func (SubClassOfAxiom) isAxiom()        {}
func (SubClassOfAxiom) Kind() AxiomKind { return KindSubClassOf }
func (a SubClassOfAxiom) structuralKey() string {
	return "SubClassOf(" + ceKey(a.Sub) + "," + ceKey(a.Super) + ")"
}

type EquivalentClassesAxiom struct {
	Classes []ClassExpression
}

func (EquivalentClassesAxiom) isAxiom()        {}
func (EquivalentClassesAxiom) Kind() AxiomKind { return KindEquivalentClasses }
func (a EquivalentClassesAxiom) structuralKey() string {
	parts := make([]string, len(a.Classes))
	for i, c := range a.Classes {
		parts[i] = ceKey(c)
	}
	sort.Strings(parts)
	return "EquivalentClasses(" + strings.Join(parts, ",") + ")"
}

type DisjointClassesAxiom struct {
	Classes []ClassExpression
}

func (DisjointClassesAxiom) isAxiom()        {}
func (DisjointClassesAxiom) Kind() AxiomKind { return KindDisjointClasses }
func (a DisjointClassesAxiom) structuralKey() string {
	parts := make([]string, len(a.Classes))
	for i, c := range a.Classes {
		parts[i] = ceKey(c)
	}
	sort.Strings(parts)
	return "DisjointClasses(" + strings.Join(parts, ",") + ")"
}

// --- Object property axioms ---

// SubObjectPropertyOfAxiom covers both simple role subsumption (len(Chain)==1)
// and property chains R1 ∘ R2 ∘ ... ⊑ Super (len(Chain)>=2).
type SubObjectPropertyOfAxiom struct {
	Chain []PropertyExpression
	Super PropertyExpression
}

func (SubObjectPropertyOfAxiom) isAxiom()        {}
func (SubObjectPropertyOfAxiom) Kind() AxiomKind { return KindSubObjectPropertyOf }
func (a SubObjectPropertyOfAxiom) structuralKey() string {
	parts := make([]string, len(a.Chain))
	for i, p := range a.Chain {
		parts[i] = propKey(p)
	}
	return "SubObjectPropertyOf(" + strings.Join(parts, "o") + "," + propKey(a.Super) + ")"
}

type EquivalentObjectPropertiesAxiom struct {
	Properties []PropertyExpression
}

func (EquivalentObjectPropertiesAxiom) isAxiom()        {}
func (EquivalentObjectPropertiesAxiom) Kind() AxiomKind { return KindEquivalentObjectProperties }
func (a EquivalentObjectPropertiesAxiom) structuralKey() string {
	parts := make([]string, len(a.Properties))
	for i, p := range a.Properties {
		parts[i] = propKey(p)
	}
	sort.Strings(parts)
	return "EquivalentObjectProperties(" + strings.Join(parts, ",") + ")"
}

type InverseObjectPropertiesAxiom struct {
	First, Second PropertyExpression
}

func (InverseObjectPropertiesAxiom) isAxiom()        {}
func (InverseObjectPropertiesAxiom) Kind() AxiomKind { return KindInverseObjectProperties }
func (a InverseObjectPropertiesAxiom) structuralKey() string {
	keys := []string{propKey(a.First), propKey(a.Second)}
	sort.Strings(keys)
	return "InverseObjectProperties(" + strings.Join(keys, ",") + ")"
}

type ObjectPropertyDomainAxiom struct {
	Property PropertyExpression
	Domain   ClassExpression
}

func (ObjectPropertyDomainAxiom) isAxiom()        {}
func (ObjectPropertyDomainAxiom) Kind() AxiomKind { return KindObjectPropertyDomain }
func (a ObjectPropertyDomainAxiom) structuralKey() string {
	return "ObjectPropertyDomain(" + propKey(a.Property) + "," + ceKey(a.Domain) + ")"
}

type ObjectPropertyRangeAxiom struct {
	Property PropertyExpression
	Range    ClassExpression
}

func (ObjectPropertyRangeAxiom) isAxiom()        {}
func (ObjectPropertyRangeAxiom) Kind() AxiomKind { return KindObjectPropertyRange }
func (a ObjectPropertyRangeAxiom) structuralKey() string {
	return "ObjectPropertyRange(" + propKey(a.Property) + "," + ceKey(a.Range) + ")"
}

// property characteristic axioms share one shape
type propertyCharacteristicAxiom struct {
	kind     AxiomKind
	name     string
	Property PropertyExpression
}

func (propertyCharacteristicAxiom) isAxiom() {}
func (a propertyCharacteristicAxiom) Kind() AxiomKind { return a.kind }
func (a propertyCharacteristicAxiom) structuralKey() string {
	return a.name + "(" + propKey(a.Property) + ")"
}

func TransitiveObjectProperty(p PropertyExpression) Axiom {
	return propertyCharacteristicAxiom{KindTransitiveObjectProperty, "TransitiveObjectProperty", p}
}
func SymmetricObjectProperty(p PropertyExpression) Axiom {
	return propertyCharacteristicAxiom{KindSymmetricObjectProperty, "SymmetricObjectProperty", p}
}
func AsymmetricObjectProperty(p PropertyExpression) Axiom {
	return propertyCharacteristicAxiom{KindAsymmetricObjectProperty, "AsymmetricObjectProperty", p}
}
func ReflexiveObjectProperty(p PropertyExpression) Axiom {
	return propertyCharacteristicAxiom{KindReflexiveObjectProperty, "ReflexiveObjectProperty", p}
}
func IrreflexiveObjectProperty(p PropertyExpression) Axiom {
	return propertyCharacteristicAxiom{KindIrreflexiveObjectProperty, "IrreflexiveObjectProperty", p}
}
func FunctionalObjectProperty(p PropertyExpression) Axiom {
	return propertyCharacteristicAxiom{KindFunctionalObjectProperty, "FunctionalObjectProperty", p}
}
func InverseFunctionalObjectProperty(p PropertyExpression) Axiom {
	return propertyCharacteristicAxiom{KindInverseFunctionalObjectProperty, "InverseFunctionalObjectProperty", p}
}

// PropertyOf extracts the property expression from any of the seven
// property-characteristic axioms (Transitive/Symmetric/Asymmetric/
// Reflexive/Irreflexive/Functional/InverseFunctional), returning ok=false
// for any other axiom kind. Exported so reasoner/tableaux can read these
// axioms without needing the unexported propertyCharacteristicAxiom type.
func PropertyOf(ax Axiom) (PropertyExpression, bool) {
	if pc, ok := ax.(propertyCharacteristicAxiom); ok {
		return pc.Property, true
	}
	return nil, false
}

// --- Assertions ---

type ClassAssertionAxiom struct {
	Individual Entity
	Class      ClassExpression
}

func (ClassAssertionAxiom) isAxiom()        {}
func (ClassAssertionAxiom) Kind() AxiomKind { return KindClassAssertion }
func (a ClassAssertionAxiom) structuralKey() string {
	return "ClassAssertion(" + iriKey(a.Individual.IRI) + "," + ceKey(a.Class) + ")"
}

// ObjectPropertyAssertionAxiom is spec.md's "PropertyAssertion (subject,
// property, object-or-literal)" restricted to the object-property case;
// the literal case is DataPropertyAssertionAxiom below.
type ObjectPropertyAssertionAxiom struct {
	Subject  Entity
	Property PropertyExpression
	Object   Entity
}

func (ObjectPropertyAssertionAxiom) isAxiom()        {}
func (ObjectPropertyAssertionAxiom) Kind() AxiomKind { return KindObjectPropertyAssertion }
func (a ObjectPropertyAssertionAxiom) structuralKey() string {
	return "ObjectPropertyAssertion(" + iriKey(a.Subject.IRI) + "," + propKey(a.Property) + "," + iriKey(a.Object.IRI) + ")"
}

type DataPropertyAssertionAxiom struct {
	Subject  Entity
	Property DataPropertyExpression
	Value    Literal
}

func (DataPropertyAssertionAxiom) isAxiom()        {}
func (DataPropertyAssertionAxiom) Kind() AxiomKind { return KindDataPropertyAssertion }
func (a DataPropertyAssertionAxiom) structuralKey() string {
	return fmt.Sprintf("DataPropertyAssertion(%s,%s,%s)", iriKey(a.Subject.IRI), iriKey(a.Property.Property.IRI), a.Value.LexicalForm)
}

type SameIndividualAxiom struct {
	Individuals []Entity
}

func (SameIndividualAxiom) isAxiom()        {}
func (SameIndividualAxiom) Kind() AxiomKind { return KindSameIndividual }
func (a SameIndividualAxiom) structuralKey() string {
	parts := make([]string, len(a.Individuals))
	for i, ind := range a.Individuals {
		parts[i] = iriKey(ind.IRI)
	}
	sort.Strings(parts)
	return "SameIndividual(" + strings.Join(parts, ",") + ")"
}

type DifferentIndividualsAxiom struct {
	Individuals []Entity
}

func (DifferentIndividualsAxiom) isAxiom()        {}
func (DifferentIndividualsAxiom) Kind() AxiomKind { return KindDifferentIndividuals }
func (a DifferentIndividualsAxiom) structuralKey() string {
	parts := make([]string, len(a.Individuals))
	for i, ind := range a.Individuals {
		parts[i] = iriKey(ind.IRI)
	}
	sort.Strings(parts)
	return "DifferentIndividuals(" + strings.Join(parts, ",") + ")"
}

type ImportAxiom struct {
	IRI IRI
}

func (ImportAxiom) isAxiom()        {}
func (ImportAxiom) Kind() AxiomKind { return KindImport }
func (a ImportAxiom) structuralKey() string {
	return "Import(" + iriKey(a.IRI) + ")"
}
