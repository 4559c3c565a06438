package ontology

import "github.com/google/uuid"

// EntityKind tags the six OWL2 entity categories.
type EntityKind uint8

const (
	EntityClass EntityKind = iota
	EntityObjectProperty
	EntityDataProperty
	EntityAnnotationProperty
	EntityNamedIndividual
	EntityAnonymousIndividual
)

func (k EntityKind) String() string {
	switch k {
	case EntityClass:
		return "Class"
	case EntityObjectProperty:
		return "ObjectProperty"
	case EntityDataProperty:
		return "DataProperty"
	case EntityAnnotationProperty:
		return "AnnotationProperty"
	case EntityNamedIndividual:
		return "NamedIndividual"
	case EntityAnonymousIndividual:
		return "AnonymousIndividual"
	default:
		return "UnknownEntity"
	}
}

// Entity is a value type: a class, property, or individual reference.
// Equality is IRI equality (two Entities of the same kind with the same
// interned IRI are ==).
type Entity struct {
	Kind EntityKind
	IRI  IRI // for AnonymousIndividual, this wraps a generated blank-node IRI
}

// NewClass, NewObjectProperty, ... construct entities of each kind.
func NewClass(iri IRI) Entity              { return Entity{Kind: EntityClass, IRI: iri} }
func NewObjectProperty(iri IRI) Entity      { return Entity{Kind: EntityObjectProperty, IRI: iri} }
func NewDataProperty(iri IRI) Entity        { return Entity{Kind: EntityDataProperty, IRI: iri} }
func NewAnnotationProperty(iri IRI) Entity  { return Entity{Kind: EntityAnnotationProperty, IRI: iri} }
func NewNamedIndividual(iri IRI) Entity     { return Entity{Kind: EntityNamedIndividual, IRI: iri} }

// NewAnonymousIndividual mints a fresh blank-node entity. The blank-node
// label is a UUID rather than a sequential counter so that individuals
// from independently loaded ontologies never collide once interned
// through the shared IRI interner (spec.md §6's "same interner" rule).
func NewAnonymousIndividual() Entity {
	label := "_:b" + uuid.New().String()
	return Entity{Kind: EntityAnonymousIndividual, IRI: MustIRI(label)}
}

// TopEntity and BottomEntity are the implicit universal and empty classes,
// declarable like any other Entity. See Top/Bottom in class_expression.go
// for the ClassExpression forms used throughout the tableau and profile
// validator.
var (
	TopEntity    = NewClass(OWLThing)
	BottomEntity = NewClass(OWLNothing)
)
