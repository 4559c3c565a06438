package ontology

import (
	"fmt"

	"github.com/nodeadmin/owl2-reasoner/owlerr"
	"go.uber.org/zap"
)

// Ontology is an immutable-once-populated container: an optional ontology
// IRI, a set of import IRIs, a set of entities of each kind, and for each
// axiom kind an ordered collection of axioms of that kind (the primary
// index, per spec.md §3), plus an aggregate "all axioms" view.
//
// Reasoners never mutate an Ontology; all derived data lives in their own
// caches (spec.md §3's lifecycle note). Strict mode, when enabled, rejects
// axioms referencing undeclared entities and duplicate axioms at Add time
// rather than silently accepting them.
type Ontology struct {
	iri     *IRI // nil if unset
	imports []IRI

	entities map[EntityKind]map[IRI]struct{}

	partitions [numAxiomKinds][]Axiom
	seen       [numAxiomKinds]map[string]struct{}

	strict bool
	log    *zap.Logger
}

// Option configures a new Ontology.
type Option func(*Ontology)

// WithStrictMode enables rejection of axioms over undeclared entities and
// duplicate axioms within a partition (spec.md §3 invariants (a) and (b)).
// Strict mode is off by default, matching the teacher's lenient parser
// behaviour (ontology/obo_parser.go never rejects malformed input, it
// just best-effort extracts what it can).
func WithStrictMode() Option { return func(o *Ontology) { o.strict = true } }

// WithLogger attaches a structured logger; callers that don't care pass
// nothing and get a no-op logger.
func WithLogger(l *zap.Logger) Option { return func(o *Ontology) { o.log = l } }

// New constructs an empty ontology.
func New(opts ...Option) *Ontology {
	o := &Ontology{
		entities: make(map[EntityKind]map[IRI]struct{}, 6),
		log:      zap.NewNop(),
	}
	for k := EntityClass; k <= EntityAnonymousIndividual; k++ {
		o.entities[k] = make(map[IRI]struct{})
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// SetIRI sets the ontology IRI. Per spec.md §3 invariant (c) it is stable
// for the lifetime of the ontology: calling this twice is a DataError.
func (o *Ontology) SetIRI(iri IRI) error {
	if o.iri != nil {
		return owlerr.New(owlerr.KindData, "Ontology.SetIRI", fmt.Sprintf("ontology IRI already set to %q", o.iri.String()))
	}
	cp := iri
	o.iri = &cp
	return nil
}

// IRI returns the ontology IRI and whether one is set.
func (o *Ontology) IRI() (IRI, bool) {
	if o.iri == nil {
		return IRI{}, false
	}
	return *o.iri, true
}

// AddImport records an import IRI.
func (o *Ontology) AddImport(iri IRI) {
	o.imports = append(o.imports, iri)
}

// Imports returns the recorded import IRIs.
func (o *Ontology) Imports() []IRI { return append([]IRI(nil), o.imports...) }

// Declare registers an entity. Declaring the same entity twice is a no-op.
func (o *Ontology) Declare(e Entity) {
	o.entities[e.Kind][e.IRI] = struct{}{}
}

// IsDeclared reports whether e has been declared, or is one of the
// implicitly-declared reserved vocabulary terms.
func (o *Ontology) IsDeclared(e Entity) bool {
	if isReservedVocabulary(e.IRI) {
		return true
	}
	_, ok := o.entities[e.Kind][e.IRI]
	return ok
}

// EntitiesOf returns every declared entity of the given kind.
func (o *Ontology) EntitiesOf(kind EntityKind) []Entity {
	m := o.entities[kind]
	out := make([]Entity, 0, len(m))
	for iri := range m {
		out = append(out, Entity{Kind: kind, IRI: iri})
	}
	return out
}

// Classes is a convenience accessor over EntitiesOf(EntityClass).
func (o *Ontology) Classes() []Entity { return o.EntitiesOf(EntityClass) }

// referencedEntities collects every entity an axiom mentions, for strict-mode
// declaration checking.
func referencedEntities(ax Axiom) []Entity {
	var out []Entity
	collectCE := func(ce ClassExpression) {
		WalkClassExpression(ce, func(sub ClassExpression) {
			switch c := sub.(type) {
			case AtomicClass:
				out = append(out, NewClass(c.IRI))
			case ObjectHasValue:
				out = append(out, c.Individual)
			case ObjectOneOf:
				out = append(out, c.Individuals...)
			}
		})
	}
	collectProp := func(p PropertyExpression) {
		if named, ok := p.Named(); ok {
			out = append(out, named)
		}
	}
	switch a := ax.(type) {
	case SubClassOfAxiom:
		collectCE(a.Sub)
		collectCE(a.Super)
	case EquivalentClassesAxiom:
		for _, c := range a.Classes {
			collectCE(c)
		}
	case DisjointClassesAxiom:
		for _, c := range a.Classes {
			collectCE(c)
		}
	case SubObjectPropertyOfAxiom:
		for _, p := range a.Chain {
			collectProp(p)
		}
		collectProp(a.Super)
	case EquivalentObjectPropertiesAxiom:
		for _, p := range a.Properties {
			collectProp(p)
		}
	case InverseObjectPropertiesAxiom:
		collectProp(a.First)
		collectProp(a.Second)
	case ObjectPropertyDomainAxiom:
		collectProp(a.Property)
		collectCE(a.Domain)
	case ObjectPropertyRangeAxiom:
		collectProp(a.Property)
		collectCE(a.Range)
	case propertyCharacteristicAxiom:
		collectProp(a.Property)
	case ClassAssertionAxiom:
		out = append(out, a.Individual)
		collectCE(a.Class)
	case ObjectPropertyAssertionAxiom:
		out = append(out, a.Subject, a.Object)
		collectProp(a.Property)
	case DataPropertyAssertionAxiom:
		out = append(out, a.Subject)
		out = append(out, Entity{Kind: EntityDataProperty, IRI: a.Property.Property.IRI})
	case SameIndividualAxiom:
		out = append(out, a.Individuals...)
	case DifferentIndividualsAxiom:
		out = append(out, a.Individuals...)
	case ImportAxiom:
		// no entity reference
	}
	return out
}

// Add inserts ax into its kind's partition. In strict mode, it returns a
// DataError if ax references an undeclared entity or duplicates an axiom
// already present (structural equality) in that partition.
func (o *Ontology) Add(ax Axiom) error {
	k := ax.Kind()
	if o.seen[k] == nil {
		o.seen[k] = make(map[string]struct{})
	}
	key := ax.structuralKey()

	if o.strict {
		if _, dup := o.seen[k][key]; dup {
			return owlerr.New(owlerr.KindData, "Ontology.Add", fmt.Sprintf("duplicate axiom: %s", key))
		}
		for _, e := range referencedEntities(ax) {
			if !o.IsDeclared(e) {
				return owlerr.New(owlerr.KindData, "Ontology.Add", fmt.Sprintf("undeclared entity %s %q referenced by %s", e.Kind, e.IRI.String(), key))
			}
		}
	} else if _, dup := o.seen[k][key]; dup {
		o.log.Debug("ontology: ignoring duplicate axiom in non-strict mode", zap.String("axiom", key))
		return nil
	}

	o.seen[k][key] = struct{}{}
	o.partitions[k] = append(o.partitions[k], ax)
	return nil
}

// AxiomsOf returns the ordered collection of axioms of the given kind.
func (o *Ontology) AxiomsOf(kind AxiomKind) []Axiom {
	return o.partitions[kind]
}

// AllAxioms returns an aggregate view iterating every partition in kind
// order. It allocates a fresh slice each call by design — reasoners must
// not mutate it, and Ontology itself never exposes a mutable view.
func (o *Ontology) AllAxioms() []Axiom {
	total := 0
	for _, p := range o.partitions {
		total += len(p)
	}
	out := make([]Axiom, 0, total)
	for _, p := range o.partitions {
		out = append(out, p...)
	}
	return out
}

// Typed convenience accessors, mirroring the teacher's per-kind slice
// fields (ontology/model.go's Term.Relationships split by type) but at
// the axiom-partition granularity spec.md §3 calls for.

func (o *Ontology) SubClassOfAxioms() []SubClassOfAxiom {
	raw := o.partitions[KindSubClassOf]
	out := make([]SubClassOfAxiom, len(raw))
	for i, a := range raw {
		out[i] = a.(SubClassOfAxiom)
	}
	return out
}

func (o *Ontology) EquivalentClassesAxioms() []EquivalentClassesAxiom {
	raw := o.partitions[KindEquivalentClasses]
	out := make([]EquivalentClassesAxiom, len(raw))
	for i, a := range raw {
		out[i] = a.(EquivalentClassesAxiom)
	}
	return out
}

func (o *Ontology) DisjointClassesAxioms() []DisjointClassesAxiom {
	raw := o.partitions[KindDisjointClasses]
	out := make([]DisjointClassesAxiom, len(raw))
	for i, a := range raw {
		out[i] = a.(DisjointClassesAxiom)
	}
	return out
}

func (o *Ontology) ClassAssertionAxioms() []ClassAssertionAxiom {
	raw := o.partitions[KindClassAssertion]
	out := make([]ClassAssertionAxiom, len(raw))
	for i, a := range raw {
		out[i] = a.(ClassAssertionAxiom)
	}
	return out
}

func (o *Ontology) ObjectPropertyAssertionAxioms() []ObjectPropertyAssertionAxiom {
	raw := o.partitions[KindObjectPropertyAssertion]
	out := make([]ObjectPropertyAssertionAxiom, len(raw))
	for i, a := range raw {
		out[i] = a.(ObjectPropertyAssertionAxiom)
	}
	return out
}

func (o *Ontology) SubObjectPropertyOfAxioms() []SubObjectPropertyOfAxiom {
	raw := o.partitions[KindSubObjectPropertyOf]
	out := make([]SubObjectPropertyOfAxiom, len(raw))
	for i, a := range raw {
		out[i] = a.(SubObjectPropertyOfAxiom)
	}
	return out
}
