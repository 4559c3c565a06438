package profile

import (
	"testing"

	"github.com/nodeadmin/owl2-reasoner/ontology"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func mustIRI(t *testing.T, s string) ontology.IRI {
	t.Helper()
	iri, err := ontology.NewIRI(s)
	require.NoError(t, err)
	return iri
}

func atomic(iri ontology.IRI) ontology.ClassExpression {
	return ontology.AtomicClass{IRI: iri}
}

func TestValidateEL_RejectsDisjointClasses(t *testing.T) {
	defer goleak.VerifyNone(t)

	a := mustIRI(t, "http://example.org/A")
	b := mustIRI(t, "http://example.org/B")
	ont := ontology.New()
	ont.Declare(ontology.NewClass(a))
	ont.Declare(ontology.NewClass(b))
	require.NoError(t, ont.Add(ontology.DisjointClassesAxiom{Classes: []ontology.ClassExpression{atomic(a), atomic(b)}}))

	r := Validate(ont, ProfileEL)
	require.False(t, r.IsValid)
	require.Equal(t, ViolationDisjointClassesAxiom, r.Violations[0].Type)
	require.ElementsMatch(t, []ontology.IRI{a, b}, r.Violations[0].AffectedEntities)
}

func TestValidateEL_AcceptsExistentialAndIntersection(t *testing.T) {
	defer goleak.VerifyNone(t)

	a := mustIRI(t, "http://example.org/A")
	b := mustIRI(t, "http://example.org/B")
	hasPart := ontology.NamedProperty{Property: ontology.NewObjectProperty(mustIRI(t, "http://example.org/hasPart"))}

	ont := ontology.New()
	ont.Declare(ontology.NewClass(a))
	ont.Declare(ontology.NewClass(b))
	ont.Declare(ontology.NewObjectProperty(mustIRI(t, "http://example.org/hasPart")))
	conj, err := ontology.NewObjectIntersectionOf(atomic(a), ontology.ObjectSomeValuesFrom{Property: hasPart, Filler: atomic(b)})
	require.NoError(t, err)
	require.NoError(t, ont.Add(ontology.SubClassOfAxiom{Sub: atomic(a), Super: conj}))

	r := Validate(ont, ProfileEL)
	require.True(t, r.IsValid)
}

func TestValidateEL_RejectsUnion(t *testing.T) {
	defer goleak.VerifyNone(t)

	a := mustIRI(t, "http://example.org/A")
	b := mustIRI(t, "http://example.org/B")
	c := mustIRI(t, "http://example.org/C")

	ont := ontology.New()
	ont.Declare(ontology.NewClass(a))
	ont.Declare(ontology.NewClass(b))
	ont.Declare(ontology.NewClass(c))
	union, err := ontology.NewObjectUnionOf(atomic(b), atomic(c))
	require.NoError(t, err)
	require.NoError(t, ont.Add(ontology.SubClassOfAxiom{Sub: atomic(a), Super: union}))

	r := Validate(ont, ProfileEL)
	require.False(t, r.IsValid)
}

func TestValidateQL_RejectsTransitiveProperty(t *testing.T) {
	defer goleak.VerifyNone(t)

	p := ontology.NewObjectProperty(mustIRI(t, "http://example.org/partOf"))
	ont := ontology.New()
	ont.Declare(p)
	require.NoError(t, ont.Add(ontology.TransitiveObjectProperty(ontology.NamedProperty{Property: p})))

	r := Validate(ont, ProfileQL)
	require.False(t, r.IsValid)
	require.Equal(t, ViolationTransitiveProperty, r.Violations[0].Type)
}

func TestValidateRL_RejectsComplexCardinality(t *testing.T) {
	defer goleak.VerifyNone(t)

	a := mustIRI(t, "http://example.org/A")
	b := mustIRI(t, "http://example.org/B")
	p := ontology.NamedProperty{Property: ontology.NewObjectProperty(mustIRI(t, "http://example.org/hasChild"))}

	ont := ontology.New()
	ont.Declare(ontology.NewClass(a))
	ont.Declare(ontology.NewClass(b))
	card, err := ontology.NewObjectCardinality(ontology.CardinalityMin, 3, p, atomic(b))
	require.NoError(t, err)
	require.NoError(t, ont.Add(ontology.SubClassOfAxiom{Sub: atomic(a), Super: card}))

	r := Validate(ont, ProfileRL)
	require.False(t, r.IsValid)
}

func TestMostRestrictiveProfile(t *testing.T) {
	defer goleak.VerifyNone(t)

	a := mustIRI(t, "http://example.org/A")
	b := mustIRI(t, "http://example.org/B")
	ont := ontology.New()
	ont.Declare(ontology.NewClass(a))
	ont.Declare(ontology.NewClass(b))
	require.NoError(t, ont.Add(ontology.SubClassOfAxiom{Sub: atomic(a), Super: atomic(b)}))

	p, ok := MostRestrictiveProfile(ont)
	require.True(t, ok)
	require.Equal(t, ProfileEL, p)
}
