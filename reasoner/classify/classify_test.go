package classify

import (
	"context"
	"testing"

	"github.com/nodeadmin/owl2-reasoner/ontology"
	"github.com/nodeadmin/owl2-reasoner/reasoner/tableaux"
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

func TestClassify_TransitiveClosureAndDirectEdges(t *testing.T) {
	defer goleak.VerifyNone(t)

	animal := mustIRI(t, "http://example.org/Animal")
	mammal := mustIRI(t, "http://example.org/Mammal")
	dog := mustIRI(t, "http://example.org/Dog")

	ont := ontology.New()
	ont.Declare(ontology.NewClass(animal))
	ont.Declare(ontology.NewClass(mammal))
	ont.Declare(ontology.NewClass(dog))
	require.NoError(t, ont.Add(ontology.SubClassOfAxiom{Sub: atomic(mammal), Super: atomic(animal)}))
	require.NoError(t, ont.Add(ontology.SubClassOfAxiom{Sub: atomic(dog), Super: atomic(mammal)}))

	eng := tableaux.New(ont)
	c := New(ont, eng, Config{})
	h, err := c.Classify(context.Background())
	require.NoError(t, err)

	require.ElementsMatch(t, []string{mammal.String()}, h.DirectSuperclasses(dog.String()))
	require.ElementsMatch(t, []string{mammal.String(), animal.String()}, h.GetAllSuperclasses(dog.String()))
	require.ElementsMatch(t, []string{dog.String(), mammal.String()}, h.GetAllSubclasses(animal.String()))
}

func TestClassify_DerivedEquivalence(t *testing.T) {
	defer goleak.VerifyNone(t)

	a := mustIRI(t, "http://example.org/A")
	b := mustIRI(t, "http://example.org/B")

	ont := ontology.New()
	ont.Declare(ontology.NewClass(a))
	ont.Declare(ontology.NewClass(b))
	// No EquivalentClasses axiom, but mutual SubClassOf edges entail it.
	require.NoError(t, ont.Add(ontology.SubClassOfAxiom{Sub: atomic(a), Super: atomic(b)}))
	require.NoError(t, ont.Add(ontology.SubClassOfAxiom{Sub: atomic(b), Super: atomic(a)}))

	eng := tableaux.New(ont)
	c := New(ont, eng, Config{})
	h, err := c.Classify(context.Background())
	require.NoError(t, err)

	require.Contains(t, h.GetEquivalentClasses(a.String()), b.String())
	require.Contains(t, h.GetEquivalentClasses(b.String()), a.String())
}

func TestClassify_AssertedDisjointness(t *testing.T) {
	defer goleak.VerifyNone(t)

	cat := mustIRI(t, "http://example.org/Cat")
	dog := mustIRI(t, "http://example.org/Dog")

	ont := ontology.New()
	ont.Declare(ontology.NewClass(cat))
	ont.Declare(ontology.NewClass(dog))
	require.NoError(t, ont.Add(ontology.DisjointClassesAxiom{Classes: []ontology.ClassExpression{atomic(cat), atomic(dog)}}))

	eng := tableaux.New(ont)
	c := New(ont, eng, Config{})
	h, err := c.Classify(context.Background())
	require.NoError(t, err)

	require.Contains(t, h.GetDisjointClasses(cat.String()), dog.String())
}
