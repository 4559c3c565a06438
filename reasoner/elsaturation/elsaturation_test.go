package elsaturation

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

func TestClassifyEL_DirectAndTransitiveParents(t *testing.T) {
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

	hierarchy, stats := ClassifyEL(ont, 1)
	require.Equal(t, 3, stats.ConceptCount)

	byID := make(map[string]ClassifiedConcept, len(hierarchy.Concepts))
	for _, cc := range hierarchy.Concepts {
		byID[cc.ID] = cc
	}

	require.ElementsMatch(t, []string{animal.String()}, byID[mammal.String()].DirectParents)
	require.ElementsMatch(t, []string{mammal.String()}, byID[dog.String()].DirectParents)
}

func TestClassifyEL_ExistentialSubsumption(t *testing.T) {
	defer goleak.VerifyNone(t)

	animal := mustIRI(t, "http://example.org/Animal")
	hasParent := mustIRI(t, "http://example.org/hasParent")
	hasAnimalParent := mustIRI(t, "http://example.org/HasAnimalParent")

	ont := ontology.New()
	ont.Declare(ontology.NewClass(animal))
	ont.Declare(ontology.NewClass(hasAnimalParent))
	ont.Declare(ontology.NewObjectProperty(hasParent))

	existential := ontology.ObjectSomeValuesFrom{
		Property: ontology.NamedProperty{Property: ontology.NewObjectProperty(hasParent)},
		Filler:   atomic(animal),
	}
	require.NoError(t, ont.Add(ontology.SubClassOfAxiom{Sub: atomic(hasAnimalParent), Super: existential}))

	st, store := Normalize(ont)
	contexts := Saturate(st, store)

	c := st.InternConcept(hasAnimalParent.String())
	r := st.InternRole(ontology.PropertyExpressionKey(ontology.NamedProperty{Property: ontology.NewObjectProperty(hasParent)}))
	require.Len(t, contexts[c].linkMap[r], 1)
}
