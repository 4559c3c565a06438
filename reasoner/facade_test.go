package reasoner

import (
	"context"
	"testing"

	"github.com/nodeadmin/owl2-reasoner/ontology"
	"github.com/nodeadmin/owl2-reasoner/reasoner/profile"
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

func buildAnimalOntology(t *testing.T) *ontology.Ontology {
	t.Helper()
	animal := mustIRI(t, "http://example.org/Animal")
	dog := mustIRI(t, "http://example.org/Dog")
	alice := mustIRI(t, "http://example.org/alice")

	ont := ontology.New()
	ont.Declare(ontology.NewClass(animal))
	ont.Declare(ontology.NewClass(dog))
	ont.Declare(ontology.NewNamedIndividual(alice))
	require.NoError(t, ont.Add(ontology.SubClassOfAxiom{Sub: atomic(dog), Super: atomic(animal)}))
	require.NoError(t, ont.Add(ontology.ClassAssertionAxiom{Individual: ontology.NewNamedIndividual(alice), Class: atomic(dog)}))
	return ont
}

func TestReasoner_IsConsistentAndSubclassOf(t *testing.T) {
	defer goleak.VerifyNone(t)
	ont := buildAnimalOntology(t)
	r := New(ont)
	ctx := context.Background()

	ok, err := r.IsConsistent(ctx)
	require.NoError(t, err)
	require.True(t, ok)

	dog := mustIRI(t, "http://example.org/Dog")
	animal := mustIRI(t, "http://example.org/Animal")
	ok, err = r.IsSubclassOf(ctx, atomic(dog), atomic(animal))
	require.NoError(t, err)
	require.True(t, ok)
}

func TestReasoner_GetInstances_IncludesSubclassAssertions(t *testing.T) {
	defer goleak.VerifyNone(t)
	ont := buildAnimalOntology(t)
	r := New(ont)
	ctx := context.Background()

	animal := mustIRI(t, "http://example.org/Animal")
	instances, err := r.GetInstances(ctx, animal)
	require.NoError(t, err)

	var found bool
	for _, i := range instances {
		if i.String() == "http://example.org/alice" {
			found = true
		}
	}
	require.True(t, found, "alice asserted as a Dog should count as an instance of its superclass Animal")
}

func TestReasoner_CacheHitsOnRepeatQuery(t *testing.T) {
	defer goleak.VerifyNone(t)
	ont := buildAnimalOntology(t)
	r := New(ont)
	ctx := context.Background()

	_, err := r.IsConsistent(ctx)
	require.NoError(t, err)
	_, err = r.IsConsistent(ctx)
	require.NoError(t, err)

	require.Equal(t, int64(1), r.CacheStats().Consistency.Hits)
}

func TestReasoner_ValidateProfile_CachesResult(t *testing.T) {
	defer goleak.VerifyNone(t)
	ont := buildAnimalOntology(t)
	r := New(ont)

	first := r.ValidateProfile(profile.ProfileEL)
	require.True(t, first.IsValid)

	second := r.ValidateProfile(profile.ProfileEL)
	require.True(t, second.IsValid)
	require.Equal(t, int64(1), r.CacheStats().Profile.Hits)
}

func TestReasoner_Classify(t *testing.T) {
	defer goleak.VerifyNone(t)
	ont := buildAnimalOntology(t)
	r := New(ont)

	h, err := r.Classify(context.Background())
	require.NoError(t, err)
	require.Contains(t, h.GetAllSuperclasses("http://example.org/Dog"), "http://example.org/Animal")
}
