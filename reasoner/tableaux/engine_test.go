package tableaux

import (
	"context"
	"testing"

	"github.com/nodeadmin/owl2-reasoner/ontology"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func mustClass(t *testing.T, s string) ontology.Entity {
	t.Helper()
	iri, err := ontology.NewIRI(s)
	require.NoError(t, err)
	return ontology.NewClass(iri)
}

func atomic(e ontology.Entity) ontology.ClassExpression {
	return ontology.AtomicClass{IRI: e.IRI}
}

func mustProp(t *testing.T, s string) ontology.PropertyExpression {
	t.Helper()
	iri, err := ontology.NewIRI(s)
	require.NoError(t, err)
	return ontology.NamedProperty{Property: ontology.NewObjectProperty(iri)}
}

func TestIsClassSatisfiable(t *testing.T) {
	defer goleak.VerifyNone(t)

	animal := mustClass(t, "http://example.org/Animal")
	stone := mustClass(t, "http://example.org/Stone")

	ont := ontology.New()
	ont.Declare(animal)
	ont.Declare(stone)
	require.NoError(t, ont.Add(ontology.DisjointClassesAxiom{Classes: []ontology.ClassExpression{atomic(animal), atomic(stone)}}))

	eng := New(ont)

	tests := []struct {
		name string
		ce   ontology.ClassExpression
		want bool
	}{
		{"atomic class alone is satisfiable", atomic(animal), true},
		{"owl:Thing is always satisfiable", ontology.Top, true},
		{"owl:Nothing is never satisfiable", ontology.Bottom, false},
		{
			name: "disjoint classes conjoined is unsatisfiable",
			ce:   mustIntersection(t, atomic(animal), atomic(stone)),
			want: false,
		},
		{
			name: "a class conjoined with its own complement is unsatisfiable",
			ce:   mustIntersection(t, atomic(animal), ontology.ObjectComplementOf{Of: atomic(animal)}),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := eng.IsClassSatisfiable(context.Background(), tt.ce)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func mustIntersection(t *testing.T, operands ...ontology.ClassExpression) ontology.ClassExpression {
	t.Helper()
	ce, err := ontology.NewObjectIntersectionOf(operands...)
	require.NoError(t, err)
	return ce
}

func TestIsSubclassOf_StructuralShortcuts(t *testing.T) {
	defer goleak.VerifyNone(t)

	animal := mustClass(t, "http://example.org/Animal")
	dog := mustClass(t, "http://example.org/Dog")
	puppy := mustClass(t, "http://example.org/Puppy")

	ont := ontology.New()
	ont.Declare(animal)
	ont.Declare(dog)
	ont.Declare(puppy)
	require.NoError(t, ont.Add(ontology.SubClassOfAxiom{Sub: atomic(dog), Super: atomic(animal)}))
	require.NoError(t, ont.Add(ontology.SubClassOfAxiom{Sub: atomic(puppy), Super: atomic(dog)}))

	eng := New(ont)
	ctx := context.Background()

	t.Run("reflexivity", func(t *testing.T) {
		ok, err := eng.IsSubclassOf(ctx, atomic(dog), atomic(dog))
		require.NoError(t, err)
		require.True(t, ok)
	})

	t.Run("direct asserted edge", func(t *testing.T) {
		ok, err := eng.IsSubclassOf(ctx, atomic(dog), atomic(animal))
		require.NoError(t, err)
		require.True(t, ok)
	})

	t.Run("transitive closure over asserted edges", func(t *testing.T) {
		ok, err := eng.IsSubclassOf(ctx, atomic(puppy), atomic(animal))
		require.NoError(t, err)
		require.True(t, ok)
	})

	t.Run("unrelated classes are not subclasses", func(t *testing.T) {
		ok, err := eng.IsSubclassOf(ctx, atomic(animal), atomic(puppy))
		require.NoError(t, err)
		require.False(t, ok)
	})
}

func TestIsConsistent(t *testing.T) {
	defer goleak.VerifyNone(t)

	person := mustClass(t, "http://example.org/Person")
	rock := mustClass(t, "http://example.org/Rock")
	alice, err := ontology.NewIRI("http://example.org/alice")
	require.NoError(t, err)
	aliceInd := ontology.NewNamedIndividual(alice)

	t.Run("consistent ABox", func(t *testing.T) {
		ont := ontology.New()
		ont.Declare(person)
		ont.Declare(aliceInd)
		require.NoError(t, ont.Add(ontology.ClassAssertionAxiom{Individual: aliceInd, Class: atomic(person)}))

		ok, err := New(ont).IsConsistent(context.Background())
		require.NoError(t, err)
		require.True(t, ok)
	})

	t.Run("ABox violating an asserted disjointness is inconsistent", func(t *testing.T) {
		ont := ontology.New()
		ont.Declare(person)
		ont.Declare(rock)
		ont.Declare(aliceInd)
		require.NoError(t, ont.Add(ontology.DisjointClassesAxiom{Classes: []ontology.ClassExpression{atomic(person), atomic(rock)}}))
		require.NoError(t, ont.Add(ontology.ClassAssertionAxiom{Individual: aliceInd, Class: atomic(person)}))
		require.NoError(t, ont.Add(ontology.ClassAssertionAxiom{Individual: aliceInd, Class: atomic(rock)}))

		ok, err := New(ont).IsConsistent(context.Background())
		require.NoError(t, err)
		require.False(t, ok)
	})
}

// TestCyclicExistentialTerminates exercises subset-blocking: a class whose
// only definition is an infinitely-unrollable self-referential existential
// must still terminate with a satisfiable verdict instead of looping
// forever building fresh successors (spec.md §4.1's blocking invariant).
func TestCyclicExistentialTerminates(t *testing.T) {
	defer goleak.VerifyNone(t)

	loopy := mustClass(t, "http://example.org/Loopy")
	hasNext := mustProp(t, "http://example.org/hasNext")

	ont := ontology.New()
	ont.Declare(loopy)
	some := ontology.ObjectSomeValuesFrom{Property: hasNext, Filler: atomic(loopy)}
	require.NoError(t, ont.Add(ontology.SubClassOfAxiom{Sub: atomic(loopy), Super: some}))

	eng := NewWithConfig(ont, Config{MaxDepth: 10, StepBudget: 5000})
	ok, err := eng.IsClassSatisfiable(context.Background(), atomic(loopy))
	require.NoError(t, err)
	require.True(t, ok)
}

func TestAreDisjointClasses(t *testing.T) {
	defer goleak.VerifyNone(t)

	cat := mustClass(t, "http://example.org/Cat")
	dog := mustClass(t, "http://example.org/Dog")
	mammal := mustClass(t, "http://example.org/Mammal")

	ont := ontology.New()
	ont.Declare(cat)
	ont.Declare(dog)
	ont.Declare(mammal)
	require.NoError(t, ont.Add(ontology.DisjointClassesAxiom{Classes: []ontology.ClassExpression{atomic(cat), atomic(dog)}}))
	require.NoError(t, ont.Add(ontology.SubClassOfAxiom{Sub: atomic(cat), Super: atomic(mammal)}))
	require.NoError(t, ont.Add(ontology.SubClassOfAxiom{Sub: atomic(dog), Super: atomic(mammal)}))

	eng := New(ont)
	ctx := context.Background()

	ok, err := eng.AreDisjointClasses(ctx, atomic(cat), atomic(dog))
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = eng.AreDisjointClasses(ctx, atomic(cat), atomic(mammal))
	require.NoError(t, err)
	require.False(t, ok)
}
