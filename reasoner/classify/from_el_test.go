package classify

import (
	"testing"

	"github.com/nodeadmin/owl2-reasoner/ontology"
	"github.com/nodeadmin/owl2-reasoner/reasoner/elsaturation"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

// TestFromELSaturation_DerivedEquivalence exercises the EL fast path
// directly (elsaturation.ClassifyEL -> FromELSaturation) rather than the
// tableau-backed Classifier, since that is the path reasoner.Reasoner.
// Classify actually takes for an EL-profile ontology.
func TestFromELSaturation_DerivedEquivalence(t *testing.T) {
	defer goleak.VerifyNone(t)

	a := mustIRI(t, "http://example.org/A")
	b := mustIRI(t, "http://example.org/B")

	ont := ontology.New()
	ont.Declare(ontology.NewClass(a))
	ont.Declare(ontology.NewClass(b))
	// No EquivalentClasses axiom, but mutual SubClassOf edges entail it.
	require.NoError(t, ont.Add(ontology.SubClassOfAxiom{Sub: atomic(a), Super: atomic(b)}))
	require.NoError(t, ont.Add(ontology.SubClassOfAxiom{Sub: atomic(b), Super: atomic(a)}))

	hierarchy, _ := elsaturation.ClassifyEL(ont, 1)
	h, err := FromELSaturation(ont, hierarchy)
	require.NoError(t, err)

	require.Contains(t, h.GetEquivalentClasses(a.String()), b.String())
	require.Contains(t, h.GetEquivalentClasses(b.String()), a.String())
}

// TestFromELSaturation_ExplicitEquivalentClasses covers the non-cyclic
// case: an explicit EquivalentClasses axiom, normalized by
// elsaturation.Normalize into mutual SubClassOf pairs, must still surface
// as equivalence once FromELSaturation folds the saturated graph back
// into a ClassHierarchy.
func TestFromELSaturation_ExplicitEquivalentClasses(t *testing.T) {
	defer goleak.VerifyNone(t)

	a := mustIRI(t, "http://example.org/A")
	b := mustIRI(t, "http://example.org/B")

	ont := ontology.New()
	ont.Declare(ontology.NewClass(a))
	ont.Declare(ontology.NewClass(b))
	require.NoError(t, ont.Add(ontology.EquivalentClassesAxiom{Classes: []ontology.ClassExpression{atomic(a), atomic(b)}}))

	hierarchy, _ := elsaturation.ClassifyEL(ont, 1)
	h, err := FromELSaturation(ont, hierarchy)
	require.NoError(t, err)

	require.Contains(t, h.GetEquivalentClasses(a.String()), b.String())
	require.Contains(t, h.GetEquivalentClasses(b.String()), a.String())
}
