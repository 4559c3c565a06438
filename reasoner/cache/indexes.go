package cache

import (
	"sync"

	"github.com/nodeadmin/owl2-reasoner/ontology"
)

// Indexes holds the always-on inverted indexes of spec.md §4.4: class
// IRI → class assertions whose class expression is that atomic class, and
// property key → property assertions using it. Class assertions over a
// compound expression (an intersection, a restriction, ...) are not
// indexed under any class IRI, including the classes they contain. Unlike the TTL'd query caches, these are
// rebuilt eagerly whenever the ontology changes rather than lazily
// recomputed on first miss, since every instance-retrieval query needs
// them and a miss would otherwise mean scanning every assertion axiom in
// the ontology on every call.
type Indexes struct {
	mu sync.RWMutex

	classAssertions    map[string][]ontology.ClassAssertionAxiom
	propertyAssertions map[string][]ontology.ObjectPropertyAssertionAxiom
}

func NewIndexes() *Indexes {
	return &Indexes{
		classAssertions:    make(map[string][]ontology.ClassAssertionAxiom),
		propertyAssertions: make(map[string][]ontology.ObjectPropertyAssertionAxiom),
	}
}

// Rebuild recomputes both inverted indexes from scratch over ont's
// current assertions, discarding whatever was indexed before.
func (idx *Indexes) Rebuild(ont *ontology.Ontology) {
	classAssertions := make(map[string][]ontology.ClassAssertionAxiom)
	for _, raw := range ont.AxiomsOf(ontology.KindClassAssertion) {
		ax := raw.(ontology.ClassAssertionAxiom)
		if atomic, ok := ontology.AsAtomic(ax.Class); ok {
			key := atomic.IRI.String()
			classAssertions[key] = append(classAssertions[key], ax)
		}
	}

	propertyAssertions := make(map[string][]ontology.ObjectPropertyAssertionAxiom)
	for _, raw := range ont.AxiomsOf(ontology.KindObjectPropertyAssertion) {
		ax := raw.(ontology.ObjectPropertyAssertionAxiom)
		key := ontology.PropertyExpressionKey(ax.Property)
		propertyAssertions[key] = append(propertyAssertions[key], ax)
	}

	idx.mu.Lock()
	idx.classAssertions = classAssertions
	idx.propertyAssertions = propertyAssertions
	idx.mu.Unlock()
}

// ClassAssertionsFor returns every ClassAssertion axiom naming classIRI
// directly (not counting subclass membership — that's classify's job).
func (idx *Indexes) ClassAssertionsFor(classIRI string) []ontology.ClassAssertionAxiom {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return append([]ontology.ClassAssertionAxiom(nil), idx.classAssertions[classIRI]...)
}

// PropertyAssertionsFor returns every ObjectPropertyAssertion axiom using
// the property identified by propKey (ontology.PropertyExpressionKey).
func (idx *Indexes) PropertyAssertionsFor(propKey string) []ontology.ObjectPropertyAssertionAxiom {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return append([]ontology.ObjectPropertyAssertionAxiom(nil), idx.propertyAssertions[propKey]...)
}
