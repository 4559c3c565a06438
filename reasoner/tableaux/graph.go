// Package tableaux implements the branch-and-expand satisfiability engine
// described in spec.md §4.1: completion-graph construction with the
// deterministic rules run to a fixpoint before any branching,
// subset-blocking for termination over cyclic axioms, and chronological
// backtracking on union choice points.
//
// The deterministic core (unfolding, intersection, existential creation,
// and transitive propagation of universal restrictions; sub-property and
// property-chain axioms are indexed but no rule applies them) generalizes
// the teacher's EL
// saturation worklist (anusornc-parser-onto/reasoner/saturate.go:
// CR1–CR5, CR10–CR11) from a monotone forward-chaining pass with no
// branching into one rule family alongside the non-deterministic rules
// (union, number-restriction merging) a full tableau needs.
package tableaux

import "github.com/nodeadmin/owl2-reasoner/ontology"

// nodeID indexes into a graph's node arena — the integer-handle style
// spec.md §9 calls for ("arena of nodes keyed by integer index with
// explicit parent-index fields. No language-level cycles required"),
// generalizing the teacher's ConceptID/RoleID handles
// (reasoner/index.go's SymbolTable).
type nodeID int

const noParent nodeID = -1

// node is one vertex of the completion graph.
type node struct {
	id       nodeID
	parent   nodeID // parent-index field for blocking ancestry; noParent at the root
	label    string // individual label: named IRI string, or "" for anonymous nodes
	concepts map[ontology.ClassExpression]struct{}
	// conceptKeys mirrors concepts but indexed by a canonical string key,
	// since ClassExpression is not itself comparable for every variant
	// (slices inside ObjectIntersectionOf etc. are not Go-comparable).
	conceptKeys map[string]ontology.ClassExpression

	edges map[*roleKey][]nodeID // forward edges, keyed by a canonical role identity
	clash bool
	// blockedBy is non-negative (ancestor nodeID) when this node is
	// currently blocked; notBlocked otherwise.
	blockedBy nodeID

	// mergeTarget, when >= 0, means this node has been collapsed into
	// another (same-individual merge from functional-property forcing or
	// a SameIndividual axiom).
	mergeTarget nodeID
}

const notBlocked nodeID = -1
const notMerged nodeID = -1

// roleKey canonicalizes a property expression's identity for edge lookup
// (named property vs. its inverse are distinct edge labels; the inverse
// relationship is handled by mirroring edges, see rules.go's addEdge).
type roleKey struct {
	name    string
	inverse bool
}

func roleKeyOf(p ontology.PropertyExpression) roleKey {
	switch pe := p.(type) {
	case ontology.NamedProperty:
		return roleKey{name: pe.Property.IRI.String()}
	case ontology.InverseOf:
		inner := roleKeyOf(pe.Of)
		return roleKey{name: inner.name, inverse: !inner.inverse}
	default:
		panic("tableaux: unhandled PropertyExpression variant")
	}
}

// graph is the transient completion graph for a single top-level query.
// One graph is built per query and discarded when the answer is
// returned, per spec.md §3's Reasoner state lifecycle note.
type graph struct {
	nodes    []*node
	roleKeys map[roleKey]*roleKey // interns roleKey values so edges map can use pointer identity
	fresh    int
}

func newGraph() *graph {
	return &graph{roleKeys: make(map[roleKey]*roleKey)}
}

func (g *graph) internRole(p ontology.PropertyExpression) *roleKey {
	return g.internRoleFromKey(roleKeyOf(p))
}

func (g *graph) internRoleFromKey(rk roleKey) *roleKey {
	if existing, ok := g.roleKeys[rk]; ok {
		return existing
	}
	cp := rk
	g.roleKeys[rk] = &cp
	return &cp
}

func (g *graph) newNode(parent nodeID, label string) *node {
	n := &node{
		id:          nodeID(len(g.nodes)),
		parent:      parent,
		label:       label,
		concepts:    make(map[ontology.ClassExpression]struct{}, 4),
		conceptKeys: make(map[string]ontology.ClassExpression, 4),
		edges:       make(map[*roleKey][]nodeID),
		blockedBy:   notBlocked,
		mergeTarget: notMerged,
	}
	g.nodes = append(g.nodes, n)
	return n
}

func (g *graph) node(id nodeID) *node { return g.nodes[id] }

// ancestors yields the chain of parent nodes from n up to the root,
// following parent pointers — the blocking-ancestry walk spec.md §4.1
// describes.
func (g *graph) ancestors(id nodeID) []nodeID {
	var out []nodeID
	for cur := g.node(id).parent; cur != noParent; cur = g.node(cur).parent {
		out = append(out, cur)
	}
	return out
}

// resolve follows merge targets to the representative node for an
// individual that has been collapsed via functional-property forcing or
// SameIndividual.
func (g *graph) resolve(id nodeID) nodeID {
	for g.node(id).mergeTarget != notMerged {
		id = g.node(id).mergeTarget
	}
	return id
}
