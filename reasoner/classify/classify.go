package classify

import (
	"context"
	"runtime"

	"github.com/nodeadmin/owl2-reasoner/ontology"
	"github.com/nodeadmin/owl2-reasoner/reasoner/tableaux"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Config controls a classification run.
type Config struct {
	Logger *zap.Logger
	// ParallelWorkers bounds concurrent tableau queries dispatched during
	// phases 3/4; zero means runtime.GOMAXPROCS(0), mirroring the
	// teacher's SaturateParallel worker-count fallback
	// (reasoner/parallel.go).
	ParallelWorkers int
}

// Classifier computes a ClassHierarchy for one Ontology, using an Engine
// for the pairwise checks (derived equivalence, derived disjointness)
// that asserted edges alone can't settle.
type Classifier struct {
	ont *ontology.Ontology
	eng *tableaux.Engine
	cfg Config
	log *zap.Logger
}

// New builds a Classifier. eng is expected to have been constructed over
// the same ontology; sharing one Engine across many pairwise queries
// amortizes its index-building cost (spec.md §4.2's phase-separation
// rationale).
func New(ont *ontology.Ontology, eng *tableaux.Engine, cfg Config) *Classifier {
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if cfg.ParallelWorkers <= 0 {
		cfg.ParallelWorkers = runtime.GOMAXPROCS(0)
	}
	return &Classifier{ont: ont, eng: eng, cfg: cfg, log: cfg.Logger}
}

// Classify runs the five-phase algorithm of spec.md §4.2 over the
// classifier's ontology and returns the resulting hierarchy.
func (c *Classifier) Classify(ctx context.Context) (*ClassHierarchy, error) {
	h := &ClassHierarchy{
		direct:   make(map[string]map[string]struct{}),
		super:    make(map[string]map[string]struct{}),
		sub:      make(map[string]map[string]struct{}),
		equiv:    make(map[string]map[string]struct{}),
		disjoint: make(map[string]map[string]struct{}),
	}

	c.phase1InitDirectEdges(h)
	c.phase2TransitiveClosure(h)
	if err := c.phase3DerivedEquivalence(ctx, h); err != nil {
		return nil, err
	}
	if err := c.phase4DerivedDisjointness(ctx, h); err != nil {
		return nil, err
	}
	if err := c.phase5Integrity(h); err != nil {
		return nil, err
	}

	return h, nil
}

// phase1InitDirectEdges seeds h.direct from asserted SubClassOf axioms,
// EquivalentClasses (each pair contributes edges both ways), and — per
// the Open Question resolution recorded in SPEC_FULL.md §4.2 — property
// chains' entailed class-level consequences are not direct edges
// themselves (they constrain role hierarchies, not class subsumption
// directly). The shared Engine indexes property chains but no tableau
// rule applies them, so they do not affect the phase 3/4 answers either.
func (c *Classifier) phase1InitDirectEdges(h *ClassHierarchy) {
	seen := make(map[string]bool)
	ensure := func(iri string) {
		if !seen[iri] {
			seen[iri] = true
			h.allClasses = append(h.allClasses, iri)
			h.direct[iri] = newStringSet()
			h.equiv[iri] = newStringSet()
			h.disjoint[iri] = newStringSet()
		}
	}
	for _, e := range c.ont.Classes() {
		ensure(e.IRI.String())
	}

	for _, ax := range c.ont.SubClassOfAxioms() {
		subIRI, ok1 := classIRIOf(ax.Sub)
		supIRI, ok2 := classIRIOf(ax.Super)
		if !ok1 || !ok2 {
			continue
		}
		ensure(subIRI)
		ensure(supIRI)
		h.direct[subIRI][supIRI] = struct{}{}
	}
	for _, ax := range c.ont.EquivalentClassesAxioms() {
		iris := make([]string, 0, len(ax.Classes))
		for _, ce := range ax.Classes {
			if iri, ok := classIRIOf(ce); ok {
				ensure(iri)
				iris = append(iris, iri)
			}
		}
		for i := range iris {
			for j := range iris {
				if i != j {
					h.direct[iris[i]][iris[j]] = struct{}{}
					h.equiv[iris[i]][iris[j]] = struct{}{}
				}
			}
		}
	}
	for _, ax := range c.ont.DisjointClassesAxioms() {
		iris := make([]string, 0, len(ax.Classes))
		for _, ce := range ax.Classes {
			if iri, ok := classIRIOf(ce); ok {
				ensure(iri)
				iris = append(iris, iri)
			}
		}
		for i := range iris {
			for j := range iris {
				if i != j {
					h.disjoint[iris[i]][iris[j]] = struct{}{}
				}
			}
		}
	}
}

// phase2TransitiveClosure computes h.super/h.sub by BFS over h.direct from
// every class, generalizing the teacher's transitive-reduction pass
// (taxonomy.go's BuildTaxonomy) which ran the reverse direction: the
// teacher reduces a precomputed superset down to direct edges, whereas
// classify expands direct edges up to the full transitive set because the
// Engine's structural shortcuts (reasoner/tableaux/query.go) already need
// direct, not closed, edges for their own BFS.
func (c *Classifier) phase2TransitiveClosure(h *ClassHierarchy) {
	for _, iri := range h.allClasses {
		h.super[iri] = newStringSet()
		visited := map[string]bool{iri: true}
		queue := []string{iri}
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			for next := range h.direct[cur] {
				if visited[next] {
					continue
				}
				visited[next] = true
				h.super[iri][next] = struct{}{}
				queue = append(queue, next)
			}
		}
	}
	for _, iri := range h.allClasses {
		h.sub[iri] = newStringSet()
	}
	for sub, supers := range h.super {
		for sup := range supers {
			if h.sub[sup] == nil {
				h.sub[sup] = newStringSet()
			}
			h.sub[sup][sub] = struct{}{}
		}
	}
}

type pairResult struct {
	a, b string
	yes  bool
}

// phase3DerivedEquivalence finds class pairs not already known equivalent
// that mutually subsume each other once the tableau's structural
// shortcuts and satisfiability checks are brought to bear — i.e. A ⊑ B
// and B ⊑ A both hold without an explicit EquivalentClasses axiom saying
// so. Candidate pairs are every unordered pair of classes (see
// candidatePairs), dispatched across an errgroup worker pool since each pairwise query is independent
// (spec.md §4.2 "embarrassingly parallel").
func (c *Classifier) phase3DerivedEquivalence(ctx context.Context, h *ClassHierarchy) error {
	pairs := c.candidatePairs(h)
	results, err := c.dispatchPairs(ctx, pairs, func(ctx context.Context, a, b string) (bool, error) {
		if _, already := h.equiv[a][b]; already {
			return false, nil
		}
		aSub, err := c.eng.IsSubclassOf(ctx, ontology.AtomicClass{IRI: ontology.MustIRI(a)}, ontology.AtomicClass{IRI: ontology.MustIRI(b)})
		if err != nil {
			return false, err
		}
		if !aSub {
			return false, nil
		}
		bSub, err := c.eng.IsSubclassOf(ctx, ontology.AtomicClass{IRI: ontology.MustIRI(b)}, ontology.AtomicClass{IRI: ontology.MustIRI(a)})
		if err != nil {
			return false, err
		}
		return bSub, nil
	})
	if err != nil {
		return err
	}
	for _, r := range results {
		if r.yes {
			h.equiv[r.a][r.b] = struct{}{}
			h.equiv[r.b][r.a] = struct{}{}
		}
	}
	return nil
}

// phase4DerivedDisjointness mirrors phase 3 for disjointness: pairs whose
// conjunction the tableau proves unsatisfiable despite no explicit
// DisjointClasses axiom.
func (c *Classifier) phase4DerivedDisjointness(ctx context.Context, h *ClassHierarchy) error {
	pairs := c.candidatePairs(h)
	results, err := c.dispatchPairs(ctx, pairs, func(ctx context.Context, a, b string) (bool, error) {
		if _, already := h.disjoint[a][b]; already {
			return false, nil
		}
		return c.eng.AreDisjointClasses(ctx, ontology.AtomicClass{IRI: ontology.MustIRI(a)}, ontology.AtomicClass{IRI: ontology.MustIRI(b)})
	})
	if err != nil {
		return err
	}
	for _, r := range results {
		if r.yes {
			h.disjoint[r.a][r.b] = struct{}{}
			h.disjoint[r.b][r.a] = struct{}{}
		}
	}
	return nil
}

// candidatePairs returns every unordered pair of classes, so the pairwise
// check is O(n^2); no shared-superclass or other filter is applied.
func (c *Classifier) candidatePairs(h *ClassHierarchy) [][2]string {
	var pairs [][2]string
	for i := 0; i < len(h.allClasses); i++ {
		for j := i + 1; j < len(h.allClasses); j++ {
			pairs = append(pairs, [2]string{h.allClasses[i], h.allClasses[j]})
		}
	}
	return pairs
}

func (c *Classifier) dispatchPairs(ctx context.Context, pairs [][2]string, check func(context.Context, string, string) (bool, error)) ([]pairResult, error) {
	results := make([]pairResult, len(pairs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.cfg.ParallelWorkers)
	for i, pair := range pairs {
		i, pair := i, pair
		g.Go(func() error {
			yes, err := check(gctx, pair[0], pair[1])
			if err != nil {
				return err
			}
			results[i] = pairResult{a: pair[0], b: pair[1], yes: yes}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// phase5Integrity checks the two sanity invariants spec.md §4.2 demands
// of a finished hierarchy: no class is its own ancestor (a subsumption
// cycle, which would indicate a logic error upstream since cycles are
// collapsed into equivalence, not left as distinct nodes), and no class
// is simultaneously a superclass and a disjoint of another.
func (c *Classifier) phase5Integrity(h *ClassHierarchy) error {
	for _, iri := range h.allClasses {
		if _, ok := h.super[iri][iri]; ok {
			return errCycle(iri)
		}
		for sup := range h.super[iri] {
			if _, ok := h.disjoint[iri][sup]; ok {
				return errContradiction(iri, sup)
			}
		}
	}
	return nil
}
