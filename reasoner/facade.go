// Package reasoner is the top-level facade unifying the tableau,
// classification, profile validation, and caching subpackages behind one
// API, grounded on SimpleReasoner
// (original_source/owl2-reasoner/src/reasoning/simple.rs): a single
// entry point holding one read-only Ontology plus the derived engines and
// caches built over it, exposing is_consistent/is_class_satisfiable/
// is_subclass_of/get_instances/are_disjoint_classes, with caching
// transparently layered in front of all of them except
// are_disjoint_classes, which goes to the tableau engine on every call.
package reasoner

import (
	"bytes"
	"context"
	"encoding/gob"
	"fmt"
	"time"

	"github.com/nodeadmin/owl2-reasoner/ontology"
	"github.com/nodeadmin/owl2-reasoner/owlerr"
	"github.com/nodeadmin/owl2-reasoner/reasoner/cache"
	"github.com/nodeadmin/owl2-reasoner/reasoner/classify"
	"github.com/nodeadmin/owl2-reasoner/reasoner/elsaturation"
	"github.com/nodeadmin/owl2-reasoner/reasoner/profile"
	"github.com/nodeadmin/owl2-reasoner/reasoner/tableaux"
	"go.uber.org/zap"
)

// Config is the reasoner's external configuration surface: the tableau's
// MaxDepth and step budget (see tableaux.Config), the four query-cache
// TTLs, profile-cache tuning, the classification worker count, and
// logging. It has no overall query timeout, no switches for computing
// equivalences or disjointness, and no size limits for the query caches.
type Config struct {
	Logger *zap.Logger

	TableauMaxDepth   int
	TableauStepBudget int

	ConsistencyCacheTTL    time.Duration
	SubclassCacheTTL       time.Duration
	SatisfiabilityCacheTTL time.Duration
	InstancesCacheTTL      time.Duration

	ProfileCache cache.ProfileCacheConfig

	ParallelWorkers int
}

// DefaultConfig mirrors the defaults chosen throughout simple.rs and the
// tableau/cache subpackages (30s instance-cache TTL per the original's
// get_instances comment, longer TTLs for the more expensive consistency
// check).
func DefaultConfig() Config {
	return Config{
		Logger:                 zap.NewNop(),
		TableauMaxDepth:        10,
		TableauStepBudget:      200_000,
		ConsistencyCacheTTL:    time.Hour,
		SubclassCacheTTL:       30 * time.Minute,
		SatisfiabilityCacheTTL: 20 * time.Minute,
		InstancesCacheTTL:      30 * time.Second,
		ProfileCache:           cache.DefaultProfileCacheConfig(),
	}
}

// Reasoner is the facade over one immutable Ontology snapshot.
type Reasoner struct {
	ont *ontology.Ontology
	cfg Config
	log *zap.Logger

	engine       *tableaux.Engine
	queries      *cache.QueryCaches
	indexes      *cache.Indexes
	profileCache *cache.ProfileCache
}

// New builds a Reasoner over ont with default configuration.
func New(ont *ontology.Ontology) *Reasoner {
	return NewWithConfig(ont, DefaultConfig())
}

// NewWithConfig builds a Reasoner over ont with explicit configuration.
// Building indexes the ontology once (engine index construction, inverted
// assertion indexes) so every subsequent query pays only its own cost,
// mirroring SimpleReasoner::new's eager setup.
func NewWithConfig(ont *ontology.Ontology, cfg Config) *Reasoner {
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}

	idx := cache.NewIndexes()
	idx.Rebuild(ont)

	r := &Reasoner{
		ont: ont,
		cfg: cfg,
		log: cfg.Logger,
		engine: tableaux.NewWithConfig(ont, tableaux.Config{
			MaxDepth:   cfg.TableauMaxDepth,
			StepBudget: cfg.TableauStepBudget,
			Logger:     cfg.Logger,
		}),
		queries: cache.NewQueryCaches(
			cfg.ConsistencyCacheTTL, cfg.SubclassCacheTTL,
			cfg.SatisfiabilityCacheTTL, cfg.InstancesCacheTTL,
		),
		indexes:      idx,
		profileCache: cache.NewProfileCache(cfg.ProfileCache),
	}
	return r
}

// WarmUpCaches proactively computes and caches a baseline set of results —
// overall consistency, and satisfiability for every declared class — the
// warm_up_caches behavior of simple.rs, useful when a caller knows it's
// about to issue a burst of queries and wants the first one to not pay
// cold-cache cost.
func (r *Reasoner) WarmUpCaches(ctx context.Context) error {
	if _, err := r.IsConsistent(ctx); err != nil {
		return err
	}
	for _, e := range r.ont.Classes() {
		if _, err := r.IsClassSatisfiable(ctx, ontology.AtomicClass{IRI: e.IRI}); err != nil {
			return err
		}
	}
	return nil
}

// ClearCaches empties every query cache and the profile cache, but
// leaves the inverted assertion indexes (those aren't a cache of
// query *answers*, they're a structural index rebuilt only when the
// ontology itself changes).
func (r *Reasoner) ClearCaches() {
	r.queries.InvalidateAll()
	r.profileCache.Clear()
}

// CacheStatistics reports hit/miss/eviction counters across every cache
// tier this reasoner maintains, the cache_stats/get_cache_stats surface
// of simple.rs generalized from one cache to the reasoner's full set.
type CacheStatistics struct {
	Consistency    cache.Snapshot
	Subclass       cache.Snapshot
	Satisfiability cache.Snapshot
	Instances      cache.Snapshot
	Profile        cache.Snapshot
}

func (r *Reasoner) CacheStats() CacheStatistics {
	return CacheStatistics{
		Consistency:    r.queries.Consistency.Stats(),
		Subclass:       r.queries.Subclass.Stats(),
		Satisfiability: r.queries.Satisfiability.Stats(),
		Instances:      r.queries.Instances.Stats(),
		Profile:        r.profileCache.Stats(),
	}
}

// IsConsistent reports ontology-wide consistency, cached under a single
// fixed key since there is exactly one answer per ontology snapshot.
func (r *Reasoner) IsConsistent(ctx context.Context) (bool, error) {
	const key = "consistent"
	if v, ok := r.queries.Consistency.Get(key); ok {
		return v.(bool), nil
	}
	ok, err := r.engine.IsConsistent(ctx)
	if err != nil {
		return false, err
	}
	r.queries.Consistency.Put(key, ok)
	return ok, nil
}

// IsClassSatisfiable reports whether ce is satisfiable, cached by its
// structural key.
func (r *Reasoner) IsClassSatisfiable(ctx context.Context, ce ontology.ClassExpression) (bool, error) {
	key := ontology.ClassExpressionKey(ce)
	if v, ok := r.queries.Satisfiability.Get(key); ok {
		return v.(bool), nil
	}
	sat, err := r.engine.IsClassSatisfiable(ctx, ce)
	if err != nil {
		return false, err
	}
	r.queries.Satisfiability.Put(key, sat)
	return sat, nil
}

// IsSubclassOf reports whether sub is entailed a subclass of super,
// cached by the ordered pair of structural keys.
func (r *Reasoner) IsSubclassOf(ctx context.Context, sub, super ontology.ClassExpression) (bool, error) {
	key := ontology.ClassExpressionKey(sub) + "<" + ontology.ClassExpressionKey(super)
	if v, ok := r.queries.Subclass.Get(key); ok {
		return v.(bool), nil
	}
	ok, err := r.engine.IsSubclassOf(ctx, sub, super)
	if err != nil {
		return false, err
	}
	r.queries.Subclass.Put(key, ok)
	return ok, nil
}

// AreDisjointClasses reports whether a and b are entailed disjoint.
func (r *Reasoner) AreDisjointClasses(ctx context.Context, a, b ontology.ClassExpression) (bool, error) {
	return r.engine.AreDisjointClasses(ctx, a, b)
}

// GetInstances returns every individual known to be a member of the
// class named by classIRI: direct ClassAssertion axioms, assertions on
// any class listed with it in an EquivalentClasses axiom, and (per spec.md
// §4.2's classify/facade split) every subclass's direct assertions too,
// since instance retrieval is defined over the full extension of a
// class, not merely its direct assertions — compute_instances in
// simple.rs covers only the equivalent-classes case because the
// original's classify step is invoked separately; this facade folds both
// together behind one cached call.
func (r *Reasoner) GetInstances(ctx context.Context, classIRI ontology.IRI) ([]ontology.IRI, error) {
	key := "instances:" + classIRI.String()
	if v, ok := r.queries.Instances.Get(key); ok {
		return append([]ontology.IRI(nil), v.([]ontology.IRI)...), nil
	}

	seen := make(map[string]ontology.IRI)
	addDirect := func(iri string) {
		for _, ax := range r.indexes.ClassAssertionsFor(iri) {
			seen[ax.Individual.IRI.String()] = ax.Individual.IRI
		}
	}
	addDirect(classIRI.String())

	for _, ax := range r.ont.EquivalentClassesAxioms() {
		member := false
		for _, ce := range ax.Classes {
			if atomic, ok := ontology.AsAtomic(ce); ok && atomic.IRI == classIRI {
				member = true
				break
			}
		}
		if !member {
			continue
		}
		for _, ce := range ax.Classes {
			if atomic, ok := ontology.AsAtomic(ce); ok {
				addDirect(atomic.IRI.String())
			}
		}
	}

	hierarchy, err := r.Classify(ctx)
	if err != nil {
		return nil, err
	}
	for _, sub := range hierarchy.GetAllSubclasses(classIRI.String()) {
		addDirect(sub)
	}

	instances := make([]ontology.IRI, 0, len(seen))
	for _, iri := range seen {
		instances = append(instances, iri)
	}
	r.queries.Instances.Put(key, instances)
	return instances, nil
}

// Classify runs full classification and returns the resulting hierarchy.
// Ontologies that validate under the EL profile take the completion-rule
// saturation fast path (reasoner/elsaturation, grounded on the teacher's
// BuildTaxonomy) instead of the tableau-backed five-phase algorithm, since
// EL's restricted syntax is exactly the fragment saturation can classify
// without any pairwise satisfiability queries. Everything else falls back
// to the full classifier.
func (r *Reasoner) Classify(ctx context.Context) (*classify.ClassHierarchy, error) {
	if r.ValidateProfile(profile.ProfileEL).IsValid {
		hierarchy, _ := elsaturation.ClassifyEL(r.ont, r.cfg.ParallelWorkers)
		h, err := classify.FromELSaturation(r.ont, hierarchy)
		if err == nil {
			return h, nil
		}
		r.log.Warn("EL saturation fast path rejected, falling back to tableau classifier", zap.Error(err))
	}

	c := classify.New(r.ont, r.engine, classify.Config{Logger: r.log, ParallelWorkers: r.cfg.ParallelWorkers})
	return c.Classify(ctx)
}

// ValidateProfile checks the ontology against one OWL2 profile, caching
// results in the dedicated three-tier profile cache.
func (r *Reasoner) ValidateProfile(p profile.Profile) *profile.Result {
	key := fmt.Sprintf("profile:%d", p)
	if v, ok := r.profileCache.Get(key, decodeProfileResult); ok {
		return v.(*profile.Result)
	}
	result := profile.Validate(r.ont, p)
	r.profileCache.Put(key, result, encodeProfileResult)
	return result
}

// ValidateAllProfiles runs ValidateProfile for EL, QL, and RL.
func (r *Reasoner) ValidateAllProfiles() []*profile.Result {
	return []*profile.Result{
		r.ValidateProfile(profile.ProfileEL),
		r.ValidateProfile(profile.ProfileQL),
		r.ValidateProfile(profile.ProfileRL),
	}
}

// MostRestrictiveProfile returns the most restrictive profile (EL, then
// QL, then RL) the ontology satisfies, if any.
func (r *Reasoner) MostRestrictiveProfile() (profile.Profile, bool) {
	for _, p := range []profile.Profile{profile.ProfileEL, profile.ProfileQL, profile.ProfileRL} {
		if r.ValidateProfile(p).IsValid {
			return p, true
		}
	}
	return 0, false
}

func encodeProfileResult(v any) ([]byte, error) {
	return gobEncode(v.(*profile.Result))
}

func decodeProfileResult(b []byte) (any, error) {
	var r profile.Result
	if err := gobDecode(b, &r); err != nil {
		return nil, owlerr.Wrap(owlerr.KindInternalInvariant, "ValidateProfile", "failed to decode cached profile result", err)
	}
	return &r, nil
}

// gobEncode/gobDecode back the profile cache's compressed tier
// (ProfileCache.Put's encode callback). ontology.IRI carries its own
// GobEncode/GobDecode, so a Violation's AffectedEntities round-trips by
// string form rather than dropping to zero-value IRIs.
func gobEncode(v any) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func gobDecode(b []byte, v any) error {
	return gob.NewDecoder(bytes.NewReader(b)).Decode(v)
}
