// Package cache implements the reasoner's caching and indexing layer:
// a three-tier profile-validation cache (hot/primary/compressed), four
// expiring query result caches, and always-on inverted indexes over
// class and property assertions. Grounded on AdvancedCacheManager and
// ProfileIndexes from
// original_source/owl2-reasoner/src/profiles/common.rs, generalized from
// a single Owl2Profile key to the reasoner's four distinct query kinds.
package cache

import (
	"container/list"
	"sync"
	"time"
)

// Statistics mirrors CacheStatistics from profiles/common.rs: hit/miss
// counters plus the derived hit rate, shared across every cache tier in
// this package rather than duplicated per tier.
type Statistics struct {
	mu            sync.Mutex
	Hits          int64
	Misses        int64
	Evictions     int64
	HotHits       int64
	CompressedHits int64
}

func (s *Statistics) recordHit()       { s.mu.Lock(); s.Hits++; s.mu.Unlock() }
func (s *Statistics) recordHotHit()    { s.mu.Lock(); s.Hits++; s.HotHits++; s.mu.Unlock() }
func (s *Statistics) recordCompressedHit() {
	s.mu.Lock()
	s.Hits++
	s.CompressedHits++
	s.mu.Unlock()
}
func (s *Statistics) recordMiss()      { s.mu.Lock(); s.Misses++; s.mu.Unlock() }
func (s *Statistics) recordEviction()  { s.mu.Lock(); s.Evictions++; s.mu.Unlock() }

// Snapshot is a point-in-time copy of Statistics safe to hand to callers.
type Snapshot struct {
	Hits           int64
	Misses         int64
	Evictions      int64
	HotHits        int64
	CompressedHits int64
	HitRate        float64
}

func (s *Statistics) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := s.Hits + s.Misses
	rate := 0.0
	if total > 0 {
		rate = float64(s.Hits) / float64(total)
	}
	return Snapshot{
		Hits: s.Hits, Misses: s.Misses, Evictions: s.Evictions,
		HotHits: s.HotHits, CompressedHits: s.CompressedHits, HitRate: rate,
	}
}

// ProfileCacheConfig mirrors ProfileCacheConfig from profiles/common.rs.
type ProfileCacheConfig struct {
	PrimaryCacheSize       int
	CompressedCacheSize    int
	TTL                    time.Duration
	CompressionThreshold   int // entries whose gob-encoded size exceeds this move to the compressed tier
	HotCachePromotionCount int // access count after which an entry is promoted into the hot tier
}

// DefaultProfileCacheConfig mirrors the original's Default impl.
func DefaultProfileCacheConfig() ProfileCacheConfig {
	return ProfileCacheConfig{
		PrimaryCacheSize:       1000,
		CompressedCacheSize:    500,
		TTL:                    time.Hour,
		CompressionThreshold:   1024,
		HotCachePromotionCount: 5,
	}
}

type profileEntry struct {
	value      any
	expiresAt  time.Time
	accessCount int
}

func (e *profileEntry) expired(now time.Time) bool { return now.After(e.expiresAt) }

// primaryElem is what container/list stores so ProfileCache can do O(1)
// LRU eviction without a third-party LRU package — no example repo in the
// corpus vendors an LRU implementation, so this is a deliberate
// standard-library choice (see DESIGN.md).
type primaryElem struct {
	key   string
	entry *profileEntry
}

// ProfileCache is the three-tier cache of spec.md §4.4: a small hot tier
// for entries accessed often enough to earn promotion, a bounded LRU
// primary tier, and a compressed tier (gob-encoded bytes) for large
// results that would otherwise dominate the primary tier's budget.
// Generalizes AdvancedCacheManager to an arbitrary cached value type
// instead of one hardcoded to ProfileValidationResult, since this
// reasoner also wants to cache instance-retrieval results of similar
// shape.
type ProfileCache struct {
	mu sync.Mutex

	cfg   ProfileCacheConfig
	stats Statistics

	hot map[string]*profileEntry

	primaryIndex map[string]*list.Element
	primaryOrder *list.List // front = most recently used

	compressed map[string][]byte
}

// NewProfileCache builds a ProfileCache with cfg, using
// DefaultProfileCacheConfig when cfg is the zero value.
func NewProfileCache(cfg ProfileCacheConfig) *ProfileCache {
	if cfg.PrimaryCacheSize == 0 {
		cfg = DefaultProfileCacheConfig()
	}
	return &ProfileCache{
		cfg:          cfg,
		hot:          make(map[string]*profileEntry),
		primaryIndex: make(map[string]*list.Element),
		primaryOrder: list.New(),
		compressed:   make(map[string][]byte),
	}
}

// Get looks up key across hot, primary, then compressed tiers in that
// order, returning (value, true) on any hit and bumping the entry's
// access counter toward hot-tier promotion.
func (c *ProfileCache) Get(key string, decode func([]byte) (any, error)) (any, bool) {
	now := time.Now()
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.hot[key]; ok {
		if e.expired(now) {
			delete(c.hot, key)
		} else {
			e.accessCount++
			c.stats.recordHotHit()
			return e.value, true
		}
	}

	if el, ok := c.primaryIndex[key]; ok {
		pe := el.Value.(*primaryElem)
		if pe.entry.expired(now) {
			c.primaryOrder.Remove(el)
			delete(c.primaryIndex, key)
		} else {
			c.primaryOrder.MoveToFront(el)
			pe.entry.accessCount++
			c.stats.recordHit()
			c.maybePromote(key, pe.entry)
			return pe.entry.value, true
		}
	}

	if raw, ok := c.compressed[key]; ok {
		value, err := decode(raw)
		if err == nil {
			c.stats.recordCompressedHit()
			return value, true
		}
		delete(c.compressed, key)
	}

	c.stats.recordMiss()
	return nil, false
}

// maybePromote moves an entry from the primary tier into the hot tier
// once its cumulative access count crosses HotCachePromotionCount — the
// "promotion-on-Nth-access" rule, made idempotent by leaving the primary
// copy in place (a race that promotes twice is harmless, just redundant).
func (c *ProfileCache) maybePromote(key string, e *profileEntry) {
	if e.accessCount < c.cfg.HotCachePromotionCount {
		return
	}
	if _, already := c.hot[key]; already {
		return
	}
	c.hot[key] = e
}

// Put inserts value under key, choosing the primary tier normally or the
// compressed tier when encode(value) exceeds CompressionThreshold bytes —
// the size-based tier-selection rule of spec.md §4.4.
func (c *ProfileCache) Put(key string, value any, encode func(any) ([]byte, error)) {
	now := time.Now()
	entry := &profileEntry{value: value, expiresAt: now.Add(c.cfg.TTL)}

	c.mu.Lock()
	defer c.mu.Unlock()

	encoded, err := encode(value)
	if err == nil && len(encoded) > c.cfg.CompressionThreshold {
		c.compressed[key] = encoded
		c.evictCompressedIfNeeded()
		return
	}

	if el, ok := c.primaryIndex[key]; ok {
		el.Value.(*primaryElem).entry = entry
		c.primaryOrder.MoveToFront(el)
		return
	}
	el := c.primaryOrder.PushFront(&primaryElem{key: key, entry: entry})
	c.primaryIndex[key] = el
	c.evictPrimaryIfNeeded()
}

func (c *ProfileCache) evictPrimaryIfNeeded() {
	for c.primaryOrder.Len() > c.cfg.PrimaryCacheSize {
		back := c.primaryOrder.Back()
		if back == nil {
			return
		}
		pe := back.Value.(*primaryElem)
		delete(c.primaryIndex, pe.key)
		c.primaryOrder.Remove(back)
		c.stats.recordEviction()
	}
}

// evictCompressedIfNeeded drops arbitrary entries once the compressed
// tier exceeds its configured size; Go map iteration order is
// unspecified, which is an acceptable eviction policy for a tier whose
// whole purpose is being the overflow for infrequently-reused large
// results (spec.md §4.4 doesn't mandate LRU for this tier specifically).
func (c *ProfileCache) evictCompressedIfNeeded() {
	for len(c.compressed) > c.cfg.CompressedCacheSize {
		for k := range c.compressed {
			delete(c.compressed, k)
			c.stats.recordEviction()
			break
		}
	}
}

// Clear empties every tier and resets statistics.
func (c *ProfileCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.hot = make(map[string]*profileEntry)
	c.primaryIndex = make(map[string]*list.Element)
	c.primaryOrder = list.New()
	c.compressed = make(map[string][]byte)
	c.stats = Statistics{}
}

// Stats returns a snapshot of the cache's hit/miss/eviction counters.
func (c *ProfileCache) Stats() Snapshot {
	return c.stats.Snapshot()
}
