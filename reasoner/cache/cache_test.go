package cache

import (
	"testing"
	"time"

	"github.com/nodeadmin/owl2-reasoner/ontology"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func encodeInt(v any) ([]byte, error) {
	return []byte{byte(v.(int))}, nil
}

func decodeInt(b []byte) (any, error) {
	return int(b[0]), nil
}

func TestProfileCache_HitsAcrossTiers(t *testing.T) {
	defer goleak.VerifyNone(t)

	c := NewProfileCache(ProfileCacheConfig{
		PrimaryCacheSize:       2,
		CompressedCacheSize:    2,
		TTL:                    time.Minute,
		CompressionThreshold:   1000,
		HotCachePromotionCount: 2,
	})

	c.Put("a", 1, encodeInt)
	v, ok := c.Get("a", decodeInt)
	require.True(t, ok)
	require.Equal(t, 1, v)

	// second access should cross HotCachePromotionCount and promote.
	_, ok = c.Get("a", decodeInt)
	require.True(t, ok)
	stats := c.Stats()
	require.GreaterOrEqual(t, stats.Hits, int64(2))
}

func TestProfileCache_PrimaryEvictsLRU(t *testing.T) {
	defer goleak.VerifyNone(t)

	c := NewProfileCache(ProfileCacheConfig{
		PrimaryCacheSize:       1,
		CompressedCacheSize:    10,
		TTL:                    time.Minute,
		CompressionThreshold:   1000,
		HotCachePromotionCount: 1000, // never promote, isolate LRU behavior
	})

	c.Put("a", 1, encodeInt)
	c.Put("b", 2, encodeInt)

	_, ok := c.Get("a", decodeInt)
	require.False(t, ok, "a should have been evicted once b pushed the primary tier past its size-1 limit")

	v, ok := c.Get("b", decodeInt)
	require.True(t, ok)
	require.Equal(t, 2, v)
}

func TestProfileCache_CompressedTierForLargeEntries(t *testing.T) {
	defer goleak.VerifyNone(t)

	c := NewProfileCache(ProfileCacheConfig{
		PrimaryCacheSize:       10,
		CompressedCacheSize:    10,
		TTL:                    time.Minute,
		CompressionThreshold:   0, // force every entry into the compressed tier
		HotCachePromotionCount: 1000,
	})

	c.Put("big", 7, encodeInt)
	v, ok := c.Get("big", decodeInt)
	require.True(t, ok)
	require.Equal(t, 7, v)
	require.Equal(t, int64(1), c.Stats().CompressedHits)
}

func TestProfileCache_TTLExpiry(t *testing.T) {
	defer goleak.VerifyNone(t)

	c := NewProfileCache(ProfileCacheConfig{
		PrimaryCacheSize:       10,
		CompressedCacheSize:    10,
		TTL:                    -time.Second, // already expired at insert time
		CompressionThreshold:   1000,
		HotCachePromotionCount: 1000,
	})

	c.Put("a", 1, encodeInt)
	_, ok := c.Get("a", decodeInt)
	require.False(t, ok)
}

func TestQueryCache_InvalidateAll(t *testing.T) {
	defer goleak.VerifyNone(t)

	qc := NewQueryCaches(time.Minute, time.Minute, time.Minute, time.Minute)
	qc.Consistency.Put("ont", true)
	qc.Subclass.Put("A<B", true)

	_, ok := qc.Consistency.Get("ont")
	require.True(t, ok)

	qc.InvalidateAll()

	_, ok = qc.Consistency.Get("ont")
	require.False(t, ok)
	_, ok = qc.Subclass.Get("A<B")
	require.False(t, ok)
}

func TestIndexes_RebuildAndLookup(t *testing.T) {
	defer goleak.VerifyNone(t)

	personIRI, err := ontology.NewIRI("http://example.org/Person")
	require.NoError(t, err)
	aliceIRI, err := ontology.NewIRI("http://example.org/alice")
	require.NoError(t, err)

	person := ontology.NewClass(personIRI)
	alice := ontology.NewNamedIndividual(aliceIRI)

	ont := ontology.New()
	ont.Declare(person)
	ont.Declare(alice)
	require.NoError(t, ont.Add(ontology.ClassAssertionAxiom{
		Individual: alice,
		Class:      ontology.AtomicClass{IRI: personIRI},
	}))

	idx := NewIndexes()
	idx.Rebuild(ont)

	assertions := idx.ClassAssertionsFor(personIRI.String())
	require.Len(t, assertions, 1)
	require.Equal(t, alice.IRI.String(), assertions[0].Individual.IRI.String())
}
