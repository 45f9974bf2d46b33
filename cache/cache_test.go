package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/resqnet/protosearch/core"
	"github.com/resqnet/protosearch/query"
	"github.com/resqnet/protosearch/search"
	"github.com/resqnet/protosearch/storage/badger"
)

func TestKeyForDeterminism(t *testing.T) {
	scope := search.Scope{OrgId: 5}

	k1 := KeyFor("cardiac arrest", scope)
	k2 := KeyFor("cardiac arrest", scope)
	if k1 != k2 {
		t.Fatalf("Expected identical keys, got %s and %s", k1, k2)
	}

	// Raw queries differing only in case/whitespace normalize to the
	// same canonical string and must share an entry
	a := query.Normalize("Cardiac Arrest")
	b := query.Normalize("cardiac   arrest")
	if KeyFor(a.Normalized, scope) != KeyFor(b.Normalized, scope) {
		t.Fatal("Expected equivalent queries to share a key")
	}
}

func TestKeyForScopeDimensions(t *testing.T) {
	base := KeyFor("stroke", search.Scope{})
	byOrg := KeyFor("stroke", search.Scope{OrgId: 5})
	byRegion := KeyFor("stroke", search.Scope{RegionCode: "OH"})

	if base == byOrg || base == byRegion || byOrg == byRegion {
		t.Fatal("Expected every scope dimension to change the key")
	}

	// Region code comparison is case-insensitive
	if KeyFor("stroke", search.Scope{RegionCode: "oh"}) != byRegion {
		t.Fatal("Expected region case to not change the key")
	}
}

func TestCacheRoundTrip(t *testing.T) {
	stores, err := badger.NewMemoryStores()
	if err != nil {
		t.Fatalf("Failed to create stores: %v", err)
	}
	defer stores.Close()

	resultCache, err := NewResultCache(stores.Cache)
	if err != nil {
		t.Fatalf("Failed to create cache: %v", err)
	}

	ctx := context.Background()
	key := KeyFor("cardiac arrest", search.Scope{OrgId: 42})

	if got := resultCache.Get(ctx, key); got != nil {
		t.Fatalf("Expected miss on empty cache, got %+v", got)
	}

	rs := &core.ResultSet{
		Results:         []core.RankedDocument{{Id: 1, Title: "Cardiac Arrest Management", Score: 15}},
		TotalFound:      1,
		NormalizedQuery: "cardiac arrest",
	}
	resultCache.Put(ctx, key, rs)

	got := resultCache.Get(ctx, key)
	if got == nil {
		t.Fatal("Expected hit after put")
	}
	if got.NormalizedQuery != "cardiac arrest" || len(got.Results) != 1 {
		t.Fatalf("Expected payload to round-trip, got %+v", got)
	}

	stats := resultCache.Stats()
	if stats.Hits != 1 || stats.Misses != 1 {
		t.Fatalf("Expected 1 hit and 1 miss, got %+v", stats)
	}
}

func TestCacheErrorsDegradeToMiss(t *testing.T) {
	stores, err := badger.NewMemoryStores()
	if err != nil {
		t.Fatalf("Failed to create stores: %v", err)
	}

	resultCache, err := NewResultCache(stores.Cache)
	if err != nil {
		t.Fatalf("Failed to create cache: %v", err)
	}

	// An unreachable store must degrade to recompute-always
	stores.Close()

	ctx := context.Background()
	key := KeyFor("stroke", search.Scope{})

	if got := resultCache.Get(ctx, key); got != nil {
		t.Fatalf("Expected store failure to read as miss, got %+v", got)
	}

	// Put must not panic or surface the error
	resultCache.Put(ctx, key, &core.ResultSet{NormalizedQuery: "stroke"})
}

func TestNewResultCacheValidation(t *testing.T) {
	if _, err := NewResultCache(nil); !errors.Is(err, ErrCacheStoreRequired) {
		t.Fatalf("Expected ErrCacheStoreRequired, got %v", err)
	}
}

func TestRecordLatency(t *testing.T) {
	stores, err := badger.NewMemoryStores()
	if err != nil {
		t.Fatalf("Failed to create stores: %v", err)
	}
	defer stores.Close()

	resultCache, err := NewResultCache(stores.Cache, WithTTL(10*time.Minute))
	if err != nil {
		t.Fatalf("Failed to create cache: %v", err)
	}

	resultCache.RecordLatency(true, 2*time.Millisecond)
	resultCache.RecordLatency(true, 4*time.Millisecond)
	resultCache.RecordLatency(false, 20*time.Millisecond)

	stats := resultCache.Stats()
	if stats.AvgHitLatency != 3*time.Millisecond {
		t.Fatalf("Expected 3ms average hit latency, got %v", stats.AvgHitLatency)
	}
	if stats.AvgMissLatency != 20*time.Millisecond {
		t.Fatalf("Expected 20ms average miss latency, got %v", stats.AvgMissLatency)
	}
}
