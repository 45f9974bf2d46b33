package search

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/resqnet/protosearch/core"
	"github.com/resqnet/protosearch/query"
	"github.com/resqnet/protosearch/storage/badger"
)

func newRetriever(t *testing.T, opts ...Option) (*Retriever, *badger.Stores) {
	t.Helper()

	stores, err := badger.NewMemoryStores()
	if err != nil {
		t.Fatalf("Failed to create stores: %v", err)
	}
	t.Cleanup(func() { stores.Close() })

	retriever, err := NewRetriever(stores.Protocols, opts...)
	if err != nil {
		t.Fatalf("Failed to create retriever: %v", err)
	}

	return retriever, stores
}

func TestRetrieveScenario(t *testing.T) {
	retriever, stores := newRetriever(t)
	ctx := context.Background()

	_, err := stores.Protocols.AddProtocolChunks(ctx,
		&core.ProtocolChunk{
			OrgId: 42, Title: "Cardiac Arrest Management",
			Body: "Begin CPR immediately.", RegionCode: "OH",
		},
		&core.ProtocolChunk{
			OrgId: 42, Title: "General Assessment",
			Body: "Evaluate for chest pain.", RegionCode: "OH",
		},
		&core.ProtocolChunk{
			OrgId: 42, Title: "Splinting",
			Body: "Immobilize the limb.", RegionCode: "OH",
		},
	)
	if err != nil {
		t.Fatalf("Failed to add chunks: %v", err)
	}

	results, err := retriever.Retrieve(ctx, query.Normalize("cardiac arrest"), Scope{OrgId: 42}, 10)
	if err != nil {
		t.Fatalf("Failed to retrieve: %v", err)
	}

	// Doc A wins on phrase matches; doc B scores only via the "chest
	// pain" synonym; doc C matches nothing and is excluded.
	if len(results) != 2 {
		t.Fatalf("Expected 2 results, got %d", len(results))
	}
	if results[0].Title != "Cardiac Arrest Management" {
		t.Fatalf("Expected phrase match first, got '%s'", results[0].Title)
	}
	if results[1].Title != "General Assessment" {
		t.Fatalf("Expected synonym match second, got '%s'", results[1].Title)
	}
	if results[1].Score >= results[0].Score {
		t.Fatalf("Expected synonym score below phrase score: %f vs %f",
			results[1].Score, results[0].Score)
	}
}

func TestScoringMonotonicity(t *testing.T) {
	retriever, stores := newRetriever(t)
	ctx := context.Background()

	_, err := stores.Protocols.AddProtocolChunks(ctx,
		&core.ProtocolChunk{
			OrgId: 1, Title: "Protocol One",
			Body: "Management of cardiac arrest in the field.", RegionCode: "OH",
		},
		&core.ProtocolChunk{
			OrgId: 1, Title: "Protocol Two",
			Body: "Cardiac monitoring before arrest of transport.", RegionCode: "OH",
		},
	)
	if err != nil {
		t.Fatalf("Failed to add chunks: %v", err)
	}

	results, err := retriever.Retrieve(ctx, query.Normalize("cardiac arrest"), Scope{OrgId: 1}, 10)
	if err != nil {
		t.Fatalf("Failed to retrieve: %v", err)
	}

	if len(results) != 2 {
		t.Fatalf("Expected 2 results, got %d", len(results))
	}
	if results[0].Title != "Protocol One" {
		t.Fatalf("Expected the exact phrase document first, got '%s'", results[0].Title)
	}
	if results[0].Score <= results[1].Score {
		t.Fatalf("Expected strict score gap, got %f vs %f", results[0].Score, results[1].Score)
	}
}

func TestZeroScoreExclusion(t *testing.T) {
	retriever, stores := newRetriever(t)
	ctx := context.Background()

	_, err := stores.Protocols.AddProtocolChunks(ctx, &core.ProtocolChunk{
		OrgId: 1, Title: "Splinting", Body: "Immobilize the limb.", RegionCode: "OH",
	})
	if err != nil {
		t.Fatalf("Failed to add chunk: %v", err)
	}

	results, err := retriever.Retrieve(ctx, query.Normalize("cardiac arrest"), Scope{OrgId: 1}, 10)
	if err != nil {
		t.Fatalf("Failed to retrieve: %v", err)
	}
	if len(results) != 0 {
		t.Fatalf("Expected no results, got %d", len(results))
	}
}

func TestTiesKeepInsertionOrder(t *testing.T) {
	retriever, stores := newRetriever(t)
	ctx := context.Background()

	// Identical bodies score identically
	for i := 0; i < 4; i++ {
		_, err := stores.Protocols.AddProtocolChunks(ctx, &core.ProtocolChunk{
			OrgId: 1, Title: fmt.Sprintf("Protocol %d", i),
			Body: "Administer naloxone for overdose.", RegionCode: "OH",
		})
		if err != nil {
			t.Fatalf("Failed to add chunk %d: %v", i, err)
		}
	}

	results, err := retriever.Retrieve(ctx, query.Normalize("naloxone"), Scope{OrgId: 1}, 10)
	if err != nil {
		t.Fatalf("Failed to retrieve: %v", err)
	}
	if len(results) != 4 {
		t.Fatalf("Expected 4 results, got %d", len(results))
	}
	for i := 1; i < len(results); i++ {
		if results[i-1].Id >= results[i].Id {
			t.Fatalf("Expected insertion order on ties, got %d before %d",
				results[i-1].Id, results[i].Id)
		}
	}
}

func TestTermFrequencyCap(t *testing.T) {
	retriever, stores := newRetriever(t, WithTermFrequencyCap(2))
	ctx := context.Background()

	_, err := stores.Protocols.AddProtocolChunks(ctx,
		&core.ProtocolChunk{
			OrgId: 1, Title: "Repetitive",
			Body: "seizure seizure seizure seizure seizure seizure", RegionCode: "OH",
		},
		&core.ProtocolChunk{
			OrgId: 1, Title: "Sparse",
			Body: "seizure seizure", RegionCode: "OH",
		},
	)
	if err != nil {
		t.Fatalf("Failed to add chunks: %v", err)
	}

	results, err := retriever.Retrieve(ctx, query.Normalize("seizure"), Scope{OrgId: 1}, 10)
	if err != nil {
		t.Fatalf("Failed to retrieve: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("Expected 2 results, got %d", len(results))
	}
	if results[0].Score != results[1].Score {
		t.Fatalf("Expected capped scores to tie, got %f vs %f",
			results[0].Score, results[1].Score)
	}
}

func TestRegionScopeAndScanCap(t *testing.T) {
	retriever, stores := newRetriever(t, WithScanCap(3))
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		region := "OH"
		if i%2 == 1 {
			region = "KY"
		}
		_, err := stores.Protocols.AddProtocolChunks(ctx, &core.ProtocolChunk{
			OrgId: core.ID(i + 1), Title: fmt.Sprintf("Stroke Protocol %d", i),
			Body: "Assess for stroke symptoms.", RegionCode: region,
		})
		if err != nil {
			t.Fatalf("Failed to add chunk %d: %v", i, err)
		}
	}

	// Region scope sees only that region
	results, err := retriever.Retrieve(ctx, query.Normalize("stroke"), Scope{RegionCode: "KY"}, 10)
	if err != nil {
		t.Fatalf("Failed to retrieve: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("Expected 2 KY results, got %d", len(results))
	}

	// Unscoped retrieval reads at most scanCap documents
	results, err = retriever.Retrieve(ctx, query.Normalize("stroke"), Scope{}, 10)
	if err != nil {
		t.Fatalf("Failed to retrieve: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("Expected scan capped at 3 candidates, got %d results", len(results))
	}
}

func TestEmptyQueryReturnsNothing(t *testing.T) {
	retriever, stores := newRetriever(t)
	ctx := context.Background()

	_, err := stores.Protocols.AddProtocolChunks(ctx, &core.ProtocolChunk{
		OrgId: 1, Title: "Airway", Body: "Open the airway.", RegionCode: "OH",
	})
	if err != nil {
		t.Fatalf("Failed to add chunk: %v", err)
	}

	results, err := retriever.Retrieve(ctx, query.Normalize("   "), Scope{}, 10)
	if err != nil {
		t.Fatalf("Expected no error for empty query, got %v", err)
	}
	if len(results) != 0 {
		t.Fatalf("Expected no results for empty query, got %d", len(results))
	}
}

func TestRetrievalUnavailable(t *testing.T) {
	retriever, stores := newRetriever(t)

	// Closing the database underneath the repository makes retrieval
	// surface the unavailable condition
	stores.Backend().Close()

	_, err := retriever.Retrieve(context.Background(), query.Normalize("stroke"), Scope{}, 10)
	if !errors.Is(err, ErrRetrievalUnavailable) {
		t.Fatalf("Expected ErrRetrievalUnavailable, got %v", err)
	}
}

func TestRetrieveWithMonitor(t *testing.T) {
	retriever, stores := newRetriever(t)
	ctx := context.Background()

	_, err := stores.Protocols.AddProtocolChunks(ctx,
		&core.ProtocolChunk{
			OrgId: 9, Title: "Cardiac Arrest",
			Body: "Begin compressions for cardiac arrest.", RegionCode: "OH",
		},
		&core.ProtocolChunk{
			OrgId: 9, Title: "Splinting",
			Body: "Immobilize the limb.", RegionCode: "OH",
		},
	)
	if err != nil {
		t.Fatalf("Failed to add chunks: %v", err)
	}

	monitor := &testMonitor{}
	results, err := retriever.RetrieveWithMonitor(ctx, query.Normalize("cardiac arrest"), Scope{OrgId: 9}, 10, monitor)
	if err != nil {
		t.Fatalf("Failed to retrieve: %v", err)
	}

	if monitor.startedWith != "cardiac arrest" {
		t.Fatalf("Expected monitor started with canonical query, got %q", monitor.startedWith)
	}
	if monitor.candidates != 2 {
		t.Fatalf("Expected 2 candidates observed, got %d", monitor.candidates)
	}
	if monitor.scored != 2 {
		t.Fatalf("Expected 2 documents scored, got %d", monitor.scored)
	}
	if monitor.finished != len(results) {
		t.Fatalf("Expected Finish with %d results, got %d", len(results), monitor.finished)
	}
}

// testMonitor is a simple test implementation of SearchMonitor
type testMonitor struct {
	startedWith string
	candidates  int
	scored      int
	finished    int
}

func (m *testMonitor) Start(query string) {
	m.startedWith = query
}

func (m *testMonitor) AfterCandidateFetch(candidates []*core.ProtocolChunk) {
	m.candidates = len(candidates)
}

func (m *testMonitor) DocumentScored(id core.ID, score float64) {
	m.scored++
}

func (m *testMonitor) Finish(results []core.RankedDocument) {
	m.finished = len(results)
}

func TestPhraseAcrossFieldBoundaryDoesNotMatch(t *testing.T) {
	retriever, stores := newRetriever(t)
	ctx := context.Background()

	// The query phrase only appears when title and section are read as
	// one string; neither field contains it on its own.
	_, err := stores.Protocols.AddProtocolChunks(ctx,
		&core.ProtocolChunk{
			OrgId: 11, Title: "Adult Cardiac", Section: "Arrest Rhythms",
			Body: "Follow the rhythm-appropriate pathway.", RegionCode: "OH",
		},
		&core.ProtocolChunk{
			OrgId: 11, Title: "Resuscitation",
			Body: "Treat cardiac arrest per the pathway.", RegionCode: "OH",
		},
	)
	if err != nil {
		t.Fatalf("Failed to add chunks: %v", err)
	}

	results, err := retriever.Retrieve(ctx, query.Normalize("cardiac arrest"), Scope{OrgId: 11}, 10)
	if err != nil {
		t.Fatalf("Failed to retrieve: %v", err)
	}

	if len(results) != 1 {
		t.Fatalf("Expected 1 result, got %d", len(results))
	}
	if results[0].Title != "Resuscitation" {
		t.Fatalf("Expected the in-field phrase match, got '%s'", results[0].Title)
	}
}
