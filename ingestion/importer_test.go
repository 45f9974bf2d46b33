package ingestion

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/resqnet/protosearch/core"
	"github.com/resqnet/protosearch/storage/badger"
)

func newImporter(t *testing.T, opts ...Option) (*Importer, *badger.Stores) {
	t.Helper()

	stores, err := badger.NewMemoryStores()
	if err != nil {
		t.Fatalf("Failed to create stores: %v", err)
	}
	t.Cleanup(func() { stores.Close() })

	importer, err := NewImporter(stores.Protocols, stores.Checkpoints, opts...)
	if err != nil {
		t.Fatalf("Failed to create importer: %v", err)
	}
	t.Cleanup(importer.Release)

	return importer, stores
}

func sampleDocs() []Document {
	return []Document{
		{
			OrgId: 1, OrgName: "Hamilton County EMS", RegionCode: "OH",
			DocumentNumber: "7.02", Title: "Cardiac Arrest - Adult",
			Section: "Resuscitation",
			Body:    "Begin compressions at 100-120 per minute.",
		},
		{
			OrgId: 1, OrgName: "Hamilton County EMS", RegionCode: "OH",
			DocumentNumber: "7.03", Title: "Stroke",
			Body: "Perform a stroke scale and check glucose.",
		},
		{
			OrgId: 2, OrgName: "Davidson County EMS", RegionCode: "TN",
			DocumentNumber: "3.01", Title: "Anaphylaxis",
			Body: "Administer epinephrine intramuscularly.",
		},
	}
}

func TestImportBasics(t *testing.T) {
	importer, stores := newImporter(t)
	ctx := context.Background()

	report, err := importer.Import(ctx, "sample-2026", sampleDocs())
	if err != nil {
		t.Fatalf("Failed to import: %v", err)
	}
	if report.Documents != 3 || report.Chunks != 3 || report.Orgs != 2 || report.Skipped != 0 {
		t.Fatalf("Unexpected report: %+v", report)
	}

	orgs, err := stores.Protocols.ListOrgs(ctx)
	if err != nil {
		t.Fatalf("Failed to list orgs: %v", err)
	}
	if len(orgs) != 2 {
		t.Fatalf("Expected 2 orgs, got %d", len(orgs))
	}

	chunks, err := stores.Protocols.GetChunksByOrg(ctx, 1)
	if err != nil {
		t.Fatalf("Failed to get chunks: %v", err)
	}
	if len(chunks) != 2 {
		t.Fatalf("Expected 2 chunks for org 1, got %d", len(chunks))
	}

	checkpoint, err := stores.Checkpoints.GetCheckpoint(ctx, "sample-2026")
	if err != nil {
		t.Fatalf("Failed to get checkpoint: %v", err)
	}
	if checkpoint.ChunksDone != 3 || checkpoint.CompletedAt.IsZero() {
		t.Fatalf("Expected completed checkpoint, got %+v", checkpoint)
	}
}

func TestImportSplitsLongBodies(t *testing.T) {
	importer, stores := newImporter(t)
	ctx := context.Background()

	long := strings.Repeat("Assess the airway and maintain spinal alignment. ", 100)
	docs := []Document{{
		OrgId: 1, OrgName: "Hamilton County EMS", RegionCode: "OH",
		DocumentNumber: "5.01", Title: "Spinal Care", Body: long,
	}}

	report, err := importer.Import(ctx, "long-2026", docs)
	if err != nil {
		t.Fatalf("Failed to import: %v", err)
	}
	if report.Chunks < 2 {
		t.Fatalf("Expected the long body to split into multiple chunks, got %d", report.Chunks)
	}

	chunks, err := stores.Protocols.GetChunksByOrg(ctx, 1)
	if err != nil {
		t.Fatalf("Failed to get chunks: %v", err)
	}
	for _, chunk := range chunks {
		if chunk.Title != "Spinal Care" {
			t.Fatalf("Expected every chunk to keep the document title, got '%s'", chunk.Title)
		}
		if len(chunk.Body) == 0 {
			t.Fatal("Expected non-empty chunk bodies")
		}
	}
}

func TestImportResumesFromCheckpoint(t *testing.T) {
	importer, stores := newImporter(t, WithBatchSize(1))
	ctx := context.Background()

	docs := sampleDocs()

	// Simulate an interrupted earlier run that committed one chunk
	err := stores.Checkpoints.SaveCheckpoint(ctx, &core.ImportCheckpoint{
		Source:     "resume-2026",
		ChunksDone: 1,
	})
	if err != nil {
		t.Fatalf("Failed to seed checkpoint: %v", err)
	}

	report, err := importer.Import(ctx, "resume-2026", docs)
	if err != nil {
		t.Fatalf("Failed to import: %v", err)
	}
	if report.Skipped != 1 {
		t.Fatalf("Expected 1 skipped chunk, got %d", report.Skipped)
	}

	stats, err := stores.Protocols.Stats(ctx)
	if err != nil {
		t.Fatalf("Failed to get stats: %v", err)
	}
	if stats.TotalChunks != 2 {
		t.Fatalf("Expected only the remaining 2 chunks written, got %d", stats.TotalChunks)
	}
}

func TestImportRequiresSource(t *testing.T) {
	importer, _ := newImporter(t)

	_, err := importer.Import(context.Background(), "", sampleDocs())
	if !errors.Is(err, ErrSourceRequired) {
		t.Fatalf("Expected ErrSourceRequired, got %v", err)
	}
}
