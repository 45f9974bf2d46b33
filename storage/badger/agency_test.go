package badger

import (
	"context"
	"errors"
	"testing"

	"github.com/resqnet/protosearch/core"
	"github.com/resqnet/protosearch/storage"
)

func TestAgencyBasics(t *testing.T) {
	stores, err := NewMemoryStores()
	if err != nil {
		t.Fatalf("Failed to create stores: %v", err)
	}
	defer stores.Close()

	ctx := context.Background()

	added, err := stores.Agencies.AddAgencies(ctx, &core.Agency{
		Name:       "Hamilton County EMS",
		RegionCode: "OH",
		RegionName: "Ohio",
	})
	if err != nil {
		t.Fatalf("Failed to add agency: %v", err)
	}
	if added[0].Id == 0 {
		t.Fatal("Expected non-zero ID")
	}

	retrieved, err := stores.Agencies.GetAgency(ctx, added[0].Id)
	if err != nil {
		t.Fatalf("Failed to get agency: %v", err)
	}
	if retrieved.Name != "Hamilton County EMS" {
		t.Fatalf("Expected name to round-trip, got '%s'", retrieved.Name)
	}

	_, err = stores.Agencies.GetAgency(ctx, 99999)
	if !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("Expected ErrNotFound, got %v", err)
	}
}

func TestAgencyValidation(t *testing.T) {
	stores, err := NewMemoryStores()
	if err != nil {
		t.Fatalf("Failed to create stores: %v", err)
	}
	defer stores.Close()

	ctx := context.Background()

	_, err = stores.Agencies.AddAgencies(ctx, &core.Agency{Name: "", RegionCode: "OH"})
	if !errors.Is(err, core.ErrInvalidAgency) {
		t.Fatalf("Expected ErrInvalidAgency, got %v", err)
	}

	_, err = stores.Agencies.AddAgencies(ctx, &core.Agency{Name: "X", RegionCode: "Ohio"})
	if !errors.Is(err, core.ErrInvalidRegionCode) {
		t.Fatalf("Expected ErrInvalidRegionCode, got %v", err)
	}
}

func TestListAgenciesByRegion(t *testing.T) {
	stores, err := NewMemoryStores()
	if err != nil {
		t.Fatalf("Failed to create stores: %v", err)
	}
	defer stores.Close()

	ctx := context.Background()

	_, err = stores.Agencies.AddAgencies(ctx,
		&core.Agency{Name: "Hamilton County EMS", RegionCode: "OH", RegionName: "Ohio"},
		&core.Agency{Name: "Jefferson County EMS", RegionCode: "KY", RegionName: "Kentucky"},
		&core.Agency{Name: "Franklin County EMS", RegionCode: "OH", RegionName: "Ohio"},
	)
	if err != nil {
		t.Fatalf("Failed to add agencies: %v", err)
	}

	all, err := stores.Agencies.ListAgencies(ctx)
	if err != nil {
		t.Fatalf("Failed to list agencies: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("Expected 3 agencies, got %d", len(all))
	}
	for i := 1; i < len(all); i++ {
		if all[i-1].Id >= all[i].Id {
			t.Fatalf("Expected ascending ID order, got %d before %d", all[i-1].Id, all[i].Id)
		}
	}

	ohio, err := stores.Agencies.ListAgenciesByRegion(ctx, "oh")
	if err != nil {
		t.Fatalf("Failed to list agencies by region: %v", err)
	}
	if len(ohio) != 2 {
		t.Fatalf("Expected 2 Ohio agencies, got %d", len(ohio))
	}
}
