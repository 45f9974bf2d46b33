package storage

import (
	"testing"
	"time"

	"github.com/resqnet/protosearch/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalUnmarshalID(t *testing.T) {
	tests := []struct {
		name string
		id   core.ID
	}{
		{"zero ID", core.ID(0)},
		{"small ID", core.ID(42)},
		{"large ID", core.ID(18446744073709551615)}, // max uint64
		{"content-based ID", core.IDFromContent("cardiac arrest|org:3")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := MarshalID(tt.id)
			require.NotEmpty(t, data)

			decoded, err := UnmarshalID(data)
			require.NoError(t, err)
			assert.Equal(t, tt.id, decoded)
		})
	}
}

func TestUnmarshalID_Invalid(t *testing.T) {
	_, err := UnmarshalID([]byte{})
	assert.Error(t, err)
}

func TestMarshalUnmarshalProtocolChunk(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Microsecond)

	chunk := &core.ProtocolChunk{
		Id:             7,
		OrgId:          3,
		DocumentNumber: "7.02",
		Title:          "Cardiac Arrest - Adult",
		Section:        "Resuscitation",
		Body:           "Begin compressions at 100-120 per minute.",
		Vector:         []float32{0.1, -0.5, 0.25},
		RegionCode:     "OH",
		InsertedAt:     now,
	}

	data := MarshalProtocolChunk(chunk)
	require.NotEmpty(t, data)

	decoded, err := UnmarshalProtocolChunk(data)
	require.NoError(t, err)
	assert.Equal(t, chunk, decoded)
}

func TestMarshalUnmarshalUser(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Microsecond)

	user := &core.User{
		Id:               12,
		OpenId:           "oidc|abc123",
		Name:             "Jordan Reyes",
		Email:            "jordan@example.org",
		Tier:             core.TierPro,
		QueryCountToday:  41,
		LastQueryDate:    "2026-08-30",
		SelectedAgencyId: 5,
		InsertedAt:       now,
		UpdatedAt:        now,
	}

	data := MarshalUser(user)
	require.NotEmpty(t, data)

	decoded, err := UnmarshalUser(data)
	require.NoError(t, err)
	assert.Equal(t, user, decoded)
}

func TestMarshalUnmarshalResultSet(t *testing.T) {
	rs := &core.ResultSet{
		Results: []core.RankedDocument{
			{
				Id:             1,
				OrgId:          3,
				AgencyName:     "Hamilton County EMS",
				RegionCode:     "OH",
				DocumentNumber: "7.02",
				Title:          "Cardiac Arrest - Adult",
				Section:        "Resuscitation",
				Preview:        "Begin compressions",
				Body:           "Begin compressions at 100-120 per minute.",
				Score:          12.5,
			},
		},
		TotalFound:      1,
		NormalizedQuery: "cardiac arrest",
	}

	data := MarshalResultSet(rs)
	require.NotEmpty(t, data)

	decoded, err := UnmarshalResultSet(data)
	require.NoError(t, err)
	assert.Equal(t, rs, decoded)
}

func TestMarshalUnmarshalImportCheckpoint(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Microsecond)

	checkpoint := &core.ImportCheckpoint{
		Source:      "oh-protocols-2026.json",
		ChunksDone:  1200,
		CompletedAt: now,
	}

	data := MarshalImportCheckpoint(checkpoint)
	require.NotEmpty(t, data)

	decoded, err := UnmarshalImportCheckpoint(data)
	require.NoError(t, err)
	assert.Equal(t, checkpoint, decoded)
}
