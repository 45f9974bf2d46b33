package storage

import (
	"context"
	"time"

	"github.com/resqnet/protosearch/core"
)

// AgencyRepository provides read/write access to registry store agencies.
type AgencyRepository interface {
	// AddAgencies adds one or more agencies to the registry.
	// For agencies with ID=0, generates new IDs from sequence.
	// Sets InsertedAt/UpdatedAt timestamps.
	// Returns the agencies with generated IDs populated.
	AddAgencies(ctx context.Context, agencies ...*core.Agency) ([]*core.Agency, error)

	// GetAgency retrieves a single agency by ID.
	// Returns ErrNotFound if the agency doesn't exist.
	GetAgency(ctx context.Context, id core.ID) (*core.Agency, error)

	// ListAgencies retrieves all agencies, ordered by ID.
	ListAgencies(ctx context.Context) ([]*core.Agency, error)

	// ListAgenciesByRegion retrieves agencies with the given region code,
	// ordered by ID.
	ListAgenciesByRegion(ctx context.Context, regionCode string) ([]*core.Agency, error)

	// Close closes the repository and releases resources.
	Close() error
}

// UserRepository provides access to registry store user accounts and their
// daily usage counters.
type UserRepository interface {
	// AddUsers adds one or more users. For users with ID=0, generates new
	// IDs from sequence. Returns the users with generated IDs populated.
	AddUsers(ctx context.Context, users ...*core.User) ([]*core.User, error)

	// GetUser retrieves a single user by ID.
	// Returns ErrNotFound if the user doesn't exist.
	GetUser(ctx context.Context, id core.ID) (*core.User, error)

	// GetUserByOpenId retrieves a user by external identity.
	// Returns ErrNotFound if no such user exists.
	GetUserByOpenId(ctx context.Context, openId string) (*core.User, error)

	// IncrementQueryCount atomically applies the daily counter update for
	// one query attempt: if the stored LastQueryDate differs from today the
	// counter resets to zero first, then it is incremented and persisted.
	// The read-modify-write is a single conditional update; two concurrent
	// callers can never observe the same pre-increment count and both
	// commit. Returns the post-increment count.
	IncrementQueryCount(ctx context.Context, id core.ID, today string) (int64, error)

	// SetSelectedAgency updates the user's selected agency.
	SetSelectedAgency(ctx context.Context, id, agencyId core.ID) error

	// Close closes the repository and releases resources.
	Close() error
}

// ContentStats summarizes the content store corpus.
type ContentStats struct {
	TotalChunks    int64
	TotalOrgs      int64
	RegionsCovered int64
}

// ProtocolRepository provides access to the content store: protocol chunks
// and the organization descriptors they hang off. The content store's org
// ids are NOT registry agency ids.
type ProtocolRepository interface {
	// AddOrgs upserts organization descriptors.
	AddOrgs(ctx context.Context, orgs ...*core.OrgDescriptor) error

	// ListOrgs retrieves all organization descriptors, ordered by OrgId.
	ListOrgs(ctx context.Context) ([]*core.OrgDescriptor, error)

	// AddProtocolChunks adds chunks to the content store. For chunks with
	// ID=0, generates new IDs from sequence; sequence IDs are monotonic so
	// ascending ID order is insertion order. Sets InsertedAt.
	AddProtocolChunks(ctx context.Context, chunks ...*core.ProtocolChunk) ([]*core.ProtocolChunk, error)

	// GetProtocolChunk retrieves a single chunk by ID.
	// Returns ErrNotFound if the chunk doesn't exist.
	GetProtocolChunk(ctx context.Context, id core.ID) (*core.ProtocolChunk, error)

	// GetChunksByOrg retrieves all chunks for one content-store org,
	// ordered by insertion (ascending ID).
	GetChunksByOrg(ctx context.Context, orgId core.ID) ([]*core.ProtocolChunk, error)

	// GetChunksByRegion retrieves all chunks for one region code, ordered
	// by insertion (ascending ID).
	GetChunksByRegion(ctx context.Context, regionCode string) ([]*core.ProtocolChunk, error)

	// ScanChunks retrieves up to max chunks with no scope filter, ordered
	// by insertion. max bounds the scan; it is never "all".
	ScanChunks(ctx context.Context, max int) ([]*core.ProtocolChunk, error)

	// Stats reports corpus counts.
	Stats(ctx context.Context) (ContentStats, error)

	// Close closes the repository and releases resources.
	Close() error
}

// CacheStore provides get/put-with-TTL semantics over opaque string keys.
// Expiry is enforced by the store itself; callers never sweep.
type CacheStore interface {
	// Get retrieves a payload. Returns ErrNotFound on a miss or an expired
	// entry.
	Get(ctx context.Context, key string) ([]byte, error)

	// Put stores a payload that expires after ttl. The write is
	// all-or-nothing.
	Put(ctx context.Context, key string, payload []byte, ttl time.Duration) error

	// Close closes the store.
	Close() error
}

// CheckpointRepository persists import pipeline progress.
type CheckpointRepository interface {
	// SaveCheckpoint stores a checkpoint, replacing any previous checkpoint
	// for the same source.
	SaveCheckpoint(ctx context.Context, checkpoint *core.ImportCheckpoint) error

	// GetCheckpoint retrieves the checkpoint for a source.
	// Returns ErrNotFound if none has been saved.
	GetCheckpoint(ctx context.Context, source string) (*core.ImportCheckpoint, error)

	// Close closes the repository.
	Close() error
}
