// Copyright 2026 Resqnet Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package badger

import (
	"context"
	"slices"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/resqnet/protosearch/core"
	"github.com/resqnet/protosearch/storage"
)

// ProtocolRepository implements storage.ProtocolRepository for BadgerDB.
type ProtocolRepository struct {
	backend *Backend
	idSeq   *badger.Sequence
}

var _ storage.ProtocolRepository = (*ProtocolRepository)(nil)

// NewProtocolRepository creates a new ProtocolRepository.
func NewProtocolRepository(backend *Backend) (*ProtocolRepository, error) {
	idSeq, err := backend.GetSequence(chunkIDSeq)
	if err != nil {
		return nil, err
	}

	return &ProtocolRepository{
		backend: backend,
		idSeq:   idSeq,
	}, nil
}

// Close releases the ID sequence.
func (r *ProtocolRepository) Close() error {
	return r.idSeq.Release()
}

// AddOrgs upserts organization descriptors.
func (r *ProtocolRepository) AddOrgs(ctx context.Context, orgs ...*core.OrgDescriptor) error {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, org := range orgs {
			if org.Name == "" {
				return core.ErrEmptyName
			}
			if err := tx.Set(makeOrgKey(org.OrgId), storage.MarshalOrgDescriptor(org)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)

	return translateErr(err)
}

// ListOrgs retrieves all organization descriptors, ordered by OrgId.
func (r *ProtocolRepository) ListOrgs(ctx context.Context) ([]*core.OrgDescriptor, error) {
	var orgs []*core.OrgDescriptor

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(orgRecordPrefix + ":")
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			var org *core.OrgDescriptor
			err := iter.Item().Value(func(val []byte) error {
				var err error
				org, err = storage.UnmarshalOrgDescriptor(val)
				return err
			})
			if err != nil {
				return err
			}
			orgs = append(orgs, org)
		}
		return nil
	}, false)

	if err != nil {
		return nil, translateErr(err)
	}

	// Org keys are decimal strings, so re-sort numerically.
	slices.SortFunc(orgs, func(a, b *core.OrgDescriptor) int {
		if a.OrgId < b.OrgId {
			return -1
		}
		if a.OrgId > b.OrgId {
			return 1
		}
		return 0
	})
	return orgs, nil
}

// AddProtocolChunks adds chunks to the content store.
func (r *ProtocolRepository) AddProtocolChunks(ctx context.Context, chunks ...*core.ProtocolChunk) ([]*core.ProtocolChunk, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, chunk := range chunks {
			if err := core.ValidateProtocolChunk(chunk); err != nil {
				return err
			}

			if chunk.Id == 0 {
				nextID, err := r.idSeq.Next()
				if err != nil {
					return err
				}
				// BadgerDB sequences can return 0 on first call, so we skip it
				if nextID == 0 {
					nextID, err = r.idSeq.Next()
					if err != nil {
						return err
					}
				}
				chunk.Id = core.ID(nextID)
			}

			chunk.InsertedAt = time.Now().UTC()

			if err := tx.Set(makeChunkKey(chunk.Id), storage.MarshalProtocolChunk(chunk)); err != nil {
				return err
			}
			// Org and region index entries point back at the primary key
			if err := tx.Set(makeChunkOrgKey(chunk.OrgId, chunk.Id), nil); err != nil {
				return err
			}
			if err := tx.Set(makeChunkRegionKey(strings.ToUpper(chunk.RegionCode), chunk.Id), nil); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)

	return chunks, translateErr(err)
}

// GetProtocolChunk retrieves a single chunk by ID.
func (r *ProtocolRepository) GetProtocolChunk(ctx context.Context, id core.ID) (*core.ProtocolChunk, error) {
	var chunk *core.ProtocolChunk

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		var err error
		chunk, err = readChunk(tx, id)
		return err
	}, false)

	if err != nil {
		return nil, translateErr(err)
	}
	return chunk, nil
}

// GetChunksByOrg retrieves all chunks for one content-store org, in
// insertion order.
func (r *ProtocolRepository) GetChunksByOrg(ctx context.Context, orgId core.ID) ([]*core.ProtocolChunk, error) {
	chunks, err := r.collectByIndex(ctx, makePartialChunkOrgKey(orgId))
	return chunks, translateErr(err)
}

// GetChunksByRegion retrieves all chunks for one region code, in insertion
// order.
func (r *ProtocolRepository) GetChunksByRegion(ctx context.Context, regionCode string) ([]*core.ProtocolChunk, error) {
	chunks, err := r.collectByIndex(ctx, makePartialChunkRegionKey(strings.ToUpper(regionCode)))
	return chunks, translateErr(err)
}

// collectByIndex walks an index prefix and resolves each entry to its chunk.
// Index keys end with the BigEndian chunk ID, so iteration order is
// insertion order.
func (r *ProtocolRepository) collectByIndex(ctx context.Context, prefix []byte) ([]*core.ProtocolChunk, error) {
	var chunks []*core.ProtocolChunk

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix
		opts.PrefetchValues = false
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}

			key := iter.Item().Key()
			id := chunkIdFromIndexKey(key)

			chunk, err := readChunk(tx, id)
			if err != nil {
				return err
			}
			chunks = append(chunks, chunk)
		}
		return nil
	}, false)

	if err != nil {
		return nil, err
	}
	return chunks, nil
}

// ScanChunks retrieves up to max chunks with no scope filter, in insertion
// order.
func (r *ProtocolRepository) ScanChunks(ctx context.Context, max int) ([]*core.ProtocolChunk, error) {
	var chunks []*core.ProtocolChunk

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(chunkRecordPrefix + ":")
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid() && len(chunks) < max; iter.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}

			var chunk *core.ProtocolChunk
			err := iter.Item().Value(func(val []byte) error {
				var err error
				chunk, err = storage.UnmarshalProtocolChunk(val)
				return err
			})
			if err != nil {
				return err
			}
			chunks = append(chunks, chunk)
		}
		return nil
	}, false)

	if err != nil {
		return nil, translateErr(err)
	}
	return chunks, nil
}

// Stats reports corpus counts by walking the chunk and org prefixes.
func (r *ProtocolRepository) Stats(ctx context.Context) (storage.ContentStats, error) {
	var stats storage.ContentStats
	regions := make(map[string]struct{})

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(chunkRecordPrefix + ":")
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}

			var chunk *core.ProtocolChunk
			err := iter.Item().Value(func(val []byte) error {
				var err error
				chunk, err = storage.UnmarshalProtocolChunk(val)
				return err
			})
			if err != nil {
				return err
			}
			stats.TotalChunks++
			regions[strings.ToUpper(chunk.RegionCode)] = struct{}{}
		}

		orgOpts := badger.DefaultIteratorOptions
		orgOpts.Prefix = []byte(orgRecordPrefix + ":")
		orgOpts.PrefetchValues = false
		orgIter := tx.NewIterator(orgOpts)
		defer orgIter.Close()

		for orgIter.Rewind(); orgIter.Valid(); orgIter.Next() {
			stats.TotalOrgs++
		}
		return nil
	}, false)

	if err != nil {
		return storage.ContentStats{}, translateErr(err)
	}

	stats.RegionsCovered = int64(len(regions))
	return stats, nil
}

// readChunk reads a chunk record within a transaction.
func readChunk(tx *badger.Txn, id core.ID) (*core.ProtocolChunk, error) {
	item, err := tx.Get(makeChunkKey(id))
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, storage.ErrNotFound
		}
		return nil, err
	}

	var chunk *core.ProtocolChunk
	err = item.Value(func(val []byte) error {
		var err error
		chunk, err = storage.UnmarshalProtocolChunk(val)
		return err
	})
	if err != nil {
		return nil, err
	}
	return chunk, nil
}
