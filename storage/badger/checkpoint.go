package badger

import (
	"context"

	"github.com/dgraph-io/badger/v4"
	"github.com/resqnet/protosearch/core"
	"github.com/resqnet/protosearch/storage"
)

// CheckpointRepository implements storage.CheckpointRepository for BadgerDB.
type CheckpointRepository struct {
	backend *Backend
}

var _ storage.CheckpointRepository = (*CheckpointRepository)(nil)

// NewCheckpointRepository creates a new CheckpointRepository.
func NewCheckpointRepository(backend *Backend) *CheckpointRepository {
	return &CheckpointRepository{backend: backend}
}

// Close is a no-op; the backend owns the database lifecycle.
func (r *CheckpointRepository) Close() error {
	return nil
}

// SaveCheckpoint stores a checkpoint, replacing any previous checkpoint for
// the same source.
func (r *CheckpointRepository) SaveCheckpoint(ctx context.Context, checkpoint *core.ImportCheckpoint) error {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeCheckpointKey(checkpoint.Source)
		if err := tx.Set(key, storage.MarshalImportCheckpoint(checkpoint)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)

	return translateErr(err)
}

// GetCheckpoint retrieves the checkpoint for a source.
func (r *CheckpointRepository) GetCheckpoint(ctx context.Context, source string) (*core.ImportCheckpoint, error) {
	var checkpoint *core.ImportCheckpoint

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeCheckpointKey(source))
		if err != nil {
			if err == badger.ErrKeyNotFound {
				return storage.ErrNotFound
			}
			return err
		}
		return item.Value(func(val []byte) error {
			var err error
			checkpoint, err = storage.UnmarshalImportCheckpoint(val)
			return err
		})
	}, false)

	if err != nil {
		return nil, translateErr(err)
	}
	return checkpoint, nil
}
