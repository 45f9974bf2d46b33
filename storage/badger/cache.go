package badger

import (
	"context"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/resqnet/protosearch/storage"
)

// CacheStore implements storage.CacheStore on a BadgerDB backend. Expiry
// rides on Badger entry TTLs, so expired entries behave exactly like
// missing ones and no sweeper is needed.
type CacheStore struct {
	backend *Backend
}

var _ storage.CacheStore = (*CacheStore)(nil)

// NewCacheStore creates a new CacheStore.
func NewCacheStore(backend *Backend) *CacheStore {
	return &CacheStore{backend: backend}
}

// Close is a no-op; the backend owns the database lifecycle.
func (s *CacheStore) Close() error {
	return nil
}

// Get retrieves a payload. Returns storage.ErrNotFound on a miss or an
// expired entry.
func (s *CacheStore) Get(ctx context.Context, key string) ([]byte, error) {
	var payload []byte

	err := s.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeCacheKey(key))
		if err != nil {
			if err == badger.ErrKeyNotFound {
				return storage.ErrNotFound
			}
			return err
		}
		payload, err = item.ValueCopy(nil)
		return err
	}, false)

	if err != nil {
		return nil, translateErr(err)
	}
	return payload, nil
}

// Put stores a payload that expires after ttl.
func (s *CacheStore) Put(ctx context.Context, key string, payload []byte, ttl time.Duration) error {
	err := s.backend.WithTx(func(tx *badger.Txn) error {
		entry := badger.NewEntry(makeCacheKey(key), payload).WithTTL(ttl)
		if err := tx.SetEntry(entry); err != nil {
			return err
		}
		return tx.Commit()
	}, true)

	return translateErr(err)
}
