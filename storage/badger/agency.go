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

// AgencyRepository implements storage.AgencyRepository for BadgerDB.
type AgencyRepository struct {
	backend *Backend
	idSeq   *badger.Sequence
}

var _ storage.AgencyRepository = (*AgencyRepository)(nil)

// NewAgencyRepository creates a new AgencyRepository.
func NewAgencyRepository(backend *Backend) (*AgencyRepository, error) {
	idSeq, err := backend.GetSequence(agencyIDSeq)
	if err != nil {
		return nil, err
	}

	return &AgencyRepository{
		backend: backend,
		idSeq:   idSeq,
	}, nil
}

// Close releases the ID sequence.
func (r *AgencyRepository) Close() error {
	return r.idSeq.Release()
}

// AddAgencies adds one or more agencies to the registry.
func (r *AgencyRepository) AddAgencies(ctx context.Context, agencies ...*core.Agency) ([]*core.Agency, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, agency := range agencies {
			if err := core.ValidateAgency(agency); err != nil {
				return err
			}

			if agency.Id == 0 {
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
				agency.Id = core.ID(nextID)
			}

			agency.InsertedAt = time.Now().UTC()
			agency.UpdatedAt = agency.InsertedAt

			key := makeAgencyKey(agency.Id)
			if err := tx.Set(key, storage.MarshalAgency(agency)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)

	return agencies, translateErr(err)
}

// GetAgency retrieves a single agency by ID.
func (r *AgencyRepository) GetAgency(ctx context.Context, id core.ID) (*core.Agency, error) {
	var agency *core.Agency

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeAgencyKey(id))
		if err != nil {
			if err == badger.ErrKeyNotFound {
				return storage.ErrNotFound
			}
			return err
		}
		return item.Value(func(val []byte) error {
			var err error
			agency, err = storage.UnmarshalAgency(val)
			return err
		})
	}, false)

	if err != nil {
		return nil, translateErr(err)
	}
	return agency, nil
}

// ListAgencies retrieves all agencies, ordered by ID.
func (r *AgencyRepository) ListAgencies(ctx context.Context) ([]*core.Agency, error) {
	agencies, err := r.listAgencies(func(*core.Agency) bool { return true })
	return agencies, translateErr(err)
}

// ListAgenciesByRegion retrieves agencies with the given region code.
func (r *AgencyRepository) ListAgenciesByRegion(ctx context.Context, regionCode string) ([]*core.Agency, error) {
	want := strings.ToUpper(regionCode)
	agencies, err := r.listAgencies(func(a *core.Agency) bool {
		return strings.ToUpper(a.RegionCode) == want
	})
	return agencies, translateErr(err)
}

func (r *AgencyRepository) listAgencies(keep func(*core.Agency) bool) ([]*core.Agency, error) {
	var agencies []*core.Agency

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(agencyRecordPrefix)
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			item := iter.Item()
			// Skip the sequence key
			if string(item.Key()) == agencyIDSeq {
				continue
			}

			var agency *core.Agency
			err := item.Value(func(val []byte) error {
				var err error
				agency, err = storage.UnmarshalAgency(val)
				return err
			})
			if err != nil {
				return err
			}
			if agency != nil && keep(agency) {
				agencies = append(agencies, agency)
			}
		}
		return nil
	}, false)

	if err != nil {
		return nil, err
	}

	// Keys are decimal strings, so iteration order is lexicographic.
	slices.SortFunc(agencies, func(a, b *core.Agency) int {
		if a.Id < b.Id {
			return -1
		}
		if a.Id > b.Id {
			return 1
		}
		return 0
	})

	return agencies, nil
}
