package badger

import (
	"context"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/resqnet/protosearch/core"
	"github.com/resqnet/protosearch/storage"
)

// maxCounterRetries bounds the commit-retry loop of the conditional
// counter update under write contention.
const maxCounterRetries = 64

// UserRepository implements storage.UserRepository for BadgerDB.
type UserRepository struct {
	backend *Backend
	idSeq   *badger.Sequence
}

var _ storage.UserRepository = (*UserRepository)(nil)

// NewUserRepository creates a new UserRepository.
func NewUserRepository(backend *Backend) (*UserRepository, error) {
	idSeq, err := backend.GetSequence(userIDSeq)
	if err != nil {
		return nil, err
	}

	return &UserRepository{
		backend: backend,
		idSeq:   idSeq,
	}, nil
}

// Close releases the ID sequence.
func (r *UserRepository) Close() error {
	return r.idSeq.Release()
}

// AddUsers adds one or more users.
func (r *UserRepository) AddUsers(ctx context.Context, users ...*core.User) ([]*core.User, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, user := range users {
			if err := core.ValidateUser(user); err != nil {
				return err
			}

			if user.Id == 0 {
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
				user.Id = core.ID(nextID)
			}

			user.InsertedAt = time.Now().UTC()
			user.UpdatedAt = user.InsertedAt

			if err := tx.Set(makeUserKey(user.Id), storage.MarshalUser(user)); err != nil {
				return err
			}
			// Open id lookup index
			if err := tx.Set(makeUserOpenIdKey(user.OpenId), storage.MarshalID(user.Id)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)

	return users, translateErr(err)
}

// GetUser retrieves a single user by ID.
func (r *UserRepository) GetUser(ctx context.Context, id core.ID) (*core.User, error) {
	var user *core.User

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		var err error
		user, err = readUser(tx, id)
		return err
	}, false)

	if err != nil {
		return nil, translateErr(err)
	}
	return user, nil
}

// GetUserByOpenId retrieves a user by external identity.
func (r *UserRepository) GetUserByOpenId(ctx context.Context, openId string) (*core.User, error) {
	var user *core.User

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeUserOpenIdKey(openId))
		if err != nil {
			if err == badger.ErrKeyNotFound {
				return storage.ErrNotFound
			}
			return err
		}

		var id core.ID
		err = item.Value(func(val []byte) error {
			var err error
			id, err = storage.UnmarshalID(val)
			return err
		})
		if err != nil {
			return err
		}

		user, err = readUser(tx, id)
		return err
	}, false)

	if err != nil {
		return nil, translateErr(err)
	}
	return user, nil
}

// IncrementQueryCount atomically applies the daily counter update for one
// query attempt. The whole read-or-reset, increment, persist sequence runs
// in a single SSI transaction; a concurrent writer to the same row causes
// a conflict and the losing transaction retries from a fresh read, so no
// two callers ever commit from the same pre-increment count.
func (r *UserRepository) IncrementQueryCount(ctx context.Context, id core.ID, today string) (int64, error) {
	var newCount int64

	for attempt := 0; attempt < maxCounterRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return 0, err
		}

		err := r.backend.WithTx(func(tx *badger.Txn) error {
			user, err := readUser(tx, id)
			if err != nil {
				return err
			}

			if user.LastQueryDate != today {
				user.QueryCountToday = 0
				user.LastQueryDate = today
			}
			user.QueryCountToday++
			user.UpdatedAt = time.Now().UTC()
			newCount = user.QueryCountToday

			if err := tx.Set(makeUserKey(user.Id), storage.MarshalUser(user)); err != nil {
				return err
			}
			return tx.Commit()
		}, true)

		if err == badger.ErrConflict {
			continue
		}
		if err != nil {
			return 0, translateErr(err)
		}
		return newCount, nil
	}

	return 0, fmt.Errorf("%w: counter update for user %d kept conflicting", storage.ErrTransactionFailed, id)
}

// SetSelectedAgency updates the user's selected agency.
func (r *UserRepository) SetSelectedAgency(ctx context.Context, id, agencyId core.ID) error {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		user, err := readUser(tx, id)
		if err != nil {
			return err
		}

		user.SelectedAgencyId = agencyId
		user.UpdatedAt = time.Now().UTC()

		if err := tx.Set(makeUserKey(user.Id), storage.MarshalUser(user)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)

	return translateErr(err)
}

// readUser reads a user record within a transaction.
func readUser(tx *badger.Txn, id core.ID) (*core.User, error) {
	item, err := tx.Get(makeUserKey(id))
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, storage.ErrNotFound
		}
		return nil, err
	}

	var user *core.User
	err = item.Value(func(val []byte) error {
		var err error
		user, err = storage.UnmarshalUser(val)
		return err
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}
