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

import "github.com/resqnet/protosearch/storage"

// Stores bundles every repository served by one backend.
type Stores struct {
	Agencies    storage.AgencyRepository
	Users       storage.UserRepository
	Protocols   storage.ProtocolRepository
	Cache       storage.CacheStore
	Checkpoints storage.CheckpointRepository

	backend *Backend
}

// Close closes every repository and then the backend.
func (s *Stores) Close() error {
	s.Agencies.Close()
	s.Users.Close()
	s.Protocols.Close()
	s.Cache.Close()
	s.Checkpoints.Close()
	return s.backend.Close()
}

// Backend exposes the underlying backend, mainly for tests that need to
// close the database out from under a repository.
func (s *Stores) Backend() *Backend {
	return s.backend
}

// OpenStores opens every repository on a single backend at filePath.
func OpenStores(filePath string, inMemory bool) (*Stores, error) {
	backend, err := OpenBackend(filePath, inMemory)
	if err != nil {
		return nil, err
	}

	agencyRepo, err := NewAgencyRepository(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	userRepo, err := NewUserRepository(backend)
	if err != nil {
		agencyRepo.Close()
		backend.Close()
		return nil, err
	}

	protocolRepo, err := NewProtocolRepository(backend)
	if err != nil {
		userRepo.Close()
		agencyRepo.Close()
		backend.Close()
		return nil, err
	}

	return &Stores{
		Agencies:    agencyRepo,
		Users:       userRepo,
		Protocols:   protocolRepo,
		Cache:       NewCacheStore(backend),
		Checkpoints: NewCheckpointRepository(backend),
		backend:     backend,
	}, nil
}

// NewMemoryStores creates a full set of in-memory repositories for testing.
// Caller must close the returned stores when done.
func NewMemoryStores() (*Stores, error) {
	return OpenStores("", true)
}
