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


// Package resolve maps registry agency ids to content-store org ids.
//
// The two stores are keyed independently with no shared foreign key, so
// the association is derived by canonicalizing names on both sides and
// matching them, constrained by region code when both sides carry one.
// The derived table is built wholesale and held as an immutable in-memory
// snapshot; it is never patched incrementally, because a partial patch
// cannot detect a match that became ambiguous due to a new entry.
package resolve

import (
	"context"
	"log/slog"
	"strings"
	"sync/atomic"

	"github.com/resqnet/protosearch/core"
	"github.com/resqnet/protosearch/storage"
	"golang.org/x/sync/singleflight"
)

// Resolver holds the bidirectional registry/content id mapping.
// Reads after the build are lock-free; the build itself is single-flight
// guarded so concurrent first callers share one matching pass.
type Resolver struct {
	agencyRepository   storage.AgencyRepository
	protocolRepository storage.ProtocolRepository
	logger             *slog.Logger

	snapshot   atomic.Pointer[mapping]
	buildGroup singleflight.Group
}

// mapping is one immutable build generation.
type mapping struct {
	toOrg        map[core.ID]core.ID
	toRegistry   map[core.ID]core.ID
	registrySize int
	orgSize      int
}

// Stats describes the resolver's current mapping generation.
type Stats struct {
	Initialized    bool
	MappingCount   int
	RegistrySize   int
	ContentOrgSize int
}

// Option configures a Resolver.
type Option func(*Resolver) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(r *Resolver) error {
		if logger == nil {
			logger = slog.Default()
		}
		r.logger = logger
		return nil
	}
}

// NewResolver creates a new resolver.
func NewResolver(
	agencyRepository storage.AgencyRepository,
	protocolRepository storage.ProtocolRepository,
	opts ...Option,
) (*Resolver, error) {
	if agencyRepository == nil {
		return nil, ErrAgencyRepositoryRequired
	}
	if protocolRepository == nil {
		return nil, ErrProtocolRepositoryRequired
	}

	r := &Resolver{
		agencyRepository:   agencyRepository,
		protocolRepository: protocolRepository,
		logger:             slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// ResolveOrgId maps a registry agency id to its content-store org id.
// ok=false means unmapped; callers treat that as "search unscoped",
// never as an error.
func (r *Resolver) ResolveOrgId(ctx context.Context, registryId core.ID) (core.ID, bool, error) {
	m, err := r.current(ctx)
	if err != nil {
		return 0, false, err
	}
	orgId, ok := m.toOrg[registryId]
	return orgId, ok, nil
}

// ResolveRegistryId maps a content-store org id back to its registry
// agency id. ok=false means unmapped.
func (r *Resolver) ResolveRegistryId(ctx context.Context, orgId core.ID) (core.ID, bool, error) {
	m, err := r.current(ctx)
	if err != nil {
		return 0, false, err
	}
	registryId, ok := m.toRegistry[orgId]
	return registryId, ok, nil
}

// WarmUp builds the mapping eagerly so the first search does not pay the
// matching pass.
func (r *Resolver) WarmUp(ctx context.Context) error {
	_, err := r.current(ctx)
	return err
}

// Stats reports the current mapping generation. A zero Stats with
// Initialized=false means no build has completed yet.
func (r *Resolver) Stats() Stats {
	m := r.snapshot.Load()
	if m == nil {
		return Stats{}
	}
	return Stats{
		Initialized:    true,
		MappingCount:   len(m.toOrg),
		RegistrySize:   m.registrySize,
		ContentOrgSize: m.orgSize,
	}
}

// Clear drops the mapping wholesale. The next lookup rebuilds it.
func (r *Resolver) Clear() {
	r.snapshot.Store(nil)
}

// current returns the live snapshot, building it if needed. Concurrent
// callers during a build share a single matching pass via singleflight.
func (r *Resolver) current(ctx context.Context) (*mapping, error) {
	if m := r.snapshot.Load(); m != nil {
		return m, nil
	}

	v, err, _ := r.buildGroup.Do("build", func() (any, error) {
		// Another caller may have finished a build while we waited
		if m := r.snapshot.Load(); m != nil {
			return m, nil
		}
		m, err := r.build(ctx)
		if err != nil {
			return nil, err
		}
		r.snapshot.Store(m)
		return m, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*mapping), nil
}

// build loads both sides and matches canonical names. A canonical name
// claimed by more than one entry on either side is left unmapped on both.
func (r *Resolver) build(ctx context.Context) (*mapping, error) {
	agencies, err := r.agencyRepository.ListAgencies(ctx)
	if err != nil {
		return nil, err
	}
	orgs, err := r.protocolRepository.ListOrgs(ctx)
	if err != nil {
		return nil, err
	}

	type side struct {
		id         core.ID
		regionCode string
		ambiguous  bool
	}

	registryByName := make(map[string]*side, len(agencies))
	for _, agency := range agencies {
		name := canonicalName(agency.Name)
		if name == "" {
			continue
		}
		if existing, ok := registryByName[name]; ok {
			existing.ambiguous = true
			continue
		}
		registryByName[name] = &side{id: agency.Id, regionCode: strings.ToUpper(agency.RegionCode)}
	}

	orgByName := make(map[string]*side, len(orgs))
	for _, org := range orgs {
		name := canonicalName(org.Name)
		if name == "" {
			continue
		}
		if existing, ok := orgByName[name]; ok {
			existing.ambiguous = true
			continue
		}
		orgByName[name] = &side{id: org.OrgId, regionCode: strings.ToUpper(org.RegionCode)}
	}

	m := &mapping{
		toOrg:        make(map[core.ID]core.ID),
		toRegistry:   make(map[core.ID]core.ID),
		registrySize: len(agencies),
		orgSize:      len(orgs),
	}

	for name, reg := range registryByName {
		org, ok := orgByName[name]
		if !ok || reg.ambiguous || org.ambiguous {
			continue
		}
		if reg.regionCode != "" && org.regionCode != "" && reg.regionCode != org.regionCode {
			continue
		}
		m.toOrg[reg.id] = org.id
		m.toRegistry[org.id] = reg.id
	}

	r.logger.Info("identity mapping built",
		"mappings", len(m.toOrg),
		"agencies", len(agencies),
		"orgs", len(orgs))

	return m, nil
}
