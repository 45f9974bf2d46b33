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


// Package cache memoizes retrieval responses keyed by normalized query
// and scope.
//
// The cache is strictly best-effort: a store error on read counts as a
// miss and a store error on write is logged and swallowed, so an
// unreachable cache degrades to recompute-always rather than request
// failure. Expiry is enforced by the store's TTL; there is no sweep here.
package cache

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-crypt/x/blake2b"
	"github.com/resqnet/protosearch/core"
	"github.com/resqnet/protosearch/search"
	"github.com/resqnet/protosearch/storage"
)

// DefaultTTL is how long a cached result set stays valid.
const DefaultTTL = time.Hour

// ResultCache wraps a storage.CacheStore with key derivation, payload
// serialization, and hit/miss accounting.
type ResultCache struct {
	store   storage.CacheStore
	logger  *slog.Logger
	ttl     time.Duration
	metrics Metrics
}

// Option configures a ResultCache.
type Option func(*ResultCache) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(c *ResultCache) error {
		if logger == nil {
			logger = slog.Default()
		}
		c.logger = logger
		return nil
	}
}

// WithTTL overrides the entry lifetime.
func WithTTL(ttl time.Duration) Option {
	return func(c *ResultCache) error {
		if ttl <= 0 {
			return fmt.Errorf("ttl must be positive, got %v", ttl)
		}
		c.ttl = ttl
		return nil
	}
}

// NewResultCache creates a new result cache.
func NewResultCache(store storage.CacheStore, opts ...Option) (*ResultCache, error) {
	if store == nil {
		return nil, ErrCacheStoreRequired
	}

	c := &ResultCache{
		store:  store,
		logger: slog.Default(),
		ttl:    DefaultTTL,
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// KeyFor derives the cache key for a normalized query and scope. The key
// is a pure function of its arguments in a fixed dimension order, so two
// raw queries that normalize identically under the same scope always
// collide to the same entry. Raw user input must never reach this
// function.
func KeyFor(normalizedQuery string, scope search.Scope) string {
	var b strings.Builder
	b.WriteString(normalizedQuery)
	if scope.OrgId != 0 {
		fmt.Fprintf(&b, "|org:%d", scope.OrgId)
	}
	if scope.RegionCode != "" {
		fmt.Fprintf(&b, "|region:%s", strings.ToUpper(scope.RegionCode))
	}

	h, _ := blake2b.New(32, nil)
	h.Write([]byte(b.String()))
	return hex.EncodeToString(h.Sum(nil))
}

// Get retrieves a cached result set. A store error is treated as a miss
// and never surfaced.
func (c *ResultCache) Get(ctx context.Context, key string) *core.ResultSet {
	payload, err := c.store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			c.logger.Warn("cache read failed, treating as miss", "err", err)
		}
		c.metrics.miss()
		return nil
	}

	rs, err := storage.UnmarshalResultSet(payload)
	if err != nil {
		c.logger.Warn("cache payload undecodable, treating as miss", "err", err)
		c.metrics.miss()
		return nil
	}

	c.metrics.hit()
	return rs
}

// Put stores a result set. A store error is logged and swallowed; the
// write is all-or-nothing at the store level.
func (c *ResultCache) Put(ctx context.Context, key string, rs *core.ResultSet) {
	if err := c.store.Put(ctx, key, storage.MarshalResultSet(rs), c.ttl); err != nil {
		c.logger.Warn("cache write failed", "err", err)
	}
}

// Stats returns a snapshot of hit/miss and latency accounting.
func (c *ResultCache) Stats() MetricsSnapshot {
	return c.metrics.snapshot()
}

// RecordLatency feeds the end-to-end retrieval latency of one search
// into the accounting, tagged by whether it was served from cache.
func (c *ResultCache) RecordLatency(fromCache bool, elapsed time.Duration) {
	c.metrics.recordLatency(fromCache, elapsed)
}
