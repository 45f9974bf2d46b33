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


package protosearch

import (
	"context"
	"errors"
	"log/slog"
	"runtime"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/resqnet/protosearch/ai"
	"github.com/resqnet/protosearch/ai/openai"
	"github.com/resqnet/protosearch/cache"
	"github.com/resqnet/protosearch/core"
	"github.com/resqnet/protosearch/ingestion"
	"github.com/resqnet/protosearch/query"
	"github.com/resqnet/protosearch/quota"
	"github.com/resqnet/protosearch/resolve"
	"github.com/resqnet/protosearch/search"
	"github.com/resqnet/protosearch/storage"
	"github.com/resqnet/protosearch/storage/badger"
)

// maxCachedResults is the largest result set retrieved and cached per
// query. Per-request truncation down to the caller's tier ceiling
// happens after the cache, so every tier shares one entry.
const maxCachedResults = 50

// ErrAnswerGenerationUnavailable is returned by GenerateAnswer when the
// service was built without an AI provider.
var ErrAnswerGenerationUnavailable = errors.New("answer generation unavailable: no AI provider configured")

// Service wires the full search pipeline: normalize, resolve scope,
// check cache, retrieve and score, cache write, tier-trimmed response.
type Service struct {
	stores      *badger.Stores
	resolver    *resolve.Resolver
	retriever   *search.Retriever
	resultCache *cache.ResultCache
	limiter     *quota.Limiter
	provider    ai.AIProvider
	variantPool *ants.Pool
	logger      *slog.Logger
}

// ServiceOption configures a Service.
type ServiceOption func(*serviceOptions)

type serviceOptions struct {
	inMemory bool
	aiConfig *ai.Config
	provider ai.AIProvider
	scanCap  int
	cacheTTL time.Duration
	logger   *slog.Logger
}

// WithInMemory keeps all stores in memory. Intended for tests and
// development.
func WithInMemory() ServiceOption {
	return func(o *serviceOptions) {
		o.inMemory = true
	}
}

// WithAIConfig enables answer generation through an OpenAI-compatible
// chat API. Without it, GenerateAnswer reports unavailable.
func WithAIConfig(config *ai.Config) ServiceOption {
	return func(o *serviceOptions) {
		o.aiConfig = config
	}
}

// WithAIProvider supplies a pre-built provider, bypassing WithAIConfig.
// Used by tests to inject a mock.
func WithAIProvider(provider ai.AIProvider) ServiceOption {
	return func(o *serviceOptions) {
		o.provider = provider
	}
}

// WithScanCap overrides the unscoped retrieval scan bound.
func WithScanCap(n int) ServiceOption {
	return func(o *serviceOptions) {
		o.scanCap = n
	}
}

// WithCacheTTL overrides the result cache entry lifetime.
func WithCacheTTL(ttl time.Duration) ServiceOption {
	return func(o *serviceOptions) {
		o.cacheTTL = ttl
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) ServiceOption {
	return func(o *serviceOptions) {
		o.logger = logger
	}
}

// NewService opens the stores at filePath and wires the pipeline.
func NewService(filePath string, opts ...ServiceOption) (*Service, error) {
	options := &serviceOptions{
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(options)
	}

	stores, err := badger.OpenStores(filePath, options.inMemory)
	if err != nil {
		return nil, err
	}

	resolver, err := resolve.NewResolver(stores.Agencies, stores.Protocols,
		resolve.WithLogger(options.logger))
	if err != nil {
		stores.Close()
		return nil, err
	}

	retrieverOpts := []search.Option{search.WithLogger(options.logger)}
	if options.scanCap > 0 {
		retrieverOpts = append(retrieverOpts, search.WithScanCap(options.scanCap))
	}
	retriever, err := search.NewRetriever(stores.Protocols, retrieverOpts...)
	if err != nil {
		stores.Close()
		return nil, err
	}

	cacheOpts := []cache.Option{cache.WithLogger(options.logger)}
	if options.cacheTTL > 0 {
		cacheOpts = append(cacheOpts, cache.WithTTL(options.cacheTTL))
	}
	resultCache, err := cache.NewResultCache(stores.Cache, cacheOpts...)
	if err != nil {
		stores.Close()
		return nil, err
	}

	limiter, err := quota.NewLimiter(stores.Users, quota.WithLogger(options.logger))
	if err != nil {
		stores.Close()
		return nil, err
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}
	variantPool, err := ants.NewPool(poolSize)
	if err != nil {
		stores.Close()
		return nil, err
	}

	provider := options.provider
	if provider == nil && options.aiConfig != nil {
		provider, err = openai.NewProvider(options.aiConfig)
		if err != nil {
			variantPool.Release()
			stores.Close()
			return nil, err
		}
	}

	return &Service{
		stores:      stores,
		resolver:    resolver,
		retriever:   retriever,
		resultCache: resultCache,
		limiter:     limiter,
		provider:    provider,
		variantPool: variantPool,
		logger:      options.logger,
	}, nil
}

// Close releases every component.
func (s *Service) Close() error {
	s.variantPool.Release()
	if s.provider != nil {
		if err := s.provider.Close(); err != nil {
			s.logger.Error("error closing AI provider", "err", err)
		}
	}
	return s.stores.Close()
}

// Agencies exposes the registry agency repository.
func (s *Service) Agencies() storage.AgencyRepository {
	return s.stores.Agencies
}

// Users exposes the registry user repository.
func (s *Service) Users() storage.UserRepository {
	return s.stores.Users
}

// Protocols exposes the content store repository.
func (s *Service) Protocols() storage.ProtocolRepository {
	return s.stores.Protocols
}

// NewImporter creates an import pipeline bound to this service's stores.
func (s *Service) NewImporter(opts ...ingestion.Option) (*ingestion.Importer, error) {
	return ingestion.NewImporter(s.stores.Protocols, s.stores.Checkpoints, opts...)
}

// SearchRequest describes one search call.
type SearchRequest struct {
	RawQuery string

	// Scope, narrowest wins: an explicit content-store org id, else a
	// registry agency id to resolve, else a region code. All zero means
	// unscoped.
	OrgId      core.ID
	RegistryId core.ID
	RegionCode string

	// Limit caps the response size; it is clamped to the tier ceiling.
	Limit int
	Tier  core.Tier
}

// SearchResponse is a ranked, tier-trimmed result page.
type SearchResponse struct {
	Results         []core.RankedDocument
	TotalFound      int64
	NormalizedQuery string
	FromCache       bool
	Latency         time.Duration
}

// Search runs the full pipeline for one query.
//
// The cache is consulted before retrieval and keyed only by the
// normalized query and resolved scope, so the per-tier truncation below
// applies equally to cached and fresh responses.
func (s *Service) Search(ctx context.Context, req SearchRequest) (*SearchResponse, error) {
	started := time.Now()

	if err := core.ValidateRawQuery(req.RawQuery); err != nil {
		return nil, err
	}

	q := query.Normalize(req.RawQuery)
	if q.Normalized == "" {
		return &SearchResponse{NormalizedQuery: "", Latency: time.Since(started)}, nil
	}

	scope, err := s.resolveRequestScope(ctx, req)
	if err != nil {
		return nil, err
	}

	limit := req.Tier.MaxResults()
	if req.Limit > 0 && req.Limit < limit {
		limit = req.Limit
	}

	key := cache.KeyFor(q.Normalized, scope)

	if rs := s.resultCache.Get(ctx, key); rs != nil {
		response := &SearchResponse{
			Results:         trim(rs.Results, limit),
			TotalFound:      rs.TotalFound,
			NormalizedQuery: rs.NormalizedQuery,
			FromCache:       true,
			Latency:         time.Since(started),
		}
		s.resultCache.RecordLatency(true, response.Latency)
		return response, nil
	}

	var results []core.RankedDocument
	if q.Intent.SafetySensitive() || q.IsComplex {
		results, err = s.retrieveHighRecall(ctx, q, scope)
	} else {
		results, err = s.retriever.Retrieve(ctx, q, scope, maxCachedResults)
	}
	if err != nil {
		return nil, err
	}

	s.fillAgencyNames(ctx, results)

	rs := &core.ResultSet{
		Results:         results,
		TotalFound:      int64(len(results)),
		NormalizedQuery: q.Normalized,
	}
	s.resultCache.Put(ctx, key, rs)

	response := &SearchResponse{
		Results:         trim(results, limit),
		TotalFound:      rs.TotalFound,
		NormalizedQuery: q.Normalized,
		FromCache:       false,
		Latency:         time.Since(started),
	}
	s.resultCache.RecordLatency(false, response.Latency)
	return response, nil
}

// resolveRequestScope picks the narrowest scope the request allows. An
// unmapped registry id degrades to the region code or to unscoped,
// never to an error.
func (s *Service) resolveRequestScope(ctx context.Context, req SearchRequest) (search.Scope, error) {
	if req.RegionCode != "" && !core.IsValidRegionCode(req.RegionCode) {
		return search.Scope{}, core.ErrInvalidRegionCode
	}

	if req.OrgId != 0 {
		return search.Scope{OrgId: req.OrgId}, nil
	}

	if req.RegistryId != 0 {
		orgId, ok, err := s.resolver.ResolveOrgId(ctx, req.RegistryId)
		if err != nil {
			return search.Scope{}, err
		}
		if ok {
			return search.Scope{OrgId: orgId}, nil
		}

		// Fall back to the agency's region when the id is unmapped
		if req.RegionCode == "" {
			agency, err := s.stores.Agencies.GetAgency(ctx, req.RegistryId)
			if err == nil {
				return search.Scope{RegionCode: agency.RegionCode}, nil
			}
			if !errors.Is(err, storage.ErrNotFound) {
				return search.Scope{}, err
			}
		}
	}

	return search.Scope{RegionCode: req.RegionCode}, nil
}

// retrieveHighRecall issues the base query plus variant queries over the
// worker pool and fuses their unions, keeping each document's best score.
func (s *Service) retrieveHighRecall(ctx context.Context, q query.Normalized, scope search.Scope) ([]core.RankedDocument, error) {
	variants := queryVariants(q)

	perVariant := make([][]core.RankedDocument, len(variants))
	errs := make([]error, len(variants))

	var wg sync.WaitGroup
	for i, variant := range variants {
		i, variant := i, variant
		wg.Add(1)
		submitErr := s.variantPool.Submit(func() {
			defer wg.Done()
			perVariant[i], errs[i] = s.retriever.Retrieve(ctx, variant, scope, maxCachedResults)
		})
		if submitErr != nil {
			wg.Done()
			errs[i] = submitErr
		}
	}
	wg.Wait()

	best := make(map[core.ID]core.RankedDocument)
	for i := range variants {
		if errs[i] != nil {
			return nil, errs[i]
		}
		for _, doc := range perVariant[i] {
			if existing, ok := best[doc.Id]; !ok || doc.Score > existing.Score {
				best[doc.Id] = doc
			}
		}
	}

	fused := make([]core.RankedDocument, 0, len(best))
	for _, doc := range best {
		fused = append(fused, doc)
	}

	// Ascending id is insertion order, which the stable sort preserves
	// between equal scores
	sort.SliceStable(fused, func(i, j int) bool {
		return fused[i].Id < fused[j].Id
	})
	sort.SliceStable(fused, func(i, j int) bool {
		return fused[i].Score > fused[j].Score
	})

	return trim(fused, maxCachedResults), nil
}

// queryVariants builds the variant set for high-recall retrieval: the
// canonical query plus each extracted domain term on its own.
func queryVariants(q query.Normalized) []query.Normalized {
	variants := []query.Normalized{q}
	for _, term := range q.DomainTerms {
		if term != q.Normalized {
			variants = append(variants, query.Normalize(term))
		}
	}
	return variants
}

// fillAgencyNames resolves content org ids back to registry agencies and
// stamps their names on the results. Best-effort: an unmapped org or a
// lookup failure leaves the name empty.
func (s *Service) fillAgencyNames(ctx context.Context, results []core.RankedDocument) {
	names := make(map[core.ID]string)

	for i := range results {
		orgId := results[i].OrgId
		if name, ok := names[orgId]; ok {
			results[i].AgencyName = name
			continue
		}

		registryId, ok, err := s.resolver.ResolveRegistryId(ctx, orgId)
		if err != nil || !ok {
			names[orgId] = ""
			continue
		}
		agency, err := s.stores.Agencies.GetAgency(ctx, registryId)
		if err != nil {
			names[orgId] = ""
			continue
		}
		names[orgId] = agency.Name
		results[i].AgencyName = agency.Name
	}
}

// ScopeInfo describes a resolved search scope.
type ScopeInfo struct {
	OrgId      core.ID
	OrgName    string
	RegionCode string
}

// ResolveScope maps a registry agency id to its content-store scope.
// ok=false means the agency has no mapped content org.
func (s *Service) ResolveScope(ctx context.Context, registryId core.ID) (*ScopeInfo, bool, error) {
	orgId, ok, err := s.resolver.ResolveOrgId(ctx, registryId)
	if err != nil || !ok {
		return nil, false, err
	}

	info := &ScopeInfo{OrgId: orgId}

	orgs, err := s.stores.Protocols.ListOrgs(ctx)
	if err != nil {
		return nil, false, err
	}
	for _, org := range orgs {
		if org.OrgId == orgId {
			info.OrgName = org.Name
			info.RegionCode = org.RegionCode
			break
		}
	}

	return info, true, nil
}

// ResolveRegionScope maps a human region name (e.g. "Ohio") to its
// region-code scope. The name is matched case-insensitively against the
// registry's agency region names. ok=false means no agency carries the
// name.
func (s *Service) ResolveRegionScope(ctx context.Context, regionName string) (*ScopeInfo, bool, error) {
	name := strings.TrimSpace(regionName)
	if name == "" {
		return nil, false, nil
	}

	agencies, err := s.stores.Agencies.ListAgencies(ctx)
	if err != nil {
		return nil, false, err
	}
	for _, agency := range agencies {
		if strings.EqualFold(agency.RegionName, name) {
			return &ScopeInfo{RegionCode: agency.RegionCode}, true, nil
		}
	}

	return nil, false, nil
}

// CheckAndConsumeQuota counts one query attempt against the user's daily
// limit. A denial is a normal outcome carrying the current count, not an
// error.
func (s *Service) CheckAndConsumeQuota(ctx context.Context, userId core.ID, limit core.DailyLimit) (quota.Decision, error) {
	return s.limiter.IncrementAndCheck(ctx, userId, limit)
}

// GenerateAnswer summarizes ranked results into a short answer. Requires
// the service to be built with WithAIConfig.
func (s *Service) GenerateAnswer(ctx context.Context, rawQuery string, results []core.RankedDocument) (string, error) {
	if s.provider == nil {
		return "", ErrAnswerGenerationUnavailable
	}
	return s.provider.AnswerGenerator().GenerateAnswer(ctx, rawQuery, results)
}

// Stats aggregates corpus, resolver, and cache statistics.
type Stats struct {
	Content  storage.ContentStats
	Resolver resolve.Stats
	Cache    cache.MetricsSnapshot
}

// Stats reports service-wide statistics.
func (s *Service) Stats(ctx context.Context) (Stats, error) {
	content, err := s.stores.Protocols.Stats(ctx)
	if err != nil {
		return Stats{}, err
	}
	return Stats{
		Content:  content,
		Resolver: s.resolver.Stats(),
		Cache:    s.resultCache.Stats(),
	}, nil
}

// WarmUp builds the identity mapping eagerly.
func (s *Service) WarmUp(ctx context.Context) error {
	return s.resolver.WarmUp(ctx)
}

func trim(results []core.RankedDocument, limit int) []core.RankedDocument {
	if limit > 0 && len(results) > limit {
		return results[:limit]
	}
	return results
}
