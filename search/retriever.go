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


package search

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/resqnet/protosearch/core"
	"github.com/resqnet/protosearch/query"
	"github.com/resqnet/protosearch/storage"
)

// Scoring weights, additive. There is no normalization by document
// length; the short-document bias is a known property of the formula.
const (
	weightExactPhrase    = 10.0
	weightTitlePhrase    = 5.0
	weightSectionPhrase  = 3.0
	weightTermOccurrence = 1.0
	weightSynonymHit     = 2.0
)

// DefaultScanCap bounds how many documents an unscoped retrieval reads.
const DefaultScanCap = 5000

// DefaultTermFrequencyCap bounds how many occurrences of a single term
// count toward the score, so repetitive documents cannot dominate.
const DefaultTermFrequencyCap = 5

// Scope narrows retrieval to one content-store org or one region.
// Zero values mean unscoped.
type Scope struct {
	OrgId      core.ID
	RegionCode string
}

// Retriever fetches candidate documents and ranks them against a
// normalized query.
type Retriever struct {
	protocolRepository storage.ProtocolRepository
	logger             *slog.Logger
	scanCap            int
	termFrequencyCap   int
}

// Option configures a Retriever.
type Option func(*Retriever) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(r *Retriever) error {
		if logger == nil {
			logger = slog.Default()
		}
		r.logger = logger
		return nil
	}
}

// WithScanCap overrides the unscoped scan bound.
func WithScanCap(cap int) Option {
	return func(r *Retriever) error {
		if cap <= 0 {
			return fmt.Errorf("scan cap must be positive, got %d", cap)
		}
		r.scanCap = cap
		return nil
	}
}

// WithTermFrequencyCap overrides the per-term occurrence cap.
func WithTermFrequencyCap(cap int) Option {
	return func(r *Retriever) error {
		if cap <= 0 {
			return fmt.Errorf("term frequency cap must be positive, got %d", cap)
		}
		r.termFrequencyCap = cap
		return nil
	}
}

// NewRetriever creates a new retriever.
func NewRetriever(protocolRepository storage.ProtocolRepository, opts ...Option) (*Retriever, error) {
	if protocolRepository == nil {
		return nil, ErrProtocolRepositoryRequired
	}

	r := &Retriever{
		protocolRepository: protocolRepository,
		logger:             slog.Default(),
		scanCap:            DefaultScanCap,
		termFrequencyCap:   DefaultTermFrequencyCap,
	}

	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// Retrieve fetches and ranks documents for a normalized query.
// Returns up to limit results, highest score first; ties keep store
// insertion order. An empty result is not an error.
func (r *Retriever) Retrieve(ctx context.Context, q query.Normalized, scope Scope, limit int) ([]core.RankedDocument, error) {
	return r.RetrieveWithMonitor(ctx, q, scope, limit, nil)
}

// RetrieveWithMonitor fetches and ranks documents with monitoring.
// The monitor receives callbacks at each stage of retrieval.
func (r *Retriever) RetrieveWithMonitor(ctx context.Context, q query.Normalized, scope Scope, limit int, monitor SearchMonitor) ([]core.RankedDocument, error) {
	if monitor == nil {
		monitor = &noopMonitor{}
	}

	monitor.Start(q.Normalized)

	if q.Normalized == "" {
		monitor.Finish(nil)
		return nil, nil
	}

	candidates, err := r.fetchCandidates(ctx, scope)
	if err != nil {
		r.logger.Error("error fetching candidates", "scope", scope, "err", err)
		return nil, fmt.Errorf("%w: %w", ErrRetrievalUnavailable, err)
	}
	monitor.AfterCandidateFetch(candidates)

	terms := scoringTerms(q)

	ranked := make([]core.RankedDocument, 0, len(candidates))
	for _, chunk := range candidates {
		score := r.score(q.Normalized, terms, chunk)
		monitor.DocumentScored(chunk.Id, score)
		if score == 0 {
			continue
		}

		ranked = append(ranked, core.RankedDocument{
			Id:             chunk.Id,
			OrgId:          chunk.OrgId,
			RegionCode:     chunk.RegionCode,
			DocumentNumber: chunk.DocumentNumber,
			Title:          chunk.Title,
			Section:        chunk.Section,
			Preview:        core.Preview(chunk.Body),
			Body:           chunk.Body,
			Score:          score,
		})
	}

	// Candidates arrive in insertion order; a stable sort keeps that
	// order between equal scores.
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}

	monitor.Finish(ranked)
	return ranked, nil
}

// fetchCandidates picks the narrowest available scope: org, then region,
// then a capped full scan.
func (r *Retriever) fetchCandidates(ctx context.Context, scope Scope) ([]*core.ProtocolChunk, error) {
	if scope.OrgId != 0 {
		return r.protocolRepository.GetChunksByOrg(ctx, scope.OrgId)
	}
	if scope.RegionCode != "" {
		return r.protocolRepository.GetChunksByRegion(ctx, scope.RegionCode)
	}
	return r.protocolRepository.ScanChunks(ctx, r.scanCap)
}

// scoringTerms merges the query's filtered words with its extracted
// domain terms; domain phrases count alongside the individual words.
func scoringTerms(q query.Normalized) []string {
	seen := make(map[string]bool)
	var terms []string

	for _, word := range tokenizeAndFilter(q.Normalized) {
		if !seen[word] {
			seen[word] = true
			terms = append(terms, word)
		}
	}
	for _, term := range q.DomainTerms {
		if !seen[term] {
			seen[term] = true
			terms = append(terms, term)
		}
	}

	return terms
}

// score computes the additive relevance of one chunk.
func (r *Retriever) score(normalizedQuery string, terms []string, chunk *core.ProtocolChunk) float64 {
	title := foldText(chunk.Title)
	section := foldText(chunk.Section)
	body := foldText(chunk.Body)

	var score float64

	// (a) exact phrase anywhere in the document. Fields are checked
	// separately so a phrase straddling a field boundary never counts.
	if countOccurrences(title, normalizedQuery) > 0 ||
		(section != "" && countOccurrences(section, normalizedQuery) > 0) ||
		countOccurrences(body, normalizedQuery) > 0 {
		score += weightExactPhrase
	}

	// (b) phrase in title, (c) phrase in section
	if countOccurrences(title, normalizedQuery) > 0 {
		score += weightTitlePhrase
	}
	if section != "" && countOccurrences(section, normalizedQuery) > 0 {
		score += weightSectionPhrase
	}

	// (d) per-term body occurrences, frequency-capped per term
	for _, term := range terms {
		occurrences := countOccurrences(body, term)
		if occurrences > r.termFrequencyCap {
			occurrences = r.termFrequencyCap
		}
		score += float64(occurrences) * weightTermOccurrence
	}

	// (e) flat boost per registered synonym present in the body
	for _, term := range terms {
		for _, synonym := range synonyms[term] {
			if countOccurrences(body, synonym) > 0 {
				score += weightSynonymHit
			}
		}
	}

	return score
}
