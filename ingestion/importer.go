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


package ingestion

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"runtime"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/resqnet/protosearch/core"
	"github.com/resqnet/protosearch/storage"
	"github.com/tmc/langchaingo/textsplitter"
)

// Document is one source protocol document before chunking.
type Document struct {
	OrgId          core.ID
	OrgName        string
	RegionCode     string
	DocumentNumber string
	Title          string
	Section        string
	Body           string
}

// Report summarizes a completed import.
type Report struct {
	Orgs      int
	Documents int
	Chunks    int
	Skipped   int64 // chunks already present from a checkpointed earlier run
}

const (
	defaultChunkSize    = 1600
	defaultChunkOverlap = 200
	defaultBatchSize    = 64
)

// Importer writes protocol documents into the content store.
type Importer struct {
	protocolRepository   storage.ProtocolRepository
	checkpointRepository storage.CheckpointRepository
	splitPool            *ants.Pool
	splitter             textsplitter.TextSplitter
	batchSize            int
	progressWriter       io.Writer
	reportInterval       int
	logger               *slog.Logger
}

// Option configures an Importer.
type Option func(*Importer) error

// WithPoolSize sets the worker pool size for concurrent splitting.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(im *Importer) error {
		if size < 1 {
			size = 1
		}

		if im.splitPool != nil {
			im.splitPool.Release()
		}

		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		im.splitPool = pool
		return nil
	}
}

// WithBatchSize sets how many chunks are written per transaction.
func WithBatchSize(size int) Option {
	return func(im *Importer) error {
		if size < 1 {
			size = 1
		}
		im.batchSize = size
		return nil
	}
}

// WithProgress enables progress reporting to writer every reportInterval
// chunks.
func WithProgress(writer io.Writer, reportInterval int) Option {
	return func(im *Importer) error {
		if reportInterval < 1 {
			reportInterval = 1
		}
		im.progressWriter = writer
		im.reportInterval = reportInterval
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(im *Importer) error {
		if logger == nil {
			logger = slog.Default()
		}
		im.logger = logger
		return nil
	}
}

// NewImporter creates a new importer.
func NewImporter(
	protocolRepository storage.ProtocolRepository,
	checkpointRepository storage.CheckpointRepository,
	opts ...Option,
) (*Importer, error) {
	if protocolRepository == nil {
		return nil, ErrProtocolRepositoryRequired
	}
	if checkpointRepository == nil {
		return nil, ErrCheckpointRepositoryRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}

	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	im := &Importer{
		protocolRepository:   protocolRepository,
		checkpointRepository: checkpointRepository,
		splitPool:            pool,
		splitter: textsplitter.NewRecursiveCharacter(
			textsplitter.WithChunkSize(defaultChunkSize),
			textsplitter.WithChunkOverlap(defaultChunkOverlap),
		),
		batchSize: defaultBatchSize,
		logger:    slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(im); err != nil {
			im.Release()
			return nil, err
		}
	}

	return im, nil
}

// Release releases the worker pool.
// The importer should not be used after calling Release.
func (im *Importer) Release() {
	if im.splitPool != nil {
		im.splitPool.Release()
	}
}

// Import writes a document set into the content store. The source name
// identifies the set for checkpointing: re-running the same source after
// an interruption skips the chunks a previous run already committed.
func (im *Importer) Import(ctx context.Context, source string, docs []Document) (*Report, error) {
	if source == "" {
		return nil, ErrSourceRequired
	}

	chunks, err := im.splitAll(docs)
	if err != nil {
		return nil, err
	}

	report := &Report{
		Documents: len(docs),
		Chunks:    len(chunks),
	}

	// Resume from the last committed prefix, if any
	checkpoint, err := im.checkpointRepository.GetCheckpoint(ctx, source)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return nil, err
	}
	if checkpoint != nil && checkpoint.ChunksDone > 0 {
		skip := checkpoint.ChunksDone
		if skip > int64(len(chunks)) {
			skip = int64(len(chunks))
		}
		chunks = chunks[skip:]
		report.Skipped = skip
		im.logger.Info("resuming import", "source", source, "skipped", skip)
	}

	orgs := collectOrgs(docs)
	report.Orgs = len(orgs)
	if err := im.protocolRepository.AddOrgs(ctx, orgs...); err != nil {
		return nil, err
	}

	var tracker *ProgressTracker
	if im.progressWriter != nil {
		tracker = NewProgressTracker(im.progressWriter, len(chunks), im.reportInterval)
		tracker.Start()
	}

	done := report.Skipped
	for start := 0; start < len(chunks); start += im.batchSize {
		end := start + im.batchSize
		if end > len(chunks) {
			end = len(chunks)
		}

		if _, err := im.protocolRepository.AddProtocolChunks(ctx, chunks[start:end]...); err != nil {
			return nil, err
		}

		done += int64(end - start)
		err := im.checkpointRepository.SaveCheckpoint(ctx, &core.ImportCheckpoint{
			Source:     source,
			ChunksDone: done,
		})
		if err != nil {
			return nil, err
		}

		if tracker != nil {
			tracker.Increment(end - start)
		}
	}

	if tracker != nil {
		tracker.Finish()
	}

	err = im.checkpointRepository.SaveCheckpoint(ctx, &core.ImportCheckpoint{
		Source:      source,
		ChunksDone:  done,
		CompletedAt: time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}

	im.logger.Info("import finished",
		"source", source,
		"documents", report.Documents,
		"chunks", report.Chunks,
		"skipped", report.Skipped)

	return report, nil
}

// splitAll chunks every document body, fanning the splitting out over the
// worker pool. Output order matches input order so checkpoint offsets are
// stable across runs.
func (im *Importer) splitAll(docs []Document) ([]*core.ProtocolChunk, error) {
	perDoc := make([][]*core.ProtocolChunk, len(docs))
	errs := make([]error, len(docs))

	var wg sync.WaitGroup
	for i := range docs {
		i := i
		wg.Add(1)
		submitErr := im.splitPool.Submit(func() {
			defer wg.Done()
			perDoc[i], errs[i] = im.split(&docs[i])
		})
		if submitErr != nil {
			wg.Done()
			errs[i] = submitErr
		}
	}
	wg.Wait()

	var chunks []*core.ProtocolChunk
	for i := range docs {
		if errs[i] != nil {
			return nil, errs[i]
		}
		chunks = append(chunks, perDoc[i]...)
	}
	return chunks, nil
}

// split turns one document into one or more chunks.
func (im *Importer) split(doc *Document) ([]*core.ProtocolChunk, error) {
	pieces := []string{doc.Body}

	if len(doc.Body) > defaultChunkSize {
		split, err := im.splitter.SplitText(doc.Body)
		if err != nil {
			return nil, err
		}
		if len(split) > 0 {
			pieces = split
		}
	}

	chunks := make([]*core.ProtocolChunk, 0, len(pieces))
	for _, piece := range pieces {
		chunks = append(chunks, &core.ProtocolChunk{
			OrgId:          doc.OrgId,
			DocumentNumber: doc.DocumentNumber,
			Title:          doc.Title,
			Section:        doc.Section,
			Body:           piece,
			RegionCode:     doc.RegionCode,
		})
	}
	return chunks, nil
}

// collectOrgs gathers the distinct organization descriptors in input order.
func collectOrgs(docs []Document) []*core.OrgDescriptor {
	seen := make(map[core.ID]bool)
	var orgs []*core.OrgDescriptor

	for i := range docs {
		doc := &docs[i]
		if seen[doc.OrgId] || doc.OrgName == "" {
			continue
		}
		seen[doc.OrgId] = true
		orgs = append(orgs, &core.OrgDescriptor{
			OrgId:      doc.OrgId,
			Name:       doc.OrgName,
			RegionCode: doc.RegionCode,
		})
	}
	return orgs
}
