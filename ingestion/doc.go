// Package ingestion imports protocol documents into the content store.
//
// The Importer type manages the import workflow for a document set:
//   - Splitting long bodies into searchable chunks
//   - Upserting the organization descriptors the chunks hang off
//   - Writing chunks in batches with a checkpoint after each batch
//
// Splitting is performed concurrently using a worker pool; writes are
// sequential so the checkpoint always describes a completed prefix and an
// interrupted import can resume where it stopped.
package ingestion
