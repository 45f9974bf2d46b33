package ai

import (
	"context"

	"github.com/resqnet/protosearch/core"
)

// AnswerGenerator produces a concise answer to a query from ranked
// protocol excerpts. Implementations must be thread-safe for concurrent use.
type AnswerGenerator interface {
	// GenerateAnswer summarizes the top results into a short, actionable
	// answer citing protocol numbers. Passing no results is an error;
	// callers should skip generation when retrieval came back empty.
	GenerateAnswer(ctx context.Context, query string, results []core.RankedDocument) (string, error)
}

// AIProvider creates and manages the language-model services, ensuring
// they share configuration and resources.
type AIProvider interface {
	// AnswerGenerator returns the answer generation service.
	// The returned AnswerGenerator is safe for concurrent use.
	AnswerGenerator() AnswerGenerator

	// Close releases resources held by the provider and its services.
	// After Close is called, the provider and its services should not be used.
	Close() error
}
