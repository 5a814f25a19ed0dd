package driving

import (
	"context"

	"github.com/swimforge-labs/swimforge-cli/internal/core/domain"
)

// Retriever runs the hybrid retrieval pipeline for one query.
type Retriever interface {
	// Retrieve returns the ranked context chunks for the query.
	Retrieve(ctx context.Context, query string) ([]domain.RetrievedChunk, error)
}
