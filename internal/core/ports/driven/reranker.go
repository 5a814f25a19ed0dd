package driven

import (
	"context"

	"github.com/swimforge-labs/swimforge-cli/internal/core/domain"
)

// Reranker re-scores fused results with a pairwise (query, chunk)
// relevance model. This is an optional service - when nil or failing,
// the fused order passes through unchanged. A reranker error must never
// surface to the query caller.
type Reranker interface {
	// Rerank returns the results reordered by pairwise relevance.
	// Scores on the returned results are rerank scores.
	Rerank(ctx context.Context, query string, results []domain.RetrievedChunk) ([]domain.RetrievedChunk, error)
}
