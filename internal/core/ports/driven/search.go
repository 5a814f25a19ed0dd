package driven

import (
	"context"

	"github.com/swimforge-labs/swimforge-cli/internal/core/domain"
)

// SparseIndex provides lexical relevance search over chunks.
// Backed by an in-process BM25 structure.
//
// Build replaces the entire index wholesale and atomically: readers never
// observe a partially built index, and a failed build leaves the previous
// state serving. Search before the first successful build fails with
// domain.ErrIndexNotReady.
type SparseIndex interface {
	// Build constructs the index from the full chunk set, replacing any
	// prior state.
	Build(ctx context.Context, chunks []domain.Chunk) error

	// Search returns up to limit candidates ranked by lexical relevance,
	// ties broken by chunk ID ascending. An empty query yields an empty
	// result, not an error.
	Search(ctx context.Context, query string, limit int) ([]domain.Candidate, error)

	// Close releases resources.
	Close() error
}
