package driven

import (
	"context"

	"github.com/swimforge-labs/swimforge-cli/internal/core/domain"
)

// DenseIndex provides nearest-neighbour search over chunk embeddings.
//
// Build consumes chunks whose Embedding field is already populated and
// replaces prior state wholesale; repeated builds from identical input are
// idempotent. All vectors in one instance share a dimensionality; a build
// or query vector of a different length fails with
// domain.ErrDimensionMismatch. Search before the first successful build
// fails with domain.ErrIndexNotReady.
type DenseIndex interface {
	// Build constructs the index from embedded chunks, replacing any
	// prior state.
	Build(ctx context.Context, chunks []domain.Chunk) error

	// Search returns up to k candidates ranked by similarity descending,
	// ties broken by chunk ID ascending.
	Search(ctx context.Context, query []float32, k int) ([]domain.Candidate, error)

	// Dimensions returns the dimensionality the index was built with,
	// or 0 before the first build.
	Dimensions() int

	// Close releases resources.
	Close() error
}
