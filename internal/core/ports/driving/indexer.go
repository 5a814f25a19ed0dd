package driving

import (
	"context"

	"github.com/swimforge-labs/swimforge-cli/internal/core/domain"
)

// Indexer rebuilds all indices from the configured corpus.
// Build is an exclusive phase: it completes (or fails leaving prior state
// untouched) before any query is served.
type Indexer interface {
	// Build loads, chunks, embeds and indexes the corpus wholesale.
	Build(ctx context.Context) (*domain.IndexBuildReport, error)
}
