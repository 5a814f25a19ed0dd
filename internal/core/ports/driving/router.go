package driving

import (
	"context"

	"github.com/swimforge-labs/swimforge-cli/internal/core/domain"
)

// Router classifies a query into an intent and, for open-knowledge
// queries, invokes the retrieval pipeline.
type Router interface {
	// Route produces the terminal decision for one query.
	Route(ctx context.Context, query string) (*domain.RouterDecision, error)
}
