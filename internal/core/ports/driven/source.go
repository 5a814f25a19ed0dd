package driven

import (
	"context"

	"github.com/swimforge-labs/swimforge-cli/internal/core/domain"
)

// DocumentSource produces the corpus as documents with flattened text.
// The core treats content as flat text; any format-specific flattening
// (markdown, CSV, JSON) happens inside the source.
type DocumentSource interface {
	// Load walks the corpus and returns all readable documents.
	Load(ctx context.Context) ([]domain.Document, error)
}
