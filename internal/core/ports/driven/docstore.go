package driven

import (
	"context"

	"github.com/swimforge-labs/swimforge-cli/internal/core/domain"
)

// ChunkStore persists documents and their chunks between builds.
// The build pipeline replaces content wholesale; queries only read.
type ChunkStore interface {
	// ReplaceAll atomically replaces all stored documents and chunks.
	ReplaceAll(ctx context.Context, docs []domain.Document, chunks []domain.Chunk) error

	// GetChunk retrieves a chunk by ID.
	// Returns domain.ErrNotFound if it does not exist.
	GetChunk(ctx context.Context, id string) (*domain.Chunk, error)

	// GetDocument retrieves a document by ID.
	// Returns domain.ErrNotFound if it does not exist.
	GetDocument(ctx context.Context, id string) (*domain.Document, error)

	// ListChunks returns all stored chunks in document order.
	ListChunks(ctx context.Context) ([]domain.Chunk, error)

	// Close releases resources.
	Close() error
}
