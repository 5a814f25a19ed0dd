package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/swimforge-labs/swimforge-cli/internal/core/domain"
	"github.com/swimforge-labs/swimforge-cli/internal/core/ports/driven"
)

// Ensure ChunkStore implements the interface.
var _ driven.ChunkStore = (*ChunkStore)(nil)

// ChunkStore is an in-memory implementation of driven.ChunkStore.
// Useful for tests and ephemeral sessions that rebuild on startup.
type ChunkStore struct {
	mu        sync.RWMutex
	documents map[string]domain.Document
	chunks    map[string]domain.Chunk
	order     []string
}

// NewChunkStore creates a new in-memory chunk store.
func NewChunkStore() *ChunkStore {
	return &ChunkStore{
		documents: make(map[string]domain.Document),
		chunks:    make(map[string]domain.Chunk),
	}
}

// ReplaceAll swaps the stored corpus for a fresh build.
func (s *ChunkStore) ReplaceAll(_ context.Context, docs []domain.Document, chunks []domain.Chunk) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.documents = make(map[string]domain.Document, len(docs))
	for _, doc := range docs {
		s.documents[doc.ID] = doc
	}

	ordered := make([]domain.Chunk, len(chunks))
	copy(ordered, chunks)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].DocumentID != ordered[j].DocumentID {
			return ordered[i].DocumentID < ordered[j].DocumentID
		}
		return ordered[i].Position < ordered[j].Position
	})

	s.chunks = make(map[string]domain.Chunk, len(ordered))
	s.order = make([]string, len(ordered))
	for i, chunk := range ordered {
		s.chunks[chunk.ID] = chunk
		s.order[i] = chunk.ID
	}
	return nil
}

// GetChunk retrieves a chunk by ID.
func (s *ChunkStore) GetChunk(_ context.Context, id string) (*domain.Chunk, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	chunk, ok := s.chunks[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &chunk, nil
}

// GetDocument retrieves a document by ID.
func (s *ChunkStore) GetDocument(_ context.Context, id string) (*domain.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, ok := s.documents[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &doc, nil
}

// ListChunks returns all stored chunks in document order.
func (s *ChunkStore) ListChunks(_ context.Context) ([]domain.Chunk, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	chunks := make([]domain.Chunk, 0, len(s.order))
	for _, id := range s.order {
		chunks = append(chunks, s.chunks[id])
	}
	return chunks, nil
}

// Close releases resources.
func (s *ChunkStore) Close() error {
	return nil
}
