package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/swimforge-labs/swimforge-cli/internal/core/domain"
	"github.com/swimforge-labs/swimforge-cli/internal/core/ports/driven"
	"github.com/swimforge-labs/swimforge-cli/internal/core/ports/driving"
	"github.com/swimforge-labs/swimforge-cli/internal/logger"
)

// Ensure IndexerService implements the interface.
var _ driving.Indexer = (*IndexerService)(nil)

// IndexerService rebuilds all indices wholesale from the corpus:
// load -> chunk -> embed -> persist -> build sparse and dense.
//
// Build is an exclusive phase. Each stage either completes or fails
// before any serving state changes, so a failed rebuild leaves the
// previously built indices untouched.
type IndexerService struct {
	source      driven.DocumentSource
	chunker     *Chunker
	chunkStore  driven.ChunkStore
	sparseIndex driven.SparseIndex
	denseIndex  driven.DenseIndex
	embedder    driven.EmbeddingService
}

// NewIndexerService creates the indexer.
func NewIndexerService(
	source driven.DocumentSource,
	chunker *Chunker,
	chunkStore driven.ChunkStore,
	sparseIndex driven.SparseIndex,
	denseIndex driven.DenseIndex,
	embedder driven.EmbeddingService,
) *IndexerService {
	return &IndexerService{
		source:      source,
		chunker:     chunker,
		chunkStore:  chunkStore,
		sparseIndex: sparseIndex,
		denseIndex:  denseIndex,
		embedder:    embedder,
	}
}

// Build loads, chunks, embeds and indexes the corpus.
func (s *IndexerService) Build(ctx context.Context) (*domain.IndexBuildReport, error) {
	logger.Section("Index Build")
	started := time.Now()

	docs, err := s.source.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load documents: %w", err)
	}
	logger.Info("Loaded %d documents", len(docs))

	var chunks []domain.Chunk
	for _, doc := range docs {
		chunks = append(chunks, s.chunker.Chunk(doc)...)
	}
	logger.Info("Produced %d chunks (size=%d, overlap=%d)",
		len(chunks), s.chunker.Size(), s.chunker.Overlap())

	if err := s.embedChunks(ctx, chunks); err != nil {
		return nil, err
	}

	// Persist chunks before swapping indices so query-time hydration
	// always finds what the indices reference.
	if err := s.chunkStore.ReplaceAll(ctx, docs, chunks); err != nil {
		return nil, fmt.Errorf("persist chunks: %w", err)
	}

	if err := s.sparseIndex.Build(ctx, chunks); err != nil {
		return nil, fmt.Errorf("build sparse index: %w", err)
	}
	if err := s.denseIndex.Build(ctx, chunks); err != nil {
		return nil, fmt.Errorf("build dense index: %w", err)
	}

	report := &domain.IndexBuildReport{
		ID:             uuid.New().String(),
		Documents:      len(docs),
		Chunks:         len(chunks),
		EmbeddingModel: s.embedder.ModelName(),
		Dimensions:     s.embedder.Dimensions(),
		StartedAt:      started,
		Duration:       time.Since(started),
	}
	logger.Info("Build %s complete: %d docs, %d chunks in %s",
		report.ID, report.Documents, report.Chunks, report.Duration)
	return report, nil
}

// embedChunks computes one vector per chunk in batch. Vector order
// follows chunk order regardless of how the service batches internally.
func (s *IndexerService) embedChunks(ctx context.Context, chunks []domain.Chunk) error {
	if len(chunks) == 0 {
		return nil
	}

	texts := make([]string, len(chunks))
	for i := range chunks {
		texts[i] = chunks[i].Content
	}

	logger.Debug("Embedding %d chunks with %s", len(chunks), s.embedder.ModelName())
	vectors, err := s.embedder.EmbedBatch(ctx, texts)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrEmbeddingFailed, err)
	}
	if len(vectors) != len(chunks) {
		return fmt.Errorf("%w: got %d vectors for %d chunks",
			domain.ErrEmbeddingFailed, len(vectors), len(chunks))
	}

	for i := range chunks {
		chunks[i].Embedding = vectors[i]
	}
	return nil
}
