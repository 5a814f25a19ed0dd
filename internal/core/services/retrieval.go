package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/swimforge-labs/swimforge-cli/internal/core/domain"
	"github.com/swimforge-labs/swimforge-cli/internal/core/ports/driven"
	"github.com/swimforge-labs/swimforge-cli/internal/core/ports/driving"
	"github.com/swimforge-labs/swimforge-cli/internal/logger"
)

// Ensure RetrievalService implements the interface.
var _ driving.Retriever = (*RetrievalService)(nil)

// RetrievalService runs the query-time hybrid retrieval pipeline:
// parallel sparse and dense search, score fusion, optional reranking,
// and hydration of chunk texts.
type RetrievalService struct {
	sparseIndex driven.SparseIndex
	denseIndex  driven.DenseIndex
	embedder    driven.EmbeddingService
	chunkStore  driven.ChunkStore
	reranker    driven.Reranker
	fusion      FusionStrategy
	settings    domain.Settings
}

// NewRetrievalService creates the retrieval service.
// The reranker is optional (can be nil); it is only consulted when
// settings enable reranking, and its failures never surface to callers.
func NewRetrievalService(
	sparseIndex driven.SparseIndex,
	denseIndex driven.DenseIndex,
	embedder driven.EmbeddingService,
	chunkStore driven.ChunkStore,
	reranker driven.Reranker,
	fusion FusionStrategy,
	settings domain.Settings,
) *RetrievalService {
	return &RetrievalService{
		sparseIndex: sparseIndex,
		denseIndex:  denseIndex,
		embedder:    embedder,
		chunkStore:  chunkStore,
		reranker:    reranker,
		fusion:      fusion,
		settings:    settings,
	}
}

// Retrieve returns the ranked context chunks for the query.
func (s *RetrievalService) Retrieve(ctx context.Context, query string) ([]domain.RetrievedChunk, error) {
	logger.Section("Retrieval")
	logger.Debug("Query: %q", query)

	query = strings.TrimSpace(query)
	if query == "" {
		logger.Debug("Empty query, returning no results")
		return []domain.RetrievedChunk{}, nil
	}

	// Sparse and dense search are independent reads against built
	// indices; this is the pipeline's only parallelism point.
	var sparseHits, denseHits []domain.Candidate
	var sparseErr, denseErr error

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		sparseHits, sparseErr = s.sparseIndex.Search(ctx, query, s.settings.TopKSparse)
	}()

	go func() {
		defer wg.Done()
		denseHits, denseErr = s.denseSearch(ctx, query)
	}()

	wg.Wait()

	if sparseErr != nil {
		return nil, fmt.Errorf("sparse search: %w", sparseErr)
	}
	if denseErr != nil {
		return nil, fmt.Errorf("dense search: %w", denseErr)
	}

	logger.Debug("Candidates: %d sparse, %d dense", len(sparseHits), len(denseHits))

	fused := s.fusion.Fuse(sparseHits, denseHits, s.settings.TopN)
	logger.Debug("Fused to %d results with %s", len(fused), s.fusion.Name())

	results, err := s.hydrate(ctx, fused)
	if err != nil {
		return nil, fmt.Errorf("hydrate results: %w", err)
	}

	return s.rerank(ctx, query, results), nil
}

// denseSearch embeds the query and searches the dense index.
func (s *RetrievalService) denseSearch(ctx context.Context, query string) ([]domain.Candidate, error) {
	vector, err := s.embedder.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: query embedding: %w", domain.ErrEmbeddingFailed, err)
	}
	logger.Debug("Query embedding: %d dimensions", len(vector))

	return s.denseIndex.Search(ctx, vector, s.settings.TopKDense)
}

// hydrate converts fused chunk IDs to retrieved chunks with their texts.
// Chunks deleted between build and query are skipped.
func (s *RetrievalService) hydrate(ctx context.Context, fused []domain.FusedResult) ([]domain.RetrievedChunk, error) {
	results := make([]domain.RetrievedChunk, 0, len(fused))

	for _, fr := range fused {
		chunk, err := s.chunkStore.GetChunk(ctx, fr.ChunkID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				continue
			}
			return nil, fmt.Errorf("get chunk %s: %w", fr.ChunkID, err)
		}

		path := ""
		if doc, err := s.chunkStore.GetDocument(ctx, chunk.DocumentID); err == nil {
			path = doc.Path
		}

		results = append(results, domain.RetrievedChunk{
			ChunkID:    chunk.ID,
			DocumentID: chunk.DocumentID,
			Path:       path,
			Content:    chunk.Content,
			Score:      fr.Score,
			Rank:       len(results) + 1,
		})
	}

	return results, nil
}

// rerank applies the optional second-pass reranker. When disabled,
// missing or failing, the fused order passes through unchanged - this
// never raises to the caller.
func (s *RetrievalService) rerank(ctx context.Context, query string, results []domain.RetrievedChunk) []domain.RetrievedChunk {
	if !s.settings.RerankEnabled || s.reranker == nil || len(results) == 0 {
		return results
	}

	reranked, err := s.reranker.Rerank(ctx, query, results)
	if err != nil {
		logger.Warn("Reranker unavailable, keeping fused order: %v", err)
		return results
	}

	for i := range reranked {
		reranked[i].Rank = i + 1
	}
	logger.Debug("Reranked %d results", len(reranked))
	return reranked
}
