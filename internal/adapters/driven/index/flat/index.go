// Package flat provides an exact nearest-neighbour dense index.
// Vectors are scanned linearly; for a personal knowledge corpus this is
// both exact and fast enough, and avoids cgo bindings.
package flat

import (
	"context"
	"fmt"
	"math"
	"sort"
	"sync/atomic"

	"github.com/swimforge-labs/swimforge-cli/internal/core/domain"
	"github.com/swimforge-labs/swimforge-cli/internal/core/ports/driven"
)

// Ensure Index implements the interface.
var _ driven.DenseIndex = (*Index)(nil)

// Index holds one embedding vector per chunk and searches by cosine or
// inner-product similarity. The metric is fixed per instance; with
// cosine, vectors are normalised at build time and queries at search
// time. Build swaps the whole structure atomically.
type Index struct {
	metric domain.SimilarityMetric
	state  atomic.Pointer[state]
}

// state is one immutable generation of the index.
type state struct {
	chunkIDs   []string
	vectors    [][]float32
	dimensions int
}

// New creates an empty dense index with the given metric. Search fails
// with domain.ErrIndexNotReady until the first successful Build.
func New(metric domain.SimilarityMetric) (*Index, error) {
	if !metric.IsValid() {
		return nil, fmt.Errorf("%w: unknown similarity metric %q", domain.ErrConfigInvalid, metric)
	}
	return &Index{metric: metric}, nil
}

// Build constructs the index from embedded chunks, replacing any prior
// state. All embeddings must share one dimensionality.
func (idx *Index) Build(_ context.Context, chunks []domain.Chunk) error {
	st := &state{
		chunkIDs: make([]string, len(chunks)),
		vectors:  make([][]float32, len(chunks)),
	}

	for i, chunk := range chunks {
		if len(chunk.Embedding) == 0 {
			return fmt.Errorf("chunk %s has no embedding", chunk.ID)
		}
		if st.dimensions == 0 {
			st.dimensions = len(chunk.Embedding)
		}
		if len(chunk.Embedding) != st.dimensions {
			return fmt.Errorf("%w: chunk %s has %d dimensions, index has %d",
				domain.ErrDimensionMismatch, chunk.ID, len(chunk.Embedding), st.dimensions)
		}

		vector := chunk.Embedding
		if idx.metric == domain.SimilarityCosine {
			vector = normalised(vector)
		}
		st.chunkIDs[i] = chunk.ID
		st.vectors[i] = vector
	}

	idx.state.Store(st)
	return nil
}

// Search returns up to k candidates ranked by similarity descending,
// ties broken by chunk ID ascending.
func (idx *Index) Search(_ context.Context, query []float32, k int) ([]domain.Candidate, error) {
	st := idx.state.Load()
	if st == nil {
		return nil, domain.ErrIndexNotReady
	}
	if len(st.chunkIDs) == 0 {
		return []domain.Candidate{}, nil
	}
	if len(query) != st.dimensions {
		return nil, fmt.Errorf("%w: query has %d dimensions, index has %d",
			domain.ErrDimensionMismatch, len(query), st.dimensions)
	}

	if idx.metric == domain.SimilarityCosine {
		query = normalised(query)
	}

	candidates := make([]domain.Candidate, len(st.chunkIDs))
	for i, vector := range st.vectors {
		candidates[i] = domain.Candidate{
			ChunkID: st.chunkIDs[i],
			Score:   float64(dot(query, vector)),
			Source:  domain.SourceDense,
		}
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].Score != candidates[j].Score {
			return candidates[i].Score > candidates[j].Score
		}
		return candidates[i].ChunkID < candidates[j].ChunkID
	})

	if k > 0 && len(candidates) > k {
		candidates = candidates[:k]
	}
	return candidates, nil
}

// Dimensions returns the dimensionality the index was built with, or 0
// before the first build.
func (idx *Index) Dimensions() int {
	st := idx.state.Load()
	if st == nil {
		return 0
	}
	return st.dimensions
}

// Close releases resources.
func (idx *Index) Close() error {
	return nil
}

func dot(a, b []float32) float32 {
	var total float32
	for i := range a {
		total += a[i] * b[i]
	}
	return total
}

func normalised(v []float32) []float32 {
	var sumSquares float64
	for _, x := range v {
		sumSquares += float64(x) * float64(x)
	}
	length := math.Sqrt(sumSquares)
	if length == 0 {
		return v
	}
	out := make([]float32, len(v))
	for i, x := range v {
		out[i] = float32(float64(x) / length)
	}
	return out
}
