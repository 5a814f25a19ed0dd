package flat

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swimforge-labs/swimforge-cli/internal/core/domain"
)

func embeddedChunks() []domain.Chunk {
	return []domain.Chunk{
		{ID: "a", Embedding: []float32{1, 0, 0}},
		{ID: "b", Embedding: []float32{0, 1, 0}},
		{ID: "c", Embedding: []float32{0.9, 0.1, 0}},
	}
}

func TestNew(t *testing.T) {
	t.Run("accepts known metrics", func(t *testing.T) {
		for _, metric := range []domain.SimilarityMetric{domain.SimilarityCosine, domain.SimilarityDot} {
			idx, err := New(metric)
			require.NoError(t, err)
			assert.NotNil(t, idx)
		}
	})

	t.Run("rejects unknown metrics", func(t *testing.T) {
		_, err := New(domain.SimilarityMetric("euclidean"))

		assert.ErrorIs(t, err, domain.ErrConfigInvalid)
	})
}

func TestIndex_Build(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects chunks without embeddings", func(t *testing.T) {
		idx, err := New(domain.SimilarityCosine)
		require.NoError(t, err)

		err = idx.Build(ctx, []domain.Chunk{{ID: "a"}})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "no embedding")
	})

	t.Run("rejects mixed dimensionalities", func(t *testing.T) {
		idx, err := New(domain.SimilarityCosine)
		require.NoError(t, err)

		err = idx.Build(ctx, []domain.Chunk{
			{ID: "a", Embedding: []float32{1, 0, 0}},
			{ID: "b", Embedding: []float32{1, 0}},
		})

		assert.ErrorIs(t, err, domain.ErrDimensionMismatch)
	})

	t.Run("failed build keeps the prior state serving", func(t *testing.T) {
		idx, err := New(domain.SimilarityCosine)
		require.NoError(t, err)
		require.NoError(t, idx.Build(ctx, embeddedChunks()))

		err = idx.Build(ctx, []domain.Chunk{{ID: "bad"}})
		require.Error(t, err)

		hits, err := idx.Search(ctx, []float32{1, 0, 0}, 1)
		require.NoError(t, err)
		require.Len(t, hits, 1)
		assert.Equal(t, "a", hits[0].ChunkID)
	})

	t.Run("reports dimensions after build", func(t *testing.T) {
		idx, err := New(domain.SimilarityCosine)
		require.NoError(t, err)

		assert.Zero(t, idx.Dimensions())
		require.NoError(t, idx.Build(ctx, embeddedChunks()))
		assert.Equal(t, 3, idx.Dimensions())
	})
}

func TestIndex_Search(t *testing.T) {
	ctx := context.Background()

	t.Run("fails before the first build", func(t *testing.T) {
		idx, err := New(domain.SimilarityCosine)
		require.NoError(t, err)

		_, err = idx.Search(ctx, []float32{1, 0, 0}, 5)

		assert.ErrorIs(t, err, domain.ErrIndexNotReady)
	})

	t.Run("rejects query of the wrong dimensionality", func(t *testing.T) {
		idx, err := New(domain.SimilarityCosine)
		require.NoError(t, err)
		require.NoError(t, idx.Build(ctx, embeddedChunks()))

		_, err = idx.Search(ctx, []float32{1, 0}, 5)

		assert.ErrorIs(t, err, domain.ErrDimensionMismatch)
	})

	t.Run("cosine ranks by angle not magnitude", func(t *testing.T) {
		idx, err := New(domain.SimilarityCosine)
		require.NoError(t, err)
		require.NoError(t, idx.Build(ctx, []domain.Chunk{
			{ID: "long", Embedding: []float32{0, 100, 0}},
			{ID: "aligned", Embedding: []float32{1, 0.1, 0}},
		}))

		hits, err := idx.Search(ctx, []float32{1, 0, 0}, 5)

		require.NoError(t, err)
		require.Len(t, hits, 2)
		assert.Equal(t, "aligned", hits[0].ChunkID)
		assert.InDelta(t, 1.0, hits[0].Score, 0.01)
	})

	t.Run("dot product keeps magnitudes", func(t *testing.T) {
		idx, err := New(domain.SimilarityDot)
		require.NoError(t, err)
		require.NoError(t, idx.Build(ctx, []domain.Chunk{
			{ID: "long", Embedding: []float32{2, 0, 0}},
			{ID: "unit", Embedding: []float32{1, 0, 0}},
		}))

		hits, err := idx.Search(ctx, []float32{1, 0, 0}, 5)

		require.NoError(t, err)
		require.Len(t, hits, 2)
		assert.Equal(t, "long", hits[0].ChunkID)
		assert.InDelta(t, 2.0, hits[0].Score, 1e-6)
	})

	t.Run("k truncates the ranking", func(t *testing.T) {
		idx, err := New(domain.SimilarityCosine)
		require.NoError(t, err)
		require.NoError(t, idx.Build(ctx, embeddedChunks()))

		hits, err := idx.Search(ctx, []float32{1, 0, 0}, 2)

		require.NoError(t, err)
		require.Len(t, hits, 2)
		assert.Equal(t, "a", hits[0].ChunkID)
		assert.Equal(t, "c", hits[1].ChunkID)
	})

	t.Run("equal scores break ties by chunk ID", func(t *testing.T) {
		idx, err := New(domain.SimilarityDot)
		require.NoError(t, err)
		require.NoError(t, idx.Build(ctx, []domain.Chunk{
			{ID: "z", Embedding: []float32{1, 0, 0}},
			{ID: "a", Embedding: []float32{1, 0, 0}},
		}))

		hits, err := idx.Search(ctx, []float32{1, 0, 0}, 5)

		require.NoError(t, err)
		require.Len(t, hits, 2)
		assert.Equal(t, "a", hits[0].ChunkID)
	})

	t.Run("empty index searches cleanly", func(t *testing.T) {
		idx, err := New(domain.SimilarityCosine)
		require.NoError(t, err)
		require.NoError(t, idx.Build(ctx, nil))

		hits, err := idx.Search(ctx, []float32{1, 0, 0}, 5)

		require.NoError(t, err)
		assert.Empty(t, hits)
	})
}
