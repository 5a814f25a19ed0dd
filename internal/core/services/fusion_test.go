package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swimforge-labs/swimforge-cli/internal/core/domain"
)

func sparseCandidates(ids ...string) []domain.Candidate {
	list := make([]domain.Candidate, len(ids))
	for i, id := range ids {
		list[i] = domain.Candidate{ChunkID: id, Score: float64(len(ids) - i), Source: domain.SourceSparse}
	}
	return list
}

func denseCandidates(ids ...string) []domain.Candidate {
	list := make([]domain.Candidate, len(ids))
	for i, id := range ids {
		list[i] = domain.Candidate{ChunkID: id, Score: float64(len(ids)-i) / 10, Source: domain.SourceDense}
	}
	return list
}

func TestNewFusionStrategy(t *testing.T) {
	t.Run("selects rrf", func(t *testing.T) {
		settings := domain.DefaultSettings()
		strategy, err := NewFusionStrategy(settings)
		require.NoError(t, err)
		assert.Equal(t, "rrf", strategy.Name())
	})

	t.Run("selects weighted", func(t *testing.T) {
		settings := domain.DefaultSettings()
		settings.Fusion = domain.FusionWeighted
		strategy, err := NewFusionStrategy(settings)
		require.NoError(t, err)
		assert.Equal(t, "weighted", strategy.Name())
	})

	t.Run("rejects unknown policy", func(t *testing.T) {
		settings := domain.DefaultSettings()
		settings.Fusion = "borda"
		_, err := NewFusionStrategy(settings)
		assert.ErrorIs(t, err, domain.ErrConfigInvalid)
	})
}

func TestRRFFusion(t *testing.T) {
	strategy := &rrfFusion{k: 60}

	t.Run("chunk in both lists outranks single-list chunks", func(t *testing.T) {
		sparse := sparseCandidates("a", "both", "b")
		dense := denseCandidates("c", "both", "d")

		fused := strategy.Fuse(sparse, dense, 10)

		require.NotEmpty(t, fused)
		assert.Equal(t, "both", fused[0].ChunkID)
		assert.Equal(t, 1, fused[0].Rank)
	})

	t.Run("ties break by chunk ID ascending", func(t *testing.T) {
		sparse := sparseCandidates("b")
		dense := denseCandidates("a")

		fused := strategy.Fuse(sparse, dense, 10)

		require.Len(t, fused, 2)
		assert.Equal(t, "a", fused[0].ChunkID)
		assert.Equal(t, "b", fused[1].ChunkID)
	})

	t.Run("truncates to topN with 1-based ranks", func(t *testing.T) {
		sparse := sparseCandidates("a", "b", "c", "d", "e")

		fused := strategy.Fuse(sparse, nil, 3)

		require.Len(t, fused, 3)
		for i, fr := range fused {
			assert.Equal(t, i+1, fr.Rank)
		}
	})

	t.Run("empty inputs produce empty output", func(t *testing.T) {
		fused := strategy.Fuse(nil, nil, 10)
		assert.Empty(t, fused)
	})
}

func TestWeightedFusion(t *testing.T) {
	t.Run("all weight on sparse reproduces sparse order", func(t *testing.T) {
		strategy := &weightedFusion{wSparse: 1, wDense: 0}
		sparse := sparseCandidates("a", "b", "c")
		dense := denseCandidates("c", "b", "a")

		fused := strategy.Fuse(sparse, dense, 10)

		require.Len(t, fused, 3)
		assert.Equal(t, "a", fused[0].ChunkID)
		assert.Equal(t, "b", fused[1].ChunkID)
		assert.Equal(t, "c", fused[2].ChunkID)
	})

	t.Run("normalised scores span zero to one", func(t *testing.T) {
		strategy := &weightedFusion{wSparse: 1, wDense: 0}
		sparse := []domain.Candidate{
			{ChunkID: "hi", Score: 12.5},
			{ChunkID: "mid", Score: 7.0},
			{ChunkID: "lo", Score: 3.0},
		}

		fused := strategy.Fuse(sparse, nil, 10)

		require.Len(t, fused, 3)
		assert.InDelta(t, 1.0, fused[0].Score, 1e-9)
		assert.InDelta(t, 0.0, fused[2].Score, 1e-9)
	})

	t.Run("single candidate normalises to full weight", func(t *testing.T) {
		strategy := &weightedFusion{wSparse: 0.4, wDense: 0.6}
		sparse := []domain.Candidate{{ChunkID: "only", Score: 0.001}}

		fused := strategy.Fuse(sparse, nil, 10)

		require.Len(t, fused, 1)
		assert.InDelta(t, 0.4, fused[0].Score, 1e-9)
	})

	t.Run("identical scores all normalise to one", func(t *testing.T) {
		strategy := &weightedFusion{wSparse: 1, wDense: 0}
		sparse := []domain.Candidate{
			{ChunkID: "a", Score: 5},
			{ChunkID: "b", Score: 5},
		}

		fused := strategy.Fuse(sparse, nil, 10)

		require.Len(t, fused, 2)
		assert.InDelta(t, fused[0].Score, fused[1].Score, 1e-9)
		assert.Equal(t, "a", fused[0].ChunkID, "tie broken by ID")
	})
}
