package file

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swimforge-labs/swimforge-cli/internal/core/domain"
)

func newSettingsStore(t *testing.T) *ConfigStore {
	t.Helper()
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	return store
}

func TestLoadSettings_Defaults(t *testing.T) {
	store := newSettingsStore(t)

	settings, err := LoadSettings(store)

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSettings(), *settings)
}

func TestLoadSettings_Overrides(t *testing.T) {
	store := newSettingsStore(t)
	require.NoError(t, store.Set(KeyDocsDir, "/corpus"))
	require.NoError(t, store.Set(KeyChunkSize, 400))
	require.NoError(t, store.Set(KeyChunkOverlap, 0))
	require.NoError(t, store.Set(KeyTopKSparse, 30))
	require.NoError(t, store.Set(KeyFusion, "weighted"))
	require.NoError(t, store.Set(KeyWeightSparse, 0.7))
	require.NoError(t, store.Set(KeyWeightDense, 0.3))
	require.NoError(t, store.Set(KeyTopN, 5))
	require.NoError(t, store.Set(KeySimilarity, "dot"))
	require.NoError(t, store.Set(KeyRerankEnabled, true))

	settings, err := LoadSettings(store)

	require.NoError(t, err)
	assert.Equal(t, "/corpus", settings.DocsDir)
	assert.Equal(t, 400, settings.ChunkSize)
	assert.Equal(t, 0, settings.ChunkOverlap, "explicit zero overrides the default")
	assert.Equal(t, 30, settings.TopKSparse)
	assert.Equal(t, domain.DefaultTopKDense, settings.TopKDense, "untouched keys keep defaults")
	assert.Equal(t, domain.FusionWeighted, settings.Fusion)
	assert.Equal(t, 0.7, settings.WeightSparse)
	assert.Equal(t, 0.3, settings.WeightDense)
	assert.Equal(t, 5, settings.TopN)
	assert.Equal(t, domain.SimilarityDot, settings.Similarity)
	assert.True(t, settings.RerankEnabled)
}

func TestLoadSettings_SurvivesReload(t *testing.T) {
	dir := t.TempDir()
	store, err := NewConfigStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Set(KeyChunkSize, 512))
	require.NoError(t, store.Set(KeyWeightSparse, 0.5))

	// A fresh store reads the persisted TOML back through dot notation.
	reloaded, err := NewConfigStore(dir)
	require.NoError(t, err)

	settings, err := LoadSettings(reloaded)
	require.NoError(t, err)
	assert.Equal(t, 512, settings.ChunkSize)
	assert.Equal(t, 0.5, settings.WeightSparse)
}

func TestLoadSettings_Invalid(t *testing.T) {
	t.Run("overlap at chunk size", func(t *testing.T) {
		store := newSettingsStore(t)
		require.NoError(t, store.Set(KeyChunkSize, 100))
		require.NoError(t, store.Set(KeyChunkOverlap, 100))

		_, err := LoadSettings(store)

		assert.ErrorIs(t, err, domain.ErrConfigInvalid)
	})

	t.Run("unknown fusion policy", func(t *testing.T) {
		store := newSettingsStore(t)
		require.NoError(t, store.Set(KeyFusion, "borda"))

		_, err := LoadSettings(store)

		assert.ErrorIs(t, err, domain.ErrConfigInvalid)
	})

	t.Run("weighted fusion with weights not summing to one", func(t *testing.T) {
		store := newSettingsStore(t)
		require.NoError(t, store.Set(KeyFusion, "weighted"))
		require.NoError(t, store.Set(KeyWeightSparse, 0.8))
		require.NoError(t, store.Set(KeyWeightDense, 0.8))

		_, err := LoadSettings(store)

		assert.ErrorIs(t, err, domain.ErrConfigInvalid)
	})

	t.Run("unknown similarity metric", func(t *testing.T) {
		store := newSettingsStore(t)
		require.NoError(t, store.Set(KeySimilarity, "euclidean"))

		_, err := LoadSettings(store)

		assert.ErrorIs(t, err, domain.ErrConfigInvalid)
	})
}
