package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swimforge-labs/swimforge-cli/internal/core/domain"
)

func seedCorpus() ([]domain.Document, []domain.Chunk) {
	docs := []domain.Document{
		{ID: "drills.md", Path: "/corpus/drills.md", Title: "Drills"},
		{ID: "taper.md", Path: "/corpus/taper.md", Title: "Taper"},
	}
	chunks := []domain.Chunk{
		{ID: "taper.md:0-10", DocumentID: "taper.md", Position: 0, Content: "taper one"},
		{ID: "drills.md:10-20", DocumentID: "drills.md", Position: 1, Content: "drills two"},
		{ID: "drills.md:0-10", DocumentID: "drills.md", Position: 0, Content: "drills one"},
	}
	return docs, chunks
}

func TestChunkStore_ReplaceAll(t *testing.T) {
	ctx := context.Background()
	store := NewChunkStore()
	docs, chunks := seedCorpus()

	require.NoError(t, store.ReplaceAll(ctx, docs, chunks))

	t.Run("stores all chunks and documents", func(t *testing.T) {
		chunk, err := store.GetChunk(ctx, "drills.md:0-10")
		require.NoError(t, err)
		assert.Equal(t, "drills one", chunk.Content)

		doc, err := store.GetDocument(ctx, "taper.md")
		require.NoError(t, err)
		assert.Equal(t, "Taper", doc.Title)
	})

	t.Run("replaces the previous corpus wholesale", func(t *testing.T) {
		err := store.ReplaceAll(ctx,
			[]domain.Document{{ID: "new.md"}},
			[]domain.Chunk{{ID: "new.md:0-5", DocumentID: "new.md", Position: 0}})
		require.NoError(t, err)

		_, err = store.GetChunk(ctx, "drills.md:0-10")
		assert.ErrorIs(t, err, domain.ErrNotFound)

		listed, err := store.ListChunks(ctx)
		require.NoError(t, err)
		require.Len(t, listed, 1)
		assert.Equal(t, "new.md:0-5", listed[0].ID)
	})
}

func TestChunkStore_GetChunk_NotFound(t *testing.T) {
	store := NewChunkStore()

	_, err := store.GetChunk(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestChunkStore_GetDocument_NotFound(t *testing.T) {
	store := NewChunkStore()

	_, err := store.GetDocument(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestChunkStore_ListChunks_DocumentOrder(t *testing.T) {
	ctx := context.Background()
	store := NewChunkStore()
	docs, chunks := seedCorpus()
	require.NoError(t, store.ReplaceAll(ctx, docs, chunks))

	listed, err := store.ListChunks(ctx)

	require.NoError(t, err)
	require.Len(t, listed, 3)
	assert.Equal(t, "drills.md:0-10", listed[0].ID)
	assert.Equal(t, "drills.md:10-20", listed[1].ID)
	assert.Equal(t, "taper.md:0-10", listed[2].ID)
}
