package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swimforge-labs/swimforge-cli/internal/core/domain"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func testCorpus() ([]domain.Document, []domain.Chunk) {
	docs := []domain.Document{
		{
			ID:       "drills/catch.md",
			Path:     "/corpus/drills/catch.md",
			Title:    "Catch Drills",
			Content:  "early vertical forearm notes",
			LoadedAt: time.Now().UTC().Truncate(time.Second),
		},
	}
	chunks := []domain.Chunk{
		{
			ID:          "drills/catch.md:0-12",
			DocumentID:  "drills/catch.md",
			Content:     "early vertic",
			Position:    0,
			StartOffset: 0,
			EndOffset:   12,
			Embedding:   []float32{0.25, -1.5, 3.75},
		},
		{
			ID:          "drills/catch.md:8-20",
			DocumentID:  "drills/catch.md",
			Content:     "ical forearm",
			Position:    1,
			StartOffset: 8,
			EndOffset:   20,
		},
	}
	return docs, chunks
}

func TestNewStore_CreatesSchema(t *testing.T) {
	store := newTestStore(t)

	// A fresh database answers queries against the migrated schema.
	chunks, err := store.ListChunks(context.Background())
	require.NoError(t, err)
	assert.Empty(t, chunks)
	assert.NotEmpty(t, store.Path())
}

func TestStore_ReplaceAll_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	docs, chunks := testCorpus()

	require.NoError(t, store.ReplaceAll(ctx, docs, chunks))

	t.Run("chunk round trips with its embedding", func(t *testing.T) {
		chunk, err := store.GetChunk(ctx, "drills/catch.md:0-12")
		require.NoError(t, err)
		assert.Equal(t, "early vertic", chunk.Content)
		assert.Equal(t, 0, chunk.Position)
		assert.Equal(t, 12, chunk.EndOffset)
		assert.Equal(t, []float32{0.25, -1.5, 3.75}, chunk.Embedding)
	})

	t.Run("chunk without embedding round trips as nil", func(t *testing.T) {
		chunk, err := store.GetChunk(ctx, "drills/catch.md:8-20")
		require.NoError(t, err)
		assert.Nil(t, chunk.Embedding)
	})

	t.Run("document round trips", func(t *testing.T) {
		doc, err := store.GetDocument(ctx, "drills/catch.md")
		require.NoError(t, err)
		assert.Equal(t, "Catch Drills", doc.Title)
		assert.Equal(t, "/corpus/drills/catch.md", doc.Path)
	})

	t.Run("list returns chunks in document order", func(t *testing.T) {
		listed, err := store.ListChunks(ctx)
		require.NoError(t, err)
		require.Len(t, listed, 2)
		assert.Equal(t, "drills/catch.md:0-12", listed[0].ID)
		assert.Equal(t, "drills/catch.md:8-20", listed[1].ID)
	})
}

func TestStore_ReplaceAll_WipesPreviousCorpus(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	docs, chunks := testCorpus()
	require.NoError(t, store.ReplaceAll(ctx, docs, chunks))

	err := store.ReplaceAll(ctx,
		[]domain.Document{{ID: "fresh.md", Path: "/corpus/fresh.md"}},
		[]domain.Chunk{{ID: "fresh.md:0-5", DocumentID: "fresh.md", Content: "fresh"}})
	require.NoError(t, err)

	_, err = store.GetChunk(ctx, "drills/catch.md:0-12")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = store.GetDocument(ctx, "drills/catch.md")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	listed, err := store.ListChunks(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "fresh.md:0-5", listed[0].ID)
}

func TestStore_GetChunk_NotFound(t *testing.T) {
	store := newTestStore(t)

	_, err := store.GetChunk(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStore_GetDocument_NotFound(t *testing.T) {
	store := newTestStore(t)

	_, err := store.GetDocument(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStore_MigrationsAreIdempotent(t *testing.T) {
	dir := t.TempDir()

	first, err := NewStore(dir)
	require.NoError(t, err)
	docs, chunks := testCorpus()
	require.NoError(t, first.ReplaceAll(context.Background(), docs, chunks))
	require.NoError(t, first.Close())

	// Reopening the same database must not re-run applied migrations.
	second, err := NewStore(dir)
	require.NoError(t, err)
	defer second.Close()

	listed, err := second.ListChunks(context.Background())
	require.NoError(t, err)
	assert.Len(t, listed, 2)
}

func TestFloat32BlobRoundTrip(t *testing.T) {
	vectors := [][]float32{
		nil,
		{},
		{0},
		{1.5, -2.25, 3.125, 0.0001},
	}
	for _, v := range vectors {
		got := bytesToFloat32Slice(float32SliceToBytes(v))
		if len(v) == 0 {
			assert.Nil(t, got)
			continue
		}
		assert.Equal(t, v, got)
	}
}
