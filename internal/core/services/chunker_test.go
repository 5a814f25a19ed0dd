package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swimforge-labs/swimforge-cli/internal/core/domain"
)

func TestNewChunker_Validation(t *testing.T) {
	t.Run("rejects non-positive size", func(t *testing.T) {
		_, err := NewChunker(0, 0)
		assert.ErrorIs(t, err, domain.ErrConfigInvalid)
	})

	t.Run("rejects negative overlap", func(t *testing.T) {
		_, err := NewChunker(100, -1)
		assert.ErrorIs(t, err, domain.ErrConfigInvalid)
	})

	t.Run("rejects overlap equal to size", func(t *testing.T) {
		_, err := NewChunker(100, 100)
		assert.ErrorIs(t, err, domain.ErrConfigInvalid)
	})

	t.Run("accepts zero overlap", func(t *testing.T) {
		chunker, err := NewChunker(100, 0)
		require.NoError(t, err)
		assert.NotNil(t, chunker)
	})
}

func TestChunker_Chunk(t *testing.T) {
	doc := func(content string) domain.Document {
		return domain.Document{ID: "notes/shoulder.md", Content: content}
	}

	t.Run("empty content produces no chunks", func(t *testing.T) {
		chunker, err := NewChunker(40, 10)
		require.NoError(t, err)

		assert.Empty(t, chunker.Chunk(doc("")))
	})

	t.Run("short content produces one chunk", func(t *testing.T) {
		chunker, err := NewChunker(40, 10)
		require.NoError(t, err)

		chunks := chunker.Chunk(doc("high-elbow catch"))

		require.Len(t, chunks, 1)
		assert.Equal(t, "notes/shoulder.md:0-16", chunks[0].ID)
		assert.Equal(t, "high-elbow catch", chunks[0].Content)
		assert.Equal(t, 0, chunks[0].Position)
	})

	t.Run("covers every offset with configured overlap", func(t *testing.T) {
		chunker, err := NewChunker(40, 10)
		require.NoError(t, err)

		content := strings.Repeat("shoulder-friendly freestyle technique. ", 5)
		chunks := chunker.Chunk(doc(content))
		require.NotEmpty(t, chunks)

		assert.Equal(t, 0, chunks[0].StartOffset)
		assert.Equal(t, len(content), chunks[len(chunks)-1].EndOffset)
		for i := 1; i < len(chunks); i++ {
			assert.Equal(t, chunks[i-1].StartOffset+30, chunks[i].StartOffset, "step is size minus overlap")
			assert.Equal(t, i, chunks[i].Position)
		}
		for _, chunk := range chunks {
			assert.Equal(t, content[chunk.StartOffset:chunk.EndOffset], chunk.Content)
			assert.LessOrEqual(t, chunk.EndOffset-chunk.StartOffset, 40)
		}
	})

	t.Run("no redundant tail chunk when size divides evenly", func(t *testing.T) {
		chunker, err := NewChunker(10, 5)
		require.NoError(t, err)

		// 15 characters: chunks [0,10) and [5,15) cover everything.
		chunks := chunker.Chunk(doc("abcdefghijklmno"))

		require.Len(t, chunks, 2)
		assert.Equal(t, "notes/shoulder.md:0-10", chunks[0].ID)
		assert.Equal(t, "notes/shoulder.md:5-15", chunks[1].ID)
	})

	t.Run("deterministic across runs", func(t *testing.T) {
		chunker, err := NewChunker(40, 10)
		require.NoError(t, err)

		content := strings.Repeat("catch-up drill with paddles ", 8)
		first := chunker.Chunk(doc(content))
		second := chunker.Chunk(doc(content))

		assert.Equal(t, first, second)
	})
}
