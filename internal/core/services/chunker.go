package services

import (
	"fmt"

	"github.com/swimforge-labs/swimforge-cli/internal/core/domain"
)

// Chunker splits document content into overlapping fixed-size chunks.
// Size and overlap are measured in characters (bytes of the flattened
// text). Chunking is deterministic: the same document and configuration
// always yield identical boundaries and IDs, so rebuilds are idempotent.
type Chunker struct {
	size    int
	overlap int
}

// NewChunker creates a chunker. Fails with domain.ErrConfigInvalid when
// size is not positive or overlap is not strictly less than size.
func NewChunker(size, overlap int) (*Chunker, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: chunk size must be positive, got %d", domain.ErrConfigInvalid, size)
	}
	if overlap < 0 {
		return nil, fmt.Errorf("%w: chunk overlap must not be negative, got %d", domain.ErrConfigInvalid, overlap)
	}
	if overlap >= size {
		return nil, fmt.Errorf("%w: chunk overlap (%d) must be less than chunk size (%d)",
			domain.ErrConfigInvalid, overlap, size)
	}
	return &Chunker{size: size, overlap: overlap}, nil
}

// Chunk splits the document left-to-right with the configured overlap.
// Every offset of the content is covered by at least one chunk; the final
// chunk may be shorter than the configured size. Empty content produces
// no chunks.
func (c *Chunker) Chunk(doc domain.Document) []domain.Chunk {
	content := doc.Content
	if content == "" {
		return nil
	}

	step := c.size - c.overlap
	chunks := make([]domain.Chunk, 0, len(content)/step+1)

	position := 0
	for start := 0; ; start += step {
		end := start + c.size
		if end > len(content) {
			end = len(content)
		}

		chunks = append(chunks, domain.Chunk{
			ID:          domain.ChunkID(doc.ID, start, end),
			DocumentID:  doc.ID,
			Content:     content[start:end],
			Position:    position,
			StartOffset: start,
			EndOffset:   end,
		})
		position++

		if end == len(content) {
			break
		}
	}

	return chunks
}

// Size returns the configured chunk size in characters.
func (c *Chunker) Size() int { return c.size }

// Overlap returns the configured overlap in characters.
func (c *Chunker) Overlap() int { return c.overlap }
