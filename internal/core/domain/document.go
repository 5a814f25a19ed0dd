package domain

import (
	"fmt"
	"time"
)

// Document represents a source text loaded from the knowledge corpus.
// It is immutable once loaded; only the build pipeline creates documents.
type Document struct {
	// ID is the unique identifier, derived from the corpus-relative path
	// so that rebuilds of the same corpus produce the same IDs.
	ID string

	// Path is the original file location.
	Path string

	// Title is the human-readable title (file name by default).
	Title string

	// Content is the full flattened text content before chunking.
	Content string

	// LoadedAt is when the document was read from disk.
	LoadedAt time.Time
}

// Chunk is the unit of indexing and retrieval: a contiguous slice of a
// document's content plus provenance.
type Chunk struct {
	// ID is the stable chunk identifier. It is derived from the document
	// ID and the chunk's character span, so chunking the same document
	// with the same configuration always yields the same IDs.
	ID string

	// DocumentID links to the parent Document.
	DocumentID string

	// Content is the text content of this chunk.
	Content string

	// Position is the ordinal position within the document.
	Position int

	// StartOffset and EndOffset are the character span [start, end)
	// within the document content.
	StartOffset int
	EndOffset   int

	// Embedding is the vector representation for semantic search.
	// Populated during index build, empty otherwise.
	Embedding []float32
}

// ChunkID builds the stable identifier for a chunk of the given document
// covering the character span [start, end).
func ChunkID(documentID string, start, end int) string {
	return fmt.Sprintf("%s:%d-%d", documentID, start, end)
}

// IndexBuildReport summarises one wholesale index build.
type IndexBuildReport struct {
	// ID uniquely identifies the build run.
	ID string

	// Documents is the number of documents loaded.
	Documents int

	// Chunks is the number of chunks produced and indexed.
	Chunks int

	// EmbeddingModel is the model the dense index was built with.
	EmbeddingModel string

	// Dimensions is the embedding dimensionality of the dense index.
	Dimensions int

	// StartedAt and Duration describe the build window.
	StartedAt time.Time
	Duration  time.Duration
}
