// Package bm25 provides an in-process BM25 sparse index.
package bm25

import (
	"context"
	"math"
	"sort"
	"strings"
	"sync/atomic"
	"unicode"

	"github.com/swimforge-labs/swimforge-cli/internal/core/domain"
	"github.com/swimforge-labs/swimforge-cli/internal/core/ports/driven"
)

// Ensure Index implements the interface.
var _ driven.SparseIndex = (*Index)(nil)

// BM25 parameters (Okapi defaults).
const (
	k1 = 1.5
	b  = 0.75
)

// Index is a term-frequency relevance index over chunks. Build replaces
// the whole structure through an atomic pointer swap, so readers never
// observe partial state and a failed build leaves the prior state
// serving.
type Index struct {
	state atomic.Pointer[state]
}

// state is one immutable generation of the index.
type state struct {
	// termFreqs maps term -> position in docs -> occurrences.
	termFreqs map[string]map[int]int

	// docLens holds token counts per chunk, same order as chunkIDs.
	docLens []int

	chunkIDs  []string
	avgDocLen float64
}

// New creates an empty BM25 index. Search fails with
// domain.ErrIndexNotReady until the first successful Build.
func New() *Index {
	return &Index{}
}

// Build constructs the index from the full chunk set, replacing any
// prior state.
func (idx *Index) Build(_ context.Context, chunks []domain.Chunk) error {
	st := &state{
		termFreqs: make(map[string]map[int]int),
		docLens:   make([]int, len(chunks)),
		chunkIDs:  make([]string, len(chunks)),
	}

	totalLen := 0
	for i, chunk := range chunks {
		st.chunkIDs[i] = chunk.ID
		tokens := tokenize(chunk.Content)
		st.docLens[i] = len(tokens)
		totalLen += len(tokens)
		for _, term := range tokens {
			postings, ok := st.termFreqs[term]
			if !ok {
				postings = make(map[int]int)
				st.termFreqs[term] = postings
			}
			postings[i]++
		}
	}
	if len(chunks) > 0 {
		st.avgDocLen = float64(totalLen) / float64(len(chunks))
	}

	idx.state.Store(st)
	return nil
}

// Search returns up to limit candidates ranked by BM25 score descending,
// ties broken by chunk ID ascending. An empty query yields an empty
// result, not an error.
func (idx *Index) Search(_ context.Context, query string, limit int) ([]domain.Candidate, error) {
	st := idx.state.Load()
	if st == nil {
		return nil, domain.ErrIndexNotReady
	}

	terms := tokenize(query)
	if len(terms) == 0 {
		return []domain.Candidate{}, nil
	}

	n := float64(len(st.chunkIDs))
	scores := make(map[int]float64)
	for _, term := range terms {
		postings, ok := st.termFreqs[term]
		if !ok {
			continue
		}
		// Lucene-style IDF, always positive.
		idf := math.Log(1 + (n-float64(len(postings))+0.5)/(float64(len(postings))+0.5))
		for doc, tf := range postings {
			norm := 1 - b + b*float64(st.docLens[doc])/st.avgDocLen
			scores[doc] += idf * float64(tf) * (k1 + 1) / (float64(tf) + k1*norm)
		}
	}

	candidates := make([]domain.Candidate, 0, len(scores))
	for doc, score := range scores {
		candidates = append(candidates, domain.Candidate{
			ChunkID: st.chunkIDs[doc],
			Score:   score,
			Source:  domain.SourceSparse,
		})
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].Score != candidates[j].Score {
			return candidates[i].Score > candidates[j].Score
		}
		return candidates[i].ChunkID < candidates[j].ChunkID
	})

	if limit > 0 && len(candidates) > limit {
		candidates = candidates[:limit]
	}
	return candidates, nil
}

// Close releases resources.
func (idx *Index) Close() error {
	return nil
}

// tokenize lowercases and splits on anything that is not a letter or
// digit. Chunks and queries go through the same tokenizer.
func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}
