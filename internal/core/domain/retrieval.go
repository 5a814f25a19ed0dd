package domain

// CandidateSource identifies which index produced a candidate.
type CandidateSource string

// Candidate sources.
const (
	// SourceSparse is the lexical (BM25) index.
	SourceSparse CandidateSource = "sparse"

	// SourceDense is the embedding-vector index.
	SourceDense CandidateSource = "dense"
)

// Candidate is a per-query result from one index, before fusion.
// Candidates are transient and never persisted.
type Candidate struct {
	// ChunkID is the matched chunk.
	ChunkID string

	// Score is the raw relevance score from the producing index.
	// Higher is more relevant for both sources.
	Score float64

	// Source is the index that produced this candidate.
	Source CandidateSource
}

// FusedResult is one entry of the merged ranking produced by the fuser.
// The ordering (Rank ascending) is the externally visible contract.
type FusedResult struct {
	// ChunkID is the ranked chunk.
	ChunkID string

	// Score is the fused score under the active fusion policy.
	Score float64

	// Rank is the 1-based position in the fused ranking.
	Rank int
}

// RetrievedChunk is a hydrated retrieval result: a fused (and possibly
// reranked) chunk with its text and provenance.
type RetrievedChunk struct {
	// ChunkID is the retrieved chunk.
	ChunkID string

	// DocumentID and Path identify where the chunk came from.
	DocumentID string
	Path       string

	// Content is the chunk text handed to answer composition.
	Content string

	// Score is the ordering score. After fusion it is the fused score;
	// when reranking ran it is the rerank score instead.
	Score float64

	// Rank is the 1-based final position.
	Rank int
}

// FusionPolicy selects how sparse and dense candidate lists are merged.
type FusionPolicy string

// Available fusion policies.
const (
	// FusionWeighted min-max normalises each list and combines scores
	// with configured weights.
	FusionWeighted FusionPolicy = "weighted"

	// FusionRRF combines lists by reciprocal rank.
	FusionRRF FusionPolicy = "rrf"
)

// IsValid returns true if the fusion policy is recognised.
func (p FusionPolicy) IsValid() bool {
	switch p {
	case FusionWeighted, FusionRRF:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (p FusionPolicy) String() string {
	return string(p)
}

// SimilarityMetric selects how the dense index compares vectors.
type SimilarityMetric string

// Available similarity metrics.
const (
	// SimilarityCosine normalises vectors at build and query time.
	SimilarityCosine SimilarityMetric = "cosine"

	// SimilarityDot compares raw inner products.
	SimilarityDot SimilarityMetric = "dot"
)

// IsValid returns true if the similarity metric is recognised.
func (m SimilarityMetric) IsValid() bool {
	switch m {
	case SimilarityCosine, SimilarityDot:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (m SimilarityMetric) String() string {
	return string(m)
}
