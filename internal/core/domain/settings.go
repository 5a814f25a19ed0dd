package domain

import (
	"fmt"
	"math"
)

// Default configuration values.
const (
	DefaultChunkSize    = 800
	DefaultChunkOverlap = 150
	DefaultTopKSparse   = 20
	DefaultTopKDense    = 20
	DefaultTopN         = 8
	DefaultRRFK         = 60
	DefaultWeightSparse = 0.4
	DefaultWeightDense  = 0.6
)

// Settings is the typed retrieval configuration. It is loaded from the
// config store and validated before any build or query runs.
type Settings struct {
	// DocsDir is the corpus directory to index.
	DocsDir string

	// ChunkSize and ChunkOverlap are measured in characters.
	// Overlap must be strictly less than size.
	ChunkSize    int
	ChunkOverlap int

	// TopKSparse and TopKDense bound the per-index candidate lists.
	TopKSparse int
	TopKDense  int

	// Fusion selects the fusion policy.
	Fusion FusionPolicy

	// WeightSparse and WeightDense are the weighted-fusion weights.
	// They must sum to 1.
	WeightSparse float64
	WeightDense  float64

	// RRFK is the reciprocal-rank fusion constant.
	RRFK int

	// TopN bounds the fused result list handed to the reranker.
	TopN int

	// Similarity selects the dense index metric.
	Similarity SimilarityMetric

	// RerankEnabled turns the second-pass reranker on.
	RerankEnabled bool
}

// DefaultSettings returns settings with all defaults applied.
func DefaultSettings() Settings {
	return Settings{
		ChunkSize:    DefaultChunkSize,
		ChunkOverlap: DefaultChunkOverlap,
		TopKSparse:   DefaultTopKSparse,
		TopKDense:    DefaultTopKDense,
		Fusion:       FusionRRF,
		WeightSparse: DefaultWeightSparse,
		WeightDense:  DefaultWeightDense,
		RRFK:         DefaultRRFK,
		TopN:         DefaultTopN,
		Similarity:   SimilarityCosine,
	}
}

// Validate checks the settings. All violations wrap ErrConfigInvalid.
func (s Settings) Validate() error {
	if s.ChunkSize <= 0 {
		return fmt.Errorf("%w: chunk size must be positive, got %d", ErrConfigInvalid, s.ChunkSize)
	}
	if s.ChunkOverlap < 0 {
		return fmt.Errorf("%w: chunk overlap must not be negative, got %d", ErrConfigInvalid, s.ChunkOverlap)
	}
	if s.ChunkOverlap >= s.ChunkSize {
		return fmt.Errorf("%w: chunk overlap (%d) must be less than chunk size (%d)",
			ErrConfigInvalid, s.ChunkOverlap, s.ChunkSize)
	}
	if s.TopKSparse <= 0 || s.TopKDense <= 0 || s.TopN <= 0 {
		return fmt.Errorf("%w: top-k and top-n values must be positive", ErrConfigInvalid)
	}
	if !s.Fusion.IsValid() {
		return fmt.Errorf("%w: unknown fusion policy %q", ErrConfigInvalid, s.Fusion)
	}
	if s.Fusion == FusionWeighted {
		if sum := s.WeightSparse + s.WeightDense; math.Abs(sum-1.0) > 1e-9 {
			return fmt.Errorf("%w: fusion weights must sum to 1, got %g", ErrConfigInvalid, sum)
		}
		if s.WeightSparse < 0 || s.WeightDense < 0 {
			return fmt.Errorf("%w: fusion weights must not be negative", ErrConfigInvalid)
		}
	}
	if s.Fusion == FusionRRF && s.RRFK <= 0 {
		return fmt.Errorf("%w: rrf_k must be positive, got %d", ErrConfigInvalid, s.RRFK)
	}
	if !s.Similarity.IsValid() {
		return fmt.Errorf("%w: unknown similarity metric %q", ErrConfigInvalid, s.Similarity)
	}
	return nil
}
