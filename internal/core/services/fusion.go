package services

import (
	"fmt"
	"sort"

	"github.com/swimforge-labs/swimforge-cli/internal/core/domain"
)

// FusionStrategy merges the sparse and dense candidate lists for one
// query into a single ranking. Strategies are selected by configuration
// and swappable without touching the index contracts.
type FusionStrategy interface {
	// Name returns the policy name.
	Name() string

	// Fuse merges both already-ranked lists, sorted by fused score
	// descending (ties by chunk ID ascending) and truncated to topN.
	Fuse(sparse, dense []domain.Candidate, topN int) []domain.FusedResult
}

// NewFusionStrategy builds the strategy the settings select.
func NewFusionStrategy(settings domain.Settings) (FusionStrategy, error) {
	switch settings.Fusion {
	case domain.FusionWeighted:
		return &weightedFusion{
			wSparse: settings.WeightSparse,
			wDense:  settings.WeightDense,
		}, nil
	case domain.FusionRRF:
		return &rrfFusion{k: settings.RRFK}, nil
	default:
		return nil, fmt.Errorf("%w: unknown fusion policy %q", domain.ErrConfigInvalid, settings.Fusion)
	}
}

// weightedFusion min-max normalises each list's scores to [0,1] and
// combines them with configured weights. A chunk absent from one list
// contributes 0 for that list.
type weightedFusion struct {
	wSparse float64
	wDense  float64
}

func (f *weightedFusion) Name() string { return string(domain.FusionWeighted) }

func (f *weightedFusion) Fuse(sparse, dense []domain.Candidate, topN int) []domain.FusedResult {
	scores := make(map[string]float64)
	for id, norm := range normalise(sparse) {
		scores[id] += f.wSparse * norm
	}
	for id, norm := range normalise(dense) {
		scores[id] += f.wDense * norm
	}
	return rank(scores, topN)
}

// normalise maps each candidate to its min-max normalised score.
// A list of length <= 1 normalises its single score to 1.0.
func normalise(list []domain.Candidate) map[string]float64 {
	norms := make(map[string]float64, len(list))
	if len(list) == 0 {
		return norms
	}
	if len(list) == 1 {
		norms[list[0].ChunkID] = 1.0
		return norms
	}

	minScore, maxScore := list[0].Score, list[0].Score
	for _, c := range list[1:] {
		if c.Score < minScore {
			minScore = c.Score
		}
		if c.Score > maxScore {
			maxScore = c.Score
		}
	}

	spread := maxScore - minScore
	for _, c := range list {
		if spread == 0 {
			norms[c.ChunkID] = 1.0
			continue
		}
		norms[c.ChunkID] = (c.Score - minScore) / spread
	}
	return norms
}

// rrfFusion scores each chunk by the sum over lists containing it of
// 1/(k + rank), rank 1-based.
type rrfFusion struct {
	k int
}

func (f *rrfFusion) Name() string { return string(domain.FusionRRF) }

func (f *rrfFusion) Fuse(sparse, dense []domain.Candidate, topN int) []domain.FusedResult {
	scores := make(map[string]float64)
	for i, c := range sparse {
		scores[c.ChunkID] += 1.0 / float64(f.k+i+1)
	}
	for i, c := range dense {
		scores[c.ChunkID] += 1.0 / float64(f.k+i+1)
	}
	return rank(scores, topN)
}

// rank orders fused scores descending, ties by chunk ID ascending, and
// truncates to topN with 1-based ranks assigned.
func rank(scores map[string]float64, topN int) []domain.FusedResult {
	results := make([]domain.FusedResult, 0, len(scores))
	for id, score := range scores {
		results = append(results, domain.FusedResult{ChunkID: id, Score: score})
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].ChunkID < results[j].ChunkID
	})

	if topN > 0 && len(results) > topN {
		results = results[:topN]
	}
	for i := range results {
		results[i].Rank = i + 1
	}
	return results
}
