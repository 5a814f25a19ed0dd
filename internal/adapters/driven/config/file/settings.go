package file

import (
	"github.com/swimforge-labs/swimforge-cli/internal/core/domain"
	"github.com/swimforge-labs/swimforge-cli/internal/core/ports/driven"
)

// Configuration keys understood by the settings loader.
const (
	KeyDocsDir       = "docs.dir"
	KeyChunkSize     = "chunk.size"
	KeyChunkOverlap  = "chunk.overlap"
	KeyTopKSparse    = "retrieval.top_k_sparse"
	KeyTopKDense     = "retrieval.top_k_dense"
	KeyFusion        = "retrieval.fusion"
	KeyWeightSparse  = "retrieval.weight_sparse"
	KeyWeightDense   = "retrieval.weight_dense"
	KeyRRFK          = "retrieval.rrf_k"
	KeyTopN          = "retrieval.top_n"
	KeySimilarity    = "retrieval.similarity"
	KeyRerankEnabled = "rerank.enabled"
	KeyRerankModel   = "rerank.model"
	KeyEmbedProvider = "embedding.provider"
	KeyEmbedModel    = "embedding.model"
	KeyEmbedBaseURL  = "embedding.base_url"
	KeyLLMEnabled    = "llm.enabled"
	KeyLLMProvider   = "llm.provider"
	KeyLLMModel      = "llm.model"
	KeyLLMAPIKey     = "llm.api_key"
	KeyLLMBaseURL    = "llm.base_url"
)

// LoadSettings builds typed retrieval settings from the config store.
// Missing keys keep their defaults; present keys override them. The
// result is validated before it is returned.
func LoadSettings(store driven.ConfigStore) (*domain.Settings, error) {
	settings := domain.DefaultSettings()

	if v := store.GetString(KeyDocsDir); v != "" {
		settings.DocsDir = v
	}
	if v := store.GetInt(KeyChunkSize); v != 0 {
		settings.ChunkSize = v
	}
	if _, ok := store.Get(KeyChunkOverlap); ok {
		settings.ChunkOverlap = store.GetInt(KeyChunkOverlap)
	}
	if v := store.GetInt(KeyTopKSparse); v != 0 {
		settings.TopKSparse = v
	}
	if v := store.GetInt(KeyTopKDense); v != 0 {
		settings.TopKDense = v
	}
	if v := store.GetString(KeyFusion); v != "" {
		settings.Fusion = domain.FusionPolicy(v)
	}
	if _, ok := store.Get(KeyWeightSparse); ok {
		settings.WeightSparse = store.GetFloat(KeyWeightSparse)
	}
	if _, ok := store.Get(KeyWeightDense); ok {
		settings.WeightDense = store.GetFloat(KeyWeightDense)
	}
	if v := store.GetInt(KeyRRFK); v != 0 {
		settings.RRFK = v
	}
	if v := store.GetInt(KeyTopN); v != 0 {
		settings.TopN = v
	}
	if v := store.GetString(KeySimilarity); v != "" {
		settings.Similarity = domain.SimilarityMetric(v)
	}
	settings.RerankEnabled = store.GetBool(KeyRerankEnabled)

	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return &settings, nil
}
