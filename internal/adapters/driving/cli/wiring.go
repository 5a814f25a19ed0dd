package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/swimforge-labs/swimforge-cli/internal/adapters/driven/config/file"
	ollamaembed "github.com/swimforge-labs/swimforge-cli/internal/adapters/driven/embedding/ollama"
	openaiembed "github.com/swimforge-labs/swimforge-cli/internal/adapters/driven/embedding/openai"
	"github.com/swimforge-labs/swimforge-cli/internal/adapters/driven/index/bm25"
	"github.com/swimforge-labs/swimforge-cli/internal/adapters/driven/index/flat"
	anthropicllm "github.com/swimforge-labs/swimforge-cli/internal/adapters/driven/llm/anthropic"
	ollamallm "github.com/swimforge-labs/swimforge-cli/internal/adapters/driven/llm/ollama"
	openaillm "github.com/swimforge-labs/swimforge-cli/internal/adapters/driven/llm/openai"
	ollamarerank "github.com/swimforge-labs/swimforge-cli/internal/adapters/driven/rerank/ollama"
	"github.com/swimforge-labs/swimforge-cli/internal/adapters/driven/storage/sqlite"
	"github.com/swimforge-labs/swimforge-cli/internal/connectors/filesystem"
	"github.com/swimforge-labs/swimforge-cli/internal/core/domain"
	"github.com/swimforge-labs/swimforge-cli/internal/core/ports/driven"
	"github.com/swimforge-labs/swimforge-cli/internal/core/ports/driving"
	"github.com/swimforge-labs/swimforge-cli/internal/core/services"
)

// app holds the wired dependencies shared by the commands. It is
// assembled per invocation from the config file.
type app struct {
	config   driven.ConfigStore
	prompts  driven.PromptStore
	settings domain.Settings
	store    *sqlite.Store
}

// newApp loads configuration and opens the metadata store.
func newApp() (*app, error) {
	config, err := file.NewConfigStore("")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	settings, err := file.LoadSettings(config)
	if err != nil {
		return nil, err
	}

	prompts, err := file.NewPromptStore("")
	if err != nil {
		return nil, fmt.Errorf("loading prompts: %w", err)
	}

	store, err := sqlite.NewStore("")
	if err != nil {
		return nil, fmt.Errorf("opening store: %w", err)
	}

	return &app{
		config:   config,
		prompts:  prompts,
		settings: *settings,
		store:    store,
	}, nil
}

// Close releases the app's resources.
func (a *app) Close() error {
	return a.store.Close()
}

// newEmbedder selects the embedding provider from config.
func (a *app) newEmbedder() (driven.EmbeddingService, error) {
	switch provider := a.config.GetString(file.KeyEmbedProvider); provider {
	case "", "ollama":
		return ollamaembed.NewEmbeddingService(ollamaembed.Config{
			BaseURL: a.config.GetString(file.KeyEmbedBaseURL),
			Model:   a.config.GetString(file.KeyEmbedModel),
		}), nil
	case "openai":
		return openaiembed.NewEmbeddingService(openaiembed.Config{
			APIKey:  a.config.GetString("embedding.api_key"),
			BaseURL: a.config.GetString(file.KeyEmbedBaseURL),
			Model:   a.config.GetString(file.KeyEmbedModel),
		})
	default:
		return nil, fmt.Errorf("%w: unknown embedding provider %q", domain.ErrConfigInvalid, provider)
	}
}

// newSource creates the filesystem connector for the configured corpus.
func (a *app) newSource() (*filesystem.Connector, error) {
	if a.settings.DocsDir == "" {
		return nil, fmt.Errorf("%w: docs.dir is not set", domain.ErrConfigInvalid)
	}
	return filesystem.New(a.settings.DocsDir), nil
}

// newIndexer wires the full build pipeline.
func (a *app) newIndexer(source driven.DocumentSource, sparse driven.SparseIndex, dense driven.DenseIndex) (driving.Indexer, error) {
	chunker, err := services.NewChunker(a.settings.ChunkSize, a.settings.ChunkOverlap)
	if err != nil {
		return nil, err
	}
	embedder, err := a.newEmbedder()
	if err != nil {
		return nil, err
	}
	return services.NewIndexerService(source, chunker, a.store, sparse, dense, embedder), nil
}

// newIndexes creates empty sparse and dense indices.
func (a *app) newIndexes() (driven.SparseIndex, driven.DenseIndex, error) {
	dense, err := flat.New(a.settings.Similarity)
	if err != nil {
		return nil, nil, err
	}
	return bm25.New(), dense, nil
}

// loadIndexes builds in-memory indices from the persisted chunks.
// Returns an error when no corpus has been indexed yet.
func (a *app) loadIndexes(ctx context.Context) (driven.SparseIndex, driven.DenseIndex, error) {
	chunks, err := a.store.ListChunks(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("loading chunks: %w", err)
	}
	if len(chunks) == 0 {
		return nil, nil, errors.New("no indexed corpus found, run 'swimforge index' first")
	}

	sparse, dense, err := a.newIndexes()
	if err != nil {
		return nil, nil, err
	}
	if err := sparse.Build(ctx, chunks); err != nil {
		return nil, nil, fmt.Errorf("building sparse index: %w", err)
	}
	if err := dense.Build(ctx, chunks); err != nil {
		return nil, nil, fmt.Errorf("building dense index: %w", err)
	}
	return sparse, dense, nil
}

// newRetriever wires the query pipeline on top of loaded indices.
func (a *app) newRetriever(ctx context.Context) (driving.Retriever, error) {
	sparse, dense, err := a.loadIndexes(ctx)
	if err != nil {
		return nil, err
	}

	embedder, err := a.newEmbedder()
	if err != nil {
		return nil, err
	}

	fusion, err := services.NewFusionStrategy(a.settings)
	if err != nil {
		return nil, err
	}

	var reranker driven.Reranker
	if a.settings.RerankEnabled {
		prompt, err := a.prompts.Load(driven.PromptRerankScore)
		if err != nil {
			return nil, err
		}
		reranker = ollamarerank.New(ollamarerank.Config{
			Model:       a.config.GetString(file.KeyRerankModel),
			ScorePrompt: prompt,
		})
	}

	return services.NewRetrievalService(sparse, dense, embedder, a.store, reranker, fusion, a.settings), nil
}

// newRouter wires the intent router over the retrieval pipeline.
func (a *app) newRouter(ctx context.Context) (driving.Router, error) {
	retriever, err := a.newRetriever(ctx)
	if err != nil {
		return nil, err
	}
	return services.NewRouterService(retriever), nil
}

// newLLM creates the answer composer if llm.enabled is set.
func (a *app) newLLM() (driven.LLMService, error) {
	if !a.config.GetBool(file.KeyLLMEnabled) {
		return nil, nil
	}
	system, err := a.prompts.Load(driven.PromptAnswerSystem)
	if err != nil {
		return nil, err
	}

	switch provider := a.config.GetString(file.KeyLLMProvider); provider {
	case "", "ollama":
		return ollamallm.NewLLMService(ollamallm.Config{
			BaseURL:      a.config.GetString(file.KeyLLMBaseURL),
			Model:        a.config.GetString(file.KeyLLMModel),
			SystemPrompt: system,
		}), nil
	case "openai":
		return openaillm.NewLLMService(openaillm.Config{
			APIKey:       a.config.GetString(file.KeyLLMAPIKey),
			BaseURL:      a.config.GetString(file.KeyLLMBaseURL),
			Model:        a.config.GetString(file.KeyLLMModel),
			SystemPrompt: system,
		})
	case "anthropic":
		return anthropicllm.NewLLMService(anthropicllm.Config{
			APIKey:       a.config.GetString(file.KeyLLMAPIKey),
			BaseURL:      a.config.GetString(file.KeyLLMBaseURL),
			Model:        a.config.GetString(file.KeyLLMModel),
			SystemPrompt: system,
		})
	default:
		return nil, fmt.Errorf("%w: unknown llm provider %q", domain.ErrConfigInvalid, provider)
	}
}
