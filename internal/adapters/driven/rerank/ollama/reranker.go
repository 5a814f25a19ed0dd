// Package ollama provides a reranker adapter using an Ollama model as a
// pairwise (query, chunk) relevance scorer.
package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/swimforge-labs/swimforge-cli/internal/core/domain"
	"github.com/swimforge-labs/swimforge-cli/internal/core/ports/driven"
)

// Ensure Reranker implements the interface.
var _ driven.Reranker = (*Reranker)(nil)

// Default configuration values.
const (
	DefaultBaseURL = "http://localhost:11434"
	DefaultModel   = "qwen2.5:0.5b"
	DefaultTimeout = 60 * time.Second
)

const scorePrompt = `Rate how relevant the passage is to the query on a scale from 0 to 10.
Reply with a single number only.

Query: %s

Passage: %s

Score:`

// Config holds configuration for the Ollama reranker.
type Config struct {
	// BaseURL is the Ollama API base URL (default: http://localhost:11434).
	BaseURL string

	// Model is the scoring model to use (default: qwen2.5:0.5b).
	Model string

	// Timeout is the per-request timeout (default: 60s).
	Timeout time.Duration

	// ScorePrompt overrides the built-in scoring prompt. It must keep
	// two %s placeholders: the query and the passage, in that order.
	ScorePrompt string
}

// Reranker scores each (query, chunk) pair with a small local model.
// Any failure is reported to the retrieval service, which degrades to
// the fused order.
type Reranker struct {
	client  *http.Client
	baseURL string
	model   string
	prompt  string
}

// generateRequest is the Ollama /api/generate request format.
type generateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
}

// generateResponse is the Ollama /api/generate response format.
type generateResponse struct {
	Response string `json:"response"`
	Done     bool   `json:"done"`
}

// New creates a new Ollama reranker.
func New(cfg Config) *Reranker {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.ScorePrompt == "" {
		cfg.ScorePrompt = scorePrompt
	}

	return &Reranker{
		client:  &http.Client{Timeout: cfg.Timeout},
		baseURL: cfg.BaseURL,
		model:   cfg.Model,
		prompt:  cfg.ScorePrompt,
	}
}

// Rerank scores every result pairwise against the query and reorders by
// score descending, ties broken by chunk ID ascending.
func (r *Reranker) Rerank(ctx context.Context, query string, results []domain.RetrievedChunk) ([]domain.RetrievedChunk, error) {
	reranked := make([]domain.RetrievedChunk, len(results))
	copy(reranked, results)

	for i := range reranked {
		score, err := r.score(ctx, query, reranked[i].Content)
		if err != nil {
			return nil, fmt.Errorf("score chunk %s: %w", reranked[i].ChunkID, err)
		}
		reranked[i].Score = score
	}

	sort.Slice(reranked, func(i, j int) bool {
		if reranked[i].Score != reranked[j].Score {
			return reranked[i].Score > reranked[j].Score
		}
		return reranked[i].ChunkID < reranked[j].ChunkID
	})
	return reranked, nil
}

// score asks the model for a 0-10 relevance rating of one pair.
func (r *Reranker) score(ctx context.Context, query, passage string) (float64, error) {
	reqBody := generateRequest{
		Model:  r.model,
		Prompt: fmt.Sprintf(r.prompt, query, passage),
		Stream: false,
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return 0, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		r.baseURL+"/api/generate",
		bytes.NewReader(jsonBody),
	)
	if err != nil {
		return 0, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return 0, fmt.Errorf("ollama error (status %d): %s", resp.StatusCode, string(body))
	}

	var genResp generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&genResp); err != nil {
		return 0, fmt.Errorf("decode response: %w", err)
	}

	return parseScore(genResp.Response)
}

// parseScore extracts the leading number from a model reply.
func parseScore(reply string) (float64, error) {
	fields := strings.Fields(strings.TrimSpace(reply))
	if len(fields) == 0 {
		return 0, fmt.Errorf("empty score reply")
	}
	score, err := strconv.ParseFloat(strings.TrimSuffix(fields[0], "."), 64)
	if err != nil {
		return 0, fmt.Errorf("unparseable score %q", fields[0])
	}
	return score, nil
}
