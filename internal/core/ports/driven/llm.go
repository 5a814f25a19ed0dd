package driven

import "context"

// LLMService composes prose answers from retrieved context.
// This is an optional service - when nil, open-knowledge answers degrade
// to the ranked context snippets.
//
// Implementations may include:
//   - Ollama (local models)
//   - Any OpenAI-compatible inference server
type LLMService interface {
	// Compose produces an answer to the question grounded in the given
	// context snippets.
	Compose(ctx context.Context, question string, contextSnippets []string) (string, error)

	// ModelName returns the name of the model being used.
	ModelName() string

	// Ping validates the service is reachable by making a lightweight
	// test request.
	Ping(ctx context.Context) error

	// Close releases resources.
	Close() error
}
