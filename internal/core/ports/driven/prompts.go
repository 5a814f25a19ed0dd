package driven

// Prompt names used by the retrieval and answer pipeline.
const (
	// PromptAnswerSystem is the system prompt for answer composition.
	PromptAnswerSystem = "answer_system"

	// PromptRerankScore is the pairwise relevance scoring prompt.
	// It takes the query and the passage as format arguments.
	PromptRerankScore = "rerank_score"
)

// PromptStore provides access to LLM prompt templates.
// Implementations may load prompts from user-editable files with
// embedded defaults as fallback.
type PromptStore interface {
	// Load retrieves a prompt by name.
	// Returns the default prompt if no user override exists.
	Load(name string) (string, error)
}
