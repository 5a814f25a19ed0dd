package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrConfigInvalid indicates an invalid chunking, fusion or retrieval
	// configuration. Builds refuse to run with invalid configuration.
	ErrConfigInvalid = errors.New("invalid configuration")

	// ErrIndexNotReady indicates a query arrived before the index was
	// built. Recoverable: build the index first.
	ErrIndexNotReady = errors.New("index not ready")

	// ErrDimensionMismatch indicates an embedding dimensionality differs
	// from the one the dense index was built with. The index must be
	// rebuilt with the current embedding model.
	ErrDimensionMismatch = errors.New("embedding dimension mismatch")

	// ErrEmbeddingFailed indicates the embedding service failed.
	// Propagated to the caller of build/query, never retried here.
	ErrEmbeddingFailed = errors.New("embedding failed")

	// ErrEmptyQuery indicates an empty or whitespace-only query.
	ErrEmptyQuery = errors.New("empty query")

	// ErrLLMUnavailable indicates the LLM service is not configured.
	// Answer composition degrades to printing retrieved context.
	ErrLLMUnavailable = errors.New("LLM service unavailable")
)

// ParameterError reports a missing or malformed parameter for a matched
// structured intent. A matched rule never falls through silently; the
// error names the offending field so the caller can surface it.
type ParameterError struct {
	// Field is the parameter that was missing or malformed.
	Field string

	// Value is the raw value that failed to parse, if any.
	Value string

	// Reason describes what was wrong.
	Reason string
}

// Error implements the error interface.
func (e *ParameterError) Error() string {
	if e.Value != "" {
		return fmt.Sprintf("invalid parameter %q: %s (got %q)", e.Field, e.Reason, e.Value)
	}
	return fmt.Sprintf("invalid parameter %q: %s", e.Field, e.Reason)
}

// IsParameterError reports whether err is a ParameterError.
func IsParameterError(err error) bool {
	var pe *ParameterError
	return errors.As(err, &pe)
}
