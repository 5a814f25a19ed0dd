// Package domain defines the core business entities for SwimForge.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Document: A source text loaded from the knowledge corpus
//   - Chunk: The unit of indexing and retrieval
//   - Candidate / FusedResult: Per-query retrieval intermediates
//   - RouterDecision: The classified intent of a user query
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
