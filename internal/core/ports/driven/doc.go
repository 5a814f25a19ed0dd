// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - DocumentSource: Loads the corpus from disk
//   - ChunkStore: Chunk and document persistence
//   - SparseIndex: Lexical (BM25) search
//   - DenseIndex: Embedding-vector search
//   - EmbeddingService: Generates vector embeddings
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
// These can be nil - the pipeline degrades gracefully:
//
//   - Reranker: Second-pass relevance scoring. Unavailability is never an
//     error; the fused order passes through unchanged.
//   - LLMService: Answer composition. Without it, the ranked context is
//     returned as-is.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or connector package
package driven
