// Package domain defines the core business entities for askdoc.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Document: A corpus file loaded into memory
//   - Chunk: A bounded, indexable substring of a document
//   - SearchResult: A retrieval hit with its similarity score
//   - Turn / History: The conversation log threaded into generation
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
