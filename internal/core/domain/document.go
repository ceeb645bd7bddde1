package domain

// Document is the uniform in-memory representation of a loaded corpus file.
// It is immutable once produced by the loader.
type Document struct {
	// Source is the path of the file this document was loaded from.
	Source string

	// Content is the full UTF-8 text of the file.
	Content string
}

// Chunk is a bounded substring of a source document, the unit of
// indexing and retrieval. Chunks are immutable once produced and are
// persisted 1:1 with an embedding vector in the vector store.
type Chunk struct {
	// ID is the unique identifier assigned when the chunk is stored.
	ID string

	// Source is the path of the originating document.
	Source string

	// Content is the chunk text, a substring of the source document.
	Content string

	// Position is the ordinal position within the source document.
	Position int

	// StartIndex is the character offset of Content within the
	// source document, kept for traceability.
	StartIndex int

	// Embedding is the vector representation of Content. Vectors are
	// only comparable when produced by the same embedding model.
	Embedding []float32
}

// SearchResult is one retrieval hit: a chunk plus its cosine
// similarity to the query. Results are ephemeral and regenerated on
// every query.
type SearchResult struct {
	Chunk Chunk

	// Score is the cosine similarity to the query, higher is closer.
	Score float64
}

// IndexStats summarises the persisted collection.
type IndexStats struct {
	// Sources is the sorted list of distinct source file names.
	Sources []string

	// ChunkCount is the total number of stored chunks.
	ChunkCount int
}

// IngestStats reports the outcome of one ingestion run.
type IngestStats struct {
	Documents int
	Chunks    int
}
