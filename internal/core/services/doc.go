// Package services implements the driving ports on top of the driven
// ports: ingestion (load, chunk, embed, store), retrieval (query
// embedding plus nearest-neighbour lookup) and the grounded answer
// pipeline in its stateless and conversational variants.
//
// Services hold no per-call mutable state. A service constructed once
// at process start is safe for concurrent read-only use as long as the
// adapters behind it tolerate concurrent reads.
package services
