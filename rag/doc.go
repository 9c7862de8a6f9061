// Package rag splits parsed markdown documents into chunks for retrieval
// and embedding pipelines.
//
// # Chunking
//
// The [Chunker] cuts a [model.Document] at its headings. Each section
// becomes one chunk holding the heading and the blocks that follow it, up to
// the next heading of any level:
//
//	chunker := rag.NewChunker()
//	collection := chunker.Chunk(doc)
//
// Sections longer than [ChunkerConfig].MaxWords are split between blocks.
// Blocks themselves are never split, so tables, lists and code blocks stay
// intact. The chunk text is canonical markdown.
//
// # Chunk Metadata
//
// Each [Chunk] carries the path of headings above it, the heading level, the
// block range it covers, the kinds of blocks it holds and its size in
// characters, words and estimated tokens.
//
// # Export Formats
//
// A [ChunkCollection] can be written as JSON Lines, a JSON array or CSV:
//
//	err := collection.Export(w, rag.ExportFormatJSONL)
package rag
