package models

import "fmt"

// Chunk is a bounded span of document text with its position metadata.
// Immutable once created by the chunker.
type Chunk struct {
	Text       string
	Page       int // 1-indexed source page
	ChunkIndex int // 0-indexed position within the page
	Label      string
}

// NewChunk builds a chunk and derives its citation label from the
// page/index pair.
func NewChunk(text string, page, chunkIndex int) Chunk {
	return Chunk{
		Text:       text,
		Page:       page,
		ChunkIndex: chunkIndex,
		Label:      fmt.Sprintf("Page %d - Chunk %d", page, chunkIndex),
	}
}

// Answer is the parsed model response: the answer body with the trailing
// citation block stripped, plus the citation labels the model claims it used.
type Answer struct {
	Body      string
	Citations []string
}

// QueryResult is what one question submission returns to the caller.
type QueryResult struct {
	Answer          Answer
	RetrievedChunks []Chunk
}
