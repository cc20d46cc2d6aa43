package index

import (
	"context"
	"fmt"
	"runtime"
	"sort"
	"strconv"

	"github.com/philippgille/chromem-go"
	"github.com/rs/zerolog/log"

	"document-qa/internal/models"
)

// Embedder converts text into an embedding vector. Both the document chunks
// and the query must go through the same embedder, or similarity scores are
// meaningless.
type Embedder interface {
	EmbedQuery(ctx context.Context, text string) ([]float32, error)
}

const collectionName = "document"

// Index is the similarity index over one document's chunks. It is built
// wholesale per upload and never mutated afterwards.
type Index struct {
	collection *chromem.Collection
	chunks     []models.Chunk
	embedder   Embedder
}

// Build embeds every chunk and loads the vectors into a fresh in-memory
// collection. Chunk order is preserved via zero-padded document IDs so that
// similarity ties can be broken by original position.
func Build(ctx context.Context, embedder Embedder, chunks []models.Chunk) (*Index, error) {
	if len(chunks) == 0 {
		return nil, models.ErrEmptyDocument
	}

	db := chromem.NewDB()
	collection, err := db.CreateCollection(collectionName, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("creating collection: %w", err)
	}

	docs := make([]chromem.Document, len(chunks))
	for i, chunk := range chunks {
		vector, err := embedder.EmbedQuery(ctx, chunk.Text)
		if err != nil {
			return nil, fmt.Errorf("embedding %q: %w", chunk.Label, err)
		}
		docs[i] = chromem.Document{
			ID:      fmt.Sprintf("%06d", i),
			Content: chunk.Text,
			Metadata: map[string]string{
				"page":  strconv.Itoa(chunk.Page),
				"chunk": strconv.Itoa(chunk.ChunkIndex),
				"label": chunk.Label,
			},
			Embedding: vector,
		}
	}

	if err := collection.AddDocuments(ctx, docs, runtime.NumCPU()); err != nil {
		return nil, fmt.Errorf("adding documents: %w", err)
	}

	log.Debug().Int("chunks", len(chunks)).Msg("Built similarity index")
	return &Index{collection: collection, chunks: chunks, embedder: embedder}, nil
}

// Search embeds the query and returns the top min(len(chunks), k) chunks by
// descending similarity, ties broken by original chunk order.
func (ix *Index) Search(ctx context.Context, query string, k int) ([]models.Chunk, error) {
	vector, err := ix.embedder.EmbedQuery(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("embedding query: %w", err)
	}

	if k > len(ix.chunks) {
		k = len(ix.chunks)
	}
	results, err := ix.collection.QueryEmbedding(ctx, vector, k, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("querying index: %w", err)
	}

	// chromem returns results by descending similarity; re-sort stably so
	// equal similarities fall back to original chunk order (the IDs sort
	// lexically in insertion order).
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Similarity != results[j].Similarity {
			return results[i].Similarity > results[j].Similarity
		}
		return results[i].ID < results[j].ID
	})

	chunks := make([]models.Chunk, 0, len(results))
	for _, res := range results {
		pos, err := strconv.Atoi(res.ID)
		if err != nil || pos < 0 || pos >= len(ix.chunks) {
			return nil, fmt.Errorf("unexpected result id %q", res.ID)
		}
		chunks = append(chunks, ix.chunks[pos])
	}
	return chunks, nil
}

// Size reports the number of chunks in the index.
func (ix *Index) Size() int {
	return len(ix.chunks)
}
