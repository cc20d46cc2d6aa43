package chunker

import (
	"strings"
	"unicode/utf8"

	"document-qa/internal/models"
)

const DefaultChunkSize = 1000

// Split converts an ordered page sequence into a flat ordered chunk sequence.
// Each page is split into chunks of at most chunkSize bytes with no overlap,
// breaking at the last newline at or before the limit when one exists and at
// the limit otherwise. Concatenating a page's chunk texts in order reproduces
// the page text minus the newlines chosen as split boundaries. Empty pages
// produce no chunks.
func Split(pages []string, chunkSize int) []models.Chunk {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}

	var chunks []models.Chunk
	for pageIdx, page := range pages {
		for i, text := range splitPage(page, chunkSize) {
			chunks = append(chunks, models.NewChunk(text, pageIdx+1, i))
		}
	}
	return chunks
}

func splitPage(text string, chunkSize int) []string {
	var parts []string
	for len(text) > 0 {
		if len(text) <= chunkSize {
			if text != "" {
				parts = append(parts, text)
			}
			break
		}

		// Prefer the last newline at or before the limit; the newline itself
		// is consumed as the boundary.
		window := chunkSize + 1
		if window > len(text) {
			window = len(text)
		}
		if cut := strings.LastIndexByte(text[:window], '\n'); cut >= 0 {
			if cut > 0 {
				parts = append(parts, text[:cut])
			}
			text = text[cut+1:]
			continue
		}

		// Hard split at the limit, backing up so a multi-byte rune is never
		// cut in half.
		cut := chunkSize
		for cut > 0 && !utf8.RuneStart(text[cut]) {
			cut--
		}
		if cut == 0 {
			cut = chunkSize
		}
		parts = append(parts, text[:cut])
		text = text[cut:]
	}
	return parts
}
