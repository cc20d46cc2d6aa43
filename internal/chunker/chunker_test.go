package chunker

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"document-qa/internal/models"
)

func TestSplitLongPageWithoutNewlines(t *testing.T) {
	page := strings.Repeat("x", 2500)
	chunks := Split([]string{page}, 1000)

	require.Len(t, chunks, 3)
	total := 0
	for i, c := range chunks {
		assert.Equal(t, 1, c.Page)
		assert.Equal(t, i, c.ChunkIndex)
		total += len(c.Text)
	}
	assert.Equal(t, 2500, total)
	assert.Equal(t, "Page 1 - Chunk 0", chunks[0].Label)
	assert.Equal(t, "Page 1 - Chunk 1", chunks[1].Label)
	assert.Equal(t, "Page 1 - Chunk 2", chunks[2].Label)
}

func TestSplitPrefersNewlineBoundary(t *testing.T) {
	page := strings.Repeat("a", 600) + "\n" + strings.Repeat("b", 600)
	chunks := Split([]string{page}, 1000)

	require.Len(t, chunks, 2)
	assert.Equal(t, strings.Repeat("a", 600), chunks[0].Text)
	assert.Equal(t, strings.Repeat("b", 600), chunks[1].Text)
}

func TestSplitNeverExceedsLimit(t *testing.T) {
	pages := []string{
		strings.Repeat("word ", 500),
		strings.Repeat("line\n", 600),
		"short",
	}
	for _, c := range Split(pages, 1000) {
		assert.LessOrEqual(t, len(c.Text), 1000, c.Label)
	}
}

// Concatenating a page's chunks reproduces the page text, losing only the
// newlines chosen as split boundaries.
func TestSplitIsLossless(t *testing.T) {
	page := strings.Repeat("alpha beta gamma delta\n", 200)
	chunks := Split([]string{page}, 1000)
	require.Greater(t, len(chunks), 1)

	var joined strings.Builder
	for i, c := range chunks {
		if i > 0 {
			joined.WriteString("\n")
		}
		joined.WriteString(c.Text)
	}
	// The final chunk keeps the page's trailing newline, so rejoining on
	// the dropped boundaries reproduces the page exactly.
	assert.Equal(t, page, joined.String())
}

func TestSplitLabelsUniquePerDocument(t *testing.T) {
	pages := []string{
		strings.Repeat("one\n", 400),
		"",
		strings.Repeat("two\n", 400),
	}
	chunks := Split(pages, 1000)
	seen := map[string]bool{}
	for _, c := range chunks {
		assert.False(t, seen[c.Label], "duplicate label %s", c.Label)
		seen[c.Label] = true
	}
}

func TestSplitEmptyPagesProduceNoChunks(t *testing.T) {
	assert.Empty(t, Split([]string{"", ""}, 1000))
	assert.Empty(t, Split(nil, 1000))
}

func TestSplitPageNumbersAreOneIndexed(t *testing.T) {
	chunks := Split([]string{"first", "second"}, 1000)
	require.Len(t, chunks, 2)
	assert.Equal(t, models.NewChunk("first", 1, 0), chunks[0])
	assert.Equal(t, models.NewChunk("second", 2, 0), chunks[1])
}

func TestSplitDoesNotCutRunes(t *testing.T) {
	page := strings.Repeat("é", 600) // 2 bytes each
	for _, c := range Split([]string{page}, 1000) {
		assert.True(t, strings.HasPrefix(c.Text, "é"))
		assert.Equal(t, 0, len(c.Text)%2)
	}
}
