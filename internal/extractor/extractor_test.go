package extractor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"document-qa/internal/models"
)

func TestDetectFileType(t *testing.T) {
	tests := []struct {
		filename string
		want     FileType
		wantErr  error
	}{
		{"paper.pdf", FileTypePDF, nil},
		{"notes.txt", FileTypeTXT, nil},
		{"REPORT.PDF", FileTypePDF, nil},
		{"slides.pptx", "", models.ErrUnsupportedFileType},
		{"archive.tar.gz", "", models.ErrUnsupportedFileType},
		{"noextension", "", models.ErrUnsupportedFileType},
	}
	for _, tt := range tests {
		got, err := DetectFileType(tt.filename)
		if tt.wantErr != nil {
			assert.ErrorIs(t, err, tt.wantErr, tt.filename)
			continue
		}
		require.NoError(t, err, tt.filename)
		assert.Equal(t, tt.want, got, tt.filename)
	}
}

func TestExtractTXTCollapsesBlankLines(t *testing.T) {
	pages, err := Extract([]byte("Hello.\n\n\n\nWorld."), FileTypeTXT)
	require.NoError(t, err)
	require.Len(t, pages, 1)
	assert.Equal(t, "Hello.\n\nWorld.", pages[0])
}

func TestExtractTXTCollapsesWhitespaceOnlyLines(t *testing.T) {
	pages, err := Extract([]byte("a\n \t \nb"), FileTypeTXT)
	require.NoError(t, err)
	assert.Equal(t, "a\n\nb", pages[0])
}

func TestExtractTXTInvalidEncoding(t *testing.T) {
	_, err := Extract([]byte{0xff, 0xfe, 0xfd}, FileTypeTXT)
	assert.ErrorIs(t, err, models.ErrInvalidEncoding)
}

func TestCleanPageTextJoinsHyphenBreaks(t *testing.T) {
	assert.Equal(t, "automobile industry", cleanPageText("auto-\nmobile industry"))
}

func TestCleanPageTextJoinsMidSentenceWraps(t *testing.T) {
	// A newline before a lowercase letter is a wrapped line, not a
	// paragraph break.
	assert.Equal(t, "the quick fox", cleanPageText("the quick\nfox"))
	// A newline before anything else is left alone.
	assert.Equal(t, "End of paragraph.\nNext paragraph", cleanPageText("End of paragraph.\nNext paragraph"))
}

func TestCleanPageTextHyphenBeforeWrap(t *testing.T) {
	// The hyphen rewrite must run first, or the wrap rewrite would turn
	// "auto-\nmobile" into "auto- mobile".
	assert.Equal(t, "automobile\nAnd then", cleanPageText("auto-\nmobile\nAnd then"))
}
