package extractor

import (
	"bytes"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"

	"document-qa/internal/models"
)

// FileType is the declared type of an upload.
type FileType string

const (
	FileTypePDF FileType = "pdf"
	FileTypeTXT FileType = "txt"
)

var (
	hyphenBreakRe   = regexp.MustCompile(models.HyphenBreakRegex)
	lowercaseWrapRe = regexp.MustCompile(models.LowercaseWrapRegex)
	blankLineRunRe  = regexp.MustCompile(models.BlankLineRunRegex)
)

// DetectFileType maps a file name to its declared type. Anything other than
// .pdf or .txt is rejected before the pipeline runs.
func DetectFileType(filename string) (FileType, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".pdf":
		return FileTypePDF, nil
	case ".txt":
		return FileTypeTXT, nil
	default:
		return "", fmt.Errorf("%w: %q", models.ErrUnsupportedFileType, ext)
	}
}

// Extract converts an uploaded file into an ordered sequence of page strings:
// one entry per physical page for PDFs, exactly one entry for text files.
func Extract(data []byte, fileType FileType) ([]string, error) {
	switch fileType {
	case FileTypePDF:
		return extractPDF(data)
	case FileTypeTXT:
		return extractTXT(data)
	default:
		return nil, fmt.Errorf("%w: %q", models.ErrUnsupportedFileType, fileType)
	}
}

func extractPDF(data []byte) ([]string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("reading pdf: %w", err)
	}

	var pages []string
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			return nil, fmt.Errorf("extracting page %d: %w", i, err)
		}
		pages = append(pages, cleanPageText(pageText))
	}
	return pages, nil
}

// cleanPageText rewrites two extraction artifacts: hyphenated words split
// across a line break are rejoined, and a line break immediately followed by
// a lowercase letter is treated as a mid-sentence wrap and replaced with a
// space.
func cleanPageText(text string) string {
	text = hyphenBreakRe.ReplaceAllString(text, "${1}${2}")
	text = lowercaseWrapRe.ReplaceAllString(text, " ${1}")
	return text
}

func extractTXT(data []byte) ([]string, error) {
	if !utf8.Valid(data) {
		return nil, models.ErrInvalidEncoding
	}
	// Collapse runs of blank lines into a single blank line.
	text := blankLineRunRe.ReplaceAllString(string(data), "\n\n")
	return []string{text}, nil
}
