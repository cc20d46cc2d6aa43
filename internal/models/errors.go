package models

import "errors"

// Errors surfaced to the caller. Input validation errors are raised before
// the pipeline runs; the authentication error is raised by the indexer or
// answerer before any service call is attempted. Service errors from the
// embedding or LLM calls are wrapped and propagated as-is, without retry.
var (
	// ErrUnsupportedFileType indicates the uploaded file extension is not .pdf or .txt
	ErrUnsupportedFileType = errors.New("unsupported file type")

	// ErrInvalidEncoding indicates a text upload that is not valid UTF-8
	ErrInvalidEncoding = errors.New("file is not valid UTF-8 text")

	// ErrEmptyDocument indicates the upload produced no indexable text
	ErrEmptyDocument = errors.New("document contains no text")

	// ErrNoDocument indicates a question was submitted before any upload
	ErrNoDocument = errors.New("no document uploaded")

	// ErrEmptyQuery indicates an empty question submission
	ErrEmptyQuery = errors.New("query is empty")

	// ErrMissingAPIKey indicates no API credential is configured
	ErrMissingAPIKey = errors.New("no API key configured")
)
