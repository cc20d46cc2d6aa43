package session

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"

	"document-qa/internal/answer"
	"document-qa/internal/chunker"
	"document-qa/internal/config"
	"document-qa/internal/embedding"
	"document-qa/internal/extractor"
	"document-qa/internal/helper"
	"document-qa/internal/index"
	"document-qa/internal/llmservice"
	"document-qa/internal/models"
)

// Session owns the state for one interactive document QA session: the
// current document's chunks and similarity index, plus the memo caches that
// avoid redundant service calls. UI events map to Upload and Ask; there is
// no other way to change session state.
//
// A session is bound to one credential and one model configuration, so the
// caches never have to distinguish those. State is replaced wholesale on
// re-upload, never mutated in place.
type Session struct {
	id  string
	cfg *config.Config

	embedder index.Embedder
	llm      answer.ContentGenerator

	doc *document

	extractCache  map[string][]models.Chunk
	retrieveCache map[string][]models.Chunk
	answerCache   map[string]models.Answer
}

// document is the per-upload state, replaced as a unit.
type document struct {
	name   string
	hash   string
	chunks []models.Chunk
	index  *index.Index
}

// New creates an empty session. The embedder and generator may be nil, in
// which case they are built lazily from the config on first use; tests
// inject fakes here.
func New(cfg *config.Config, embedder index.Embedder, llm answer.ContentGenerator) *Session {
	id, _ := helper.GenerateUUID()
	return &Session{
		id:            id,
		cfg:           cfg,
		embedder:      embedder,
		llm:           llm,
		extractCache:  map[string][]models.Chunk{},
		retrieveCache: map[string][]models.Chunk{},
		answerCache:   map[string]models.Answer{},
	}
}

// ID identifies the session in logs.
func (s *Session) ID() string { return s.id }

// HasDocument reports whether an upload has completed successfully.
func (s *Session) HasDocument() bool { return s.doc != nil }

// DocumentName returns the name of the current document, if any.
func (s *Session) DocumentName() string {
	if s.doc == nil {
		return ""
	}
	return s.doc.name
}

// Chunks returns the current document's chunk sequence, if any.
func (s *Session) Chunks() []models.Chunk {
	if s.doc == nil {
		return nil
	}
	return s.doc.chunks
}

// Upload runs extract -> chunk -> index on a named file and replaces the
// session's document state with the result. Extraction and chunking are
// credential-free; a missing credential fails here, at indexing time,
// before any embedding call is attempted. On any error the prior document
// state is left intact.
func (s *Session) Upload(ctx context.Context, filename string, data []byte) error {
	fileType, err := extractor.DetectFileType(filename)
	if err != nil {
		return err
	}

	hash := helper.HashBytes(data)
	chunks, ok := s.extractCache[hash]
	if !ok {
		pages, err := extractor.Extract(data, fileType)
		if err != nil {
			return err
		}
		chunks = chunker.Split(pages, s.cfg.RAG.ChunkSize)
		s.extractCache[hash] = chunks
	}
	if len(chunks) == 0 {
		return models.ErrEmptyDocument
	}

	embedder, err := s.ensureEmbedder()
	if err != nil {
		return err
	}

	ix, err := index.Build(ctx, embedder, chunks)
	if err != nil {
		return err
	}

	log.Info().Str("session", s.id).Str("file", filename).
		Int("pages_chunked", chunks[len(chunks)-1].Page).
		Int("chunks", len(chunks)).Msg("Document indexed")

	s.doc = &document{name: filename, hash: hash, chunks: chunks, index: ix}
	// Retrieval and answer memo entries are scoped to a document hash, but a
	// re-upload still starts the caches fresh: memoization lives for one
	// document session only.
	s.retrieveCache = map[string][]models.Chunk{}
	s.answerCache = map[string]models.Answer{}
	return nil
}

// Ask answers a question about the current document: retrieve the top-K
// chunks, then ask the model to answer strictly from them. Input validation
// happens before any service call; service errors propagate unmodified.
func (s *Session) Ask(ctx context.Context, query string) (*models.QueryResult, error) {
	if strings.TrimSpace(query) == "" {
		return nil, models.ErrEmptyQuery
	}
	if s.doc == nil {
		return nil, models.ErrNoDocument
	}

	retrieveKey := s.doc.hash + "|" + s.cfg.LLM.EmbeddingModel + "|" + query
	retrieved, ok := s.retrieveCache[retrieveKey]
	if !ok {
		var err error
		retrieved, err = s.doc.index.Search(ctx, query, s.cfg.RAG.TopK)
		if err != nil {
			return nil, err
		}
		s.retrieveCache[retrieveKey] = retrieved
	}

	llm, err := s.ensureLLM()
	if err != nil {
		return nil, err
	}

	answerKey := retrieveKey + "|" + s.cfg.LLM.InferenceModel
	ans, ok := s.answerCache[answerKey]
	if !ok {
		ans, err = answer.Ask(ctx, llm, s.cfg.LLM.InferenceModel, query, retrieved)
		if err != nil {
			return nil, err
		}
		s.answerCache[answerKey] = ans
	}

	return &models.QueryResult{Answer: ans, RetrievedChunks: retrieved}, nil
}

func (s *Session) ensureEmbedder() (index.Embedder, error) {
	if s.embedder != nil {
		return s.embedder, nil
	}
	embedder, err := embedding.NewEmbedder(&s.cfg.LLM)
	if err != nil {
		return nil, err
	}
	s.embedder = embedder
	return embedder, nil
}

func (s *Session) ensureLLM() (answer.ContentGenerator, error) {
	if s.llm != nil {
		return s.llm, nil
	}
	llm, err := llmservice.NewClient(&s.cfg.LLM)
	if err != nil {
		return nil, err
	}
	s.llm = llm
	return llm, nil
}
