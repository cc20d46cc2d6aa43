package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
llm:
  base_url: http://localhost:11434/v1
  key: test-key
  embedding_model: nomic-embed-text
  inference_model: llama3
rag:
  chunk_size: 500
  top_k: 3
`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:11434/v1", cfg.LLM.BaseURL)
	assert.Equal(t, "test-key", cfg.LLM.Key)
	assert.Equal(t, "nomic-embed-text", cfg.LLM.EmbeddingModel)
	assert.Equal(t, "llama3", cfg.LLM.InferenceModel)
	assert.Equal(t, 500, cfg.RAG.ChunkSize)
	assert.Equal(t, 3, cfg.RAG.TopK)
}

func TestLoadConfigAppliesDefaults(t *testing.T) {
	path := writeConfig(t, "llm:\n  key: k\n")
	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, DefaultBaseURL, cfg.LLM.BaseURL)
	assert.Equal(t, DefaultEmbeddingModel, cfg.LLM.EmbeddingModel)
	assert.Equal(t, DefaultInferenceModel, cfg.LLM.InferenceModel)
	assert.Equal(t, DefaultChunkSize, cfg.RAG.ChunkSize)
	assert.Equal(t, DefaultTopK, cfg.RAG.TopK)
}

func TestKeyFallsBackToEnv(t *testing.T) {
	t.Setenv(apiKeyEnv, "env-key")
	cfg := Default()
	assert.Equal(t, "env-key", cfg.LLM.Key)
}

func TestConfigKeyWinsOverEnv(t *testing.T) {
	t.Setenv(apiKeyEnv, "env-key")
	path := writeConfig(t, "llm:\n  key: file-key\n")
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "file-key", cfg.LLM.Key)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.True(t, os.IsNotExist(err))
}
