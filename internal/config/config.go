package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	LLM LLMConfig `yaml:"llm"`
	RAG RAGConfig `yaml:"rag"`
}

type LLMConfig struct {
	BaseURL        string `yaml:"base_url"`
	Key            string `yaml:"key"`
	EmbeddingModel string `yaml:"embedding_model"`
	InferenceModel string `yaml:"inference_model"`
}

type RAGConfig struct {
	ChunkSize int `yaml:"chunk_size"`
	TopK      int `yaml:"top_k"`
}

const (
	DefaultBaseURL        = "https://api.openai.com/v1"
	DefaultEmbeddingModel = "text-embedding-ada-002"
	DefaultInferenceModel = "gpt-3.5-turbo"
	DefaultChunkSize      = 1000
	DefaultTopK           = 5

	apiKeyEnv = "OPENAI_API_KEY"
)

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	applyDefaults(&cfg)
	return &cfg, nil
}

// Default returns a config with all defaults applied, for running without a
// config file. The API key still comes from the environment.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

func applyDefaults(cfg *Config) {
	if cfg.LLM.BaseURL == "" {
		cfg.LLM.BaseURL = DefaultBaseURL
	}
	if cfg.LLM.EmbeddingModel == "" {
		cfg.LLM.EmbeddingModel = DefaultEmbeddingModel
	}
	if cfg.LLM.InferenceModel == "" {
		cfg.LLM.InferenceModel = DefaultInferenceModel
	}
	if cfg.LLM.Key == "" {
		cfg.LLM.Key = os.Getenv(apiKeyEnv)
	}
	if cfg.RAG.ChunkSize == 0 {
		cfg.RAG.ChunkSize = DefaultChunkSize
	}
	if cfg.RAG.TopK == 0 {
		cfg.RAG.TopK = DefaultTopK
	}
}
