// Package config provides environment-backed configuration for the service.
// All credentials are injected at process start; nothing is embedded in
// source and tokens are never exposed to clients.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Default model identifiers. Each can be overridden via environment.
const (
	DefaultGenerationModel = "gemini-2.5-flash"
	DefaultSentimentModel  = "nlptown/bert-base-multilingual-uncased-sentiment"
	DefaultNERModel        = "Babelscape/wikineural-multilingual-ner"
	DefaultEmbeddingModel  = "sentence-transformers/distiluse-base-multilingual-mean-tokens-v2"

	// DefaultHFBaseURL is the Hugging Face Inference API root.
	DefaultHFBaseURL = "https://api-inference.huggingface.co"

	defaultPort = 8080
)

// Config holds the runtime configuration loaded from the environment.
type Config struct {
	// Credentials
	GeminiAPIKey string // GEMINI_API_KEY, required for generation
	HFAPIToken   string // HF_API_TOKEN, required for remote analysis

	// Endpoints and models
	HFBaseURL       string
	GenerationModel string
	SentimentModel  string
	NERModel        string
	EmbeddingModel  string

	// Server
	Port int
}

// Load reads configuration from the environment, applying defaults for
// everything except credentials.
func Load() (*Config, error) {
	cfg := &Config{
		GeminiAPIKey:    os.Getenv("GEMINI_API_KEY"),
		HFAPIToken:      os.Getenv("HF_API_TOKEN"),
		HFBaseURL:       envOr("HF_BASE_URL", DefaultHFBaseURL),
		GenerationModel: envOr("GENERATION_MODEL", DefaultGenerationModel),
		SentimentModel:  envOr("SENTIMENT_MODEL", DefaultSentimentModel),
		NERModel:        envOr("NER_MODEL", DefaultNERModel),
		EmbeddingModel:  envOr("EMBEDDING_MODEL", DefaultEmbeddingModel),
		Port:            defaultPort,
	}

	if portStr := os.Getenv("PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return nil, fmt.Errorf("config error: invalid PORT %q: %w", portStr, err)
		}
		cfg.Port = port
	}

	return cfg, nil
}

// Validate checks that required credentials are present. The Hugging Face
// token is not required here: analysis degrades to heuristics without it.
func (c *Config) Validate() error {
	if c.GeminiAPIKey == "" {
		return fmt.Errorf("config error: GEMINI_API_KEY is required")
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("config error: port %d out of range", c.Port)
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
