package generation

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/nhatmailaanh/bat-dong-san-seo-pro/internal/config"
	"github.com/nhatmailaanh/bat-dong-san-seo-pro/internal/llm"
	"github.com/nhatmailaanh/bat-dong-san-seo-pro/internal/types"
	"github.com/nhatmailaanh/bat-dong-san-seo-pro/schemas"
)

// Client generates structured listing content from a property record.
type Client struct {
	llm llm.Client
}

// NewClient creates a generation client on top of an LLM client.
func NewClient(llmClient llm.Client) *Client {
	return &Client{llm: llmClient}
}

// NewGeminiClient creates a generation client backed by Gemini using the
// configured credential and model.
func NewGeminiClient(ctx context.Context, cfg *config.Config) (*Client, error) {
	if cfg.GeminiAPIKey == "" {
		return nil, &ConfigError{Message: "GEMINI_API_KEY is not configured"}
	}

	llmClient, err := llm.NewGeminiClient(ctx, cfg.GeminiAPIKey, cfg.GenerationModel)
	if err != nil {
		return nil, &APICallError{Message: "failed to create Gemini client", Cause: err}
	}

	return NewClient(llmClient), nil
}

// Close releases the underlying LLM client.
func (c *Client) Close() error {
	return c.llm.Close()
}

// Generate produces listing content for the given property record. The model
// reply is fence-stripped, parsed and validated against the declared shape
// before being returned; downstream consumers can rely on every required
// field being present.
func (c *Client) Generate(ctx context.Context, data *types.PropertyData) (*types.GeneratedContent, error) {
	prompt := BuildPrompt(data)

	raw, err := c.llm.GenerateJSON(ctx, prompt, ResponseSchema())
	if err != nil {
		return nil, &APICallError{Message: "failed to generate listing content", Cause: err}
	}

	raw = llm.CleanJSONBlock(raw)
	if strings.TrimSpace(raw) == "" {
		return nil, &ParseError{Message: "empty response from model"}
	}

	var content types.GeneratedContent
	if err := json.Unmarshal([]byte(raw), &content); err != nil {
		return nil, &ParseError{Message: "failed to parse JSON response", Cause: err}
	}

	if err := schemas.Validate(schemas.GeneratedContentSchema, []byte(raw)); err != nil {
		return nil, err
	}

	return &content, nil
}
