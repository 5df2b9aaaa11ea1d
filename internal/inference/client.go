package inference

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// Config identifies the inference endpoint and the models each analyzer
// talks to.
type Config struct {
	BaseURL        string
	Token          string
	SentimentModel string
	NERModel       string
	EmbeddingModel string
}

// Client calls Hugging Face Inference API models. The zero value is not
// usable; construct with NewClient.
type Client struct {
	cfg        Config
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the HTTP client used for inference calls.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// NewClient creates an inference client. The token may be empty; calls will
// then fail and analyzers fall back to heuristics.
func NewClient(cfg Config, opts ...Option) *Client {
	c := &Client{
		cfg:        cfg,
		httpClient: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Query posts the input text to the named model and returns the raw response
// body. Non-2xx statuses are errors.
func (c *Client) Query(ctx context.Context, model, input string) ([]byte, error) {
	body, err := json.Marshal(QueryRequest{Inputs: input})
	if err != nil {
		return nil, fmt.Errorf("failed to encode inference request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s", c.cfg.BaseURL, model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build inference request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.Token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("inference call failed (%s): %w", model, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("inference call failed (%s): status %s", model, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read inference response (%s): %w", model, err)
	}

	return data, nil
}

// ClassifySentiment runs the sentiment model and returns the class labels
// for the input text. The API nests the labels one level deep.
func (c *Client) ClassifySentiment(ctx context.Context, text string) ([]Classification, error) {
	data, err := c.Query(ctx, c.cfg.SentimentModel, text)
	if err != nil {
		return nil, err
	}

	var nested [][]Classification
	if err := json.Unmarshal(data, &nested); err != nil {
		return nil, fmt.Errorf("failed to decode sentiment response: %w", err)
	}
	if len(nested) == 0 || len(nested[0]) == 0 {
		return nil, fmt.Errorf("empty sentiment response")
	}

	return nested[0], nil
}

// ExtractEntities runs the named-entity-recognition model on the input text.
func (c *Client) ExtractEntities(ctx context.Context, text string) ([]Entity, error) {
	data, err := c.Query(ctx, c.cfg.NERModel, text)
	if err != nil {
		return nil, err
	}

	var entities []Entity
	if err := json.Unmarshal(data, &entities); err != nil {
		return nil, fmt.Errorf("failed to decode NER response: %w", err)
	}

	return entities, nil
}

// Ping issues a throwaway embedding call to confirm the inference service is
// reachable. The response body is discarded.
func (c *Client) Ping(ctx context.Context, sample string) error {
	_, err := c.Query(ctx, c.cfg.EmbeddingModel, sample)
	return err
}
