// Package gemini is a minimal client for the Google Generative Language API.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rotisserie/eris"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com"
	defaultModel   = "gemini-pro"
)

// Client generates text completions.
type Client interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// GenerateRequest is the request body for models/{model}:generateContent.
type GenerateRequest struct {
	Contents         []Content        `json:"contents"`
	GenerationConfig GenerationConfig `json:"generationConfig"`
}

// Content holds the parts of a single message.
type Content struct {
	Parts []Part `json:"parts"`
}

// Part is one text fragment of a message.
type Part struct {
	Text string `json:"text"`
}

// GenerationConfig holds sampling parameters.
type GenerationConfig struct {
	Temperature     float64 `json:"temperature"`
	TopK            int     `json:"topK"`
	TopP            float64 `json:"topP"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

// GenerateResponse is the response from generateContent.
type GenerateResponse struct {
	Candidates []Candidate `json:"candidates"`
}

// Candidate is a single generated completion.
type Candidate struct {
	Content Content `json:"content"`
}

// Option configures the client.
type Option func(*httpClient)

// WithBaseURL overrides the default API base URL.
func WithBaseURL(url string) Option {
	return func(c *httpClient) {
		c.baseURL = url
	}
}

// WithModel overrides the default model.
func WithModel(model string) Option {
	return func(c *httpClient) {
		c.model = model
	}
}

// WithHTTPClient overrides the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *httpClient) {
		c.http = hc
	}
}

// WithGenerationConfig overrides the default sampling parameters.
func WithGenerationConfig(cfg GenerationConfig) Option {
	return func(c *httpClient) {
		c.genCfg = cfg
	}
}

type httpClient struct {
	apiKey  string
	baseURL string
	model   string
	genCfg  GenerationConfig
	http    *http.Client
}

// NewClient creates a Generative Language API client.
func NewClient(apiKey string, opts ...Option) Client {
	c := &httpClient{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		model:   defaultModel,
		genCfg: GenerationConfig{
			Temperature:     0.7,
			TopK:            40,
			TopP:            0.95,
			MaxOutputTokens: 2048,
		},
		http: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

func (c *httpClient) GenerateContent(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(GenerateRequest{
		Contents:         []Content{{Parts: []Part{{Text: prompt}}}},
		GenerationConfig: c.genCfg,
	})
	if err != nil {
		return "", eris.Wrap(err, "gemini: marshal request")
	}

	// The API authenticates via a key query parameter rather than a header.
	endpoint := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s",
		c.baseURL, c.model, url.QueryEscape(c.apiKey))

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", eris.Wrap(err, "gemini: create request")
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return "", eris.Wrap(err, "gemini: send request")
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", eris.Wrap(err, "gemini: read response")
	}

	if resp.StatusCode != http.StatusOK {
		return "", eris.Errorf("gemini: unexpected status %d: %s", resp.StatusCode, string(respBody))
	}

	var result GenerateResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", eris.Wrap(err, "gemini: unmarshal response")
	}

	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		return "", eris.New("gemini: empty response")
	}

	return result.Candidates[0].Content.Parts[0].Text, nil
}
