// Package fullenrich is a minimal client for the FullEnrich contact
// enrichment API.
package fullenrich

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/rotisserie/eris"
)

const defaultBaseURL = "https://api.fullenrich.com"

// Client performs contact enrichment lookups.
type Client interface {
	Enrich(ctx context.Context, email string) (*EnrichResponse, error)
}

// EnrichRequest is the request body for POST /v1/enrich.
type EnrichRequest struct {
	Email string `json:"email"`
}

// EnrichResponse is the enrichment result. Every field is optional; callers
// must apply their own defaults for missing ones.
type EnrichResponse struct {
	Email        string   `json:"email"`
	FullName     string   `json:"fullName,omitempty"`
	FirstName    string   `json:"firstName,omitempty"`
	LastName     string   `json:"lastName,omitempty"`
	Company      string   `json:"company,omitempty"`
	Title        string   `json:"title,omitempty"`
	Seniority    string   `json:"seniority,omitempty"`
	CompanySize  string   `json:"companySize,omitempty"`
	Industry     string   `json:"industry,omitempty"`
	FundingStage string   `json:"fundingStage,omitempty"`
	Technologies []string `json:"technologies,omitempty"`
	LinkedInURL  string   `json:"linkedinUrl,omitempty"`
}

// Option configures the client.
type Option func(*httpClient)

// WithBaseURL overrides the default API base URL.
func WithBaseURL(url string) Option {
	return func(c *httpClient) {
		c.baseURL = url
	}
}

// WithHTTPClient overrides the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *httpClient) {
		c.http = hc
	}
}

type httpClient struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

// NewClient creates a FullEnrich API client.
func NewClient(apiKey string, opts ...Option) Client {
	c := &httpClient{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		http: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

func (c *httpClient) Enrich(ctx context.Context, email string) (*EnrichResponse, error) {
	body, err := json.Marshal(EnrichRequest{Email: email})
	if err != nil {
		return nil, eris.Wrap(err, "fullenrich: marshal request")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/enrich", bytes.NewReader(body))
	if err != nil {
		return nil, eris.Wrap(err, "fullenrich: create request")
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, eris.Wrap(err, "fullenrich: send request")
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, eris.Wrap(err, "fullenrich: read response")
	}

	if resp.StatusCode != http.StatusOK {
		return nil, eris.Errorf("fullenrich: unexpected status %d: %s", resp.StatusCode, string(respBody))
	}

	var result EnrichResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, eris.Wrap(err, "fullenrich: unmarshal response")
	}

	return &result, nil
}
