package fullenrich

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnrich(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantErr     string
		wantCompany string
	}{
		{
			name:   "success",
			status: http.StatusOK,
			body: `{
				"email": "jane.doe@acme.com",
				"fullName": "Jane Doe",
				"company": "Acme Corp",
				"title": "VP Sales",
				"seniority": "VP",
				"companySize": "201-1000",
				"industry": "Technology",
				"fundingStage": "Series B",
				"technologies": ["Salesforce", "HubSpot"],
				"linkedinUrl": "https://linkedin.com/in/jane-doe"
			}`,
			wantCompany: "Acme Corp",
		},
		{
			name:        "partial_response",
			status:      http.StatusOK,
			body:        `{"email": "jane.doe@acme.com", "company": "Acme Corp"}`,
			wantCompany: "Acme Corp",
		},
		{
			name:    "unauthorized",
			status:  http.StatusUnauthorized,
			body:    `{"error": "invalid api key"}`,
			wantErr: "unexpected status 401",
		},
		{
			name:    "rate_limit",
			status:  http.StatusTooManyRequests,
			body:    `{"error": "rate limit exceeded"}`,
			wantErr: "unexpected status 429",
		},
		{
			name:    "malformed_response",
			status:  http.StatusOK,
			body:    `{invalid json`,
			wantErr: "unmarshal response",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "/v1/enrich", r.URL.Path)
				assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
				assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

				reqBody, _ := io.ReadAll(r.Body)
				var req EnrichRequest
				require.NoError(t, json.Unmarshal(reqBody, &req))
				assert.Equal(t, "jane.doe@acme.com", req.Email)

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			client := NewClient("test-key", WithBaseURL(srv.URL))

			resp, err := client.Enrich(context.Background(), "jane.doe@acme.com")

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				assert.Nil(t, resp)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantCompany, resp.Company)
		})
	}
}

func TestEnrich_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // force connection refused

	client := NewClient("test-key", WithBaseURL(srv.URL))
	_, err := client.Enrich(context.Background(), "a@b.com")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "send request")
}
