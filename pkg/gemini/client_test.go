package gemini

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

func TestGenerateContent(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		wantErr  string
		wantText string
	}{
		{
			name:   "success",
			status: http.StatusOK,
			body: `{
				"candidates": [{
					"content": {"parts": [{"text": "generated text"}]}
				}]
			}`,
			wantText: "generated text",
		},
		{
			name:    "empty_candidates",
			status:  http.StatusOK,
			body:    `{"candidates": []}`,
			wantErr: "empty response",
		},
		{
			name:    "empty_parts",
			status:  http.StatusOK,
			body:    `{"candidates": [{"content": {"parts": []}}]}`,
			wantErr: "empty response",
		},
		{
			name:    "quota_exceeded",
			status:  http.StatusTooManyRequests,
			body:    `{"error": {"message": "quota exceeded"}}`,
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
				assert.Equal(t, "/v1beta/models/gemini-pro:generateContent", r.URL.Path)
				assert.Equal(t, "test-key", r.URL.Query().Get("key"))
				assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

				reqBody, _ := io.ReadAll(r.Body)
				var req GenerateRequest
				require.NoError(t, json.Unmarshal(reqBody, &req))
				require.Len(t, req.Contents, 1)
				require.Len(t, req.Contents[0].Parts, 1)
				assert.Equal(t, "analyze this", req.Contents[0].Parts[0].Text)
				assert.InDelta(t, 0.7, req.GenerationConfig.Temperature, 0.001)
				assert.Equal(t, 40, req.GenerationConfig.TopK)
				assert.InDelta(t, 0.95, req.GenerationConfig.TopP, 0.001)
				assert.Equal(t, 2048, req.GenerationConfig.MaxOutputTokens)

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			client := NewClient("test-key", WithBaseURL(srv.URL))

			text, err := client.GenerateContent(context.Background(), "analyze this")

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantText, text)
		})
	}
}

func TestGenerateContent_CustomModel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1beta/models/gemini-1.5-flash:generateContent", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates": [{"content": {"parts": [{"text": "ok"}]}}]}`))
	}))
	defer srv.Close()

	client := NewClient("test-key", WithBaseURL(srv.URL), WithModel("gemini-1.5-flash"))
	text, err := client.GenerateContent(context.Background(), "hi")
	require.NoError(t, err)
	assert.Equal(t, "ok", text)
}
