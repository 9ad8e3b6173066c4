package normalize_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/opty-search/pkg/normalize"
)

func TestOpenAICompatBackend_Name(t *testing.T) {
	t.Parallel()
	b := normalize.NewOpenAICompatBackend("http://localhost:8000", "mistral")
	assert.Equal(t, "openai_compat", b.Name())
}

func TestOpenAICompatBackend_Generate(t *testing.T) {
	t.Parallel()

	successResponse := `{
		"choices": [{"message": {"role": "assistant", "content": "Caixa de Som"}}],
		"model": "mistral",
		"usage": {"prompt_tokens": 10, "completion_tokens": 3, "total_tokens": 13}
	}`

	tests := []struct {
		name       string
		handler    http.HandlerFunc
		apiKey     string
		wantErr    bool
		wantErrMsg string
		wantResp   string
		wantUsage  int
	}{
		{
			name: "successful generation",
			handler: func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
				assert.Equal(t, "/v1/chat/completions", r.URL.Path)
				w.WriteHeader(http.StatusOK)
				_, _ = w.Write([]byte(successResponse))
			},
			wantResp:  "Caixa de Som",
			wantUsage: 13,
		},
		{
			name: "zero temperature is sent explicitly",
			handler: func(w http.ResponseWriter, r *http.Request) {
				var req map[string]any
				_ = json.NewDecoder(r.Body).Decode(&req)
				temp, ok := req["temperature"]
				assert.True(t, ok)
				assert.InDelta(t, 0.0, temp, 1e-9)
				assert.Len(t, req["messages"], 2)
				w.WriteHeader(http.StatusOK)
				_, _ = w.Write([]byte(successResponse))
			},
			wantResp: "Caixa de Som",
		},
		{
			name: "api key sent as bearer token",
			handler: func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
				w.WriteHeader(http.StatusOK)
				_, _ = w.Write([]byte(successResponse))
			},
			apiKey:   "secret",
			wantResp: "Caixa de Som",
		},
		{
			name: "server error",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusBadGateway)
				_, _ = w.Write([]byte("upstream down"))
			},
			wantErr:    true,
			wantErrMsg: "status 502",
		},
		{
			name: "empty choices",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusOK)
				_, _ = w.Write([]byte(`{"choices": [], "model": "mistral"}`))
			},
			wantErr:    true,
			wantErrMsg: "empty choices",
		},
		{
			name: "invalid json",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusOK)
				_, _ = w.Write([]byte("{not json"))
			},
			wantErr:    true,
			wantErrMsg: "parsing response",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			b := normalize.NewOpenAICompatBackend(srv.URL, "mistral",
				normalize.WithOpenAICompatHTTPClient(srv.Client()),
				normalize.WithOpenAICompatAPIKey(tt.apiKey),
			)

			msgs, err := normalize.BuildMessages("preciso de algo para ouvir música na sala com a família")
			require.NoError(t, err)

			resp, err := b.Generate(context.Background(), normalize.GenerateRequest{Messages: msgs, MaxTokens: 32})
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErrMsg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantResp, resp.Content)
			if tt.wantUsage > 0 {
				assert.Equal(t, tt.wantUsage, resp.Usage.TotalTokens)
			}
		})
	}
}
