package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"chatmint-studio/config"
	"chatmint-studio/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(config.GeminiConfig{
		APIKey:          "test-key",
		BaseURL:         srv.URL + "/v1beta/",
		Model:           "gemini-2.5-flash",
		Temperature:     0.8,
		MaxOutputTokens: 220,
	}, srv.Client(), zerolog.Nop())
}

func TestGenerate(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1beta/models/gemini-2.5-flash:generateContent", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))

		var req generateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, SystemInstruction, req.SystemInstruction.Parts[0].Text)
		require.Len(t, req.Contents, 1)
		assert.Equal(t, "user", req.Contents[0].Role)
		assert.Equal(t, "an idea about koi", req.Contents[0].Parts[0].Text)
		assert.Equal(t, 0.8, req.GenerationConfig.Temperature)
		assert.Equal(t, 220, req.GenerationConfig.MaxOutputTokens)

		_, _ = w.Write([]byte(`{"candidates":[{"content":{"role":"model","parts":[{"text":"A koi that glows "},{"text":"at night.\n"}]},"finishReason":"STOP"}]}`))
	})

	reply, err := c.Generate(context.Background(), "an idea about koi")
	require.NoError(t, err)
	assert.Equal(t, "A koi that glows at night.", reply)
}

func TestGenerate_Errors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		errText string
		errCode string
	}{
		{
			name:    "invalid key",
			status:  http.StatusBadRequest,
			body:    `{"error":{"code":400,"message":"API key not valid.","status":"INVALID_ARGUMENT","details":[{"reason":"API_KEY_INVALID"}]}}`,
			errText: "API key not valid. (INVALID_ARGUMENT, API_KEY_INVALID)",
		},
		{
			name:    "quota",
			status:  http.StatusTooManyRequests,
			body:    `{"error":{"code":429,"message":"You exceeded your current quota.","status":"RESOURCE_EXHAUSTED"}}`,
			errText: "quota",
			errCode: "RATE_002",
		},
		{name: "quota without body", status: http.StatusTooManyRequests, errText: "quota", errCode: "RATE_002"},
		{name: "unauthenticated", status: http.StatusUnauthorized, errText: "Gemini authentication failed", errCode: "COL_001"},
		{name: "forbidden", status: http.StatusForbidden, body: `{"error":{"message":"denied","status":"PERMISSION_DENIED"}}`, errText: "gemini.api_key", errCode: "COL_001"},
		{name: "plain failure", status: http.StatusBadGateway, body: "<html>", errText: "status 502"},
		{name: "no candidates", status: http.StatusOK, body: `{"candidates":[]}`, errText: "no candidates"},
		{name: "blocked", status: http.StatusOK, body: `{"promptFeedback":{"blockReason":"SAFETY"}}`, errText: "prompt blocked: SAFETY"},
		{name: "empty text", status: http.StatusOK, body: `{"candidates":[{"content":{"parts":[{"text":"  "}]},"finishReason":"MAX_TOKENS"}]}`, errText: "MAX_TOKENS"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			_, err := c.Generate(context.Background(), "hi")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errText)
			assert.Equal(t, tt.errCode, apperror.Code(err))
		})
	}
}

func TestGenerate_MissingKey(t *testing.T) {
	c := NewClient(config.GeminiConfig{BaseURL: "http://gemini.invalid"}, nil, zerolog.Nop())

	_, err := c.Generate(context.Background(), "hi")
	assert.Equal(t, "COL_001", apperror.Code(err))
	assert.ErrorContains(t, err, "not configured")
}

type failingClient struct{}

func (failingClient) Do(req *http.Request) (*http.Response, error) {
	return nil, &url.Error{Op: "Post", URL: req.URL.String(), Err: errors.New("dial tcp: connection refused")}
}

func TestGenerate_TransportErrorHidesKey(t *testing.T) {
	c := NewClient(config.GeminiConfig{APIKey: "secret-key", BaseURL: "http://gemini.invalid", Model: "m"}, failingClient{}, zerolog.Nop())

	_, err := c.Generate(context.Background(), "hi")
	require.Error(t, err)
	assert.NotContains(t, err.Error(), "secret-key")
	assert.Contains(t, err.Error(), "connection refused")
}
