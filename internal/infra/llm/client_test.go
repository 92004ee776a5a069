package llm

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/gentle-app/gentle-api/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatCompletion(t *testing.T) {
	var gotReq chatRequest
	var gotHeaders http.Header
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/chat/completions", r.URL.Path)
		gotHeaders = r.Header.Clone()
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, sonic.Unmarshal(body, &gotReq))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"hello there"}}]}`))
	}))
	defer srv.Close()

	c := NewClient(config.OpenAICfg{
		APIKey:    "sk-proj-abc",
		OrgID:     "org-1",
		ProjectID: "proj-1",
		BaseURL:   srv.URL,
	})

	out, err := c.ChatCompletion(context.Background(), "gpt-4o-mini", "be brief", "say hi", 42)
	require.NoError(t, err)
	assert.Equal(t, "hello there", out)

	assert.Equal(t, "Bearer sk-proj-abc", gotHeaders.Get("Authorization"))
	assert.Equal(t, "org-1", gotHeaders.Get("OpenAI-Organization"))
	assert.Equal(t, "proj-1", gotHeaders.Get("OpenAI-Project"))

	assert.Equal(t, "gpt-4o-mini", gotReq.Model)
	require.Len(t, gotReq.Messages, 2)
	assert.Equal(t, "system", gotReq.Messages[0].Role)
	assert.Equal(t, "be brief", gotReq.Messages[0].Content)
	assert.Equal(t, "user", gotReq.Messages[1].Role)
	assert.Equal(t, 42, gotReq.MaxCompletionTokens)
}

func TestChatCompletionAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"message":"rate limit reached","type":"rate_limit_error"}}`))
	}))
	defer srv.Close()

	c := NewClient(config.OpenAICfg{APIKey: "sk-abc", BaseURL: srv.URL})

	_, err := c.ChatCompletion(context.Background(), "gpt-4o-mini", "s", "u", 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate limit reached")
}

func TestChatCompletionNoChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	c := NewClient(config.OpenAICfg{APIKey: "sk-abc", BaseURL: srv.URL})

	_, err := c.ChatCompletion(context.Background(), "gpt-4o-mini", "s", "u", 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no choices")
}

func TestNewClientDefaultTimeout(t *testing.T) {
	c := NewClient(config.OpenAICfg{APIKey: "sk-abc"})
	assert.Greater(t, int64(c.HTTPClient.Timeout), int64(0))
}
