package llm

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gentle-app/gentle-api/internal/config"
)

// Client is a minimal chat-completions client for the OpenAI API.
type Client struct {
	BaseURL    string
	APIKey     string
	OrgID      string
	ProjectID  string
	HTTPClient *http.Client
}

// NewClient builds a Client from cfg.OpenAI. It does not validate the
// credential; callers decide whether a client should exist at all based
// on ClassifyKey.
func NewClient(cfg config.OpenAICfg) *Client {
	timeout := time.Duration(cfg.TimeoutSec) * time.Second
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		BaseURL:    cfg.BaseURL,
		APIKey:     cfg.APIKey,
		OrgID:      cfg.OrgID,
		ProjectID:  cfg.ProjectID,
		HTTPClient: &http.Client{Timeout: timeout},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model               string        `json:"model"`
	Messages            []chatMessage `json:"messages"`
	MaxCompletionTokens int           `json:"max_completion_tokens,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

// ChatCompletion sends one system+user prompt pair and returns the raw
// text of the first choice.
func (c *Client) ChatCompletion(ctx context.Context, model, system, user string, maxTokens int) (string, error) {
	payload := chatRequest{
		Model: model,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		MaxCompletionTokens: maxTokens,
	}
	body, err := sonic.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	endpoint := c.BaseURL + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.APIKey)
	if c.OrgID != "" {
		req.Header.Set("OpenAI-Organization", c.OrgID)
	}
	if c.ProjectID != "" {
		req.Header.Set("OpenAI-Project", c.ProjectID)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response body: %w", err)
	}

	var out chatResponse
	if err := sonic.Unmarshal(raw, &out); err != nil {
		return "", fmt.Errorf("unmarshal response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		if out.Error != nil {
			return "", fmt.Errorf("chat completion failed with status %d: %s", resp.StatusCode, out.Error.Message)
		}
		return "", fmt.Errorf("chat completion failed with status %d: %s", resp.StatusCode, string(raw))
	}
	if len(out.Choices) == 0 {
		return "", fmt.Errorf("chat completion returned no choices")
	}
	return out.Choices[0].Message.Content, nil
}
