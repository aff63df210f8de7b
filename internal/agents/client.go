package agents

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	defaultBaseURL = "https://models.github.ai/inference"
	defaultModel   = "openai/gpt-4.1-mini"
	defaultTemp    = 0.8
	maxTokens      = 2048
)

// BackendError wraps any failure talking to the inference backend. A
// backend failure aborts the running session; callers decide how to
// surface it.
type BackendError struct {
	Err error
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("inference backend: %v", e.Err)
}

func (e *BackendError) Unwrap() error {
	return e.Err
}

// Client talks to an OpenAI-compatible chat completions endpoint
// (GitHub Models by default).
type Client struct {
	apiKey      string
	baseURL     string
	model       string
	temperature float64
	httpClient  *http.Client
}

// ClientConfig holds configuration for the inference client.
type ClientConfig struct {
	APIKey  string
	BaseURL string // overrides the GitHub Models endpoint (used in tests)
	Model   string
}

// NewClient creates an inference client.
func NewClient(cfg ClientConfig) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	model := cfg.Model
	if model == "" {
		model = defaultModel
	}

	return &Client{
		apiKey:      cfg.APIKey,
		baseURL:     baseURL,
		model:       model,
		temperature: defaultTemp,
		httpClient: &http.Client{
			Timeout: 120 * time.Second,
		},
	}
}

// chatMessage is one message in a chat completions request.
type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatRequest is the request body for the chat completions endpoint.
type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

// chatResponse is the chat completions response.
type chatResponse struct {
	Choices []struct {
		Message struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error,omitempty"`
}

// Complete sends one system+user exchange and returns the reply text.
// Every failure path returns a *BackendError.
func (c *Client) Complete(ctx context.Context, system, user string) (string, error) {
	req := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		Temperature: c.temperature,
		MaxTokens:   maxTokens,
	}

	body, err := json.Marshal(req)
	if err != nil {
		return "", &BackendError{Err: fmt.Errorf("marshal request: %w", err)}
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", &BackendError{Err: fmt.Errorf("create request: %w", err)}
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", &BackendError{Err: fmt.Errorf("send request: %w", err)}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &BackendError{Err: fmt.Errorf("read response: %w", err)}
	}

	if resp.StatusCode != http.StatusOK {
		return "", &BackendError{Err: fmt.Errorf("API error (status %d): %s", resp.StatusCode, string(respBody))}
	}

	var chatResp chatResponse
	if err := json.Unmarshal(respBody, &chatResp); err != nil {
		return "", &BackendError{Err: fmt.Errorf("unmarshal response: %w", err)}
	}

	if chatResp.Error != nil {
		return "", &BackendError{Err: fmt.Errorf("API error: %s - %s", chatResp.Error.Type, chatResp.Error.Message)}
	}

	if len(chatResp.Choices) == 0 || chatResp.Choices[0].Message.Content == "" {
		return "", &BackendError{Err: fmt.Errorf("empty response from API")}
	}

	return chatResp.Choices[0].Message.Content, nil
}
