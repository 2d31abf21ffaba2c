// Package api provides the client for the remote chat completion endpoint.
// It issues a single synchronous request per call with fixed deterministic
// sampling parameters and classifies the HTTP outcome: 2xx responses yield
// the generated text, 4xx carry the server's error message, 5xx carry the
// numeric status. There is no retry logic; any failure ends the invocation.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/jmillana/plz-cli/internal/config"
	"github.com/jmillana/plz-cli/internal/constants"
	"github.com/jmillana/plz-cli/internal/logging"
)

// Message represents a chat message
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest represents the Chat Completions API request.
// Sampling is pinned to be deterministic: repeated calls with identical
// input are expected to be stable given the remote model's own determinism.
type ChatRequest struct {
	Model            string    `json:"model"`
	Messages         []Message `json:"messages"`
	MaxTokens        int       `json:"max_tokens"`
	Temperature      float64   `json:"temperature"`
	TopP             float64   `json:"top_p"`
	PresencePenalty  float64   `json:"presence_penalty"`
	FrequencyPenalty float64   `json:"frequency_penalty"`
}

// Choice represents a response choice. Legacy non-chat deployments return
// the generated text in "text" instead of "message.content".
type Choice struct {
	Index   int     `json:"index"`
	Message Message `json:"message,omitempty"`
	Text    string  `json:"text,omitempty"`
}

// ChatResponse represents the API response
type ChatResponse struct {
	ID      string   `json:"id"`
	Choices []Choice `json:"choices"`
}

// ErrorResponse represents an API error body
type ErrorResponse struct {
	Error struct {
		Message string `json:"message"`
		Code    string `json:"code"`
	} `json:"error"`
}

// APIError represents an HTTP-level error with its status code
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

// IsClientError reports whether the error was a 4xx response
func (e *APIError) IsClientError() bool {
	return e.StatusCode >= 400 && e.StatusCode < 500
}

// IsServerError reports whether the error was a 5xx response
func (e *APIError) IsServerError() bool {
	return e.StatusCode >= 500 && e.StatusCode < 600
}

// Client talks to the chat completions endpoint
type Client struct {
	httpClient *http.Client
	cfg        *config.Config
}

// NewClient creates a completion client. When debug mode is on, the HTTP
// transport is wrapped with a logging round tripper that redacts credentials.
func NewClient(cfg *config.Config) *Client {
	transport := http.DefaultTransport

	if cfg.Debug {
		logger := logging.New(logging.Options{
			Level:  logging.LevelDebug,
			Format: logging.FormatJSON,
		})
		transport = logging.NewLoggingRoundTripper(http.DefaultTransport, logging.NewHTTPLogger(logger), true)
	}

	return &Client{
		httpClient: &http.Client{
			Timeout:   constants.DefaultAPITimeout,
			Transport: transport,
		},
		cfg: cfg,
	}
}

// Complete sends one completion request carrying the system and user
// messages and returns the generated text, trimmed of surrounding
// whitespace. It never retries: a 4xx or 5xx response comes back as an
// *APIError, and a transport failure as a plain wrapped error.
func (c *Client) Complete(ctx context.Context, systemPrompt, userMessage string, maxTokens int) (string, error) {
	reqBody := ChatRequest{
		Model: c.cfg.Model,
		Messages: []Message{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userMessage},
		},
		MaxTokens:        maxTokens,
		Temperature:      0,
		TopP:             1,
		PresencePenalty:  0,
		FrequencyPenalty: 0,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.CompletionsURL(), bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("X-Request-Id", uuid.New().String())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("cannot reach completion endpoint: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if err := classifyStatus(resp.StatusCode, body); err != nil {
		return "", err
	}

	var chatResp ChatResponse
	if err := json.Unmarshal(body, &chatResp); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}

	return chatResp.GetContent(), nil
}

// classifyStatus maps a non-2xx status to an *APIError. Client errors
// surface the server-supplied message verbatim; server errors surface the
// numeric status.
func classifyStatus(statusCode int, body []byte) error {
	switch {
	case statusCode >= 200 && statusCode < 300:
		return nil
	case statusCode >= 400 && statusCode < 500:
		errMsg := fmt.Sprintf("status code %d", statusCode)
		var errResp ErrorResponse
		if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error.Message != "" {
			errMsg = errResp.Error.Message
		}
		return &APIError{StatusCode: statusCode, Message: errMsg}
	case statusCode >= 500:
		return &APIError{
			StatusCode: statusCode,
			Message:    fmt.Sprintf("the completion service is currently experiencing problems (status code %d)", statusCode),
		}
	default:
		return &APIError{
			StatusCode: statusCode,
			Message:    fmt.Sprintf("unexpected status code %d", statusCode),
		}
	}
}

// GetContent extracts the generated text from the first choice, falling
// back to the legacy non-chat "text" field.
func (r *ChatResponse) GetContent() string {
	if len(r.Choices) == 0 {
		return ""
	}
	if r.Choices[0].Message.Content != "" {
		return strings.TrimSpace(r.Choices[0].Message.Content)
	}
	return strings.TrimSpace(r.Choices[0].Text)
}
