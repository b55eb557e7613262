package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/pageza/tinybites/backend/config"
)

// Message represents a message in the chat
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// CompletionRequest represents a request to the chat-completions API
type CompletionRequest struct {
	Model          string            `json:"model"`
	Messages       []Message         `json:"messages"`
	ResponseFormat map[string]string `json:"response_format"`
	Temperature    float64           `json:"temperature"`
}

// completionTemperature is fixed for every call; creativity lives in the
// prompt, not in per-request tuning.
const completionTemperature = 0.7

// CompletionClient calls the hosted chat-completions endpoint. Every
// failure mode (missing key, network error, non-2xx, empty choice) comes
// back as an error wrapping ErrUpstreamUnavailable so the caller can route
// to the fallback generator without inspecting causes.
type CompletionClient struct {
	apiKey string
	apiURL string
	model  string
	client *http.Client
}

// NewCompletionClient creates a CompletionClient from the loaded config.
// An empty API key is accepted; calls then fail over to fallback mode.
func NewCompletionClient(cfg *config.Config) *CompletionClient {
	return &CompletionClient{
		apiKey: cfg.OpenAIAPIKey,
		apiURL: cfg.OpenAIAPIURL,
		model:  cfg.OpenAIModel,
		client: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// Complete sends one (system, user) instruction pair and returns the raw
// text of the first completion choice. Exactly one attempt is made.
func (c *CompletionClient) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	if c.apiKey == "" {
		return "", fmt.Errorf("%w: no API credential configured", ErrUpstreamUnavailable)
	}

	reqBody := CompletionRequest{
		Model: c.model,
		Messages: []Message{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
		ResponseFormat: map[string]string{
			"type": "json_object",
		},
		Temperature: completionTemperature,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("%w: failed to marshal request: %v", ErrUpstreamUnavailable, err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.apiURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("%w: failed to create request: %v", ErrUpstreamUnavailable, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.apiKey))

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: failed to send request: %v", ErrUpstreamUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: failed to read response: %v", ErrUpstreamUnavailable, err)
	}

	if resp.StatusCode != http.StatusOK {
		switch resp.StatusCode {
		case http.StatusTooManyRequests:
			log.Printf("[CompletionClient] quota exhausted (429): %s", string(body))
		case http.StatusUnauthorized:
			log.Printf("[CompletionClient] API key rejected (401): %s", string(body))
		default:
			log.Printf("[CompletionClient] API request failed with status %d: %s", resp.StatusCode, string(body))
		}
		return "", fmt.Errorf("%w: status %d", ErrUpstreamUnavailable, resp.StatusCode)
	}

	var result struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}

	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("%w: failed to decode response: %v", ErrUpstreamUnavailable, err)
	}

	if len(result.Choices) == 0 || result.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("%w: empty completion content", ErrUpstreamUnavailable)
	}

	return result.Choices[0].Message.Content, nil
}
