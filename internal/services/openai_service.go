package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/cmwalshWVU/prompt-pad-api/internal/config"
)

const (
	completionModel       = "gpt-4o"
	completionMaxTokens   = 10000
	completionTemperature = 0.7
)

// OpenAIClient relays single-turn chat completions to the OpenAI API.
type OpenAIClient struct {
	rest *resty.Client
}

func NewOpenAIClient(cfg *config.AppConfig) *OpenAIClient {
	rest := resty.New().
		SetBaseURL(strings.TrimRight(cfg.OpenAIBaseURL, "/")).
		SetHeader("Authorization", "Bearer "+cfg.OpenAIAPIKey).
		SetHeader("Content-Type", "application/json").
		SetTimeout(2 * time.Minute)

	return &OpenAIClient{rest: rest}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type completionRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
}

// CreateCompletion sends the prompt as a single user turn and returns the
// upstream JSON body verbatim. Non-2xx responses become an error; the caller
// maps it to an opaque server error without reshaping upstream detail.
func (c *OpenAIClient) CreateCompletion(ctx context.Context, prompt string) (json.RawMessage, error) {
	body := completionRequest{
		Model:       completionModel,
		Messages:    []chatMessage{{Role: "user", Content: prompt}},
		MaxTokens:   completionMaxTokens,
		Temperature: completionTemperature,
	}

	resp, err := c.rest.R().
		SetContext(ctx).
		SetBody(&body).
		Post("/v1/chat/completions")
	if err != nil {
		return nil, fmt.Errorf("completion request failed: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("completion API returned status %d", resp.StatusCode())
	}

	return json.RawMessage(resp.Body()), nil
}
