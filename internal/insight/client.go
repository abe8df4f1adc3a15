// Package insight wraps an OpenAI-compatible chat completion endpoint to
// turn a category/amount summary into free-text spending insights.
package insight

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ravindraogg/DUHACKS/internal/config"

	openai "github.com/sashabaranov/go-openai"
)

type Client struct {
	api   *openai.Client
	model string
}

// NewClient builds a client for the configured endpoint. BaseURL may point
// at any OpenAI-compatible service (Groq, a local gateway, OpenAI itself).
func NewClient(cfg config.AIConfig) *Client {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	model := cfg.Model
	if model == "" {
		model = openai.GPT3Dot5Turbo
	}
	return &Client{
		api:   openai.NewClientWithConfig(clientCfg),
		model: model,
	}
}

// Generate asks the model for spending insights over the given per-category
// totals. One attempt only; callers treat a failure as "no insights today".
func (c *Client) Generate(ctx context.Context, categories []string, amounts []float64) (string, error) {
	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: buildPrompt(categories, amounts),
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("empty completion")
	}
	return resp.Choices[0].Message.Content, nil
}

func buildPrompt(categories []string, amounts []float64) string {
	var b strings.Builder
	b.WriteString("Analyze this expense data and give 4-5 short, practical money-saving insights, one per line, no preamble:\n")
	for i, cat := range categories {
		amount := 0.0
		if i < len(amounts) {
			amount = amounts[i]
		}
		fmt.Fprintf(&b, "- %s: %.2f\n", cat, amount)
	}
	return b.String()
}
