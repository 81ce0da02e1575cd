// internal/llm/openai_client.go
// Client LLM untuk layer insight/Q&A dashboard

package llm

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// Client adalah kontrak minimal yang dibutuhkan layer insights.
type Client interface {
	// Answer mengirim satu pasang system+user prompt, return teks jawaban.
	Answer(ctx context.Context, system, user string) (string, error)

	// Model mengembalikan nama model aktif (untuk endpoint status).
	Model() string
}

type OpenAIClient struct {
	api   *openai.Client
	model string
}

// NewFromEnv membaca konfigurasi dari environment:
// - OPENAI_API_KEY (wajib)
// - OPENAI_MODEL (opsional, default gpt-4o-mini)
// - OPENAI_BASE_URL (opsional, untuk proxy/self-hosted endpoint)
func NewFromEnv() (Client, error) {
	key := strings.TrimSpace(os.Getenv("OPENAI_API_KEY"))
	if key == "" {
		return nil, errors.New("OPENAI_API_KEY not set")
	}

	cfg := openai.DefaultConfig(key)
	if base := strings.TrimSpace(os.Getenv("OPENAI_BASE_URL")); base != "" {
		cfg.BaseURL = base
	}

	model := strings.TrimSpace(os.Getenv("OPENAI_MODEL"))
	if model == "" {
		model = "gpt-4o-mini"
	}

	return &OpenAIClient{
		api:   openai.NewClientWithConfig(cfg),
		model: model,
	}, nil
}

func (c *OpenAIClient) Model() string { return c.model }

func (c *OpenAIClient) Answer(ctx context.Context, system, user string) (string, error) {
	req := openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
		Temperature: 0.2,
	}

	// guard timeout kalau caller tidak bawa deadline sendiri
	var cancel context.CancelFunc
	if _, ok := ctx.Deadline(); !ok {
		ctx, cancel = context.WithTimeout(ctx, 18*time.Second)
		defer cancel()
	}

	resp, err := c.api.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("openai completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("no completion choices")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
