package chatmodel

import (
	"context"
	"fmt"
	"mecabot/app/config"
	"net/http"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
)

const maxCallDuration = 30 * time.Second

// Client wraps an OpenAI-compatible chat endpoint (Groq, OpenRouter, OpenAI).
type Client struct {
	api   *openai.Client
	model string
}

func New(cfg config.ModelConfig) *Client {
	clientConfig := openai.DefaultConfig(cfg.Token)

	clientConfig.BaseURL = cfg.BaseURL
	clientConfig.HTTPClient = &http.Client{
		Timeout: maxCallDuration,
	}

	return &Client{
		api:   openai.NewClientWithConfig(clientConfig),
		model: cfg.Model,
	}
}

func (c *Client) Model() string {
	return c.model
}

// Complete runs a single chat completion and returns the trimmed first choice.
func (c *Client) Complete(ctx context.Context, messages []openai.ChatCompletionMessage, temperature float32, maxTokens int) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, maxCallDuration)
	defer cancel()

	aiResponse, err := c.api.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model:               c.model,
			Messages:            messages,
			Temperature:         temperature,
			MaxCompletionTokens: maxTokens,
		},
	)
	if err != nil {
		return "", fmt.Errorf("failed to create chat completion: %w", err)
	}

	if len(aiResponse.Choices) == 0 {
		return "", fmt.Errorf("no chat completion found")
	}

	return strings.TrimSpace(aiResponse.Choices[0].Message.Content), nil
}

// Embed produces one embedding vector per input text.
func (c *Client) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	ctx, cancel := context.WithTimeout(ctx, maxCallDuration)
	defer cancel()

	resp, err := c.api.CreateEmbeddings(ctx, openai.EmbeddingRequest{
		Input: texts,
		Model: openai.EmbeddingModel(c.model),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create embeddings: %w", err)
	}

	if len(resp.Data) != len(texts) {
		return nil, fmt.Errorf("got %d embeddings, expected %d", len(resp.Data), len(texts))
	}

	result := make([][]float32, len(resp.Data))
	for i, emb := range resp.Data {
		result[i] = emb.Embedding
	}

	return result, nil
}
