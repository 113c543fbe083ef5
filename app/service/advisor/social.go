package advisor

import (
	"context"
	"log/slog"
	"strings"

	"mecabot/app/service/session"

	_ "embed"

	"github.com/sashabaranov/go-openai"
)

//go:embed social_prompt_template.txt
var socialPromptTemplate string

// socialReply answers chit-chat without touching the catalog. An empty
// message or a model failure falls back to the seed greeting.
func (s *Service) socialReply(ctx context.Context, text string, recent []session.Turn) string {
	if strings.TrimSpace(text) == "" {
		return session.SeedGreeting
	}

	messages := make([]openai.ChatCompletionMessage, 0, len(recent)+2)
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: socialPromptTemplate,
	})

	for _, turn := range recent {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    string(turn.Role),
			Content: turn.Content,
		})
	}

	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: text,
	})

	reply, err := s.client.Complete(ctx, messages, socialTemperature, socialMaxTokens)
	if err != nil {
		slog.Error("Social reply failed",
			"text", text,
			"error", err)
		return session.SeedGreeting
	}

	return reply
}
