package rewrite

import (
	"context"
	"log/slog"
	"strings"

	"mecabot/app/client/chatmodel"
	"mecabot/app/config"
	"mecabot/app/service/session"
	"mecabot/app/util/textnorm"

	_ "embed"

	"github.com/samber/do"
	"github.com/sashabaranov/go-openai"
)

//go:embed rewrite_prompt_template.txt
var rewritePromptTemplate string

const (
	// Messages longer than this are assumed self-contained; no model call.
	selfContainedTokens = 12

	rewriteTemperature = 0.1
	rewriteMaxTokens   = 40
)

type Service struct {
	client *chatmodel.Client
}

func New(di *do.Injector) (*Service, error) {
	cfg := do.MustInvoke[*config.Config](di)

	return &Service{
		client: chatmodel.New(cfg.LLM.Rewrite),
	}, nil
}

// Rewrite resolves pronouns and elided topics in current against the prior
// user turn, producing a self-contained search phrase. Any failure falls
// back to the unmodified input: a bad rewrite must never block the turn.
func (s *Service) Rewrite(ctx context.Context, current string, history []session.Turn) string {
	if textnorm.WordCount(current) > selfContainedTokens {
		return current
	}

	previous, ok := session.LastUserTurn(history, current)
	if !ok {
		return current
	}

	prompt := rewritePromptTemplate
	prompt = strings.ReplaceAll(prompt, "{previous}", previous)
	prompt = strings.ReplaceAll(prompt, "{current}", current)

	result, err := s.client.Complete(ctx, []openai.ChatCompletionMessage{
		{
			Role:    openai.ChatMessageRoleUser,
			Content: prompt,
		},
	}, rewriteTemperature, rewriteMaxTokens)
	if err != nil {
		slog.Error("Query rewrite failed, using raw input",
			"current", current,
			"error", err)
		return current
	}

	result = cleanPhrase(result)
	if result == "" {
		return current
	}

	return result
}

// cleanPhrase keeps the first line and strips fences and quote marks the
// model sometimes wraps the phrase in.
func cleanPhrase(s string) string {
	s = strings.Trim(s, "`")
	s = strings.TrimSpace(s)
	s, _, _ = strings.Cut(s, "\n")
	s = strings.Trim(s, `"'«»“”`)

	return strings.TrimSpace(s)
}
