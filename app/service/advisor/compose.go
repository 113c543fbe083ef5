package advisor

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"
	"strings"

	"mecabot/app/service/catalog"
	"mecabot/app/service/session"

	_ "embed"

	"github.com/sashabaranov/go-openai"
)

//go:embed system_prompt_template.txt
var systemPromptTemplate string

// productLite is the bounded grounding record per product; the description
// is truncated so a verbose catalog entry cannot flood the prompt.
type productLite struct {
	Name        string  `json:"Nombre"`
	Price       float64 `json:"Precio"`
	SKU         string  `json:"SKU"`
	URL         string  `json:"URL"`
	Photo       string  `json:"FOTO"`
	Description string  `json:"Desc_Tecnica"`
}

func groundingPayload(ranked []catalog.Product) string {
	lite := make([]productLite, len(ranked))
	for i, p := range ranked {
		lite[i] = productLite{
			Name:        p.Name,
			Price:       p.Price,
			SKU:         p.SKUOrDefault(),
			URL:         p.URL,
			Photo:       p.ImageURL,
			Description: p.ShortDescription(),
		}
	}

	data, err := json.Marshal(lite)
	if err != nil {
		return "[]"
	}

	return string(data)
}

// composeReply builds the grounded generation request and returns the
// model's text. An empty candidate set short-circuits to the fixed
// not-found message without calling the model at all.
func (s *Service) composeReply(ctx context.Context, query string, ranked []catalog.Product, recent []session.Turn) string {
	if len(ranked) == 0 {
		return notFoundMessage
	}

	systemPrompt := strings.ReplaceAll(systemPromptTemplate, "{total}", strconv.Itoa(s.catalogSvc.Count()))

	messages := make([]openai.ChatCompletionMessage, 0, len(recent)+2)
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: systemPrompt,
	})

	for _, turn := range recent {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    string(turn.Role),
			Content: turn.Content,
		})
	}

	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: "Consulta: " + query + "\n[DATOS TÉCNICOS ENCONTRADOS: " + groundingPayload(ranked) + "]",
	})

	reply, err := s.client.Complete(ctx, messages, replyTemperature, replyMaxTokens)
	if err != nil {
		slog.Error("Grounded reply failed",
			"query", query,
			"error", err,
			"telegram", true)
		return errorMessage
	}

	return reply
}
