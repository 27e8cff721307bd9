package assistant

import (
	"context"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/mateenqamar1122/Hyperlans-sub002/internal/domain"
)

const anthropicMaxTokens = 1024

// AnthropicProvider implements the LanguageModel interface on the Anthropic
// messages API.
type AnthropicProvider struct {
	client anthropic.Client
	model  string
}

func NewAnthropicProvider(apiKey, model string) *AnthropicProvider {
	return &AnthropicProvider{
		client: anthropic.NewClient(option.WithAPIKey(apiKey)),
		model:  model,
	}
}

func (p *AnthropicProvider) Generate(ctx context.Context, system string, messages []domain.ChatMessage) (string, error) {
	converted := make([]anthropic.MessageParam, 0, len(messages))
	for _, message := range messages {
		block := anthropic.NewTextBlock(message.Content)
		if message.Role == domain.ChatRoleAssistant {
			converted = append(converted, anthropic.NewAssistantMessage(block))
		} else {
			converted = append(converted, anthropic.NewUserMessage(block))
		}
	}

	resp, err := p.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(p.model),
		MaxTokens: anthropicMaxTokens,
		System:    []anthropic.TextBlockParam{{Text: system}},
		Messages:  converted,
	})
	if err != nil {
		return "", fmt.Errorf("anthropic api error: %w", err)
	}

	var content strings.Builder
	for _, block := range resp.Content {
		if block.Type == "text" {
			content.WriteString(block.Text)
		}
	}

	return content.String(), nil
}
