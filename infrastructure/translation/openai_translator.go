package translation

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"games-backend/application/ports"

	"github.com/sashabaranov/go-openai"
)

// OpenAIConfig holds configuration for the OpenAI translator
type OpenAIConfig struct {
	APIKey      string
	Model       string // default: "gpt-4o-mini"
	Temperature float32
	BaseURL     string
}

// OpenAITranslator translates text with a chat completion model
type OpenAITranslator struct {
	client      *openai.Client
	model       string
	temperature float32
}

// NewOpenAITranslator creates a new OpenAI backed translator
func NewOpenAITranslator(cfg OpenAIConfig) *OpenAITranslator {
	config := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		config.BaseURL = cfg.BaseURL
	}

	model := cfg.Model
	if model == "" {
		model = "gpt-4o-mini"
	}

	temperature := cfg.Temperature
	if temperature == 0 {
		temperature = 0.2
	}

	return &OpenAITranslator{
		client:      openai.NewClientWithConfig(config),
		model:       model,
		temperature: temperature,
	}
}

var _ ports.Translator = (*OpenAITranslator)(nil)

// TranslateText translates one string
func (t *OpenAITranslator) TranslateText(ctx context.Context, text, sourceLanguage, targetLanguage string) (string, error) {
	resp, err := t.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: t.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt(sourceLanguage, targetLanguage)},
			{Role: openai.ChatMessageRoleUser, Content: text},
		},
		Temperature: t.temperature,
	})
	if err != nil {
		return "", fmt.Errorf("openai chat completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", errors.New("openai chat completion: no choices returned")
	}

	out := strings.TrimSpace(resp.Choices[0].Message.Content)
	if out == "" {
		return "", errors.New("openai chat completion: empty translation")
	}

	return out, nil
}

func systemPrompt(sourceLanguage, targetLanguage string) string {
	return fmt.Sprintf(`You translate video game catalog text from the language with code %q into the language with code %q.
Keep proper nouns such as studio names as they are commonly written in the target language.
Reply with the translated text only, without quotes or commentary.`, sourceLanguage, targetLanguage)
}
