package translate

import (
	"context"
	"errors"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"

	"lingopipe/internal/config"
)

type openAITranslator struct {
	client   *openai.Client
	model    string
	language string
}

func newOpenAI(cfg config.Translator) (Translator, error) {
	if cfg.OpenAI.APIKey == "" {
		return nil, errors.New("translator.openai.api_key is required (set OPENAI_API_KEY)")
	}
	clientCfg := openai.DefaultConfig(cfg.OpenAI.APIKey)
	if cfg.OpenAI.BaseURL != "" {
		clientCfg.BaseURL = cfg.OpenAI.BaseURL
	}
	return &openAITranslator{
		client:   openai.NewClientWithConfig(clientCfg),
		model:    cfg.OpenAI.Model,
		language: languageName(cfg.TargetLanguage),
	}, nil
}

func (t *openAITranslator) Translate(ctx context.Context, text string) (string, error) {
	resp, err := t.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: t.model,
		Messages: []openai.ChatCompletionMessage{{
			Role:    openai.ChatMessageRoleUser,
			Content: fmt.Sprintf("Translate the following text into literary %s, returning only the translation: %s", t.language, text),
		}},
		Temperature: 0.3,
	})
	if err != nil {
		return "", fmt.Errorf("openai translate: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("openai translate: empty response")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// languageName renders a target language tag as an English display name for
// prompting, falling back to the raw tag when it cannot be parsed.
func languageName(target string) string {
	tag, err := language.Parse(target)
	if err != nil {
		return target
	}
	if name := display.English.Tags().Name(tag); name != "" {
		return name
	}
	return target
}
