package service

import (
	"context"
	"fmt"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

// ChatCompleter is the language-generation service boundary
type ChatCompleter interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Translator translates outbound text through the language-generation
// service. Any failure degrades to the original text: one attempt, no
// retry, never an error to the caller.
type Translator struct {
	client  ChatCompleter
	model   string
	timeout time.Duration
	logger  *zap.Logger
}

// NewTranslator creates a new translation service
func NewTranslator(client ChatCompleter, model string, timeout time.Duration, logger *zap.Logger) *Translator {
	return &Translator{
		client:  client,
		model:   model,
		timeout: timeout,
		logger:  logger,
	}
}

// Translate returns text translated from source to target language.
// Callers skip this call entirely when target equals the default language.
func (t *Translator) Translate(ctx context.Context, text, source, target string) string {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	resp, err := t.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: t.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role: openai.ChatMessageRoleSystem,
				Content: fmt.Sprintf(
					"You are a translator. Translate the user's message from %s to %s. "+
						"Reply with the translation only.", source, target),
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: text,
			},
		},
	})
	if err != nil {
		t.logger.Warn("Translation failed, sending original text",
			zap.String("target_language", target),
			zap.Error(err),
		)
		return text
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		t.logger.Warn("Translation returned empty response, sending original text",
			zap.String("target_language", target),
		)
		return text
	}

	return resp.Choices[0].Message.Content
}
