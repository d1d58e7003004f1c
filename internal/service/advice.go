package service

import (
	"context"
	"time"

	"intakebot/internal/texts"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

// Advisor produces advisory text from a free-text problem statement.
// Any failure degrades to a fixed apology: one attempt, no retry.
type Advisor struct {
	client  ChatCompleter
	model   string
	timeout time.Duration
	logger  *zap.Logger
}

// NewAdvisor creates a new advice service
func NewAdvisor(client ChatCompleter, model string, timeout time.Duration, logger *zap.Logger) *Advisor {
	return &Advisor{
		client:  client,
		model:   model,
		timeout: timeout,
		logger:  logger,
	}
}

// Advise returns recommendations for the given problem statement
func (a *Advisor) Advise(ctx context.Context, problem string) string {
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: a.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role: openai.ChatMessageRoleSystem,
				Content: "Ты консультант студии разработки. Кратко предложи, " +
					"как можно решить задачу клиента.",
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: problem,
			},
		},
	})
	if err != nil {
		a.logger.Warn("Advice generation failed, sending fallback", zap.Error(err))
		return texts.AdviceFailed
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		a.logger.Warn("Advice generation returned empty response, sending fallback")
		return texts.AdviceFailed
	}

	return resp.Choices[0].Message.Content
}
