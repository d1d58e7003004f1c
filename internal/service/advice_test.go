package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"intakebot/internal/testutil"
	"intakebot/internal/texts"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestAdvisor_Advise(t *testing.T) {
	tests := []struct {
		name      string
		mockResp  openai.ChatCompletionResponse
		mockError error
		expected  string
	}{
		{
			name:     "successful advice",
			mockResp: testutil.CompletionReply("Рекомендуем начать с MVP."),
			expected: "Рекомендуем начать с MVP.",
		},
		{
			name:      "service failure returns fixed fallback",
			mockError: errors.New("service unavailable"),
			expected:  texts.AdviceFailed,
		},
		{
			name:     "empty response returns fixed fallback",
			mockResp: openai.ChatCompletionResponse{},
			expected: texts.AdviceFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := new(testutil.MockChatCompleter)
			client.On("CreateChatCompletion", mock.Anything, mock.Anything).
				Return(tt.mockResp, tt.mockError).Once()

			advisor := NewAdvisor(client, "gpt-4", time.Second, testutil.NewTestLogger())

			result := advisor.Advise(context.Background(), "нужен бот для записи клиентов")

			assert.Equal(t, tt.expected, result)
			assert.NotEmpty(t, result)
			client.AssertExpectations(t)
		})
	}
}

func TestAdvisor_SingleAttempt(t *testing.T) {
	client := new(testutil.MockChatCompleter)
	client.On("CreateChatCompletion", mock.Anything, mock.Anything).
		Return(openai.ChatCompletionResponse{}, errors.New("timeout")).Once()

	advisor := NewAdvisor(client, "gpt-4", time.Second, testutil.NewTestLogger())
	advisor.Advise(context.Background(), "задача")

	client.AssertNumberOfCalls(t, "CreateChatCompletion", 1)
}
