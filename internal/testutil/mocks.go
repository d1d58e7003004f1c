package testutil

import (
	"context"

	"intakebot/internal/domain"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/mock"
)

// MockSessionRepository is a mock for SessionRepository
type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) Get(userID int64) (*domain.Session, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Session), args.Error(1)
}

func (m *MockSessionRepository) Create(session *domain.Session) error {
	args := m.Called(session)
	return args.Error(0)
}

func (m *MockSessionRepository) Update(session *domain.Session) error {
	args := m.Called(session)
	return args.Error(0)
}

func (m *MockSessionRepository) Delete(userID int64) error {
	args := m.Called(userID)
	return args.Error(0)
}

// MockContractRepository is a mock for ContractRepository
type MockContractRepository struct {
	mock.Mock
}

func (m *MockContractRepository) FindStatus(number string) (string, error) {
	args := m.Called(number)
	return args.String(0), args.Error(1)
}

func (m *MockContractRepository) Import(records []domain.Contract) error {
	args := m.Called(records)
	return args.Error(0)
}

// MockChatCompleter is a mock for the language-generation service client
type MockChatCompleter struct {
	mock.Mock
}

func (m *MockChatCompleter) CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(openai.ChatCompletionResponse), args.Error(1)
}

// CompletionReply builds a single-choice chat completion response
func CompletionReply(content string) openai.ChatCompletionResponse {
	return openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{
			{Message: openai.ChatCompletionMessage{Content: content}},
		},
	}
}
