package testutil

import (
	"intakebot/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestSession creates a test session
func NewTestSession(userID, chatID int64, language string) *domain.Session {
	return &domain.Session{
		UserID:      userID,
		ChatID:      chatID,
		DisplayName: "Test User",
		Language:    language,
	}
}

// NewTestContracts creates a small contract table
func NewTestContracts() []domain.Contract {
	return []domain.Contract{
		{Number: "123", Status: "выполняется"},
		{Number: "456", Status: "завершён"},
	}
}
