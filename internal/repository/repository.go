package repository

import (
	"intakebot/internal/domain"
)

// SessionRepository defines session data operations
type SessionRepository interface {
	Get(userID int64) (*domain.Session, error)
	Create(session *domain.Session) error
	Update(session *domain.Session) error
	Delete(userID int64) error
}

// ContractRepository defines contract table operations
type ContractRepository interface {
	FindStatus(number string) (string, error)
	Import(records []domain.Contract) error
}
