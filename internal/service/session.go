package service

import (
	"errors"
	"fmt"

	"intakebot/internal/domain"
	"intakebot/internal/repository"
)

// SessionService owns session lifecycle: creation on first contact and
// read-modify-write updates. Callers serialize per user before touching it.
type SessionService struct {
	sessionRepo     repository.SessionRepository
	defaultLanguage string
}

// NewSessionService creates a new session service
func NewSessionService(sessionRepo repository.SessionRepository, defaultLanguage string) *SessionService {
	return &SessionService{
		sessionRepo:     sessionRepo,
		defaultLanguage: defaultLanguage,
	}
}

// Get returns the session for a user
func (s *SessionService) Get(userID int64) (*domain.Session, error) {
	return s.sessionRepo.Get(userID)
}

// Exists reports whether a session was already created for the user
func (s *SessionService) Exists(userID int64) (bool, error) {
	_, err := s.sessionRepo.Get(userID)
	if errors.Is(err, domain.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Ensure returns the user's session, creating it with the default
// language on first contact. An existing session is reused as is: the
// chosen language is never overwritten.
func (s *SessionService) Ensure(userID, chatID int64, displayName string) (*domain.Session, error) {
	session, err := s.sessionRepo.Get(userID)
	if err == nil {
		return session, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	session = &domain.Session{
		UserID:      userID,
		ChatID:      chatID,
		DisplayName: displayName,
		Language:    s.defaultLanguage,
	}
	if err := s.sessionRepo.Create(session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	return session, nil
}

// Update applies a mutation to the stored session
func (s *SessionService) Update(userID int64, mutate func(*domain.Session)) (*domain.Session, error) {
	session, err := s.sessionRepo.Get(userID)
	if err != nil {
		return nil, err
	}

	mutate(session)

	if err := s.sessionRepo.Update(session); err != nil {
		return nil, fmt.Errorf("failed to update session: %w", err)
	}
	return session, nil
}
