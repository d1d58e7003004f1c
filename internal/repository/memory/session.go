package memory

import (
	"sync"

	"intakebot/internal/domain"
)

// SessionRepo implements repository.SessionRepository with a process-local map
type SessionRepo struct {
	mu       sync.RWMutex
	sessions map[int64]*domain.Session
}

// NewSessionRepo creates a new in-memory session repository
func NewSessionRepo() *SessionRepo {
	return &SessionRepo{sessions: make(map[int64]*domain.Session)}
}

// Get returns the session for a user
func (r *SessionRepo) Get(userID int64) (*domain.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	session, ok := r.sessions[userID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return session.Clone(), nil
}

// Create stores a session if none exists for the user yet
func (r *SessionRepo) Create(session *domain.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[session.UserID]; ok {
		return nil
	}
	r.sessions[session.UserID] = session.Clone()
	return nil
}

// Update replaces the stored session
func (r *SessionRepo) Update(session *domain.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sessions[session.UserID] = session.Clone()
	return nil
}

// Delete removes the session for a user
func (r *SessionRepo) Delete(userID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, userID)
	return nil
}
