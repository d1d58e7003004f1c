package scheduler

import (
	"sync"

	"intakebot/internal/domain"
)

// Scheduler keeps the single pending step per chat: the name of the
// handler that should process the next free-text message. Registering a
// step replaces any previous one; there is no queue.
type Scheduler struct {
	mu      sync.Mutex
	pending map[int64]domain.Step
}

// New creates an empty scheduler
func New() *Scheduler {
	return &Scheduler{pending: make(map[int64]domain.Step)}
}

// Register sets the pending step for a chat, overwriting any existing one
func (s *Scheduler) Register(chatID int64, step domain.Step) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending[chatID] = step
}

// Consume returns and clears the pending step for a chat
func (s *Scheduler) Consume(chatID int64) (domain.Step, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	step, ok := s.pending[chatID]
	if ok {
		delete(s.pending, chatID)
	}
	return step, ok
}
