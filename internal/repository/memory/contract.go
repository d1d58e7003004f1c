package memory

import (
	"sync"

	"intakebot/internal/domain"
)

// ContractRepo implements repository.ContractRepository over an in-memory table
type ContractRepo struct {
	mu       sync.RWMutex
	statuses map[string]string
}

// NewContractRepo creates a new in-memory contract repository
func NewContractRepo() *ContractRepo {
	return &ContractRepo{statuses: make(map[string]string)}
}

// FindStatus returns the status for an exact contract number match
func (r *ContractRepo) FindStatus(number string) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	status, ok := r.statuses[number]
	if !ok {
		return "", domain.ErrNotFound
	}
	return status, nil
}

// Import loads contract records, replacing statuses of duplicate numbers
func (r *ContractRepo) Import(records []domain.Contract) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, record := range records {
		r.statuses[record.Number] = record.Status
	}
	return nil
}
