package service

import (
	"strings"

	"intakebot/internal/repository"
)

// ContractService handles contract status lookups
type ContractService struct {
	contractRepo repository.ContractRepository
}

// NewContractService creates a new contract service
func NewContractService(contractRepo repository.ContractRepository) *ContractService {
	return &ContractService{contractRepo: contractRepo}
}

// FindStatus looks up the status by exact match of the trimmed number.
// A miss is reported via domain.ErrNotFound; no fuzzy matching.
func (s *ContractService) FindStatus(number string) (string, error) {
	return s.contractRepo.FindStatus(strings.TrimSpace(number))
}
