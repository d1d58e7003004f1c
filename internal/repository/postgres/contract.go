package postgres

import (
	"database/sql"
	"fmt"

	"intakebot/internal/domain"
)

// ContractRepo implements repository.ContractRepository
type ContractRepo struct {
	db *sql.DB
}

// NewContractRepo creates a new contract repository
func NewContractRepo(db *sql.DB) *ContractRepo {
	return &ContractRepo{db: db}
}

// FindStatus returns the status for an exact contract number match
func (r *ContractRepo) FindStatus(number string) (string, error) {
	var status string
	query := `SELECT status FROM contracts WHERE number = $1`
	err := r.db.QueryRow(query, number).Scan(&status)

	if err == sql.ErrNoRows {
		return "", domain.ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to look up contract: %w", err)
	}

	return status, nil
}

// Import upserts contract records loaded at startup
func (r *ContractRepo) Import(records []domain.Contract) error {
	query := `
		INSERT INTO contracts (number, status)
		VALUES ($1, $2)
		ON CONFLICT (number)
		DO UPDATE SET status = EXCLUDED.status
	`
	for _, record := range records {
		if _, err := r.db.Exec(query, record.Number, record.Status); err != nil {
			return fmt.Errorf("failed to import contract %s: %w", record.Number, err)
		}
	}
	return nil
}
