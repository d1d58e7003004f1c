package postgres

import (
	"database/sql"
	"testing"

	"intakebot/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestContractRepo_FindStatus(t *testing.T) {
	tests := []struct {
		name           string
		number         string
		mockRows       *sqlmock.Rows
		mockError      error
		expectedStatus string
		expectedErr    error
	}{
		{
			name:           "existing contract",
			number:         "123",
			mockRows:       sqlmock.NewRows([]string{"status"}).AddRow("done"),
			expectedStatus: "done",
		},
		{
			name:        "unknown contract",
			number:      "124",
			mockError:   sql.ErrNoRows,
			expectedErr: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			assert.NoError(t, err)
			defer db.Close()

			repo := NewContractRepo(db)

			query := "SELECT status FROM contracts WHERE number = \\$1"

			if tt.mockError != nil {
				mock.ExpectQuery(query).WithArgs(tt.number).WillReturnError(tt.mockError)
			} else {
				mock.ExpectQuery(query).WithArgs(tt.number).WillReturnRows(tt.mockRows)
			}

			status, err := repo.FindStatus(tt.number)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedStatus, status)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestContractRepo_Import(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewContractRepo(db)

	mock.ExpectExec("INSERT INTO contracts").
		WithArgs("123", "done").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO contracts").
		WithArgs("456", "in progress").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.Import([]domain.Contract{
		{Number: "123", Status: "done"},
		{Number: "456", Status: "in progress"},
	})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
