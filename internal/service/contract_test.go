package service

import (
	"testing"

	"intakebot/internal/domain"
	"intakebot/internal/testutil"

	"github.com/stretchr/testify/assert"
)

func TestContractService_FindStatus(t *testing.T) {
	tests := []struct {
		name           string
		input          string
		lookedUp       string
		repoStatus     string
		repoErr        error
		expectedStatus string
		expectedErr    error
	}{
		{
			name:           "exact match",
			input:          "123",
			lookedUp:       "123",
			repoStatus:     "done",
			expectedStatus: "done",
		},
		{
			name:           "surrounding whitespace trimmed before lookup",
			input:          " 123 ",
			lookedUp:       "123",
			repoStatus:     "done",
			expectedStatus: "done",
		},
		{
			name:        "miss",
			input:       "124",
			lookedUp:    "124",
			repoErr:     domain.ErrNotFound,
			expectedErr: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(testutil.MockContractRepository)
			mockRepo.On("FindStatus", tt.lookedUp).Return(tt.repoStatus, tt.repoErr)

			service := NewContractService(mockRepo)

			status, err := service.FindStatus(tt.input)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedStatus, status)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}
