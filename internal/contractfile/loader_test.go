package contractfile

import (
	"os"
	"path/filepath"
	"testing"

	"intakebot/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "contracts.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected []domain.Contract
	}{
		{
			name:    "plain rows",
			content: "123,done\n456,in progress\n",
			expected: []domain.Contract{
				{Number: "123", Status: "done"},
				{Number: "456", Status: "in progress"},
			},
		},
		{
			name:    "header row skipped",
			content: "number,status\n123,done\n",
			expected: []domain.Contract{
				{Number: "123", Status: "done"},
			},
		},
		{
			name:    "values trimmed",
			content: " 123 , done \n",
			expected: []domain.Contract{
				{Number: "123", Status: "done"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records, err := Load(writeFile(t, tt.content))

			assert.NoError(t, err)
			assert.Equal(t, tt.expected, records)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.csv"))
	assert.Error(t, err)
}

func TestLoad_MalformedRow(t *testing.T) {
	_, err := Load(writeFile(t, "123,done\nonly-one-field\n"))
	assert.Error(t, err)
}
