package contractfile

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"intakebot/internal/domain"
)

// Load reads the contract table from a CSV file with number,status rows.
// An optional header row is skipped. Values are trimmed.
func Load(path string) ([]domain.Contract, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open contracts file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = 2
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse contracts file: %w", err)
	}

	records := make([]domain.Contract, 0, len(rows))
	for i, row := range rows {
		number := strings.TrimSpace(row[0])
		status := strings.TrimSpace(row[1])

		if i == 0 && strings.EqualFold(number, "number") {
			continue
		}
		if number == "" {
			continue
		}

		records = append(records, domain.Contract{Number: number, Status: status})
	}

	return records, nil
}
