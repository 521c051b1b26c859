package report

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"expense-bot/internal/model"
)

func TestSpreadsheetWritesFile(t *testing.T) {
	expenses := []model.Expense{
		{ID: 1, Amount: 1000, Category: "Транспорт", Comment: "такси", Created: "2026-03-31 10:00:00"},
	}
	path := filepath.Join(t.TempDir(), "month.xlsx")

	got, err := Spreadsheet(expenses, path)
	require.NoError(t, err)
	assert.Equal(t, path, got)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}
