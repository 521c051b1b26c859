package report

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"expense-bot/internal/model"
)

func TestPieChartWritesFile(t *testing.T) {
	expenses := []model.Expense{
		{ID: 1, Amount: 1000, Category: "Транспорт"},
		{ID: 2, Amount: 500, Category: "Продукты"},
		{ID: 3, Amount: 200, Category: "Продукты"},
	}
	path := filepath.Join(t.TempDir(), "today.png")

	got, err := PieChart(expenses, path)
	require.NoError(t, err)
	assert.Equal(t, path, got)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestPieChartNoData(t *testing.T) {
	expenses := []model.Expense{{ID: 1, Amount: 0, Category: "Прочее"}}

	_, err := PieChart(expenses, filepath.Join(t.TempDir(), "empty.png"))
	require.ErrorIs(t, err, ErrNoChartData)
}
