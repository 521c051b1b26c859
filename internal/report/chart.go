package report

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/wcharczuk/go-chart/v2"

	"expense-bot/internal/model"
)

// ErrNoChartData is returned when nothing with a positive amount is left to
// draw.
var ErrNoChartData = errors.New("no chart data")

// PieChart writes a 768x768 PNG pie of per-category totals to path and
// returns the path. Categories with a zero total are dropped; slices are
// ordered by category name so the image is deterministic.
func PieChart(expenses []model.Expense, path string) (string, error) {
	totals := make(map[string]int64)
	for _, e := range expenses {
		totals[e.Category] += e.Amount
	}

	names := make([]string, 0, len(totals))
	for name, total := range totals {
		if total > 0 {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return "", ErrNoChartData
	}
	sort.Strings(names)

	values := make([]chart.Value, 0, len(names))
	for _, name := range names {
		values = append(values, chart.Value{
			Label: fmt.Sprintf("%s: %d", name, totals[name]),
			Value: float64(totals[name]),
		})
	}

	pie := chart.PieChart{
		Width:  768,
		Height: 768,
		Values: values,
	}

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create chart file: %w", err)
	}
	defer f.Close()

	if err := pie.Render(chart.PNG, f); err != nil {
		return "", fmt.Errorf("render chart: %w", err)
	}
	return path, nil
}
