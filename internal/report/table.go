// Package report renders expense lists as fixed-width text tables,
// pie-chart images and spreadsheets.
package report

import (
	"fmt"
	"strings"

	"expense-bot/internal/model"
)

// ExpensesTable renders expenses as a fixed-width table with a trailing
// total row. Columns are truncated, not widened; when a comment is empty
// the category name is shown instead.
func ExpensesTable(expenses []model.Expense) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%7.7s %-16.16s %5.5s\n", "[ID]", "КОММЕНТАРИЙ", "СУММА"))

	var total int64
	for _, e := range expenses {
		comment := e.Comment
		if comment == "" {
			comment = e.Category
		}
		total += e.Amount
		b.WriteString(fmt.Sprintf("%7.7s %-16.16s %5d\n", "["+fmt.Sprint(e.ID)+"]", comment, e.Amount))
	}

	b.WriteString(fmt.Sprintf("\n%7.7s %-15.15s %6d\n", "", "ИТОГО", total))
	return b.String()
}

// LimitsTable renders the catalog with its monthly limits; categories
// without a limit show a dash.
func LimitsTable(categories []model.Category) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%-16.16s %8.8s\n", "КАТЕГОРИЯ", "ЛИМИТ"))

	for _, c := range categories {
		limit := "-"
		if c.MonthlyLimit > 0 {
			limit = fmt.Sprint(c.MonthlyLimit)
		}
		b.WriteString(fmt.Sprintf("%-16.16s %8.8s\n", c.Name, limit))
	}

	return b.String()
}
