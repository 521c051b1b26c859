package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"expense-bot/internal/model"
)

const sheetName = "Расходы"

// Spreadsheet writes expenses to an XLSX file at path and returns the
// path. One row per expense plus a total row.
func Spreadsheet(expenses []model.Expense, path string) (string, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return "", fmt.Errorf("rename sheet: %w", err)
	}

	headers := []interface{}{"ID", "Дата", "Категория", "Комментарий", "Сумма"}
	if err := setRow(f, 1, headers); err != nil {
		return "", err
	}

	var total int64
	row := 2
	for _, e := range expenses {
		total += e.Amount
		cells := []interface{}{e.ID, e.Created, e.Category, e.Comment, e.Amount}
		if err := setRow(f, row, cells); err != nil {
			return "", err
		}
		row++
	}

	if err := setRow(f, row, []interface{}{"", "", "", "ИТОГО", total}); err != nil {
		return "", err
	}

	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("save spreadsheet: %w", err)
	}
	return path, nil
}

func setRow(f *excelize.File, row int, values []interface{}) error {
	for i, v := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheetName, cell, v); err != nil {
			return fmt.Errorf("set cell %s: %w", cell, err)
		}
	}
	return nil
}
