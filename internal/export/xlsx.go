package export

import (
	"bytes"
	"fmt"

	"github.com/mateenqamar1122/Hyperlans-sub002/internal/domain"

	"github.com/xuri/excelize/v2"
)

// InvoicesWorkbook renders an owner's invoices as a single-sheet xlsx file.
func InvoicesWorkbook(invoices []domain.Invoice) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Invoices"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	headers := []string{"Number", "Status", "Issue Date", "Due Date", "Currency", "Subtotal", "Tax", "Total"}
	for col, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return nil, fmt.Errorf("failed to write header: %w", err)
		}
	}

	for row, invoice := range invoices {
		values := []any{
			invoice.Number,
			string(invoice.Status),
			invoice.IssueDate.Format("2006-01-02"),
			invoice.DueDate.Format("2006-01-02"),
			invoice.Currency,
			invoice.Subtotal(),
			invoice.TaxAmount(),
			invoice.Total(),
		}
		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return nil, fmt.Errorf("failed to write row: %w", err)
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}

	return buf.Bytes(), nil
}

// ExpensesWorkbook renders an owner's expenses as a single-sheet xlsx file.
func ExpensesWorkbook(expenses []domain.Expense) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Expenses"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	headers := []string{"Date", "Description", "Category", "Amount", "Currency"}
	for col, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return nil, fmt.Errorf("failed to write header: %w", err)
		}
	}

	for row, expense := range expenses {
		values := []any{
			expense.Date.Format("2006-01-02"),
			expense.Description,
			expense.Category,
			expense.Amount,
			expense.Currency,
		}
		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return nil, fmt.Errorf("failed to write row: %w", err)
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}

	return buf.Bytes(), nil
}
