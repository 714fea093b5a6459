package service

import (
	"fmt"
	"io"

	"github.com/EnmaSantos/office-snack-app/internal/model"

	"github.com/xuri/excelize/v2"
)

const XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// WriteTransactionsXLSX renders a transaction listing as a single-sheet workbook.
func WriteTransactionsXLSX(w io.Writer, views []model.TransactionView) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Transactions"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return err
	}

	headers := []string{"Date", "User", "Email", "Type", "Snack", "Unit Price", "Amount"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	for idx, v := range views {
		row := idx + 2
		snackName := ""
		if v.SnackName != nil {
			snackName = *v.SnackName
		}
		unitPrice := ""
		if v.SnackPrice.Valid {
			unitPrice = v.SnackPrice.Decimal.StringFixed(2)
		}
		amount, _ := v.Amount.Float64()

		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), v.CreatedAt.Format("2006-01-02 15:04:05"))
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), v.UserDisplayName)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), v.UserEmail)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), string(v.Kind))
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), snackName)
		f.SetCellValue(sheet, fmt.Sprintf("F%d", row), unitPrice)
		f.SetCellValue(sheet, fmt.Sprintf("G%d", row), amount)
	}

	f.SetColWidth(sheet, "A", "A", 20)
	f.SetColWidth(sheet, "B", "C", 28)
	f.SetColWidth(sheet, "D", "D", 12)
	f.SetColWidth(sheet, "E", "E", 24)
	f.SetColWidth(sheet, "F", "G", 12)

	return f.Write(w)
}

// WriteShoppingListXLSX renders a compiled shopping list with a total row.
func WriteShoppingListXLSX(w io.Writer, list *ShoppingList) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Shopping List"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return err
	}

	headers := []string{"Item", "Quantity", "Current Stock", "Unit Price", "Estimated Cost", "Notes"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, item := range list.Items {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), item.Name)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), item.Quantity)
		if item.CurrentStock != nil {
			f.SetCellValue(sheet, fmt.Sprintf("C%d", row), *item.CurrentStock)
		}
		if item.UnitPrice.Valid {
			f.SetCellValue(sheet, fmt.Sprintf("D%d", row), item.UnitPrice.Decimal.StringFixed(2))
			f.SetCellValue(sheet, fmt.Sprintf("E%d", row), item.EstimatedCost.StringFixed(2))
		}
		f.SetCellValue(sheet, fmt.Sprintf("F%d", row), item.Notes)
		row++
	}

	f.SetCellValue(sheet, fmt.Sprintf("A%d", row), "Total")
	f.SetCellValue(sheet, fmt.Sprintf("B%d", row), list.TotalQuantity)
	f.SetCellValue(sheet, fmt.Sprintf("E%d", row), list.EstimatedTotal.StringFixed(2))

	f.SetColWidth(sheet, "A", "A", 28)
	f.SetColWidth(sheet, "B", "E", 14)
	f.SetColWidth(sheet, "F", "F", 36)

	return f.Write(w)
}
