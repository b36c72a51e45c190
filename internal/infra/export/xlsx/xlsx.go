// Package xlsx writes the client list as a spreadsheet.
package xlsx

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"interior-billing/go_backend/internal/domain/quote"
)

const sheet = "Quotations"

var headers = []string{"Index No.", "Customer Name", "Mobile", "Date", "Product", "Brand", "With GST", "Total Amount"}

// WriteQuotations writes one row per quotation in the given order, numbered
// from 1 the way the list page shows them.
func WriteQuotations(w io.Writer, qs []quote.Quotation) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	for col, h := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return fmt.Errorf("set header %s: %w", h, err)
		}
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	last, _ := excelize.CoordinatesToCellName(len(headers), 1)
	if err := f.SetCellStyle(sheet, "A1", last, bold); err != nil {
		return err
	}

	money, err := f.NewStyle(&excelize.Style{NumFmt: 4}) // #,##0.00
	if err != nil {
		return err
	}

	for i, q := range qs {
		row := i + 2
		gst := "No"
		if q.WithGST {
			gst = "Yes"
		}
		values := []any{
			i + 1,
			q.CustomerName,
			q.CustomerMobile,
			quote.FormatDate(q.CreatedAt),
			q.ProductName,
			q.Brand,
			gst,
			q.TotalAmount.Round(2).InexactFloat64(),
		}
		start, _ := excelize.CoordinatesToCellName(1, row)
		if err := f.SetSheetRow(sheet, start, &values); err != nil {
			return fmt.Errorf("write row %d: %w", row, err)
		}
		amount, _ := excelize.CoordinatesToCellName(len(headers), row)
		if err := f.SetCellStyle(sheet, amount, amount, money); err != nil {
			return err
		}
	}

	if err := f.SetColWidth(sheet, "B", "B", 24); err != nil {
		return err
	}
	if err := f.SetColWidth(sheet, "E", "E", 24); err != nil {
		return err
	}

	return f.Write(w)
}
