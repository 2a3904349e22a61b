package pos

import (
	"fmt"
	"io"

	"github.com/360EntSecGroup-Skylar/excelize"
	"github.com/gocarina/gocsv"
	"github.com/pkg/errors"
	"github.com/talkincode/toughpos/internal/domain"
)

type invoiceCSVRow struct {
	ID       int64   `csv:"id"`
	Date     string  `csv:"date"`
	Client   string  `csv:"client"`
	Items    int     `csv:"items"`
	Units    int     `csv:"units"`
	Subtotal float64 `csv:"subtotal"`
	Tax      float64 `csv:"tax"`
	Total    float64 `csv:"total"`
}

// ExportInvoicesCSV writes one day of invoices as CSV.
func ExportInvoicesCSV(w io.Writer, invoices []domain.Invoice) error {
	rows := make([]invoiceCSVRow, 0, len(invoices))
	for _, inv := range invoices {
		rows = append(rows, invoiceCSVRow{
			ID:       inv.ID,
			Date:     inv.DateISO,
			Client:   inv.Client,
			Items:    len(inv.Items),
			Units:    inv.UnitsSold(),
			Subtotal: inv.Subtotal,
			Tax:      inv.Tax,
			Total:    inv.Total,
		})
	}
	return errors.Wrap(gocsv.Marshal(&rows, w), "write csv")
}

// ExportDailyReportXLSX writes the day summary, the product ranking and the
// invoice list as a spreadsheet.
func ExportDailyReportXLSX(w io.Writer, summary domain.DailySummary,
	top []domain.ProductSales, invoices []domain.Invoice) error {

	f := excelize.NewFile()
	sheet := "Sheet1"

	f.SetCellValue(sheet, "A1", "Daily sales report")
	f.SetCellValue(sheet, "B1", summary.Date)
	f.SetCellValue(sheet, "A2", "Total sales")
	f.SetCellValue(sheet, "B2", summary.TotalSales)
	f.SetCellValue(sheet, "A3", "Invoices")
	f.SetCellValue(sheet, "B3", summary.InvoiceCount)
	f.SetCellValue(sheet, "A4", "Units sold")
	f.SetCellValue(sheet, "B4", summary.UnitsSold)
	f.SetCellValue(sheet, "A5", "Average ticket")
	f.SetCellValue(sheet, "B5", summary.AverageTicket)

	row := 7
	f.SetCellValue(sheet, cell("A", row), "Top products")
	row++
	f.SetCellValue(sheet, cell("A", row), "name")
	f.SetCellValue(sheet, cell("B", row), "quantity")
	f.SetCellValue(sheet, cell("C", row), "total")
	for _, p := range top {
		row++
		f.SetCellValue(sheet, cell("A", row), p.Name)
		f.SetCellValue(sheet, cell("B", row), p.Quantity)
		f.SetCellValue(sheet, cell("C", row), p.Total)
	}

	row += 2
	f.SetCellValue(sheet, cell("A", row), "Invoices")
	row++
	f.SetCellValue(sheet, cell("A", row), "id")
	f.SetCellValue(sheet, cell("B", row), "date")
	f.SetCellValue(sheet, cell("C", row), "client")
	f.SetCellValue(sheet, cell("D", row), "subtotal")
	f.SetCellValue(sheet, cell("E", row), "tax")
	f.SetCellValue(sheet, cell("F", row), "total")
	for _, inv := range invoices {
		row++
		f.SetCellValue(sheet, cell("A", row), inv.ID)
		f.SetCellValue(sheet, cell("B", row), inv.Date)
		f.SetCellValue(sheet, cell("C", row), inv.Client)
		f.SetCellValue(sheet, cell("D", row), inv.Subtotal)
		f.SetCellValue(sheet, cell("E", row), inv.Tax)
		f.SetCellValue(sheet, cell("F", row), inv.Total)
	}

	return errors.Wrap(f.Write(w), "write xlsx")
}

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}
