package export

import (
	"fmt"
	"io"

	"github.com/Dan9191/home-financing/internal/models"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// Sheet names and file metadata of the exported workbook
const (
	BuybackSheet   = "Buyback Model"
	FixedLoanSheet = "Traditional Loan Model"
	FileName       = "simulation_data.xlsx"
	ContentType    = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

var (
	BuybackColumns = []string{
		"Month",
		"EMI (INR)",
		"Rental Income (INR)",
		"Buyback Amount (INR)",
		"Lender Ownership (%)",
		"Customer Ownership (%)",
		"Lender Share Value (INR)",
		"Customer Share Value (INR)",
	}
	FixedLoanColumns = []string{
		"Month",
		"EMI (INR)",
		"Interest Paid (INR)",
		"Principal Paid (INR)",
		"Outstanding Balance (INR)",
	}
)

// WriteWorkbook writes both schedules of a comparison as an xlsx workbook
func WriteWorkbook(w io.Writer, cmp *models.Comparison) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", BuybackSheet); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}
	if _, err := f.NewSheet(FixedLoanSheet); err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}

	buyback := make([][]interface{}, 0, len(cmp.Buyback.Schedule))
	for _, r := range cmp.Buyback.Schedule {
		buyback = append(buyback, []interface{}{
			r.Month,
			round2(r.Payment),
			round2(r.RentalIncome),
			round2(r.BuybackAmount),
			round2(r.LenderPercent),
			round2(r.CustomerPercent),
			round2(r.LenderValue),
			round2(r.CustomerValue),
		})
	}
	if err := writeSheet(f, BuybackSheet, BuybackColumns, buyback); err != nil {
		return err
	}

	loan := make([][]interface{}, 0, len(cmp.FixedLoan.Schedule))
	for _, r := range cmp.FixedLoan.Schedule {
		loan = append(loan, []interface{}{
			r.Month,
			round2(r.Payment),
			round2(r.Interest),
			round2(r.Principal),
			round2(r.Balance),
		})
	}
	if err := writeSheet(f, FixedLoanSheet, FixedLoanColumns, loan); err != nil {
		return err
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func writeSheet(f *excelize.File, sheet string, columns []string, rows [][]interface{}) error {
	header := make([]interface{}, len(columns))
	for i, c := range columns {
		header[i] = c
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write %s header: %w", sheet, err)
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write %s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}

func round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}
