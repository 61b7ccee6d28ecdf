// Package report converts flat row mappings into downloadable xlsx
// spreadsheets.
package report

import (
	"time"

	"finledger/internal/domain"

	"github.com/xuri/excelize/v2" // xlsx writer
)

// SheetName is the single sheet every export carries
const SheetName = "Data"

// Cell is one key/value pair of a row. Rows are ordered slices rather than
// maps so the column order follows insertion order.
type Cell struct {
	Key   string
	Value any
}

// Row is an ordered sequence of cells
type Row []Cell

// Filename builds the canonical export file name, "{stem}_{yyyy-MM-dd}.xlsx"
func Filename(stem string, now time.Time) string {
	return stem + "_" + now.Format("2006-01-02") + ".xlsx"
}

// WriteXLSX renders the rows into a single-sheet workbook. The header row
// is taken from the first row's keys; every row is expected to carry the
// same keys in the same order.
func WriteXLSX(rows []Row) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()
	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return nil, err
	}
	if len(rows) > 0 {
		for col, cell := range rows[0] {
			name, err := excelize.CoordinatesToCellName(col+1, 1)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(SheetName, name, cell.Key); err != nil {
				return nil, err
			}
		}
	}
	for i, row := range rows {
		for col, cell := range row {
			name, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(SheetName, name, cell.Value); err != nil {
				return nil, err
			}
		}
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ClinicRows flattens clinic transactions into export rows with the
// ledger's column layout.
func ClinicRows(txs []domain.ClinicTransaction) []Row {
	rows := make([]Row, 0, len(txs))
	for _, tx := range txs {
		patient := tx.PatientName
		if patient == "" {
			patient = "-"
		}
		rows = append(rows, Row{
			{Key: "Date", Value: tx.Date.Format("02/01/2006")},
			{Key: "Procedure", Value: tx.ProcedureName},
			{Key: "Patient", Value: patient},
			{Key: "Payment Method", Value: tx.DisplayPaymentMethod()},
			{Key: "Fee", Value: tx.Fee.InexactFloat64()},
		})
	}
	return rows
}
