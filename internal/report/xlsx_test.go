package report

import (
	"bytes"
	"testing"
	"time"

	"finledger/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestFilename(t *testing.T) {
	now := time.Date(2024, time.March, 15, 18, 30, 0, 0, time.Local)
	assert.Equal(t, "Clinic_Report_2024-03-15.xlsx", Filename("Clinic_Report", now))
}

func TestWriteXLSX(t *testing.T) {
	rows := []Row{
		{{Key: "Date", Value: "15/03/2024"}, {Key: "Fee", Value: 350000.0}},
		{{Key: "Date", Value: "16/03/2024"}, {Key: "Fee", Value: 200000.0}},
	}
	data, err := WriteXLSX(rows)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{SheetName}, f.GetSheetList())

	got, err := f.GetRows(SheetName)
	require.NoError(t, err)
	require.Len(t, got, 3)
	// Header comes from key insertion order, then one row per mapping.
	assert.Equal(t, []string{"Date", "Fee"}, got[0])
	assert.Equal(t, "15/03/2024", got[1][0])
	assert.Equal(t, "16/03/2024", got[2][0])
}

func TestWriteXLSXEmpty(t *testing.T) {
	data, err := WriteXLSX(nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, []string{SheetName}, f.GetSheetList())
}

func TestClinicRows(t *testing.T) {
	txs := []domain.ClinicTransaction{
		{
			Date:          time.Date(2024, time.March, 15, 0, 0, 0, 0, time.Local),
			ProcedureName: "Scaling",
			PatientName:   "Budi",
			Fee:           decimal.RequireFromString("350000"),
			PaymentMethod: "TRANSFER",
		},
		{
			Date:          time.Date(2024, time.March, 16, 0, 0, 0, 0, time.Local),
			ProcedureName: "Checkup",
			Fee:           decimal.RequireFromString("100000"),
		},
	}
	rows := ClinicRows(txs)
	require.Len(t, rows, 2)

	assert.Equal(t, "15/03/2024", rows[0][0].Value)
	assert.Equal(t, "Scaling", rows[0][1].Value)
	assert.Equal(t, "Budi", rows[0][2].Value)
	assert.Equal(t, "TRANSFER", rows[0][3].Value)

	// Missing optionals fall back to "-" and CASH.
	assert.Equal(t, "-", rows[1][2].Value)
	assert.Equal(t, "CASH", rows[1][3].Value)
}
