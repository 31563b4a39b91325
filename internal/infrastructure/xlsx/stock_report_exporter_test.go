package xlsx_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/pos-api/internal/application/dto"
	"github.com/jhoicas/pos-api/internal/infrastructure/xlsx"
)

func TestExportStockReport_EncabezadosYFilas(t *testing.T) {
	rows := []dto.StockReportDTO{
		{BranchName: "Centro", BranchCode: "C01", ProductNo: "P-1", ProductName: "Agua", UoM: "Bottle",
			BuyingUnitPrice: decimal.NewFromInt(6), SellingUnitPrice: decimal.NewFromInt(10),
			OnHand: decimal.NewFromInt(15), LastUpdated: time.Date(2026, 1, 2, 3, 4, 0, 0, time.UTC)},
		{BranchName: "Norte", BranchCode: "N01", ProductNo: "P-2", ProductName: "Jugo", OnHand: decimal.RequireFromString("-2.5")},
	}

	out, err := xlsx.NewStockReportExporter().ExportStockReport(rows)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()

	got, err := f.GetRows("Stock")
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "Sucursal", got[0][0])
	assert.Equal(t, "Agua", got[1][3])
	assert.Equal(t, "2026-01-02 03:04", got[1][9])
	assert.Equal(t, "Norte", got[2][0])

	raw, err := f.GetCellValue("Stock", "I3", excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	assert.Equal(t, "-2.5", raw)
}

func TestExportStockReport_SinFilas(t *testing.T) {
	out, err := xlsx.NewStockReportExporter().ExportStockReport(nil)
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}
