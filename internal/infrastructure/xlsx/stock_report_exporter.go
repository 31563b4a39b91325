// Package xlsx exporta reportes a planillas Excel con excelize.
package xlsx

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/pos-api/internal/application/dto"
	"github.com/jhoicas/pos-api/internal/application/inventory"
)

const stockSheet = "Stock"

var stockHeadings = []string{
	"Sucursal", "Código", "Producto N°", "Producto", "Tipo", "UdM",
	"Costo unit.", "Precio venta", "Stock", "Última actualización",
}

var _ inventory.StockReportExporter = (*StockReportExporter)(nil)

// StockReportExporter genera el reporte de stock como .xlsx.
type StockReportExporter struct{}

func NewStockReportExporter() *StockReportExporter { return &StockReportExporter{} }

// ExportStockReport escribe una fila por (sucursal, producto) y devuelve el archivo.
func (e *StockReportExporter) ExportStockReport(rows []dto.StockReportDTO) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", stockSheet); err != nil {
		return nil, fmt.Errorf("xlsx: renombrar hoja: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"00467F"}, Pattern: 1},
	})
	if err != nil {
		return nil, fmt.Errorf("xlsx: estilo: %w", err)
	}
	numberStyle, err := f.NewStyle(&excelize.Style{NumFmt: 4}) // #,##0.00
	if err != nil {
		return nil, fmt.Errorf("xlsx: estilo: %w", err)
	}

	for i, h := range stockHeadings {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(stockSheet, cell, h); err != nil {
			return nil, err
		}
	}
	last, _ := excelize.CoordinatesToCellName(len(stockHeadings), 1)
	if err := f.SetCellStyle(stockSheet, "A1", last, headerStyle); err != nil {
		return nil, err
	}

	for i, r := range rows {
		values := []any{
			r.BranchName,
			r.BranchCode,
			r.ProductNo,
			r.ProductName,
			r.ProductTypeName,
			r.UoM,
			r.BuyingUnitPrice.InexactFloat64(),
			r.SellingUnitPrice.InexactFloat64(),
			r.OnHand.InexactFloat64(),
			"",
		}
		if !r.LastUpdated.IsZero() {
			values[9] = r.LastUpdated.Format("2006-01-02 15:04")
		}
		start, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(stockSheet, start, &values); err != nil {
			return nil, fmt.Errorf("xlsx: fila %d: %w", i+2, err)
		}
	}
	if len(rows) > 0 {
		from, _ := excelize.CoordinatesToCellName(7, 2)
		to, _ := excelize.CoordinatesToCellName(9, len(rows)+1)
		if err := f.SetCellStyle(stockSheet, from, to, numberStyle); err != nil {
			return nil, err
		}
	}
	_ = f.SetColWidth(stockSheet, "A", "A", 20)
	_ = f.SetColWidth(stockSheet, "D", "D", 32)
	_ = f.SetColWidth(stockSheet, "J", "J", 18)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx: escribir: %w", err)
	}
	return buf.Bytes(), nil
}
