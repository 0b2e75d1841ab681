// Package xlsx genera el reporte de inventario en Excel.
package xlsx

import (
	"bytes"
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/Inventario-dashboard/internal/application/report"
)

const (
	sheetInventory  = "Inventario"
	sheetWarehouses = "Bodegas"
)

var _ report.Generator = (*ExcelizeReportGenerator)(nil)

// ExcelizeReportGenerator implementa report.Generator con excelize: una hoja de inventario
// con fila de totales y otra de bodegas.
type ExcelizeReportGenerator struct{}

// NewExcelizeReportGenerator construye el generador.
func NewExcelizeReportGenerator() *ExcelizeReportGenerator { return &ExcelizeReportGenerator{} }

// ContentType tipo MIME del libro.
func (g *ExcelizeReportGenerator) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

// Generate escribe el libro en memoria.
func (g *ExcelizeReportGenerator) Generate(_ context.Context, r *report.InventoryReport) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(f.GetSheetName(f.GetActiveSheetIndex()), sheetInventory); err != nil {
		return nil, fmt.Errorf("xlsx: renombrar hoja: %w", err)
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("xlsx: estilo: %w", err)
	}

	header := []interface{}{"SKU", "Bodega", "Disponible", "Reservado", "Total SKU", "Estado"}
	if err := f.SetSheetRow(sheetInventory, "A1", &header); err != nil {
		return nil, fmt.Errorf("xlsx: cabecera: %w", err)
	}
	_ = f.SetCellStyle(sheetInventory, "A1", "F1", bold)

	row := 2
	for _, it := range r.Rows {
		values := []interface{}{it.SKU, it.Location, it.Available, it.Reserved, it.TotalForSku, it.StatusLabel}
		if err := setRow(f, sheetInventory, row, values); err != nil {
			return nil, err
		}
		row++
	}
	totals := []interface{}{"Total", fmt.Sprintf("%d SKUs", r.Meta.DistinctSkus), r.Meta.TotalAvailable}
	if err := setRow(f, sheetInventory, row, totals); err != nil {
		return nil, err
	}
	if cell, err := excelize.CoordinatesToCellName(1, row); err == nil {
		end, _ := excelize.CoordinatesToCellName(3, row)
		_ = f.SetCellStyle(sheetInventory, cell, end, bold)
	}
	_ = f.SetColWidth(sheetInventory, "A", "B", 18)
	_ = f.SetColWidth(sheetInventory, "F", "F", 14)

	if _, err := f.NewSheet(sheetWarehouses); err != nil {
		return nil, fmt.Errorf("xlsx: hoja de bodegas: %w", err)
	}
	whHeader := []interface{}{"Código", "Nombre", "Tipo", "Ciudad", "SKUs", "Stock total"}
	if err := f.SetSheetRow(sheetWarehouses, "A1", &whHeader); err != nil {
		return nil, fmt.Errorf("xlsx: cabecera de bodegas: %w", err)
	}
	_ = f.SetCellStyle(sheetWarehouses, "A1", "F1", bold)
	for i, w := range r.Warehouses {
		values := []interface{}{w.Code, w.Name, w.Type, w.City, w.SkuCount, w.TotalStock}
		if err := setRow(f, sheetWarehouses, i+2, values); err != nil {
			return nil, err
		}
	}

	buf := &bytes.Buffer{}
	if err := f.Write(buf); err != nil {
		return nil, fmt.Errorf("xlsx: escribir: %w", err)
	}
	return buf.Bytes(), nil
}

func setRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("xlsx: celda: %w", err)
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("xlsx: fila %d: %w", row, err)
	}
	return nil
}
