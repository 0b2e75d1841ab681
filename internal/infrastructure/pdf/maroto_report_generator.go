// Package pdf genera el reporte de inventario en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + filtros        │  Fecha de generación     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: Registros / SKUs distintos / Total disponible      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: SKU | Bodega | Disp. | Reserv. | Total SKU | Estado │
//	│  ─────────────────────────────────────────────────────────  │
//	│  BODEGAS: Código | Nombre | SKUs | Stock total              │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/Inventario-dashboard/internal/application/report"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorDanger  = &props.Color{Red: 170, Green: 30, Blue: 30}
	colorWarning = &props.Color{Red: 190, Green: 120, Blue: 0}
)

var _ report.Generator = (*MarotoReportGenerator)(nil)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa report.Generator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// ContentType tipo MIME del documento.
func (g *MarotoReportGenerator) ContentType() string { return "application/pdf" }

// Generate genera el PDF y devuelve sus bytes.
func (g *MarotoReportGenerator) Generate(_ context.Context, r *report.InventoryReport) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(r.Title, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(r))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRow(r))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(inventoryHeaderRow())
	m.AddRows(inventoryRows(r)...)

	if len(r.Warehouses) > 0 {
		m.AddRows(line.NewRow(4))
		m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
		m.AddRows(warehouseHeaderRow())
		m.AddRows(warehouseRows(r)...)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(r *report.InventoryReport) core.Row {
	filtros := "Sin filtros"
	if r.Filter.SKU != "" || r.Filter.Location != "" {
		filtros = fmt.Sprintf("SKU: %s   |   Bodega: %s", nonEmpty(r.Filter.SKU, "—"), nonEmpty(r.Filter.Location, "—"))
	}
	return row.New(16).Add(
		col.New(8).Add(
			text.New(r.Title, props.Text{Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1}),
			text.New(filtros, props.Text{Size: 8, Top: 9, Color: colorGray}),
		),
		col.New(4).Add(
			text.New("Generado: "+r.GeneratedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
		),
	)
}

func summaryRow(r *report.InventoryReport) core.Row {
	kpi := func(label, value string) core.Col {
		return col.New(4).Add(
			text.New(label, props.Text{Size: 7, Color: colorGray, Top: 1, Align: align.Center}),
			text.New(value, props.Text{Style: fontstyle.Bold, Size: 11, Top: 5, Align: align.Center}),
		)
	}
	return row.New(13).Add(
		kpi("REGISTROS", formatInt(r.Meta.Records)),
		kpi("SKUS DISTINTOS", formatInt(r.Meta.DistinctSkus)),
		kpi("TOTAL DISPONIBLE", formatInt(r.Meta.TotalAvailable)+" uds"),
	)
}

func headerCol(label string, size int, a align.Type) core.Col {
	return col.New(size).Add(text.New(label, props.Text{
		Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2, Left: 1, Right: 1,
	}))
}

func inventoryHeaderRow() core.Row {
	return row.New(8).Add(
		headerCol("SKU", 3, align.Left),
		headerCol("Bodega", 2, align.Left),
		headerCol("Disp.", 1, align.Right),
		headerCol("Reserv.", 2, align.Right),
		headerCol("Total SKU", 2, align.Right),
		headerCol("Estado", 2, align.Center),
	)
}

// inventoryRows una fila por registro; el estado se colorea según el total del SKU.
func inventoryRows(r *report.InventoryReport) []core.Row {
	out := make([]core.Row, 0, len(r.Rows))
	for _, it := range r.Rows {
		statusColor := &props.Color{}
		switch it.Status {
		case "out_of_stock":
			statusColor = colorDanger
		case "low":
			statusColor = colorWarning
		}
		out = append(out, row.New(6).Add(
			col.New(3).Add(text.New(it.SKU, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(nonEmpty(it.Location, "—"), props.Text{Size: 8, Top: 1})),
			col.New(1).Add(text.New(formatInt(it.Available), props.Text{Size: 8, Align: align.Right, Top: 1})),
			col.New(2).Add(text.New(formatInt(it.Reserved), props.Text{Size: 8, Align: align.Right, Top: 1})),
			col.New(2).Add(text.New(formatInt(it.TotalForSku), props.Text{Size: 8, Align: align.Right, Top: 1})),
			col.New(2).Add(text.New(it.StatusLabel, props.Text{Size: 8, Align: align.Center, Top: 1, Color: statusColor})),
		))
	}
	return out
}

func warehouseHeaderRow() core.Row {
	return row.New(8).Add(
		headerCol("Código", 2, align.Left),
		headerCol("Nombre", 5, align.Left),
		headerCol("SKUs", 2, align.Right),
		headerCol("Stock total", 3, align.Right),
	)
}

func warehouseRows(r *report.InventoryReport) []core.Row {
	out := make([]core.Row, 0, len(r.Warehouses))
	for _, w := range r.Warehouses {
		out = append(out, row.New(6).Add(
			col.New(2).Add(text.New(w.Code, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(5).Add(text.New(w.Name, props.Text{Size: 8, Top: 1})),
			col.New(2).Add(text.New(formatInt(w.SkuCount), props.Text{Size: 8, Align: align.Right, Top: 1})),
			col.New(3).Add(text.New(formatInt(w.TotalStock), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return out
}

// ── Utilidades ────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

// formatInt separador de miles con punto (1.234.567).
func formatInt(n int) string {
	s := strconv.Itoa(n)
	neg := ""
	if n < 0 {
		neg, s = "-", s[1:]
	}
	if len(s) <= 3 {
		return neg + s
	}
	var out []byte
	pre := len(s) % 3
	if pre > 0 {
		out = append(out, s[:pre]...)
	}
	for i := pre; i < len(s); i += 3 {
		if len(out) > 0 {
			out = append(out, '.')
		}
		out = append(out, s[i:i+3]...)
	}
	return neg + string(out)
}
