// Package report exporta la tabla de inventario (XLSX o PDF).
package report

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jhoicas/Inventario-dashboard/internal/application/dashboard"
	"github.com/jhoicas/Inventario-dashboard/internal/application/dto"
	"github.com/jhoicas/Inventario-dashboard/internal/application/ports"
	"github.com/jhoicas/Inventario-dashboard/internal/domain/entity"
	"github.com/jhoicas/Inventario-dashboard/pkg/logger"
)

// Formatos soportados.
const (
	FormatXLSX = "xlsx"
	FormatPDF  = "pdf"
)

// ErrUnknownFormat formato de exportación no soportado.
var ErrUnknownFormat = errors.New("formato de reporte no soportado")

// InventoryReport datos de un reporte, ya agregados.
type InventoryReport struct {
	Title       string
	GeneratedAt time.Time
	Filter      entity.InventoryFilter
	Rows        []dto.InventoryRowResponse
	Meta        dto.InventoryMeta
	Warehouses  []dto.WarehouseResponse
}

// Generator puerto de salida: serializa un reporte en un formato.
type Generator interface {
	Generate(ctx context.Context, r *InventoryReport) ([]byte, error)
	ContentType() string
}

// File reporte generado.
type File struct {
	Name        string
	ContentType string
	Data        []byte
}

// UseCase arma el reporte desde el API y lo delega al generador del formato pedido.
type UseCase struct {
	generators map[string]Generator
	log        *logger.Logger
	now        func() time.Time
}

// NewUseCase generators indexados por formato.
func NewUseCase(generators map[string]Generator, log *logger.Logger) *UseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &UseCase{generators: generators, log: log.Component("report"), now: time.Now}
}

// Build consulta inventario y bodegas y calcula totales.
func (uc *UseCase) Build(ctx context.Context, api ports.InventoryAPI, f entity.InventoryFilter) (*InventoryReport, error) {
	rows, err := api.ListInventory(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("reporte: inventario: %w", err)
	}
	whs, err := api.ListWarehouses(ctx)
	if err != nil {
		return nil, fmt.Errorf("reporte: bodegas: %w", err)
	}
	list := dashboard.BuildInventoryList(rows)
	return &InventoryReport{
		Title:       "Reporte de inventario",
		GeneratedAt: uc.now(),
		Filter:      f,
		Rows:        list.Items,
		Meta:        list.Meta,
		Warehouses:  dashboard.BuildWarehouseList(whs, rows, dashboard.WarehouseQuery{}),
	}, nil
}

// Export genera el archivo en el formato pedido. El formato se valida antes de llamar al API.
func (uc *UseCase) Export(ctx context.Context, api ports.InventoryAPI, format string, f entity.InventoryFilter) (*File, error) {
	gen, ok := uc.generators[format]
	if !ok {
		return nil, ErrUnknownFormat
	}
	r, err := uc.Build(ctx, api, f)
	if err != nil {
		return nil, err
	}
	data, err := gen.Generate(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("reporte: generar %s: %w", format, err)
	}
	uc.log.Info().Str("format", format).Int("rows", len(r.Rows)).Int("bytes", len(data)).Msg("reporte generado")
	return &File{
		Name:        fmt.Sprintf("inventario_%s.%s", r.GeneratedAt.Format("20060102_150405"), format),
		ContentType: gen.ContentType(),
		Data:        data,
	}, nil
}
