package dashboard

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/jhoicas/Inventario-dashboard/internal/application/dto"
	"github.com/jhoicas/Inventario-dashboard/internal/application/ports"
	"github.com/jhoicas/Inventario-dashboard/internal/domain/entity"
	"github.com/jhoicas/Inventario-dashboard/internal/domain/inventory"
	"github.com/jhoicas/Inventario-dashboard/internal/domain/suggest"
	"github.com/jhoicas/Inventario-dashboard/pkg/logger"
)

// Columnas de orden de la tabla de bodegas.
const (
	SortByName       = "name"
	SortByCode       = "code"
	SortBySkuCount   = "skuCount"
	SortByTotalStock = "totalStock"
)

// WarehouseQuery búsqueda y orden de la tabla de bodegas. Valores desconocidos caen a name/asc.
type WarehouseQuery struct {
	Search string
	Sort   string
	Desc   bool
}

// WarehouseUseCase tabla de bodegas con estadísticas derivadas del inventario.
type WarehouseUseCase struct {
	log *logger.Logger
}

// NewWarehouseUseCase construye el caso de uso.
func NewWarehouseUseCase(log *logger.Logger) *WarehouseUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &WarehouseUseCase{log: log.Component("warehouses")}
}

// List bodegas con SKUs distintos y stock total, filtradas y ordenadas.
func (uc *WarehouseUseCase) List(ctx context.Context, api ports.InventoryAPI, q WarehouseQuery) (*dto.WarehouseListResponse, error) {
	whs, err := api.ListWarehouses(ctx)
	if err != nil {
		return nil, fmt.Errorf("listar bodegas: %w", err)
	}
	rows, err := api.ListInventory(ctx, entity.InventoryFilter{})
	if err != nil {
		return nil, fmt.Errorf("listar inventario: %w", err)
	}
	items := BuildWarehouseList(whs, rows, q)
	return &dto.WarehouseListResponse{Items: items, Total: len(items)}, nil
}

// BuildWarehouseList une bodegas y agregados, filtra por nombre/código/ciudad y ordena (función pura).
// El orden es estable: empates conservan el orden del API.
func BuildWarehouseList(whs []entity.WarehouseRecord, rows []entity.InventoryRow, q WarehouseQuery) []dto.WarehouseResponse {
	stats := inventory.TotalsByWarehouse(rows)
	if s := strings.TrimSpace(q.Search); s != "" {
		whs = suggest.Filter(whs, s, WarehouseSource.Fields, len(whs))
	}
	items := make([]dto.WarehouseResponse, 0, len(whs))
	for _, w := range whs {
		agg := stats[w.Code]
		items = append(items, dto.WarehouseResponse{
			ID:         w.ID,
			Code:       w.Code,
			Name:       w.Name,
			Type:       w.Type,
			City:       w.City,
			IsActive:   w.IsActive,
			SkuCount:   agg.DistinctSkuCount,
			TotalStock: agg.TotalStock,
		})
	}

	col := collate.New(language.Spanish)
	var cmp func(a, b dto.WarehouseResponse) int
	switch q.Sort {
	case SortByCode:
		cmp = func(a, b dto.WarehouseResponse) int { return col.CompareString(a.Code, b.Code) }
	case SortBySkuCount:
		cmp = func(a, b dto.WarehouseResponse) int { return a.SkuCount - b.SkuCount }
	case SortByTotalStock:
		cmp = func(a, b dto.WarehouseResponse) int { return a.TotalStock - b.TotalStock }
	default:
		cmp = func(a, b dto.WarehouseResponse) int { return col.CompareString(a.Name, b.Name) }
	}
	sort.SliceStable(items, func(i, j int) bool {
		c := cmp(items[i], items[j])
		if q.Desc {
			return c > 0
		}
		return c < 0
	})
	return items
}

// Breakdown desglose por SKU de la bodega code, en el orden de las filas.
func (uc *WarehouseUseCase) Breakdown(ctx context.Context, api ports.InventoryAPI, code string) (*dto.WarehouseBreakdownResponse, error) {
	rows, err := api.ListInventory(ctx, entity.InventoryFilter{})
	if err != nil {
		return nil, fmt.Errorf("listar inventario: %w", err)
	}
	lines := inventory.BreakdownForWarehouse(rows, code)
	out := make([]dto.BreakdownLineResponse, 0, len(lines))
	for _, l := range lines {
		out = append(out, dto.BreakdownLineResponse{SKU: l.SKU, Available: l.Available, Reserved: l.Reserved})
	}
	return &dto.WarehouseBreakdownResponse{Code: code, Lines: out}, nil
}

// Save crea (id vacío) o actualiza una bodega.
func (uc *WarehouseUseCase) Save(ctx context.Context, api ports.InventoryAPI, id string, req dto.WarehouseRequest) error {
	w, err := ParseWarehouseForm(req, id != "")
	if err != nil {
		return err
	}
	if id == "" {
		err = api.CreateWarehouse(ctx, w)
	} else {
		err = api.UpdateWarehouse(ctx, id, w)
	}
	if err != nil {
		return fmt.Errorf("guardar bodega: %w", err)
	}
	uc.log.Info().Str("name", w.Name).Bool("update", id != "").Msg("bodega guardada")
	return nil
}

// Delete elimina una bodega.
func (uc *WarehouseUseCase) Delete(ctx context.Context, api ports.InventoryAPI, id string) error {
	if err := api.DeleteWarehouse(ctx, id); err != nil {
		return fmt.Errorf("eliminar bodega: %w", err)
	}
	return nil
}
