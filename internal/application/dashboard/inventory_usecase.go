// Package dashboard casos de uso de las páginas del dashboard (inventario, bodegas, SKUs,
// resumen, movimientos) y las vistas en vivo que combinan selectores y debounce.
// Cada operación recibe el cliente del API ya atado a la sesión del usuario.
package dashboard

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/Inventario-dashboard/internal/application/dto"
	"github.com/jhoicas/Inventario-dashboard/internal/application/ports"
	"github.com/jhoicas/Inventario-dashboard/internal/domain"
	"github.com/jhoicas/Inventario-dashboard/internal/domain/entity"
	"github.com/jhoicas/Inventario-dashboard/internal/domain/inventory"
	"github.com/jhoicas/Inventario-dashboard/pkg/logger"
)

// InventoryUseCase tabla de inventario y su formulario.
type InventoryUseCase struct {
	log *logger.Logger
}

// NewInventoryUseCase construye el caso de uso.
func NewInventoryUseCase(log *logger.Logger) *InventoryUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &InventoryUseCase{log: log.Component("inventory")}
}

// List filas filtradas con el total por SKU y su estado.
func (uc *InventoryUseCase) List(ctx context.Context, api ports.InventoryAPI, f entity.InventoryFilter) (*dto.InventoryListResponse, error) {
	f = entity.InventoryFilter{SKU: strings.TrimSpace(f.SKU), Location: strings.TrimSpace(f.Location)}
	rows, err := api.ListInventory(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("listar inventario: %w", err)
	}
	res := BuildInventoryList(rows)
	return &res, nil
}

// BuildInventoryList deriva la tabla a partir de las filas (función pura).
func BuildInventoryList(rows []entity.InventoryRow) dto.InventoryListResponse {
	totals := inventory.TotalsBySku(rows)
	items := make([]dto.InventoryRowResponse, 0, len(rows))
	for _, r := range rows {
		st := inventory.StatusForSku(r.SKU, totals)
		items = append(items, dto.InventoryRowResponse{
			ID:          r.ID,
			SKU:         r.SKU,
			Location:    r.Location,
			Available:   r.Available,
			Reserved:    r.Reserved,
			TotalForSku: totals[r.SKU],
			Status:      string(st),
			StatusLabel: st.Label(),
		})
	}
	return dto.InventoryListResponse{
		Items: items,
		Meta: dto.InventoryMeta{
			Records:        len(rows),
			DistinctSkus:   inventory.DistinctSkuCount(rows),
			TotalAvailable: inventory.GrandTotalAvailable(rows),
		},
	}
}

// Save crea (id vacío) o actualiza una fila. La validación local ocurre antes de cualquier llamada;
// si el SKU llega solo como texto se resuelve por coincidencia exacta de código.
func (uc *InventoryUseCase) Save(ctx context.Context, api ports.InventoryAPI, id string, req dto.InventoryRequest) error {
	row, skuQuery, err := ParseInventoryForm(req)
	if err != nil {
		return err
	}
	if row.SKU == "" {
		skus, err := api.ListSkus(ctx, entity.SkuFilter{Query: skuQuery})
		if err != nil {
			return fmt.Errorf("resolver SKU: %w", err)
		}
		sku, ok := ResolveSku(skuQuery, skus)
		if !ok {
			return domain.Invalid("sku", MsgSkuAndLocation)
		}
		row.SKU = sku
	}
	if id == "" {
		err = api.CreateInventory(ctx, row)
	} else {
		err = api.UpdateInventory(ctx, id, row)
	}
	if err != nil {
		return fmt.Errorf("guardar inventario: %w", err)
	}
	uc.log.Info().Str("sku", row.SKU).Str("location", row.Location).Bool("update", id != "").Msg("inventario guardado")
	return nil
}

// Delete elimina una fila.
func (uc *InventoryUseCase) Delete(ctx context.Context, api ports.InventoryAPI, id string) error {
	if err := api.DeleteInventory(ctx, id); err != nil {
		return fmt.Errorf("eliminar inventario: %w", err)
	}
	return nil
}
