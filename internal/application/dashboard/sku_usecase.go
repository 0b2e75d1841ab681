package dashboard

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/Inventario-dashboard/internal/application/dto"
	"github.com/jhoicas/Inventario-dashboard/internal/application/ports"
	"github.com/jhoicas/Inventario-dashboard/internal/domain/entity"
	"github.com/jhoicas/Inventario-dashboard/pkg/logger"
)

// filterAll valor del selector de la UI que equivale a "sin filtro".
const filterAll = "All"

// SkuUseCase catálogo de SKUs.
type SkuUseCase struct {
	log *logger.Logger
}

// NewSkuUseCase construye el caso de uso.
func NewSkuUseCase(log *logger.Logger) *SkuUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &SkuUseCase{log: log.Component("skus")}
}

// List catálogo filtrado por texto, categoría y estado (el filtrado lo hace el API).
func (uc *SkuUseCase) List(ctx context.Context, api ports.InventoryAPI, f entity.SkuFilter) (*dto.SkuListResponse, error) {
	f = entity.SkuFilter{
		Query:    strings.TrimSpace(f.Query),
		Category: normalizeAll(f.Category),
		Status:   normalizeAll(f.Status),
	}
	skus, err := api.ListSkus(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("listar SKUs: %w", err)
	}
	items := make([]dto.SkuResponse, 0, len(skus))
	for _, s := range skus {
		items = append(items, dto.SkuResponse{ID: s.ID, SKU: s.SKU, Name: s.Name, Category: s.Category, Status: s.Status})
	}
	return &dto.SkuListResponse{Items: items, Total: len(items)}, nil
}

// Save crea (id vacío) o actualiza un SKU.
func (uc *SkuUseCase) Save(ctx context.Context, api ports.InventoryAPI, id string, req dto.SkuRequest) error {
	s, err := ParseSkuForm(req)
	if err != nil {
		return err
	}
	if id == "" {
		err = api.CreateSku(ctx, s)
	} else {
		err = api.UpdateSku(ctx, id, s)
	}
	if err != nil {
		return fmt.Errorf("guardar SKU: %w", err)
	}
	uc.log.Info().Str("name", s.Name).Bool("update", id != "").Msg("SKU guardado")
	return nil
}

// Delete elimina un SKU.
func (uc *SkuUseCase) Delete(ctx context.Context, api ports.InventoryAPI, id string) error {
	if err := api.DeleteSku(ctx, id); err != nil {
		return fmt.Errorf("eliminar SKU: %w", err)
	}
	return nil
}

func normalizeAll(v string) string {
	v = strings.TrimSpace(v)
	if strings.EqualFold(v, filterAll) {
		return ""
	}
	return v
}
