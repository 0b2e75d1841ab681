package dashboard

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/Inventario-dashboard/internal/application/dto"
	"github.com/jhoicas/Inventario-dashboard/internal/application/ports"
	"github.com/jhoicas/Inventario-dashboard/internal/domain/entity"
	"github.com/jhoicas/Inventario-dashboard/internal/domain/suggest"
)

// SuggestUseCase sugerencias sin estado para clientes que manejan su propia navegación.
type SuggestUseCase struct{}

// NewSuggestUseCase construye el caso de uso.
func NewSuggestUseCase() *SuggestUseCase { return &SuggestUseCase{} }

// Skus búsqueda en el API y filtro local; como mucho DefaultMaxItems resultados.
func (uc *SuggestUseCase) Skus(ctx context.Context, api ports.InventoryAPI, query string) (*dto.SuggestionListResponse, error) {
	q := strings.TrimSpace(query)
	skus, err := api.ListSkus(ctx, entity.SkuFilter{Query: q})
	if err != nil {
		return nil, fmt.Errorf("sugerir SKUs: %w", err)
	}
	visible := SkuSource.Suggest(skus, q)
	return &dto.SuggestionListResponse{Query: q, Items: suggest.RenderItems(SkuSource, visible, q, -1)}, nil
}

// Warehouses filtro local sobre todas las bodegas.
func (uc *SuggestUseCase) Warehouses(ctx context.Context, api ports.InventoryAPI, query string) (*dto.SuggestionListResponse, error) {
	q := strings.TrimSpace(query)
	whs, err := api.ListWarehouses(ctx)
	if err != nil {
		return nil, fmt.Errorf("sugerir bodegas: %w", err)
	}
	visible := WarehouseSource.Suggest(whs, q)
	return &dto.SuggestionListResponse{Query: q, Items: suggest.RenderItems(WarehouseSource, visible, q, -1)}, nil
}
