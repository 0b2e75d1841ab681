package dashboard

import (
	"context"
	"errors"

	"github.com/jhoicas/Inventario-dashboard/internal/application/dto"
	"github.com/jhoicas/Inventario-dashboard/internal/application/ports"
	"github.com/jhoicas/Inventario-dashboard/internal/domain"
	"github.com/jhoicas/Inventario-dashboard/internal/domain/entity"
	"github.com/jhoicas/Inventario-dashboard/internal/domain/inventory"
	"github.com/jhoicas/Inventario-dashboard/pkg/logger"
)

// Parámetros de las alertas del resumen.
const (
	AlertsLimit        = 5
	AlertsThreshold    = inventory.LowStockThreshold
	StockoutsLimit     = 1000
	StockoutsThreshold = 0
)

// OverviewUseCase página de resumen: indicadores, alertas de stock bajo y agotados.
type OverviewUseCase struct {
	log *logger.Logger
}

// NewOverviewUseCase construye el caso de uso.
func NewOverviewUseCase(log *logger.Logger) *OverviewUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &OverviewUseCase{log: log.Component("overview")}
}

// Get cada bloque se carga por separado y un fallo solo afecta a su bloque.
// Una credencial rechazada sí se devuelve como error para que la sesión se cierre.
func (uc *OverviewUseCase) Get(ctx context.Context, api ports.InventoryAPI) (*dto.OverviewResponse, error) {
	res := &dto.OverviewResponse{Alerts: []dto.AlertResponse{}}

	stats, err := api.GetStats(ctx)
	if errors.Is(err, domain.ErrUnauthorized) {
		return nil, err
	}
	if err != nil {
		res.StatsError = domain.UserMessage(err, "No se pudieron cargar los indicadores")
	} else {
		res.Stats = toStatsResponse(stats)
	}

	alerts, err := api.ListLowStockAlerts(ctx, AlertsLimit, AlertsThreshold)
	if err != nil {
		res.AlertsError = domain.UserMessage(err, "No se pudieron cargar las alertas")
	} else {
		for _, a := range alerts {
			res.Alerts = append(res.Alerts, dto.AlertResponse{SKU: a.SKU, Name: a.Name, Location: a.Location, Available: a.Available})
		}
	}

	stockouts, err := api.ListLowStockAlerts(ctx, StockoutsLimit, StockoutsThreshold)
	if err != nil {
		res.StockoutsError = domain.UserMessage(err, "No se pudieron cargar los agotados")
	} else {
		res.Stockouts = len(stockouts)
	}

	if stats != nil {
		rows, err := api.ListInventory(ctx, entity.InventoryFilter{})
		if err != nil {
			uc.log.Debug().Err(err).Msg("sin filas para contrastar indicadores")
		} else {
			for _, d := range inventory.CheckStatsConsistency(rows, *stats) {
				uc.log.Warn().Str("field", d.Field).Int("server", d.Server).Int("client", d.Client).Msg("indicador no coincide con el inventario")
				res.Discrepancies = append(res.Discrepancies, dto.DiscrepancyResponse{Field: d.Field, Server: d.Server, Client: d.Client})
			}
		}
	}
	return res, nil
}

func toStatsResponse(s *entity.Stats) *dto.StatsResponse {
	return &dto.StatsResponse{
		Skus:                 s.Skus,
		ActiveSkus:           s.ActiveSkus,
		Warehouses:           s.Warehouses,
		InventoryRows:        s.InventoryRows,
		TotalAvailable:       s.TotalAvailable,
		OwnWarehouses:        s.OwnWarehouses,
		EcommerceWarehouses:  s.EcommerceWarehouses,
		ThirdPartyWarehouses: s.ThirdPartyWarehouses,
	}
}
