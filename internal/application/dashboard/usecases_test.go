package dashboard_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-dashboard/internal/application/dashboard"
	"github.com/jhoicas/Inventario-dashboard/internal/application/dto"
	"github.com/jhoicas/Inventario-dashboard/internal/domain"
	"github.com/jhoicas/Inventario-dashboard/internal/domain/entity"
	"github.com/jhoicas/Inventario-dashboard/internal/infrastructure/ledger"
)

// ─── Inventario ──────────────────────────────────────────────────────────────

func TestInventoryList_TotalesYEstado(t *testing.T) {
	api := newFakeAPI()
	api.rows = sampleRows()
	uc := dashboard.NewInventoryUseCase(nil)

	res, err := uc.List(context.Background(), api, entity.InventoryFilter{})
	require.NoError(t, err)

	require.Len(t, res.Items, 4)
	assert.Equal(t, 7, res.Items[0].TotalForSku)
	assert.Equal(t, "low", res.Items[0].Status)
	assert.Equal(t, "Low stock", res.Items[0].StatusLabel)
	assert.Equal(t, "in_stock", res.Items[2].Status)
	assert.Equal(t, "out_of_stock", res.Items[3].Status)
	assert.Equal(t, dto.InventoryMeta{Records: 4, DistinctSkus: 3, TotalAvailable: 27}, res.Meta)
}

func TestInventoryList_ConjuntoVacio(t *testing.T) {
	res := dashboard.BuildInventoryList(nil)
	assert.NotNil(t, res.Items)
	assert.Empty(t, res.Items)
	assert.Equal(t, dto.InventoryMeta{}, res.Meta)
}

func TestInventorySave_ValidacionAntesDeLaRed(t *testing.T) {
	api := newFakeAPI()
	uc := dashboard.NewInventoryUseCase(nil)

	err := uc.Save(context.Background(), api, "", dto.InventoryRequest{SKU: "A1", Location: "W1", Available: "x"})
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Empty(t, api.created)
	assert.Empty(t, api.skuCalls)
}

func TestInventorySave_ResuelveSkuPorTexto(t *testing.T) {
	api := newFakeAPI()
	api.skus = []entity.SkuRecord{{SKU: "A10"}, {SKU: "A1"}}
	uc := dashboard.NewInventoryUseCase(nil)

	err := uc.Save(context.Background(), api, "", dto.InventoryRequest{SKUQuery: "A1", Location: "W1", Available: "3"})
	require.NoError(t, err)
	require.Len(t, api.created, 1)
	assert.Equal(t, "A1", api.created[0].SKU)

	err = uc.Save(context.Background(), api, "", dto.InventoryRequest{SKUQuery: "A", Location: "W1"})
	assert.Equal(t, dashboard.MsgSkuAndLocation, domain.UserMessage(err, ""))
}

func TestInventorySave_ActualizaConID(t *testing.T) {
	api := newFakeAPI()
	uc := dashboard.NewInventoryUseCase(nil)

	require.NoError(t, uc.Save(context.Background(), api, "r9", dto.InventoryRequest{SKU: "B2", Location: "W2", Reserved: "1"}))
	assert.Equal(t, entity.InventoryRow{SKU: "B2", Location: "W2", Reserved: 1}, api.updated["r9"])
}

// ─── Bodegas ─────────────────────────────────────────────────────────────────

func sampleWarehouses() []entity.WarehouseRecord {
	return []entity.WarehouseRecord{
		{ID: "w2", Code: "W2", Name: "Bogotá Norte", City: "Bogotá"},
		{ID: "w1", Code: "W1", Name: "Ávila", City: "Medellín"},
		{ID: "w3", Code: "W3", Name: "Cali Sur", City: "Cali"},
	}
}

func TestBuildWarehouseList_EstadisticasYOrdenPorNombre(t *testing.T) {
	items := dashboard.BuildWarehouseList(sampleWarehouses(), sampleRows(), dashboard.WarehouseQuery{})

	require.Len(t, items, 3)
	assert.Equal(t, []string{"W1", "W2", "W3"}, codes(items), "Ávila ordena junto a la A")
	assert.Equal(t, 2, items[0].SkuCount)
	assert.Equal(t, 24, items[0].TotalStock)
	assert.Equal(t, 0, items[2].SkuCount, "bodega sin filas")
}

func TestBuildWarehouseList_OrdenNumericoDescendente(t *testing.T) {
	items := dashboard.BuildWarehouseList(sampleWarehouses(), sampleRows(),
		dashboard.WarehouseQuery{Sort: dashboard.SortByTotalStock, Desc: true})
	assert.Equal(t, []string{"W1", "W2", "W3"}, codes(items))

	items = dashboard.BuildWarehouseList(sampleWarehouses(), sampleRows(),
		dashboard.WarehouseQuery{Sort: dashboard.SortBySkuCount})
	assert.Equal(t, []string{"W3", "W2", "W1"}, codes(items), "empates conservan el orden del API")
}

func TestBuildWarehouseList_Busqueda(t *testing.T) {
	items := dashboard.BuildWarehouseList(sampleWarehouses(), nil, dashboard.WarehouseQuery{Search: "bogo"})
	assert.Equal(t, []string{"W2"}, codes(items))

	items = dashboard.BuildWarehouseList(sampleWarehouses(), nil, dashboard.WarehouseQuery{Search: "medellín"})
	assert.Equal(t, []string{"W1"}, codes(items))
}

func TestWarehouseBreakdown(t *testing.T) {
	api := newFakeAPI()
	api.rows = sampleRows()
	uc := dashboard.NewWarehouseUseCase(nil)

	res, err := uc.Breakdown(context.Background(), api, "W1")
	require.NoError(t, err)
	assert.Equal(t, []dto.BreakdownLineResponse{{SKU: "A1", Available: 4, Reserved: 1}, {SKU: "B2", Available: 20, Reserved: 5}}, res.Lines)

	res, err = uc.Breakdown(context.Background(), api, "NOPE")
	require.NoError(t, err)
	assert.Empty(t, res.Lines)
}

func TestWarehouseSave_NombreObligatorio(t *testing.T) {
	api := newFakeAPI()
	uc := dashboard.NewWarehouseUseCase(nil)

	err := uc.Save(context.Background(), api, "", dto.WarehouseRequest{})
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Empty(t, api.createdWh)
}

func codes(items []dto.WarehouseResponse) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.Code)
	}
	return out
}

// ─── SKUs y sugerencias ──────────────────────────────────────────────────────

func TestSkuList_AllEsSinFiltro(t *testing.T) {
	api := newFakeAPI()
	api.skus = []entity.SkuRecord{{SKU: "A1", Name: "Tornillo"}}
	uc := dashboard.NewSkuUseCase(nil)

	res, err := uc.List(context.Background(), api, entity.SkuFilter{Category: "All", Status: "All"})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Total)
}

func TestSuggestSkus_AcotadoYResaltado(t *testing.T) {
	api := newFakeAPI()
	for i := 0; i < 15; i++ {
		api.skus = append(api.skus, entity.SkuRecord{SKU: "AB" + string(rune('a'+i)), Name: "item"})
	}
	uc := dashboard.NewSuggestUseCase()

	res, err := uc.Skus(context.Background(), api, "ab")
	require.NoError(t, err)
	assert.Len(t, res.Items, 10)
	assert.True(t, res.Items[0].Label[0].IsMatch)
	assert.Equal(t, "AB", res.Items[0].Label[0].Text)
}

// ─── Resumen ─────────────────────────────────────────────────────────────────

func TestOverview_BloquesIndependientes(t *testing.T) {
	api := newFakeAPI()
	api.rows = sampleRows()
	api.stats = &entity.Stats{Skus: 3, TotalAvailable: 27, InventoryRows: 4}
	api.alerts = []entity.LowStockAlert{{SKU: "C3", Available: 0}, {SKU: "A1", Available: 7}}

	res, err := dashboard.NewOverviewUseCase(nil).Get(context.Background(), api)
	require.NoError(t, err)
	require.NotNil(t, res.Stats)
	assert.Len(t, res.Alerts, 2)
	assert.Equal(t, 1, res.Stockouts)
	assert.Empty(t, res.Discrepancies)
}

func TestOverview_ReportaDiscrepancias(t *testing.T) {
	api := newFakeAPI()
	api.rows = sampleRows()
	api.stats = &entity.Stats{TotalAvailable: 30, InventoryRows: 4}

	res, err := dashboard.NewOverviewUseCase(nil).Get(context.Background(), api)
	require.NoError(t, err)
	require.Len(t, res.Discrepancies, 1)
	assert.Equal(t, dto.DiscrepancyResponse{Field: "totalAvailable", Server: 30, Client: 27}, res.Discrepancies[0])
}

func TestOverview_FalloParcial(t *testing.T) {
	api := newFakeAPI()
	api.errStats = errors.New("boom")
	api.errAlerts = &domain.APIError{Status: 500, Message: "sin alertas"}

	res, err := dashboard.NewOverviewUseCase(nil).Get(context.Background(), api)
	require.NoError(t, err)
	assert.Nil(t, res.Stats)
	assert.NotEmpty(t, res.StatsError)
	assert.Equal(t, "sin alertas", res.AlertsError)
	assert.Empty(t, res.Discrepancies)
}

func TestOverview_CredencialRechazada(t *testing.T) {
	api := newFakeAPI()
	api.errStats = &domain.APIError{Status: 401}

	_, err := dashboard.NewOverviewUseCase(nil).Get(context.Background(), api)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

// ─── Movimientos ─────────────────────────────────────────────────────────────

func TestLedger_ResumenDeEjemplo(t *testing.T) {
	uc := dashboard.NewLedgerUseCase(ledger.NewSource(""))

	txns, err := uc.Transactions(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, txns.Count)
	assert.Equal(t, 50, txns.Inbound)
	assert.Equal(t, -3, txns.Outbound)
	assert.Equal(t, "2025-11-20", txns.Items[0].Date)

	pos, err := uc.PurchaseOrders(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, pos.Open)
}
