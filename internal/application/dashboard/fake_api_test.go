package dashboard_test

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/jhoicas/Inventario-dashboard/internal/domain/entity"
)

// fakeAPI implementación en memoria de ports.InventoryAPI.
type fakeAPI struct {
	mu         sync.Mutex
	rows       []entity.InventoryRow
	skus       []entity.SkuRecord
	warehouses []entity.WarehouseRecord
	stats      *entity.Stats
	alerts     []entity.LowStockAlert

	// errores forzados por operación
	errInventory error
	errSkus      error
	errStats     error
	errAlerts    error

	// inventoryDelay retraso por filtro SKU (simula respuestas lentas).
	inventoryDelay map[string]time.Duration

	inventoryCalls []entity.InventoryFilter
	skuCalls       []string
	created        []entity.InventoryRow
	updated        map[string]entity.InventoryRow
	createdWh      []entity.WarehouseRecord
	createdSkus    []entity.SkuRecord
	deleted        []string
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{updated: map[string]entity.InventoryRow{}}
}

func (f *fakeAPI) ListSkus(_ context.Context, flt entity.SkuFilter) ([]entity.SkuRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.skuCalls = append(f.skuCalls, flt.Query)
	if f.errSkus != nil {
		return nil, f.errSkus
	}
	var out []entity.SkuRecord
	q := strings.ToLower(flt.Query)
	for _, s := range f.skus {
		if q == "" || strings.Contains(strings.ToLower(s.SKU), q) || strings.Contains(strings.ToLower(s.Name), q) {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeAPI) CreateSku(_ context.Context, s entity.SkuRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.createdSkus = append(f.createdSkus, s)
	return nil
}

func (f *fakeAPI) UpdateSku(context.Context, string, entity.SkuRecord) error { return nil }

func (f *fakeAPI) DeleteSku(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeAPI) ListWarehouses(context.Context) ([]entity.WarehouseRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]entity.WarehouseRecord(nil), f.warehouses...), nil
}

func (f *fakeAPI) CreateWarehouse(_ context.Context, w entity.WarehouseRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.createdWh = append(f.createdWh, w)
	return nil
}

func (f *fakeAPI) UpdateWarehouse(context.Context, string, entity.WarehouseRecord) error { return nil }
func (f *fakeAPI) DeleteWarehouse(context.Context, string) error                         { return nil }

func (f *fakeAPI) ListInventory(ctx context.Context, flt entity.InventoryFilter) ([]entity.InventoryRow, error) {
	f.mu.Lock()
	f.inventoryCalls = append(f.inventoryCalls, flt)
	delay := f.inventoryDelay[flt.SKU]
	err := f.errInventory
	var out []entity.InventoryRow
	for _, r := range f.rows {
		if (flt.SKU == "" || strings.Contains(r.SKU, flt.SKU)) && (flt.Location == "" || r.Location == flt.Location) {
			out = append(out, r)
		}
	}
	f.mu.Unlock()

	if delay > 0 {
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (f *fakeAPI) CreateInventory(_ context.Context, r entity.InventoryRow) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.created = append(f.created, r)
	return nil
}

func (f *fakeAPI) UpdateInventory(_ context.Context, id string, r entity.InventoryRow) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updated[id] = r
	return nil
}

func (f *fakeAPI) DeleteInventory(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeAPI) GetStats(context.Context) (*entity.Stats, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.errStats != nil {
		return nil, f.errStats
	}
	return f.stats, nil
}

func (f *fakeAPI) ListLowStockAlerts(_ context.Context, limit, threshold int) ([]entity.LowStockAlert, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.errAlerts != nil {
		return nil, f.errAlerts
	}
	var out []entity.LowStockAlert
	for _, a := range f.alerts {
		if a.Available <= threshold && len(out) < limit {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAPI) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.inventoryCalls)
}

func sampleRows() []entity.InventoryRow {
	return []entity.InventoryRow{
		{ID: "1", SKU: "A1", Location: "W1", Available: 4, Reserved: 1},
		{ID: "2", SKU: "A1", Location: "W2", Available: 3},
		{ID: "3", SKU: "B2", Location: "W1", Available: 20, Reserved: 5},
		{ID: "4", SKU: "C3", Location: "W2", Available: 0},
	}
}
