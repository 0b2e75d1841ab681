package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Inventario-dashboard/internal/domain/entity"
	"github.com/jhoicas/Inventario-dashboard/internal/domain/inventory"
)

func sampleRows() []entity.InventoryRow {
	return []entity.InventoryRow{
		{ID: "1", SKU: "A", Location: "WH1", Available: 5, Reserved: 1},
		{ID: "2", SKU: "A", Location: "WH2", Available: 3},
		{ID: "3", SKU: "B", Location: "WH1", Available: 0, Reserved: 4},
	}
}

func TestAgregados_ColeccionVacia(t *testing.T) {
	assert.Empty(t, inventory.TotalsBySku(nil))
	assert.Empty(t, inventory.TotalsByWarehouse(nil))
	assert.Equal(t, 0, inventory.GrandTotalAvailable(nil))
	assert.Equal(t, 0, inventory.DistinctSkuCount(nil))
	assert.Empty(t, inventory.BreakdownForWarehouse(nil, "WH1"))
	assert.NotNil(t, inventory.BreakdownForWarehouse(nil, "WH1"))
}

func TestTotalsBySku_SumaPorSku(t *testing.T) {
	totals := inventory.TotalsBySku(sampleRows())

	assert.Equal(t, map[string]int{"A": 8, "B": 0}, totals)
	assert.Equal(t, inventory.InStock, inventory.StatusForSku("A", totals))
	assert.Equal(t, inventory.OutOfStock, inventory.StatusForSku("B", totals))
	assert.Equal(t, inventory.OutOfStock, inventory.StatusForSku("NO-EXISTE", totals))
}

func TestTotalsByWarehouse_SkusDistintosYStock(t *testing.T) {
	rows := append(sampleRows(),
		entity.InventoryRow{SKU: "A", Location: "WH1", Available: 2},
		entity.InventoryRow{SKU: "C", Location: "", Available: 100},
	)

	got := inventory.TotalsByWarehouse(rows)

	assert.Equal(t, map[string]inventory.WarehouseAggregate{
		"WH1": {Code: "WH1", DistinctSkuCount: 2, TotalStock: 7},
		"WH2": {Code: "WH2", DistinctSkuCount: 1, TotalStock: 3},
	}, got, "las filas sin bodega se omiten")
}

func TestGrandTotalYDistinctSkus(t *testing.T) {
	rows := sampleRows()

	assert.Equal(t, 8, inventory.GrandTotalAvailable(rows))
	assert.Equal(t, 2, inventory.DistinctSkuCount(rows))
}

func TestBreakdownForWarehouse_SoloLaBodegaPedida(t *testing.T) {
	rows := []entity.InventoryRow{
		{SKU: "X", Location: "WH1", Available: 4, Reserved: 1},
		{SKU: "X", Location: "WH2", Available: 2, Reserved: 0},
	}

	got := inventory.BreakdownForWarehouse(rows, "WH1")

	assert.Equal(t, []inventory.BreakdownLine{{SKU: "X", Available: 4, Reserved: 1}}, got)
}

func TestBreakdownForWarehouse_OrdenDePrimeraAparicionYSumas(t *testing.T) {
	rows := []entity.InventoryRow{
		{SKU: "Z", Location: "WH1", Available: 1, Reserved: 2},
		{SKU: "A", Location: "WH1", Available: 5},
		{SKU: "Z", Location: "WH1", Available: 3, Reserved: 1},
	}

	got := inventory.BreakdownForWarehouse(rows, "WH1")

	assert.Equal(t, []inventory.BreakdownLine{
		{SKU: "Z", Available: 4, Reserved: 3},
		{SKU: "A", Available: 5},
	}, got)
}

func TestAgregados_NoModificanLaEntrada(t *testing.T) {
	rows := sampleRows()
	before := append([]entity.InventoryRow(nil), rows...)

	inventory.TotalsBySku(rows)
	inventory.TotalsByWarehouse(rows)
	inventory.BreakdownForWarehouse(rows, "WH1")

	assert.Equal(t, before, rows)
}
