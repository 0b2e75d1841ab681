package dashboard_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-dashboard/internal/application/dashboard"
	"github.com/jhoicas/Inventario-dashboard/internal/application/dto"
	"github.com/jhoicas/Inventario-dashboard/internal/domain"
	"github.com/jhoicas/Inventario-dashboard/internal/domain/entity"
)

func boolPtr(b bool) *bool { return &b }

// ─── Inventario ──────────────────────────────────────────────────────────────

func TestParseInventoryForm_Valido(t *testing.T) {
	row, q, err := dashboard.ParseInventoryForm(dto.InventoryRequest{SKU: "A1", Location: " W1 ", Available: "5", Reserved: ""})
	require.NoError(t, err)
	assert.Empty(t, q)
	assert.Equal(t, entity.InventoryRow{SKU: "A1", Location: "W1", Available: 5}, row)
}

func TestParseInventoryForm_SinSkuNiBodega(t *testing.T) {
	_, _, err := dashboard.ParseInventoryForm(dto.InventoryRequest{Location: "W1"})
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Equal(t, dashboard.MsgSkuAndLocation, domain.UserMessage(err, ""))

	_, _, err = dashboard.ParseInventoryForm(dto.InventoryRequest{SKU: "A1"})
	assert.Equal(t, dashboard.MsgSkuAndLocation, domain.UserMessage(err, ""))
}

func TestParseInventoryForm_ExistenciasNoNumericas(t *testing.T) {
	_, _, err := dashboard.ParseInventoryForm(dto.InventoryRequest{SKU: "A1", Location: "W1", Available: "diez"})
	assert.Equal(t, dashboard.MsgStocksNumeric, domain.UserMessage(err, ""))

	_, _, err = dashboard.ParseInventoryForm(dto.InventoryRequest{SKU: "A1", Location: "W1", Reserved: "-2"})
	assert.Equal(t, dashboard.MsgStocksNegative, domain.UserMessage(err, ""))
}

func TestParseInventoryForm_SoloTextoDeBusqueda(t *testing.T) {
	row, q, err := dashboard.ParseInventoryForm(dto.InventoryRequest{SKUQuery: " A1 ", Location: "W1"})
	require.NoError(t, err)
	assert.Empty(t, row.SKU)
	assert.Equal(t, "A1", q)
}

func TestResolveSku_CoincidenciaExacta(t *testing.T) {
	skus := []entity.SkuRecord{{SKU: "A10"}, {SKU: "A1"}}
	got, ok := dashboard.ResolveSku("A1", skus)
	assert.True(t, ok)
	assert.Equal(t, "A1", got)

	_, ok = dashboard.ResolveSku("a1", skus)
	assert.False(t, ok, "la coincidencia distingue mayúsculas")
}

// ─── Bodegas y SKUs ──────────────────────────────────────────────────────────

func TestParseWarehouseForm(t *testing.T) {
	_, err := dashboard.ParseWarehouseForm(dto.WarehouseRequest{Code: "W1"}, false)
	assert.Equal(t, dashboard.MsgWarehouseName, domain.UserMessage(err, ""))

	_, err = dashboard.ParseWarehouseForm(dto.WarehouseRequest{Name: "Central"}, true)
	assert.Equal(t, dashboard.MsgWarehouseCode, domain.UserMessage(err, ""))

	w, err := dashboard.ParseWarehouseForm(dto.WarehouseRequest{Name: "Central"}, false)
	require.NoError(t, err)
	assert.Equal(t, entity.WarehouseOwn, w.Type)
	assert.True(t, w.IsActive)

	w, err = dashboard.ParseWarehouseForm(dto.WarehouseRequest{Name: "Central", IsActive: boolPtr(false)}, false)
	require.NoError(t, err)
	assert.False(t, w.IsActive)
}

func TestParseSkuForm(t *testing.T) {
	_, err := dashboard.ParseSkuForm(dto.SkuRequest{Name: "Tornillo", Category: "Ferretería"})
	assert.Equal(t, dashboard.MsgSkuFieldsMissing, domain.UserMessage(err, ""))

	s, err := dashboard.ParseSkuForm(dto.SkuRequest{Name: "Tornillo", Category: "Ferretería", Status: "Active"})
	require.NoError(t, err)
	assert.Equal(t, "Tornillo", s.Name)
}
