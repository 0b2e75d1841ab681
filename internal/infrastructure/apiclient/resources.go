package apiclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/jhoicas/Inventario-dashboard/internal/application/ports"
	"github.com/jhoicas/Inventario-dashboard/internal/domain"
	"github.com/jhoicas/Inventario-dashboard/internal/domain/entity"
)

// ── SKUs ─────────────────────────────────────────────────────────────────────

func (c *Client) ListSkus(ctx context.Context, f entity.SkuFilter) ([]entity.SkuRecord, error) {
	q := url.Values{}
	setIf(q, "q", f.Query)
	setIf(q, "category", f.Category)
	setIf(q, "status", f.Status)
	var wire []skuWire
	if err := c.do(ctx, http.MethodGet, "/api/skus", q, nil, &wire); err != nil {
		return nil, err
	}
	out := make([]entity.SkuRecord, 0, len(wire))
	for _, w := range wire {
		out = append(out, w.toEntity())
	}
	return out, nil
}

func (c *Client) CreateSku(ctx context.Context, s entity.SkuRecord) error {
	return c.do(ctx, http.MethodPost, "/api/skus", nil, skuBody(s), nil)
}

func (c *Client) UpdateSku(ctx context.Context, id string, s entity.SkuRecord) error {
	return c.do(ctx, http.MethodPut, "/api/skus/"+url.PathEscape(id), nil, skuBody(s), nil)
}

func (c *Client) DeleteSku(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/skus/"+url.PathEscape(id), nil, nil, nil)
}

func skuBody(s entity.SkuRecord) skuWire {
	return skuWire{Name: s.Name, Category: s.Category, Status: s.Status}
}

// ── Bodegas ──────────────────────────────────────────────────────────────────

func (c *Client) ListWarehouses(ctx context.Context) ([]entity.WarehouseRecord, error) {
	var wire []warehouseWire
	if err := c.do(ctx, http.MethodGet, "/api/warehouses", nil, nil, &wire); err != nil {
		return nil, err
	}
	out := make([]entity.WarehouseRecord, 0, len(wire))
	for _, w := range wire {
		out = append(out, w.toEntity())
	}
	return out, nil
}

func (c *Client) CreateWarehouse(ctx context.Context, w entity.WarehouseRecord) error {
	return c.do(ctx, http.MethodPost, "/api/warehouses", nil, warehouseBody(w), nil)
}

func (c *Client) UpdateWarehouse(ctx context.Context, id string, w entity.WarehouseRecord) error {
	return c.do(ctx, http.MethodPut, "/api/warehouses/"+url.PathEscape(id), nil, warehouseBody(w), nil)
}

func (c *Client) DeleteWarehouse(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/warehouses/"+url.PathEscape(id), nil, nil, nil)
}

func warehouseBody(w entity.WarehouseRecord) warehouseWire {
	return warehouseWire{Code: w.Code, Name: w.Name, Type: w.Type, City: w.City, IsActive: w.IsActive}
}

// ── Inventario ───────────────────────────────────────────────────────────────

func (c *Client) ListInventory(ctx context.Context, f entity.InventoryFilter) ([]entity.InventoryRow, error) {
	q := url.Values{}
	setIf(q, "sku", f.SKU)
	setIf(q, "location", f.Location)
	var wire []inventoryWire
	if err := c.do(ctx, http.MethodGet, "/api/inventory", q, nil, &wire); err != nil {
		return nil, err
	}
	out := make([]entity.InventoryRow, 0, len(wire))
	for _, w := range wire {
		out = append(out, w.toEntity())
	}
	return out, nil
}

func (c *Client) CreateInventory(ctx context.Context, r entity.InventoryRow) error {
	return c.do(ctx, http.MethodPost, "/api/inventory", nil, inventoryBody(r), nil)
}

func (c *Client) UpdateInventory(ctx context.Context, id string, r entity.InventoryRow) error {
	return c.do(ctx, http.MethodPut, "/api/inventory/"+url.PathEscape(id), nil, inventoryBody(r), nil)
}

func (c *Client) DeleteInventory(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/inventory/"+url.PathEscape(id), nil, nil, nil)
}

func inventoryBody(r entity.InventoryRow) inventoryWire {
	return inventoryWire{SKU: r.SKU, Location: r.Location, Available: r.Available, Reserved: r.Reserved}
}

// ── Indicadores ──────────────────────────────────────────────────────────────

func (c *Client) GetStats(ctx context.Context) (*entity.Stats, error) {
	var w statsWire
	if err := c.do(ctx, http.MethodGet, "/api/stats", nil, nil, &w); err != nil {
		return nil, err
	}
	return &entity.Stats{
		Skus:                 w.Skus,
		ActiveSkus:           w.ActiveSkus,
		Warehouses:           w.Warehouses,
		InventoryRows:        w.InventoryRows,
		TotalAvailable:       w.TotalAvailable,
		OwnWarehouses:        w.OwnWarehouses,
		EcommerceWarehouses:  w.EcommerceWarehouses,
		ThirdPartyWarehouses: w.ThirdPartyWarehouses,
	}, nil
}

// ListLowStockAlerts SKUs en o por debajo de threshold, como mucho limit.
func (c *Client) ListLowStockAlerts(ctx context.Context, limit, threshold int) ([]entity.LowStockAlert, error) {
	q := url.Values{}
	q.Set("type", "low-stock")
	q.Set("limit", strconv.Itoa(limit))
	q.Set("threshold", strconv.Itoa(threshold))
	var wire []alertWire
	if err := c.do(ctx, http.MethodGet, "/api/alerts", q, nil, &wire); err != nil {
		return nil, err
	}
	out := make([]entity.LowStockAlert, 0, len(wire))
	for _, w := range wire {
		out = append(out, entity.LowStockAlert{SKU: w.SKU, Name: w.Name, Location: w.Location, Available: w.TotalAvailable})
	}
	return out, nil
}

// ── Autenticación ────────────────────────────────────────────────────────────

// Login intercambia credenciales por el token bearer del API.
func (c *Client) Login(ctx context.Context, email, password string) (*ports.LoginResult, error) {
	var w loginWire
	in := map[string]string{"email": email, "password": password}
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", nil, in, &w); err != nil {
		return nil, err
	}
	if w.Token == "" {
		return nil, fmt.Errorf("%w: login sin token", domain.ErrMalformedResponse)
	}
	return &ports.LoginResult{
		Token: w.Token,
		User:  ports.UserInfo{ID: w.User.ID, Name: w.User.Name, Email: w.User.Email},
	}, nil
}

// Register crea el usuario en el API.
func (c *Client) Register(ctx context.Context, name, email, password string) error {
	in := map[string]string{"name": name, "email": email, "password": password}
	return c.do(ctx, http.MethodPost, "/api/auth/register", nil, in, nil)
}

func setIf(q url.Values, key, value string) {
	if value != "" {
		q.Set(key, value)
	}
}
