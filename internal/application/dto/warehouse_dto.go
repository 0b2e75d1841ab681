package dto

// WarehouseResponse bodega con sus estadísticas derivadas del inventario.
type WarehouseResponse struct {
	ID         string `json:"id"`
	Code       string `json:"code"`
	Name       string `json:"name"`
	Type       string `json:"type"`
	City       string `json:"city"`
	IsActive   bool   `json:"is_active"`
	SkuCount   int    `json:"sku_count"`
	TotalStock int    `json:"total_stock"`
}

// WarehouseListResponse GET /dashboard/warehouses.
type WarehouseListResponse struct {
	Items []WarehouseResponse `json:"items"`
	Total int                 `json:"total"`
}

// BreakdownLineResponse línea del desglose por SKU de una bodega.
type BreakdownLineResponse struct {
	SKU       string `json:"sku"`
	Available int    `json:"available"`
	Reserved  int    `json:"reserved"`
}

// WarehouseBreakdownResponse GET /dashboard/warehouses/:code/breakdown.
type WarehouseBreakdownResponse struct {
	Code  string                  `json:"code"`
	Lines []BreakdownLineResponse `json:"lines"`
}

// WarehouseRequest formulario de bodega.
type WarehouseRequest struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	City     string `json:"city"`
	IsActive *bool  `json:"is_active"`
}
