package dto

// StatsResponse indicadores de /api/stats.
type StatsResponse struct {
	Skus                 int `json:"skus"`
	ActiveSkus           int `json:"active_skus"`
	Warehouses           int `json:"warehouses"`
	InventoryRows        int `json:"inventory_rows"`
	TotalAvailable       int `json:"total_available"`
	OwnWarehouses        int `json:"own_warehouses"`
	EcommerceWarehouses  int `json:"ecommerce_warehouses"`
	ThirdPartyWarehouses int `json:"third_party_warehouses"`
}

// AlertResponse alerta de stock bajo.
type AlertResponse struct {
	SKU       string `json:"sku"`
	Name      string `json:"name"`
	Location  string `json:"location"`
	Available int    `json:"available"`
}

// DiscrepancyResponse diferencia entre un indicador del servidor y el cálculo local.
type DiscrepancyResponse struct {
	Field  string `json:"field"`
	Server int    `json:"server"`
	Client int    `json:"client"`
}

// OverviewResponse GET /dashboard/overview. Cada bloque reporta su propio error.
type OverviewResponse struct {
	Stats          *StatsResponse        `json:"stats,omitempty"`
	StatsError     string                `json:"stats_error,omitempty"`
	Alerts         []AlertResponse       `json:"alerts"`
	AlertsError    string                `json:"alerts_error,omitempty"`
	Stockouts      int                   `json:"stockouts"`
	StockoutsError string                `json:"stockouts_error,omitempty"`
	Discrepancies  []DiscrepancyResponse `json:"discrepancies,omitempty"`
}
