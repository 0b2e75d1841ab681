package entity

// Stats contadores pre-agregados por el API (GET /api/stats).
type Stats struct {
	Skus                 int
	ActiveSkus           int
	Warehouses           int
	InventoryRows        int
	TotalAvailable       int
	OwnWarehouses        int
	EcommerceWarehouses  int
	ThirdPartyWarehouses int
}

// LowStockAlert candidato de bajo stock filtrado por el servidor (GET /api/alerts).
type LowStockAlert struct {
	SKU       string
	Name      string
	Location  string
	Available int
}
