package dto

// SkuResponse registro del catálogo.
type SkuResponse struct {
	ID       string `json:"id"`
	SKU      string `json:"sku"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Status   string `json:"status"`
}

// SkuListResponse GET /dashboard/skus.
type SkuListResponse struct {
	Items []SkuResponse `json:"items"`
	Total int           `json:"total"`
}

// SkuRequest formulario de SKU; el código lo genera el API al crear.
type SkuRequest struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Status   string `json:"status"`
}
