package dto

// InventoryRowResponse fila de inventario con el total del SKU en todas las bodegas.
type InventoryRowResponse struct {
	ID          string `json:"id"`
	SKU         string `json:"sku"`
	Location    string `json:"location"`
	Available   int    `json:"available"`
	Reserved    int    `json:"reserved"`
	TotalForSku int    `json:"total_for_sku"`
	Status      string `json:"status"`
	StatusLabel string `json:"status_label"`
}

// InventoryMeta resumen de la tabla de inventario.
type InventoryMeta struct {
	Records        int `json:"records"`
	DistinctSkus   int `json:"distinct_skus"`
	TotalAvailable int `json:"total_available"`
}

// InventoryListResponse GET /dashboard/inventory.
type InventoryListResponse struct {
	Items []InventoryRowResponse `json:"items"`
	Meta  InventoryMeta          `json:"meta"`
	Error string                 `json:"error,omitempty"`
}

// InventoryRequest formulario de alta/edición. SKUQuery es el texto del selector cuando no se
// eligió una sugerencia; las existencias llegan como texto del formulario.
type InventoryRequest struct {
	SKU       string `json:"sku"`
	SKUQuery  string `json:"sku_query"`
	Location  string `json:"location"`
	Available string `json:"available"`
	Reserved  string `json:"reserved"`
}
