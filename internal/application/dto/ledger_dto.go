package dto

// TransactionResponse movimiento de inventario.
type TransactionResponse struct {
	ID     string `json:"id"`
	Type   string `json:"type"`
	SKU    string `json:"sku"`
	Qty    int    `json:"qty"`
	Source string `json:"source"`
	Date   string `json:"date"`
}

// TransactionListResponse GET /dashboard/transactions.
type TransactionListResponse struct {
	Items    []TransactionResponse `json:"items"`
	Count    int                   `json:"count"`
	Inbound  int                   `json:"inbound"`
	Outbound int                   `json:"outbound"`
}

// PurchaseOrderResponse orden de compra.
type PurchaseOrderResponse struct {
	Number   string `json:"number"`
	Supplier string `json:"supplier"`
	Status   string `json:"status"`
	Items    int    `json:"items"`
	ETA      string `json:"eta"`
}

// PurchaseOrderListResponse GET /dashboard/purchase-orders.
type PurchaseOrderListResponse struct {
	Items []PurchaseOrderResponse `json:"items"`
	Open  int                     `json:"open"`
}
