package entity

import "time"

// Tipos de transacción de stock.
const (
	TxnSale       = "Sale"
	TxnPurchase   = "Purchase"
	TxnAdjustment = "Adjustment"
)

// Estados de orden de compra.
const (
	POOpen              = "Open"
	POPartiallyReceived = "Partially Received"
	POClosed            = "Closed"
)

// Transaction movimiento de stock por canal. Qty positivo = entrada, negativo = salida.
type Transaction struct {
	ID     string
	Type   string
	SKU    string
	Qty    int
	Source string
	Date   time.Time
}

// PurchaseOrder orden de compra a proveedor.
type PurchaseOrder struct {
	Number   string
	Supplier string
	Status   string
	Items    int
	ETA      time.Time
}
