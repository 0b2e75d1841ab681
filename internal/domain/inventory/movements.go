package inventory

import "github.com/jhoicas/Inventario-dashboard/internal/domain/entity"

// TransactionSummary contadores de la página de transacciones.
// Outbound es la suma (negativa) de las cantidades de salida.
type TransactionSummary struct {
	Count    int
	Inbound  int
	Outbound int
}

// SummarizeTransactions separa entradas (Qty > 0) y salidas (Qty < 0).
func SummarizeTransactions(txns []entity.Transaction) TransactionSummary {
	s := TransactionSummary{Count: len(txns)}
	for _, t := range txns {
		switch {
		case t.Qty > 0:
			s.Inbound += t.Qty
		case t.Qty < 0:
			s.Outbound += t.Qty
		}
	}
	return s
}

// CountOpenPurchaseOrders cuenta las órdenes en estado Open.
func CountOpenPurchaseOrders(pos []entity.PurchaseOrder) int {
	n := 0
	for _, po := range pos {
		if po.Status == entity.POOpen {
			n++
		}
	}
	return n
}
