package dashboard

import (
	"context"
	"fmt"

	"github.com/jhoicas/Inventario-dashboard/internal/application/dto"
	"github.com/jhoicas/Inventario-dashboard/internal/application/ports"
	"github.com/jhoicas/Inventario-dashboard/internal/domain/inventory"
)

const dateLayout = "2006-01-02"

// LedgerUseCase páginas de transacciones y órdenes de compra.
type LedgerUseCase struct {
	source ports.LedgerSource
}

// NewLedgerUseCase construye el caso de uso.
func NewLedgerUseCase(source ports.LedgerSource) *LedgerUseCase {
	return &LedgerUseCase{source: source}
}

// Transactions listado con entradas y salidas totales.
func (uc *LedgerUseCase) Transactions(ctx context.Context) (*dto.TransactionListResponse, error) {
	txns, err := uc.source.Transactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("listar transacciones: %w", err)
	}
	sum := inventory.SummarizeTransactions(txns)
	res := &dto.TransactionListResponse{
		Items:    make([]dto.TransactionResponse, 0, len(txns)),
		Count:    sum.Count,
		Inbound:  sum.Inbound,
		Outbound: sum.Outbound,
	}
	for _, t := range txns {
		res.Items = append(res.Items, dto.TransactionResponse{
			ID: t.ID, Type: t.Type, SKU: t.SKU, Qty: t.Qty, Source: t.Source, Date: t.Date.Format(dateLayout),
		})
	}
	return res, nil
}

// PurchaseOrders listado con el número de órdenes abiertas.
func (uc *LedgerUseCase) PurchaseOrders(ctx context.Context) (*dto.PurchaseOrderListResponse, error) {
	pos, err := uc.source.PurchaseOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("listar órdenes de compra: %w", err)
	}
	res := &dto.PurchaseOrderListResponse{
		Items: make([]dto.PurchaseOrderResponse, 0, len(pos)),
		Open:  inventory.CountOpenPurchaseOrders(pos),
	}
	for _, p := range pos {
		res.Items = append(res.Items, dto.PurchaseOrderResponse{
			Number: p.Number, Supplier: p.Supplier, Status: p.Status, Items: p.Items, ETA: p.ETA.Format(dateLayout),
		})
	}
	return res, nil
}
