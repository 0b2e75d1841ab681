// Package ledger fuente de transacciones y órdenes de compra. El API de inventario no expone
// estos recursos; se leen de un archivo JSON o, si no hay archivo, de un conjunto de ejemplo.
package ledger

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/jhoicas/Inventario-dashboard/internal/application/ports"
	"github.com/jhoicas/Inventario-dashboard/internal/domain/entity"
)

var _ ports.LedgerSource = (*Source)(nil)

const dateLayout = "2006-01-02"

type fileFormat struct {
	Transactions []struct {
		ID     string `json:"id"`
		Type   string `json:"type"`
		SKU    string `json:"sku"`
		Qty    int    `json:"qty"`
		Source string `json:"source"`
		Date   string `json:"date"`
	} `json:"transactions"`
	PurchaseOrders []struct {
		Number   string `json:"number"`
		Supplier string `json:"supplier"`
		Status   string `json:"status"`
		Items    int    `json:"items"`
		ETA      string `json:"eta"`
	} `json:"purchaseOrders"`
}

// Source lee el archivo una vez y sirve copias.
type Source struct {
	path string
	once sync.Once
	txns []entity.Transaction
	pos  []entity.PurchaseOrder
	err  error
}

// NewSource path vacío = datos de ejemplo.
func NewSource(path string) *Source {
	return &Source{path: path}
}

func (s *Source) load() {
	if s.path == "" {
		s.txns, s.pos = sampleTransactions(), samplePurchaseOrders()
		return
	}
	b, err := os.ReadFile(s.path)
	if err != nil {
		s.err = fmt.Errorf("ledger: leer %s: %w", s.path, err)
		return
	}
	var f fileFormat
	if err := json.Unmarshal(b, &f); err != nil {
		s.err = fmt.Errorf("ledger: formato inválido: %w", err)
		return
	}
	for _, t := range f.Transactions {
		d, err := time.Parse(dateLayout, t.Date)
		if err != nil {
			s.err = fmt.Errorf("ledger: fecha de %s: %w", t.ID, err)
			return
		}
		s.txns = append(s.txns, entity.Transaction{ID: t.ID, Type: t.Type, SKU: t.SKU, Qty: t.Qty, Source: t.Source, Date: d})
	}
	for _, p := range f.PurchaseOrders {
		d, err := time.Parse(dateLayout, p.ETA)
		if err != nil {
			s.err = fmt.Errorf("ledger: ETA de %s: %w", p.Number, err)
			return
		}
		s.pos = append(s.pos, entity.PurchaseOrder{Number: p.Number, Supplier: p.Supplier, Status: p.Status, Items: p.Items, ETA: d})
	}
}

func (s *Source) Transactions(context.Context) ([]entity.Transaction, error) {
	s.once.Do(s.load)
	if s.err != nil {
		return nil, s.err
	}
	return append([]entity.Transaction(nil), s.txns...), nil
}

func (s *Source) PurchaseOrders(context.Context) ([]entity.PurchaseOrder, error) {
	s.once.Do(s.load)
	if s.err != nil {
		return nil, s.err
	}
	return append([]entity.PurchaseOrder(nil), s.pos...), nil
}

func day(v string) time.Time {
	t, _ := time.Parse(dateLayout, v)
	return t
}

func sampleTransactions() []entity.Transaction {
	return []entity.Transaction{
		{ID: "TXN-1001", Type: entity.TxnSale, SKU: "SKU-001", Qty: -2, Source: "Amazon", Date: day("2025-11-20")},
		{ID: "TXN-1002", Type: entity.TxnPurchase, SKU: "SKU-002", Qty: 50, Source: "Supplier A", Date: day("2025-11-19")},
		{ID: "TXN-1003", Type: entity.TxnAdjustment, SKU: "SKU-003", Qty: -1, Source: "Audit", Date: day("2025-11-18")},
	}
}

func samplePurchaseOrders() []entity.PurchaseOrder {
	return []entity.PurchaseOrder{
		{Number: "PO-9001", Supplier: "Supplier A", Status: entity.POOpen, Items: 3, ETA: day("2025-11-25")},
		{Number: "PO-9002", Supplier: "Supplier B", Status: entity.POPartiallyReceived, Items: 5, ETA: day("2025-11-23")},
		{Number: "PO-9003", Supplier: "Supplier C", Status: entity.POClosed, Items: 2, ETA: day("2025-11-15")},
	}
}
