package inventory_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Inventario-dashboard/internal/domain/entity"
	"github.com/jhoicas/Inventario-dashboard/internal/domain/inventory"
)

func TestCheckStatsConsistency_Coincide(t *testing.T) {
	stats := entity.Stats{TotalAvailable: 8, InventoryRows: 3}

	assert.Empty(t, inventory.CheckStatsConsistency(sampleRows(), stats))
}

func TestCheckStatsConsistency_ReportaDiferencias(t *testing.T) {
	stats := entity.Stats{TotalAvailable: 20, InventoryRows: 3}

	got := inventory.CheckStatsConsistency(sampleRows(), stats)

	assert.Equal(t, []inventory.Discrepancy{{Field: "totalAvailable", Server: 20, Client: 8}}, got)
}

func TestSummarizeTransactions(t *testing.T) {
	txns := []entity.Transaction{
		{ID: "TXN-1001", Type: entity.TxnSale, Qty: -2, Date: time.Now()},
		{ID: "TXN-1002", Type: entity.TxnPurchase, Qty: 50},
		{ID: "TXN-1003", Type: entity.TxnAdjustment, Qty: -1},
	}

	got := inventory.SummarizeTransactions(txns)

	assert.Equal(t, inventory.TransactionSummary{Count: 3, Inbound: 50, Outbound: -3}, got)
}

func TestCountOpenPurchaseOrders(t *testing.T) {
	pos := []entity.PurchaseOrder{
		{Number: "PO-9001", Status: entity.POOpen},
		{Number: "PO-9002", Status: entity.POPartiallyReceived},
		{Number: "PO-9003", Status: entity.POClosed},
	}

	assert.Equal(t, 1, inventory.CountOpenPurchaseOrders(pos))
}
