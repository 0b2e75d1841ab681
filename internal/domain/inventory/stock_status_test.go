package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Inventario-dashboard/internal/domain/inventory"
)

func TestClassify_Limites(t *testing.T) {
	cases := []struct {
		total int
		want  inventory.StockStatus
	}{
		{-3, inventory.OutOfStock},
		{0, inventory.OutOfStock},
		{1, inventory.Low},
		{9, inventory.Low},
		{10, inventory.InStock},
		{250, inventory.InStock},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, inventory.Classify(c.total), "total=%d", c.total)
	}
}

func TestStockStatus_Label(t *testing.T) {
	assert.Equal(t, "Out of stock", inventory.OutOfStock.Label())
	assert.Equal(t, "Low stock", inventory.Low.Label())
	assert.Equal(t, "In stock", inventory.InStock.Label())
}
