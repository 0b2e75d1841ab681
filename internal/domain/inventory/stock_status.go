package inventory

// StockStatus clasificación del stock total de un SKU.
type StockStatus string

const (
	OutOfStock StockStatus = "out_of_stock"
	Low        StockStatus = "low"
	InStock    StockStatus = "in_stock"
)

// LowStockThreshold política fija: por debajo de este total el SKU es Low.
const LowStockThreshold = 10

// Classify clasifica un total disponible. Totales negativos cuentan como OutOfStock.
func Classify(totalAvailable int) StockStatus {
	switch {
	case totalAvailable <= 0:
		return OutOfStock
	case totalAvailable < LowStockThreshold:
		return Low
	default:
		return InStock
	}
}

// StatusForSku clasifica un SKU a partir del resultado de TotalsBySku.
// Un SKU ausente tiene total 0.
func StatusForSku(sku string, totalsBySku map[string]int) StockStatus {
	return Classify(totalsBySku[sku])
}

// Label texto visible del estado.
func (s StockStatus) Label() string {
	switch s {
	case OutOfStock:
		return "Out of stock"
	case Low:
		return "Low stock"
	default:
		return "In stock"
	}
}
