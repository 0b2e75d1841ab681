package entity

// InventoryRow stock de un SKU en una bodega (par SKU × bodega).
// Available y Reserved son contadores independientes; no se exige Available >= Reserved.
type InventoryRow struct {
	ID        string
	SKU       string
	Location  string // código de bodega
	Available int
	Reserved  int
}

// InventoryFilter filtros del listado de inventario (vacío = sin filtro).
type InventoryFilter struct {
	SKU      string
	Location string
}
