package entity

// SkuRecord unidad de inventario (código único) con su nombre de referencia.
type SkuRecord struct {
	ID       string
	SKU      string
	Name     string
	Category string
	Status   string // Active | Inactive
}

// SkuFilter filtros del listado de SKUs. Category/Status vacíos = todos.
type SkuFilter struct {
	Query    string
	Category string
	Status   string
}
