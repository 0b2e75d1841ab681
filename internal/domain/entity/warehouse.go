package entity

// Tipos de bodega reconocidos por el API.
const (
	WarehouseOwn        = "Own"
	WarehouseEcommerce  = "Ecommerce"
	WarehouseThirdParty = "ThirdParty"
)

// WarehouseRecord bodega identificada por un código único.
type WarehouseRecord struct {
	ID       string
	Code     string
	Name     string
	Type     string
	City     string
	IsActive bool
}
