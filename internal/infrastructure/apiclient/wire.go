package apiclient

import "github.com/jhoicas/Inventario-dashboard/internal/domain/entity"

// Estructuras del protocolo JSON del API (ids en "_id", campos camelCase).

type skuWire struct {
	ID       string `json:"_id,omitempty"`
	SKU      string `json:"sku,omitempty"`
	Name     string `json:"name"`
	Category string `json:"category,omitempty"`
	Status   string `json:"status,omitempty"`
}

func (w skuWire) toEntity() entity.SkuRecord {
	return entity.SkuRecord{ID: w.ID, SKU: w.SKU, Name: w.Name, Category: w.Category, Status: w.Status}
}

type warehouseWire struct {
	ID       string `json:"_id,omitempty"`
	Code     string `json:"code"`
	Name     string `json:"name"`
	Type     string `json:"type,omitempty"`
	City     string `json:"city,omitempty"`
	IsActive bool   `json:"isActive"`
}

func (w warehouseWire) toEntity() entity.WarehouseRecord {
	return entity.WarehouseRecord{ID: w.ID, Code: w.Code, Name: w.Name, Type: w.Type, City: w.City, IsActive: w.IsActive}
}

type inventoryWire struct {
	ID        string `json:"_id,omitempty"`
	SKU       string `json:"sku"`
	Location  string `json:"location"`
	Available int    `json:"available"`
	Reserved  int    `json:"reserved"`
}

func (w inventoryWire) toEntity() entity.InventoryRow {
	return entity.InventoryRow{ID: w.ID, SKU: w.SKU, Location: w.Location, Available: w.Available, Reserved: w.Reserved}
}

type statsWire struct {
	Skus                 int `json:"skus"`
	ActiveSkus           int `json:"activeSkus"`
	Warehouses           int `json:"warehouses"`
	InventoryRows        int `json:"inventoryRows"`
	TotalAvailable       int `json:"totalAvailable"`
	OwnWarehouses        int `json:"ownWarehouses"`
	EcommerceWarehouses  int `json:"ecommerceWarehouses"`
	ThirdPartyWarehouses int `json:"thirdPartyWarehouses"`
}

type alertWire struct {
	SKU            string `json:"sku"`
	Name           string `json:"name"`
	Location       string `json:"location"`
	TotalAvailable int    `json:"totalAvailable"`
}

type loginWire struct {
	Token string `json:"token"`
	User  struct {
		ID    string `json:"_id"`
		Name  string `json:"name"`
		Email string `json:"email"`
	} `json:"user"`
}
