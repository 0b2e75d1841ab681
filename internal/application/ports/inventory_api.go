package ports

import (
	"context"

	"github.com/jhoicas/Inventario-dashboard/internal/domain/entity"
)

// InventoryAPI puerto de salida hacia el API REST de inventario (colaborador externo).
// Una instancia ya está atada a la credencial de una sesión; las vistas no saben cómo se obtuvo.
// Los errores se clasifican con los errores de dominio (ErrNetwork, ErrAPI, ErrMalformedResponse).
type InventoryAPI interface {
	ListSkus(ctx context.Context, f entity.SkuFilter) ([]entity.SkuRecord, error)
	CreateSku(ctx context.Context, s entity.SkuRecord) error
	UpdateSku(ctx context.Context, id string, s entity.SkuRecord) error
	DeleteSku(ctx context.Context, id string) error

	ListWarehouses(ctx context.Context) ([]entity.WarehouseRecord, error)
	CreateWarehouse(ctx context.Context, w entity.WarehouseRecord) error
	UpdateWarehouse(ctx context.Context, id string, w entity.WarehouseRecord) error
	DeleteWarehouse(ctx context.Context, id string) error

	ListInventory(ctx context.Context, f entity.InventoryFilter) ([]entity.InventoryRow, error)
	CreateInventory(ctx context.Context, r entity.InventoryRow) error
	UpdateInventory(ctx context.Context, id string, r entity.InventoryRow) error
	DeleteInventory(ctx context.Context, id string) error

	GetStats(ctx context.Context) (*entity.Stats, error)
	ListLowStockAlerts(ctx context.Context, limit, threshold int) ([]entity.LowStockAlert, error)
}

// LoginResult credencial y usuario devueltos por el API al autenticarse.
type LoginResult struct {
	Token string
	User  UserInfo
}

// UserInfo datos del usuario autenticado.
type UserInfo struct {
	ID    string
	Name  string
	Email string
}

// Authenticator intercambia email/password por una credencial bearer del API.
type Authenticator interface {
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	Register(ctx context.Context, name, email, password string) error
}

// APIFactory crea clientes atados a una credencial.
type APIFactory interface {
	ForToken(token string) InventoryAPI
}

// LedgerSource fuente de transacciones y órdenes de compra (solo lectura).
type LedgerSource interface {
	Transactions(ctx context.Context) ([]entity.Transaction, error)
	PurchaseOrders(ctx context.Context) ([]entity.PurchaseOrder, error)
}
