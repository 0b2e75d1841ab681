package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Inventario-dashboard/internal/application/auth"
	"github.com/jhoicas/Inventario-dashboard/internal/application/dashboard"
	"github.com/jhoicas/Inventario-dashboard/internal/application/ports"
	"github.com/jhoicas/Inventario-dashboard/internal/application/report"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	APIs        ports.APIFactory
	InventoryUC *dashboard.InventoryUseCase
	WarehouseUC *dashboard.WarehouseUseCase
	SkuUC       *dashboard.SkuUseCase
	SuggestUC   *dashboard.SuggestUseCase
	OverviewUC  *dashboard.OverviewUseCase
	LedgerUC    *dashboard.LedgerUseCase
	ReportUC    *report.UseCase
	Live        *dashboard.LiveRegistry
	LiveHandler *LiveHandler
	JWTSecret   string
}

// Router registra las rutas del backend del dashboard.
func Router(app *fiber.App, deps RouterDeps) {
	requireSession := AuthMiddleware(deps.JWTSecret, deps.AuthUC, deps.APIs)

	// Auth (público salvo logout)
	authGroup := app.Group("/auth")
	var views viewCloser
	if deps.Live != nil {
		views = deps.Live
	}
	authHandler := NewAuthHandler(deps.AuthUC, views)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", requireSession, authHandler.Logout)

	// Rutas protegidas (requieren Bearer Token)
	protected := app.Group("/dashboard", requireSession)

	protected.Get("/settings", authHandler.GetSettings)
	protected.Put("/settings", authHandler.UpdateSettings)

	inventoryHandler := NewInventoryHandler(deps.InventoryUC)
	inv := protected.Group("/inventory")
	inv.Get("/", inventoryHandler.List)
	inv.Post("/", inventoryHandler.Create)
	inv.Put("/:id", inventoryHandler.Update)
	inv.Delete("/:id", inventoryHandler.Delete)

	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC)
	warehouses := protected.Group("/warehouses")
	warehouses.Get("/", warehouseHandler.List)
	warehouses.Get("/:code/breakdown", warehouseHandler.Breakdown)
	warehouses.Post("/", warehouseHandler.Create)
	warehouses.Put("/:id", warehouseHandler.Update)
	warehouses.Delete("/:id", warehouseHandler.Delete)

	skuHandler := NewSkuHandler(deps.SkuUC)
	skus := protected.Group("/skus")
	skus.Get("/", skuHandler.List)
	skus.Post("/", skuHandler.Create)
	skus.Put("/:id", skuHandler.Update)
	skus.Delete("/:id", skuHandler.Delete)

	suggestHandler := NewSuggestHandler(deps.SuggestUC)
	protected.Get("/suggest/skus", suggestHandler.Skus)
	protected.Get("/suggest/warehouses", suggestHandler.Warehouses)

	dashboardHandler := NewDashboardHandler(deps.OverviewUC, deps.LedgerUC)
	protected.Get("/overview", dashboardHandler.Overview)
	protected.Get("/transactions", dashboardHandler.Transactions)
	protected.Get("/purchase-orders", dashboardHandler.PurchaseOrders)

	if deps.ReportUC != nil {
		reportHandler := NewReportHandler(deps.ReportUC)
		protected.Get("/reports/inventory.:format", reportHandler.Inventory)
	}

	// Vistas en vivo (SSE)
	liveHandler := deps.LiveHandler
	if liveHandler == nil {
		liveHandler = NewLiveHandler(deps.Live, 0, nil)
	}
	live := protected.Group("/live")
	live.Post("/inventory", liveHandler.Create)
	live.Delete("/:id", liveHandler.Delete)
	live.Get("/:id/events", liveHandler.Events)
	live.Post("/:id/filter", liveHandler.Filter)
	live.Post("/:id/refresh", liveHandler.Refresh)
	live.Get("/:id/picker/:kind", liveHandler.PickerState)
	live.Post("/:id/picker/:kind/input", liveHandler.PickerInput)
	live.Post("/:id/picker/:kind/focus", liveHandler.PickerFocus)
	live.Post("/:id/picker/:kind/key", liveHandler.PickerKey)
	live.Post("/:id/picker/:kind/blur", liveHandler.PickerBlur)
	live.Post("/:id/picker/:kind/select", liveHandler.PickerSelect)
}
