package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Inventario-dashboard/internal/application/dashboard"
)

// DashboardHandler resumen, transacciones y órdenes de compra.
type DashboardHandler struct {
	overview *dashboard.OverviewUseCase
	ledger   *dashboard.LedgerUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(overview *dashboard.OverviewUseCase, ledger *dashboard.LedgerUseCase) *DashboardHandler {
	return &DashboardHandler{overview: overview, ledger: ledger}
}

// Overview devuelve estadísticas, alertas de stock bajo y conteo de quiebres.
// GET /dashboard/overview
//
// Cada bloque trae su propio mensaje de error; un bloque caído no tumba la página.
// Solo una credencial rechazada responde 401.
func (h *DashboardHandler) Overview(c *fiber.Ctx) error {
	api := GetAPI(c)
	if api == nil {
		return missingSession(c)
	}
	out, err := h.overview.Get(c.Context(), api)
	if err != nil {
		return respondError(c, err, "Error al cargar el resumen")
	}
	return c.JSON(out)
}

// Transactions godoc
// @Summary      Transacciones recientes
// @Tags         ledger
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.TransactionListResponse
// @Router       /dashboard/transactions [get]
func (h *DashboardHandler) Transactions(c *fiber.Ctx) error {
	out, err := h.ledger.Transactions(c.Context())
	if err != nil {
		return respondError(c, err, "Error al cargar transacciones")
	}
	return c.JSON(out)
}

// PurchaseOrders godoc
// @Summary      Órdenes de compra
// @Tags         ledger
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.PurchaseOrderListResponse
// @Router       /dashboard/purchase-orders [get]
func (h *DashboardHandler) PurchaseOrders(c *fiber.Ctx) error {
	out, err := h.ledger.PurchaseOrders(c.Context())
	if err != nil {
		return respondError(c, err, "Error al cargar órdenes de compra")
	}
	return c.JSON(out)
}
