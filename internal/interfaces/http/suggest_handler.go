package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Inventario-dashboard/internal/application/dashboard"
)

// SuggestHandler sugerencias sin estado para selectores.
type SuggestHandler struct {
	uc *dashboard.SuggestUseCase
}

// NewSuggestHandler construye el handler.
func NewSuggestHandler(uc *dashboard.SuggestUseCase) *SuggestHandler {
	return &SuggestHandler{uc: uc}
}

// Skus godoc
// @Summary      Sugerir SKUs
// @Tags         suggest
// @Security     Bearer
// @Produce      json
// @Param        q    query  string  false  "Texto tecleado"
// @Success      200  {object}  dto.SuggestionListResponse
// @Router       /dashboard/suggest/skus [get]
func (h *SuggestHandler) Skus(c *fiber.Ctx) error {
	api := GetAPI(c)
	if api == nil {
		return missingSession(c)
	}
	out, err := h.uc.Skus(c.Context(), api, c.Query("q"))
	if err != nil {
		return respondError(c, err, "Error al cargar sugerencias")
	}
	return c.JSON(out)
}

// Warehouses godoc
// @Summary      Sugerir bodegas
// @Tags         suggest
// @Security     Bearer
// @Produce      json
// @Param        q    query  string  false  "Texto tecleado"
// @Success      200  {object}  dto.SuggestionListResponse
// @Router       /dashboard/suggest/warehouses [get]
func (h *SuggestHandler) Warehouses(c *fiber.Ctx) error {
	api := GetAPI(c)
	if api == nil {
		return missingSession(c)
	}
	out, err := h.uc.Warehouses(c.Context(), api, c.Query("q"))
	if err != nil {
		return respondError(c, err, "Error al cargar sugerencias")
	}
	return c.JSON(out)
}
