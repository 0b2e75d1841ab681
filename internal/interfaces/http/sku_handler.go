package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Inventario-dashboard/internal/application/dashboard"
	"github.com/jhoicas/Inventario-dashboard/internal/application/dto"
	"github.com/jhoicas/Inventario-dashboard/internal/domain/entity"
)

// SkuHandler catálogo de SKUs (protegido).
type SkuHandler struct {
	uc *dashboard.SkuUseCase
}

// NewSkuHandler construye el handler.
func NewSkuHandler(uc *dashboard.SkuUseCase) *SkuHandler {
	return &SkuHandler{uc: uc}
}

// List godoc
// @Summary      Listar SKUs
// @Tags         skus
// @Security     Bearer
// @Produce      json
// @Param        q         query  string  false  "Búsqueda por código o nombre"
// @Param        category  query  string  false  "Categoría (All = todas)"
// @Param        status    query  string  false  "Estado (All = todos)"
// @Success      200  {object}  dto.SkuListResponse
// @Router       /dashboard/skus [get]
func (h *SkuHandler) List(c *fiber.Ctx) error {
	api := GetAPI(c)
	if api == nil {
		return missingSession(c)
	}
	f := entity.SkuFilter{Query: c.Query("q"), Category: c.Query("category"), Status: c.Query("status")}
	out, err := h.uc.List(c.Context(), api, f)
	if err != nil {
		return respondError(c, err, "Error al cargar SKUs")
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear SKU
// @Tags         skus
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SkuRequest  true  "name, category, status"
// @Success      201   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /dashboard/skus [post]
func (h *SkuHandler) Create(c *fiber.Ctx) error {
	return h.save(c, "", fiber.StatusCreated)
}

// Update godoc
// @Summary      Actualizar SKU
// @Tags         skus
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string          true  "ID del SKU"
// @Param        body  body  dto.SkuRequest  true  "name, category, status"
// @Success      200   {object}  dto.MessageResponse
// @Router       /dashboard/skus/{id} [put]
func (h *SkuHandler) Update(c *fiber.Ctx) error {
	return h.save(c, c.Params("id"), fiber.StatusOK)
}

func (h *SkuHandler) save(c *fiber.Ctx, id string, status int) error {
	api := GetAPI(c)
	if api == nil {
		return missingSession(c)
	}
	var in dto.SkuRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := h.uc.Save(c.Context(), api, id, in); err != nil {
		return respondError(c, err, "Error al guardar el SKU")
	}
	return c.Status(status).JSON(dto.MessageResponse{Message: "SKU guardado"})
}

// Delete godoc
// @Summary      Eliminar SKU
// @Tags         skus
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del SKU"
// @Success      200  {object}  dto.MessageResponse
// @Router       /dashboard/skus/{id} [delete]
func (h *SkuHandler) Delete(c *fiber.Ctx) error {
	api := GetAPI(c)
	if api == nil {
		return missingSession(c)
	}
	if err := h.uc.Delete(c.Context(), api, c.Params("id")); err != nil {
		return respondError(c, err, "Error al eliminar el SKU")
	}
	return c.JSON(dto.MessageResponse{Message: "SKU eliminado"})
}
