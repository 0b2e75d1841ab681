package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Inventario-dashboard/internal/application/dashboard"
	"github.com/jhoicas/Inventario-dashboard/internal/application/dto"
	"github.com/jhoicas/Inventario-dashboard/internal/domain/entity"
)

// InventoryHandler maneja las peticiones HTTP de la tabla de inventario (protegido).
type InventoryHandler struct {
	uc *dashboard.InventoryUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *dashboard.InventoryUseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// List godoc
// @Summary      Listar inventario
// @Description  Filas con total por SKU y estado de stock, más conteos del conjunto visible.
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        sku       query  string  false  "Filtro por SKU"
// @Param        location  query  string  false  "Filtro por bodega"
// @Success      200  {object}  dto.InventoryListResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /dashboard/inventory [get]
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	api := GetAPI(c)
	if api == nil {
		return missingSession(c)
	}
	out, err := h.uc.List(c.Context(), api, entity.InventoryFilter{SKU: c.Query("sku"), Location: c.Query("location")})
	if err != nil {
		return respondError(c, err, "Error al cargar el inventario")
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear fila de inventario
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.InventoryRequest  true  "sku (o sku_query), location, available, reserved"
// @Success      201   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /dashboard/inventory [post]
func (h *InventoryHandler) Create(c *fiber.Ctx) error {
	return h.save(c, "", fiber.StatusCreated)
}

// Update godoc
// @Summary      Actualizar fila de inventario
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                 true  "ID de la fila"
// @Param        body  body  dto.InventoryRequest  true  "Datos de la fila"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /dashboard/inventory/{id} [put]
func (h *InventoryHandler) Update(c *fiber.Ctx) error {
	return h.save(c, c.Params("id"), fiber.StatusOK)
}

func (h *InventoryHandler) save(c *fiber.Ctx, id string, status int) error {
	api := GetAPI(c)
	if api == nil {
		return missingSession(c)
	}
	var in dto.InventoryRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := h.uc.Save(c.Context(), api, id, in); err != nil {
		return respondError(c, err, "Error al guardar")
	}
	return c.Status(status).JSON(dto.MessageResponse{Message: "fila guardada"})
}

// Delete godoc
// @Summary      Eliminar fila de inventario
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la fila"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /dashboard/inventory/{id} [delete]
func (h *InventoryHandler) Delete(c *fiber.Ctx) error {
	api := GetAPI(c)
	if api == nil {
		return missingSession(c)
	}
	if err := h.uc.Delete(c.Context(), api, c.Params("id")); err != nil {
		return respondError(c, err, "Error al eliminar")
	}
	return c.JSON(dto.MessageResponse{Message: "fila eliminada"})
}
