package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Inventario-dashboard/internal/application/dashboard"
	"github.com/jhoicas/Inventario-dashboard/internal/application/dto"
)

// WarehouseHandler maneja las peticiones HTTP para bodegas (protegido).
type WarehouseHandler struct {
	uc *dashboard.WarehouseUseCase
}

// NewWarehouseHandler construye el handler.
func NewWarehouseHandler(uc *dashboard.WarehouseUseCase) *WarehouseHandler {
	return &WarehouseHandler{uc: uc}
}

// List godoc
// @Summary      Listar bodegas con estadísticas
// @Tags         warehouses
// @Security     Bearer
// @Produce      json
// @Param        q     query  string  false  "Búsqueda por código, nombre o ciudad"
// @Param        sort  query  string  false  "name | code | skuCount | totalStock"  default(name)
// @Param        dir   query  string  false  "asc | desc"                            default(asc)
// @Success      200   {object}  dto.WarehouseListResponse
// @Failure      502   {object}  dto.ErrorResponse
// @Router       /dashboard/warehouses [get]
func (h *WarehouseHandler) List(c *fiber.Ctx) error {
	api := GetAPI(c)
	if api == nil {
		return missingSession(c)
	}
	q := dashboard.WarehouseQuery{
		Search: c.Query("q"),
		Sort:   c.Query("sort", dashboard.SortByName),
		Desc:   strings.EqualFold(c.Query("dir"), "desc"),
	}
	out, err := h.uc.List(c.Context(), api, q)
	if err != nil {
		return respondError(c, err, "Error al cargar bodegas")
	}
	return c.JSON(out)
}

// Breakdown godoc
// @Summary      Desglose por SKU de una bodega
// @Tags         warehouses
// @Security     Bearer
// @Produce      json
// @Param        code  path  string  true  "Código de la bodega"
// @Success      200   {object}  dto.WarehouseBreakdownResponse
// @Router       /dashboard/warehouses/{code}/breakdown [get]
func (h *WarehouseHandler) Breakdown(c *fiber.Ctx) error {
	api := GetAPI(c)
	if api == nil {
		return missingSession(c)
	}
	code := c.Params("code")
	if code == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_CODE", Message: "code es requerido"})
	}
	out, err := h.uc.Breakdown(c.Context(), api, code)
	if err != nil {
		return respondError(c, err, "Error al cargar el desglose")
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear bodega
// @Tags         warehouses
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.WarehouseRequest  true  "Datos de la bodega"
// @Success      201   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /dashboard/warehouses [post]
func (h *WarehouseHandler) Create(c *fiber.Ctx) error {
	return h.save(c, "", fiber.StatusCreated)
}

// Update godoc
// @Summary      Actualizar bodega
// @Tags         warehouses
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                true  "ID de la bodega"
// @Param        body  body  dto.WarehouseRequest  true  "Datos de la bodega"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /dashboard/warehouses/{id} [put]
func (h *WarehouseHandler) Update(c *fiber.Ctx) error {
	return h.save(c, c.Params("id"), fiber.StatusOK)
}

func (h *WarehouseHandler) save(c *fiber.Ctx, id string, status int) error {
	api := GetAPI(c)
	if api == nil {
		return missingSession(c)
	}
	var in dto.WarehouseRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := h.uc.Save(c.Context(), api, id, in); err != nil {
		return respondError(c, err, "Error al guardar la bodega")
	}
	return c.Status(status).JSON(dto.MessageResponse{Message: "bodega guardada"})
}

// Delete godoc
// @Summary      Eliminar bodega
// @Tags         warehouses
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la bodega"
// @Success      200  {object}  dto.MessageResponse
// @Router       /dashboard/warehouses/{id} [delete]
func (h *WarehouseHandler) Delete(c *fiber.Ctx) error {
	api := GetAPI(c)
	if api == nil {
		return missingSession(c)
	}
	if err := h.uc.Delete(c.Context(), api, c.Params("id")); err != nil {
		return respondError(c, err, "Error al eliminar la bodega")
	}
	return c.JSON(dto.MessageResponse{Message: "bodega eliminada"})
}
