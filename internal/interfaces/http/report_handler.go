package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Inventario-dashboard/internal/application/report"
	"github.com/jhoicas/Inventario-dashboard/internal/domain/entity"
)

// ReportHandler exportación del inventario a XLSX o PDF.
type ReportHandler struct {
	uc *report.UseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *report.UseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Inventory godoc
// @Summary      Exportar inventario
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        format    path   string  true   "xlsx | pdf"
// @Param        sku       query  string  false  "Filtro por SKU"
// @Param        location  query  string  false  "Filtro por bodega"
// @Success      200  {file}  binary
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /dashboard/reports/inventory.{format} [get]
func (h *ReportHandler) Inventory(c *fiber.Ctx) error {
	api := GetAPI(c)
	if api == nil {
		return missingSession(c)
	}
	f := entity.InventoryFilter{SKU: c.Query("sku"), Location: c.Query("location")}
	file, err := h.uc.Export(c.Context(), api, c.Params("format"), f)
	if err != nil {
		return respondError(c, err, "Error al generar el reporte")
	}
	c.Set(fiber.HeaderContentType, file.ContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, file.Name))
	return c.Send(file.Data)
}
