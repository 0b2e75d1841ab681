package http

import (
	"bufio"
	"encoding/json"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Inventario-dashboard/internal/application/dashboard"
	"github.com/jhoicas/Inventario-dashboard/internal/application/dto"
	"github.com/jhoicas/Inventario-dashboard/internal/domain/entity"
	"github.com/jhoicas/Inventario-dashboard/pkg/logger"
)

// DefaultHeartbeat intervalo de comentarios keepalive en el stream SSE.
const DefaultHeartbeat = 30 * time.Second

// LiveHandler vistas en vivo: el cliente envía eventos de entrada y recibe el estado por SSE.
type LiveHandler struct {
	registry  *dashboard.LiveRegistry
	heartbeat time.Duration
	log       *logger.Logger
}

// NewLiveHandler construye el handler. heartbeat <= 0 usa DefaultHeartbeat.
func NewLiveHandler(registry *dashboard.LiveRegistry, heartbeat time.Duration, log *logger.Logger) *LiveHandler {
	if heartbeat <= 0 {
		heartbeat = DefaultHeartbeat
	}
	if log == nil {
		log = logger.Nop()
	}
	return &LiveHandler{registry: registry, heartbeat: heartbeat, log: log.Component("sse")}
}

// Create godoc
// @Summary      Abrir vista en vivo de inventario
// @Description  Lanza la carga inicial (inventario, SKUs, bodegas); los resultados llegan por events_url.
// @Tags         live
// @Security     Bearer
// @Produce      json
// @Success      201  {object}  dto.LiveViewResponse
// @Failure      429  {object}  dto.ErrorResponse
// @Router       /dashboard/live/inventory [post]
func (h *LiveHandler) Create(c *fiber.Ctx) error {
	sid := GetSessionID(c)
	api := GetAPI(c)
	if sid == "" || api == nil {
		return missingSession(c)
	}
	v, err := h.registry.OpenInventory(sid, api)
	if err != nil {
		return respondError(c, err, "No se pudo abrir la vista")
	}
	return c.Status(fiber.StatusCreated).JSON(dto.LiveViewResponse{
		ID:        v.ID,
		EventsURL: "/dashboard/live/" + v.ID + "/events",
	})
}

// Delete godoc
// @Summary      Cerrar vista en vivo
// @Tags         live
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la vista"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /dashboard/live/{id} [delete]
func (h *LiveHandler) Delete(c *fiber.Ctx) error {
	if err := h.registry.Close(c.Params("id"), GetSessionID(c)); err != nil {
		return respondError(c, err, "Vista no encontrada")
	}
	return c.JSON(dto.MessageResponse{Message: "vista cerrada"})
}

// Filter godoc
// @Summary      Texto de la barra de filtros
// @Description  La consulta se confirma 400 ms después del último cambio.
// @Tags         live
// @Security     Bearer
// @Accept       json
// @Param        id    path  string             true  "ID de la vista"
// @Param        body  body  dto.FilterRequest  true  "sku, location"
// @Success      202
// @Router       /dashboard/live/{id}/filter [post]
func (h *LiveHandler) Filter(c *fiber.Ctx) error {
	v, err := h.view(c)
	if err != nil {
		return respondError(c, err, "Vista no encontrada")
	}
	var in dto.FilterRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	v.SetFilter(entity.InventoryFilter{SKU: in.SKU, Location: in.Location})
	return c.SendStatus(fiber.StatusAccepted)
}

// Refresh godoc
// @Summary      Recargar inventario con el último filtro
// @Tags         live
// @Security     Bearer
// @Param        id   path  string  true  "ID de la vista"
// @Success      202
// @Router       /dashboard/live/{id}/refresh [post]
func (h *LiveHandler) Refresh(c *fiber.Ctx) error {
	v, err := h.view(c)
	if err != nil {
		return respondError(c, err, "Vista no encontrada")
	}
	v.Refresh()
	return c.SendStatus(fiber.StatusAccepted)
}

// PickerState godoc
// @Summary      Estado de un selector
// @Tags         live
// @Security     Bearer
// @Produce      json
// @Param        id    path  string  true  "ID de la vista"
// @Param        kind  path  string  true  "sku | warehouse"
// @Success      200   {object}  dto.PickerStateResponse
// @Router       /dashboard/live/{id}/picker/{kind} [get]
func (h *LiveHandler) PickerState(c *fiber.Ctx) error {
	return h.pickerOp(c, func(*dashboard.InventoryView, dashboard.PickerKind) error { return nil })
}

// PickerInput godoc
// @Summary      Texto tecleado en un selector
// @Tags         live
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                  true  "ID de la vista"
// @Param        kind  path  string                  true  "sku | warehouse"
// @Param        body  body  dto.PickerInputRequest  true  "query"
// @Success      200   {object}  dto.PickerStateResponse
// @Router       /dashboard/live/{id}/picker/{kind}/input [post]
func (h *LiveHandler) PickerInput(c *fiber.Ctx) error {
	var in dto.PickerInputRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	return h.pickerOp(c, func(v *dashboard.InventoryView, k dashboard.PickerKind) error {
		return v.PickerInput(k, in.Query)
	})
}

// PickerFocus godoc
// @Summary      Foco en un selector
// @Tags         live
// @Security     Bearer
// @Produce      json
// @Param        id    path  string  true  "ID de la vista"
// @Param        kind  path  string  true  "sku | warehouse"
// @Success      200   {object}  dto.PickerStateResponse
// @Router       /dashboard/live/{id}/picker/{kind}/focus [post]
func (h *LiveHandler) PickerFocus(c *fiber.Ctx) error {
	return h.pickerOp(c, func(v *dashboard.InventoryView, k dashboard.PickerKind) error {
		return v.PickerFocus(k)
	})
}

// PickerKey godoc
// @Summary      Tecla en un selector
// @Tags         live
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                true  "ID de la vista"
// @Param        kind  path  string                true  "sku | warehouse"
// @Param        body  body  dto.PickerKeyRequest  true  "ArrowDown | ArrowUp | Enter | Escape"
// @Success      200   {object}  dto.PickerStateResponse
// @Router       /dashboard/live/{id}/picker/{kind}/key [post]
func (h *LiveHandler) PickerKey(c *fiber.Ctx) error {
	var in dto.PickerKeyRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	return h.pickerOp(c, func(v *dashboard.InventoryView, k dashboard.PickerKind) error {
		return v.PickerKey(k, in.Key)
	})
}

// PickerBlur godoc
// @Summary      El selector pierde el foco
// @Tags         live
// @Security     Bearer
// @Produce      json
// @Param        id    path  string  true  "ID de la vista"
// @Param        kind  path  string  true  "sku | warehouse"
// @Success      200   {object}  dto.PickerStateResponse
// @Router       /dashboard/live/{id}/picker/{kind}/blur [post]
func (h *LiveHandler) PickerBlur(c *fiber.Ctx) error {
	return h.pickerOp(c, func(v *dashboard.InventoryView, k dashboard.PickerKind) error {
		return v.PickerBlur(k)
	})
}

// PickerSelect godoc
// @Summary      Selección con puntero
// @Tags         live
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                   true  "ID de la vista"
// @Param        kind  path  string                   true  "sku | warehouse"
// @Param        body  body  dto.PickerSelectRequest  true  "index del candidato visible"
// @Success      200   {object}  dto.PickerStateResponse
// @Router       /dashboard/live/{id}/picker/{kind}/select [post]
func (h *LiveHandler) PickerSelect(c *fiber.Ctx) error {
	var in dto.PickerSelectRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	return h.pickerOp(c, func(v *dashboard.InventoryView, k dashboard.PickerKind) error {
		return v.PickerSelect(k, in.Index)
	})
}

// Events godoc
// @Summary      Stream SSE de la vista
// @Description  Eventos inventory, inventory_error, picker, picker_error, selected. Tras connected se reenvía la última foto de cada uno. Acepta ?token= para EventSource.
// @Tags         live
// @Security     Bearer
// @Produce      text/event-stream
// @Param        id   path  string  true  "ID de la vista"
// @Success      200
// @Router       /dashboard/live/{id}/events [get]
func (h *LiveHandler) Events(c *fiber.Ctx) error {
	v, err := h.view(c)
	if err != nil {
		return respondError(c, err, "Vista no encontrada")
	}
	c.Set("Content-Type", "text/event-stream")
	c.Set("Cache-Control", "no-cache")
	c.Set("Connection", "keep-alive")
	c.Set("X-Accel-Buffering", "no")

	// Una conexión nueva desplaza a la anterior, cuyo pump termina por Done.
	sub := v.Attach()
	id := v.ID
	c.Context().SetBodyStreamWriter(func(w *bufio.Writer) {
		defer v.Detach(sub)
		fmt.Fprintf(w, "event: connected\ndata: {\"view_id\":%q}\n\n", id)
		if err := w.Flush(); err != nil {
			return
		}
		if err := pumpEvents(w, sub, h.heartbeat); err != nil {
			h.log.Debug().Err(err).Str("view", id).Msg("cliente SSE desconectado")
		}
	})
	return nil
}

func (h *LiveHandler) view(c *fiber.Ctx) (*dashboard.InventoryView, error) {
	return h.registry.Get(c.Params("id"), GetSessionID(c))
}

func (h *LiveHandler) pickerOp(c *fiber.Ctx, op func(*dashboard.InventoryView, dashboard.PickerKind) error) error {
	v, err := h.view(c)
	if err != nil {
		return respondError(c, err, "Vista no encontrada")
	}
	kind := dashboard.PickerKind(c.Params("kind"))
	if err := op(v, kind); err != nil {
		return respondError(c, err, "Selector desconocido")
	}
	st, err := v.PickerState(kind)
	if err != nil {
		return respondError(c, err, "Selector desconocido")
	}
	return c.JSON(st)
}

// eventSource consumidor de eventos de una vista (dashboard.Subscription).
type eventSource interface {
	Notify() <-chan struct{}
	Done() <-chan struct{}
	Next() []dto.LiveEvent
}

// pumpEvents escribe los eventos en formato SSE hasta que el consumidor termina (vista desmontada
// u otra conexión lo desplazó) o la escritura falla (cliente desconectado).
// Entre eventos envía keepalive cada heartbeat.
func pumpEvents(w *bufio.Writer, src eventSource, heartbeat time.Duration) error {
	ticker := time.NewTicker(heartbeat)
	defer ticker.Stop()
	for {
		select {
		case <-src.Done():
			return nil
		case <-src.Notify():
			for _, ev := range src.Next() {
				data, err := json.Marshal(ev.Data)
				if err != nil {
					return fmt.Errorf("serializar evento %s: %w", ev.Type, err)
				}
				fmt.Fprintf(w, "event: %s\ndata: %s\n\n", ev.Type, data)
			}
			if err := w.Flush(); err != nil {
				return err
			}
		case <-ticker.C:
			w.WriteString(": keepalive\n\n")
			if err := w.Flush(); err != nil {
				return err
			}
		}
	}
}
