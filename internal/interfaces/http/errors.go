package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Inventario-dashboard/internal/application/dashboard"
	"github.com/jhoicas/Inventario-dashboard/internal/application/dto"
	"github.com/jhoicas/Inventario-dashboard/internal/application/report"
	"github.com/jhoicas/Inventario-dashboard/internal/application/session"
	"github.com/jhoicas/Inventario-dashboard/internal/domain"
)

// respondError traduce errores de dominio a status + dto.ErrorResponse.
// fallback es el mensaje en línea de la vista cuando el error no trae uno apto.
func respondError(c *fiber.Ctx, err error, fallback string) error {
	status, code := classify(err)
	msg := domain.UserMessage(err, fallback)
	if errors.Is(err, domain.ErrUnauthorized) {
		msg = "credencial rechazada por el API de inventario"
	}
	return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: msg})
}

func classify(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrValidation), errors.Is(err, report.ErrUnknownFormat):
		return fiber.StatusBadRequest, "VALIDATION"
	case errors.Is(err, domain.ErrUnauthorized):
		return fiber.StatusUnauthorized, "UNAUTHORIZED"
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, session.ErrNotFound),
		errors.Is(err, dashboard.ErrViewNotFound), errors.Is(err, dashboard.ErrUnknownPicker):
		return fiber.StatusNotFound, "NOT_FOUND"
	case errors.Is(err, dashboard.ErrTooManyViews):
		return fiber.StatusTooManyRequests, "TOO_MANY_VIEWS"
	case errors.Is(err, domain.ErrNetwork):
		return fiber.StatusServiceUnavailable, "UPSTREAM_UNAVAILABLE"
	case errors.Is(err, domain.ErrAPI), errors.Is(err, domain.ErrMalformedResponse):
		return fiber.StatusBadGateway, "UPSTREAM"
	}
	return fiber.StatusInternalServerError, "INTERNAL"
}

func invalidBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
}

func missingSession(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "sesión requerida"})
}
