package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Inventario-dashboard/internal/application/auth"
	"github.com/jhoicas/Inventario-dashboard/internal/application/dto"
	"github.com/jhoicas/Inventario-dashboard/internal/domain"
)

// viewCloser cierra las vistas en vivo de una sesión al hacer logout.
type viewCloser interface {
	CloseOwner(owner string)
}

// AuthHandler maneja login, registro, logout y preferencias de la sesión.
type AuthHandler struct {
	uc    *auth.AuthUseCase
	views viewCloser
}

// NewAuthHandler construye el handler de auth. views puede ser nil.
func NewAuthHandler(uc *auth.AuthUseCase, views viewCloser) *AuthHandler {
	return &AuthHandler{uc: uc, views: views}
}

// Register godoc
// @Summary      Registrar usuario en el API de inventario
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterRequest  true  "name, email, password, confirm_password"
// @Success      201   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      502   {object}  dto.ErrorResponse
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := h.uc.Register(c.Context(), in); err != nil {
		return respondError(c, err, "No se pudo completar el registro")
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MessageResponse{Message: "Usuario registrado. Ya puede iniciar sesión."})
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      503   {object}  dto.ErrorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Login(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "credenciales inválidas"})
		}
		return respondError(c, err, "No se pudo iniciar sesión")
	}
	return c.JSON(out)
}

// Logout godoc
// @Summary      Cerrar sesión
// @Tags         auth
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.MessageResponse
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	sid := GetSessionID(c)
	if sid == "" {
		return missingSession(c)
	}
	if h.views != nil {
		h.views.CloseOwner(sid)
	}
	if err := h.uc.Logout(c.Context(), sid); err != nil {
		return respondError(c, err, "No se pudo cerrar la sesión")
	}
	return c.JSON(dto.MessageResponse{Message: "sesión cerrada"})
}

// GetSettings godoc
// @Summary      Preferencias del usuario
// @Tags         settings
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SettingsResponse
// @Router       /dashboard/settings [get]
func (h *AuthHandler) GetSettings(c *fiber.Ctx) error {
	sid := GetSessionID(c)
	if sid == "" {
		return missingSession(c)
	}
	out, err := h.uc.Settings(c.Context(), sid)
	if err != nil {
		return respondError(c, err, "Error al cargar las preferencias")
	}
	return c.JSON(out)
}

// UpdateSettings godoc
// @Summary      Guardar preferencias del usuario
// @Tags         settings
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SettingsRequest  true  "name, email, theme (dark|light)"
// @Success      200   {object}  dto.SettingsResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /dashboard/settings [put]
func (h *AuthHandler) UpdateSettings(c *fiber.Ctx) error {
	sid := GetSessionID(c)
	if sid == "" {
		return missingSession(c)
	}
	var in dto.SettingsRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.UpdateSettings(c.Context(), sid, in)
	if err != nil {
		return respondError(c, err, "Error al guardar las preferencias")
	}
	return c.JSON(out)
}
