package http

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Inventario-dashboard/internal/application/dto"
	"github.com/jhoicas/Inventario-dashboard/internal/application/ports"
	"github.com/jhoicas/Inventario-dashboard/internal/application/session"
	"github.com/jhoicas/Inventario-dashboard/pkg/jwt"
)

// Locals keys para la sesión y el cliente del API en Fiber.
const (
	LocalSessionID = "session_id"
	LocalEmail     = "email"
	LocalAPI       = "inventory_api"
)

// SessionResolver resuelve la sesión referenciada por el token. Lo implementa *auth.AuthUseCase.
type SessionResolver interface {
	Session(ctx context.Context, sessionID string) (*session.Session, error)
}

// AuthMiddleware valida el Bearer Token JWT, carga la sesión y deja en c.Locals
// el cliente del API atado a su credencial.
// EventSource no envía cabeceras, así que sin Authorization el GET del stream SSE acepta ?token=.
func AuthMiddleware(jwtSecret string, sessions SessionResolver, apis ports.APIFactory) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, errResp := bearerToken(c)
		if errResp != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(errResp)
		}
		sessionID, email, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		sess, err := sessions.Session(c.Context(), sessionID)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "SESSION_CLOSED", Message: "la sesión ya no existe, inicie sesión de nuevo"})
		}
		c.Locals(LocalSessionID, sess.ID)
		c.Locals(LocalEmail, email)
		c.Locals(LocalAPI, apis.ForToken(sess.Token))
		return c.Next()
	}
}

func bearerToken(c *fiber.Ctx) (string, *dto.ErrorResponse) {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		if q := strings.TrimSpace(c.Query("token")); q != "" && queryTokenAllowed(c) {
			return q, nil
		}
		return "", &dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"}
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", &dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"}
	}
	tokenString := strings.TrimSpace(parts[1])
	if tokenString == "" {
		return "", &dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"}
	}
	return tokenString, nil
}

// queryTokenAllowed solo GET /dashboard/live/:id/events; el resto exige la cabecera.
func queryTokenAllowed(c *fiber.Ctx) bool {
	if c.Method() != fiber.MethodGet {
		return false
	}
	parts := strings.Split(strings.Trim(c.Path(), "/"), "/")
	return len(parts) == 4 && parts[0] == "dashboard" && parts[1] == "live" && parts[2] != "" && parts[3] == "events"
}

// GetSessionID devuelve el id de sesión del contexto (después del middleware de auth).
func GetSessionID(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalSessionID).(string)
	return s
}

// GetEmail devuelve el email del token.
func GetEmail(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalEmail).(string)
	return s
}

// GetAPI devuelve el cliente del API atado a la sesión; nil si no pasó por el middleware.
func GetAPI(c *fiber.Ctx) ports.InventoryAPI {
	api, _ := c.Locals(LocalAPI).(ports.InventoryAPI)
	return api
}
