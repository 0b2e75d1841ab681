package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/Inventario-dashboard/internal/application/dto"
	"github.com/jhoicas/Inventario-dashboard/internal/application/ports"
	"github.com/jhoicas/Inventario-dashboard/internal/application/session"
	"github.com/jhoicas/Inventario-dashboard/internal/domain"
	"github.com/jhoicas/Inventario-dashboard/pkg/jwt"
)

// MinPasswordLength largo mínimo de contraseña en el registro.
const MinPasswordLength = 6

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: login, registro, logout y preferencias de sesión.
type AuthUseCase struct {
	authenticator ports.Authenticator
	sessions      *session.Manager
	jwtCfg        JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(authenticator ports.Authenticator, sessions *session.Manager, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{authenticator: authenticator, sessions: sessions, jwtCfg: jwtCfg}
}

// Login reenvía las credenciales al API, abre una sesión con la credencial devuelta y
// firma el token de la puerta, que solo referencia la sesión.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	email := strings.TrimSpace(in.Email)
	if email == "" || in.Password == "" {
		return nil, domain.Invalid("email", "Email y contraseña son obligatorios.")
	}
	res, err := uc.authenticator.Login(ctx, email, in.Password)
	if err != nil {
		return nil, err
	}
	user := session.User{ID: res.User.ID, Name: res.User.Name, Email: res.User.Email}
	if user.Email == "" {
		user.Email = email
	}
	sess, err := uc.sessions.Create(ctx, res.Token, user)
	if err != nil {
		return nil, err
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, sess.ID, user.Email, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		_ = uc.sessions.Delete(ctx, sess.ID)
		return nil, fmt.Errorf("firmar token: %w", err)
	}
	return &dto.LoginResponse{
		Token:     token,
		SessionID: sess.ID,
		User:      toUserResponse(user),
	}, nil
}

// Register valida el formulario localmente y crea la cuenta en el API.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) error {
	if err := ValidateRegister(in); err != nil {
		return err
	}
	return uc.authenticator.Register(ctx, strings.TrimSpace(in.Name), strings.TrimSpace(in.Email), in.Password)
}

// ValidateRegister reglas del formulario de registro.
func ValidateRegister(in dto.RegisterRequest) error {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Email) == "" || in.Password == "" || in.ConfirmPassword == "" {
		return domain.Invalid("name", "Todos los campos son obligatorios.")
	}
	if in.Password != in.ConfirmPassword {
		return domain.Invalid("confirm_password", "Las contraseñas no coinciden.")
	}
	if len(in.Password) < MinPasswordLength {
		return domain.Invalid("password", fmt.Sprintf("La contraseña debe tener al menos %d caracteres.", MinPasswordLength))
	}
	return nil
}

// Logout cierra la sesión.
func (uc *AuthUseCase) Logout(ctx context.Context, sessionID string) error {
	return uc.sessions.Delete(ctx, sessionID)
}

// Session resuelve la sesión referenciada por un token de la puerta.
func (uc *AuthUseCase) Session(ctx context.Context, sessionID string) (*session.Session, error) {
	s, err := uc.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, domain.ErrUnauthorized
	}
	return s, nil
}

// Settings devuelve las preferencias guardadas.
func (uc *AuthUseCase) Settings(ctx context.Context, sessionID string) (*dto.SettingsResponse, error) {
	s, err := uc.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return toSettingsResponse(s), nil
}

// UpdateSettings guarda las preferencias; sin cambios no se escribe nada.
func (uc *AuthUseCase) UpdateSettings(ctx context.Context, sessionID string, in dto.SettingsRequest) (*dto.SettingsResponse, error) {
	s, err := uc.sessions.UpdateSettings(ctx, sessionID, session.Settings{
		Name:  strings.TrimSpace(in.Name),
		Email: strings.TrimSpace(in.Email),
		Theme: in.Theme,
	})
	if err != nil {
		return nil, err
	}
	return toSettingsResponse(s), nil
}

func toUserResponse(u session.User) dto.UserResponse {
	return dto.UserResponse{ID: u.ID, Name: u.Name, Email: u.Email}
}

func toSettingsResponse(s *session.Session) *dto.SettingsResponse {
	return &dto.SettingsResponse{
		Name:      s.Settings.Name,
		Email:     s.Settings.Email,
		Theme:     s.Settings.Theme,
		UpdatedAt: s.UpdatedAt.Format(time.RFC3339),
	}
}
