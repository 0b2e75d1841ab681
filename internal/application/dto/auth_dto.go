package dto

// LoginRequest entrada para login; se reenvía al API de inventario.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest entrada para registro de usuario en el API de inventario.
type RegisterRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

// UserResponse usuario autenticado.
type UserResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// LoginResponse token de la puerta (referencia a la sesión) y usuario.
type LoginResponse struct {
	Token     string       `json:"token"`
	SessionID string       `json:"session_id"`
	User      UserResponse `json:"user"`
}

// SettingsRequest preferencias del usuario (PUT /dashboard/settings).
type SettingsRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Theme string `json:"theme"`
}

// SettingsResponse preferencias guardadas en la sesión.
type SettingsResponse struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Theme     string `json:"theme"`
	UpdatedAt string `json:"updated_at"`
}
