package dto

import "time"

// RegisterRequest entrada para registro de usuario (password en claro, se hashea en el use case).
// Acepta JSON o form-urlencoded; los nombres de campo siguen el formulario original.
type RegisterRequest struct {
	Nome  string `json:"nome" form:"nome"`
	Email string `json:"email" form:"email"`
	Senha string `json:"senha" form:"senha"`
}

// UserResponse salida de un usuario (nunca incluye la contraseña ni su hash).
type UserResponse struct {
	ID        string    `json:"id"`
	Nome      string    `json:"nome"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// LoginRequest entrada para autenticación.
type LoginRequest struct {
	Email string `json:"email" form:"email"`
	Senha string `json:"senha" form:"senha"`
}

// LoginResponse salida con token JWT y el usuario autenticado.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
