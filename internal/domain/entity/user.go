package entity

import "time"

// User representa un usuario del sistema (tabla usuarios).
type User struct {
	ID        string
	Nome      string
	Email     string // único, comparación exacta
	SenhaHash string // bcrypt hash, nunca la contraseña en claro
	CreatedAt time.Time
}
