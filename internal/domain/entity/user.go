package entity

import "time"

// User representa un usuario del sistema.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Role         string // admin, user, viewer
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
