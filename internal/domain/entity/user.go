package entity

import "time"

// Roles de usuario de la plataforma.
const (
	RoleAdmin      = "admin"
	RoleOperador   = "operador"
	RoleSupervisor = "supervisor"
)

// User operador del panel de estaciones.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	Role         string // admin | operador | supervisor
	Status       string // active | disabled
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
