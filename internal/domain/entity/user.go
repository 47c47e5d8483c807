package entity

import "time"

// Roles válidos para User (controlan el acceso a cada grupo de rutas).
const (
	RoleAdmin    = "administrador"
	RoleEmployee = "empleado"
	RoleClient   = "cliente"
	RoleProvider = "proveedor"
)

// User representa un usuario del sistema con credenciales y rol.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Role         string // administrador, empleado, cliente, proveedor
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
