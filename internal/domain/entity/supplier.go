package entity

import "time"

// Supplier representa un proveedor de productos (requerido en movimientos de entrada).
type Supplier struct {
	ID        string
	Name      string
	Contact   string // teléfono o email de contacto, único
	CreatedAt time.Time
	UpdatedAt time.Time
}
