package entity

import "time"

// Estados de un empleado.
const (
	EmployeeStatusActive   = "activo"
	EmployeeStatusInactive = "inactivo"
)

// Employee representa un empleado de la farmacia. Solo empleados activos
// pueden quedar asignados a una factura de venta.
type Employee struct {
	ID        string
	Name      string
	Phone     string
	Position  string // cargo: farmaceuta, cajero, etc.
	Status    string // activo, inactivo
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive indica si el empleado puede operar ventas.
func (e *Employee) IsActive() bool {
	return e.Status == EmployeeStatusActive
}
