package entity

import "time"

// Tipos de movimiento de stock.
const (
	MovementTypeEntry = "entrada" // requiere proveedor
	MovementTypeExit  = "salida"  // requiere cliente
)

// StockMovement representa un movimiento de inventario (entrada o salida).
// Las entradas exigen proveedor y las salidas cliente; EmployeeID es el
// responsable opcional del movimiento. Los movimientos son inmutables:
// una corrección se hace eliminando y registrando de nuevo.
type StockMovement struct {
	ID         string
	Type       string // entrada, salida
	Quantity   int64
	Date       time.Time // inmutable, fijada al crear
	ProductID  string
	SupplierID string // obligatorio si Type == entrada
	ClientID   string // obligatorio si Type == salida
	EmployeeID string // responsable, opcional
	CreatedAt  time.Time
}

// StockDelta devuelve el efecto del movimiento sobre el stock del producto:
// +Quantity para entradas, -Quantity para salidas.
func (m *StockMovement) StockDelta() int64 {
	if m.Type == MovementTypeEntry {
		return m.Quantity
	}
	return -m.Quantity
}
