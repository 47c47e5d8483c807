package dto

import "time"

// RegisterMovementRequest body para POST /api/movimientos.
// Para entradas SupplierID es obligatorio; para salidas ClientID.
type RegisterMovementRequest struct {
	ProductID  string `json:"product_id"`
	Type       string `json:"type"` // entrada, salida
	Quantity   int64  `json:"quantity"`
	SupplierID string `json:"supplier_id,omitempty"`
	ClientID   string `json:"client_id,omitempty"`
	EmployeeID string `json:"employee_id,omitempty"`
}

// MovementResponse movimiento serializado, con el stock resultante del producto.
type MovementResponse struct {
	ID           string    `json:"id"`
	Type         string    `json:"type"`
	Quantity     int64     `json:"quantity"`
	Date         time.Time `json:"date"`
	ProductID    string    `json:"product_id"`
	SupplierID   string    `json:"supplier_id,omitempty"`
	ClientID     string    `json:"client_id,omitempty"`
	EmployeeID   string    `json:"employee_id,omitempty"`
	ProductStock int64     `json:"product_stock"`
}
