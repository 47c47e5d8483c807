package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CategoryRequest body para crear/actualizar categorías.
type CategoryRequest struct {
	Name string `json:"name"`
}

// CategoryResponse categoría serializada.
type CategoryResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SupplierRequest body para crear/actualizar proveedores.
type SupplierRequest struct {
	Name    string `json:"name"`
	Contact string `json:"contact"`
}

// SupplierResponse proveedor serializado.
type SupplierResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Contact   string    `json:"contact"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ProductRequest body para crear/actualizar productos. Stock solo se acepta
// en la creación (inventario inicial); después se muta vía movimientos.
type ProductRequest struct {
	Name       string          `json:"name"`
	Price      decimal.Decimal `json:"price"`
	Stock      int64           `json:"stock,omitempty"`
	CategoryID string          `json:"category_id"`
	SupplierID string          `json:"supplier_id"`
}

// ProductResponse producto serializado.
type ProductResponse struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Price      decimal.Decimal `json:"price"`
	Stock      int64           `json:"stock"`
	CategoryID string          `json:"category_id"`
	SupplierID string          `json:"supplier_id"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// ClientRequest body para crear/actualizar clientes.
type ClientRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// ClientResponse cliente serializado.
type ClientResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// EmployeeRequest body para crear/actualizar empleados.
type EmployeeRequest struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Position string `json:"position"`
	Status   string `json:"status,omitempty"`
}

// EmployeeResponse empleado serializado.
type EmployeeResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Position  string    `json:"position"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
