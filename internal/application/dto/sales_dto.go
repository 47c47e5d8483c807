package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateInvoiceItem línea solicitada al crear una factura. El precio unitario
// no se acepta del cliente: se toma del producto al momento de crear.
type CreateInvoiceItem struct {
	ProductID string `json:"product_id"`
	Quantity  int64  `json:"quantity"`
}

// CreateInvoiceRequest body para POST /api/facturas.
type CreateInvoiceRequest struct {
	ClientID   string              `json:"client_id"`
	EmployeeID string              `json:"employee_id"`
	Items      []CreateInvoiceItem `json:"items"`
}

// AddDetailRequest body para POST /api/facturas/:id/detalles.
type AddDetailRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int64  `json:"quantity"`
}

// UpdateDetailRequest body para PUT /api/detalles/:id. Solo la cantidad es
// editable; el precio unitario quedó congelado en la creación.
type UpdateDetailRequest struct {
	Quantity int64 `json:"quantity"`
}

// InvoiceDetailResponse línea de detalle serializada.
type InvoiceDetailResponse struct {
	ID        string          `json:"id"`
	ProductID string          `json:"product_id"`
	Quantity  int64           `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// InvoiceResponse factura serializada con sus detalles.
type InvoiceResponse struct {
	ID         string                  `json:"id"`
	Date       time.Time               `json:"date"`
	Total      decimal.Decimal         `json:"total"`
	ClientID   string                  `json:"client_id"`
	EmployeeID string                  `json:"employee_id"`
	Details    []InvoiceDetailResponse `json:"details"`
}
