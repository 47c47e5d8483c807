package entity

import "github.com/shopspring/decimal"

// InvoiceDetail representa una línea de detalle de una factura de venta.
// UnitPrice es una foto del precio del producto al momento de crear la línea;
// cambios posteriores del precio del producto no la afectan.
// Subtotal siempre es Quantity * UnitPrice, recalculado en cada guardado.
type InvoiceDetail struct {
	ID        string
	InvoiceID string
	ProductID string
	Quantity  int64
	UnitPrice decimal.Decimal
	Subtotal  decimal.Decimal
}
