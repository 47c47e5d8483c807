package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del inventario de la farmacia.
// Stock es la cantidad disponible; solo se muta vía movimientos y ventas
// (nunca por un update directo del producto). Invariante: Stock >= 0.
type Product struct {
	ID         string
	Name       string
	Price      decimal.Decimal // precio de venta vigente
	Stock      int64
	CategoryID string
	SupplierID string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
