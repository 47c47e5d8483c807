// Package inventory contiene las reglas puras de consistencia de stock y
// totales de venta (servicios de dominio, sin persistencia).
package inventory

import (
	"github.com/shopspring/decimal"

	"github.com/joansel25/farmacia-api/internal/domain"
	"github.com/joansel25/farmacia-api/internal/domain/entity"
)

// ValidateMovement aplica la puerta de validación de un movimiento antes de
// comprometerlo: cantidad positiva, actor según tipo (proveedor para
// entradas, cliente para salidas) y stock suficiente en salidas.
// availableStock debe ser el valor leído bajo bloqueo dentro de la misma
// transacción que aplicará el movimiento.
func ValidateMovement(m *entity.StockMovement, availableStock int64) error {
	if m.Quantity < 1 {
		return domain.ErrInvalidInput
	}
	switch m.Type {
	case entity.MovementTypeEntry:
		if m.SupplierID == "" {
			return domain.ErrMissingSupplier
		}
	case entity.MovementTypeExit:
		if m.ClientID == "" {
			return domain.ErrMissingClient
		}
		if availableStock < m.Quantity {
			return domain.ErrInsufficientStock
		}
	default:
		return domain.ErrInvalidInput
	}
	return nil
}

// ValidateSale valida una línea de venta: cantidad positiva y stock suficiente.
func ValidateSale(quantity, availableStock int64) error {
	if quantity < 1 {
		return domain.ErrInvalidInput
	}
	if availableStock < quantity {
		return domain.ErrInsufficientStock
	}
	return nil
}

// Subtotal calcula el subtotal de una línea: cantidad * precio unitario.
func Subtotal(quantity int64, unitPrice decimal.Decimal) decimal.Decimal {
	return decimal.NewFromInt(quantity).Mul(unitPrice)
}

// ReverseDelta devuelve el delta que deshace el efecto de un movimiento ya
// comprometido: eliminar una entrada resta, eliminar una salida suma.
// Crear y luego eliminar un movimiento deja el stock exactamente como estaba.
func ReverseDelta(m *entity.StockMovement) int64 {
	return -m.StockDelta()
}

// InvoiceTotal suma los subtotales de los detalles vigentes de una factura.
func InvoiceTotal(details []*entity.InvoiceDetail) decimal.Decimal {
	total := decimal.Zero
	for _, d := range details {
		total = total.Add(d.Subtotal)
	}
	return total
}
