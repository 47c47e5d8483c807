package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice representa la cabecera de una factura de venta.
// Date se fija en la creación y no cambia. Total es derivado: suma de los
// subtotales de sus detalles vigentes; nunca se asigna desde afuera.
type Invoice struct {
	ID         string
	Date       time.Time
	Total      decimal.Decimal
	ClientID   string
	EmployeeID string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
