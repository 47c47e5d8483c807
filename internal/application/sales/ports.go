package sales

import (
	"context"

	"github.com/joansel25/farmacia-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción que incluye los repos
// del flujo de ventas: el descuento de stock y la escritura de factura/detalle
// comparten Commit/Rollback.
type TxRunner interface {
	RunSales(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		invoiceRepo repository.InvoiceRepository,
	) error) error
}
