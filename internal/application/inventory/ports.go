package inventory

import (
	"context"

	"github.com/joansel25/farmacia-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que la validación de stock y la
// mutación se comprometan (o reviertan) juntas.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.StockMovementRepository,
		productRepo repository.ProductRepository,
	) error) error
}
