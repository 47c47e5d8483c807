package repository

import (
	"time"

	"github.com/joansel25/farmacia-api/internal/domain/entity"
)

// StockMovementRepository define el puerto de persistencia para movimientos de stock.
// No hay Update: los movimientos son inmutables una vez comprometidos.
type StockMovementRepository interface {
	Create(movement *entity.StockMovement) error
	GetByID(id string) (*entity.StockMovement, error)
	ListByProduct(productID string, from, to *time.Time, limit, offset int) ([]*entity.StockMovement, error)
	List(limit, offset int) ([]*entity.StockMovement, error)
	Delete(id string) error
}
