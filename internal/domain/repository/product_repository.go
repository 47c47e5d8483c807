package repository

import "github.com/joansel25/farmacia-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// GetForUpdate y AdjustStock se usan dentro de transacciones para garantizar
// que la validación y la mutación de stock vean la misma fila bloqueada.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	// GetForUpdate bloquea la fila del producto (SELECT FOR UPDATE).
	GetForUpdate(id string) (*entity.Product, error)
	// AdjustStock aplica un delta con la condición stock + delta >= 0 en el
	// propio UPDATE; retorna domain.ErrInsufficientStock si no afecta filas.
	AdjustStock(id string, delta int64) error
	Update(product *entity.Product) error
	List(limit, offset int) ([]*entity.Product, error)
	Delete(id string) error
}
