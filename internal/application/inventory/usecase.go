package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/joansel25/farmacia-api/internal/application/dto"
	"github.com/joansel25/farmacia-api/internal/domain"
	"github.com/joansel25/farmacia-api/internal/domain/entity"
	domaininv "github.com/joansel25/farmacia-api/internal/domain/inventory"
	"github.com/joansel25/farmacia-api/internal/domain/repository"
)

// MovementUseCase registra y revierte movimientos de stock de forma
// transaccional, con bloqueo de fila (SELECT FOR UPDATE) y Commit/Rollback.
// Los movimientos no se editan: ciclo crear -> (opcional) eliminar.
type MovementUseCase struct {
	txRunner     TxRunner
	movementRepo repository.StockMovementRepository
	productRepo  repository.ProductRepository
	supplierRepo repository.SupplierRepository
	clientRepo   repository.ClientRepository
	employeeRepo repository.EmployeeRepository
}

// NewMovementUseCase construye el caso de uso.
func NewMovementUseCase(
	txRunner TxRunner,
	movementRepo repository.StockMovementRepository,
	productRepo repository.ProductRepository,
	supplierRepo repository.SupplierRepository,
	clientRepo repository.ClientRepository,
	employeeRepo repository.EmployeeRepository,
) *MovementUseCase {
	return &MovementUseCase{
		txRunner:     txRunner,
		movementRepo: movementRepo,
		productRepo:  productRepo,
		supplierRepo: supplierRepo,
		clientRepo:   clientRepo,
		employeeRepo: employeeRepo,
	}
}

// RegisterMovement valida el movimiento y lo compromete: bloquea la fila del
// producto, corre la puerta de validación contra el stock persistido, aplica
// el delta (+cantidad entrada, -cantidad salida) y guarda el registro, todo
// en una transacción. Cualquier fallo de validación aborta sin efectos.
func (uc *MovementUseCase) RegisterMovement(ctx context.Context, in dto.RegisterMovementRequest) (*dto.MovementResponse, error) {
	if in.ProductID == "" || in.Quantity < 1 {
		return nil, domain.ErrInvalidInput
	}
	if in.Type != entity.MovementTypeEntry && in.Type != entity.MovementTypeExit {
		return nil, domain.ErrInvalidInput
	}

	// Referencias de actores: deben existir antes de abrir la transacción.
	if in.SupplierID != "" {
		supplier, err := uc.supplierRepo.GetByID(in.SupplierID)
		if err != nil {
			return nil, err
		}
		if supplier == nil {
			return nil, domain.ErrNotFound
		}
	}
	if in.ClientID != "" {
		client, err := uc.clientRepo.GetByID(in.ClientID)
		if err != nil {
			return nil, err
		}
		if client == nil {
			return nil, domain.ErrNotFound
		}
	}
	if in.EmployeeID != "" {
		employee, err := uc.employeeRepo.GetByID(in.EmployeeID)
		if err != nil {
			return nil, err
		}
		if employee == nil {
			return nil, domain.ErrNotFound
		}
	}

	now := time.Now()
	mov := &entity.StockMovement{
		ID:         uuid.New().String(),
		Type:       in.Type,
		Quantity:   in.Quantity,
		Date:       now,
		ProductID:  in.ProductID,
		SupplierID: in.SupplierID,
		ClientID:   in.ClientID,
		EmployeeID: in.EmployeeID,
		CreatedAt:  now,
	}

	var resultingStock int64
	err := uc.txRunner.Run(ctx, func(
		movRepo repository.StockMovementRepository,
		productRepo repository.ProductRepository,
	) error {
		// Bloquea la fila del producto; la validación lee el stock persistido,
		// no una copia, y el bloqueo cubre hasta el commit.
		product, err := productRepo.GetForUpdate(in.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		if err := domaininv.ValidateMovement(mov, product.Stock); err != nil {
			return err
		}
		if err := productRepo.AdjustStock(product.ID, mov.StockDelta()); err != nil {
			return err
		}
		resultingStock = product.Stock + mov.StockDelta()
		return movRepo.Create(mov)
	})
	if err != nil {
		return nil, err
	}
	return toMovementResponse(mov, resultingStock), nil
}

// DeleteMovement revierte el efecto del movimiento sobre el stock y elimina el
// registro, en una transacción: eliminar una entrada resta lo sumado, eliminar
// una salida devuelve lo restado. Crear y eliminar el mismo movimiento deja el
// stock intacto. La reversión pasa por el mismo update condicional, así que si
// las unidades de una entrada ya se vendieron, se rechaza en vez de dejar
// stock negativo.
func (uc *MovementUseCase) DeleteMovement(ctx context.Context, id string) error {
	return uc.txRunner.Run(ctx, func(
		movRepo repository.StockMovementRepository,
		productRepo repository.ProductRepository,
	) error {
		mov, err := movRepo.GetByID(id)
		if err != nil {
			return err
		}
		if mov == nil {
			return domain.ErrNotFound
		}
		product, err := productRepo.GetForUpdate(mov.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		if err := productRepo.AdjustStock(product.ID, domaininv.ReverseDelta(mov)); err != nil {
			return err
		}
		return movRepo.Delete(mov.ID)
	})
}

// GetMovement obtiene un movimiento por ID.
func (uc *MovementUseCase) GetMovement(ctx context.Context, id string) (*dto.MovementResponse, error) {
	mov, err := uc.movementRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if mov == nil {
		return nil, domain.ErrNotFound
	}
	product, err := uc.productRepo.GetByID(mov.ProductID)
	if err != nil {
		return nil, err
	}
	stock := int64(0)
	if product != nil {
		stock = product.Stock
	}
	return toMovementResponse(mov, stock), nil
}

// ListMovements lista movimientos; con productID filtra por producto.
func (uc *MovementUseCase) ListMovements(ctx context.Context, productID string, page dto.PageRequest) ([]*dto.MovementResponse, error) {
	page.DefaultPage()
	var (
		movements []*entity.StockMovement
		err       error
	)
	if productID != "" {
		movements, err = uc.movementRepo.ListByProduct(productID, nil, nil, page.Limit, page.Offset)
	} else {
		movements, err = uc.movementRepo.List(page.Limit, page.Offset)
	}
	if err != nil {
		return nil, err
	}
	out := make([]*dto.MovementResponse, 0, len(movements))
	for _, m := range movements {
		out = append(out, toMovementResponse(m, 0))
	}
	return out, nil
}

func toMovementResponse(m *entity.StockMovement, productStock int64) *dto.MovementResponse {
	return &dto.MovementResponse{
		ID:           m.ID,
		Type:         m.Type,
		Quantity:     m.Quantity,
		Date:         m.Date,
		ProductID:    m.ProductID,
		SupplierID:   m.SupplierID,
		ClientID:     m.ClientID,
		EmployeeID:   m.EmployeeID,
		ProductStock: productStock,
	}
}
