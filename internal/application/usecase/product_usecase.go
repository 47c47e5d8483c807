package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/joansel25/farmacia-api/internal/application/dto"
	"github.com/joansel25/farmacia-api/internal/domain"
	"github.com/joansel25/farmacia-api/internal/domain/entity"
	"github.com/joansel25/farmacia-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos. Stock solo se fija en la
// creación (inventario inicial); después se muta vía movimientos y ventas.
type ProductUseCase struct {
	repo         repository.ProductRepository
	categoryRepo repository.CategoryRepository
	supplierRepo repository.SupplierRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(
	repo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	supplierRepo repository.SupplierRepository,
) *ProductUseCase {
	return &ProductUseCase{repo: repo, categoryRepo: categoryRepo, supplierRepo: supplierRepo}
}

// Create crea un nuevo producto validando categoría y proveedor.
func (uc *ProductUseCase) Create(in dto.ProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" || in.CategoryID == "" || in.SupplierID == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Price.LessThan(decimal.Zero) || in.Stock < 0 {
		return nil, domain.ErrInvalidInput
	}
	category, err := uc.categoryRepo.GetByID(in.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	supplier, err := uc.supplierRepo.GetByID(in.SupplierID)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	product := &entity.Product{
		ID:         uuid.New().String(),
		Name:       in.Name,
		Price:      in.Price,
		Stock:      in.Stock,
		CategoryID: in.CategoryID,
		SupplierID: in.SupplierID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product), nil
}

// Update actualiza nombre, precio, categoría y proveedor. El stock no se toca
// por esta vía (se maneja con movimientos).
func (uc *ProductUseCase) Update(id string, in dto.ProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != "" {
		product.Name = in.Name
	}
	if in.Price.GreaterThan(decimal.Zero) {
		product.Price = in.Price
	}
	if in.CategoryID != "" {
		product.CategoryID = in.CategoryID
	}
	if in.SupplierID != "" {
		product.SupplierID = in.SupplierID
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List lista productos con paginación.
func (uc *ProductUseCase) List(page dto.PageRequest) ([]*dto.ProductResponse, error) {
	page.DefaultPage()
	products, err := uc.repo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toProductResponse(p))
	}
	return out, nil
}

// Delete elimina un producto.
func (uc *ProductUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:         p.ID,
		Name:       p.Name,
		Price:      p.Price,
		Stock:      p.Stock,
		CategoryID: p.CategoryID,
		SupplierID: p.SupplierID,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}
