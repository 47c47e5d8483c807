package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/joansel25/farmacia-api/internal/application/dto"
	"github.com/joansel25/farmacia-api/internal/domain"
	"github.com/joansel25/farmacia-api/internal/domain/entity"
	"github.com/joansel25/farmacia-api/internal/domain/repository"
)

// SupplierUseCase casos de uso CRUD para proveedores.
type SupplierUseCase struct {
	repo repository.SupplierRepository
}

// NewSupplierUseCase construye el caso de uso.
func NewSupplierUseCase(repo repository.SupplierRepository) *SupplierUseCase {
	return &SupplierUseCase{repo: repo}
}

// Create crea un proveedor. El contacto es único (ErrDuplicate si se repite).
func (uc *SupplierUseCase) Create(in dto.SupplierRequest) (*dto.SupplierResponse, error) {
	if in.Name == "" || in.Contact == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	supplier := &entity.Supplier{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Contact:   in.Contact,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(supplier); err != nil {
		return nil, err
	}
	return toSupplierResponse(supplier), nil
}

// GetByID obtiene un proveedor por ID.
func (uc *SupplierUseCase) GetByID(id string) (*dto.SupplierResponse, error) {
	supplier, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrNotFound
	}
	return toSupplierResponse(supplier), nil
}

// Update actualiza un proveedor.
func (uc *SupplierUseCase) Update(id string, in dto.SupplierRequest) (*dto.SupplierResponse, error) {
	supplier, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != "" {
		supplier.Name = in.Name
	}
	if in.Contact != "" {
		supplier.Contact = in.Contact
	}
	supplier.UpdatedAt = time.Now()
	if err := uc.repo.Update(supplier); err != nil {
		return nil, err
	}
	return toSupplierResponse(supplier), nil
}

// List lista proveedores con paginación.
func (uc *SupplierUseCase) List(page dto.PageRequest) ([]*dto.SupplierResponse, error) {
	page.DefaultPage()
	suppliers, err := uc.repo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.SupplierResponse, 0, len(suppliers))
	for _, s := range suppliers {
		out = append(out, toSupplierResponse(s))
	}
	return out, nil
}

// Delete elimina un proveedor.
func (uc *SupplierUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toSupplierResponse(s *entity.Supplier) *dto.SupplierResponse {
	return &dto.SupplierResponse{
		ID:        s.ID,
		Name:      s.Name,
		Contact:   s.Contact,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}
