package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/joansel25/farmacia-api/internal/application/dto"
	"github.com/joansel25/farmacia-api/internal/domain"
	"github.com/joansel25/farmacia-api/internal/domain/entity"
	"github.com/joansel25/farmacia-api/internal/domain/repository"
)

// EmployeeUseCase casos de uso CRUD para empleados. El estado activo/inactivo
// controla si el empleado puede quedar asignado a facturas nuevas.
type EmployeeUseCase struct {
	repo repository.EmployeeRepository
}

// NewEmployeeUseCase construye el caso de uso.
func NewEmployeeUseCase(repo repository.EmployeeRepository) *EmployeeUseCase {
	return &EmployeeUseCase{repo: repo}
}

// Create crea un empleado. Por defecto queda activo.
func (uc *EmployeeUseCase) Create(in dto.EmployeeRequest) (*dto.EmployeeResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	status := in.Status
	if status == "" {
		status = entity.EmployeeStatusActive
	}
	if status != entity.EmployeeStatusActive && status != entity.EmployeeStatusInactive {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	employee := &entity.Employee{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Phone:     in.Phone,
		Position:  in.Position,
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(employee); err != nil {
		return nil, err
	}
	return toEmployeeResponse(employee), nil
}

// GetByID obtiene un empleado por ID.
func (uc *EmployeeUseCase) GetByID(id string) (*dto.EmployeeResponse, error) {
	employee, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, domain.ErrNotFound
	}
	return toEmployeeResponse(employee), nil
}

// Update actualiza un empleado, incluido su estado.
func (uc *EmployeeUseCase) Update(id string, in dto.EmployeeRequest) (*dto.EmployeeResponse, error) {
	employee, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != "" {
		employee.Name = in.Name
	}
	if in.Phone != "" {
		employee.Phone = in.Phone
	}
	if in.Position != "" {
		employee.Position = in.Position
	}
	if in.Status != "" {
		if in.Status != entity.EmployeeStatusActive && in.Status != entity.EmployeeStatusInactive {
			return nil, domain.ErrInvalidInput
		}
		employee.Status = in.Status
	}
	employee.UpdatedAt = time.Now()
	if err := uc.repo.Update(employee); err != nil {
		return nil, err
	}
	return toEmployeeResponse(employee), nil
}

// List lista empleados con paginación.
func (uc *EmployeeUseCase) List(page dto.PageRequest) ([]*dto.EmployeeResponse, error) {
	page.DefaultPage()
	employees, err := uc.repo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		out = append(out, toEmployeeResponse(e))
	}
	return out, nil
}

// Delete elimina un empleado.
func (uc *EmployeeUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toEmployeeResponse(e *entity.Employee) *dto.EmployeeResponse {
	return &dto.EmployeeResponse{
		ID:        e.ID,
		Name:      e.Name,
		Phone:     e.Phone,
		Position:  e.Position,
		Status:    e.Status,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}
