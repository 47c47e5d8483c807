package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joansel25/farmacia-api/internal/application/dto"
	"github.com/joansel25/farmacia-api/internal/application/usecase"
	"github.com/joansel25/farmacia-api/internal/domain"
	"github.com/joansel25/farmacia-api/internal/domain/entity"
)

type fakeEmployeeRepo struct {
	employees map[string]*entity.Employee
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{employees: make(map[string]*entity.Employee)}
}

func (r *fakeEmployeeRepo) Create(e *entity.Employee) error {
	cp := *e
	r.employees[e.ID] = &cp
	return nil
}

func (r *fakeEmployeeRepo) GetByID(id string) (*entity.Employee, error) {
	e, ok := r.employees[id]
	if !ok {
		return nil, nil
	}
	cp := *e
	return &cp, nil
}

func (r *fakeEmployeeRepo) Update(e *entity.Employee) error {
	cp := *e
	r.employees[e.ID] = &cp
	return nil
}

func (r *fakeEmployeeRepo) List(int, int) ([]*entity.Employee, error) {
	out := make([]*entity.Employee, 0, len(r.employees))
	for _, e := range r.employees {
		cp := *e
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeEmployeeRepo) Delete(id string) error {
	delete(r.employees, id)
	return nil
}

func TestEmployeeCreate_PorDefectoActivo(t *testing.T) {
	uc := usecase.NewEmployeeUseCase(newFakeEmployeeRepo())

	out, err := uc.Create(dto.EmployeeRequest{Name: "Luis Gómez", Position: "farmaceuta"})
	require.NoError(t, err)

	assert.Equal(t, entity.EmployeeStatusActive, out.Status)
}

func TestEmployeeCreate_EstadoInvalido_Rechaza(t *testing.T) {
	uc := usecase.NewEmployeeUseCase(newFakeEmployeeRepo())

	_, err := uc.Create(dto.EmployeeRequest{Name: "Luis Gómez", Status: "vacaciones"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestEmployeeCreate_SinNombre_Rechaza(t *testing.T) {
	uc := usecase.NewEmployeeUseCase(newFakeEmployeeRepo())

	_, err := uc.Create(dto.EmployeeRequest{Position: "cajero"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestEmployeeUpdate_CambiaEstado(t *testing.T) {
	repo := newFakeEmployeeRepo()
	uc := usecase.NewEmployeeUseCase(repo)

	created, err := uc.Create(dto.EmployeeRequest{Name: "Luis Gómez"})
	require.NoError(t, err)

	out, err := uc.Update(created.ID, dto.EmployeeRequest{Status: entity.EmployeeStatusInactive})
	require.NoError(t, err)
	assert.Equal(t, entity.EmployeeStatusInactive, out.Status)

	// Campos no enviados se conservan.
	assert.Equal(t, "Luis Gómez", out.Name)
}

func TestEmployeeUpdate_EstadoInvalido_Rechaza(t *testing.T) {
	repo := newFakeEmployeeRepo()
	uc := usecase.NewEmployeeUseCase(repo)

	created, err := uc.Create(dto.EmployeeRequest{Name: "Luis Gómez"})
	require.NoError(t, err)

	_, err = uc.Update(created.ID, dto.EmployeeRequest{Status: "suspendido"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestEmployeeGetByID_Inexistente_Retorna404(t *testing.T) {
	uc := usecase.NewEmployeeUseCase(newFakeEmployeeRepo())

	_, err := uc.GetByID("no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
