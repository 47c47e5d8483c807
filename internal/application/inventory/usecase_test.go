package inventory_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joansel25/farmacia-api/internal/application/dto"
	"github.com/joansel25/farmacia-api/internal/application/inventory"
	"github.com/joansel25/farmacia-api/internal/domain"
	"github.com/joansel25/farmacia-api/internal/domain/entity"
	"github.com/joansel25/farmacia-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria. El fakeTxRunner emula Commit/Rollback: toma una foto del
// estado antes de ejecutar fn y la restaura si fn falla, igual que haría la
// transacción real en Postgres.
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func newFakeProductRepo(products ...*entity.Product) *fakeProductRepo {
	r := &fakeProductRepo{products: make(map[string]*entity.Product)}
	for _, p := range products {
		cp := *p
		r.products[p.ID] = &cp
	}
	return r
}

func (r *fakeProductRepo) Create(p *entity.Product) error {
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	return r.GetByID(id)
}

func (r *fakeProductRepo) AdjustStock(id string, delta int64) error {
	p, ok := r.products[id]
	if !ok {
		return domain.ErrNotFound
	}
	if p.Stock+delta < 0 {
		return domain.ErrInsufficientStock
	}
	p.Stock += delta
	return nil
}

func (r *fakeProductRepo) Update(p *entity.Product) error {
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(r.products))
	for _, p := range r.products {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeProductRepo) Delete(id string) error {
	delete(r.products, id)
	return nil
}

type fakeMovementRepo struct {
	movements map[string]*entity.StockMovement
}

func newFakeMovementRepo() *fakeMovementRepo {
	return &fakeMovementRepo{movements: make(map[string]*entity.StockMovement)}
}

func (r *fakeMovementRepo) Create(m *entity.StockMovement) error {
	cp := *m
	r.movements[m.ID] = &cp
	return nil
}

func (r *fakeMovementRepo) GetByID(id string) (*entity.StockMovement, error) {
	m, ok := r.movements[id]
	if !ok {
		return nil, nil
	}
	cp := *m
	return &cp, nil
}

func (r *fakeMovementRepo) ListByProduct(productID string, from, to *time.Time, limit, offset int) ([]*entity.StockMovement, error) {
	var out []*entity.StockMovement
	for _, m := range r.movements {
		if m.ProductID == productID {
			cp := *m
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeMovementRepo) List(limit, offset int) ([]*entity.StockMovement, error) {
	out := make([]*entity.StockMovement, 0, len(r.movements))
	for _, m := range r.movements {
		cp := *m
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeMovementRepo) Delete(id string) error {
	delete(r.movements, id)
	return nil
}

type fakeSupplierRepo struct{ suppliers map[string]*entity.Supplier }

func (r *fakeSupplierRepo) Create(s *entity.Supplier) error             { r.suppliers[s.ID] = s; return nil }
func (r *fakeSupplierRepo) GetByID(id string) (*entity.Supplier, error) { return r.suppliers[id], nil }
func (r *fakeSupplierRepo) Update(*entity.Supplier) error               { return nil }
func (r *fakeSupplierRepo) List(int, int) ([]*entity.Supplier, error)   { return nil, nil }
func (r *fakeSupplierRepo) Delete(string) error                         { return nil }

type fakeClientRepo struct{ clients map[string]*entity.Client }

func (r *fakeClientRepo) Create(c *entity.Client) error             { r.clients[c.ID] = c; return nil }
func (r *fakeClientRepo) GetByID(id string) (*entity.Client, error) { return r.clients[id], nil }
func (r *fakeClientRepo) Update(*entity.Client) error               { return nil }
func (r *fakeClientRepo) List(int, int) ([]*entity.Client, error)   { return nil, nil }
func (r *fakeClientRepo) Delete(string) error                       { return nil }

type fakeEmployeeRepo struct{ employees map[string]*entity.Employee }

func (r *fakeEmployeeRepo) Create(e *entity.Employee) error             { r.employees[e.ID] = e; return nil }
func (r *fakeEmployeeRepo) GetByID(id string) (*entity.Employee, error) { return r.employees[id], nil }
func (r *fakeEmployeeRepo) Update(*entity.Employee) error               { return nil }
func (r *fakeEmployeeRepo) List(int, int) ([]*entity.Employee, error)   { return nil, nil }
func (r *fakeEmployeeRepo) Delete(string) error                         { return nil }

type fakeTxRunner struct {
	movRepo     *fakeMovementRepo
	productRepo *fakeProductRepo
}

func (tx *fakeTxRunner) Run(ctx context.Context, fn func(
	movRepo repository.StockMovementRepository,
	productRepo repository.ProductRepository,
) error) error {
	productsBefore := snapshotProducts(tx.productRepo)
	movementsBefore := snapshotMovements(tx.movRepo)
	if err := fn(tx.movRepo, tx.productRepo); err != nil {
		tx.productRepo.products = productsBefore
		tx.movRepo.movements = movementsBefore
		return err
	}
	return nil
}

func snapshotProducts(r *fakeProductRepo) map[string]*entity.Product {
	snap := make(map[string]*entity.Product, len(r.products))
	for id, p := range r.products {
		cp := *p
		snap[id] = &cp
	}
	return snap
}

func snapshotMovements(r *fakeMovementRepo) map[string]*entity.StockMovement {
	snap := make(map[string]*entity.StockMovement, len(r.movements))
	for id, m := range r.movements {
		cp := *m
		snap[id] = &cp
	}
	return snap
}

// ──────────────────────────────────────────────────────────────────────────────
// Setup
// ──────────────────────────────────────────────────────────────────────────────

const (
	productID  = "prod-1"
	supplierID = "prov-1"
	clientID   = "cli-1"
)

func newTestUseCase(initialStock int64) (*inventory.MovementUseCase, *fakeProductRepo, *fakeMovementRepo) {
	productRepo := newFakeProductRepo(&entity.Product{
		ID:    productID,
		Name:  "Acetaminofén 500mg",
		Price: decimal.RequireFromString("10.50"),
		Stock: initialStock,
	})
	movementRepo := newFakeMovementRepo()
	supplierRepo := &fakeSupplierRepo{suppliers: map[string]*entity.Supplier{
		supplierID: {ID: supplierID, Name: "Distribuidora Norte"},
	}}
	clientRepo := &fakeClientRepo{clients: map[string]*entity.Client{
		clientID: {ID: clientID, Name: "Ana Pérez"},
	}}
	employeeRepo := &fakeEmployeeRepo{employees: map[string]*entity.Employee{}}
	tx := &fakeTxRunner{movRepo: movementRepo, productRepo: productRepo}

	uc := inventory.NewMovementUseCase(tx, movementRepo, productRepo, supplierRepo, clientRepo, employeeRepo)
	return uc, productRepo, movementRepo
}

func stockOf(t *testing.T, repo *fakeProductRepo, id string) int64 {
	t.Helper()
	p, err := repo.GetByID(id)
	require.NoError(t, err)
	require.NotNil(t, p)
	return p.Stock
}

// ──────────────────────────────────────────────────────────────────────────────
// RegisterMovement
// ──────────────────────────────────────────────────────────────────────────────

func TestRegisterMovement_EntradaSumaStock(t *testing.T) {
	uc, productRepo, movementRepo := newTestUseCase(10)

	out, err := uc.RegisterMovement(context.Background(), dto.RegisterMovementRequest{
		ProductID:  productID,
		Type:       entity.MovementTypeEntry,
		Quantity:   5,
		SupplierID: supplierID,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(15), out.ProductStock, "la respuesta debe traer el stock resultante")
	assert.Equal(t, int64(15), stockOf(t, productRepo, productID))

	stored, err := movementRepo.GetByID(out.ID)
	require.NoError(t, err)
	require.NotNil(t, stored, "el movimiento debe quedar persistido")
	assert.Equal(t, entity.MovementTypeEntry, stored.Type)
	assert.Equal(t, int64(5), stored.Quantity)
}

func TestRegisterMovement_SalidaRestaStock(t *testing.T) {
	uc, productRepo, _ := newTestUseCase(10)

	out, err := uc.RegisterMovement(context.Background(), dto.RegisterMovementRequest{
		ProductID: productID,
		Type:      entity.MovementTypeExit,
		Quantity:  4,
		ClientID:  clientID,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(6), out.ProductStock)
	assert.Equal(t, int64(6), stockOf(t, productRepo, productID))
}

func TestRegisterMovement_SalidaSinStock_RechazaSinEfectos(t *testing.T) {
	uc, productRepo, movementRepo := newTestUseCase(5)

	_, err := uc.RegisterMovement(context.Background(), dto.RegisterMovementRequest{
		ProductID: productID,
		Type:      entity.MovementTypeExit,
		Quantity:  6,
		ClientID:  clientID,
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.Equal(t, int64(5), stockOf(t, productRepo, productID), "el stock no debe cambiar")
	movements, _ := movementRepo.List(100, 0)
	assert.Empty(t, movements, "no debe quedar ningún movimiento persistido")
}

func TestRegisterMovement_SalidaExacta_DejaStockCero(t *testing.T) {
	uc, productRepo, _ := newTestUseCase(5)

	_, err := uc.RegisterMovement(context.Background(), dto.RegisterMovementRequest{
		ProductID: productID,
		Type:      entity.MovementTypeExit,
		Quantity:  5,
		ClientID:  clientID,
	})
	require.NoError(t, err, "vender exactamente el stock disponible es válido")
	assert.Equal(t, int64(0), stockOf(t, productRepo, productID))
}

func TestRegisterMovement_EntradaSinProveedor_Rechaza(t *testing.T) {
	uc, productRepo, _ := newTestUseCase(10)

	_, err := uc.RegisterMovement(context.Background(), dto.RegisterMovementRequest{
		ProductID: productID,
		Type:      entity.MovementTypeEntry,
		Quantity:  5,
	})
	assert.ErrorIs(t, err, domain.ErrMissingSupplier)
	assert.Equal(t, int64(10), stockOf(t, productRepo, productID))
}

func TestRegisterMovement_SalidaSinCliente_Rechaza(t *testing.T) {
	uc, productRepo, _ := newTestUseCase(10)

	_, err := uc.RegisterMovement(context.Background(), dto.RegisterMovementRequest{
		ProductID: productID,
		Type:      entity.MovementTypeExit,
		Quantity:  5,
	})
	assert.ErrorIs(t, err, domain.ErrMissingClient)
	assert.Equal(t, int64(10), stockOf(t, productRepo, productID))
}

func TestRegisterMovement_ProveedorInexistente_Rechaza(t *testing.T) {
	uc, _, _ := newTestUseCase(10)

	_, err := uc.RegisterMovement(context.Background(), dto.RegisterMovementRequest{
		ProductID:  productID,
		Type:       entity.MovementTypeEntry,
		Quantity:   5,
		SupplierID: "no-existe",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRegisterMovement_ProductoInexistente_Rechaza(t *testing.T) {
	uc, _, _ := newTestUseCase(10)

	_, err := uc.RegisterMovement(context.Background(), dto.RegisterMovementRequest{
		ProductID:  "no-existe",
		Type:       entity.MovementTypeEntry,
		Quantity:   5,
		SupplierID: supplierID,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRegisterMovement_DatosInvalidos_Rechaza(t *testing.T) {
	uc, _, _ := newTestUseCase(10)

	cases := []dto.RegisterMovementRequest{
		{ProductID: productID, Type: entity.MovementTypeEntry, Quantity: 0, SupplierID: supplierID},
		{ProductID: productID, Type: entity.MovementTypeEntry, Quantity: -2, SupplierID: supplierID},
		{ProductID: productID, Type: "ajuste", Quantity: 3},
		{ProductID: "", Type: entity.MovementTypeEntry, Quantity: 3, SupplierID: supplierID},
	}
	for _, in := range cases {
		_, err := uc.RegisterMovement(context.Background(), in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// DeleteMovement — reversión
// ──────────────────────────────────────────────────────────────────────────────

func TestDeleteMovement_RoundTripDejaStockIntacto(t *testing.T) {
	uc, productRepo, movementRepo := newTestUseCase(10)

	out, err := uc.RegisterMovement(context.Background(), dto.RegisterMovementRequest{
		ProductID:  productID,
		Type:       entity.MovementTypeEntry,
		Quantity:   7,
		SupplierID: supplierID,
	})
	require.NoError(t, err)
	require.Equal(t, int64(17), stockOf(t, productRepo, productID))

	require.NoError(t, uc.DeleteMovement(context.Background(), out.ID))

	assert.Equal(t, int64(10), stockOf(t, productRepo, productID),
		"crear y eliminar el mismo movimiento debe dejar el stock como estaba")
	gone, _ := movementRepo.GetByID(out.ID)
	assert.Nil(t, gone, "el movimiento debe desaparecer")
}

func TestDeleteMovement_SalidaDevuelveStock(t *testing.T) {
	uc, productRepo, _ := newTestUseCase(10)

	out, err := uc.RegisterMovement(context.Background(), dto.RegisterMovementRequest{
		ProductID: productID,
		Type:      entity.MovementTypeExit,
		Quantity:  3,
		ClientID:  clientID,
	})
	require.NoError(t, err)
	require.Equal(t, int64(7), stockOf(t, productRepo, productID))

	require.NoError(t, uc.DeleteMovement(context.Background(), out.ID))
	assert.Equal(t, int64(10), stockOf(t, productRepo, productID))
}

func TestDeleteMovement_EntradaYaVendida_Rechaza(t *testing.T) {
	uc, productRepo, movementRepo := newTestUseCase(0)

	// Entrada de 10 unidades...
	entrada, err := uc.RegisterMovement(context.Background(), dto.RegisterMovementRequest{
		ProductID:  productID,
		Type:       entity.MovementTypeEntry,
		Quantity:   10,
		SupplierID: supplierID,
	})
	require.NoError(t, err)

	// ...de las cuales 8 ya salieron.
	_, err = uc.RegisterMovement(context.Background(), dto.RegisterMovementRequest{
		ProductID: productID,
		Type:      entity.MovementTypeExit,
		Quantity:  8,
		ClientID:  clientID,
	})
	require.NoError(t, err)
	require.Equal(t, int64(2), stockOf(t, productRepo, productID))

	// Revertir la entrada restaría 10 con solo 2 disponibles.
	err = uc.DeleteMovement(context.Background(), entrada.ID)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.Equal(t, int64(2), stockOf(t, productRepo, productID), "el stock no debe cambiar")
	still, _ := movementRepo.GetByID(entrada.ID)
	assert.NotNil(t, still, "el movimiento debe seguir existiendo tras el rechazo")
}

func TestDeleteMovement_Inexistente_Retorna404(t *testing.T) {
	uc, _, _ := newTestUseCase(10)
	err := uc.DeleteMovement(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
