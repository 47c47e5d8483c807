package sales_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joansel25/farmacia-api/internal/application/dto"
	"github.com/joansel25/farmacia-api/internal/domain"
)

// factura base: stock 100, precio 10.50, una línea de 30 unidades.
func createBaseInvoice(t *testing.T, f *fixture) *dto.InvoiceResponse {
	t.Helper()
	out, err := f.uc.CreateInvoice(context.Background(), dto.CreateInvoiceRequest{
		ClientID:   clientID,
		EmployeeID: employeeID,
		Items:      []dto.CreateInvoiceItem{{ProductID: productID, Quantity: 30}},
	})
	require.NoError(t, err)
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// AddDetail
// ──────────────────────────────────────────────────────────────────────────────

func TestAddDetail_DescuentaStockYRecalculaTotal(t *testing.T) {
	f := newFixture(100, "10.50")
	inv := createBaseInvoice(t, f)

	detail, err := f.uc.AddDetail(context.Background(), inv.ID, dto.AddDetailRequest{
		ProductID: productID,
		Quantity:  10,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(60), f.stock(t, productID), "70 - 10 = 60")
	assert.True(t, detail.Subtotal.Equal(decimal.RequireFromString("105.00")))

	// total = 315.00 + 105.00 = 420.00, y siempre igual a la suma de subtotales
	assert.True(t, f.total(t, inv.ID).Equal(decimal.RequireFromString("420.00")),
		"total = %s", f.total(t, inv.ID))
	assert.True(t, f.total(t, inv.ID).Equal(f.sumSubtotals(t, inv.ID)))
}

func TestAddDetail_SinStock_RechazaSinEfectos(t *testing.T) {
	f := newFixture(100, "10.50")
	inv := createBaseInvoice(t, f) // stock queda en 70

	_, err := f.uc.AddDetail(context.Background(), inv.ID, dto.AddDetailRequest{
		ProductID: productID,
		Quantity:  71,
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.Equal(t, int64(70), f.stock(t, productID))
	assert.True(t, f.total(t, inv.ID).Equal(decimal.RequireFromString("315.00")),
		"el total no debe cambiar tras el rechazo")
}

func TestAddDetail_FacturaInexistente_Retorna404(t *testing.T) {
	f := newFixture(100, "10.50")
	_, err := f.uc.AddDetail(context.Background(), "no-existe", dto.AddDetailRequest{
		ProductID: productID,
		Quantity:  1,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// UpdateDetail
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdateDetail_AumentaCantidad_AjustaPorDelta(t *testing.T) {
	f := newFixture(100, "10.50")
	inv := createBaseInvoice(t, f)
	detailID := inv.Details[0].ID

	out, err := f.uc.UpdateDetail(context.Background(), detailID, dto.UpdateDetailRequest{Quantity: 40})
	require.NoError(t, err)

	assert.Equal(t, int64(60), f.stock(t, productID), "solo el delta de 10 sale del inventario")
	assert.True(t, out.Subtotal.Equal(decimal.RequireFromString("420.00")), "40 * 10.50")
	assert.True(t, f.total(t, inv.ID).Equal(f.sumSubtotals(t, inv.ID)))
}

func TestUpdateDetail_ReduceCantidad_DevuelveStock(t *testing.T) {
	f := newFixture(100, "10.50")
	inv := createBaseInvoice(t, f)
	detailID := inv.Details[0].ID

	out, err := f.uc.UpdateDetail(context.Background(), detailID, dto.UpdateDetailRequest{Quantity: 20})
	require.NoError(t, err)

	assert.Equal(t, int64(80), f.stock(t, productID), "las 10 unidades liberadas regresan")
	assert.True(t, out.Subtotal.Equal(decimal.RequireFromString("210.00")))
	assert.True(t, f.total(t, inv.ID).Equal(decimal.RequireFromString("210.00")))
}

// El precio unitario queda congelado en la creación de la línea: cambiar el
// precio del producto después no altera subtotales ni totales existentes.
func TestUpdateDetail_PrecioCongelado(t *testing.T) {
	f := newFixture(100, "10.50")
	inv := createBaseInvoice(t, f)
	detailID := inv.Details[0].ID

	// Sube el precio del producto a 99.99 después de la venta.
	p, err := f.productRepo.GetByID(productID)
	require.NoError(t, err)
	p.Price = decimal.RequireFromString("99.99")
	require.NoError(t, f.productRepo.Update(p))

	out, err := f.uc.UpdateDetail(context.Background(), detailID, dto.UpdateDetailRequest{Quantity: 10})
	require.NoError(t, err)

	assert.True(t, out.UnitPrice.Equal(decimal.RequireFromString("10.50")),
		"el precio unitario congelado no debe cambiar")
	assert.True(t, out.Subtotal.Equal(decimal.RequireFromString("105.00")),
		"el subtotal se recalcula con el precio congelado, no el vigente")
}

func TestUpdateDetail_DeltaSinStock_Rechaza(t *testing.T) {
	f := newFixture(100, "10.50")
	inv := createBaseInvoice(t, f) // stock 70
	detailID := inv.Details[0].ID

	// Pasar de 30 a 101 pide 71 unidades más con solo 70 disponibles.
	_, err := f.uc.UpdateDetail(context.Background(), detailID, dto.UpdateDetailRequest{Quantity: 101})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.Equal(t, int64(70), f.stock(t, productID))
	assert.True(t, f.total(t, inv.ID).Equal(decimal.RequireFromString("315.00")))
}

func TestUpdateDetail_CantidadInvalida_Rechaza(t *testing.T) {
	f := newFixture(100, "10.50")
	inv := createBaseInvoice(t, f)
	detailID := inv.Details[0].ID

	_, err := f.uc.UpdateDetail(context.Background(), detailID, dto.UpdateDetailRequest{Quantity: 0})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// DeleteDetail
// ──────────────────────────────────────────────────────────────────────────────

func TestDeleteDetail_DevuelveStockYRecalculaTotal(t *testing.T) {
	f := newFixture(100, "10.50")
	inv := createBaseInvoice(t, f)

	second, err := f.uc.AddDetail(context.Background(), inv.ID, dto.AddDetailRequest{
		ProductID: productID,
		Quantity:  10,
	})
	require.NoError(t, err)
	require.Equal(t, int64(60), f.stock(t, productID))

	require.NoError(t, f.uc.DeleteDetail(context.Background(), second.ID))

	assert.Equal(t, int64(70), f.stock(t, productID), "las unidades de la línea regresan")
	assert.True(t, f.total(t, inv.ID).Equal(decimal.RequireFromString("315.00")),
		"el total vuelve al de la línea restante")
	assert.True(t, f.total(t, inv.ID).Equal(f.sumSubtotals(t, inv.ID)))
}

func TestDeleteDetail_UltimaLinea_TotalQuedaEnCero(t *testing.T) {
	f := newFixture(100, "10.50")
	inv := createBaseInvoice(t, f)

	require.NoError(t, f.uc.DeleteDetail(context.Background(), inv.Details[0].ID))

	assert.Equal(t, int64(100), f.stock(t, productID))
	assert.True(t, f.total(t, inv.ID).IsZero(), "factura sin detalles totaliza cero")
}

func TestDeleteDetail_Inexistente_Retorna404(t *testing.T) {
	f := newFixture(100, "10.50")
	err := f.uc.DeleteDetail(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
