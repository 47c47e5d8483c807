package inventory_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joansel25/farmacia-api/internal/domain"
	"github.com/joansel25/farmacia-api/internal/domain/entity"
	"github.com/joansel25/farmacia-api/internal/domain/inventory"
)

func TestValidateMovement(t *testing.T) {
	cases := []struct {
		name     string
		movement *entity.StockMovement
		stock    int64
		wantErr  error
	}{
		{
			name:     "entrada válida con proveedor",
			movement: &entity.StockMovement{Type: entity.MovementTypeEntry, Quantity: 10, SupplierID: "prov-1"},
			stock:    0,
			wantErr:  nil,
		},
		{
			name:     "entrada sin proveedor",
			movement: &entity.StockMovement{Type: entity.MovementTypeEntry, Quantity: 10},
			stock:    0,
			wantErr:  domain.ErrMissingSupplier,
		},
		{
			name:     "salida válida con cliente y stock",
			movement: &entity.StockMovement{Type: entity.MovementTypeExit, Quantity: 5, ClientID: "cli-1"},
			stock:    5,
			wantErr:  nil,
		},
		{
			name:     "salida sin cliente",
			movement: &entity.StockMovement{Type: entity.MovementTypeExit, Quantity: 5},
			stock:    100,
			wantErr:  domain.ErrMissingClient,
		},
		{
			name:     "salida con stock insuficiente",
			movement: &entity.StockMovement{Type: entity.MovementTypeExit, Quantity: 6, ClientID: "cli-1"},
			stock:    5,
			wantErr:  domain.ErrInsufficientStock,
		},
		{
			name:     "cantidad cero",
			movement: &entity.StockMovement{Type: entity.MovementTypeEntry, Quantity: 0, SupplierID: "prov-1"},
			stock:    0,
			wantErr:  domain.ErrInvalidInput,
		},
		{
			name:     "cantidad negativa",
			movement: &entity.StockMovement{Type: entity.MovementTypeExit, Quantity: -3, ClientID: "cli-1"},
			stock:    100,
			wantErr:  domain.ErrInvalidInput,
		},
		{
			name:     "tipo desconocido",
			movement: &entity.StockMovement{Type: "ajuste", Quantity: 1},
			stock:    100,
			wantErr:  domain.ErrInvalidInput,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := inventory.ValidateMovement(tc.movement, tc.stock)
			if tc.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tc.wantErr)
			}
		})
	}
}

func TestValidateSale(t *testing.T) {
	assert.NoError(t, inventory.ValidateSale(30, 100))
	assert.NoError(t, inventory.ValidateSale(100, 100), "vender exactamente el stock disponible es válido")
	assert.ErrorIs(t, inventory.ValidateSale(101, 100), domain.ErrInsufficientStock)
	assert.ErrorIs(t, inventory.ValidateSale(0, 100), domain.ErrInvalidInput)
	assert.ErrorIs(t, inventory.ValidateSale(-1, 100), domain.ErrInvalidInput)
}

func TestStockDelta_EntradaSumaSalidaResta(t *testing.T) {
	entrada := &entity.StockMovement{Type: entity.MovementTypeEntry, Quantity: 7}
	salida := &entity.StockMovement{Type: entity.MovementTypeExit, Quantity: 7}

	assert.Equal(t, int64(7), entrada.StockDelta())
	assert.Equal(t, int64(-7), salida.StockDelta())
}

func TestReverseDelta_DeshaceElMovimiento(t *testing.T) {
	entrada := &entity.StockMovement{Type: entity.MovementTypeEntry, Quantity: 12}
	salida := &entity.StockMovement{Type: entity.MovementTypeExit, Quantity: 12}

	// Aplicar y revertir deja el stock neto en cero.
	assert.Equal(t, int64(0), entrada.StockDelta()+inventory.ReverseDelta(entrada))
	assert.Equal(t, int64(0), salida.StockDelta()+inventory.ReverseDelta(salida))
}

func TestSubtotal(t *testing.T) {
	price := decimal.RequireFromString("10.50")
	got := inventory.Subtotal(30, price)
	assert.True(t, got.Equal(decimal.RequireFromString("315.00")),
		"30 unidades a 10.50 deben dar 315.00, no %s", got)
}

func TestInvoiceTotal_EsSumaDeSubtotales(t *testing.T) {
	details := []*entity.InvoiceDetail{
		{Subtotal: decimal.RequireFromString("315.00")},
		{Subtotal: decimal.RequireFromString("42.25")},
		{Subtotal: decimal.RequireFromString("0.75")},
	}
	total := inventory.InvoiceTotal(details)
	require.True(t, total.Equal(decimal.RequireFromString("358.00")), "total = %s", total)

	assert.True(t, inventory.InvoiceTotal(nil).IsZero(), "factura sin detalles totaliza cero")
}
