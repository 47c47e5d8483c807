package reports

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/joansel25/farmacia-api/internal/domain/entity"
)

// InvoiceLine línea de factura lista para imprimir (nombre de producto resuelto).
type InvoiceLine struct {
	ProductName string
	Quantity    int64
	UnitPrice   decimal.Decimal
	Subtotal    decimal.Decimal
}

// InvoicePDFData datos completos de la factura para su representación gráfica.
type InvoicePDFData struct {
	Invoice  *entity.Invoice
	Client   *entity.Client
	Employee *entity.Employee
	Lines    []InvoiceLine
}

// MovementRow movimiento con sus referencias resueltas a nombres.
type MovementRow struct {
	Movement     *entity.StockMovement
	ProductName  string
	SupplierName string
	ClientName   string
}

// ProductRow producto con su categoría resuelta a nombre.
type ProductRow struct {
	Product      *entity.Product
	CategoryName string
}

// PDFGenerator genera los reportes en PDF (puerto implementado en infraestructura).
type PDFGenerator interface {
	InvoicePDF(ctx context.Context, data *InvoicePDFData) ([]byte, error)
	ProductsPDF(ctx context.Context, rows []ProductRow) ([]byte, error)
	MovementsPDF(ctx context.Context, rows []MovementRow) ([]byte, error)
}
