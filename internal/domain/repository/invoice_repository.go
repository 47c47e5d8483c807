package repository

import (
	"github.com/shopspring/decimal"

	"github.com/joansel25/farmacia-api/internal/domain/entity"
)

// InvoiceRepository define el puerto de persistencia para facturas y sus detalles.
type InvoiceRepository interface {
	Create(invoice *entity.Invoice) error
	GetByID(id string) (*entity.Invoice, error)
	// UpdateTotal escribe el total derivado (usado por el agregador de facturas).
	UpdateTotal(invoiceID string, total decimal.Decimal) error
	List(limit, offset int) ([]*entity.Invoice, error)
	Delete(id string) error

	CreateDetail(detail *entity.InvoiceDetail) error
	GetDetailByID(id string) (*entity.InvoiceDetail, error)
	// UpdateDetail persiste cantidad y subtotal; el precio unitario no cambia.
	UpdateDetail(detail *entity.InvoiceDetail) error
	ListDetailsByInvoice(invoiceID string) ([]*entity.InvoiceDetail, error)
	DeleteDetail(id string) error
}
