package sales

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

// InvoiceUseCase crea facturas de venta descontando inventario en la misma
// transacción, y mantiene el total de la factura igual a la suma de los
// subtotales de sus detalles después de cada mutación.
type InvoiceUseCase struct {
	txRunner     TxRunner
	invoiceRepo  repository.InvoiceRepository
	clientRepo   repository.ClientRepository
	employeeRepo repository.EmployeeRepository
}

// NewInvoiceUseCase construye el caso de uso.
func NewInvoiceUseCase(
	txRunner TxRunner,
	invoiceRepo repository.InvoiceRepository,
	clientRepo repository.ClientRepository,
	employeeRepo repository.EmployeeRepository,
) *InvoiceUseCase {
	return &InvoiceUseCase{
		txRunner:     txRunner,
		invoiceRepo:  invoiceRepo,
		clientRepo:   clientRepo,
		employeeRepo: employeeRepo,
	}
}

// CreateInvoice crea la factura con sus líneas: por cada línea bloquea el
// producto, valida stock, descuenta la cantidad y congela el precio unitario
// vigente. El total queda como la suma de los subtotales. Si cualquier línea
// falla (p. ej. sin stock) toda la operación se revierte.
func (uc *InvoiceUseCase) CreateInvoice(ctx context.Context, in dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	if in.ClientID == "" || in.EmployeeID == "" || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	for _, item := range in.Items {
		if item.ProductID == "" || item.Quantity < 1 {
			return nil, domain.ErrInvalidInput
		}
	}

	client, err := uc.clientRepo.GetByID(in.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	employee, err := uc.employeeRepo.GetByID(in.EmployeeID)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, domain.ErrNotFound
	}
	if !employee.IsActive() {
		return nil, domain.ErrInactiveEmployee
	}

	now := time.Now()
	inv := &entity.Invoice{
		ID:         uuid.New().String(),
		Date:       now,
		ClientID:   in.ClientID,
		EmployeeID: in.EmployeeID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	var details []*entity.InvoiceDetail

	err = uc.txRunner.RunSales(ctx, func(
		productRepo repository.ProductRepository,
		invoiceRepo repository.InvoiceRepository,
	) error {
		for _, item := range in.Items {
			product, err := productRepo.GetForUpdate(item.ProductID)
			if err != nil {
				return err
			}
			if product == nil {
				return domain.ErrNotFound
			}
			if err := domaininv.ValidateSale(item.Quantity, product.Stock); err != nil {
				return err
			}
			if err := productRepo.AdjustStock(product.ID, -item.Quantity); err != nil {
				return err
			}
			details = append(details, &entity.InvoiceDetail{
				ID:        uuid.New().String(),
				InvoiceID: inv.ID,
				ProductID: product.ID,
				Quantity:  item.Quantity,
				UnitPrice: product.Price, // foto del precio vigente
				Subtotal:  domaininv.Subtotal(item.Quantity, product.Price),
			})
		}

		inv.Total = domaininv.InvoiceTotal(details)
		if err := invoiceRepo.Create(inv); err != nil {
			return err
		}
		for _, d := range details {
			if err := invoiceRepo.CreateDetail(d); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toInvoiceResponse(inv, details), nil
}

// GetInvoice obtiene una factura por ID con su detalle completo.
func (uc *InvoiceUseCase) GetInvoice(ctx context.Context, id string) (*dto.InvoiceResponse, error) {
	inv, err := uc.invoiceRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	details, err := uc.invoiceRepo.ListDetailsByInvoice(id)
	if err != nil {
		return nil, err
	}
	return toInvoiceResponse(inv, details), nil
}

// ListInvoices lista facturas (solo cabeceras) con paginación.
func (uc *InvoiceUseCase) ListInvoices(ctx context.Context, page dto.PageRequest) ([]*dto.InvoiceResponse, error) {
	page.DefaultPage()
	invoices, err := uc.invoiceRepo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.InvoiceResponse, 0, len(invoices))
	for _, inv := range invoices {
		out = append(out, toInvoiceResponse(inv, nil))
	}
	return out, nil
}

// DeleteInvoice elimina la factura devolviendo al inventario lo reservado por
// cada una de sus líneas, todo en una transacción.
func (uc *InvoiceUseCase) DeleteInvoice(ctx context.Context, id string) error {
	return uc.txRunner.RunSales(ctx, func(
		productRepo repository.ProductRepository,
		invoiceRepo repository.InvoiceRepository,
	) error {
		inv, err := invoiceRepo.GetByID(id)
		if err != nil {
			return err
		}
		if inv == nil {
			return domain.ErrNotFound
		}
		details, err := invoiceRepo.ListDetailsByInvoice(id)
		if err != nil {
			return err
		}
		for _, d := range details {
			if _, err := productRepo.GetForUpdate(d.ProductID); err != nil {
				return err
			}
			if err := productRepo.AdjustStock(d.ProductID, d.Quantity); err != nil {
				return err
			}
		}
		return invoiceRepo.Delete(id)
	})
}

func toInvoiceResponse(inv *entity.Invoice, details []*entity.InvoiceDetail) *dto.InvoiceResponse {
	resp := &dto.InvoiceResponse{
		ID:         inv.ID,
		Date:       inv.Date,
		Total:      inv.Total,
		ClientID:   inv.ClientID,
		EmployeeID: inv.EmployeeID,
		Details:    make([]dto.InvoiceDetailResponse, 0, len(details)),
	}
	for _, d := range details {
		resp.Details = append(resp.Details, dto.InvoiceDetailResponse{
			ID:        d.ID,
			ProductID: d.ProductID,
			Quantity:  d.Quantity,
			UnitPrice: d.UnitPrice,
			Subtotal:  d.Subtotal,
		})
	}
	return resp
}
