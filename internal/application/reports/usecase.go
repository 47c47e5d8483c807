package reports

import (
	"context"
	"fmt"

	"github.com/joansel25/farmacia-api/internal/domain"
	"github.com/joansel25/farmacia-api/internal/domain/entity"
	"github.com/joansel25/farmacia-api/internal/domain/repository"
)

// reportListLimit tope de filas para los reportes "todos".
const reportListLimit = 1000

// ReportUseCase arma los datos de cada reporte (resolviendo referencias a
// nombres) y delega el dibujo al generador PDF.
type ReportUseCase struct {
	invoiceRepo  repository.InvoiceRepository
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	supplierRepo repository.SupplierRepository
	clientRepo   repository.ClientRepository
	employeeRepo repository.EmployeeRepository
	movementRepo repository.StockMovementRepository
	generator    PDFGenerator
}

// NewReportUseCase construye el caso de uso inyectando todas sus dependencias.
func NewReportUseCase(
	invoiceRepo repository.InvoiceRepository,
	productRepo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	supplierRepo repository.SupplierRepository,
	clientRepo repository.ClientRepository,
	employeeRepo repository.EmployeeRepository,
	movementRepo repository.StockMovementRepository,
	generator PDFGenerator,
) *ReportUseCase {
	return &ReportUseCase{
		invoiceRepo:  invoiceRepo,
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		supplierRepo: supplierRepo,
		clientRepo:   clientRepo,
		employeeRepo: employeeRepo,
		movementRepo: movementRepo,
		generator:    generator,
	}
}

// InvoicePDF genera el PDF de una factura con sus líneas.
// Retorna (bytes, filename, error).
func (uc *ReportUseCase) InvoicePDF(ctx context.Context, invoiceID string) ([]byte, string, error) {
	inv, err := uc.invoiceRepo.GetByID(invoiceID)
	if err != nil {
		return nil, "", err
	}
	if inv == nil {
		return nil, "", domain.ErrNotFound
	}
	client, err := uc.clientRepo.GetByID(inv.ClientID)
	if err != nil {
		return nil, "", err
	}
	employee, err := uc.employeeRepo.GetByID(inv.EmployeeID)
	if err != nil {
		return nil, "", err
	}
	details, err := uc.invoiceRepo.ListDetailsByInvoice(invoiceID)
	if err != nil {
		return nil, "", err
	}
	lines := make([]InvoiceLine, 0, len(details))
	for _, d := range details {
		name, err := uc.productName(d.ProductID)
		if err != nil {
			return nil, "", err
		}
		lines = append(lines, InvoiceLine{
			ProductName: name,
			Quantity:    d.Quantity,
			UnitPrice:   d.UnitPrice,
			Subtotal:    d.Subtotal,
		})
	}
	pdf, err := uc.generator.InvoicePDF(ctx, &InvoicePDFData{
		Invoice:  inv,
		Client:   client,
		Employee: employee,
		Lines:    lines,
	})
	if err != nil {
		return nil, "", fmt.Errorf("generar PDF de factura: %w", err)
	}
	return pdf, fmt.Sprintf("factura_%s.pdf", inv.ID), nil
}

// ProductsPDF genera el listado de todos los productos con su categoría.
func (uc *ReportUseCase) ProductsPDF(ctx context.Context) ([]byte, string, error) {
	products, err := uc.productRepo.List(reportListLimit, 0)
	if err != nil {
		return nil, "", err
	}
	rows := make([]ProductRow, 0, len(products))
	for _, p := range products {
		name, err := uc.categoryName(p.CategoryID)
		if err != nil {
			return nil, "", err
		}
		rows = append(rows, ProductRow{Product: p, CategoryName: name})
	}
	pdf, err := uc.generator.ProductsPDF(ctx, rows)
	if err != nil {
		return nil, "", fmt.Errorf("generar PDF de productos: %w", err)
	}
	return pdf, "todos_productos.pdf", nil
}

// ProductPDF genera la ficha de un producto concreto.
func (uc *ReportUseCase) ProductPDF(ctx context.Context, productID string) ([]byte, string, error) {
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, "", err
	}
	if product == nil {
		return nil, "", domain.ErrNotFound
	}
	name, err := uc.categoryName(product.CategoryID)
	if err != nil {
		return nil, "", err
	}
	pdf, err := uc.generator.ProductsPDF(ctx, []ProductRow{{Product: product, CategoryName: name}})
	if err != nil {
		return nil, "", fmt.Errorf("generar PDF de producto: %w", err)
	}
	return pdf, fmt.Sprintf("producto_%s.pdf", product.ID), nil
}

// MovementPDF genera el reporte de un movimiento concreto.
func (uc *ReportUseCase) MovementPDF(ctx context.Context, movementID string) ([]byte, string, error) {
	mov, err := uc.movementRepo.GetByID(movementID)
	if err != nil {
		return nil, "", err
	}
	if mov == nil {
		return nil, "", domain.ErrNotFound
	}
	row, err := uc.movementRow(mov)
	if err != nil {
		return nil, "", err
	}
	pdf, err := uc.generator.MovementsPDF(ctx, []MovementRow{row})
	if err != nil {
		return nil, "", fmt.Errorf("generar PDF de movimiento: %w", err)
	}
	return pdf, fmt.Sprintf("movimiento_%s.pdf", mov.ID), nil
}

// MovementsPDF genera el listado completo de movimientos de inventario.
func (uc *ReportUseCase) MovementsPDF(ctx context.Context) ([]byte, string, error) {
	movements, err := uc.movementRepo.List(reportListLimit, 0)
	if err != nil {
		return nil, "", err
	}
	rows := make([]MovementRow, 0, len(movements))
	for _, m := range movements {
		row, err := uc.movementRow(m)
		if err != nil {
			return nil, "", err
		}
		rows = append(rows, row)
	}
	pdf, err := uc.generator.MovementsPDF(ctx, rows)
	if err != nil {
		return nil, "", fmt.Errorf("generar PDF de movimientos: %w", err)
	}
	return pdf, "todos_movimientos.pdf", nil
}

// movementRow resuelve las referencias del movimiento a nombres. Una referencia
// inexistente deja la celda vacía; un fallo del repositorio corta el reporte.
func (uc *ReportUseCase) movementRow(m *entity.StockMovement) (MovementRow, error) {
	name, err := uc.productName(m.ProductID)
	if err != nil {
		return MovementRow{}, err
	}
	row := MovementRow{Movement: m, ProductName: name}
	if m.SupplierID != "" {
		s, err := uc.supplierRepo.GetByID(m.SupplierID)
		if err != nil {
			return MovementRow{}, fmt.Errorf("resolver proveedor %s: %w", m.SupplierID, err)
		}
		if s != nil {
			row.SupplierName = s.Name
		}
	}
	if m.ClientID != "" {
		c, err := uc.clientRepo.GetByID(m.ClientID)
		if err != nil {
			return MovementRow{}, fmt.Errorf("resolver cliente %s: %w", m.ClientID, err)
		}
		if c != nil {
			row.ClientName = c.Name
		}
	}
	return row, nil
}

func (uc *ReportUseCase) productName(id string) (string, error) {
	p, err := uc.productRepo.GetByID(id)
	if err != nil {
		return "", fmt.Errorf("resolver producto %s: %w", id, err)
	}
	if p == nil {
		return "", nil
	}
	return p.Name, nil
}

func (uc *ReportUseCase) categoryName(id string) (string, error) {
	c, err := uc.categoryRepo.GetByID(id)
	if err != nil {
		return "", fmt.Errorf("resolver categoría %s: %w", id, err)
	}
	if c == nil {
		return "", nil
	}
	return c.Name, nil
}
