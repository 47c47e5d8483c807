package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/joansel25/farmacia-api/internal/domain"
	"github.com/joansel25/farmacia-api/internal/domain/entity"
	"github.com/joansel25/farmacia-api/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo implementación de InvoiceRepository (usable con pool o tx).
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

// Create persiste la cabecera de la factura.
func (r *InvoiceRepo) Create(invoice *entity.Invoice) error {
	if invoice.ID == "" {
		invoice.ID = uuid.New().String()
	}
	query := `
		INSERT INTO invoices (id, date, total, client_id, employee_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		invoice.ID, invoice.Date, invoice.Total, invoice.ClientID, invoice.EmployeeID,
		invoice.CreatedAt, invoice.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert invoice: %w", err)
	}
	return nil
}

// GetByID obtiene una factura por ID.
func (r *InvoiceRepo) GetByID(id string) (*entity.Invoice, error) {
	query := `
		SELECT id, date, total, client_id, employee_id, created_at, updated_at
		FROM invoices WHERE id = $1`
	var inv entity.Invoice
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&inv.ID, &inv.Date, &inv.Total, &inv.ClientID, &inv.EmployeeID, &inv.CreatedAt, &inv.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	return &inv, nil
}

// UpdateTotal escribe el total derivado de la factura. La fecha nunca se toca.
func (r *InvoiceRepo) UpdateTotal(invoiceID string, total decimal.Decimal) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE invoices SET total = $2, updated_at = now() WHERE id = $1`,
		invoiceID, total,
	)
	if err != nil {
		return fmt.Errorf("update invoice total: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista facturas con paginación.
func (r *InvoiceRepo) List(limit, offset int) ([]*entity.Invoice, error) {
	query := `
		SELECT id, date, total, client_id, employee_id, created_at, updated_at
		FROM invoices ORDER BY date DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()
	var list []*entity.Invoice
	for rows.Next() {
		var inv entity.Invoice
		if err := rows.Scan(&inv.ID, &inv.Date, &inv.Total, &inv.ClientID, &inv.EmployeeID, &inv.CreatedAt, &inv.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		list = append(list, &inv)
	}
	return list, rows.Err()
}

// Delete elimina una factura; los detalles caen por ON DELETE CASCADE.
func (r *InvoiceRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM invoices WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete invoice: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// CreateDetail persiste una línea de detalle.
func (r *InvoiceRepo) CreateDetail(detail *entity.InvoiceDetail) error {
	if detail.ID == "" {
		detail.ID = uuid.New().String()
	}
	query := `
		INSERT INTO invoice_details (id, invoice_id, product_id, quantity, unit_price, subtotal)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		detail.ID, detail.InvoiceID, detail.ProductID, detail.Quantity, detail.UnitPrice, detail.Subtotal,
	)
	if err != nil {
		return fmt.Errorf("insert invoice detail: %w", err)
	}
	return nil
}

// GetDetailByID obtiene una línea de detalle por ID.
func (r *InvoiceRepo) GetDetailByID(id string) (*entity.InvoiceDetail, error) {
	query := `
		SELECT id, invoice_id, product_id, quantity, unit_price, subtotal
		FROM invoice_details WHERE id = $1`
	var d entity.InvoiceDetail
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&d.ID, &d.InvoiceID, &d.ProductID, &d.Quantity, &d.UnitPrice, &d.Subtotal,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice detail: %w", err)
	}
	return &d, nil
}

// UpdateDetail persiste cantidad y subtotal de una línea. UnitPrice es la foto
// tomada al crear y no se actualiza.
func (r *InvoiceRepo) UpdateDetail(detail *entity.InvoiceDetail) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE invoice_details SET quantity = $2, subtotal = $3 WHERE id = $1`,
		detail.ID, detail.Quantity, detail.Subtotal,
	)
	if err != nil {
		return fmt.Errorf("update invoice detail: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListDetailsByInvoice lista los detalles vigentes de una factura.
func (r *InvoiceRepo) ListDetailsByInvoice(invoiceID string) ([]*entity.InvoiceDetail, error) {
	query := `
		SELECT id, invoice_id, product_id, quantity, unit_price, subtotal
		FROM invoice_details WHERE invoice_id = $1 ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("list invoice details: %w", err)
	}
	defer rows.Close()
	var list []*entity.InvoiceDetail
	for rows.Next() {
		var d entity.InvoiceDetail
		if err := rows.Scan(&d.ID, &d.InvoiceID, &d.ProductID, &d.Quantity, &d.UnitPrice, &d.Subtotal); err != nil {
			return nil, fmt.Errorf("scan invoice detail: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

// DeleteDetail elimina una línea de detalle.
func (r *InvoiceRepo) DeleteDetail(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM invoice_details WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete invoice detail: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
