package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/joansel25/farmacia-api/internal/domain"
	"github.com/joansel25/farmacia-api/internal/domain/entity"
	"github.com/joansel25/farmacia-api/internal/domain/repository"
)

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

// SupplierRepo implementación de SupplierRepository sobre PostgreSQL.
type SupplierRepo struct {
	q Querier
}

// NewSupplierRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSupplierRepository(q Querier) *SupplierRepo {
	return &SupplierRepo{q: q}
}

// Create persiste un nuevo proveedor. El contacto es único.
func (r *SupplierRepo) Create(supplier *entity.Supplier) error {
	if supplier.ID == "" {
		supplier.ID = uuid.New().String()
	}
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO suppliers (id, name, contact, created_at, updated_at) VALUES ($1, $2, $3, $4, $5)`,
		supplier.ID, supplier.Name, supplier.Contact, supplier.CreatedAt, supplier.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert supplier: %w", err)
	}
	return nil
}

// GetByID obtiene un proveedor por ID.
func (r *SupplierRepo) GetByID(id string) (*entity.Supplier, error) {
	var s entity.Supplier
	err := r.q.QueryRow(context.Background(),
		`SELECT id, name, contact, created_at, updated_at FROM suppliers WHERE id = $1`, id,
	).Scan(&s.ID, &s.Name, &s.Contact, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get supplier: %w", err)
	}
	return &s, nil
}

// Update actualiza un proveedor.
func (r *SupplierRepo) Update(supplier *entity.Supplier) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE suppliers SET name = $2, contact = $3, updated_at = $4 WHERE id = $1`,
		supplier.ID, supplier.Name, supplier.Contact, supplier.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update supplier: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista proveedores con paginación.
func (r *SupplierRepo) List(limit, offset int) ([]*entity.Supplier, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, name, contact, created_at, updated_at FROM suppliers ORDER BY name LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Supplier
	for rows.Next() {
		var s entity.Supplier
		if err := rows.Scan(&s.ID, &s.Name, &s.Contact, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan supplier: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Delete elimina un proveedor por ID.
func (r *SupplierRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM suppliers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete supplier: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
