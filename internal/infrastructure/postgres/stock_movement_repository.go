package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/joansel25/farmacia-api/internal/domain"
	"github.com/joansel25/farmacia-api/internal/domain/entity"
	"github.com/joansel25/farmacia-api/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

// StockMovementRepo implementación sobre PostgreSQL (usable con pool o tx).
type StockMovementRepo struct {
	q Querier
}

// NewStockMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockMovementRepository(q Querier) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

const movementColumns = `id, type, quantity, date, product_id, supplier_id, client_id, employee_id, created_at`

// Create persiste un movimiento de stock.
func (r *StockMovementRepo) Create(movement *entity.StockMovement) error {
	if movement.ID == "" {
		movement.ID = uuid.New().String()
	}
	query := `
		INSERT INTO stock_movements (id, type, quantity, date, product_id, supplier_id, client_id, employee_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		movement.ID, movement.Type, movement.Quantity, movement.Date, movement.ProductID,
		nullIfEmpty(movement.SupplierID), nullIfEmpty(movement.ClientID), nullIfEmpty(movement.EmployeeID),
		movement.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create stock movement: %w", err)
	}
	return nil
}

func scanMovement(row pgx.Row) (*entity.StockMovement, error) {
	var m entity.StockMovement
	var supplierID, clientID, employeeID *string
	err := row.Scan(&m.ID, &m.Type, &m.Quantity, &m.Date, &m.ProductID,
		&supplierID, &clientID, &employeeID, &m.CreatedAt)
	if err != nil {
		return nil, err
	}
	if supplierID != nil {
		m.SupplierID = *supplierID
	}
	if clientID != nil {
		m.ClientID = *clientID
	}
	if employeeID != nil {
		m.EmployeeID = *employeeID
	}
	return &m, nil
}

// GetByID obtiene un movimiento por ID.
func (r *StockMovementRepo) GetByID(id string) (*entity.StockMovement, error) {
	query := `SELECT ` + movementColumns + ` FROM stock_movements WHERE id = $1`
	m, err := scanMovement(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movement: %w", err)
	}
	return m, nil
}

// ListByProduct lista movimientos de un producto en un rango de fechas.
func (r *StockMovementRepo) ListByProduct(productID string, from, to *time.Time, limit, offset int) ([]*entity.StockMovement, error) {
	query := `SELECT ` + movementColumns + ` FROM stock_movements WHERE product_id = $1`
	args := []any{productID}
	pos := 2
	if from != nil {
		query += fmt.Sprintf(" AND date >= $%d", pos)
		args = append(args, *from)
		pos++
	}
	if to != nil {
		query += fmt.Sprintf(" AND date <= $%d", pos)
		args = append(args, *to)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY date DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	return r.queryMovements(query, args...)
}

// List lista movimientos con paginación.
func (r *StockMovementRepo) List(limit, offset int) ([]*entity.StockMovement, error) {
	query := `SELECT ` + movementColumns + ` FROM stock_movements ORDER BY date DESC LIMIT $1 OFFSET $2`
	return r.queryMovements(query, limit, offset)
}

func (r *StockMovementRepo) queryMovements(query string, args ...any) ([]*entity.StockMovement, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockMovement
	for rows.Next() {
		m, err := scanMovement(rows)
		if err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

// Delete elimina un movimiento por ID. La reversión del stock la hace el caso
// de uso en la misma transacción, antes de llamar aquí.
func (r *StockMovementRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM stock_movements WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete movement: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
