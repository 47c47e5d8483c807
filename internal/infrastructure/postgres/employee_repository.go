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

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

// EmployeeRepo implementación de EmployeeRepository sobre PostgreSQL.
type EmployeeRepo struct {
	q Querier
}

// NewEmployeeRepository construye el adaptador. Pasar pool o tx (Querier).
func NewEmployeeRepository(q Querier) *EmployeeRepo {
	return &EmployeeRepo{q: q}
}

// Create persiste un nuevo empleado.
func (r *EmployeeRepo) Create(employee *entity.Employee) error {
	if employee.ID == "" {
		employee.ID = uuid.New().String()
	}
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO employees (id, name, phone, position, status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		employee.ID, employee.Name, employee.Phone, employee.Position, employee.Status,
		employee.CreatedAt, employee.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert employee: %w", err)
	}
	return nil
}

// GetByID obtiene un empleado por ID.
func (r *EmployeeRepo) GetByID(id string) (*entity.Employee, error) {
	var e entity.Employee
	err := r.q.QueryRow(context.Background(),
		`SELECT id, name, phone, position, status, created_at, updated_at FROM employees WHERE id = $1`, id,
	).Scan(&e.ID, &e.Name, &e.Phone, &e.Position, &e.Status, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get employee: %w", err)
	}
	return &e, nil
}

// Update actualiza un empleado (incluido su estado activo/inactivo).
func (r *EmployeeRepo) Update(employee *entity.Employee) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE employees SET name = $2, phone = $3, position = $4, status = $5, updated_at = $6 WHERE id = $1`,
		employee.ID, employee.Name, employee.Phone, employee.Position, employee.Status, employee.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update employee: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista empleados con paginación.
func (r *EmployeeRepo) List(limit, offset int) ([]*entity.Employee, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, name, phone, position, status, created_at, updated_at FROM employees ORDER BY name LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer rows.Close()
	var list []*entity.Employee
	for rows.Next() {
		var e entity.Employee
		if err := rows.Scan(&e.ID, &e.Name, &e.Phone, &e.Position, &e.Status, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan employee: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// Delete elimina un empleado por ID.
func (r *EmployeeRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete employee: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
