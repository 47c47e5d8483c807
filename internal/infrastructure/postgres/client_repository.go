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

var _ repository.ClientRepository = (*ClientRepo)(nil)

// ClientRepo implementación de ClientRepository sobre PostgreSQL.
type ClientRepo struct {
	q Querier
}

// NewClientRepository construye el adaptador. Pasar pool o tx (Querier).
func NewClientRepository(q Querier) *ClientRepo {
	return &ClientRepo{q: q}
}

// Create persiste un nuevo cliente.
func (r *ClientRepo) Create(client *entity.Client) error {
	if client.ID == "" {
		client.ID = uuid.New().String()
	}
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO clients (id, name, email, phone, created_at, updated_at) VALUES ($1, $2, $3, $4, $5, $6)`,
		client.ID, client.Name, client.Email, client.Phone, client.CreatedAt, client.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert client: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente por ID.
func (r *ClientRepo) GetByID(id string) (*entity.Client, error) {
	var c entity.Client
	err := r.q.QueryRow(context.Background(),
		`SELECT id, name, email, phone, created_at, updated_at FROM clients WHERE id = $1`, id,
	).Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get client: %w", err)
	}
	return &c, nil
}

// Update actualiza un cliente.
func (r *ClientRepo) Update(client *entity.Client) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE clients SET name = $2, email = $3, phone = $4, updated_at = $5 WHERE id = $1`,
		client.ID, client.Name, client.Email, client.Phone, client.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update client: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista clientes con paginación.
func (r *ClientRepo) List(limit, offset int) ([]*entity.Client, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, name, email, phone, created_at, updated_at FROM clients ORDER BY name LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	defer rows.Close()
	var list []*entity.Client
	for rows.Next() {
		var c entity.Client
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan client: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Delete elimina un cliente por ID.
func (r *ClientRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM clients WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete client: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
