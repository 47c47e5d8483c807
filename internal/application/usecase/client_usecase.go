package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/joansel25/farmacia-api/internal/application/dto"
	"github.com/joansel25/farmacia-api/internal/domain"
	"github.com/joansel25/farmacia-api/internal/domain/entity"
	"github.com/joansel25/farmacia-api/internal/domain/repository"
)

// ClientUseCase casos de uso CRUD para clientes.
type ClientUseCase struct {
	repo repository.ClientRepository
}

// NewClientUseCase construye el caso de uso.
func NewClientUseCase(repo repository.ClientRepository) *ClientUseCase {
	return &ClientUseCase{repo: repo}
}

// Create crea un cliente.
func (uc *ClientUseCase) Create(in dto.ClientRequest) (*dto.ClientResponse, error) {
	if in.Name == "" || in.Email == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	client := &entity.Client{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(client); err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// GetByID obtiene un cliente por ID.
func (uc *ClientUseCase) GetByID(id string) (*dto.ClientResponse, error) {
	client, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	return toClientResponse(client), nil
}

// Update actualiza un cliente.
func (uc *ClientUseCase) Update(id string, in dto.ClientRequest) (*dto.ClientResponse, error) {
	client, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != "" {
		client.Name = in.Name
	}
	if in.Email != "" {
		client.Email = in.Email
	}
	if in.Phone != "" {
		client.Phone = in.Phone
	}
	client.UpdatedAt = time.Now()
	if err := uc.repo.Update(client); err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// List lista clientes con paginación.
func (uc *ClientUseCase) List(page dto.PageRequest) ([]*dto.ClientResponse, error) {
	page.DefaultPage()
	clients, err := uc.repo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ClientResponse, 0, len(clients))
	for _, c := range clients {
		out = append(out, toClientResponse(c))
	}
	return out, nil
}

// Delete elimina un cliente.
func (uc *ClientUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toClientResponse(c *entity.Client) *dto.ClientResponse {
	return &dto.ClientResponse{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
