package api

import (
	"context"
	"fmt"

	"github.com/ncastro/lavanderia-panel/internal/domain/entity"
	"github.com/ncastro/lavanderia-panel/internal/domain/repository"
)

// ClienteRepository implements repository.ClienteRepository against the
// backend's /api/Cliente endpoints.
type ClienteRepository struct {
	client *Client
}

// NewClienteRepository creates a REST-backed customer repository.
func NewClienteRepository(client *Client) *ClienteRepository {
	return &ClienteRepository{client: client}
}

func (r *ClienteRepository) List(ctx context.Context) ([]entity.Cliente, error) {
	var clientes []entity.Cliente
	if err := r.client.Get(ctx, "/api/Cliente", &clientes); err != nil {
		return nil, err
	}
	return clientes, nil
}

func (r *ClienteRepository) Create(ctx context.Context, payload *repository.ClientePayload) error {
	return r.client.Post(ctx, "/api/Cliente", payload, nil)
}

func (r *ClienteRepository) Update(ctx context.Context, id int64, payload *repository.ClientePayload) error {
	return r.client.Put(ctx, fmt.Sprintf("/api/Cliente/%d", id), payload, nil)
}

func (r *ClienteRepository) Delete(ctx context.Context, id int64) error {
	return r.client.Delete(ctx, fmt.Sprintf("/api/Cliente/%d", id))
}
