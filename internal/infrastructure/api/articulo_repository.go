package api

import (
	"context"
	"fmt"

	"github.com/ncastro/lavanderia-panel/internal/domain/entity"
	"github.com/ncastro/lavanderia-panel/internal/domain/repository"
)

// ArticuloRepository implements repository.ArticuloRepository against
// the backend's /api/Articulo endpoints.
type ArticuloRepository struct {
	client *Client
}

// NewArticuloRepository creates a REST-backed item repository.
func NewArticuloRepository(client *Client) *ArticuloRepository {
	return &ArticuloRepository{client: client}
}

func (r *ArticuloRepository) List(ctx context.Context) ([]entity.Articulo, error) {
	var articulos []entity.Articulo
	if err := r.client.Get(ctx, "/api/Articulo", &articulos); err != nil {
		return nil, err
	}
	return articulos, nil
}

func (r *ArticuloRepository) Create(ctx context.Context, payload *repository.ArticuloPayload) error {
	return r.client.Post(ctx, "/api/Articulo", payload, nil)
}

func (r *ArticuloRepository) Update(ctx context.Context, id int64, payload *repository.ArticuloPayload) error {
	return r.client.Put(ctx, fmt.Sprintf("/api/Articulo/%d", id), payload, nil)
}

// Delete propagates the backend response untouched, including the 409
// that signals a soft-deactivation instead of a hard delete.
func (r *ArticuloRepository) Delete(ctx context.Context, id int64) error {
	return r.client.Delete(ctx, fmt.Sprintf("/api/Articulo/%d", id))
}
