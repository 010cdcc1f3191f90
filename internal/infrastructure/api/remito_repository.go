package api

import (
	"context"
	"fmt"

	"github.com/ncastro/lavanderia-panel/internal/domain/entity"
	"github.com/ncastro/lavanderia-panel/internal/domain/enum"
	"github.com/ncastro/lavanderia-panel/internal/domain/repository"
)

// RemitoRepository implements repository.RemitoRepository against the
// backend's /api/Remito endpoints.
type RemitoRepository struct {
	client *Client
}

// NewRemitoRepository creates a REST-backed remito repository.
func NewRemitoRepository(client *Client) *RemitoRepository {
	return &RemitoRepository{client: client}
}

func (r *RemitoRepository) List(ctx context.Context, clienteID int64) ([]entity.Remito, error) {
	path := "/api/Remito"
	if clienteID > 0 {
		path = fmt.Sprintf("/api/Remito?clienteId=%d", clienteID)
	}

	var remitos []entity.Remito
	if err := r.client.Get(ctx, path, &remitos); err != nil {
		return nil, err
	}
	return remitos, nil
}

func (r *RemitoRepository) Get(ctx context.Context, id int64) (*entity.Remito, error) {
	var remito entity.Remito
	if err := r.client.Get(ctx, fmt.Sprintf("/api/Remito/%d", id), &remito); err != nil {
		return nil, err
	}
	return &remito, nil
}

func (r *RemitoRepository) Create(ctx context.Context, payload *repository.RemitoPayload) error {
	return r.client.Post(ctx, "/api/Remito", payload, nil)
}

func (r *RemitoRepository) UpdateEstado(ctx context.Context, id int64, estado enum.EstadoRemito) error {
	body := struct {
		Estado enum.EstadoRemito `json:"estado"`
	}{Estado: estado}
	return r.client.Put(ctx, fmt.Sprintf("/api/Remito/%d/estado", id), body, nil)
}

func (r *RemitoRepository) Cancel(ctx context.Context, id int64) error {
	return r.client.Delete(ctx, fmt.Sprintf("/api/Remito/%d", id))
}
