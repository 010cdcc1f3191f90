package repository

import (
	"context"

	"github.com/ncastro/lavanderia-panel/internal/domain/entity"
	"github.com/ncastro/lavanderia-panel/internal/domain/enum"
)

// RemitoLinea is one (item, quantity) pair of a remito creation request.
// Prices and subtotals are never sent; the backend computes them.
type RemitoLinea struct {
	ArticuloID int64 `json:"articuloId"`
	Cantidad   int   `json:"cantidad"`
}

// RemitoPayload is the remito creation request body.
type RemitoPayload struct {
	ClienteID int64         `json:"clienteId"`
	Items     []RemitoLinea `json:"items"`
}

// RemitoRepository gives access to the remitos owned by the backend.
type RemitoRepository interface {
	// List returns remitos, scoped to one customer when clienteID > 0.
	List(ctx context.Context, clienteID int64) ([]entity.Remito, error)
	Get(ctx context.Context, id int64) (*entity.Remito, error)
	Create(ctx context.Context, payload *RemitoPayload) error
	UpdateEstado(ctx context.Context, id int64, estado enum.EstadoRemito) error
	// Cancel issues a delete-style request that the backend interprets
	// as "mark Cancelado", not physical deletion.
	Cancel(ctx context.Context, id int64) error
}
