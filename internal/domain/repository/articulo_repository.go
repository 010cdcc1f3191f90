package repository

import (
	"context"

	"github.com/ncastro/lavanderia-panel/internal/domain/entity"
)

// ArticuloPayload is the write shape the backend accepts for items.
type ArticuloPayload struct {
	Nombre string  `json:"nombre"`
	Precio float64 `json:"precio"`
}

// ArticuloRepository gives access to the item catalog owned by the
// backend. Delete may come back as HTTP 409 when the item is referenced
// by remitos; the backend soft-deactivates it in that case.
type ArticuloRepository interface {
	List(ctx context.Context) ([]entity.Articulo, error)
	Create(ctx context.Context, payload *ArticuloPayload) error
	Update(ctx context.Context, id int64, payload *ArticuloPayload) error
	Delete(ctx context.Context, id int64) error
}
