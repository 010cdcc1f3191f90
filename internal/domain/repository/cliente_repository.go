package repository

import (
	"context"

	"github.com/ncastro/lavanderia-panel/internal/domain/entity"
)

// ClientePayload is the write shape the backend accepts for customers.
// Optional fields are sent as null when empty.
type ClientePayload struct {
	Nombre    string  `json:"nombre"`
	Telefono  *string `json:"telefono"`
	Direccion *string `json:"direccion"`
}

// ClienteRepository gives access to the customers owned by the backend.
type ClienteRepository interface {
	List(ctx context.Context) ([]entity.Cliente, error)
	Create(ctx context.Context, payload *ClientePayload) error
	Update(ctx context.Context, id int64, payload *ClientePayload) error
	Delete(ctx context.Context, id int64) error
}
