package service

import (
	"context"

	"github.com/ncastro/lavanderia-panel/internal/domain/entity"
	"github.com/ncastro/lavanderia-panel/internal/domain/enum"
	"github.com/ncastro/lavanderia-panel/internal/domain/repository"
)

func ptr(s string) *string { return &s }

type fakeClienteRepo struct {
	clientes []entity.Cliente
	listErr  error

	created []*repository.ClientePayload
	updated map[int64]*repository.ClientePayload
	deleted []int64
}

func (f *fakeClienteRepo) List(ctx context.Context) ([]entity.Cliente, error) {
	return f.clientes, f.listErr
}

func (f *fakeClienteRepo) Create(ctx context.Context, payload *repository.ClientePayload) error {
	f.created = append(f.created, payload)
	return nil
}

func (f *fakeClienteRepo) Update(ctx context.Context, id int64, payload *repository.ClientePayload) error {
	if f.updated == nil {
		f.updated = map[int64]*repository.ClientePayload{}
	}
	f.updated[id] = payload
	return nil
}

func (f *fakeClienteRepo) Delete(ctx context.Context, id int64) error {
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeArticuloRepo struct {
	articulos []entity.Articulo
	listErr   error
	deleteErr error

	created []*repository.ArticuloPayload
	updated map[int64]*repository.ArticuloPayload
	deleted []int64
}

func (f *fakeArticuloRepo) List(ctx context.Context) ([]entity.Articulo, error) {
	return f.articulos, f.listErr
}

func (f *fakeArticuloRepo) Create(ctx context.Context, payload *repository.ArticuloPayload) error {
	f.created = append(f.created, payload)
	return nil
}

func (f *fakeArticuloRepo) Update(ctx context.Context, id int64, payload *repository.ArticuloPayload) error {
	if f.updated == nil {
		f.updated = map[int64]*repository.ArticuloPayload{}
	}
	f.updated[id] = payload
	return nil
}

func (f *fakeArticuloRepo) Delete(ctx context.Context, id int64) error {
	f.deleted = append(f.deleted, id)
	return f.deleteErr
}

type fakeRemitoRepo struct {
	remitos []entity.Remito
	remito  *entity.Remito

	created       []*repository.RemitoPayload
	estadoChanges map[int64]enum.EstadoRemito
	cancelled     []int64
	listClienteID int64
}

func (f *fakeRemitoRepo) List(ctx context.Context, clienteID int64) ([]entity.Remito, error) {
	f.listClienteID = clienteID
	return f.remitos, nil
}

func (f *fakeRemitoRepo) Get(ctx context.Context, id int64) (*entity.Remito, error) {
	return f.remito, nil
}

func (f *fakeRemitoRepo) Create(ctx context.Context, payload *repository.RemitoPayload) error {
	f.created = append(f.created, payload)
	return nil
}

func (f *fakeRemitoRepo) UpdateEstado(ctx context.Context, id int64, estado enum.EstadoRemito) error {
	if f.estadoChanges == nil {
		f.estadoChanges = map[int64]enum.EstadoRemito{}
	}
	f.estadoChanges[id] = estado
	return nil
}

func (f *fakeRemitoRepo) Cancel(ctx context.Context, id int64) error {
	f.cancelled = append(f.cancelled, id)
	return nil
}
