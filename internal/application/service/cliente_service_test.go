package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ncastro/lavanderia-panel/internal/domain/entity"
)

func TestClienteSaveRequiresNombre(t *testing.T) {
	repo := &fakeClienteRepo{}
	svc := NewClienteService(repo)

	err := svc.Save(context.Background(), nil, ClienteInput{Nombre: "   "})

	require.Error(t, err)
	assert.True(t, IsValidation(err))
	assert.Equal(t, "El nombre es obligatorio.", err.Error())
	assert.Empty(t, repo.created, "validation failures must not reach the backend")
}

func TestClienteSaveCreate(t *testing.T) {
	repo := &fakeClienteRepo{}
	svc := NewClienteService(repo)

	err := svc.Save(context.Background(), nil, ClienteInput{
		Nombre:   "  Ana López  ",
		Telefono: "11-5555",
	})

	require.NoError(t, err)
	require.Len(t, repo.created, 1)
	payload := repo.created[0]
	assert.Equal(t, "Ana López", payload.Nombre)
	require.NotNil(t, payload.Telefono)
	assert.Equal(t, "11-5555", *payload.Telefono)
	assert.Nil(t, payload.Direccion, "empty optional fields are sent as null")
}

func TestClienteSaveUpdate(t *testing.T) {
	repo := &fakeClienteRepo{}
	svc := NewClienteService(repo)
	id := int64(7)

	err := svc.Save(context.Background(), &id, ClienteInput{Nombre: "Ana"})

	require.NoError(t, err)
	assert.Empty(t, repo.created)
	require.Contains(t, repo.updated, id)
	assert.Equal(t, "Ana", repo.updated[id].Nombre)
}

func TestFilterClientes(t *testing.T) {
	clientes := []entity.Cliente{
		{ID: 1, Nombre: "Ana López", Telefono: ptr("11-5555"), Direccion: ptr("Av. Siempre Viva 742")},
		{ID: 2, Nombre: "Bruno Díaz"},
		{ID: 12, Nombre: "Carla"},
	}

	tests := []struct {
		name    string
		term    string
		wantIDs []int64
	}{
		{"empty term returns everything", "", []int64{1, 2, 12}},
		{"matches nombre case-insensitively", "lopez", nil},
		{"matches nombre with accent", "lópez", []int64{1}},
		{"matches telefono", "5555", []int64{1}},
		{"matches direccion", "siempre", []int64{1}},
		{"matches id substring", "2", []int64{2, 12}},
		{"no match", "zzz", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterClientes(clientes, tt.term)
			var ids []int64
			for _, c := range got {
				ids = append(ids, c.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestClienteDelete(t *testing.T) {
	repo := &fakeClienteRepo{}
	svc := NewClienteService(repo)

	require.NoError(t, svc.Delete(context.Background(), 3))
	assert.Equal(t, []int64{3}, repo.deleted)
}
