package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ncastro/lavanderia-panel/internal/domain/entity"
	"github.com/ncastro/lavanderia-panel/pkg/apperror"
)

func TestParsePrecio(t *testing.T) {
	tests := []struct {
		raw     string
		want    float64
		wantErr bool
	}{
		{"150", 150, false},
		{"150.5", 150.5, false},
		{"150,5", 150.5, false},
		{"150,50", 150.5, false},
		{" 0 ", 0, false},
		{"", 0, true},
		{"abc", 0, true},
		{"-5", 0, true},
		{"NaN", 0, true},
		{"Inf", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParsePrecio(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, IsValidation(err))
				assert.Equal(t, "El precio debe ser un número válido (ej: 150 o 150,50).", err.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestArticuloSaveRejectsBadPrecioWithoutCalling(t *testing.T) {
	repo := &fakeArticuloRepo{}
	svc := NewArticuloService(repo)

	err := svc.Save(context.Background(), nil, "Lavado", "abc")

	require.Error(t, err)
	assert.True(t, IsValidation(err))
	assert.Empty(t, repo.created)
}

func TestArticuloSaveCreateAndUpdate(t *testing.T) {
	repo := &fakeArticuloRepo{}
	svc := NewArticuloService(repo)

	require.NoError(t, svc.Save(context.Background(), nil, " Lavado ", "150,50"))
	require.Len(t, repo.created, 1)
	assert.Equal(t, "Lavado", repo.created[0].Nombre)
	assert.Equal(t, 150.5, repo.created[0].Precio)

	id := int64(4)
	require.NoError(t, svc.Save(context.Background(), &id, "Planchado", "80"))
	require.Contains(t, repo.updated, id)
	assert.Equal(t, 80.0, repo.updated[id].Precio)
}

func TestArticuloDeleteTreats409AsDeactivation(t *testing.T) {
	repo := &fakeArticuloRepo{
		deleteErr: apperror.NewAPIError(409, "El artículo ya se usó en remitos; fue desactivado."),
	}
	svc := NewArticuloService(repo)

	deactivated, serverMsg, err := svc.Delete(context.Background(), 4)

	require.NoError(t, err, "a 409 is a success outcome, not an error")
	assert.True(t, deactivated)
	assert.Equal(t, "El artículo ya se usó en remitos; fue desactivado.", serverMsg)
}

func TestArticuloDeletePassesOtherErrorsThrough(t *testing.T) {
	repo := &fakeArticuloRepo{deleteErr: apperror.NewAPIError(500, "boom")}
	svc := NewArticuloService(repo)

	deactivated, _, err := svc.Delete(context.Background(), 4)

	require.Error(t, err)
	assert.False(t, deactivated)
}

func TestFilterArticulos(t *testing.T) {
	articulos := []entity.Articulo{
		{ID: 1, Nombre: "Lavado", Precio: 150, Activo: true},
		{ID: 2, Nombre: "Planchado", Precio: 80.5, Activo: false},
		{ID: 3, Nombre: "Tintorería", Precio: 300, Activo: true},
	}

	tests := []struct {
		name    string
		term    string
		wantIDs []int64
	}{
		{"empty term returns everything", "", []int64{1, 2, 3}},
		{"matches nombre", "lava", []int64{1}},
		{"matches precio text", "80.5", []int64{2}},
		{"matches id", "3", []int64{3}},
		{"literal activo matches active flag", "activo", []int64{1, 3}},
		{"literal inactivo matches inactive flag", "inactivo", []int64{2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterArticulos(articulos, tt.term)
			var ids []int64
			for _, a := range got {
				ids = append(ids, a.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestFormatPrecio(t *testing.T) {
	assert.Equal(t, "150", FormatPrecio(150))
	assert.Equal(t, "150.5", FormatPrecio(150.5))
	assert.Equal(t, "0.25", FormatPrecio(0.25))
}
