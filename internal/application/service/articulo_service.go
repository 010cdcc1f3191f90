package service

import (
	"context"
	"math"
	"strconv"
	"strings"

	"github.com/ncastro/lavanderia-panel/internal/domain/entity"
	"github.com/ncastro/lavanderia-panel/internal/domain/repository"
	"github.com/ncastro/lavanderia-panel/pkg/apperror"
)

// ArticuloService handles the item catalog list-editor operations.
type ArticuloService struct {
	articuloRepo repository.ArticuloRepository
}

// NewArticuloService creates a new item service.
func NewArticuloService(articuloRepo repository.ArticuloRepository) *ArticuloService {
	return &ArticuloService{articuloRepo: articuloRepo}
}

// List fetches the whole catalog, active and inactive items alike.
func (s *ArticuloService) List(ctx context.Context) ([]entity.Articulo, error) {
	return s.articuloRepo.List(ctx)
}

// ParsePrecio parses a price typed by the user, accepting both "." and
// "," as decimal separator ("150", "150.5", "150,5"). Non-finite and
// negative results are rejected.
func ParsePrecio(raw string) (float64, error) {
	normalized := strings.Replace(strings.TrimSpace(raw), ",", ".", 1)
	precio, err := strconv.ParseFloat(normalized, 64)
	if err != nil || math.IsNaN(precio) || math.IsInf(precio, 0) || precio < 0 {
		return 0, NewValidationError("El precio debe ser un número válido (ej: 150 o 150,50).")
	}
	return precio, nil
}

// Save validates the form and creates (editID nil) or updates an item.
// The precio field arrives as the raw input string.
func (s *ArticuloService) Save(ctx context.Context, editID *int64, nombre, precioRaw string) error {
	nombre = strings.TrimSpace(nombre)
	if nombre == "" {
		return NewValidationError("El nombre es obligatorio.")
	}

	precio, err := ParsePrecio(precioRaw)
	if err != nil {
		return err
	}

	payload := &repository.ArticuloPayload{
		Nombre: nombre,
		Precio: precio,
	}

	if editID == nil {
		return s.articuloRepo.Create(ctx, payload)
	}
	return s.articuloRepo.Update(ctx, *editID, payload)
}

// Delete removes an item. When the backend answers 409 the item was
// referenced by remitos and got soft-deactivated instead: that is
// reported as deactivated=true with the server's message, not as an
// error.
func (s *ArticuloService) Delete(ctx context.Context, id int64) (deactivated bool, serverMsg string, err error) {
	err = s.articuloRepo.Delete(ctx, id)
	if err == nil {
		return false, "", nil
	}
	if apperror.IsConflict(err) {
		return true, apperror.ServerMessage(err), nil
	}
	return false, "", err
}

// FilterArticulos returns the items whose nombre, stringified id or
// stringified precio contain term, case-insensitively. The literal
// terms "activo" and "inactivo" match on the active flag instead.
func FilterArticulos(articulos []entity.Articulo, term string) []entity.Articulo {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return articulos
	}

	var out []entity.Articulo
	for _, a := range articulos {
		switch {
		case strings.Contains(strings.ToLower(a.Nombre), term),
			strings.Contains(strconv.FormatInt(a.ID, 10), term),
			strings.Contains(FormatPrecio(a.Precio), term),
			term == "activo" && a.Activo,
			term == "inactivo" && !a.Activo:
			out = append(out, a)
		}
	}
	return out
}

// FormatPrecio renders a price without trailing zeros ("150", "150.5").
func FormatPrecio(precio float64) string {
	return strconv.FormatFloat(precio, 'f', -1, 64)
}
