package service

import (
	"context"
	"strconv"
	"strings"

	"github.com/ncastro/lavanderia-panel/internal/domain/entity"
	"github.com/ncastro/lavanderia-panel/internal/domain/repository"
)

// ClienteService handles the customer list-editor operations.
type ClienteService struct {
	clienteRepo repository.ClienteRepository
}

// NewClienteService creates a new customer service.
func NewClienteService(clienteRepo repository.ClienteRepository) *ClienteService {
	return &ClienteService{clienteRepo: clienteRepo}
}

// ClienteInput carries the raw form values for create/update.
type ClienteInput struct {
	Nombre    string
	Telefono  string
	Direccion string
}

// List fetches all customers.
func (s *ClienteService) List(ctx context.Context) ([]entity.Cliente, error) {
	return s.clienteRepo.List(ctx)
}

// Save validates the form and creates (editID nil) or updates a
// customer. Optional fields are trimmed and sent as null when empty.
func (s *ClienteService) Save(ctx context.Context, editID *int64, input ClienteInput) error {
	nombre := strings.TrimSpace(input.Nombre)
	if nombre == "" {
		return NewValidationError("El nombre es obligatorio.")
	}

	payload := &repository.ClientePayload{
		Nombre:    nombre,
		Telefono:  optional(input.Telefono),
		Direccion: optional(input.Direccion),
	}

	if editID == nil {
		return s.clienteRepo.Create(ctx, payload)
	}
	return s.clienteRepo.Update(ctx, *editID, payload)
}

// Delete removes a customer. Deletion semantics (soft vs hard) are
// server-decided.
func (s *ClienteService) Delete(ctx context.Context, id int64) error {
	return s.clienteRepo.Delete(ctx, id)
}

// FilterClientes returns the customers whose nombre, telefono,
// direccion or stringified id contain term, case-insensitively. An
// empty term returns the input unchanged; the input is never mutated.
func FilterClientes(clientes []entity.Cliente, term string) []entity.Cliente {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return clientes
	}

	var out []entity.Cliente
	for _, c := range clientes {
		if strings.Contains(strings.ToLower(c.Nombre), term) ||
			containsLower(c.Telefono, term) ||
			containsLower(c.Direccion, term) ||
			strings.Contains(strconv.FormatInt(c.ID, 10), term) {
			out = append(out, c)
		}
	}
	return out
}

func containsLower(s *string, term string) bool {
	if s == nil {
		return false
	}
	return strings.Contains(strings.ToLower(*s), term)
}

// optional trims a form value and converts it to a nullable field.
func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
