package service

import (
	"context"
	"strconv"
	"sync"

	"github.com/ncastro/lavanderia-panel/internal/domain/entity"
	"github.com/ncastro/lavanderia-panel/internal/domain/enum"
	"github.com/ncastro/lavanderia-panel/internal/domain/repository"
)

// RemitoService handles remito creation, listing, status transitions
// and cancellation. All business legality lives in the backend; this
// layer only validates the form and forwards requests.
type RemitoService struct {
	remitoRepo   repository.RemitoRepository
	clienteRepo  repository.ClienteRepository
	articuloRepo repository.ArticuloRepository
}

// NewRemitoService creates a new remito service.
func NewRemitoService(
	remitoRepo repository.RemitoRepository,
	clienteRepo repository.ClienteRepository,
	articuloRepo repository.ArticuloRepository,
) *RemitoService {
	return &RemitoService{
		remitoRepo:   remitoRepo,
		clienteRepo:  clienteRepo,
		articuloRepo: articuloRepo,
	}
}

// LineaDraft is one editable line of the creation form. ArticuloID
// stays a string so an unselected item ("") round-trips through the
// form unchanged.
type LineaDraft struct {
	ArticuloID string
	Cantidad   int
}

// EmptyDraft returns the initial draft: a single empty line with
// cantidad 1. The form never drops below one line.
func EmptyDraft() []LineaDraft {
	return []LineaDraft{{Cantidad: 1}}
}

// NormalizeLineas filters the draft down to the lines actually sent:
// item selected and cantidad > 0. Failing lines are dropped silently.
func NormalizeLineas(drafts []LineaDraft) []repository.RemitoLinea {
	var lineas []repository.RemitoLinea
	for _, d := range drafts {
		id, err := strconv.ParseInt(d.ArticuloID, 10, 64)
		if err != nil || id == 0 || d.Cantidad <= 0 {
			continue
		}
		lineas = append(lineas, repository.RemitoLinea{
			ArticuloID: id,
			Cantidad:   d.Cantidad,
		})
	}
	return lineas
}

// EstimatedTotal sums cantidad × precio over the lines whose selection
// resolves to a known item. Advisory only: the backend computes the
// authoritative total.
func EstimatedTotal(drafts []LineaDraft, articulos []entity.Articulo) float64 {
	var total float64
	for _, d := range drafts {
		if a := findArticulo(articulos, d.ArticuloID); a != nil {
			total += float64(d.Cantidad) * a.Precio
		}
	}
	return total
}

// LineaSubtotal is the advisory subtotal of one draft line.
func LineaSubtotal(d LineaDraft, articulos []entity.Articulo) float64 {
	if a := findArticulo(articulos, d.ArticuloID); a != nil {
		return float64(d.Cantidad) * a.Precio
	}
	return 0
}

func findArticulo(articulos []entity.Articulo, id string) *entity.Articulo {
	for i := range articulos {
		if strconv.FormatInt(articulos[i].ID, 10) == id {
			return &articulos[i]
		}
	}
	return nil
}

// LoadFormData fetches customers and active items concurrently and
// joins them before the form renders.
func (s *RemitoService) LoadFormData(ctx context.Context) ([]entity.Cliente, []entity.Articulo, error) {
	var (
		wg        sync.WaitGroup
		clientes  []entity.Cliente
		articulos []entity.Articulo
		cErr      error
		aErr      error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		clientes, cErr = s.clienteRepo.List(ctx)
	}()
	go func() {
		defer wg.Done()
		articulos, aErr = s.articuloRepo.List(ctx)
	}()
	wg.Wait()

	if cErr != nil {
		return nil, nil, cErr
	}
	if aErr != nil {
		return nil, nil, aErr
	}

	// The creation form only offers active items; the backend validates
	// Activo again on its side.
	activos := articulos[:0:0]
	for _, a := range articulos {
		if a.Activo {
			activos = append(activos, a)
		}
	}
	return clientes, activos, nil
}

// Create validates the draft and submits the remito. Only the filtered,
// normalized line set is sent.
func (s *RemitoService) Create(ctx context.Context, clienteID string, drafts []LineaDraft) error {
	if clienteID == "" {
		return NewValidationError("Seleccioná un cliente.")
	}
	id, err := strconv.ParseInt(clienteID, 10, 64)
	if err != nil {
		return NewValidationError("Seleccioná un cliente.")
	}

	lineas := NormalizeLineas(drafts)
	if len(lineas) == 0 {
		return NewValidationError("Agregá al menos un artículo con cantidad.")
	}

	return s.remitoRepo.Create(ctx, &repository.RemitoPayload{
		ClienteID: id,
		Items:     lineas,
	})
}

// List fetches remitos, scoped to one customer when clienteID > 0.
func (s *RemitoService) List(ctx context.Context, clienteID int64) ([]entity.Remito, error) {
	return s.remitoRepo.List(ctx, clienteID)
}

// Get fetches a single remito with its lines.
func (s *RemitoService) Get(ctx context.Context, id int64) (*entity.Remito, error) {
	return s.remitoRepo.Get(ctx, id)
}

// CambiarEstado forwards a status change. Transition legality beyond
// the enum range is server-enforced.
func (s *RemitoService) CambiarEstado(ctx context.Context, id int64, estado enum.EstadoRemito) error {
	if !estado.Valid() {
		return NewValidationError("Estado inválido.")
	}
	return s.remitoRepo.UpdateEstado(ctx, id, estado)
}

// Cancelar asks the backend to mark the remito Cancelado.
func (s *RemitoService) Cancelar(ctx context.Context, id int64) error {
	return s.remitoRepo.Cancel(ctx, id)
}
