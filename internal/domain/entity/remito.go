package entity

import "github.com/ncastro/lavanderia-panel/internal/domain/enum"

// Remito is a delivery receipt tying a customer to a set of priced line
// items. Totals, subtotals and the denormalized display names are
// computed server-side and never recomputed authoritatively here.
type Remito struct {
	ID            int64             `json:"id"`
	ClienteID     int64             `json:"clienteId"`
	ClienteNombre string            `json:"clienteNombre"`
	Estado        enum.EstadoRemito `json:"estado"`
	Fecha         string            `json:"fecha,omitempty"`
	Total         *float64          `json:"total,omitempty"`
	Items         []RemitoItem      `json:"items,omitempty"`
}

// RemitoItem is one line of a remito.
type RemitoItem struct {
	ArticuloID     int64   `json:"articuloId"`
	ArticuloNombre string  `json:"articuloNombre"`
	Cantidad       int     `json:"cantidad"`
	PrecioUnitario float64 `json:"precioUnitario"`
	Subtotal       float64 `json:"subtotal"`
}

// TotalOrSum returns the server-computed total when present, falling
// back to the sum of line subtotals.
func (r *Remito) TotalOrSum() float64 {
	if r.Total != nil {
		return *r.Total
	}
	var sum float64
	for _, it := range r.Items {
		sum += it.Subtotal
	}
	return sum
}
