package enum

import "strconv"

// EstadoRemito is the fixed status lifecycle of a remito. Values match
// the backend wire format (JSON numbers 1..5).
type EstadoRemito int

const (
	EstadoPendiente EstadoRemito = 1
	EstadoEnProceso EstadoRemito = 2
	EstadoListo     EstadoRemito = 3
	EstadoEntregado EstadoRemito = 4
	EstadoCancelado EstadoRemito = 5
)

// EstadosRemito lists all statuses in order, for the status selector.
func EstadosRemito() []EstadoRemito {
	return []EstadoRemito{
		EstadoPendiente,
		EstadoEnProceso,
		EstadoListo,
		EstadoEntregado,
		EstadoCancelado,
	}
}

func (e EstadoRemito) String() string {
	switch e {
	case EstadoPendiente:
		return "Pendiente"
	case EstadoEnProceso:
		return "En proceso"
	case EstadoListo:
		return "Listo"
	case EstadoEntregado:
		return "Entregado"
	case EstadoCancelado:
		return "Cancelado"
	default:
		return "Estado " + strconv.Itoa(int(e))
	}
}

// Valid reports whether the value is one of the five known statuses.
func (e EstadoRemito) Valid() bool {
	return e >= EstadoPendiente && e <= EstadoCancelado
}

// CanChangeEstado reports whether the status selector is enabled. The
// selector locks once a remito is cancelled; every other legality rule
// is enforced server-side.
func (e EstadoRemito) CanChangeEstado() bool {
	return e != EstadoCancelado
}

// CanCancel reports whether the cancel action is enabled. Delivered and
// cancelled remitos are terminal with respect to cancellation.
func (e EstadoRemito) CanCancel() bool {
	return e != EstadoEntregado && e != EstadoCancelado
}
