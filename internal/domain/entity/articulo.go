package entity

// Articulo is a priced service item from the catalog (garments,
// wash/iron services). The backend soft-deactivates instead of deleting
// when the item is referenced by existing remitos, flipping Activo.
type Articulo struct {
	ID     int64   `json:"id"`
	Nombre string  `json:"nombre"`
	Precio float64 `json:"precio"`
	Activo bool    `json:"activo"`
}
