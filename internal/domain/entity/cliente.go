package entity

// Cliente is a customer as returned by the backend API. The backend owns
// the data; the panel only holds transient copies for rendering.
type Cliente struct {
	ID        int64   `json:"id"`
	Nombre    string  `json:"nombre"`
	Telefono  *string `json:"telefono"`
	Direccion *string `json:"direccion"`
}
