package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ncastro/lavanderia-panel/internal/application/service"
	"github.com/ncastro/lavanderia-panel/internal/domain/entity"
	"github.com/ncastro/lavanderia-panel/internal/presentation/web"
)

// User-facing messages mirror the panel's error taxonomy: load, save
// and delete failures each get their own text.
const (
	msgClientesLoadError  = "No se pudo cargar. ¿Está prendida la PC servidor y la API corriendo?"
	msgClienteSaveError   = "No se pudo guardar. Revisá la API/BD y probá de nuevo."
	msgClienteDeleteError = "No se pudo eliminar. Verificá que exista el endpoint DELETE en la API."
	msgClienteCreated     = "Cliente creado ✅"
	msgClienteUpdated     = "Cliente actualizado ✅"
	msgClienteDeleted     = "Cliente eliminado ✅"
)

// ClienteHandler renders the customer list-editor.
type ClienteHandler struct {
	clienteService *service.ClienteService
	renderer       *web.Renderer
}

// NewClienteHandler creates a new customer handler.
func NewClienteHandler(clienteService *service.ClienteService, renderer *web.Renderer) *ClienteHandler {
	return &ClienteHandler{clienteService: clienteService, renderer: renderer}
}

type clientesPage struct {
	web.PageData
	Q             string
	Clientes      []entity.Cliente
	ShowForm      bool
	EditID        int64
	FormNombre    string
	FormTelefono  string
	FormDireccion string
}

// Page handles GET /clientes. Query params: q (filter), form=1 (open
// the form), edit (prefill for editing), msg/err (flash).
func (h *ClienteHandler) Page(c *gin.Context) {
	page := clientesPage{
		PageData: basePage(c, "Clientes", "clientes"),
		Q:        c.Query("q"),
	}

	clientes, err := h.clienteService.List(c.Request.Context())
	if err != nil {
		// Present an empty collection rather than stale data.
		page.Err = msgClientesLoadError
		clientes = nil
	}
	page.Clientes = service.FilterClientes(clientes, page.Q)

	if c.Query("form") == "1" {
		page.ShowForm = true
		if editID, err := strconv.ParseInt(c.Query("edit"), 10, 64); err == nil {
			for _, cl := range clientes {
				if cl.ID == editID {
					page.EditID = editID
					page.FormNombre = cl.Nombre
					if cl.Telefono != nil {
						page.FormTelefono = *cl.Telefono
					}
					if cl.Direccion != nil {
						page.FormDireccion = *cl.Direccion
					}
					break
				}
			}
		}
	}

	h.renderer.Render(c.Writer, http.StatusOK, "clientes.html", &page)
}

// Create handles POST /clientes.
func (h *ClienteHandler) Create(c *gin.Context) {
	h.save(c, nil)
}

// Update handles POST /clientes/:id.
func (h *ClienteHandler) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		redirectFlash(c, "/clientes", flashParams("", msgClienteSaveError))
		return
	}
	h.save(c, &id)
}

func (h *ClienteHandler) save(c *gin.Context, editID *int64) {
	input := service.ClienteInput{
		Nombre:    c.PostForm("nombre"),
		Telefono:  c.PostForm("telefono"),
		Direccion: c.PostForm("direccion"),
	}

	err := h.clienteService.Save(c.Request.Context(), editID, input)
	if err == nil {
		msg := msgClienteCreated
		if editID != nil {
			msg = msgClienteUpdated
		}
		redirectFlash(c, "/clientes", flashParams(msg, ""))
		return
	}

	// The form stays open with the submitted values for correction.
	page := clientesPage{
		PageData:      basePage(c, "Clientes", "clientes"),
		ShowForm:      true,
		FormNombre:    input.Nombre,
		FormTelefono:  input.Telefono,
		FormDireccion: input.Direccion,
	}
	if editID != nil {
		page.EditID = *editID
	}
	if service.IsValidation(err) {
		page.Msg = err.Error()
	} else {
		page.Err = msgClienteSaveError
	}

	clientes, listErr := h.clienteService.List(c.Request.Context())
	if listErr == nil {
		page.Clientes = clientes
	}

	h.renderer.Render(c.Writer, http.StatusOK, "clientes.html", &page)
}

// Delete handles POST /clientes/:id/eliminar. The browser asks for
// confirmation before submitting.
func (h *ClienteHandler) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		redirectFlash(c, "/clientes", flashParams("", msgClienteDeleteError))
		return
	}

	if err := h.clienteService.Delete(c.Request.Context(), id); err != nil {
		redirectFlash(c, "/clientes", flashParams("", msgClienteDeleteError))
		return
	}

	redirectFlash(c, "/clientes", flashParams(msgClienteDeleted, ""))
}
