package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ncastro/lavanderia-panel/internal/application/service"
	"github.com/ncastro/lavanderia-panel/internal/domain/entity"
	"github.com/ncastro/lavanderia-panel/internal/presentation/web"
)

const (
	msgArticulosLoadError  = "No se pudo cargar artículos. ¿Está la API corriendo?"
	msgArticuloSaveError   = "No se pudo guardar. Revisá la API/BD y probá de nuevo."
	msgArticuloDeleteError = "No se pudo eliminar. Probá de nuevo o revisá la API."
	msgArticuloDeactivated = "Este artículo ya se usó en remitos. Se desactivó ✅"
	msgArticuloCreated     = "Artículo creado"
	msgArticuloUpdated     = "Artículo actualizado"
	msgArticuloDeleted     = "Artículo eliminado ✅"
)

// ArticuloHandler renders the item catalog list-editor.
type ArticuloHandler struct {
	articuloService *service.ArticuloService
	renderer        *web.Renderer
}

// NewArticuloHandler creates a new item handler.
func NewArticuloHandler(articuloService *service.ArticuloService, renderer *web.Renderer) *ArticuloHandler {
	return &ArticuloHandler{articuloService: articuloService, renderer: renderer}
}

type articulosPage struct {
	web.PageData
	Q          string
	Articulos  []entity.Articulo
	ShowForm   bool
	EditID     int64
	FormNombre string
	FormPrecio string
}

// Page handles GET /articulos.
func (h *ArticuloHandler) Page(c *gin.Context) {
	page := articulosPage{
		PageData: basePage(c, "Artículos", "articulos"),
		Q:        c.Query("q"),
	}

	articulos, err := h.articuloService.List(c.Request.Context())
	if err != nil {
		page.Err = msgArticulosLoadError
		articulos = nil
	}
	page.Articulos = service.FilterArticulos(articulos, page.Q)

	if c.Query("form") == "1" {
		page.ShowForm = true
		if editID, err := strconv.ParseInt(c.Query("edit"), 10, 64); err == nil {
			for _, a := range articulos {
				if a.ID == editID {
					page.EditID = editID
					page.FormNombre = a.Nombre
					page.FormPrecio = service.FormatPrecio(a.Precio)
					break
				}
			}
		}
	}

	h.renderer.Render(c.Writer, http.StatusOK, "articulos.html", &page)
}

// Create handles POST /articulos.
func (h *ArticuloHandler) Create(c *gin.Context) {
	h.save(c, nil)
}

// Update handles POST /articulos/:id.
func (h *ArticuloHandler) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		redirectFlash(c, "/articulos", flashParams("", msgArticuloSaveError))
		return
	}
	h.save(c, &id)
}

func (h *ArticuloHandler) save(c *gin.Context, editID *int64) {
	nombre := c.PostForm("nombre")
	// The raw precio string round-trips so an invalid value comes back
	// for correction.
	precio := c.PostForm("precio")

	err := h.articuloService.Save(c.Request.Context(), editID, nombre, precio)
	if err == nil {
		msg := msgArticuloCreated
		if editID != nil {
			msg = msgArticuloUpdated
		}
		redirectFlash(c, "/articulos", flashParams(msg, ""))
		return
	}

	page := articulosPage{
		PageData:   basePage(c, "Artículos", "articulos"),
		ShowForm:   true,
		FormNombre: nombre,
		FormPrecio: precio,
	}
	if editID != nil {
		page.EditID = *editID
	}
	if service.IsValidation(err) {
		page.Msg = err.Error()
	} else {
		page.Err = msgArticuloSaveError
	}

	articulos, listErr := h.articuloService.List(c.Request.Context())
	if listErr == nil {
		page.Articulos = articulos
	}

	h.renderer.Render(c.Writer, http.StatusOK, "articulos.html", &page)
}

// Delete handles POST /articulos/:id/eliminar. A 409 from the backend
// means the item was soft-deactivated because remitos reference it;
// that is reported as a success, not an error.
func (h *ArticuloHandler) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		redirectFlash(c, "/articulos", flashParams("", msgArticuloDeleteError))
		return
	}

	deactivated, serverMsg, err := h.articuloService.Delete(c.Request.Context(), id)
	if err != nil {
		redirectFlash(c, "/articulos", flashParams("", msgArticuloDeleteError))
		return
	}

	msg := msgArticuloDeleted
	if deactivated {
		msg = msgArticuloDeactivated
		if serverMsg != "" {
			msg = serverMsg
		}
	}
	redirectFlash(c, "/articulos", flashParams(msg, ""))
}
