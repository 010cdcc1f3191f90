package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ncastro/lavanderia-panel/internal/application/service"
	"github.com/ncastro/lavanderia-panel/internal/domain/entity"
	"github.com/ncastro/lavanderia-panel/internal/domain/enum"
	"github.com/ncastro/lavanderia-panel/internal/presentation/web"
	"github.com/ncastro/lavanderia-panel/pkg/apperror"
	"github.com/ncastro/lavanderia-panel/pkg/pagination"
)

const (
	msgRemitosLoadError    = "No se pudieron cargar remitos."
	msgRemitoFormLoadError = "No se pudieron cargar clientes/artículos. ¿Está la API corriendo?"
	msgRemitoSaveError     = "No se pudo guardar el remito."
	msgEstadoError         = "No se pudo cambiar el estado."
	msgCancelError         = "No se pudo cancelar el remito."
	msgDetalleLoadError    = "No se pudo cargar el detalle del remito."
	msgRemitoCreated       = "Remito creado ✅"
	msgEstadoUpdated       = "Estado actualizado ✅"
	msgRemitoCancelled     = "Remito cancelado ✅"
)

// RemitoHandler renders the remito listing, creation, detail and print
// views, and forwards status transitions and cancellations.
type RemitoHandler struct {
	remitoService  *service.RemitoService
	clienteService *service.ClienteService
	renderer       *web.Renderer
	pageSize       int
}

// NewRemitoHandler creates a new remito handler.
func NewRemitoHandler(
	remitoService *service.RemitoService,
	clienteService *service.ClienteService,
	renderer *web.Renderer,
	pageSize int,
) *RemitoHandler {
	if pageSize < 1 {
		pageSize = pagination.DefaultPageSize
	}
	return &RemitoHandler{
		remitoService:  remitoService,
		clienteService: clienteService,
		renderer:       renderer,
		pageSize:       pageSize,
	}
}

type remitosPage struct {
	web.PageData
	Clientes   []entity.Cliente
	Remitos    []entity.Remito
	FClienteID int64
	Total      int
	Pager      pagination.Pager
}

// ListPage handles GET /remitos. Query params: clienteId (filter),
// page, msg/err (flash). Any write redirects back here without a page
// param, so pagination resets to 1 after every fetch.
func (h *RemitoHandler) ListPage(c *gin.Context) {
	page := remitosPage{
		PageData: basePage(c, "Remitos", "remitos"),
	}

	if id, err := strconv.ParseInt(c.Query("clienteId"), 10, 64); err == nil && id > 0 {
		page.FClienteID = id
	}

	// Customer load failures degrade to an empty filter dropdown.
	clientes, err := h.clienteService.List(c.Request.Context())
	if err != nil {
		clientes = nil
	}
	page.Clientes = clientes

	remitos, err := h.remitoService.List(c.Request.Context(), page.FClienteID)
	if err != nil {
		page.Err = msgRemitosLoadError
		remitos = nil
	}

	pageNum, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	page.Total = len(remitos)
	page.Pager = pagination.New(pageNum, h.pageSize, len(remitos))
	page.Remitos = pagination.Slice(remitos, page.Pager)

	h.renderer.Render(c.Writer, http.StatusOK, "remitos_listado.html", &page)
}

// CambiarEstado handles POST /remitos/:id/estado.
func (h *RemitoHandler) CambiarEstado(c *gin.Context) {
	back := h.listPath(c)

	id, ok := paramID(c)
	if !ok {
		redirectFlash(c, back, flashParams("", msgEstadoError))
		return
	}

	estadoNum, err := strconv.Atoi(c.PostForm("estado"))
	if err != nil {
		redirectFlash(c, back, flashParams("", msgEstadoError))
		return
	}

	if err := h.remitoService.CambiarEstado(c.Request.Context(), id, enum.EstadoRemito(estadoNum)); err != nil {
		redirectFlash(c, back, flashParams("", serverMessageOr(err, msgEstadoError)))
		return
	}

	redirectFlash(c, back, flashParams(msgEstadoUpdated, ""))
}

// Cancelar handles POST /remitos/:id/cancelar. The backend marks the
// remito Cancelado; nothing is physically deleted.
func (h *RemitoHandler) Cancelar(c *gin.Context) {
	back := h.listPath(c)

	id, ok := paramID(c)
	if !ok {
		redirectFlash(c, back, flashParams("", msgCancelError))
		return
	}

	if err := h.remitoService.Cancelar(c.Request.Context(), id); err != nil {
		redirectFlash(c, back, flashParams("", serverMessageOr(err, msgCancelError)))
		return
	}

	redirectFlash(c, back, flashParams(msgRemitoCancelled, ""))
}

// listPath rebuilds the listing URL preserving the customer filter
// carried in the form.
func (h *RemitoHandler) listPath(c *gin.Context) string {
	if clienteID := c.PostForm("clienteId"); clienteID != "" {
		return "/remitos?clienteId=" + clienteID
	}
	return "/remitos"
}

type lineaView struct {
	ArticuloID string
	Cantidad   int
	Subtotal   float64
}

type remitoCrearPage struct {
	web.PageData
	Clientes      []entity.Cliente
	Articulos     []entity.Articulo
	ClienteID     string
	Lineas        []lineaView
	TotalEstimado float64
}

// CrearPage handles GET /remitos/crear with a fresh single-line draft.
func (h *RemitoHandler) CrearPage(c *gin.Context) {
	h.renderCrear(c, basePage(c, "Remitos", "remitos"), "", service.EmptyDraft())
}

// CrearSubmit handles POST /remitos/crear. The action field selects
// between editing the draft (add/remove a line) and submitting it.
func (h *RemitoHandler) CrearSubmit(c *gin.Context) {
	base := web.PageData{Title: "Remitos", Active: "remitos"}
	clienteID := c.PostForm("clienteId")
	drafts := draftsFromForm(c.PostFormArray("articuloId"), c.PostFormArray("cantidad"))
	action := c.PostForm("action")

	switch {
	case action == "add":
		drafts = append(drafts, service.LineaDraft{Cantidad: 1})
		h.renderCrear(c, base, clienteID, drafts)

	case strings.HasPrefix(action, "remove-"):
		if idx, err := strconv.Atoi(strings.TrimPrefix(action, "remove-")); err == nil {
			// At least one line must always remain in the draft.
			if len(drafts) > 1 && idx >= 0 && idx < len(drafts) {
				drafts = append(drafts[:idx], drafts[idx+1:]...)
			}
		}
		h.renderCrear(c, base, clienteID, drafts)

	default:
		err := h.remitoService.Create(c.Request.Context(), clienteID, drafts)
		if err == nil {
			// Redirecting resets the draft to a single empty line.
			redirectFlash(c, "/remitos/crear", flashParams(msgRemitoCreated, ""))
			return
		}
		if service.IsValidation(err) {
			base.Err = err.Error()
		} else {
			base.Err = serverMessageOr(err, msgRemitoSaveError)
		}
		h.renderCrear(c, base, clienteID, drafts)
	}
}

func (h *RemitoHandler) renderCrear(c *gin.Context, base web.PageData, clienteID string, drafts []service.LineaDraft) {
	page := remitoCrearPage{
		PageData:  base,
		ClienteID: clienteID,
	}

	clientes, articulos, err := h.remitoService.LoadFormData(c.Request.Context())
	if err != nil {
		page.Err = msgRemitoFormLoadError
	} else {
		page.Clientes = clientes
		page.Articulos = articulos
	}

	if len(drafts) == 0 {
		drafts = service.EmptyDraft()
	}
	for _, d := range drafts {
		page.Lineas = append(page.Lineas, lineaView{
			ArticuloID: d.ArticuloID,
			Cantidad:   d.Cantidad,
			Subtotal:   service.LineaSubtotal(d, page.Articulos),
		})
	}
	page.TotalEstimado = service.EstimatedTotal(drafts, page.Articulos)

	h.renderer.Render(c.Writer, http.StatusOK, "remito_crear.html", &page)
}

// draftsFromForm pairs the repeated articuloId/cantidad fields back
// into draft lines. A cantidad that does not parse becomes 0 and gets
// filtered out at submission.
func draftsFromForm(articuloIDs, cantidades []string) []service.LineaDraft {
	drafts := make([]service.LineaDraft, 0, len(articuloIDs))
	for i, id := range articuloIDs {
		cantidad := 0
		if i < len(cantidades) {
			cantidad, _ = strconv.Atoi(strings.TrimSpace(cantidades[i]))
		}
		drafts = append(drafts, service.LineaDraft{ArticuloID: id, Cantidad: cantidad})
	}
	return drafts
}

type remitoDetallePage struct {
	web.PageData
	RemitoID  string
	Remito    *entity.Remito
	JSON      string
	AutoPrint bool
}

// DetallePage handles GET /remitos/:id. With ?print=1 the page opens
// the print dialog automatically once rendered.
func (h *RemitoHandler) DetallePage(c *gin.Context) {
	page := remitoDetallePage{
		PageData: basePage(c, "Detalle de remito", "remitos"),
		RemitoID: c.Param("id"),
	}

	id, ok := paramID(c)
	if !ok {
		page.Err = msgDetalleLoadError
		h.renderer.Render(c.Writer, http.StatusOK, "remito_detalle.html", &page)
		return
	}

	remito, err := h.remitoService.Get(c.Request.Context(), id)
	if err != nil {
		page.Err = msgDetalleLoadError
	} else {
		page.Remito = remito
		page.AutoPrint = c.Query("print") == "1"
		if raw, err := json.MarshalIndent(remito, "", "  "); err == nil {
			page.JSON = string(raw)
		}
	}

	h.renderer.Render(c.Writer, http.StatusOK, "remito_detalle.html", &page)
}

// serverMessageOr surfaces the backend's message verbatim when one was
// supplied, else the generic fallback.
func serverMessageOr(err error, fallback string) string {
	if msg := apperror.ServerMessage(err); msg != "" {
		return msg
	}
	return fallback
}
