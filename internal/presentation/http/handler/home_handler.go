package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ncastro/lavanderia-panel/internal/presentation/web"
)

// HomeHandler renders the landing page.
type HomeHandler struct {
	renderer *web.Renderer
}

// NewHomeHandler creates a new home handler.
func NewHomeHandler(renderer *web.Renderer) *HomeHandler {
	return &HomeHandler{renderer: renderer}
}

// Page handles GET /.
func (h *HomeHandler) Page(c *gin.Context) {
	h.renderer.Render(c.Writer, http.StatusOK, "home.html", &struct {
		web.PageData
	}{
		PageData: basePage(c, "Home", "home"),
	})
}
