package web

import (
	"fmt"
	"html/template"
	"io/fs"
	"net/http"

	"github.com/ncastro/lavanderia-panel/internal/application/service"
	"github.com/ncastro/lavanderia-panel/internal/domain/enum"
	"github.com/ncastro/lavanderia-panel/pkg/logger"
)

// Renderer holds the parsed page templates.
type Renderer struct {
	templates map[string]*template.Template
}

// FuncMap returns the template function map.
func FuncMap() template.FuncMap {
	return template.FuncMap{
		"money": service.FormatPrecio,
		"orDash": func(s *string) string {
			if s == nil || *s == "" {
				return "-"
			}
			return *s
		},
		"estadoLabel": func(e enum.EstadoRemito) string {
			return e.String()
		},
		"estados": enum.EstadosRemito,
		"sub": func(a, b int) int {
			return a - b
		},
	}
}

// NewRenderer parses all page templates with the shared layout.
func NewRenderer() (*Renderer, error) {
	tfs := TemplatesFS()

	layoutBytes, err := fs.ReadFile(tfs, "layout.html")
	if err != nil {
		return nil, fmt.Errorf("reading layout template: %w", err)
	}

	pages := []string{
		"home.html",
		"clientes.html",
		"articulos.html",
		"remitos_listado.html",
		"remito_crear.html",
		"remito_detalle.html",
	}

	r := &Renderer{templates: make(map[string]*template.Template)}

	for _, page := range pages {
		pageBytes, err := fs.ReadFile(tfs, page)
		if err != nil {
			return nil, fmt.Errorf("reading template %s: %w", page, err)
		}

		tmpl := template.New(page).Funcs(FuncMap())
		tmpl, err = tmpl.Parse(string(layoutBytes))
		if err != nil {
			return nil, fmt.Errorf("parsing layout for %s: %w", page, err)
		}
		tmpl, err = tmpl.Parse(string(pageBytes))
		if err != nil {
			return nil, fmt.Errorf("parsing template %s: %w", page, err)
		}

		r.templates[page] = tmpl
	}

	return r, nil
}

// Render writes a page template with the given data.
func (r *Renderer) Render(w http.ResponseWriter, status int, name string, data any) {
	tmpl, ok := r.templates[name]
	if !ok {
		http.Error(w, "template not found", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := tmpl.ExecuteTemplate(w, "layout", data); err != nil {
		logger.L().WithError(err).WithField("template", name).Error("failed to render template")
	}
}

// PageData is the base data passed to every template.
type PageData struct {
	Title  string
	Active string
	Msg    string
	Err    string
}
