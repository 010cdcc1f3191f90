package web

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRendererParsesAllPages(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	for _, page := range []string{
		"home.html",
		"clientes.html",
		"articulos.html",
		"remitos_listado.html",
		"remito_crear.html",
		"remito_detalle.html",
	} {
		assert.Contains(t, r.templates, page)
	}
}

func TestRenderUnknownTemplate(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	w := httptest.NewRecorder()
	r.Render(w, 200, "missing.html", nil)
	assert.Equal(t, 500, w.Code)
}

func TestFuncMap(t *testing.T) {
	funcs := FuncMap()

	money := funcs["money"].(func(float64) string)
	assert.Equal(t, "150.5", money(150.5))
	assert.Equal(t, "150", money(150))

	orDash := funcs["orDash"].(func(*string) string)
	assert.Equal(t, "-", orDash(nil))
	empty := ""
	assert.Equal(t, "-", orDash(&empty))
	tel := "11-5555"
	assert.Equal(t, "11-5555", orDash(&tel))
}

func TestStaticAssetsEmbedded(t *testing.T) {
	f, err := StaticFS().Open("app.css")
	require.NoError(t, err)
	require.NoError(t, f.Close())
}
