package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ncastro/lavanderia-panel/internal/config"
	"github.com/ncastro/lavanderia-panel/internal/presentation/http/handler"
	"github.com/ncastro/lavanderia-panel/internal/presentation/http/middleware"
	"github.com/ncastro/lavanderia-panel/internal/presentation/web"
)

// Handlers holds all the page handlers used for route registration.
type Handlers struct {
	Home     *handler.HomeHandler
	Cliente  *handler.ClienteHandler
	Articulo *handler.ArticuloHandler
	Remito   *handler.RemitoHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	Cfg *config.Config
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	rateLimiter := middleware.NewIPRateLimiter(middleware.RateLimiterConfig{
		RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
		BurstSize:         deps.Cfg.RateLimit.Requests,
		CleanupInterval:   5 * time.Minute,
		EntryTTL:          10 * time.Minute,
	})
	router.Use(rateLimiter.Middleware())

	// Embedded static assets
	router.StaticFS("/static", http.FS(web.StaticFS()))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	router.GET("/", h.Home.Page)

	registerClienteRoutes(router, h)
	registerArticuloRoutes(router, h)
	registerRemitoRoutes(router, h)

	return router
}

func registerClienteRoutes(router *gin.Engine, h *Handlers) {
	clientes := router.Group("/clientes")
	{
		clientes.GET("", h.Cliente.Page)
		clientes.POST("", h.Cliente.Create)
		clientes.POST("/:id", h.Cliente.Update)
		clientes.POST("/:id/eliminar", h.Cliente.Delete)
	}
}

func registerArticuloRoutes(router *gin.Engine, h *Handlers) {
	articulos := router.Group("/articulos")
	{
		articulos.GET("", h.Articulo.Page)
		articulos.POST("", h.Articulo.Create)
		articulos.POST("/:id", h.Articulo.Update)
		articulos.POST("/:id/eliminar", h.Articulo.Delete)
	}
}

func registerRemitoRoutes(router *gin.Engine, h *Handlers) {
	remitos := router.Group("/remitos")
	{
		remitos.GET("", h.Remito.ListPage)
		remitos.GET("/crear", h.Remito.CrearPage)
		remitos.POST("/crear", h.Remito.CrearSubmit)
		remitos.GET("/:id", h.Remito.DetallePage)
		remitos.POST("/:id/estado", h.Remito.CambiarEstado)
		remitos.POST("/:id/cancelar", h.Remito.Cancelar)
	}
}
