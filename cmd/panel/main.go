package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/ncastro/lavanderia-panel/internal/application/service"
	"github.com/ncastro/lavanderia-panel/internal/config"
	"github.com/ncastro/lavanderia-panel/internal/infrastructure/api"
	"github.com/ncastro/lavanderia-panel/internal/presentation/http/handler"
	"github.com/ncastro/lavanderia-panel/internal/presentation/http/routes"
	"github.com/ncastro/lavanderia-panel/internal/presentation/web"
	"github.com/ncastro/lavanderia-panel/pkg/logger"
)

func main() {
	// Load configuration
	cfg := config.Load()

	logger.Init(cfg.App.Debug)

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Backend API client
	client := api.NewClient(cfg.API.BaseURL, cfg.API.Timeout)

	// Initialize repositories
	clienteRepo := api.NewClienteRepository(client)
	articuloRepo := api.NewArticuloRepository(client)
	remitoRepo := api.NewRemitoRepository(client)

	// Initialize services
	clienteService := service.NewClienteService(clienteRepo)
	articuloService := service.NewArticuloService(articuloRepo)
	remitoService := service.NewRemitoService(remitoRepo, clienteRepo, articuloRepo)

	// Template renderer
	renderer, err := web.NewRenderer()
	if err != nil {
		log.Fatalf("Failed to load templates: %v", err)
	}

	// Initialize handlers
	handlers := &routes.Handlers{
		Home:     handler.NewHomeHandler(renderer),
		Cliente:  handler.NewClienteHandler(clienteService, renderer),
		Articulo: handler.NewArticuloHandler(articuloService, renderer),
		Remito:   handler.NewRemitoHandler(remitoService, clienteService, renderer, cfg.UI.PageSize),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{Cfg: cfg})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	logger.L().Infof("Starting %s on port %s (backend: %s)", cfg.App.Name, port, client.BaseURL())

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
