package main

import (
	"log/slog"
	"net/http"

	"weather-server/internal/config"
	"weather-server/internal/forecast"

	"github.com/gin-gonic/gin"
)

// App encapsulates application dependencies
type App struct {
	router          *gin.Engine
	logger          *slog.Logger
	forecastService forecast.Service
	cfg             *config.Config
}

// NewApp creates a new application with injected dependencies
func NewApp(cfg *config.Config, logger *slog.Logger) *App {
	// Set Gin mode from configuration
	gin.SetMode(cfg.Server.GinMode)

	// Create Gin router
	router := gin.New()

	// Add middleware; a recovered panic must not leak internals to the caller
	router.Use(gin.CustomRecovery(recoveryHandler(logger)))

	// Load the UI template
	router.LoadHTMLGlob("web/templates/*")

	app := &App{
		router:          router,
		logger:          logger,
		forecastService: forecast.NewService(cfg, logger),
		cfg:             cfg,
	}

	// Register routes
	app.registerRoutes()

	logger.Info("application initialized")

	return app
}

// Run starts the HTTP server
func (app *App) Run(addr string) error {
	return app.router.Run(addr)
}

// recoveryHandler converts a recovered panic into the opaque 500 response
func recoveryHandler(logger *slog.Logger) gin.RecoveryFunc {
	return func(c *gin.Context, recovered any) {
		logger.Error("panic recovered", "error", recovered, "path", c.Request.URL.Path)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
