package main

import (
	"log/slog"

	"gc-weather/internal/config"
	"gc-weather/internal/forecast"
	"gc-weather/internal/timezone"

	"github.com/gin-gonic/gin"

	_ "gc-weather/docs" // registers the swagger spec
)

// App encapsulates application dependencies
type App struct {
	router          *gin.Engine
	logger          *slog.Logger
	forecastService forecast.Service
	timezoneService timezone.Service
	cfg             *config.Config
}

// NewApp creates a new application with injected dependencies
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	tzSvc, err := timezone.NewService()
	if err != nil {
		return nil, err
	}

	return newAppWithServices(cfg, logger, forecast.NewForecastService(cfg, logger), tzSvc), nil
}

func newAppWithServices(
	cfg *config.Config,
	logger *slog.Logger,
	forecastService forecast.Service,
	timezoneService timezone.Service,
) *App {
	// Set Gin mode from configuration
	gin.SetMode(cfg.Server.GinMode)

	router := gin.New()
	router.Use(gin.Recovery(), requestID(), requestLogger(logger))

	app := &App{
		router:          router,
		logger:          logger,
		forecastService: forecastService,
		timezoneService: timezoneService,
		cfg:             cfg,
	}

	logger.Info("application initialized")

	app.registerRoutes()

	return app
}

// Run starts the HTTP server
func (app *App) Run(addr string) error {
	return app.router.Run(addr)
}
