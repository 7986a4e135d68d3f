package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/magicvilla/villa-api/docs"
	"github.com/magicvilla/villa-api/internal/api/handler"
	"github.com/magicvilla/villa-api/internal/api/middleware"
	"github.com/magicvilla/villa-api/internal/core/ports"
	"github.com/magicvilla/villa-api/internal/pkg/validation"
)

// Deps carries everything the router dispatches to.
type Deps struct {
	Logger             zerolog.Logger
	JWTSecret          string
	Validator          *validation.Validator
	VillaService       ports.VillaService
	VillaNumberService ports.VillaNumberService
	AuthService        ports.AuthService
	// Readiness lists the dependencies pinged by /health/ready.
	Readiness map[string]ports.Pinger
	// Registry receives the HTTP metrics. Nil uses the default registry.
	Registry *prometheus.Registry
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator(d.Validator)
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Logger)

	metricsMW, metricsHandler := httpMetrics(d.Registry)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(middleware.RequestLogger(d.Logger))
	e.Use(metricsMW)
	e.Use(middleware.UnitOfWork())

	// --- API routes ---
	RegisterRoutes(e, Routes(Handlers{
		Villa:       handler.NewVillaHandler(d.VillaService),
		VillaNumber: handler.NewVillaNumberHandler(d.VillaNumberService),
		Auth:        handler.NewAuthHandler(d.AuthService),
	}), d.JWTSecret)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(d.Readiness)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	// --- Operations ---
	e.GET("/metrics", metricsHandler)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}

func httpMetrics(reg *prometheus.Registry) (echo.MiddlewareFunc, echo.HandlerFunc) {
	if reg == nil {
		return echoprometheus.NewMiddleware("villa_api"), echoprometheus.NewHandler()
	}
	mw := echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "villa_api",
		Registerer: reg,
	})
	h := echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: reg})
	return mw, h
}
