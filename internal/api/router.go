package api

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/handicraft/inventory-api/docs"
	"github.com/handicraft/inventory-api/internal/api/handler"
	"github.com/handicraft/inventory-api/internal/api/middleware"
	"github.com/handicraft/inventory-api/internal/core/domain"
	"github.com/handicraft/inventory-api/internal/core/ports"
)

// Services groups the use cases the router exposes.
type Services struct {
	Auth      ports.AuthService
	Tokens    ports.TokenVerifier
	Inventory ports.InventoryService
	Restocks  ports.RestockService
	Messages  ports.MessageService
	Mailer    ports.Mailer
}

// Probes are the unauthenticated health endpoints. Readiness may be nil.
type Probes struct {
	Liveness  echo.HandlerFunc
	Readiness echo.HandlerFunc
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(svc Services, probes Probes, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// Each router owns its HTTP metrics registry so building several routers
	// in one process (tests) never double-registers collectors.
	reg := prometheus.NewRegistry()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestIDWithConfig(echomiddleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(requestLogger(log))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "http",
		Registerer: reg,
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/metrics"
		},
	}))

	// --- Operational endpoints (no auth required) ---
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{
		Gatherer: prometheus.Gatherers{reg, prometheus.DefaultGatherer},
	}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	liveness := probes.Liveness
	if liveness == nil {
		liveness = func(c echo.Context) error {
			return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
		}
	}
	e.GET("/health", liveness)
	if probes.Readiness != nil {
		e.GET("/health/ready", probes.Readiness)
	}

	authHandler := handler.NewAuthHandler(svc.Auth)
	inventoryHandler := handler.NewInventoryHandler(svc.Inventory)
	restockHandler := handler.NewRestockHandler(svc.Restocks)
	messageHandler := handler.NewMessageHandler(svc.Messages)
	emailHandler := handler.NewEmailHandler(svc.Mailer)

	gate := middleware.Auth(svc.Tokens, log)

	// --- Public routes ---
	e.POST("/api/users", authHandler.Register)
	e.POST("/api/auth", authHandler.Login)

	// --- Protected routes ---
	api := e.Group("/api", gate)

	api.GET("/auth", authHandler.Me)

	inventory := api.Group("/inventory")
	inventory.GET("", inventoryHandler.List)
	inventory.POST("", inventoryHandler.Create)
	inventory.GET("/:id", inventoryHandler.Get)
	inventory.PUT("/:id", inventoryHandler.Update)
	inventory.POST("/:id/adjust", inventoryHandler.Adjust)
	inventory.DELETE("/:id", inventoryHandler.Delete, middleware.RequireRole(domain.RoleAdmin))

	restocks := api.Group("/restocks")
	restocks.GET("", restockHandler.List)
	restocks.POST("", restockHandler.Create)
	restocks.POST("/:id/receive", restockHandler.Receive)

	api.POST("/email", emailHandler.Send)

	api.POST("/messages", messageHandler.Send)
	api.GET("/messages/:userId", messageHandler.Conversation)

	return e
}

func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURIPath:   true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(_ echo.Context, v echomiddleware.RequestLoggerValues) error {
			ev := log.Info()
			if v.Error != nil {
				ev = log.Warn().Err(v.Error)
			}
			ev.Str("method", v.Method).
				Str("path", v.URIPath).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}
