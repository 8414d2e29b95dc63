package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/ptcoach/personal-trainer/internal/api/handler"
	"github.com/ptcoach/personal-trainer/internal/api/middleware"
	"github.com/ptcoach/personal-trainer/internal/core/domain"
	"github.com/ptcoach/personal-trainer/internal/core/ports"
)

const methodPrefix = "/api/v2/method"

// dottedMethodPrefix is the module path the dashboard uses for whitelisted calls.
const dottedMethodPrefix = methodPrefix + "/personal_trainer.custom_methods."

// Dependencies holds everything the router needs to build its handlers.
type Dependencies struct {
	Auth        ports.AuthService
	Clients     ports.ClientService
	Memberships ports.MembershipService
	Packages    ports.PackageService
	Foods       ports.FoodService
	Dispatcher  handler.WeightDispatcher
	// Health lists the readiness checks by dependency name.
	Health map[string]handler.Pinger

	JWTSecret    string
	DashboardDir string
	Logger       zerolog.Logger
	// MetricsRegistry receives the HTTP metrics and backs /metrics.
	// nil means the Prometheus default registry, where the domain metrics live.
	MetricsRegistry *prometheus.Registry
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(deps.Logger))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace:  "personal_trainer",
		Subsystem:  "http",
		Registerer: registerer(deps.MetricsRegistry),
	}))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(deps.Auth)
	clientHandler := handler.NewClientHandler(deps.Clients)
	membershipHandler := handler.NewMembershipHandler(deps.Memberships)
	packageHandler := handler.NewPackageHandler(deps.Packages)
	foodHandler := handler.NewFoodHandler(deps.Foods)
	weightHandler := handler.NewWeightHandler(deps.Dispatcher)
	methodHandler := handler.NewMethodHandler(deps.Memberships, deps.Clients, deps.Logger)
	dashboardHandler := handler.NewDashboardHandler(deps.DashboardDir)

	authMiddleware := middleware.Auth(deps.JWTSecret)
	staff := middleware.RBAC(domain.RoleAdmin, domain.RoleTrainer)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	// --- Health probes, metrics and docs (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(deps.Health)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{
		Gatherer: gatherer(deps.MetricsRegistry),
	}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Auth routes ---
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/register", authHandler.Register, authMiddleware, adminOnly)
	e.GET("/auth/me", authHandler.Me, authMiddleware, staff)

	// --- Remote procedures ---
	for _, prefix := range []string{methodPrefix + "/", dottedMethodPrefix} {
		e.Match([]string{"GET", "POST"}, prefix+"authenticate_membership", methodHandler.AuthenticateMembership)
		e.Match([]string{"GET", "POST"}, prefix+"update_client_doc", methodHandler.UpdateClientDoc)
	}

	// --- Dashboard SPA ---
	e.GET("/dashboard", dashboardHandler.Serve)
	e.GET("/dashboard/*", dashboardHandler.Serve)

	// --- Management API ---
	v1 := e.Group("/v1", authMiddleware, staff)

	v1.POST("/clients", clientHandler.Create)
	v1.GET("/clients", clientHandler.List)
	v1.GET("/clients/:id", clientHandler.Get)
	v1.PATCH("/clients/:id", clientHandler.Update)
	v1.DELETE("/clients/:id", clientHandler.Delete, adminOnly)
	v1.POST("/clients/:id/weights", clientHandler.AddWeight)
	v1.GET("/clients/:id/memberships", membershipHandler.ListByClient)

	v1.POST("/weights/batch", weightHandler.ReceiveBatch)

	v1.POST("/packages", packageHandler.Create)
	v1.GET("/packages", packageHandler.List)
	v1.GET("/packages/:id", packageHandler.Get)

	v1.POST("/memberships", membershipHandler.Create)
	v1.GET("/memberships/:id", membershipHandler.Get)
	v1.PATCH("/memberships/:id", membershipHandler.Update)
	v1.POST("/memberships/:id/refresh", membershipHandler.Refresh)

	v1.POST("/foods", foodHandler.Create)
	v1.GET("/foods", foodHandler.List)
	v1.GET("/foods/:id", foodHandler.Get)
	v1.DELETE("/foods/:id", foodHandler.Delete, adminOnly)

	return e
}

// requestLogger writes one zerolog line per request.
func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogURI:       true,
		LogStatus:    true,
		LogMethod:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			evt := log.Info()
			if v.Error != nil || v.Status >= 500 {
				evt = log.Error().Err(v.Error)
			}
			evt.Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}

func registerer(reg *prometheus.Registry) prometheus.Registerer {
	if reg == nil {
		return prometheus.DefaultRegisterer
	}
	return reg
}

func gatherer(reg *prometheus.Registry) prometheus.Gatherer {
	if reg == nil {
		return prometheus.DefaultGatherer
	}
	return reg
}
