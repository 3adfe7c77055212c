package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/umd-esiea/umd-api/docs"
	"github.com/umd-esiea/umd-api/internal/api/handler"
	"github.com/umd-esiea/umd-api/internal/api/middleware"
	"github.com/umd-esiea/umd-api/internal/core/domain"
	"github.com/umd-esiea/umd-api/internal/core/ports"
)

// Deps carries everything the router wires into handlers.
type Deps struct {
	Users   ports.UserService
	Courses ports.CourseService
	Images  ports.ImageService
	Tokens  middleware.TokenVerifier
	// Health maps dependency names to their readiness checks; a nil entry
	// marks a disabled optional dependency.
	Health map[string]handler.Pinger

	Logger      zerolog.Logger
	Development bool

	AuthRateLimit float64
	AuthRateBurst int
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.JSONSerializer = jsonSerializer{}
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Logger, d.Development)

	// each router owns its HTTP metrics so several can coexist in tests
	reg := prometheus.NewRegistry()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(middleware.RequestLogger(d.Logger))
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "umd",
		Registerer: reg,
	}))

	// --- Probes, metrics and docs (outside the gateway) ---
	health := handler.NewHealthHandler(d.Health)
	e.GET("/health", health.Liveness)        // liveness  – is the process alive?
	e.GET("/health/ready", health.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{
		Gatherer: prometheus.Gatherers{reg, prometheus.DefaultGatherer},
	}))
	e.GET("/api-docs/*", echoSwagger.WrapHandler)

	// --- Public user routes ---
	// The gateway is mounted per route so unmatched paths still fall through
	// to echo's 404 instead of a token check.
	authLimit := middleware.RateLimit(d.AuthRateLimit, d.AuthRateBurst)
	auth := middleware.Auth(d.Tokens)

	users := handler.NewUserHandler(d.Users)
	e.POST("/users/register", users.Register, authLimit)
	e.POST("/users/login", users.Login, authLimit)

	// --- Resource routes behind the authentication gateway ---
	e.PUT("/users/update/:id", users.Update, auth)
	e.GET("/users", users.List, auth, middleware.RBAC(domain.RoleAdmin))
	e.GET("/users/:id", users.Get, auth)

	courses := handler.NewCourseHandler(d.Courses)
	e.GET("/courses", courses.List, auth)
	e.POST("/courses", courses.Create, auth)
	e.GET("/courses/:id", courses.Get, auth)
	e.PUT("/courses/:id", courses.Update, auth)
	e.DELETE("/courses/:id", courses.Delete, auth)

	images := handler.NewImageHandler(d.Images)
	e.GET("/images", images.List, auth)
	e.POST("/images", images.Create, auth)
	e.GET("/images/:id", images.Get, auth)
	e.PUT("/images/:id", images.Update, auth)
	e.DELETE("/images/:id", images.Delete, auth)

	return e
}
