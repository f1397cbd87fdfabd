package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/metaflowia/user-api/internal/api/handler"
	"github.com/metaflowia/user-api/internal/api/middleware"
	"github.com/metaflowia/user-api/internal/core/ports"
)

// Dependencies carries everything the router needs. Services are injected
// as ports so handler wiring stays decoupled from concrete implementations.
type Dependencies struct {
	DB           *mongo.Database
	Redis        *redis.Client
	Auth         ports.AuthService
	Registration ports.RegistrationService
	Users        ports.UserService
	Log          zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("userapi"))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(deps.Auth)
	userHandler := handler.NewUserHandler(deps.Registration, deps.Users)
	authRequired := middleware.Auth(deps.Auth)

	// --- Public routes ---
	e.POST("/login", authHandler.Login)
	e.POST("/guest", authHandler.LoginAsGuest)
	e.POST("/register", userHandler.Register)
	e.POST("/register_guest", userHandler.RegisterGuest)

	// --- Authenticated routes ---
	e.GET("/me", userHandler.Me, authRequired)
	e.GET("/users", userHandler.List, authRequired, middleware.AdminOnly(deps.Auth))

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(deps.DB, deps.Redis)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
