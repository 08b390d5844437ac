package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/igiehon-foundation/tournament-portal/internal/api/docs"
	"github.com/igiehon-foundation/tournament-portal/internal/api/handler"
	"github.com/igiehon-foundation/tournament-portal/internal/api/middleware"
	"github.com/igiehon-foundation/tournament-portal/internal/core/domain"
	"github.com/igiehon-foundation/tournament-portal/internal/core/ports"
)

// Services groups the use-case dependencies the router wires to handlers.
type Services struct {
	Auth          ports.AuthService
	Registrations ports.RegistrationService
	Events        ports.EventService
	Winners       ports.WinnerService
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(svc Services, db *mongo.Database, rdb *redis.Client, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("tournament"))
	e.Use(middleware.Session(svc.Auth))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(svc.Auth)
	registrationHandler := handler.NewRegistrationHandler(svc.Registrations)
	eventHandler := handler.NewEventHandler(svc.Events)
	winnerHandler := handler.NewWinnerHandler(svc.Winners)
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	// --- Health probes / operational endpoints (no guard) ---
	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	// --- Public routes ---
	v1 := e.Group("/v1")
	v1.POST("/auth/login", authHandler.Login)
	v1.POST("/auth/logout", authHandler.Logout)
	v1.GET("/auth/session", authHandler.Session)
	v1.POST("/registrations", registrationHandler.Submit)
	v1.POST("/contact", registrationHandler.SubmitContact)
	v1.GET("/events", eventHandler.List)
	v1.GET("/events/active", eventHandler.Active)
	v1.GET("/winners", winnerHandler.List)

	// --- School dashboard ---
	school := v1.Group("/school", middleware.Guard(domain.RequireSchool))
	school.GET("/registrations", registrationHandler.ListForSchool)

	// --- Admin dashboard ---
	admin := v1.Group("/admin", middleware.Guard(domain.RequireAdmin))
	admin.GET("/registrations", registrationHandler.ListAll)
	admin.PATCH("/registrations/:id/status", registrationHandler.Transition)
	admin.POST("/winners", winnerHandler.Create)

	return e
}
