package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"

	"github.com/safenotes/notes-system/internal/api/handler"
	"github.com/safenotes/notes-system/internal/api/middleware"
	"github.com/safenotes/notes-system/internal/core/domain"
	"github.com/safenotes/notes-system/internal/infrastructure/http/handlers"
)

// JWTConfig carries the token verification settings for the auth middleware.
type JWTConfig struct {
	Secret   string
	Issuer   string
	Audience string
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(
	log zerolog.Logger,
	jwtCfg JWTConfig,
	authHandler *handler.AuthHandler,
	noteHandler *handler.NoteHandler,
	readiness *handlers.ReadinessHandler,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("notes_http"))

	authMiddleware := middleware.Auth(jwtCfg.Secret, jwtCfg.Issuer, jwtCfg.Audience)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.GET("/auth/dados-protegidos", authHandler.Protected, authMiddleware)

	// --- Note routes ---
	notas := e.Group("/notas", authMiddleware)
	notas.POST("", noteHandler.Create, middleware.RBAC(domain.RoleEditor, domain.RoleAdmin))
	notas.GET("/:id", noteHandler.Get)
	notas.PUT("/:id", noteHandler.Update, middleware.RBAC(domain.RoleEditor, domain.RoleAdmin))
	notas.DELETE("/:id", noteHandler.Delete, middleware.RBAC(domain.RoleAdmin))

	// --- Operational endpoints ---
	healthHandler := handlers.NewHealthHandler()
	e.GET("/health", healthHandler.Liveness)       // liveness  – is the process alive?
	e.GET("/health/ready", readiness.Readiness)    // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler()) // prometheus scrape target
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
