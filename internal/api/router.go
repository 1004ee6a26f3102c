package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/taskforge/task-tracker/internal/api/handler"
	"github.com/taskforge/task-tracker/internal/api/middleware"
	"github.com/taskforge/task-tracker/internal/core/hash"
	"github.com/taskforge/task-tracker/internal/core/service"
	"github.com/taskforge/task-tracker/internal/core/token"
	"github.com/taskforge/task-tracker/internal/infrastructure/db/sqlite"
	"github.com/taskforge/task-tracker/internal/pkg/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(store *sqlite.Store, cfg *config.Config, log zerolog.Logger) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("tasktracker"))

	// --- Dependencies ---
	tokens, err := token.NewService(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	if err != nil {
		return nil, err
	}

	userRepo := sqlite.NewUserRepository(store)
	taskRepo := sqlite.NewTaskRepository(store)
	hasher := hash.NewBcryptHasher(cfg.Auth.BcryptCost)

	authService := service.NewAuthService(userRepo, hasher, tokens, log)
	taskService := service.NewTaskService(taskRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	taskHandler := handler.NewTaskHandler(taskService)
	authRequired := middleware.Auth(authService)

	// --- Auth routes ---
	e.GET("/auth/", authHandler.Status)
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/token", authHandler.Token)

	// --- Task routes ---
	// List and get are open to any caller; mutations require a bearer token.
	e.GET("/todos", taskHandler.List)
	e.GET("/todos/:id", taskHandler.Get)
	e.POST("/todos", taskHandler.Create, authRequired)
	e.PUT("/todos/:id", taskHandler.Update, authRequired)
	e.DELETE("/todos/:id", taskHandler.Delete, authRequired)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(store.DB())

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – is the store up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e, nil
}
