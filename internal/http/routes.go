package http

import (
	"log/slog"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	middleware "task-manager.com/task-manager/internal/http/middlewares"
	"task-manager.com/task-manager/internal/ratelimit"
)

type ServerOptions struct {
	Logger *slog.Logger
	// Limiter is optional; nil turns rate limiting off.
	Limiter ratelimit.Limiter
}

// NewServer builds the echo instance with the global middleware stack and
// every route registered.
func NewServer(h *Handler, opts ServerOptions) *echo.Echo {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = ErrorHandler(logger)

	e.Use(echomw.RequestID())
	e.Use(middleware.RequestLogger(logger))
	e.Use(echomw.Recover())
	if opts.Limiter != nil {
		e.Use(middleware.RateLimiter(opts.Limiter))
	}

	Register(e, h)
	return e
}

func Register(e *echo.Echo, h *Handler) {
	requireAuth := middleware.RequireAuth(h.authService, h.cookie.Name)

	e.GET("/healthz", h.Health)

	authRoutes := e.Group("/auth")
	authRoutes.POST("/register", h.Register)
	authRoutes.POST("/login", h.Login)
	authRoutes.POST("/logout", h.Logout)
	authRoutes.GET("/me", h.Me, requireAuth)
	authRoutes.DELETE("/me", h.DeleteMe, requireAuth)

	taskRoutes := e.Group("/tasks", requireAuth)
	taskRoutes.GET("", h.ListTasks)
	taskRoutes.POST("", h.CreateTask)
	taskRoutes.GET("/:id", h.GetTask)
	taskRoutes.PATCH("/:id", h.UpdateTask)
	taskRoutes.DELETE("/:id", h.DeleteTask)

	tagRoutes := e.Group("/tags", requireAuth)
	tagRoutes.GET("", h.ListTags)
	tagRoutes.POST("", h.CreateTag)
	tagRoutes.DELETE("/:id", h.DeleteTag)
}
