package server

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nfrund/helios/internal/middleware"
)

// RegisterRoutes sets up all the application routes.
func (s *Server) RegisterRoutes() {
	rateLimiter := middleware.RateLimiter()

	s.E.GET("/", s.deps.Home.HomeGet)
	s.E.GET("/calculator", s.deps.Home.CalculatorGet)

	s.E.GET("/login", s.deps.Auth.LoginGet)
	s.E.POST("/login", s.deps.Auth.LoginPost, rateLimiter)

	s.E.GET("/register", s.deps.Auth.RegisterGet)
	s.E.POST("/register", s.deps.Auth.RegisterPost, rateLimiter)

	s.E.GET("/forgot-password", s.deps.Auth.ForgotPasswordGet)
	s.E.POST("/forgot-password", s.deps.Auth.ForgotPasswordPost, rateLimiter)

	s.E.GET("/toasts", s.deps.Toasts.ToastsGet)
	s.E.DELETE("/toasts/:id", s.deps.Toasts.ToastDelete)
	s.E.GET("/toasts/ws", s.deps.Toasts.ToastStream)

	s.E.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok", "env": s.Cfg.GetEnv()})
	})

	// Everything else belongs to the dashboard shell.
	s.E.GET("/*", s.deps.Dashboard.DashboardGet)
}
