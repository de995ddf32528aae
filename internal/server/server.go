// Package server assembles the Echo instance: middleware, sessions, static
// assets, the renderer and the route table.
package server

import (
	"net/http"
	"strings"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/nfrund/helios/internal/assets"
	"github.com/nfrund/helios/internal/config"
	"github.com/nfrund/helios/internal/forms"
	"github.com/nfrund/helios/internal/handlers"
	"github.com/nfrund/helios/internal/middleware"
	"github.com/nfrund/helios/internal/rendering"
)

const sessionMaxAge = 30 * 24 * 60 * 60

// Dependencies are the services the server routes to.
type Dependencies struct {
	Config    config.Provider
	Renderer  *rendering.UniversalRenderer
	Validator *forms.CustomValidator
	Assets    *assets.Assets

	Home      *handlers.HomeHandler
	Auth      *handlers.AuthHandler
	Dashboard *handlers.DashboardHandler
	Toasts    *handlers.ToastHandler
}

// Server holds the dependencies for the HTTP server.
type Server struct {
	E    *echo.Echo
	Cfg  config.Provider
	deps Dependencies
}

// New creates the Echo instance and registers every route.
func New(deps Dependencies) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Renderer = deps.Renderer
	e.Validator = deps.Validator
	setupErrorHandling(e, deps.Renderer, deps.Assets)

	e.Use(echomw.RequestID())
	e.Use(middleware.Logger)
	e.Use(echomw.Recover())
	e.Use(session.Middleware(newSessionStore(deps.Config)))

	e.StaticFS(assets.URLPrefix, deps.Assets.FS())

	s := &Server{E: e, Cfg: deps.Config, deps: deps}
	s.RegisterRoutes()
	return s
}

// setupErrorHandling installs the central error handler.
func setupErrorHandling(e *echo.Echo, renderer rendering.Renderer, a *assets.Assets) {
	// Keep a nil *Assets out of the interface so the layout falls back to bare URLs.
	if a == nil {
		e.HTTPErrorHandler = handlers.ErrorHandler(renderer, nil)
		return
	}
	e.HTTPErrorHandler = handlers.ErrorHandler(renderer, a)
}

func newSessionStore(cfg config.Provider) *sessions.CookieStore {
	store := sessions.NewCookieStore([]byte(cfg.GetSessionSecret()))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   sessionMaxAge,
		HttpOnly: true,
		Secure:   strings.HasPrefix(cfg.GetAppBaseURL(), "https://"),
		SameSite: http.SameSiteLaxMode,
	}
	return store
}
