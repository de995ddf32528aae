// Package handlers contains the Echo handlers for the public pages, the
// placeholder auth screens, the toast transport and the dashboard shell.
package handlers

import (
	"github.com/labstack/echo/v4"
	g "maragu.dev/gomponents"

	"github.com/nfrund/helios/internal/toast"
	"github.com/nfrund/helios/internal/view"
	"github.com/nfrund/helios/web/templates/layouts"
)

// Toasts is the part of the toast manager the handlers use.
type Toasts interface {
	Add(sessionID, message string, kind toast.Kind) toast.Toast
	Dismiss(sessionID, id string) bool
	List(sessionID string) []toast.Toast
}

// Pages builds the layout data shared by every full page: assets and the
// toasts already queued for the browser session.
type Pages struct {
	Toasts Toasts
	Assets layouts.Assets
}

// NewPages creates a new Pages.
func NewPages(toasts Toasts, assets layouts.Assets) *Pages {
	return &Pages{Toasts: toasts, Assets: assets}
}

// Page returns the layout data for the current request.
func (p *Pages) Page(c echo.Context, title string, head ...g.Node) layouts.Page {
	return layouts.Page{
		Title:  title,
		Assets: p.Assets,
		Toasts: p.Toasts.List(view.SessionID(c)),
		Head:   head,
	}
}

// Notify queues a toast for the current request's session.
func (p *Pages) Notify(c echo.Context, message string, kind toast.Kind) toast.Toast {
	return p.Toasts.Add(view.SessionID(c), message, kind)
}
