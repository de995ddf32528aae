package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nfrund/helios/web/templates/layouts"
	"github.com/nfrund/helios/web/templates/pages"
)

// DashboardHandler renders the dashboard shell for every path not matched by
// another route.
type DashboardHandler struct {
	pages *Pages
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(p *Pages) *DashboardHandler {
	return &DashboardHandler{pages: p}
}

// DashboardGet selects the menu item for the path, or renders the not-found
// panel with status 404.
func (h *DashboardHandler) DashboardGet(c echo.Context) error {
	path := c.Request().URL.Path

	item, ok := layouts.ActiveItem(path)
	if !ok {
		page := layouts.Dashboard(h.pages.Page(c, "Page not found"), path, pages.NotFound(path))
		return c.Render(http.StatusNotFound, "", page)
	}

	page := layouts.Dashboard(h.pages.Page(c, item.Label), path, pages.DashboardSection(item))
	return c.Render(http.StatusOK, "", page)
}
