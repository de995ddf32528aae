package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/nfrund/helios/internal/content"
	"github.com/nfrund/helios/internal/savings"
	"github.com/nfrund/helios/web/templates/components"
	"github.com/nfrund/helios/web/templates/layouts"
	"github.com/nfrund/helios/web/templates/pages"
)

// HomeHandler serves the landing page and the calculator fragment.
type HomeHandler struct {
	pages     *Pages
	site      *content.Site
	formatter *savings.Formatter
}

// NewHomeHandler creates a new HomeHandler.
func NewHomeHandler(p *Pages, site *content.Site, formatter *savings.Formatter) *HomeHandler {
	return &HomeHandler{pages: p, site: site, formatter: formatter}
}

// HomeGet renders the landing page. An optional ?bill= preselects the calculator.
func (h *HomeHandler) HomeGet(c echo.Context) error {
	est := savings.Calculate(billParam(c))
	page := layouts.Base(h.pages.Page(c, ""), pages.Home(h.site, est, h.formatter))
	return c.Render(http.StatusOK, "", page)
}

// CalculatorGet answers the slider. htmx requests get the results fragment;
// plain form submissions are sent back to the landing page.
func (h *HomeHandler) CalculatorGet(c echo.Context) error {
	bill := billParam(c)
	if c.Request().Header.Get("HX-Request") != "true" {
		return c.Redirect(http.StatusSeeOther, "/?bill="+strconv.Itoa(int(bill))+"#calculator")
	}
	return c.Render(http.StatusOK, "", components.CalculatorResults(savings.Calculate(bill), h.formatter))
}

// billParam reads ?bill=, falling back to the default and clamping to the
// slider's range.
func billParam(c echo.Context) float64 {
	raw := c.QueryParam("bill")
	if raw == "" {
		return savings.DefaultBill
	}
	bill, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return savings.DefaultBill
	}
	return savings.Clamp(bill)
}
