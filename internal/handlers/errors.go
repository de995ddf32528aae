package handlers

import (
	"errors"
	"net/http"
	"runtime/debug"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/nfrund/helios/internal/middleware"
	"github.com/nfrund/helios/internal/rendering"
	"github.com/nfrund/helios/web/templates/layouts"
	"github.com/nfrund/helios/web/templates/pages"
)

// ErrorHandler returns the central echo.HTTPErrorHandler. Unhandled errors
// become a 500 logged with a stack trace; echo.HTTPErrors keep their status.
// htmx and non-HTML clients get plain text instead of a page.
func ErrorHandler(renderer rendering.Renderer, assets layouts.Assets) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		logger := middleware.FromContext(c.Request().Context())
		status := http.StatusInternalServerError
		message := http.StatusText(status)

		var he *echo.HTTPError
		if errors.As(err, &he) {
			status = he.Code
			if msg, ok := he.Message.(string); ok {
				message = msg
			} else {
				message = http.StatusText(status)
			}
		}

		if status >= http.StatusInternalServerError {
			logger.Error("Internal Server Error (Unhandled)", "error", err, "path", c.Request().URL.Path, "stack_trace", string(debug.Stack()))
		} else {
			logger.Debug("Request failed", "status", status, "error", err)
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(status)
		} else if c.Request().Header.Get("HX-Request") == "true" || !acceptsHTML(c) {
			err = c.String(status, message)
		} else {
			page := layouts.Base(layouts.Page{Title: http.StatusText(status), Assets: assets}, pages.Error(status, message))
			err = renderer.RenderPage(c, status, page)
		}
		if err != nil {
			logger.Error("Failed to write error response", "error", err)
		}
	}
}

func acceptsHTML(c echo.Context) bool {
	accept := c.Request().Header.Get(echo.HeaderAccept)
	return accept == "" || strings.Contains(accept, echo.MIMETextHTML) || strings.Contains(accept, "*/*")
}
