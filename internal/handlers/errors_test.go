package handlers_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/nfrund/helios/internal/handlers"
	"github.com/nfrund/helios/internal/rendering"
)

func TestErrorHandler(t *testing.T) {
	e := echo.New()
	e.HTTPErrorHandler = handlers.ErrorHandler(rendering.NewUniversalRenderer(), nil)
	e.GET("/boom", func(c echo.Context) error { return errors.New("database on fire") })
	e.GET("/bad", func(c echo.Context) error { return echo.NewHTTPError(http.StatusBadRequest, "Invalid form submission") })

	serve := func(path string, header map[string]string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		for k, v := range header {
			req.Header.Set(k, v)
		}
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		return rec
	}

	t.Run("unhandled errors render a 500 page without details", func(t *testing.T) {
		rec := serve("/boom", map[string]string{echo.HeaderAccept: "text/html"})
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Contains(t, rec.Body.String(), "Error 500")
		assert.NotContains(t, rec.Body.String(), "database on fire")
	})

	t.Run("http errors keep status and message", func(t *testing.T) {
		rec := serve("/bad", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "Invalid form submission")
		assert.Contains(t, rec.Body.String(), "<html")
	})

	t.Run("htmx requests get plain text", func(t *testing.T) {
		rec := serve("/bad", map[string]string{"HX-Request": "true"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Invalid form submission", rec.Body.String())
	})

	t.Run("unknown routes are 404", func(t *testing.T) {
		rec := serve("/missing", map[string]string{echo.HeaderAccept: "application/json"})
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Not Found", rec.Body.String())
	})
}
