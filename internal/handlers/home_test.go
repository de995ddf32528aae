package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nfrund/helios/internal/content"
	"github.com/nfrund/helios/internal/handlers"
	"github.com/nfrund/helios/internal/savings"
)

func newHomeEnv(t *testing.T) *testEnv {
	t.Helper()
	env := newTestEnv(t, nil)

	site, err := content.Parse([]byte("brand:\n  name: Helios\nhero:\n  title: Cut your electricity bill\n"))
	require.NoError(t, err)

	h := handlers.NewHomeHandler(env.pages, site, savings.NewFormatter("en"))
	env.e.GET("/", h.HomeGet)
	env.e.GET("/calculator", h.CalculatorGet)
	return env
}

func TestHomeGet(t *testing.T) {
	env := newHomeEnv(t)

	rec := env.get("/")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Cut your electricity bill")
	assert.Contains(t, body, `id="calculator-results"`)
	assert.Contains(t, body, "₹2,700", "default bill of 3000 saves 2700 a month")
	assert.Contains(t, body, `class="sun"`)
}

func TestHomeGet_PreselectsBill(t *testing.T) {
	env := newHomeEnv(t)

	body := env.get("/?bill=8000").Body.String()
	assert.Contains(t, body, "₹7,200")
	assert.Contains(t, body, "₹86,400")
}

func TestCalculatorGet(t *testing.T) {
	env := newHomeEnv(t)

	htmx := func(path string) string {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.Header.Set("HX-Request", "true")
		rec := env.do(req)
		require.Equal(t, http.StatusOK, rec.Code)
		return rec.Body.String()
	}

	t.Run("renders the results fragment", func(t *testing.T) {
		body := htmx("/calculator?bill=8000")
		assert.Contains(t, body, `<dl id="calculator-results"`)
		assert.Contains(t, body, "9 kW")
		assert.NotContains(t, body, "<html")
	})

	t.Run("clamps to the slider range", func(t *testing.T) {
		assert.Contains(t, htmx("/calculator?bill=50000"), "₹18,000")
		assert.Contains(t, htmx("/calculator?bill=10"), "₹900")
	})

	t.Run("falls back to the default bill", func(t *testing.T) {
		assert.Contains(t, htmx("/calculator?bill=lots"), "₹2,700")
	})

	t.Run("redirects plain form submissions", func(t *testing.T) {
		rec := env.get("/calculator?bill=8000")
		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/?bill=8000#calculator", rec.Header().Get("Location"))
	})
}
