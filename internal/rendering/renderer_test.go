package rendering

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"
)

func TestRenderComponent(t *testing.T) {
	r := NewUniversalRenderer()

	out, err := r.RenderComponent(context.Background(), g.El("p", g.Text("node")))
	require.NoError(t, err)
	assert.Equal(t, "<p>node</p>", string(out))

	out, err = r.RenderComponent(context.Background(), templ.Raw("<b>templ</b>"))
	require.NoError(t, err)
	assert.Equal(t, "<b>templ</b>", string(out))

	_, err = r.RenderComponent(context.Background(), 42)
	assert.ErrorContains(t, err, "unsupported component type int")
}

func TestRenderPage(t *testing.T) {
	r := NewUniversalRenderer()
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	require.NoError(t, r.RenderPage(c, http.StatusUnprocessableEntity, g.El("h1", g.Text("Oops"))))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, echo.MIMETextHTMLCharsetUTF8, rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, "<h1>Oops</h1>", rec.Body.String())
}

func TestRenderPage_FailureWritesNothing(t *testing.T) {
	r := NewUniversalRenderer()
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	assert.Error(t, r.RenderPage(c, http.StatusOK, struct{}{}))
	assert.False(t, c.Response().Committed)
}

func TestRender_ImplementsEchoRenderer(t *testing.T) {
	e := echo.New()
	e.Renderer = NewUniversalRenderer()
	e.GET("/", func(c echo.Context) error {
		return c.Render(http.StatusOK, "", g.El("span", g.Text("via echo")))
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "<span>via echo</span>", rec.Body.String())
}
