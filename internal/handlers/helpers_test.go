package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/nfrund/helios/internal/forms"
	"github.com/nfrund/helios/internal/handlers"
	"github.com/nfrund/helios/internal/pubsub"
	"github.com/nfrund/helios/internal/rendering"
	"github.com/nfrund/helios/internal/toast"
	"github.com/nfrund/helios/internal/view"
)

const testSessionSecret = "a-very-secret-key-for-testing-!"

type testEnv struct {
	e      *echo.Echo
	toasts *toast.Manager
	pages  *handlers.Pages
	cookie *http.Cookie
	mailer *recordingMailer
}

// newTestEnv builds an Echo instance with sessions, the universal renderer and
// a route that reports the session id, in the shape the server wires them.
func newTestEnv(t *testing.T, bus pubsub.Publisher) *testEnv {
	t.Helper()

	e := echo.New()
	e.Renderer = rendering.NewUniversalRenderer()
	e.Validator = forms.NewValidator()
	e.Use(session.Middleware(sessions.NewCookieStore([]byte(testSessionSecret))))
	e.GET("/whoami", func(c echo.Context) error {
		return c.String(http.StatusOK, view.SessionID(c))
	})

	mgr := toast.NewManager(bus, toast.WithTTL(time.Minute))
	t.Cleanup(mgr.Shutdown)

	return &testEnv{e: e, toasts: mgr, pages: handlers.NewPages(mgr, nil)}
}

// sessionID starts a browser session and remembers its cookie.
func (env *testEnv) sessionID(t *testing.T) string {
	t.Helper()
	rec := env.do(httptest.NewRequest(http.MethodGet, "/whoami", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	if cookies := rec.Result().Cookies(); len(cookies) > 0 {
		env.cookie = cookies[0]
	}
	return rec.Body.String()
}

func (env *testEnv) do(req *http.Request) *httptest.ResponseRecorder {
	if env.cookie != nil {
		req.AddCookie(env.cookie)
	}
	rec := httptest.NewRecorder()
	env.e.ServeHTTP(rec, req)
	return rec
}

func (env *testEnv) get(path string) *httptest.ResponseRecorder {
	return env.do(httptest.NewRequest(http.MethodGet, path, nil))
}

func (env *testEnv) postForm(path string, values url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	return env.do(req)
}
