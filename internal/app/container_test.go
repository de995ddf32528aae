package app

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nfrund/helios/internal/testutils"
)

func TestNew_WiresEveryService(t *testing.T) {
	a, err := New(testutils.ConfigForTests(t, map[string]string{"TOAST_TTL": "3s"}))
	require.NoError(t, err)
	defer a.Shutdown()

	require.NotNil(t, a.Server)
	require.NotNil(t, a.Server.E)
	assert.Equal(t, 3*time.Second, a.Toasts.TTL())
	assert.Contains(t, a.Assets.Path("css/app.css"), "?v=")

	routes := map[string]bool{}
	for _, r := range a.Server.E.Routes() {
		routes[r.Method+" "+r.Path] = true
	}
	for _, want := range []string{
		"GET /", "GET /calculator", "GET /login", "POST /login", "GET /register", "POST /register",
		"GET /forgot-password", "POST /forgot-password", "GET /toasts", "DELETE /toasts/:id",
		"GET /toasts/ws", "GET /health", "GET /*",
	} {
		assert.True(t, routes[want], "missing route %s", want)
	}
}

func TestNew_FailsOnMissingStaticDir(t *testing.T) {
	cfg := testutils.ConfigForTests(t, map[string]string{
		"STATIC_DIR": filepath.Join(t.TempDir(), "missing"),
	})

	_, err := New(cfg)
	assert.Error(t, err)
}
