package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nfrund/helios/internal/handlers"
)

func TestDashboardGet(t *testing.T) {
	env := newTestEnv(t, nil)
	env.e.GET("/*", handlers.NewDashboardHandler(env.pages).DashboardGet)

	tests := []struct {
		path   string
		status int
		active string
		text   string
	}{
		{"/dashboard", http.StatusOK, `href="/dashboard" class="active"`, "Overview"},
		{"/energy/today", http.StatusOK, `href="/energy" class="active"`, "Generation and consumption"},
		{"/billing", http.StatusOK, `href="/billing" class="active"`, "Invoices"},
		{"/nowhere", http.StatusNotFound, "", "Page not found"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := env.get(tt.path)

			assert.Equal(t, tt.status, rec.Code)
			body := rec.Body.String()
			assert.Contains(t, body, tt.text)
			if tt.active == "" {
				assert.NotContains(t, body, `class="active"`)
			} else {
				assert.Contains(t, body, tt.active)
			}
		})
	}
}
