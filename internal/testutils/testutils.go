// Package testutils builds configuration for tests that start the whole
// application.
package testutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/joho/godotenv"

	"github.com/nfrund/helios/internal/config"
	"github.com/nfrund/helios/internal/logging"
)

// testEnv is applied before .env.test so a checkout without that file still
// produces a valid configuration.
var testEnv = map[string]string{
	"APP_ENV":        "test",
	"SERVER_ADDR":    "127.0.0.1:0",
	"APP_BASE_URL":   "http://localhost:8080",
	"SESSION_SECRET": "integration-test-session-secret!",
	"LOG_FORMAT":     "text",
	"LOG_LEVEL":      "error",
	"TOAST_TTL":      "1m",
	"SUBMIT_DELAY":   "2s",
	"LOCALE":         "en-IN",
	"STATIC_DIR":     "",
}

// ConfigForTests sets the test environment, overlays .env.test from the
// project root when it exists, and returns the resulting configuration.
// overrides win over both.
func ConfigForTests(t *testing.T, overrides map[string]string) *config.Config {
	t.Helper()

	for key, value := range testEnv {
		t.Setenv(key, value)
	}

	if root, ok := projectRoot(); ok {
		env, err := godotenv.Read(filepath.Join(root, ".env.test"))
		if err == nil {
			for key, value := range env {
				t.Setenv(key, value)
			}
		} else if !os.IsNotExist(err) {
			t.Fatalf("failed to load .env.test: %v", err)
		}
	}

	for key, value := range overrides {
		t.Setenv(key, value)
	}

	cfg := config.FromEnv()
	logging.New(cfg.GetLogFormat(), cfg.GetLogLevel())
	return cfg
}

// projectRoot walks up from the working directory to the directory holding go.mod.
func projectRoot() (string, bool) {
	dir, err := os.Getwd()
	if err != nil {
		return "", false
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}
