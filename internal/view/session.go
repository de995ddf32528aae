package view

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
)

const (
	// SessionName is the cookie holding the browser session.
	SessionName = "helios-session"

	sessionIDKey    = "sid"
	sessionCacheKey = "helios.session_id"
	sessionMaxAge   = 30 * 24 * 60 * 60
)

// SessionID returns the id of the browser session, creating and saving one on
// first use. The id only keys the toast queue; it carries no identity.
func SessionID(c echo.Context) string {
	if id, ok := c.Get(sessionCacheKey).(string); ok && id != "" {
		return id
	}

	sess, err := session.Get(SessionName, c)
	if sess == nil {
		// No session middleware; the id lives for this request only.
		slog.Warn("Session store unavailable", "error", err)
		id := uuid.NewString()
		c.Set(sessionCacheKey, id)
		return id
	}
	if err != nil {
		// A cookie signed with another secret; replace it.
		slog.Debug("Discarding unreadable session cookie", "error", err)
	}

	id, ok := sess.Values[sessionIDKey].(string)
	if !ok || id == "" {
		id = uuid.NewString()
		sess.Values[sessionIDKey] = id
		sess.Options = &sessions.Options{
			Path:     "/",
			MaxAge:   sessionMaxAge,
			HttpOnly: true,
			Secure:   c.Scheme() == "https",
			SameSite: http.SameSiteLaxMode,
		}
		if err := sess.Save(c.Request(), c.Response()); err != nil {
			slog.Error("Failed to save session", "error", err)
		}
	}

	c.Set(sessionCacheKey, id)
	return id
}
