package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/coder/websocket"
	"github.com/labstack/echo/v4"

	"github.com/nfrund/helios/internal/middleware"
	"github.com/nfrund/helios/internal/pubsub"
	"github.com/nfrund/helios/internal/rendering"
	"github.com/nfrund/helios/internal/toast"
	"github.com/nfrund/helios/internal/view"
	"github.com/nfrund/helios/web/templates/components"
)

const (
	streamBuffer       = 16
	streamWriteTimeout = 5 * time.Second
)

// ToastHandler serves the toast list, dismissal and the live stream.
type ToastHandler struct {
	toasts     Toasts
	subscriber pubsub.Subscriber
	renderer   rendering.Renderer
}

// NewToastHandler creates a new ToastHandler.
func NewToastHandler(toasts Toasts, subscriber pubsub.Subscriber, renderer rendering.Renderer) *ToastHandler {
	return &ToastHandler{toasts: toasts, subscriber: subscriber, renderer: renderer}
}

// ToastsGet renders the session's current toasts.
func (h *ToastHandler) ToastsGet(c echo.Context) error {
	return c.Render(http.StatusOK, "", components.ToastList(h.toasts.List(view.SessionID(c))))
}

// ToastDelete dismisses a toast. Unknown ids succeed too.
func (h *ToastHandler) ToastDelete(c echo.Context) error {
	h.toasts.Dismiss(view.SessionID(c), c.Param("id"))
	return c.NoContent(http.StatusOK)
}

// ToastStream upgrades to a WebSocket and writes an out-of-band fragment for
// every change to the session's queue until the client goes away.
func (h *ToastHandler) ToastStream(c echo.Context) error {
	sessionID := view.SessionID(c)
	logger := middleware.FromContext(c.Request().Context()).With("session_id", sessionID)

	conn, err := websocket.Accept(c.Response(), c.Request(), nil)
	if err != nil {
		// Accept has already written the error response.
		logger.Warn("Toast stream upgrade failed", "error", err)
		return nil
	}
	defer conn.CloseNow()

	// Nothing is read from the client; CloseRead cancels ctx once it leaves.
	ctx := conn.CloseRead(c.Request().Context())

	frames := make(chan []byte, streamBuffer)
	err = pubsub.Subscribe(ctx, h.subscriber, toast.Events, func(ctx context.Context, sid string, ev toast.Event) error {
		if sid != sessionID {
			return nil
		}
		frame, err := h.renderer.RenderComponent(ctx, components.ToastEventFragment(ev))
		if err != nil {
			return err
		}
		select {
		case frames <- frame:
		case <-ctx.Done():
		}
		return nil
	})
	if err != nil {
		logger.Error("Toast stream subscribe failed", "error", err)
		conn.Close(websocket.StatusInternalError, "subscribe failed")
		return nil
	}

	logger.Debug("Toast stream opened")
	for {
		select {
		case <-ctx.Done():
			logger.Debug("Toast stream closed")
			conn.Close(websocket.StatusNormalClosure, "")
			return nil
		case frame := <-frames:
			if err := writeFrame(ctx, conn, frame); err != nil {
				if !errors.Is(err, context.Canceled) {
					logger.Warn("Toast stream write failed", "error", err)
				}
				return nil
			}
		}
	}
}

func writeFrame(ctx context.Context, conn *websocket.Conn, frame []byte) error {
	ctx, cancel := context.WithTimeout(ctx, streamWriteTimeout)
	defer cancel()
	return conn.Write(ctx, websocket.MessageText, frame)
}
