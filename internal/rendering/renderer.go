// Package rendering writes templ components and gomponents nodes to HTTP
// responses, WebSocket frames and byte buffers through one entry point.
package rendering

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"

	"github.com/nfrund/helios/internal/middleware"
)

// Renderer renders any supported component.
type Renderer interface {
	// RenderComponent renders to bytes, for htmx fragments and WebSocket frames.
	RenderComponent(ctx context.Context, component any) ([]byte, error)

	// RenderPage writes a full HTTP response.
	RenderPage(c echo.Context, status int, component any) error
}

// UniversalRenderer accepts templ components and anything with a
// Render(io.Writer) error method, which covers gomponents nodes.
type UniversalRenderer struct{}

// NewUniversalRenderer creates a new UniversalRenderer instance.
func NewUniversalRenderer() *UniversalRenderer {
	return &UniversalRenderer{}
}

type gomponentNode interface {
	Render(w io.Writer) error
}

func (tr *UniversalRenderer) render(ctx context.Context, component any, w io.Writer) error {
	switch c := component.(type) {
	case templ.Component:
		return c.Render(ctx, w)
	case gomponentNode:
		return c.Render(w)
	case nil:
		return nil
	default:
		return fmt.Errorf("rendering: unsupported component type %T", component)
	}
}

// RenderComponent implements Renderer.
func (tr *UniversalRenderer) RenderComponent(ctx context.Context, component any) ([]byte, error) {
	var buf bytes.Buffer
	if err := tr.render(ctx, component, &buf); err != nil {
		return nil, fmt.Errorf("rendering: render component: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderPage implements Renderer. The component is rendered to a buffer first
// so a failure still leaves the error handler free to write its own response.
func (tr *UniversalRenderer) RenderPage(c echo.Context, status int, component any) error {
	body, err := tr.RenderComponent(c.Request().Context(), component)
	if err != nil {
		middleware.FromContext(c.Request().Context()).Error("Failed to render page", "error", err, "path", c.Path())
		return err
	}
	return c.HTMLBlob(status, body)
}

// Render implements echo.Renderer, so handlers can call c.Render(status, "", component).
func (tr *UniversalRenderer) Render(w io.Writer, _ string, data any, c echo.Context) error {
	return tr.render(c.Request().Context(), data, w)
}
