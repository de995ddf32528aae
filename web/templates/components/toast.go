package components

import (
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	"maragu.dev/gomponents/html"

	"github.com/nfrund/helios/internal/toast"
)

const (
	// ToastContainerID is the element every toast is appended to.
	ToastContainerID = "toasts"
	// ToastStreamURL is where the page opens its toast WebSocket.
	ToastStreamURL = "/toasts/ws"
)

// ToastElementID is the DOM id of a rendered toast.
func ToastElementID(id string) string {
	return "toast-" + id
}

// ToastIcon returns the glyph for a kind.
func ToastIcon(kind toast.Kind) string {
	switch kind {
	case toast.KindSuccess:
		return "✓"
	case toast.KindError:
		return "✕"
	default:
		return "ℹ"
	}
}

// ToastItem renders a single toast with its dismiss button.
func ToastItem(t toast.Toast) g.Node {
	elementID := ToastElementID(t.ID)
	return html.Div(
		html.ID(elementID),
		html.Class("toast toast-"+string(t.Kind)),
		html.Role("status"),
		html.Span(html.Class("toast-icon"), html.Aria("hidden", "true"), g.Text(ToastIcon(t.Kind))),
		html.Span(g.Text(t.Message)),
		html.Button(
			html.Type("button"),
			html.Aria("label", "Dismiss"),
			hx.Delete("/toasts/"+t.ID),
			hx.Target("#"+elementID),
			hx.Swap("delete"),
			g.Text("×"),
		),
	)
}

// ToastList renders the container with the toasts currently queued.
func ToastList(toasts []toast.Toast) g.Node {
	return html.Div(
		html.ID(ToastContainerID),
		g.Attr("data-ws", ToastStreamURL),
		g.Attr("aria-live", "polite"),
		g.Map(toasts, ToastItem),
	)
}

// ToastEventFragment is the out-of-band fragment sent over the toast stream.
// Added toasts are appended to the container, removed ones deleted by id.
func ToastEventFragment(ev toast.Event) g.Node {
	if ev.Action == toast.ActionRemoved {
		return html.Div(
			html.ID(ToastElementID(ev.Toast.ID)),
			hx.SwapOOB("delete"),
		)
	}
	return html.Div(
		hx.SwapOOB("beforeend:#"+ToastContainerID),
		ToastItem(ev.Toast),
	)
}
