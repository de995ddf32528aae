package pages

import (
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"

	"github.com/nfrund/helios/web/templates/components"
	"github.com/nfrund/helios/web/templates/layouts"
)

var sectionIntro = map[string]string{
	"/dashboard": "A summary of today's generation, consumption and savings will appear here.",
	"/energy":    "Generation and consumption charts will appear here.",
	"/devices":   "Inverters, batteries and smart plugs paired with your account.",
	"/billing":   "Invoices, subsidy status and payment methods.",
	"/settings":  "Profile, notification and household preferences.",
}

// DashboardSection is the placeholder panel for a menu item.
func DashboardSection(item layouts.MenuItem) g.Node {
	return html.Section(
		html.Class("panel"),
		components.Animate(0),
		html.H1(g.Text(item.Label)),
		html.P(g.Text(sectionIntro[item.Path])),
	)
}

// NotFound is shown inside the dashboard shell for unknown paths.
func NotFound(path string) g.Node {
	return html.Section(
		html.Class("panel"),
		html.H1(g.Text("Page not found")),
		html.P(g.Text("Nothing lives at "), html.Code(g.Text(path)), g.Text(".")),
		html.A(html.Class("btn"), html.Href("/dashboard"), g.Text("Go to overview")),
	)
}

// Error is the standalone page rendered by the central error handler.
func Error(status int, message string) g.Node {
	return html.Main(
		html.Class("auth"),
		html.Div(
			html.Class("card"),
			html.P(html.Class("eyebrow"), g.Textf("Error %d", status)),
			html.H1(g.Text(message)),
			html.A(html.Class("btn btn-primary"), html.Href("/"), g.Text("Back home")),
		),
	)
}
