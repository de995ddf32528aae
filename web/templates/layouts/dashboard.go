package layouts

import (
	"strings"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"

	"github.com/nfrund/helios/internal/view"
)

// MenuItem is an entry in the dashboard sidebar.
type MenuItem struct {
	Label string
	Path  string
}

// Menu is the fixed dashboard navigation.
var Menu = []MenuItem{
	{Label: "Overview", Path: "/dashboard"},
	{Label: "Energy", Path: "/energy"},
	{Label: "Devices", Path: "/devices"},
	{Label: "Billing", Path: "/billing"},
	{Label: "Settings", Path: "/settings"},
}

// ActiveItem picks the menu item whose path equals, or is the longest
// segment prefix of, the request path.
func ActiveItem(path string) (MenuItem, bool) {
	path = "/" + strings.Trim(path, "/")

	var best MenuItem
	found := false
	for _, item := range Menu {
		if path != item.Path && !strings.HasPrefix(path, item.Path+"/") {
			continue
		}
		if !found || len(item.Path) > len(best.Path) {
			best, found = item, true
		}
	}
	return best, found
}

// Dashboard wraps content in the header, sidebar and footer of the shell.
func Dashboard(p Page, path string, content g.Node) templ.Component {
	active, _ := ActiveItem(path)

	return view.AdaptGomponentToTempl(Document(p,
		html.Div(
			html.Class("shell"),
			html.Header(
				html.A(html.Class("brand"), html.Href("/dashboard"), g.Text("☀ Helios")),
				html.A(html.Class("btn"), html.Href("/"), g.Text("Log out")),
			),
			html.Aside(
				html.Nav(
					html.Aria("label", "Dashboard"),
					g.Map(Menu, func(item MenuItem) g.Node {
						isActive := item.Path == active.Path
						return html.A(
							html.Href(item.Path),
							g.If(isActive, html.Class("active")),
							g.If(isActive, html.Aria("current", "page")),
							g.Text(item.Label),
						)
					}),
				),
			),
			html.Main(content),
			html.Footer(g.Text("Helios dashboard preview")),
		),
	))
}
