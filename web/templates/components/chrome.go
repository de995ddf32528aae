package components

import (
	"strconv"
	"time"

	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"

	"github.com/nfrund/helios/internal/content"
)

// Navbar is the sticky top bar of the landing page.
func Navbar(brand content.Brand, links []content.Link) g.Node {
	return html.Header(
		html.Class("navbar"),
		html.Div(
			html.Class("container"),
			html.A(html.Class("brand"), html.Href("/"), g.Text("☀ "+brand.Name)),
			html.Nav(
				html.Aria("label", "Primary"),
				g.Map(links, func(l content.Link) g.Node {
					return html.A(html.Href(l.Href), g.Text(l.Label))
				}),
				html.A(html.Class("btn"), html.Href("/login"), g.Text("Log in")),
			),
		),
	)
}

// Footer closes every public page.
func Footer(brand content.Brand, footer content.Footer) g.Node {
	return html.Footer(
		html.Class("footer"),
		html.Div(
			html.Class("container"),
			html.Div(
				html.Class("columns"),
				html.Div(
					html.Strong(html.Class("brand"), g.Text(brand.Name)),
					html.P(g.Text(brand.Tagline)),
				),
				g.Map(footer.Columns, func(col content.FooterColumn) g.Node {
					return html.Div(
						html.H4(g.Text(col.Title)),
						html.Ul(g.Map(col.Links, func(l content.Link) g.Node {
							return html.Li(html.A(html.Href(l.Href), g.Text(l.Label)))
						})),
					)
				}),
			),
			html.P(g.Text("© "+strconv.Itoa(time.Now().Year())+" "+footer.Copyright)),
		),
	)
}
