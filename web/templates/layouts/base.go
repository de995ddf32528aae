package layouts

import (
	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"

	"github.com/nfrund/helios/internal/toast"
	"github.com/nfrund/helios/internal/view"
	"github.com/nfrund/helios/web/templates/components"
)

const htmxURL = "https://unpkg.com/htmx.org@2.0.4"

// Assets resolves fingerprinted static URLs.
type Assets interface {
	Path(name string) string
}

// Page is what every full document needs besides its body.
type Page struct {
	Title  string
	Assets Assets
	Toasts []toast.Toast
	// Head holds extra elements such as a refresh fallback.
	Head []g.Node
}

// Base wraps body content in the HTML document shared by all pages.
func Base(p Page, body ...g.Node) templ.Component {
	return view.AdaptGomponentToTempl(Document(p, body...))
}

// Document is Base as a gomponents node.
func Document(p Page, body ...g.Node) g.Node {
	return html.Doctype(
		html.HTML(
			html.Lang("en"),
			html.Head(
				html.Meta(html.Charset("utf-8")),
				html.Meta(html.Name("viewport"), html.Content("width=device-width, initial-scale=1")),
				g.El("title", g.Text(CalculateTitle(p.Title))),
				html.Link(html.Rel("icon"), html.Type("image/svg+xml"), html.Href(assetPath(p.Assets, "img/favicon.svg"))),
				html.Link(html.Rel("stylesheet"), html.Href(assetPath(p.Assets, "css/app.css"))),
				html.Script(html.Src(htmxURL), html.Defer()),
				html.Script(html.Src(assetPath(p.Assets, "js/app.js")), html.Defer()),
				g.Group(p.Head),
			),
			html.Body(
				g.Group(body),
				components.ToastList(p.Toasts),
			),
		),
	)
}

func assetPath(a Assets, name string) string {
	if a == nil {
		return "/static/" + name
	}
	return a.Path(name)
}
