package pages

import (
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"

	"github.com/nfrund/helios/internal/content"
	"github.com/nfrund/helios/internal/savings"
	"github.com/nfrund/helios/web/templates/components"
)

// Home is the landing page body.
func Home(site *content.Site, est savings.Estimate, f *savings.Formatter) g.Node {
	return g.Group{
		components.Navbar(site.Brand, site.Nav),
		html.Main(
			components.Hero(site.Hero, components.DefaultSun),
			components.Stats(site.Stats),
			components.Features(site.Features),
			components.Steps(site.Steps),
			components.Calculator(est, f),
			components.Testimonials(site.Testimonials),
			components.FAQ(site.FAQs),
			components.CTA(site.CTA),
		),
		components.Footer(site.Brand, site.Footer),
	}
}
