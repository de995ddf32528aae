package components

import (
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"

	"github.com/nfrund/helios/internal/content"
)

// Hero is the first screen: headline, calls to action and the sun.
func Hero(hero content.Hero, sun SunOptions) g.Node {
	return html.Section(
		html.Class("container hero"),
		html.Div(
			Animate(0),
			g.If(hero.Eyebrow != "", html.P(html.Class("eyebrow"), g.Text(hero.Eyebrow))),
			html.H1(
				g.Text(hero.Title),
				g.If(hero.Highlight != "", html.Span(html.Class("highlight"), g.Text(hero.Highlight))),
			),
			html.P(html.Class("lead"), g.Text(hero.Subtitle)),
			html.Div(
				html.Class("actions"),
				g.If(hero.PrimaryCTA.Href != "", html.A(html.Class("btn btn-primary"), html.Href(hero.PrimaryCTA.Href), g.Text(hero.PrimaryCTA.Label))),
				g.If(hero.SecondaryCTA.Href != "", html.A(html.Class("btn"), html.Href(hero.SecondaryCTA.Href), g.Text(hero.SecondaryCTA.Label))),
			),
		),
		html.Div(Animate(1), Sun(sun)),
	)
}

// Stats is the row of headline numbers under the hero.
func Stats(stats []content.Stat) g.Node {
	if len(stats) == 0 {
		return nil
	}
	return html.Section(
		html.Class("container section stats"),
		g.Group(mapIndexed(stats, func(i int, s content.Stat) g.Node {
			return html.Div(
				Animate(i),
				html.Strong(g.Text(s.Value)),
				html.Span(g.Text(s.Label)),
			)
		})),
	)
}

// Features lists the product capabilities. Icons were sanitised on load.
func Features(features []content.Feature) g.Node {
	return html.Section(
		html.ID("features"),
		html.Class("section"),
		html.Div(
			html.Class("container"),
			html.H2(Animate(0), g.Text("Everything your roof needs")),
			html.Div(
				html.Class("features"),
				g.Group(mapIndexed(features, func(i int, f content.Feature) g.Node {
					return html.Article(
						html.Class("card"),
						Animate(i),
						g.If(f.Icon != "", html.Div(html.Class("icon"), g.Raw(f.Icon))),
						html.H3(g.Text(f.Title)),
						html.P(g.Text(f.Body)),
					)
				})),
			),
		),
	)
}

// Steps is the how-it-works walkthrough.
func Steps(steps []content.Step) g.Node {
	return html.Section(
		html.ID("how-it-works"),
		html.Class("section"),
		html.Div(
			html.Class("container"),
			html.H2(Animate(0), g.Text("How it works")),
			html.Ol(
				html.Class("steps"),
				g.Group(mapIndexed(steps, func(i int, s content.Step) g.Node {
					return html.Li(
						html.Class("card step"),
						Animate(i),
						html.H3(g.Text(s.Title)),
						html.P(g.Text(s.Body)),
					)
				})),
			),
		),
	)
}

// Testimonials shows customer quotes.
func Testimonials(items []content.Testimonial) g.Node {
	return html.Section(
		html.ID("testimonials"),
		html.Class("section"),
		html.Div(
			html.Class("container"),
			html.H2(Animate(0), g.Text("What our customers say")),
			html.Div(
				html.Class("testimonials"),
				g.Group(mapIndexed(items, func(i int, t content.Testimonial) g.Node {
					return html.Figure(
						html.Class("card"),
						Animate(i),
						html.BlockQuote(g.Text("“"+t.Quote+"”")),
						html.FigCaption(html.Strong(g.Text(t.Name)), g.Text(", "+t.Location)),
					)
				})),
			),
		),
	)
}

// FAQ renders questions as native disclosure widgets.
func FAQ(faqs []content.FAQ) g.Node {
	return html.Section(
		html.ID("faq"),
		html.Class("section"),
		html.Div(
			html.Class("container"),
			html.H2(Animate(0), g.Text("Frequently asked questions")),
			g.Group(mapIndexed(faqs, func(i int, f content.FAQ) g.Node {
				return html.Details(
					Animate(i),
					html.Summary(g.Text(f.Question)),
					html.P(g.Text(f.Answer)),
				)
			})),
		),
	)
}

// CTA is the closing call to action.
func CTA(cta content.CallToAction) g.Node {
	return html.Section(
		html.Class("container section"),
		html.Div(
			html.Class("cta"),
			Animate(0),
			html.H2(g.Text(cta.Title)),
			html.P(g.Text(cta.Body)),
			html.A(html.Class("btn btn-primary"), html.Href(cta.Button.Href), g.Text(cta.Button.Label)),
		),
	)
}

func mapIndexed[T any](items []T, fn func(int, T) g.Node) []g.Node {
	nodes := make([]g.Node, 0, len(items))
	for i, item := range items {
		nodes = append(nodes, fn(i, item))
	}
	return nodes
}
