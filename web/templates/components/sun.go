package components

import (
	"fmt"
	"math"
	"strconv"

	g "maragu.dev/gomponents"
)

// SunOptions control the decorative sun in the hero.
type SunOptions struct {
	Rays   int
	Radius float64
	Pulse  float64 // seconds per pulse
}

// DefaultSun is what the landing page draws.
var DefaultSun = SunOptions{Rays: 12, Radius: 42, Pulse: 4}

const (
	sunCenter  = 100.0
	rayGap     = 10.0
	rayLength  = 22.0
	rayWidth   = 6.0
	sunViewBox = 200
)

// RayAngles returns the rotation of every ray in degrees, evenly spaced.
func RayAngles(n int) []float64 {
	if n <= 0 {
		return nil
	}
	angles := make([]float64, n)
	step := 360.0 / float64(n)
	for i := range angles {
		angles[i] = float64(i) * step
	}
	return angles
}

// Sun draws the sun as inline SVG.
func Sun(opts SunOptions) g.Node {
	if opts.Radius <= 0 {
		opts.Radius = DefaultSun.Radius
	}
	if opts.Pulse <= 0 {
		opts.Pulse = DefaultSun.Pulse
	}

	inner := opts.Radius + rayGap
	outer := inner + rayLength
	rays := make([]g.Node, 0, opts.Rays)
	for _, deg := range RayAngles(opts.Rays) {
		rad := deg * math.Pi / 180
		rays = append(rays, g.El("line",
			g.Attr("x1", coord(sunCenter+inner*math.Cos(rad))),
			g.Attr("y1", coord(sunCenter+inner*math.Sin(rad))),
			g.Attr("x2", coord(sunCenter+outer*math.Cos(rad))),
			g.Attr("y2", coord(sunCenter+outer*math.Sin(rad))),
			g.Attr("stroke-width", num(rayWidth)),
		))
	}

	return g.El("svg",
		g.Attr("class", "sun"),
		g.Attr("viewBox", fmt.Sprintf("0 0 %d %d", sunViewBox, sunViewBox)),
		g.Attr("role", "img"),
		g.Attr("aria-label", "Sun"),
		g.Attr("style", fmt.Sprintf("--pulse: %ss", num(opts.Pulse))),
		g.El("g",
			g.Attr("class", "rays"),
			g.Attr("stroke", "#f59e0b"),
			g.Attr("stroke-linecap", "round"),
			g.Group(rays),
		),
		g.El("circle",
			g.Attr("class", "core"),
			g.Attr("cx", num(sunCenter)),
			g.Attr("cy", num(sunCenter)),
			g.Attr("r", num(opts.Radius)),
			g.Attr("fill", "#fbbf24"),
		),
	)
}

func coord(v float64) string { return strconv.FormatFloat(v, 'f', 2, 64) }

func num(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
