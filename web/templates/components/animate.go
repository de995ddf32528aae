package components

import (
	"fmt"

	g "maragu.dev/gomponents"
)

// AnimationStep is the delay between consecutive revealed items.
const AnimationStep = 120

// Animate marks an element for scroll reveal. Items later in a list wait
// longer so a row fades in left to right.
func Animate(index int) g.Node {
	return g.Group{
		g.Attr("data-animate"),
		g.Attr("style", fmt.Sprintf("transition-delay: %dms", AnimationDelay(index))),
	}
}

// AnimationDelay is the reveal delay in milliseconds for the item at index.
func AnimationDelay(index int) int {
	if index < 0 {
		index = 0
	}
	return index * AnimationStep
}
