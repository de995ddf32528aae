package components

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"

	"github.com/nfrund/helios/internal/savings"
	"github.com/nfrund/helios/internal/toast"
)

func render(t *testing.T, n g.Node) string {
	t.Helper()
	var b strings.Builder
	require.NoError(t, n.Render(&b))
	return b.String()
}

func TestRayAngles(t *testing.T) {
	assert.Equal(t, []float64{0, 90, 180, 270}, RayAngles(4))
	assert.Len(t, RayAngles(12), 12)
	assert.InDelta(t, 30.0, RayAngles(12)[1], 1e-9)
	assert.Nil(t, RayAngles(0))
}

func TestSun_DrawsOneLinePerRay(t *testing.T) {
	svg := render(t, Sun(SunOptions{Rays: 8, Radius: 40, Pulse: 3}))

	assert.True(t, strings.HasPrefix(svg, `<svg class="sun"`), svg)
	assert.Equal(t, 8, strings.Count(svg, "<line "))
	assert.Contains(t, svg, `style="--pulse: 3s"`)
	assert.Contains(t, svg, `r="40"`)
	// The first ray points along the x axis.
	assert.Contains(t, svg, `<line x1="150.00" y1="100.00" x2="172.00" y2="100.00" stroke-width="6">`)
}

func TestSun_FallsBackToDefaults(t *testing.T) {
	svg := render(t, Sun(SunOptions{}))

	assert.NotContains(t, svg, "<line ")
	assert.Contains(t, svg, `r="42"`)
	assert.Contains(t, svg, `--pulse: 4s`)
}

func TestAnimate_StaggersDelay(t *testing.T) {
	assert.Equal(t, 0, AnimationDelay(0))
	assert.Equal(t, 3*AnimationStep, AnimationDelay(3))
	assert.Equal(t, 0, AnimationDelay(-2))

	html := render(t, g.El("div", Animate(2)))
	assert.Contains(t, html, "data-animate")
	assert.Contains(t, html, "transition-delay: 240ms")
}

func TestToastItem(t *testing.T) {
	html := render(t, ToastItem(toast.Toast{ID: "42", Message: "Saved <b>", Kind: toast.KindSuccess}))

	assert.Contains(t, html, `id="toast-42"`)
	assert.Contains(t, html, `class="toast toast-success"`)
	assert.Contains(t, html, `hx-delete="/toasts/42"`)
	assert.Contains(t, html, "Saved &lt;b&gt;", "message is escaped")
	assert.Contains(t, html, "✓")
}

func TestToastEventFragment(t *testing.T) {
	added := render(t, ToastEventFragment(toast.Event{Action: toast.ActionAdded, Toast: toast.Toast{ID: "1", Message: "hi", Kind: toast.KindInfo}}))
	assert.Contains(t, added, `hx-swap-oob="beforeend:#toasts"`)
	assert.Contains(t, added, `id="toast-1"`)

	removed := render(t, ToastEventFragment(toast.Event{Action: toast.ActionRemoved, Toast: toast.Toast{ID: "1"}}))
	assert.Contains(t, removed, `id="toast-1"`)
	assert.Contains(t, removed, `hx-swap-oob="delete"`)
	assert.NotContains(t, removed, "hi")
}

func TestToastIcon(t *testing.T) {
	assert.Equal(t, "✕", ToastIcon(toast.KindError))
	assert.Equal(t, "ℹ", ToastIcon(toast.KindInfo))
	assert.Equal(t, "ℹ", ToastIcon(toast.Kind("other")))
}

func TestInput_ShowsError(t *testing.T) {
	html := render(t, Input(Field{Name: "email", Label: "Email", Type: "email", Value: "a@b", Error: "Please enter a valid email address"}))

	assert.Contains(t, html, `class="field has-error"`)
	assert.Contains(t, html, `value="a@b"`)
	assert.Contains(t, html, `aria-invalid="true"`)
	assert.Contains(t, html, "Please enter a valid email address")
}

func TestCheckbox_UsesBindableValue(t *testing.T) {
	html := render(t, Checkbox("agree_terms", g.Text("I agree"), true, "", false))

	assert.Contains(t, html, `value="true"`)
	assert.Contains(t, html, "checked")
}

func TestDelayedNavigation(t *testing.T) {
	html := render(t, DelayedNavigation("/dashboard", 2*time.Second))
	assert.Contains(t, html, `hx-get="/dashboard"`)
	assert.Contains(t, html, `hx-trigger="load delay:2000ms"`)

	fallback := render(t, RefreshFallback("/dashboard", 2*time.Second))
	assert.Contains(t, fallback, `content="2;url=/dashboard"`)
}

func TestCalculatorResults(t *testing.T) {
	html := render(t, CalculatorResults(savings.Calculate(8000), savings.NewFormatter("en")))

	assert.Contains(t, html, `id="calculator-results"`)
	assert.Contains(t, html, "9 kW")
	assert.Contains(t, html, "₹7,200")
	assert.Contains(t, html, "₹86,400")
	assert.Contains(t, html, "₹78,000")
	assert.Contains(t, html, "800 kg / month")
}
