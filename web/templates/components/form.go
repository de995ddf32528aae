package components

import (
	"fmt"
	"time"

	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	"maragu.dev/gomponents/html"
)

// Field describes a labelled text input.
type Field struct {
	Name         string
	Label        string
	Type         string
	Value        string
	Placeholder  string
	AutoComplete string
	Error        string
	Disabled     bool
}

// Input renders a field with its inline error.
func Input(f Field) g.Node {
	inputType := f.Type
	if inputType == "" {
		inputType = "text"
	}
	class := "field"
	if f.Error != "" {
		class += " has-error"
	}

	return html.Div(
		html.Class(class),
		g.El("label", html.For(f.Name), g.Text(f.Label)),
		html.Input(
			html.ID(f.Name),
			html.Name(f.Name),
			html.Type(inputType),
			g.If(f.Value != "", html.Value(f.Value)),
			g.If(f.Placeholder != "", html.Placeholder(f.Placeholder)),
			g.If(f.AutoComplete != "", html.AutoComplete(f.AutoComplete)),
			g.If(f.Error != "", html.Aria("invalid", "true")),
			g.If(f.Error != "", html.Aria("describedby", f.Name+"-error")),
			g.If(f.Disabled, html.Disabled()),
		),
		fieldError(f.Name, f.Error),
	)
}

// Checkbox renders a boolean field. The value is "true" so Echo's binder can
// parse it into a bool.
func Checkbox(name string, label g.Node, checked bool, errMsg string, disabled bool) g.Node {
	return html.Div(
		html.Class("field"),
		g.El("label",
			html.Class("check"),
			html.Input(
				html.Type("checkbox"),
				html.Name(name),
				html.Value("true"),
				g.If(checked, html.Checked()),
				g.If(disabled, html.Disabled()),
			),
			label,
		),
		fieldError(name, errMsg),
	)
}

func fieldError(name, msg string) g.Node {
	if msg == "" {
		return nil
	}
	return html.P(html.ID(name+"-error"), html.Class("error"), g.Text(msg))
}

// SubmitButton shows a spinner and is disabled while the form is submitting.
func SubmitButton(label, busyLabel string, busy bool) g.Node {
	if busy {
		return html.Button(
			html.Type("submit"),
			html.Class("btn btn-primary"),
			html.Disabled(),
			html.Span(html.Class("spinner"), html.Aria("hidden", "true")),
			g.Text(" "+busyLabel),
		)
	}
	return html.Button(html.Type("submit"), html.Class("btn btn-primary"), g.Text(label))
}

// DelayedNavigation loads target into the page once delay has passed.
func DelayedNavigation(target string, delay time.Duration) g.Node {
	return html.Div(
		html.Class("navigate"),
		hx.Get(target),
		hx.Trigger(fmt.Sprintf("load delay:%dms", delay.Milliseconds())),
		hx.Target("body"),
		hx.Swap("outerHTML"),
		hx.PushURL("true"),
	)
}

// RefreshFallback is the head element that performs the same navigation when
// scripts are disabled.
func RefreshFallback(target string, delay time.Duration) g.Node {
	seconds := int(delay.Round(time.Second) / time.Second)
	return g.El("noscript",
		html.Meta(
			g.Attr("http-equiv", "refresh"),
			html.Content(fmt.Sprintf("%d;url=%s", seconds, target)),
		),
	)
}
