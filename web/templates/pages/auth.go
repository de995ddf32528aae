package pages

import (
	"time"

	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"

	"github.com/nfrund/helios/internal/forms"
	"github.com/nfrund/helios/web/templates/components"
)

// Submission is the state shared by the auth forms after a valid POST.
type Submission struct {
	Submitting bool
	Redirect   string
	Delay      time.Duration
}

// LoginView is the data behind the login page.
type LoginView struct {
	Form   forms.LoginForm
	Errors forms.Errors
	Submission
}

// RegisterView is the data behind the register page.
type RegisterView struct {
	Form   forms.RegisterForm
	Errors forms.Errors
	Submission
}

// ForgotPasswordView is the data behind the forgot-password page. Sent shows
// the confirmation instead of the form.
type ForgotPasswordView struct {
	Form   forms.ForgotPasswordForm
	Errors forms.Errors
	Sent   bool
	Submission
}

// Login renders the login form.
func Login(v LoginView) g.Node {
	busy := v.Submitting
	return authCard("Welcome back", "Log in to see your solar dashboard.",
		g.El("form",
			html.Method("post"),
			html.Action("/login"),
			g.Attr("novalidate"),
			components.Input(components.Field{
				Name: forms.FieldEmail, Label: "Email", Type: "email", Value: v.Form.Email,
				Placeholder: "you@example.com", AutoComplete: "email",
				Error: v.Errors.Get(forms.FieldEmail), Disabled: busy,
			}),
			components.Input(components.Field{
				Name: forms.FieldPassword, Label: "Password", Type: "password",
				AutoComplete: "current-password",
				Error:        v.Errors.Get(forms.FieldPassword), Disabled: busy,
			}),
			html.Div(
				html.Class("row"),
				components.Checkbox(forms.FieldRemember, g.Text("Remember me"), v.Form.Remember, "", busy),
				html.P(html.A(html.Href("/forgot-password"), g.Text("Forgot password?"))),
			),
			components.SubmitButton("Log in", "Signing in...", busy),
		),
		html.P(g.Text("New to Helios? "), html.A(html.Href("/register"), g.Text("Create an account"))),
		navigation(v.Submission),
	)
}

// Register renders the sign-up form.
func Register(v RegisterView) g.Node {
	busy := v.Submitting
	return authCard("Create your account", "Start saving with rooftop solar.",
		g.El("form",
			html.Method("post"),
			html.Action("/register"),
			g.Attr("novalidate"),
			html.Div(
				html.Class("row"),
				components.Input(components.Field{
					Name: forms.FieldFirstName, Label: "First name", Value: v.Form.FirstName,
					AutoComplete: "given-name", Error: v.Errors.Get(forms.FieldFirstName), Disabled: busy,
				}),
				components.Input(components.Field{
					Name: forms.FieldLastName, Label: "Last name", Value: v.Form.LastName,
					AutoComplete: "family-name", Error: v.Errors.Get(forms.FieldLastName), Disabled: busy,
				}),
			),
			components.Input(components.Field{
				Name: forms.FieldEmail, Label: "Email", Type: "email", Value: v.Form.Email,
				Placeholder: "you@example.com", AutoComplete: "email",
				Error: v.Errors.Get(forms.FieldEmail), Disabled: busy,
			}),
			components.Input(components.Field{
				Name: forms.FieldPhone, Label: "Phone", Type: "tel", Value: v.Form.Phone,
				Placeholder: "+91 98765 43210", AutoComplete: "tel",
				Error: v.Errors.Get(forms.FieldPhone), Disabled: busy,
			}),
			components.Input(components.Field{
				Name: forms.FieldPassword, Label: "Password", Type: "password",
				AutoComplete: "new-password",
				Error:        v.Errors.Get(forms.FieldPassword), Disabled: busy,
			}),
			components.Input(components.Field{
				Name: forms.FieldConfirmPassword, Label: "Confirm password", Type: "password",
				AutoComplete: "new-password",
				Error:        v.Errors.Get(forms.FieldConfirmPassword), Disabled: busy,
			}),
			components.Checkbox(forms.FieldAgreeTerms,
				g.Group{g.Text("I agree to the "), html.A(html.Href("#"), g.Text("terms and conditions"))},
				v.Form.AgreeTerms, v.Errors.Get(forms.FieldAgreeTerms), busy),
			components.SubmitButton("Create account", "Creating account...", busy),
		),
		html.P(g.Text("Already have an account? "), html.A(html.Href("/login"), g.Text("Log in"))),
		navigation(v.Submission),
	)
}

// ForgotPassword renders the reset request form, the pending state or the
// confirmation.
func ForgotPassword(v ForgotPasswordView) g.Node {
	if v.Sent {
		return authCard("Check your inbox", "",
			html.P(
				g.Text("If an account exists for "),
				html.Strong(g.Text(v.Form.Email)),
				g.Text(", we have sent a link to reset your password."),
			),
			html.A(html.Class("btn btn-primary"), html.Href("/login"), g.Text("Back to login")),
		)
	}

	busy := v.Submitting
	return authCard("Forgot your password?", "Enter your email and we will send you a reset link.",
		g.El("form",
			html.Method("post"),
			html.Action("/forgot-password"),
			g.Attr("novalidate"),
			components.Input(components.Field{
				Name: forms.FieldEmail, Label: "Email", Type: "email", Value: v.Form.Email,
				Placeholder: "you@example.com", AutoComplete: "email",
				Error: v.Errors.Get(forms.FieldEmail), Disabled: busy,
			}),
			components.SubmitButton("Send reset link", "Sending...", busy),
		),
		html.P(html.A(html.Href("/login"), g.Text("Back to login"))),
		navigation(v.Submission),
	)
}

func navigation(s Submission) g.Node {
	if !s.Submitting || s.Redirect == "" {
		return nil
	}
	return components.DelayedNavigation(s.Redirect, s.Delay)
}

func authCard(title, subtitle string, children ...g.Node) g.Node {
	return html.Main(
		html.Class("auth"),
		html.Div(
			html.Class("card"),
			components.Animate(0),
			html.A(html.Class("brand"), html.Href("/"), g.Text("☀ Helios")),
			html.H1(g.Text(title)),
			g.If(subtitle != "", html.P(html.Class("lead"), g.Text(subtitle))),
			g.Group(children),
		),
	)
}
