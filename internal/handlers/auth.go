package handlers

import (
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/labstack/echo/v4"
	g "maragu.dev/gomponents"

	"github.com/nfrund/helios/internal/content"
	"github.com/nfrund/helios/internal/email"
	"github.com/nfrund/helios/internal/forms"
	"github.com/nfrund/helios/internal/middleware"
	"github.com/nfrund/helios/internal/toast"
	"github.com/nfrund/helios/web/templates/components"
	"github.com/nfrund/helios/web/templates/layouts"
	"github.com/nfrund/helios/web/templates/pages"
)

// Toast messages shown by the auth screens.
const (
	MsgFixErrors     = "Please fix the errors in the form"
	MsgLoginSuccess  = "Login successful! Redirecting to your dashboard..."
	MsgResetLinkSent = "Reset link sent! Check your email."

	msgWelcomeFormat = "Welcome to Helios, %s! Please log in."
)

const (
	loginRedirect     = "/dashboard"
	registerRedirect  = "/login"
	forgotSentPathFmt = "/forgot-password?sent=1&email=%s"
)

// AuthHandler serves the login, register and forgot-password screens. The
// flows are simulated: a valid submission shows a pending state and moves on
// after a delay without contacting any backend.
type AuthHandler struct {
	pages       *Pages
	validator   *forms.CustomValidator
	mailer      email.Sender
	baseURL     string
	submitDelay time.Duration
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(p *Pages, validator *forms.CustomValidator, mailer email.Sender, baseURL string, submitDelay time.Duration) *AuthHandler {
	return &AuthHandler{pages: p, validator: validator, mailer: mailer, baseURL: baseURL, submitDelay: submitDelay}
}

// LoginGet renders the empty login form.
func (h *AuthHandler) LoginGet(c echo.Context) error {
	return h.render(c, http.StatusOK, "Login", pages.Login(pages.LoginView{}), "")
}

// LoginPost validates the login form.
func (h *AuthHandler) LoginPost(c echo.Context) error {
	var f forms.LoginForm
	if err := c.Bind(&f); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid form submission").SetInternal(err)
	}
	f.Normalize()

	errs := h.validator.ValidateLogin(&f)
	f.Password = ""

	if !errs.Empty() {
		h.pages.Notify(c, MsgFixErrors, toast.KindError)
		return h.render(c, http.StatusUnprocessableEntity, "Login", pages.Login(pages.LoginView{Form: f, Errors: errs}), "")
	}

	middleware.FromContext(c.Request().Context()).Info("Simulated login", "remember", f.Remember)
	h.pages.Notify(c, MsgLoginSuccess, toast.KindSuccess)
	v := pages.LoginView{Form: f, Submission: h.submission(loginRedirect)}
	return h.render(c, http.StatusOK, "Login", pages.Login(v), loginRedirect)
}

// RegisterGet renders the empty register form.
func (h *AuthHandler) RegisterGet(c echo.Context) error {
	return h.render(c, http.StatusOK, "Register", pages.Register(pages.RegisterView{}), "")
}

// RegisterPost validates the register form. Unaccepted terms block the
// submission before any field is checked.
func (h *AuthHandler) RegisterPost(c echo.Context) error {
	var f forms.RegisterForm
	if err := c.Bind(&f); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid form submission").SetInternal(err)
	}
	f.Normalize()

	errs, termsOK := h.validator.ValidateRegister(&f)
	f.Password, f.ConfirmPassword = "", ""

	if !termsOK {
		h.pages.Notify(c, forms.TermsNotAccepted, toast.KindError)
		return h.render(c, http.StatusUnprocessableEntity, "Register", pages.Register(pages.RegisterView{Form: f}), "")
	}
	if !errs.Empty() {
		h.pages.Notify(c, MsgFixErrors, toast.KindError)
		return h.render(c, http.StatusUnprocessableEntity, "Register", pages.Register(pages.RegisterView{Form: f, Errors: errs}), "")
	}

	name := content.SanitizeText(f.FirstName)
	if name == "" {
		name = "there"
	}
	h.pages.Notify(c, fmt.Sprintf(msgWelcomeFormat, name), toast.KindSuccess)
	v := pages.RegisterView{Form: f, Submission: h.submission(registerRedirect)}
	return h.render(c, http.StatusOK, "Register", pages.Register(v), registerRedirect)
}

// ForgotPasswordGet renders the form, or the confirmation when ?sent=1.
func (h *AuthHandler) ForgotPasswordGet(c echo.Context) error {
	v := pages.ForgotPasswordView{}
	if c.QueryParam("sent") == "1" {
		v.Sent = true
		v.Form.Email = c.QueryParam("email")
	}
	return h.render(c, http.StatusOK, "Forgot password", pages.ForgotPassword(v), "")
}

// ForgotPasswordPost validates the email and hands the reset email to the mailer.
func (h *AuthHandler) ForgotPasswordPost(c echo.Context) error {
	var f forms.ForgotPasswordForm
	if err := c.Bind(&f); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid form submission").SetInternal(err)
	}
	f.Normalize()

	if errs := h.validator.ValidateForgotPassword(&f); !errs.Empty() {
		h.pages.Notify(c, MsgFixErrors, toast.KindError)
		return h.render(c, http.StatusUnprocessableEntity, "Forgot password", pages.ForgotPassword(pages.ForgotPasswordView{Form: f, Errors: errs}), "")
	}

	if err := email.SendReset(h.mailer, h.baseURL, f.Email); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Could not send the reset link").SetInternal(err)
	}

	h.pages.Notify(c, MsgResetLinkSent, toast.KindSuccess)
	target := fmt.Sprintf(forgotSentPathFmt, url.QueryEscape(f.Email))
	v := pages.ForgotPasswordView{Form: f, Submission: h.submission(target)}
	return h.render(c, http.StatusOK, "Forgot password", pages.ForgotPassword(v), target)
}

func (h *AuthHandler) submission(target string) pages.Submission {
	return pages.Submission{Submitting: true, Redirect: target, Delay: h.submitDelay}
}

// render wraps body in the base layout. A non-empty redirect adds the
// no-script refresh fallback for the delayed navigation.
func (h *AuthHandler) render(c echo.Context, status int, title string, body g.Node, redirect string) error {
	var page layouts.Page
	if redirect != "" {
		page = h.pages.Page(c, title, components.RefreshFallback(redirect, h.submitDelay))
	} else {
		page = h.pages.Page(c, title)
	}
	return c.Render(status, "", layouts.Base(page, body))
}
