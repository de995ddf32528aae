// Package forms holds the login, register and forgot-password forms and
// turns their validation failures into per-field messages.
package forms

import "strings"

// Form field names, shared by the struct tags, the error map and the views.
const (
	FieldEmail           = "email"
	FieldPassword        = "password"
	FieldConfirmPassword = "confirm_password"
	FieldFirstName       = "first_name"
	FieldLastName        = "last_name"
	FieldPhone           = "phone"
	FieldAgreeTerms      = "agree_terms"
	FieldRemember        = "remember"
)

// TermsNotAccepted is the notification shown when the terms box is unchecked.
const TermsNotAccepted = "Please agree to the terms and conditions"

// Errors maps a field name to the message shown under it.
type Errors map[string]string

// Empty reports whether the form may be submitted.
func (e Errors) Empty() bool { return len(e) == 0 }

// Get returns the message for a field, or "".
func (e Errors) Get(field string) string { return e[field] }

// Has reports whether the field failed validation.
func (e Errors) Has(field string) bool {
	_, ok := e[field]
	return ok
}

// LoginForm is posted by the login page.
type LoginForm struct {
	Email    string `form:"email" validate:"required,simpleemail"`
	Password string `form:"password" validate:"required,min=6"`
	Remember bool   `form:"remember"`
}

// Normalize trims whitespace from free-text inputs.
func (f *LoginForm) Normalize() {
	f.Email = strings.TrimSpace(f.Email)
}

// RegisterForm is posted by the register page.
type RegisterForm struct {
	FirstName       string `form:"first_name" validate:"required"`
	LastName        string `form:"last_name" validate:"required"`
	Email           string `form:"email" validate:"required,simpleemail"`
	Phone           string `form:"phone" validate:"required,phone"`
	Password        string `form:"password" validate:"required,min=6"`
	ConfirmPassword string `form:"confirm_password" validate:"eqfield=Password"`
	AgreeTerms      bool   `form:"agree_terms"`
}

// Normalize trims whitespace from free-text inputs.
func (f *RegisterForm) Normalize() {
	f.FirstName = strings.TrimSpace(f.FirstName)
	f.LastName = strings.TrimSpace(f.LastName)
	f.Email = strings.TrimSpace(f.Email)
	f.Phone = strings.TrimSpace(f.Phone)
}

// ForgotPasswordForm is posted by the forgot-password page.
type ForgotPasswordForm struct {
	Email string `form:"email" validate:"required,simpleemail"`
}

// Normalize trims whitespace from free-text inputs.
func (f *ForgotPasswordForm) Normalize() {
	f.Email = strings.TrimSpace(f.Email)
}

// ValidateLogin returns the field errors of a login submission.
func (cv *CustomValidator) ValidateLogin(f *LoginForm) Errors {
	f.Normalize()
	return cv.Check(f)
}

// ValidateForgotPassword returns the field errors of a reset request.
func (cv *CustomValidator) ValidateForgotPassword(f *ForgotPasswordForm) Errors {
	f.Normalize()
	return cv.Check(f)
}

// ValidateRegister returns the field errors of a registration. An unchecked
// terms box short-circuits: termsOK is false and no field errors are set,
// the caller notifies the user with TermsNotAccepted instead.
func (cv *CustomValidator) ValidateRegister(f *RegisterForm) (errs Errors, termsOK bool) {
	if !f.AgreeTerms {
		return Errors{}, false
	}
	f.Normalize()
	return cv.Check(f), true
}
