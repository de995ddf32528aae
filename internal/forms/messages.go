package forms

import "fmt"

// labels are the human readable names of the form inputs.
var labels = map[string]string{
	FieldEmail:           "Email",
	FieldPassword:        "Password",
	FieldConfirmPassword: "Confirm password",
	FieldFirstName:       "First name",
	FieldLastName:        "Last name",
	FieldPhone:           "Phone number",
}

func label(field string) string {
	if l, ok := labels[field]; ok {
		return l
	}
	return field
}

// message renders the text shown under an input for a failed rule.
func message(field, tag, param string) string {
	switch tag {
	case "required":
		return fmt.Sprintf("%s is required", label(field))
	case "simpleemail":
		return "Please enter a valid email address"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", label(field), param)
	case "eqfield":
		if field == FieldConfirmPassword {
			return "Passwords do not match"
		}
		return fmt.Sprintf("%s does not match", label(field))
	case "phone":
		return "Please enter a valid phone number"
	default:
		return fmt.Sprintf("%s is invalid", label(field))
	}
}
