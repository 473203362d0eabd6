package validator

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// emailRegex is the "valid e-mail address" production used by HTML email inputs.
var emailRegex = regexp.MustCompile(
	"^[a-zA-Z0-9.!#$%&'*+/=?^_`{|}~-]+@[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(?:\\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)*$",
)

// ValidEmail validates that a value is a single e-mail address.
func ValidEmail(field, value string) Rule {
	message := "Please enter an email address."
	key := "validation.type_mismatch_email"
	if !strings.Contains(value, "@") {
		message = fmt.Sprintf("Please include an '@' in the email address. '%s' is missing an '@'.", value)
		key = "validation.type_mismatch_email_at"
	}

	return Rule{
		Check: func() bool {
			return emailRegex.MatchString(value)
		},
		Error: ValidationError{
			Field:   field,
			Message: message,
			Code:    key,
		},
	}
}

// ValidURL validates that a value is an absolute URL.
func ValidURL(field, value string) Rule {
	return Rule{
		Check: func() bool {
			u, err := url.Parse(value)
			if err != nil {
				return false
			}
			return u.Scheme != "" && (u.Host != "" || u.Opaque != "")
		},
		Error: ValidationError{
			Field:   field,
			Message: "Please enter a URL.",
			Code:    "validation.type_mismatch_url",
		},
	}
}
