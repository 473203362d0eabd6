package validator

import (
	"fmt"
	"unicode/utf8"
)

// Required validates that a value is not empty.
// Whitespace counts as content, the same way a browser treats a text input.
func Required(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return value != ""
		},
		Error: ValidationError{
			Field:   field,
			Message: "Please fill out this field.",
			Code:    "validation.value_missing",
		},
	}
}

// RequiredChecked validates that a checkbox is checked.
func RequiredChecked(field string, checked bool) Rule {
	return Rule{
		Check: func() bool {
			return checked
		},
		Error: ValidationError{
			Field:   field,
			Message: "Please check this box if you want to proceed.",
			Code:    "validation.value_missing_checkbox",
		},
	}
}

// RequiredChoice validates that one option of a radio group is selected.
func RequiredChoice(field string, selected bool) Rule {
	return Rule{
		Check: func() bool {
			return selected
		},
		Error: ValidationError{
			Field:   field,
			Message: "Please select one of these options.",
			Code:    "validation.value_missing_radio",
		},
	}
}

// MinLen validates the length of a value in characters, not bytes.
func MinLen(field, value string, min int) Rule {
	length := utf8.RuneCountInString(value)
	return Rule{
		Check: func() bool {
			return length >= min
		},
		Error: ValidationError{
			Field: field,
			Message: fmt.Sprintf(
				"Please lengthen this text to %d characters or more (you are currently using %d characters).",
				min, length),
			Code: "validation.too_short",
		},
	}
}

// MaxLen validates the length of a value in characters, not bytes.
func MaxLen(field, value string, max int) Rule {
	length := utf8.RuneCountInString(value)
	return Rule{
		Check: func() bool {
			return length <= max
		},
		Error: ValidationError{
			Field: field,
			Message: fmt.Sprintf(
				"Please shorten this text to %d characters or less (you are currently using %d characters).",
				max, length),
			Code: "validation.too_long",
		},
	}
}
