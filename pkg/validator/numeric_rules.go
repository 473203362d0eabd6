package validator

import (
	"fmt"
	"math"
	"strconv"
)

// ValidNumber validates that a value parses as a finite floating-point number.
func ValidNumber(field, value string) Rule {
	return Rule{
		Check: func() bool {
			_, ok := ParseNumber(value)
			return ok
		},
		Error: ValidationError{
			Field:   field,
			Message: "Please enter a number.",
			Code:    "validation.bad_input",
		},
	}
}

// MinNum validates that a numeric value is greater than or equal to the minimum.
// Unparseable values pass; pair it with ValidNumber.
func MinNum(field, value string, min float64) Rule {
	return Rule{
		Check: func() bool {
			n, ok := ParseNumber(value)
			return !ok || n >= min
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("Value must be greater than or equal to %s.", FormatNumber(min)),
			Code:    "validation.range_underflow",
		},
	}
}

// MaxNum validates that a numeric value is less than or equal to the maximum.
// Unparseable values pass; pair it with ValidNumber.
func MaxNum(field, value string, max float64) Rule {
	return Rule{
		Check: func() bool {
			n, ok := ParseNumber(value)
			return !ok || n <= max
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("Value must be less than or equal to %s.", FormatNumber(max)),
			Code:    "validation.range_overflow",
		},
	}
}

// ParseNumber parses a number input value. Infinities and NaN are rejected.
func ParseNumber(value string) (float64, bool) {
	n, err := strconv.ParseFloat(value, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}
	return n, true
}

// FormatNumber renders a bound without trailing zeros.
func FormatNumber(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}
