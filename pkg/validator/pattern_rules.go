package validator

import (
	"fmt"
	"regexp"
)

// CompilePattern compiles a pattern attribute. The expression must match the
// whole value, so it is anchored on both ends.
func CompilePattern(pattern string) (*regexp.Regexp, error) {
	re, err := regexp.Compile("^(?:" + pattern + ")$")
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidPattern, pattern, err)
	}
	return re, nil
}

// MatchesPattern validates a value against a compiled pattern.
// Use CompilePattern to get whole-value matching.
func MatchesPattern(field, value string, re *regexp.Regexp) Rule {
	return Rule{
		Check: func() bool {
			return re.MatchString(value)
		},
		Error: ValidationError{
			Field:   field,
			Message: "Please match the requested format.",
			Code:    "validation.pattern_mismatch",
		},
	}
}
