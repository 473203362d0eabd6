package form

import (
	"github.com/dmitrymomot/formkit/pkg/validator"
)

// ValidityState is the constraint-validity state of an input.
type ValidityState struct {
	BadInput        bool
	ValueMissing    bool
	TypeMismatch    bool
	PatternMismatch bool
	TooLong         bool
	TooShort        bool
	RangeUnderflow  bool
	RangeOverflow   bool
	CustomError     bool
}

// Valid reports whether no flag is set.
func (s ValidityState) Valid() bool {
	return s == ValidityState{}
}

// check pairs a rule with the flag its failure code sets.
type check struct {
	flag *bool
	rule validator.Rule
}

// Validity returns the current validity state.
func (in *Input) Validity() ValidityState {
	defer in.lock()()
	state, _ := in.evaluateLocked()
	return state
}

// CheckValidity reports whether the input satisfies all its constraints.
func (in *Input) CheckValidity() bool {
	return in.Validity().Valid()
}

// WillValidate reports whether the input takes part in constraint validation.
func (in *Input) WillValidate() bool {
	defer in.lock()()
	return !in.barredLocked()
}

// ValidationMessage returns the message for the first failing constraint, or
// the custom validity message when one is set. Valid inputs return "".
func (in *Input) ValidationMessage() string {
	defer in.lock()()
	_, msg := in.evaluateLocked()
	return msg
}

// barredLocked reports whether the input is excluded from validation.
func (in *Input) barredLocked() bool {
	return in.disabled || in.typ == TypeHidden
}

// evaluateLocked runs every applicable rule and returns the resulting state
// with the message of the first failure. Flags are checked in the order
// browsers report them.
func (in *Input) evaluateLocked() (ValidityState, string) {
	var state ValidityState
	if in.barredLocked() {
		return state, ""
	}

	checks := in.checksLocked(&state)
	flags := make(map[string]*bool, len(checks))
	rules := make([]validator.Rule, 0, len(checks))
	for _, c := range checks {
		flags[c.rule.Error.Code] = c.flag
		rules = append(rules, c.rule)
	}

	message := ""
	failures := validator.ExtractValidationErrors(validator.Apply(rules...))
	for _, verr := range failures {
		*flags[verr.Code] = true
	}
	if len(failures) > 0 {
		message = failures[0].Message
	}

	if in.customValidity != "" {
		state.CustomError = true
		message = in.customValidity
	}
	return state, message
}

func (in *Input) checksLocked(state *ValidityState) []check {
	name := in.name
	var checks []check

	switch in.typ {
	case TypeCheckbox:
		if in.has(KindRequired) {
			checks = append(checks, check{&state.ValueMissing, validator.RequiredChecked(name, in.checked)})
		}
		return checks
	case TypeRadio:
		if in.has(KindRequired) {
			checks = append(checks, check{&state.ValueMissing, validator.RequiredChoice(name, in.groupCheckedLocked())})
		}
		return checks
	}

	value := in.value
	if in.typ == TypeNumber && value != "" {
		checks = append(checks, check{&state.BadInput, validator.ValidNumber(name, value)})
	}
	if in.has(KindRequired) {
		checks = append(checks, check{&state.ValueMissing, validator.Required(name, value)})
	}
	if value == "" {
		return checks
	}

	switch in.typ {
	case TypeEmail:
		checks = append(checks, check{&state.TypeMismatch, validator.ValidEmail(name, value)})
	case TypeURL:
		checks = append(checks, check{&state.TypeMismatch, validator.ValidURL(name, value)})
	}

	if in.typ == TypeNumber {
		for _, c := range in.constraints {
			switch c.Kind {
			case KindMin:
				checks = append(checks, check{&state.RangeUnderflow, validator.MinNum(name, value, c.Bound)})
			case KindMax:
				checks = append(checks, check{&state.RangeOverflow, validator.MaxNum(name, value, c.Bound)})
			}
		}
		return checks
	}

	for _, c := range in.constraints {
		if c.Kind == KindPattern && c.Valid() {
			checks = append(checks, check{&state.PatternMismatch, validator.MatchesPattern(name, value, c.re)})
		}
	}
	for _, c := range in.constraints {
		if c.Kind == KindMaxLength && c.Valid() {
			checks = append(checks, check{&state.TooLong, validator.MaxLen(name, value, c.Length)})
		}
	}
	for _, c := range in.constraints {
		if c.Kind == KindMinLength && c.Valid() {
			checks = append(checks, check{&state.TooShort, validator.MinLen(name, value, c.Length)})
		}
	}
	return checks
}

// groupCheckedLocked reports whether any radio of the input's group is checked.
func (in *Input) groupCheckedLocked() bool {
	if in.checked {
		return true
	}
	if in.form == nil || in.name == "" {
		return false
	}
	for _, other := range in.form.inputs {
		if other.typ == TypeRadio && other.name == in.name && other.checked {
			return true
		}
	}
	return false
}
