package form

import (
	"slices"
	"strings"
)

// InputType is the type attribute of an input element.
type InputType string

const (
	TypeText     InputType = "text"
	TypeEmail    InputType = "email"
	TypeURL      InputType = "url"
	TypeTel      InputType = "tel"
	TypeNumber   InputType = "number"
	TypePassword InputType = "password"
	TypeSearch   InputType = "search"
	TypeHidden   InputType = "hidden"
	TypeCheckbox InputType = "checkbox"
	TypeRadio    InputType = "radio"
)

var knownTypes = []InputType{
	TypeText, TypeEmail, TypeURL, TypeTel, TypeNumber,
	TypePassword, TypeSearch, TypeHidden, TypeCheckbox, TypeRadio,
}

// Known reports whether t is one of the supported input types.
func (t InputType) Known() bool {
	return slices.Contains(knownTypes, t)
}

// checkable reports whether the input carries state in Checked instead of Value.
func (t InputType) checkable() bool {
	return t == TypeCheckbox || t == TypeRadio
}

// Input is a single input element of a Form.
//
// Once appended to a form, an input shares the form's lock: its accessors are
// safe to call from any goroutine.
type Input struct {
	form *Form

	name        string
	typ         InputType
	value       string
	checked     bool
	disabled    bool
	label       string
	placeholder string
	constraints []Constraint

	customValidity string
}

// InputOption configures an Input created by NewInput.
// Constraints are options too.
type InputOption interface {
	applyInput(*Input)
}

type inputOptionFunc func(*Input)

func (f inputOptionFunc) applyInput(in *Input) { f(in) }

// WithValue sets the value declared in markup.
func WithValue(value string) InputOption {
	return inputOptionFunc(func(in *Input) { in.value = sanitizeValue(in.typ, value) })
}

// WithChecked marks a checkbox or radio button as checked.
func WithChecked() InputOption {
	return inputOptionFunc(func(in *Input) { in.checked = true })
}

// WithDisabled disables the input. Disabled inputs are neither validated nor submitted.
func WithDisabled() InputOption {
	return inputOptionFunc(func(in *Input) { in.disabled = true })
}

func WithLabel(label string) InputOption {
	return inputOptionFunc(func(in *Input) { in.label = label })
}

func WithPlaceholder(placeholder string) InputOption {
	return inputOptionFunc(func(in *Input) { in.placeholder = placeholder })
}

// NewInput creates a detached input. An empty type means TypeText.
func NewInput(name string, typ InputType, opts ...InputOption) *Input {
	if typ == "" {
		typ = TypeText
	}
	in := &Input{name: name, typ: typ}
	for _, opt := range opts {
		if opt != nil {
			opt.applyInput(in)
		}
	}
	in.value = sanitizeValue(in.typ, in.value)
	return in
}

func (in *Input) lock() func() {
	if in.form == nil {
		return func() {}
	}
	in.form.mu.Lock()
	return in.form.mu.Unlock
}

func (in *Input) Name() string {
	defer in.lock()()
	return in.name
}

func (in *Input) Type() InputType {
	defer in.lock()()
	return in.typ
}

// Value returns the current value.
func (in *Input) Value() string {
	defer in.lock()()
	return in.value
}

// SetValue replaces the current value, the way user typing does.
// Line breaks are stripped, and email and URL values are trimmed.
func (in *Input) SetValue(value string) {
	defer in.lock()()
	in.value = sanitizeValue(in.typ, value)
}

func (in *Input) Checked() bool {
	defer in.lock()()
	return in.checked
}

// SetChecked changes the checkedness of a checkbox or radio button.
// Checking a radio button unchecks the other radios of its group.
func (in *Input) SetChecked(checked bool) {
	defer in.lock()()
	in.setCheckedLocked(checked)
}

func (in *Input) setCheckedLocked(checked bool) {
	in.checked = checked
	if !checked || in.typ != TypeRadio || in.form == nil || in.name == "" {
		return
	}
	for _, other := range in.form.inputs {
		if other != in && other.typ == TypeRadio && other.name == in.name {
			other.checked = false
		}
	}
}

func (in *Input) Disabled() bool {
	defer in.lock()()
	return in.disabled
}

func (in *Input) SetDisabled(disabled bool) {
	defer in.lock()()
	in.disabled = disabled
}

func (in *Input) Label() string {
	defer in.lock()()
	return in.label
}

func (in *Input) Placeholder() string {
	defer in.lock()()
	return in.placeholder
}

// Constraints returns a copy of the declared constraints.
func (in *Input) Constraints() []Constraint {
	defer in.lock()()
	return slices.Clone(in.constraints)
}

// CustomValidity returns the custom validity message, empty when none is set.
func (in *Input) CustomValidity() string {
	defer in.lock()()
	return in.customValidity
}

// SetCustomValidity sets a custom validity message. A non-empty message makes
// the input invalid until it is cleared with an empty string.
func (in *Input) SetCustomValidity(message string) {
	defer in.lock()()
	in.customValidity = message
}

// sanitizeValue applies the value sanitization of the input type.
func sanitizeValue(typ InputType, value string) string {
	switch typ {
	case TypeText, TypeSearch, TypeTel, TypePassword:
		return stripLineBreaks(value)
	case TypeEmail, TypeURL:
		return strings.TrimSpace(stripLineBreaks(value))
	default:
		return value
	}
}

func stripLineBreaks(value string) string {
	if !strings.ContainsAny(value, "\r\n") {
		return value
	}
	return strings.NewReplacer("\r", "", "\n", "").Replace(value)
}
