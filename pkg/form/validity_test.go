package form_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/formkit/pkg/form"
)

func TestInputValidity(t *testing.T) {
	tests := []struct {
		name    string
		input   *form.Input
		want    form.ValidityState
		message string
	}{
		{
			name:  "unconstrained empty text",
			input: form.NewInput("a", form.TypeText),
		},
		{
			name:    "required empty text",
			input:   form.NewInput("a", form.TypeText, form.Required()),
			want:    form.ValidityState{ValueMissing: true},
			message: "Please fill out this field.",
		},
		{
			name:  "empty optional email skips the type check",
			input: form.NewInput("a", form.TypeEmail),
		},
		{
			name:    "email type mismatch",
			input:   form.NewInput("a", form.TypeEmail, form.WithValue("ann@")),
			want:    form.ValidityState{TypeMismatch: true},
			message: "Please enter an email address.",
		},
		{
			name:    "url type mismatch",
			input:   form.NewInput("a", form.TypeURL, form.WithValue("example.com")),
			want:    form.ValidityState{TypeMismatch: true},
			message: "Please enter a URL.",
		},
		{
			name:    "pattern mismatch",
			input:   form.NewInput("a", form.TypeText, form.Pattern("[0-9]{4}"), form.WithValue("12345")),
			want:    form.ValidityState{PatternMismatch: true},
			message: "Please match the requested format.",
		},
		{
			name:  "invalid pattern is ignored",
			input: form.NewInput("a", form.TypeText, form.Pattern("[0-"), form.WithValue("x")),
		},
		{
			name:    "too long",
			input:   form.NewInput("a", form.TypeText, form.MaxLength(3), form.WithValue("abcd")),
			want:    form.ValidityState{TooLong: true},
			message: "Please shorten this text to 3 characters or less (you are currently using 4 characters).",
		},
		{
			name:  "negative length is ignored",
			input: form.NewInput("a", form.TypeText, form.MinLength(-1), form.WithValue("x")),
		},
		{
			name:  "empty optional value skips minlength",
			input: form.NewInput("a", form.TypeText, form.MinLength(8)),
		},
		{
			name: "several failures report the first one",
			input: form.NewInput("a", form.TypeText,
				form.Pattern("[a-z]+"), form.MinLength(5), form.WithValue("AB")),
			want:    form.ValidityState{PatternMismatch: true, TooShort: true},
			message: "Please match the requested format.",
		},
		{
			name: "type and length failures set separate flags",
			input: form.NewInput("a", form.TypeEmail,
				form.MaxLength(2), form.WithValue("ann")),
			want:    form.ValidityState{TypeMismatch: true, TooLong: true},
			message: "Please include an '@' in the email address. 'ann' is missing an '@'.",
		},
		{
			name: "two failing patterns set one flag",
			input: form.NewInput("a", form.TypeText,
				form.Pattern("[0-9]+"), form.Pattern("[a-z]+"), form.WithValue("AB")),
			want:    form.ValidityState{PatternMismatch: true},
			message: "Please match the requested format.",
		},
		{
			name:    "number bad input",
			input:   form.NewInput("a", form.TypeNumber, form.WithValue("ten")),
			want:    form.ValidityState{BadInput: true},
			message: "Please enter a number.",
		},
		{
			name:    "number range underflow",
			input:   form.NewInput("a", form.TypeNumber, form.Min(18), form.Max(99), form.WithValue("17")),
			want:    form.ValidityState{RangeUnderflow: true},
			message: "Value must be greater than or equal to 18.",
		},
		{
			name:    "number range overflow",
			input:   form.NewInput("a", form.TypeNumber, form.Min(18), form.Max(99), form.WithValue("100")),
			want:    form.ValidityState{RangeOverflow: true},
			message: "Value must be less than or equal to 99.",
		},
		{
			name:    "required checkbox unchecked",
			input:   form.NewInput("a", form.TypeCheckbox, form.Required()),
			want:    form.ValidityState{ValueMissing: true},
			message: "Please check this box if you want to proceed.",
		},
		{
			name:  "required checkbox checked",
			input: form.NewInput("a", form.TypeCheckbox, form.Required(), form.WithChecked()),
		},
		{
			name:  "disabled inputs are barred",
			input: form.NewInput("a", form.TypeText, form.Required(), form.WithDisabled()),
		},
		{
			name:  "hidden inputs are barred",
			input: form.NewInput("a", form.TypeHidden, form.Required()),
		},
		{
			name:  "type constraint changes the input type",
			input: form.NewInput("a", "", form.TypeOf(form.TypeEmail), form.WithValue(" ann@x.com ")),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.input.Validity())
			assert.Equal(t, tt.want.Valid(), tt.input.CheckValidity())
			assert.Equal(t, tt.message, tt.input.ValidationMessage())
		})
	}
}

func TestCustomValidity(t *testing.T) {
	in := form.NewInput("a", form.TypeText, form.WithValue("ok"))
	assert.True(t, in.CheckValidity())

	in.SetCustomValidity("taken")
	assert.Equal(t, form.ValidityState{CustomError: true}, in.Validity())
	assert.Equal(t, "taken", in.ValidationMessage())

	in.SetCustomValidity("")
	assert.True(t, in.CheckValidity())
}

func TestRequiredRadioGroup(t *testing.T) {
	free := form.NewInput("plan", form.TypeRadio, form.Required(), form.WithValue("free"))
	pro := form.NewInput("plan", form.TypeRadio, form.WithValue("pro"))
	f := form.New("plans", free, pro)

	assert.Equal(t, form.ValidityState{ValueMissing: true}, free.Validity())
	assert.Equal(t, "Please select one of these options.", free.ValidationMessage())
	assert.False(t, f.CheckValidity())

	pro.SetChecked(true)
	assert.True(t, free.CheckValidity(), "any checked radio of the group satisfies required")
	assert.True(t, f.CheckValidity())

	free.SetChecked(true)
	assert.False(t, pro.Checked(), "checking a radio unchecks the rest of its group")
}

func TestInputValueSanitization(t *testing.T) {
	text := form.NewInput("a", form.TypeText)
	text.SetValue("line\r\nbreak ")
	assert.Equal(t, "linebreak ", text.Value())

	email := form.NewInput("b", form.TypeEmail)
	email.SetValue("  ann@x.com\n")
	assert.Equal(t, "ann@x.com", email.Value())
}

func TestConstraintKind(t *testing.T) {
	assert.Equal(t, "required", form.KindRequired.String())
	assert.Equal(t, "minlength", form.MinLength(3).Kind.String())
	assert.Equal(t, "ConstraintKind(99)", form.ConstraintKind(99).String())

	assert.True(t, form.Pattern("[a-z]").Valid())
	assert.False(t, form.Pattern("[a-").Valid())
	assert.False(t, form.TypeOf("color").Valid())
}
