package form_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/form"
)

// signUpForm builds the name/email/password form used across tests.
func signUpForm() *form.Form {
	return form.New("signup",
		form.NewInput("name", form.TypeText, form.Required()),
		form.NewInput("email", form.TypeEmail, form.Required()),
		form.NewInput("password", form.TypePassword, form.Required(), form.MinLength(8)),
	)
}

// recorder collects callback invocations.
type recorder[T any] struct {
	submitted []T
	errors    []form.Errors
}

func (r *recorder[T]) config() form.Config[T] {
	return form.Config[T]{
		OnSubmit: func(ctx context.Context, data T) { r.submitted = append(r.submitted, data) },
		OnError:  func(ctx context.Context, errs form.Errors) { r.errors = append(r.errors, errs) },
	}
}

func setValue(t *testing.T, f *form.Form, name, value string) {
	t.Helper()
	in, ok := f.Input(name)
	require.True(t, ok, "input %q not found", name)
	in.SetValue(value)
}
