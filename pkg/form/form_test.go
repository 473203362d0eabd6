package form_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/form"
)

func TestFormInputs(t *testing.T) {
	t.Run("keeps document order", func(t *testing.T) {
		f := signUpForm()
		var names []string
		for _, in := range f.Inputs() {
			names = append(names, in.Name())
		}
		assert.Equal(t, []string{"name", "email", "password"}, names)
	})

	t.Run("lookup by name", func(t *testing.T) {
		f := signUpForm()
		in, ok := f.Input("email")
		require.True(t, ok)
		assert.Equal(t, form.TypeEmail, in.Type())

		_, ok = f.Input("missing")
		assert.False(t, ok)
		_, ok = f.Input("")
		assert.False(t, ok)
	})

	t.Run("input cannot move between forms", func(t *testing.T) {
		in := form.NewInput("a", form.TypeText)
		form.New("first", in)
		assert.Panics(t, func() { form.New("second", in) })
	})

	t.Run("empty type defaults to text", func(t *testing.T) {
		assert.Equal(t, form.TypeText, form.NewInput("a", "").Type())
	})
}

func TestFormFill(t *testing.T) {
	f := form.New("prefs",
		form.NewInput("name", form.TypeText, form.WithValue("keep")),
		form.NewInput("email", form.TypeEmail),
		form.NewInput("news", form.TypeCheckbox, form.WithChecked()),
		form.NewInput("plan", form.TypeRadio, form.WithValue("free")),
		form.NewInput("plan", form.TypeRadio, form.WithValue("pro")),
		form.NewInput("locked", form.TypeText, form.WithValue("fixed"), form.WithDisabled()),
	)

	f.Fill(map[string][]string{
		"email":  {" ann@x.com ", "second"},
		"plan":   {"pro"},
		"locked": {"changed"},
	})

	assert.Equal(t, form.Values{
		"name":  "keep",
		"email": "ann@x.com",
		"plan":  "pro",
	}, f.Values(), "absent checkbox becomes unchecked, disabled input is skipped")

	locked, _ := f.Input("locked")
	assert.Equal(t, "fixed", locked.Value())
}

func TestFormValues(t *testing.T) {
	f := form.New("x",
		form.NewInput("tag", form.TypeText, form.WithValue("first")),
		form.NewInput("tag", form.TypeText, form.WithValue("second")),
		form.NewInput("agree", form.TypeCheckbox, form.WithChecked()),
		form.NewInput("color", form.TypeCheckbox, form.WithValue("red")),
		form.NewInput("", form.TypeText, form.WithValue("unnamed")),
	)
	assert.Equal(t, form.Values{"tag": "second", "agree": "on"}, f.Values())
}

func TestFormSubmit(t *testing.T) {
	t.Run("interactive validation blocks invalid submissions", func(t *testing.T) {
		f := signUpForm()
		called := false
		f.Listen(func(ctx context.Context, ev *form.SubmitEvent) { called = true })

		ev := f.Submit(context.Background())
		assert.True(t, ev.Blocked())
		assert.False(t, called)
	})

	t.Run("listeners run in order with the submission id", func(t *testing.T) {
		f := signUpForm()
		f.SetNoValidate(true)

		var order []int
		var ids []string
		for i := range 3 {
			f.Listen(func(ctx context.Context, ev *form.SubmitEvent) {
				order = append(order, i)
				id, _ := form.SubmissionID(ctx)
				ids = append(ids, id)
			})
		}

		ev := f.Submit(context.Background())
		assert.False(t, ev.Blocked())
		assert.False(t, ev.DefaultPrevented())
		assert.Equal(t, []int{0, 1, 2}, order)
		assert.Equal(t, []string{ev.ID, ev.ID, ev.ID}, ids)
		assert.Same(t, f, ev.Form)
	})

	t.Run("removed listeners no longer run", func(t *testing.T) {
		f := form.New("x")
		calls := 0
		remove := f.Listen(func(ctx context.Context, ev *form.SubmitEvent) { calls++ })
		f.Submit(context.Background())
		remove()
		remove()
		f.Submit(context.Background())
		assert.Equal(t, 1, calls)
		assert.Zero(t, f.ListenerCount())
	})

	t.Run("nil listener is ignored", func(t *testing.T) {
		f := form.New("x")
		f.Listen(nil)()
		assert.Zero(t, f.ListenerCount())
	})

	t.Run("every submission gets a new id", func(t *testing.T) {
		f := form.New("x")
		a := f.Submit(context.Background())
		b := f.Submit(context.Background())
		assert.NotEmpty(t, a.ID)
		assert.NotEqual(t, a.ID, b.ID)
	})

	t.Run("action", func(t *testing.T) {
		f := form.New("x")
		f.SetAction("/signup")
		assert.Equal(t, "/signup", f.Action())
		assert.Equal(t, "x", f.Name())
	})
}

func TestSubmissionID(t *testing.T) {
	_, ok := form.SubmissionID(context.Background())
	assert.False(t, ok)

	id, ok := form.SubmissionID(form.WithSubmissionID(context.Background(), "abc"))
	assert.True(t, ok)
	assert.Equal(t, "abc", id)
}

func TestErrors(t *testing.T) {
	errs := form.Errors{"password": "too short", "email": "bad"}
	assert.Equal(t, "form validation failed: email: bad; password: too short", errs.Error())
	assert.Equal(t, "form validation failed", form.Errors{}.Error())
	assert.True(t, errs.Has("email"))
	assert.Equal(t, "bad", errs.Get("email"))

	var err error = errs
	assert.EqualError(t, err, errs.Error())
}

func TestResult(t *testing.T) {
	valid := form.ValidResult(form.Values{"a": "1"})
	assert.True(t, valid.Valid())
	assert.Empty(t, valid.Errors)

	invalid := form.InvalidResult(nil)
	assert.False(t, invalid.Valid())
	assert.NotNil(t, invalid.Errors)
}
