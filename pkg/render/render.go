package render

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/dmitrymomot/formkit/pkg/form"
	"github.com/dmitrymomot/formkit/pkg/validator"
)

// ErrorClass is the class of the element holding a field's error message.
const ErrorClass = "error-message"

// Options control how a form is rendered.
type Options struct {
	// Submit is the submit button caption. Defaults to "Submit".
	Submit string
	// Attrs are extra attributes on the form element, e.g. hx-post.
	Attrs templ.Attributes
}

// FormID returns the element id of a rendered form.
func FormID(f *form.Form) string {
	return "form-" + f.Name()
}

// Form renders f with its current values. Each input with an entry in errs
// is followed by a span of class ErrorClass holding the message.
func Form(f *form.Form, errs form.Errors, opts Options) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder

		b.WriteString(`<form`)
		writeAttr(&b, "id", FormID(f))
		writeAttr(&b, "method", "post")
		if action := f.Action(); action != "" {
			writeAttr(&b, "action", action)
		}
		writeAttr(&b, "novalidate", f.NoValidate())
		for _, key := range sortedKeys(opts.Attrs) {
			writeAttr(&b, key, opts.Attrs[key])
		}
		b.WriteString(`>`)

		for i, in := range f.Inputs() {
			writeField(&b, f, i, in, errs)
		}

		caption := opts.Submit
		if caption == "" {
			caption = "Submit"
		}
		b.WriteString(`<button type="submit">`)
		writeText(&b, caption)
		b.WriteString(`</button></form>`)

		_, err := io.WriteString(w, b.String())
		return err
	})
}

// DisplayErrors renders the error mapping as a list, for hosts that show errors
// apart from the form.
func DisplayErrors(errs form.Errors) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if len(errs) == 0 {
			return nil
		}
		var b strings.Builder
		b.WriteString(`<ul class="errors">`)
		for _, field := range errs.Fields() {
			b.WriteString(`<li`)
			writeAttr(&b, "data-field", field)
			b.WriteString(`>`)
			writeText(&b, errs[field])
			b.WriteString(`</li>`)
		}
		b.WriteString(`</ul>`)
		_, err := io.WriteString(w, b.String())
		return err
	})
}

// Success renders the accepted data as a definition list.
func Success(id string, message string, data form.Values) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<div`)
		writeAttr(&b, "id", id)
		writeAttr(&b, "class", "success")
		b.WriteString(`><p>`)
		writeText(&b, message)
		b.WriteString(`</p><dl>`)
		for _, field := range sortedKeys(data) {
			b.WriteString(`<dt>`)
			writeText(&b, Label(field))
			b.WriteString(`</dt><dd>`)
			writeText(&b, data[field])
			b.WriteString(`</dd>`)
		}
		b.WriteString(`</dl></div>`)
		_, err := io.WriteString(w, b.String())
		return err
	})
}

// Page wraps body in a minimal HTML document.
func Page(title string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"><title>`)
		writeText(&b, title)
		b.WriteString(`</title></head><body><h1>`)
		writeText(&b, title)
		b.WriteString(`</h1>`)
		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}
		if err := body.Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</body></html>`)
		return err
	})
}

// Label turns a field name like "first_name" into "First Name".
func Label(name string) string {
	return cases.Title(language.English).String(strings.NewReplacer("_", " ", "-", " ").Replace(name))
}

func writeField(b *strings.Builder, f *form.Form, i int, in *form.Input, errs form.Errors) {
	name := in.Name()
	id := fmt.Sprintf("%s-%s-%d", f.Name(), name, i)
	typ := in.Type()

	label := in.Label()
	if label == "" && name != "" && typ != form.TypeHidden {
		label = Label(name)
	}

	b.WriteString(`<div class="field">`)
	if label != "" {
		b.WriteString(`<label`)
		writeAttr(b, "for", id)
		b.WriteString(`>`)
		writeText(b, label)
		b.WriteString(`</label>`)
	}

	b.WriteString(`<input`)
	writeAttr(b, "id", id)
	writeAttr(b, "type", string(typ))
	if name != "" {
		writeAttr(b, "name", name)
	}
	if value := in.Value(); value != "" {
		writeAttr(b, "value", value)
	}
	if p := in.Placeholder(); p != "" {
		writeAttr(b, "placeholder", p)
	}
	writeAttr(b, "checked", in.Checked())
	writeAttr(b, "disabled", in.Disabled())
	for _, c := range in.Constraints() {
		writeConstraint(b, c)
	}

	message, failed := errs[name]
	failed = failed && name != ""
	if failed {
		writeAttr(b, "aria-invalid", "true")
	}
	b.WriteString(`>`)

	if failed {
		b.WriteString(`<span`)
		writeAttr(b, "class", ErrorClass)
		b.WriteString(`>`)
		writeText(b, message)
		b.WriteString(`</span>`)
	}
	b.WriteString(`</div>`)
}

func writeConstraint(b *strings.Builder, c form.Constraint) {
	if !c.Valid() {
		return
	}
	switch c.Kind {
	case form.KindRequired:
		writeAttr(b, "required", true)
	case form.KindPattern:
		writeAttr(b, "pattern", c.Pattern)
	case form.KindMinLength:
		writeAttr(b, "minlength", c.Length)
	case form.KindMaxLength:
		writeAttr(b, "maxlength", c.Length)
	case form.KindMin:
		writeAttr(b, "min", validator.FormatNumber(c.Bound))
	case form.KindMax:
		writeAttr(b, "max", validator.FormatNumber(c.Bound))
	}
}

// writeAttr writes one escaped attribute. A bool renders as a bare attribute
// when true and is omitted when false.
func writeAttr(b *strings.Builder, key string, value any) {
	if on, ok := value.(bool); ok {
		if on {
			b.WriteString(` ` + templ.EscapeString(key))
		}
		return
	}
	b.WriteString(` ` + templ.EscapeString(key) + `="`)
	b.WriteString(templ.EscapeString(fmt.Sprint(value)))
	b.WriteString(`"`)
}

func writeText(b *strings.Builder, s string) {
	b.WriteString(templ.EscapeString(s))
}
