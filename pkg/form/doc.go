// Package form wires constraint validation, default values and error
// reporting around an in-memory form, then hands validated data to callbacks.
//
// A Form holds Inputs in document order. Each Input carries HTML-style
// constraints (Required, Pattern, MinLength, MaxLength, Min, Max, and a type
// set with TypeOf) and exposes its ValidityState and browser-style
// ValidationMessage.
//
// Init binds a controller to a form:
//
//	f := form.New("signup",
//		form.NewInput("name", form.TypeText, form.Required()),
//		form.NewInput("email", form.TypeEmail, form.Required()),
//	)
//
//	sub := form.Init(f, form.Config[form.Values]{
//		DefaultValues: form.Values{"email": "ann@example.com"},
//		CustomErrors:  map[string]string{"email": "Invalid Email Field"},
//		OnSubmit:      func(ctx context.Context, data form.Values) { save(data) },
//		OnError:       func(ctx context.Context, errs form.Errors) { show(errs) },
//	})
//	defer sub.Unsubscribe()
//
//	f.Fill(r.PostForm)
//	f.Submit(ctx)
//
// Every submission is prevented from its default action and validated
// synchronously; exactly one of OnSubmit and OnError runs before Submit
// returns. The failing message of each input is written into its custom
// validity, and cleared again at the start of the next pass.
//
// Config's type parameter selects the shape of the accepted data: Values for
// the raw field mapping, or a struct decoded through `form:"name"` tags.
package form
