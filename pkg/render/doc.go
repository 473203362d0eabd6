// Package render renders forms, field errors and accepted data as HTML
// through templ components.
//
// Components are built with templ.ComponentFunc and escape every dynamic
// value with templ.EscapeString, so they compose with generated templ code:
//
//	f := def.Build()
//	_ = render.Page("Sign up", render.Form(f, errs, render.Options{Submit: "Join"})).Render(ctx, w)
//
// Each failing input is followed by a span of class ErrorClass holding its
// message. Inputs without a label get one derived from their name.
package render
