// Package formhttp serves form definitions over net/http.
//
// A Handler builds a fresh form for every request. GET renders it with its
// default values. POST reads the request body with binder.FormValues, fills
// the inputs, and submits the form through a controller from package form.
// Rejected submissions re-render the form with an error message after each
// failing input (422 for full pages); accepted ones render the submitted data
// or redirect.
//
// HTMX requests (HX-Request: true) receive the form fragment alone and
// DataStar requests receive it as an SSE element patch targeting the form id:
//
//	def, _ := schema.Load("signup.yaml")
//	r := chi.NewRouter()
//	formhttp.Mount(r, "/signup", formhttp.New(def,
//		formhttp.WithLogger(log),
//		formhttp.WithFormAttrs(formhttp.HTMXAttrs("/signup")),
//		formhttp.WithMetrics(formhttp.NewMetrics(prometheus.DefaultRegisterer, "")),
//	))
//
// Every POST runs inside an OpenTelemetry span from the global tracer provider
// unless WithTracerProvider supplies another one.
package formhttp
