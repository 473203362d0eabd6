// Package formkit is a form-handling toolkit: constraint validation, default
// value seeding and error reporting around an in-memory form, with validated
// data dispatched to caller callbacks.
//
// The packages are layered:
//
//   - pkg/form: the form model, constraint validity and the controller (form.Init).
//   - pkg/validator: rules and browser-style messages behind the constraints.
//   - pkg/binder: request body extraction and typed decoding with `form` tags.
//   - pkg/schema: YAML form definitions.
//   - pkg/render: templ components for forms, errors and results.
//   - pkg/formhttp: net/http handler with HTMX and DataStar responses.
//   - pkg/logger, pkg/config, pkg/httpserver: ambient infrastructure.
//
// cmd/formdemo wires them into a runnable server.
package formkit
