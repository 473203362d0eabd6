package formhttp

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/a-h/templ"
	"go.opentelemetry.io/otel/trace"

	"github.com/dmitrymomot/formkit/pkg/form"
)

// DefaultSuccessMessage is shown above the accepted data.
const DefaultSuccessMessage = "Thank you! Your submission has been received."

// AcceptFunc is called with the data of every accepted submission before the
// response is written. A returned error turns the response into a 500.
type AcceptFunc func(ctx context.Context, data form.Values) error

// Option configures a Handler.
type Option func(*Handler)

// WithLogger sets the logger used for submission outcomes.
func WithLogger(log *slog.Logger) Option {
	return func(h *Handler) {
		if log != nil {
			h.log = log
		}
	}
}

// WithMetrics records submission outcomes on m.
func WithMetrics(m *Metrics) Option {
	return func(h *Handler) {
		h.metrics = m
	}
}

// WithTracerProvider sets the provider of submission spans. Defaults to the
// global provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(h *Handler) {
		if tp != nil {
			h.tracer = tp.Tracer(tracerName)
		}
	}
}

// WithAccept sets the hook receiving accepted data.
func WithAccept(fn AcceptFunc) Option {
	return func(h *Handler) {
		h.onAccept = fn
	}
}

// WithRedirect redirects to url after an accepted submission instead of
// rendering the success message.
func WithRedirect(url string) Option {
	return func(h *Handler) {
		h.redirect = url
	}
}

// WithSuccessMessage replaces DefaultSuccessMessage.
func WithSuccessMessage(message string) Option {
	return func(h *Handler) {
		h.message = message
	}
}

// WithFormAttrs adds attributes to the rendered form element.
func WithFormAttrs(attrs templ.Attributes) Option {
	return func(h *Handler) {
		h.attrs = attrs
	}
}

// HTMXAttrs makes a rendered form post through HTMX and swap itself with
// the response.
func HTMXAttrs(action string) templ.Attributes {
	return templ.Attributes{
		"hx-post": action,
		"hx-swap": "outerHTML",
	}
}

// DataStarAttrs makes a rendered form post its fields through DataStar.
func DataStarAttrs(action string) templ.Attributes {
	return templ.Attributes{
		"data-on-submit": fmt.Sprintf("@post('%s', {contentType: 'form'})", action),
	}
}
