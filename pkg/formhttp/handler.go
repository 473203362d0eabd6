package formhttp

import (
	"context"
	"log/slog"
	"maps"
	"net/http"
	"slices"
	"time"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/dmitrymomot/formkit/pkg/binder"
	"github.com/dmitrymomot/formkit/pkg/form"
	"github.com/dmitrymomot/formkit/pkg/logger"
	"github.com/dmitrymomot/formkit/pkg/render"
	"github.com/dmitrymomot/formkit/pkg/schema"
)

const tracerName = "github.com/dmitrymomot/formkit/pkg/formhttp"

// Handler serves one form definition. GET renders the form with its default
// values; POST fills a fresh form from the request body and submits it.
type Handler struct {
	def      *schema.Definition
	log      *slog.Logger
	onAccept AcceptFunc
	redirect string
	message  string
	attrs    templ.Attributes
	metrics  *Metrics
	tracer   trace.Tracer
}

// New creates a Handler for def. It panics if def is nil.
func New(def *schema.Definition, opts ...Option) *Handler {
	if def == nil {
		panic("formhttp: nil form definition")
	}

	h := &Handler{
		def:     def,
		log:     logger.Discard(),
		message: DefaultSuccessMessage,
		tracer:  otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Mount registers h on r for GET, HEAD and POST requests to pattern.
func Mount(r chi.Router, pattern string, h http.Handler) {
	r.Method(http.MethodGet, pattern, h)
	r.Method(http.MethodHead, pattern, h)
	r.Method(http.MethodPost, pattern, h)
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet, http.MethodHead:
		h.show(w, r)
	case http.MethodPost:
		h.submit(w, r)
	default:
		w.Header().Set("Allow", "GET, HEAD, POST")
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
	}
}

// captured holds what the controller reported for one submission.
type captured struct {
	data form.Values
	errs form.Errors
}

func (h *Handler) bind(f *form.Form, out *captured) *form.Subscription {
	cfg := schema.Config[form.Values](h.def)
	cfg.Logger = h.log
	cfg.OnSubmit = func(_ context.Context, data form.Values) { out.data = data }
	cfg.OnError = func(_ context.Context, errs form.Errors) { out.errs = errs }
	return form.Init(f, cfg)
}

func (h *Handler) show(w http.ResponseWriter, r *http.Request) {
	f := h.def.Build()
	h.bind(f, &captured{}).Unsubscribe()

	partial := h.formView(f, nil)
	if err := respond(w, r, http.StatusOK, "#"+render.FormID(f), partial, h.page(partial)); err != nil {
		h.log.ErrorContext(r.Context(), "failed to render form", logger.Form(f.Name()), logger.Error(err))
	}
}

func (h *Handler) submit(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	ctx, span := h.tracer.Start(r.Context(), "formhttp.submit",
		trace.WithSpanKind(trace.SpanKindServer),
		trace.WithAttributes(attribute.String("formkit.form", h.def.Name)),
	)
	defer span.End()
	r = r.WithContext(ctx)

	outcome := h.handleSubmit(w, r, span)
	span.SetAttributes(attribute.String("formkit.outcome", outcome))
	h.metrics.observe(h.def.Name, outcome, start)
}

// handleSubmit writes the response and returns the submission outcome.
func (h *Handler) handleSubmit(w http.ResponseWriter, r *http.Request, span trace.Span) string {
	values, err := binder.FormValues(r)
	if err != nil {
		h.log.WarnContext(r.Context(), "failed to read submission", logger.Form(h.def.Name), logger.Error(err))
		span.RecordError(err)
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return OutcomeBadBody
	}

	f := h.def.Build()
	var out captured
	sub := h.bind(f, &out)
	defer sub.Unsubscribe()

	f.Fill(values)
	ev := f.Submit(r.Context())
	span.SetAttributes(attribute.String("formkit.submission_id", ev.ID))

	ctx := form.WithSubmissionID(r.Context(), ev.ID)
	r = r.WithContext(ctx)
	log := h.log.With(logger.Form(f.Name()))
	selector := "#" + render.FormID(f)

	if out.errs != nil {
		log.InfoContext(ctx, "submission rejected", logger.FieldErrors(out.errs))
		span.SetAttributes(attribute.Int("formkit.error_count", len(out.errs)))
		partial := h.formView(f, out.errs)
		if err := respond(w, r, http.StatusUnprocessableEntity, selector, partial, h.page(partial)); err != nil {
			log.ErrorContext(ctx, "failed to render form", logger.Error(err))
		}
		return OutcomeRejected
	}

	if h.onAccept != nil {
		if err := h.onAccept(ctx, out.data); err != nil {
			log.ErrorContext(ctx, "accept hook failed", logger.Error(err))
			span.RecordError(err)
			span.SetStatus(codes.Error, "accept hook failed")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return OutcomeFailed
		}
	}
	log.InfoContext(ctx, "submission accepted", logger.Fields(slices.Collect(maps.Keys(out.data))...))

	if h.redirect != "" {
		if err := redirect(w, r, h.redirect); err != nil {
			log.ErrorContext(ctx, "failed to redirect", logger.Error(err))
		}
		return OutcomeAccepted
	}

	partial := render.Success(render.FormID(f), h.message, out.data)
	if err := respond(w, r, http.StatusOK, selector, partial, h.page(partial)); err != nil {
		log.ErrorContext(ctx, "failed to render result", logger.Error(err))
	}
	return OutcomeAccepted
}

func (h *Handler) formView(f *form.Form, errs form.Errors) templ.Component {
	return render.Form(f, errs, render.Options{Submit: h.def.Submit, Attrs: h.attrs})
}

func (h *Handler) page(body templ.Component) templ.Component {
	title := h.def.Title
	if title == "" {
		title = render.Label(h.def.Name)
	}
	return render.Page(title, body)
}
