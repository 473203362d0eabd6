package form

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"reflect"
	"sync"
	"sync/atomic"

	"github.com/dmitrymomot/formkit/pkg/binder"
	"github.com/dmitrymomot/formkit/pkg/logger"
)

// DefaultDecodeMessage is reported for a field whose value cannot be decoded
// into the typed schema and has no custom error.
const DefaultDecodeMessage = "Please enter a valid value."

// Config configures a form controller. T is the typed shape of the submitted
// data: Values (or map[string]string) to receive the raw mapping, or a struct
// whose fields are bound by `form:"name"` tags.
type Config[T any] struct {
	// DefaultValues seeds input values once during Init. Empty entries are skipped.
	DefaultValues Values
	// CustomErrors replaces the default message of a failing field.
	CustomErrors map[string]string
	// OnSubmit receives the data of every accepted submission.
	OnSubmit func(ctx context.Context, data T)
	// OnError receives the field errors of every rejected submission.
	OnError func(ctx context.Context, errs Errors)
	// Both callbacks run synchronously inside Submit and must not submit the
	// same form again.

	// Logger receives debug records about submissions. Defaults to a discard logger.
	Logger *slog.Logger
}

// Subscription is the handle returned by Init. It owns the submission
// listener and exposes validation without submitting.
type Subscription struct {
	form         *Form
	customErrors map[string]string
	log          *slog.Logger

	remove func()
	active atomic.Bool

	// mu serializes submissions handled by this subscription.
	mu        sync.Mutex
	lifecycle *lifecycle

	// marked holds the custom validity written by the last pass.
	// Guarded by form.mu.
	marked []mark
}

// mark records a custom validity written by a pass together with the value
// it replaced.
type mark struct {
	in    *Input
	prev  string
	wrote string
}

// Init binds a controller to f. It disables interactive validation, seeds
// default values and registers one submission listener. Every call registers
// a new listener; calling Init twice on a form runs both controllers.
//
// Init panics when f or a callback is nil, or when T cannot receive the data.
func Init[T any](f *Form, cfg Config[T]) *Subscription {
	if f == nil {
		panic("form: Init called with nil form")
	}
	if cfg.OnSubmit == nil || cfg.OnError == nil {
		panic("form: Init requires both OnSubmit and OnError")
	}
	decode := decoderFor[T]()

	log := cfg.Logger
	if log == nil {
		log = logger.Discard()
	}

	s := &Subscription{
		form:         f,
		customErrors: maps.Clone(cfg.CustomErrors),
		log:          log.With(logger.Form(f.Name())),
		lifecycle:    newLifecycle(),
	}

	f.SetNoValidate(true)
	if len(cfg.DefaultValues) > 0 {
		seedDefaults(f, cfg.DefaultValues)
	}

	s.active.Store(true)
	s.remove = f.Listen(func(ctx context.Context, ev *SubmitEvent) {
		handleSubmit(ctx, s, ev, decode, cfg.OnSubmit, cfg.OnError)
	})
	return s
}

// Unsubscribe removes the submission listener. It is safe to call more than once.
func (s *Subscription) Unsubscribe() {
	if s.active.CompareAndSwap(true, false) {
		s.remove()
	}
}

// Active reports whether the listener is still registered.
func (s *Subscription) Active() bool {
	return s.active.Load()
}

// Phase returns the current lifecycle phase. Outside a submission it is PhaseIdle.
func (s *Subscription) Phase() Phase {
	return s.lifecycle.Current()
}

// Form returns the bound form.
func (s *Subscription) Form() *Form {
	return s.form
}

// Validate runs one validation pass without submitting. Messages of failing
// inputs are written into their custom validity. Messages written by the
// previous pass are undone first, restoring whatever the host had set, so
// repeated passes over the same state return the same result.
func (s *Subscription) Validate() Result {
	f := s.form
	f.mu.Lock()
	defer f.mu.Unlock()

	for i := len(s.marked) - 1; i >= 0; i-- {
		m := s.marked[i]
		// A value changed since the pass belongs to the host.
		if m.in.customValidity == m.wrote {
			m.in.customValidity = m.prev
		}
	}
	s.marked = s.marked[:0]

	if f.checkValidityLocked() {
		return ValidResult(f.valuesLocked())
	}

	errs := Errors{}
	for _, in := range f.inputs {
		state, message := in.evaluateLocked()
		if state.Valid() {
			continue
		}
		s.markLocked(in, s.messageFor(in.name, message), errs)
	}
	return InvalidResult(errs)
}

func (s *Subscription) messageFor(field, fallback string) string {
	if custom := s.customErrors[field]; field != "" && custom != "" {
		return custom
	}
	return fallback
}

// markLocked records a failure. Unnamed inputs still get the custom validity
// but produce no entry.
func (s *Subscription) markLocked(in *Input, message string, errs Errors) {
	s.marked = append(s.marked, mark{in: in, prev: in.customValidity, wrote: message})
	in.customValidity = message
	if in.name != "" {
		errs[in.name] = message
	}
}

// rejectField turns a decoding failure into a field error.
func (s *Subscription) rejectField(field string) Errors {
	f := s.form
	f.mu.Lock()
	defer f.mu.Unlock()

	errs := Errors{}
	message := s.messageFor(field, DefaultDecodeMessage)
	for _, in := range f.inputs {
		if in.name == field {
			s.markLocked(in, message, errs)
		}
	}
	if !errs.Has(field) {
		errs[field] = message
	}
	return errs
}

func handleSubmit[T any](
	ctx context.Context,
	s *Subscription,
	ev *SubmitEvent,
	decode func(Values) (T, error),
	onSubmit func(context.Context, T),
	onError func(context.Context, Errors),
) {
	if !s.active.Load() {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	defer s.lifecycle.reset()

	if err := s.lifecycle.fire(triggerSubmit); err != nil {
		s.log.ErrorContext(ctx, "submission out of order", logger.Error(err))
		return
	}
	ev.PreventDefault()

	result := s.Validate()
	var data T
	if result.Valid() {
		var err error
		if data, err = decode(result.Data); err != nil {
			var fe *binder.FieldError
			if errors.As(err, &fe) {
				result = InvalidResult(s.rejectField(fe.Field))
			} else {
				s.log.ErrorContext(ctx, "failed to decode form data", logger.Error(err))
				result = InvalidResult(nil)
			}
		}
	}

	if result.Valid() {
		_ = s.lifecycle.fire(triggerAccept)
		s.log.DebugContext(ctx, "form accepted",
			logger.Phase(string(PhaseAccepted)),
			logger.Fields(fieldNames(result.Data)...))
		onSubmit(ctx, data)
	} else {
		_ = s.lifecycle.fire(triggerReject)
		s.log.DebugContext(ctx, "form rejected",
			logger.Phase(string(PhaseRejected)),
			logger.FieldErrors(result.Errors))
		onError(ctx, result.Errors)
	}

	_ = s.lifecycle.fire(triggerSettle)
}

// seedDefaults assigns non-empty defaults to inputs with a matching name.
// Checkboxes and radios are checked when the default equals their submit value.
func seedDefaults(f *Form, defaults Values) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, in := range f.inputs {
		value := defaults[in.name]
		if in.name == "" || value == "" {
			continue
		}
		if in.typ.checkable() {
			if value == in.submitValueLocked() {
				in.setCheckedLocked(true)
			}
			continue
		}
		in.value = sanitizeValue(in.typ, value)
	}
}

func decoderFor[T any]() func(Values) (T, error) {
	var zero T
	switch any(zero).(type) {
	case Values:
		return func(v Values) (T, error) { return any(v).(T), nil }
	case map[string]string:
		return func(v Values) (T, error) { return any(map[string]string(v)).(T), nil }
	}

	if err := binder.CheckType(reflect.TypeFor[T]()); err != nil {
		panic(fmt.Sprintf("form: cannot decode submitted data: %v", err))
	}
	return func(v Values) (T, error) {
		var out T
		err := binder.Decode(v, &out)
		return out, err
	}
}

func fieldNames(v Values) []string {
	names := make([]string, 0, len(v))
	for k := range v {
		names = append(names, k)
	}
	return names
}
