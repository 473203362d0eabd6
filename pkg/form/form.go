package form

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/google/uuid"
)

// Form is an ordered set of inputs plus the submission listeners bound to it.
// It is the in-memory counterpart of an HTML form element.
type Form struct {
	mu sync.Mutex

	name       string
	action     string
	noValidate bool
	inputs     []*Input

	listeners []listenerEntry
	nextID    uint64
}

// Listener handles a submission of the form it is registered on.
type Listener func(ctx context.Context, ev *SubmitEvent)

type listenerEntry struct {
	id uint64
	fn Listener
}

// New creates a form with the given inputs in document order.
func New(name string, inputs ...*Input) *Form {
	f := &Form{name: name}
	f.Append(inputs...)
	return f
}

func (f *Form) Name() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.name
}

// Action returns the URL the form submits to when no listener prevents it.
func (f *Form) Action() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.action
}

func (f *Form) SetAction(action string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.action = action
}

// NoValidate reports whether interactive validation is disabled on submit.
func (f *Form) NoValidate() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.noValidate
}

func (f *Form) SetNoValidate(noValidate bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.noValidate = noValidate
}

// Append adds inputs at the end of the form.
// Panics if an input already belongs to another form.
func (f *Form) Append(inputs ...*Input) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, in := range inputs {
		if in == nil {
			continue
		}
		if in.form != nil && in.form != f {
			panic(fmt.Sprintf("form: input %q already belongs to form %q", in.name, in.form.name))
		}
		in.form = f
		f.inputs = append(f.inputs, in)
	}
}

// Inputs returns the inputs in document order.
func (f *Form) Inputs() []*Input {
	f.mu.Lock()
	defer f.mu.Unlock()
	return slices.Clone(f.inputs)
}

// Input returns the first input with the given name.
func (f *Form) Input(name string) (*Input, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, in := range f.inputs {
		if in.name == name && name != "" {
			return in, true
		}
	}
	return nil, false
}

// Fill replaces user-editable state with submitted values, the way a user
// would by typing. Text-like inputs take the first value under their name and
// keep their value when the name is absent. Checkboxes and radios are checked
// exactly when their value (or "on") is among the submitted values. Disabled
// and unnamed inputs are left untouched.
func (f *Form) Fill(values map[string][]string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, in := range f.inputs {
		if in.disabled || in.name == "" {
			continue
		}
		submitted, ok := values[in.name]
		if in.typ.checkable() {
			in.checked = slices.Contains(submitted, in.submitValueLocked())
			continue
		}
		if ok && len(submitted) > 0 {
			in.value = sanitizeValue(in.typ, submitted[0])
		}
	}
}

// CheckValidity reports whether every input satisfies its constraints.
func (f *Form) CheckValidity() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.checkValidityLocked()
}

func (f *Form) checkValidityLocked() bool {
	for _, in := range f.inputs {
		if state, _ := in.evaluateLocked(); !state.Valid() {
			return false
		}
	}
	return true
}

// Values builds the field-value mapping from the current inputs.
func (f *Form) Values() Values {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.valuesLocked()
}

// valuesLocked includes every enabled named input; checkboxes and radios only
// when checked. A later input with the same name overwrites an earlier one.
func (f *Form) valuesLocked() Values {
	values := make(Values, len(f.inputs))
	for _, in := range f.inputs {
		if in.disabled || in.name == "" {
			continue
		}
		if in.typ.checkable() && !in.checked {
			continue
		}
		values[in.name] = in.submitValueLocked()
	}
	return values
}

func (in *Input) submitValueLocked() string {
	if in.typ.checkable() && in.value == "" {
		return "on"
	}
	return in.value
}

// Listen registers fn for every submission and returns a function removing it.
// Registering the same function twice yields two independent listeners.
func (f *Form) Listen(fn Listener) (remove func()) {
	if fn == nil {
		return func() {}
	}

	f.mu.Lock()
	f.nextID++
	id := f.nextID
	f.listeners = append(f.listeners, listenerEntry{id: id, fn: fn})
	f.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			f.mu.Lock()
			defer f.mu.Unlock()
			f.listeners = slices.DeleteFunc(f.listeners, func(e listenerEntry) bool {
				return e.id == id
			})
		})
	}
}

// ListenerCount returns the number of registered listeners.
func (f *Form) ListenerCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.listeners)
}

// Submit fires a submission. Unless NoValidate is set, an invalid form blocks
// the submission and no listener runs. Otherwise listeners run synchronously
// in registration order with a context carrying the submission ID.
func (f *Form) Submit(ctx context.Context) *SubmitEvent {
	ev := &SubmitEvent{ID: uuid.NewString(), Form: f}

	f.mu.Lock()
	if !f.noValidate && !f.checkValidityLocked() {
		f.mu.Unlock()
		ev.blocked = true
		return ev
	}
	listeners := slices.Clone(f.listeners)
	f.mu.Unlock()

	ctx = WithSubmissionID(ctx, ev.ID)
	for _, l := range listeners {
		l.fn(ctx, ev)
	}
	return ev
}

// SubmitEvent describes one submission of a form.
type SubmitEvent struct {
	ID   string
	Form *Form

	blocked          bool
	defaultPrevented bool
}

// PreventDefault suppresses the default submission to the form's action.
func (e *SubmitEvent) PreventDefault() {
	e.defaultPrevented = true
}

// DefaultPrevented reports whether a listener suppressed the default submission.
func (e *SubmitEvent) DefaultPrevented() bool {
	return e.defaultPrevented
}

// Blocked reports whether interactive validation stopped the submission
// before any listener ran.
func (e *SubmitEvent) Blocked() bool {
	return e.blocked
}
