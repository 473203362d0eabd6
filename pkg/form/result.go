package form

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Values maps field names to their current string values.
type Values map[string]string

// Get returns the value for name, or "" if absent.
func (v Values) Get(name string) string {
	return v[name]
}

// Errors maps field names to validation messages.
type Errors map[string]string

// Error implements the error interface with fields in sorted order.
func (e Errors) Error() string {
	if len(e) == 0 {
		return "form validation failed"
	}
	parts := make([]string, 0, len(e))
	for _, field := range e.Fields() {
		parts = append(parts, fmt.Sprintf("%s: %s", field, e[field]))
	}
	return "form validation failed: " + strings.Join(parts, "; ")
}

// Has reports whether field has an error.
func (e Errors) Has(field string) bool {
	_, ok := e[field]
	return ok
}

// Get returns the message for field, or "" if it has none.
func (e Errors) Get(field string) string {
	return e[field]
}

// Fields returns the failing field names, sorted.
func (e Errors) Fields() []string {
	return slices.Sorted(maps.Keys(e))
}

// Result is the outcome of one validation pass: either valid with the
// collected data, or invalid with the error mapping.
type Result struct {
	valid  bool
	Data   Values
	Errors Errors
}

// ValidResult returns a valid result carrying data and an empty error mapping.
func ValidResult(data Values) Result {
	return Result{valid: true, Data: data, Errors: Errors{}}
}

// InvalidResult returns an invalid result carrying errs.
func InvalidResult(errs Errors) Result {
	if errs == nil {
		errs = Errors{}
	}
	return Result{Errors: errs}
}

// Valid reports which variant the result holds.
func (r Result) Valid() bool {
	return r.valid
}
