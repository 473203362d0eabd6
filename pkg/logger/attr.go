package logger

import (
	"log/slog"
	"slices"
	"strings"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Service records the service name under the key "service".
func Service(name string) slog.Attr {
	return slog.String("service", name)
}

// Form records the form name under the key "form".
func Form(name string) slog.Attr {
	return slog.String("form", name)
}

// SubmissionID records the submission identifier under the key "submission_id".
// If id is empty, it returns an empty Attr.
func SubmissionID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("submission_id", id)
}

// Phase records a submission lifecycle phase under the key "phase".
func Phase(name string) slog.Attr {
	return slog.String("phase", name)
}

// Fields records field names under the key "fields", sorted.
func Fields(names ...string) slog.Attr {
	sorted := slices.Clone(names)
	slices.Sort(sorted)
	return slog.String("fields", strings.Join(sorted, ","))
}

// FieldErrors groups field messages under the key "field_errors".
// Returns an empty Attr for an empty map.
func FieldErrors(errs map[string]string) slog.Attr {
	if len(errs) == 0 {
		return slog.Attr{}
	}
	keys := make([]string, 0, len(errs))
	for k := range errs {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	as := make([]slog.Attr, 0, len(keys))
	for _, k := range keys {
		as = append(as, slog.String(k, errs[k]))
	}
	return slog.Attr{Key: "field_errors", Value: slog.GroupValue(as...)}
}
