package binder

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// TagName is the struct tag naming the form field a struct field binds to.
const TagName = "form"

// Decode binds a field-value mapping to the struct pointed to by v.
//
// Fields are matched by the `form:"name"` tag, or by the lowercase field name
// when the tag is absent. `form:"-"` skips a field. Values missing from the
// mapping, and empty values of non-string fields, leave the field at its zero
// value. A value that does not parse into
// the field's type yields a *FieldError.
func Decode(values map[string]string, v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fmt.Errorf("%w: target must be a non-nil pointer", ErrInvalidTarget)
	}
	if err := CheckType(rv.Elem().Type()); err != nil {
		return err
	}

	rv = rv.Elem()
	rt := rv.Type()

	for i := 0; i < rv.NumField(); i++ {
		field := rv.Field(i)
		fieldType := rt.Field(i)

		if !field.CanSet() {
			continue
		}

		paramName, skip := parseFieldTag(fieldType)
		if skip {
			continue
		}

		value, exists := values[paramName]
		if !exists || (value == "" && !isStringField(fieldType.Type)) {
			continue
		}

		if err := setFieldValue(field, fieldType.Type, value); err != nil {
			return &FieldError{Field: paramName, Err: err}
		}
	}

	return nil
}

// CheckType reports whether values can be decoded into t: a struct whose
// bound fields are strings, numbers, bools, or pointers to those.
func CheckType(t reflect.Type) error {
	if t == nil || t.Kind() != reflect.Struct {
		return fmt.Errorf("%w: %v is not a struct", ErrInvalidTarget, t)
	}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		if _, skip := parseFieldTag(f); skip {
			continue
		}
		if !supportedKind(f.Type) {
			return fmt.Errorf("%w: field %s has unsupported type %s", ErrInvalidTarget, f.Name, f.Type)
		}
	}
	return nil
}

func supportedKind(t reflect.Type) bool {
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.String, reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}

func isStringField(t reflect.Type) bool {
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Kind() == reflect.String
}

// parseFieldTag returns the form field name and whether to skip the field.
func parseFieldTag(field reflect.StructField) (paramName string, skip bool) {
	tag := field.Tag.Get(TagName)
	if tag == "" {
		return strings.ToLower(field.Name), false
	}
	if tag == "-" {
		return "", true
	}

	// Options after the comma (e.g. "name,omitempty") are accepted and ignored.
	name, _, _ := strings.Cut(tag, ",")
	return name, false
}

// setFieldValue sets the field value from a string value.
func setFieldValue(field reflect.Value, fieldType reflect.Type, value string) error {
	if fieldType.Kind() == reflect.Ptr {
		if field.IsNil() {
			field.Set(reflect.New(fieldType.Elem()))
		}
		return setFieldValue(field.Elem(), fieldType.Elem(), value)
	}

	switch fieldType.Kind() {
	case reflect.String:
		field.SetString(value)

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(strings.TrimSpace(value), 10, fieldType.Bits())
		if err != nil {
			return fmt.Errorf("%w: invalid int value %q", ErrInvalidValue, value)
		}
		field.SetInt(n)

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(strings.TrimSpace(value), 10, fieldType.Bits())
		if err != nil {
			return fmt.Errorf("%w: invalid uint value %q", ErrInvalidValue, value)
		}
		field.SetUint(n)

	case reflect.Float32, reflect.Float64:
		n, err := strconv.ParseFloat(strings.TrimSpace(value), fieldType.Bits())
		if err != nil {
			return fmt.Errorf("%w: invalid float value %q", ErrInvalidValue, value)
		}
		field.SetFloat(n)

	case reflect.Bool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			// Checkbox values
			switch strings.ToLower(value) {
			case "on", "yes":
				b = true
			case "off", "no", "":
				b = false
			default:
				return fmt.Errorf("%w: invalid bool value %q", ErrInvalidValue, value)
			}
		}
		field.SetBool(b)

	default:
		return fmt.Errorf("%w: unsupported type %s", ErrInvalidTarget, fieldType.Kind())
	}

	return nil
}
