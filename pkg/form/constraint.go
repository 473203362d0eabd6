package form

import (
	"fmt"
	"regexp"

	"github.com/dmitrymomot/formkit/pkg/validator"
)

// ConstraintKind tags the variant held by a Constraint.
type ConstraintKind int

const (
	KindRequired ConstraintKind = iota + 1
	KindPattern
	KindMinLength
	KindMaxLength
	KindType
	KindMin
	KindMax
)

func (k ConstraintKind) String() string {
	switch k {
	case KindRequired:
		return "required"
	case KindPattern:
		return "pattern"
	case KindMinLength:
		return "minlength"
	case KindMaxLength:
		return "maxlength"
	case KindType:
		return "type"
	case KindMin:
		return "min"
	case KindMax:
		return "max"
	default:
		return fmt.Sprintf("ConstraintKind(%d)", int(k))
	}
}

// Constraint is a declarative validation rule attached to an input.
// Only the payload field matching Kind is meaningful.
type Constraint struct {
	Kind    ConstraintKind
	Pattern string    // KindPattern
	Length  int       // KindMinLength, KindMaxLength
	Bound   float64   // KindMin, KindMax
	Type    InputType // KindType

	re *regexp.Regexp
}

// Required makes an empty value (or an unchecked checkbox, or a radio group
// without selection) invalid.
func Required() Constraint {
	return Constraint{Kind: KindRequired}
}

// Pattern requires a non-empty value to match expr as a whole.
// An expression that does not compile is ignored.
func Pattern(expr string) Constraint {
	c := Constraint{Kind: KindPattern, Pattern: expr}
	if re, err := validator.CompilePattern(expr); err == nil {
		c.re = re
	}
	return c
}

// MinLength requires a non-empty value to have at least n characters.
// Negative lengths are ignored.
func MinLength(n int) Constraint {
	return Constraint{Kind: KindMinLength, Length: n}
}

// MaxLength limits a non-empty value to n characters. Negative lengths are ignored.
func MaxLength(n int) Constraint {
	return Constraint{Kind: KindMaxLength, Length: n}
}

// TypeOf sets the input type. Email, URL and number types bring their own
// format checks.
func TypeOf(t InputType) Constraint {
	return Constraint{Kind: KindType, Type: t}
}

// Min sets the lower bound of a number input.
func Min(bound float64) Constraint {
	return Constraint{Kind: KindMin, Bound: bound}
}

// Max sets the upper bound of a number input.
func Max(bound float64) Constraint {
	return Constraint{Kind: KindMax, Bound: bound}
}

// Valid reports whether the constraint will take part in validation.
func (c Constraint) Valid() bool {
	switch c.Kind {
	case KindRequired, KindMin, KindMax:
		return true
	case KindPattern:
		return c.re != nil
	case KindMinLength, KindMaxLength:
		return c.Length >= 0
	case KindType:
		return c.Type.Known()
	default:
		return false
	}
}

func (c Constraint) applyInput(in *Input) {
	if c.Kind == KindType {
		if c.Type.Known() {
			in.typ = c.Type
		}
		return
	}
	in.constraints = append(in.constraints, c)
}

// has reports whether the input declares a constraint of the given kind.
func (in *Input) has(kind ConstraintKind) bool {
	for _, c := range in.constraints {
		if c.Kind == kind && c.Valid() {
			return true
		}
	}
	return false
}
