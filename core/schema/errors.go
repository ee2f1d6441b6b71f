package schema

import (
	"fmt"
	"strings"
)

// UnmappedEnumError reports a source value outside a closed enumerated
// set. Conversion fails rather than guessing a destination string, so bad
// data is surfaced instead of silently propagated.
type UnmappedEnumError struct {
	// Value is the unrecognized source value.
	Value string
	// Allowed lists the values the enum accepts.
	Allowed []string
}

func (e *UnmappedEnumError) Error() string {
	return fmt.Sprintf("unmapped enum value %q (allowed: %s)", e.Value, strings.Join(e.Allowed, ", "))
}

// NullabilityError reports an absent value arriving at a non-nullable
// destination with no configured default.
type NullabilityError struct {
	// Field is the destination field name.
	Field string
}

func (e *NullabilityError) Error() string {
	return fmt.Sprintf("field %q is not nullable and has no default", e.Field)
}

// CoercionError reports a value whose dynamic type could not be coerced
// to the type a conversion function requires.
type CoercionError struct {
	// Want is the required destination type.
	Want string
	// Value is the offending value.
	Value any
}

func (e *CoercionError) Error() string {
	return fmt.Sprintf("cannot coerce %v (%T) to %s", e.Value, e.Value, e.Want)
}
