package reconcile

import "fmt"

// FieldError attributes a conversion failure to one record and field.
// Collected rather than returned eagerly: a bad value on one track must
// not abort the run for the rest of the collection.
type FieldError struct {
	// Key is the normalized path key of the affected record.
	Key string
	// Field is the destination-side field name.
	Field string
	// Err is the underlying conversion error.
	Err error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("record %s: field %q: %v", e.Key, e.Field, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}
