package types

import (
	"errors"
	"fmt"
)

// Field mapping errors. The structured error types below wrap these so
// callers can match with errors.Is and inspect details with errors.As.
var (
	ErrTypeMismatch  = errors.New("type mismatch")
	ErrArityMismatch = errors.New("arity mismatch")
	ErrFieldNotFound = errors.New("field not found")
)

// TypeMismatchError reports the first position whose value kind disagrees
// with the schema.
type TypeMismatchError struct {
	Field    Labeler // The offending field identifier.
	Position int     // Zero-based index into the input values.
	Expected Kind
	Got      Kind
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("incorrect type for %s at position %d: expected %s, got %s",
		e.Field.Label(), e.Position, e.Expected, e.Got)
}

func (e *TypeMismatchError) Unwrap() error { return ErrTypeMismatch }

// ArityMismatchError reports an input whose length differs from the schema.
type ArityMismatchError struct {
	Record string
	Want   int
	Got    int
}

func (e *ArityMismatchError) Error() string {
	return fmt.Sprintf("%s expects %d values, got %d", e.Record, e.Want, e.Got)
}

func (e *ArityMismatchError) Unwrap() error { return ErrArityMismatch }

// FieldNotFoundError reports a label that names no field of the record type.
type FieldNotFoundError struct {
	Record string
	Label  string
}

func (e *FieldNotFoundError) Error() string {
	return fmt.Sprintf("%s has no field labeled %q", e.Record, e.Label)
}

func (e *FieldNotFoundError) Unwrap() error { return ErrFieldNotFound }
