package pipeline

import (
	"errors"
	"fmt"

	"adrgoods/internal"
	"adrgoods/internal/sheet"
)

var (
	ErrMalformedValue = errors.New("malformed value")
	ErrInvalidValue   = errors.New("invalid value")
	ErrUnknownField   = errors.New("no transformer registered")
)

// FieldError reports a cell that could not be turned into a record field.
type FieldError struct {
	Field internal.Field
	Value string
	Err   error
}

func (e *FieldError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("%s: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("%s: %v in cell value %q", e.Field, e.Err, e.Value)
}

func (e *FieldError) Unwrap() error { return e.Err }

// RowError aborts a conversion run. Line is the 1-based sheet row number.
type RowError struct {
	Line int
	Row  sheet.Row
	Err  error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("could not transform row %d %s: %v", e.Line, e.Row, e.Err)
}

func (e *RowError) Unwrap() error { return e.Err }

func fieldErr(field internal.Field, value string, err error) *FieldError {
	return &FieldError{Field: field, Value: value, Err: err}
}
