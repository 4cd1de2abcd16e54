package dataset

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when no file matches a data file pattern.
	ErrNotFound = errors.New("dataset: file not found")
	// ErrMissingColumn is returned when a required column is absent from the header.
	ErrMissingColumn = errors.New("dataset: missing required column")
	// ErrInvalidCell is returned when a numeric column holds non-numeric text.
	ErrInvalidCell = errors.New("dataset: invalid cell")
)

// SchemaError describes a header or cell that does not fit the expected schema.
type SchemaError struct {
	Path   string
	Column string
	Row    int // 1-based data row; 0 for header problems
	Value  string
	Err    error
}

func (e *SchemaError) Error() string {
	if e.Row == 0 {
		return fmt.Sprintf("%s: column %q: %v", e.Path, e.Column, e.Err)
	}
	return fmt.Sprintf("%s: row %d column %q value %q: %v", e.Path, e.Row, e.Column, e.Value, e.Err)
}

func (e *SchemaError) Unwrap() error {
	return e.Err
}
