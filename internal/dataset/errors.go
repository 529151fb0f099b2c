package dataset

import (
	"errors"
	"fmt"
)

var (
	// ErrInputNotFound matches any *InputNotFoundError via errors.Is
	ErrInputNotFound = errors.New("input not found")
	// ErrInputParse matches any *InputParseError via errors.Is
	ErrInputParse = errors.New("input parse failed")
)

// InputNotFoundError means the dataset resource does not exist
type InputNotFoundError struct {
	Path string
	Err  error
}

func (e *InputNotFoundError) Error() string {
	return fmt.Sprintf("input file '%s' not found", e.Path)
}

func (e *InputNotFoundError) Unwrap() error { return e.Err }

func (e *InputNotFoundError) Is(target error) bool { return target == ErrInputNotFound }

// InputParseError means the dataset exists but violates the schema
type InputParseError struct {
	Path   string
	Row    int    // 1-based line in file, 0 if not row specific
	Column string // empty if not column specific
	Err    error
}

func (e *InputParseError) Error() string {
	switch {
	case e.Row > 0 && e.Column != "":
		return fmt.Sprintf("%s: row %d: column %s: %v", e.Path, e.Row, e.Column, e.Err)
	case e.Row > 0:
		return fmt.Sprintf("%s: row %d: %v", e.Path, e.Row, e.Err)
	default:
		return fmt.Sprintf("%s: %v", e.Path, e.Err)
	}
}

func (e *InputParseError) Unwrap() error { return e.Err }

func (e *InputParseError) Is(target error) bool { return target == ErrInputParse }

func parseErr(path string, row int, column string, err error) *InputParseError {
	return &InputParseError{Path: path, Row: row, Column: column, Err: err}
}
