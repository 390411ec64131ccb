// Package textbase holds the error kinds shared by the textbase packages.
//
// Every failure in this module surfaces as one of the four types below, so
// callers can sort errors with errors.As without knowing which package they
// came from. The only errors ever swallowed are stream-close failures during
// teardown; those get a warning log instead, since no corrective action
// remains possible at that point.
package textbase

import "fmt"

// ConversionError means an encoding backend failed to convert non-empty
// input, or reported zero converted units for it.
type ConversionError struct {
	Backend   string // name of the backend that failed
	Direction string // "widen" or "narrow"
	Err       error  // underlying backend error, nil for zero-output failures
}

func (e *ConversionError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s backend: %s conversion produced no output", e.Backend, e.Direction)
	}
	return fmt.Sprintf("%s backend: %s conversion failed: %v", e.Backend, e.Direction, e.Err)
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}

// FormatError means a format template and its arguments disagreed.
type FormatError struct {
	Format string // the offending template
	Detail string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("format %q: %s", e.Format, e.Detail)
}

// LogicError means a caller violated an operation's precondition, like
// reading past the end of a stream.
type LogicError struct {
	Op     string // the operation whose precondition was violated
	Detail string
}

func (e *LogicError) Error() string {
	return e.Op + ": " + e.Detail
}

// ResourceError means an external byte stream could not be opened.
type ResourceError struct {
	Path string
	Err  error
}

func (e *ResourceError) Error() string {
	return fmt.Sprintf("could not open %s: %v", e.Path, e.Err)
}

func (e *ResourceError) Unwrap() error {
	return e.Err
}
