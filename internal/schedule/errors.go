package schedule

import (
	"errors"
	"fmt"
)

// ErrReadOnly is returned when a source cannot store the configuration.
var ErrReadOnly = errors.New("source is read-only")

// FetchError reports a non-2xx response, a network failure or a missing file.
// Status is zero when no response was received.
type FetchError struct {
	Status  int
	Message string
	Path    string
	Err     error
}

func (e *FetchError) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("fetch %s: status %d: %s", e.Path, e.Status, e.Message)
	}
	return fmt.Sprintf("fetch %s: %s", e.Path, e.Message)
}

func (e *FetchError) Unwrap() error { return e.Err }

// ParseError reports a payload that is not valid JSON for the target type.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
