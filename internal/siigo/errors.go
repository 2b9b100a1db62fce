package siigo

import (
	"errors"
	"fmt"
)

var ErrMissingField = errors.New("missing field")

// MissingFieldError reports a nil nested object in the data passed to a mapper.
type MissingFieldError struct {
	Path string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s: %s", ErrMissingField, e.Path)
}

func (e *MissingFieldError) Is(target error) bool {
	return target == ErrMissingField
}

func missing(format string, args ...any) *MissingFieldError {
	return &MissingFieldError{Path: fmt.Sprintf(format, args...)}
}

// StatusError is returned by Client when Siigo answers with a non-2xx status.
type StatusError struct {
	StatusCode int
	Status     string
	Body       []byte
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("siigo %s: %s", e.Status, e.Body)
}
