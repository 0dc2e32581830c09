package backend

import (
	"errors"
	"fmt"
)

// ErrNotFound reports a backend 404. Views use it to tell a missing
// record apart from a transport or server failure.
var ErrNotFound = errors.New("not found")

// StatusError is any non-2xx response other than 404.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("backend returned %d: %s", e.Code, e.Body)
}

// DecodeError is a 2xx response whose body did not parse as the
// expected JSON shape.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
