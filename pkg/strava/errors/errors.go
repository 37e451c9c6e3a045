package errors

import (
	"fmt"
)

var ErrAPICallFailed = fmt.Errorf("api call failed")
var ErrBadRequest = fmt.Errorf("bad request")
var ErrLogical = fmt.Errorf("logical error")
var ErrNotFound = fmt.Errorf("not found")
var ErrTransport = fmt.Errorf("transport failure")
var ErrTypeMismatch = fmt.Errorf("type mismatch")

type myError struct {
	msg    string
	target error
}

func (m myError) Error() string        { return m.msg }
func (m myError) Is(target error) bool { return target == m.target }

func NewBadRequestError(msg string) error {
	return &myError{
		msg:    msg,
		target: ErrBadRequest,
	}
}

func NewNotFoundError(msg string) error {
	return &myError{
		msg:    msg,
		target: ErrNotFound,
	}
}

// LogicalError is the service saying that a request can never succeed, e.g. an
// unknown id. It is never retried.
type LogicalError struct {
	Message string
}

func NewLogicalError(msg string) *LogicalError {
	return &LogicalError{Message: msg}
}

func (le *LogicalError) Error() string {
	if le.Message == "" {
		return "service reported an error"
	}
	return fmt.Sprintf("service reported an error: %s", le.Message)
}

func (le *LogicalError) Is(target error) bool { return target == ErrLogical }

// TransportError wraps a network, status or payload failure that may go away
// when the request is repeated.
type TransportError struct {
	Cause error
}

func NewTransportError(format string, args ...any) *TransportError {
	return &TransportError{Cause: fmt.Errorf(format, args...)}
}

func (te *TransportError) Error() string {
	return fmt.Sprintf("%s: %s", ErrTransport.Error(), te.Cause.Error())
}

func (te *TransportError) Is(target error) bool { return target == ErrTransport }
func (te *TransportError) Unwrap() error        { return te.Cause }

// APICallFailedError is returned once every attempt of a call has failed. Cause
// holds the failure of the last attempt.
type APICallFailedError struct {
	Path     string
	Attempts int
	Cause    error
}

func NewAPICallFailedError(path string, attempts int, cause error) *APICallFailedError {
	return &APICallFailedError{
		Path:     path,
		Attempts: attempts,
		Cause:    cause,
	}
}

func (acf *APICallFailedError) Error() string {
	return fmt.Sprintf("api call %q failed after %d attempt(s): %v", acf.Path, acf.Attempts, acf.Cause)
}

func (acf *APICallFailedError) Is(target error) bool { return target == ErrAPICallFailed }
func (acf *APICallFailedError) Unwrap() error        { return acf.Cause }

// TypeMismatchError reports a value that could not be coerced to the requested
// scalar type.
type TypeMismatchError struct {
	Want string
	Got  string
}

func NewTypeMismatchError(want, got string) *TypeMismatchError {
	return &TypeMismatchError{Want: want, Got: got}
}

func (tme *TypeMismatchError) Error() string {
	return fmt.Sprintf("%s: want %s, got %s", ErrTypeMismatch.Error(), tme.Want, tme.Got)
}

func (tme *TypeMismatchError) Is(target error) bool { return target == ErrTypeMismatch }

// Field returns a copy of err annotated with the name of the offending field.
// Errors that are not type mismatches are returned as is.
func Field(name string, err error) error {
	if err == nil {
		return nil
	}

	if tme, ok := err.(*TypeMismatchError); ok {
		return &fieldError{field: name, err: tme}
	}

	if fe, ok := err.(*fieldError); ok {
		return &fieldError{field: name + "." + fe.field, err: fe.err}
	}

	return err
}

type fieldError struct {
	field string
	err   *TypeMismatchError
}

func (fe *fieldError) Error() string {
	return fmt.Sprintf("field %q: %s", fe.field, fe.err.Error())
}

func (fe *fieldError) Unwrap() error { return fe.err }
