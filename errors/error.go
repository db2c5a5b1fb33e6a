package errors

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strconv"

	"github.com/google/uuid"

	"github.com/neuronlabs/trackable/errors/class"
)

// compile time check for the ClassError interface.
var _ ClassError = &Error{}

// Error is the classified error definition used in the trackable packages.
// Each instance has its own trackable ID.
type Error struct {
	// ID is a unique error instance identification number.
	ID uuid.UUID
	// Classification defines the error classification.
	Classification class.Class
	// Details contains the detailed information.
	Details string
	// Message is a message used as a string for the
	// golang error interface implementation.
	Message string
	// Operation is the operation name when the error occurred.
	Operation string
	// Err is the optional wrapped error.
	Err error
}

// New creates new Error with given 'class' and message 'message'.
func New(c class.Class, message string) *Error {
	err := newError(c)
	err.Message = message
	return err
}

// Newf creates new Error instance with provided 'class' with formatted message.
func Newf(c class.Class, format string, args ...interface{}) *Error {
	err := newError(c)
	err.Message = fmt.Sprintf(format, args...)
	return err
}

// Wrap creates new Error with given 'class' and 'message' that wraps the 'cause'.
func Wrap(c class.Class, cause error, message string) *Error {
	err := newError(c)
	err.Message = message
	err.Err = cause
	return err
}

// Class implements ClassError.
func (e *Error) Class() class.Class {
	return e.Classification
}

// Error implements error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap gets the wrapped error.
func (e *Error) Unwrap() error {
	return e.Err
}

// WithDetail sets the error 'detail' and returns itself.
func (e *Error) WithDetail(detail string) *Error {
	e.Details = detail
	return e
}

// WithDetailf sets the error's formatted detail with provided and returns itself.
func (e *Error) WithDetailf(format string, args ...interface{}) *Error {
	e.Details = fmt.Sprintf(format, args...)
	return e
}

// WrapDetail wraps the 'detail' for given error. Wrapping appends the new detail
// to the front of error detail message.
func (e *Error) WrapDetail(detail string) *Error {
	if e.Details == "" {
		e.Details = detail
	} else {
		e.Details = detail + " " + e.Details
	}
	return e
}

func newError(c class.Class) *Error {
	err := &Error{
		ID:             uuid.New(),
		Classification: c,
	}
	err.Operation = Operation(3)
	return err
}

// Operation gets the 'function#file:line' description of the caller at given 'skip' depth.
// The skip value is interpreted as in runtime.Caller.
func Operation(skip int) string {
	pc, _, _, ok := runtime.Caller(skip)
	if !ok {
		return ""
	}
	details := runtime.FuncForPC(pc)
	if details == nil {
		return ""
	}
	file, line := details.FileLine(pc)
	_, singleFile := filepath.Split(file)
	return details.Name() + "#" + singleFile + ":" + strconv.Itoa(line)
}
