package errdef

import (
	"errors"

	"github.com/google/uuid"

	trackerrors "github.com/neuronlabs/trackable/errors"
	"github.com/neuronlabs/trackable/errors/class"
	"github.com/neuronlabs/trackable/registry"
)

// compile time checks for the error interfaces.
var (
	_ trackerrors.ClassError = &Error{}
	_ CodeError              = &Error{}
)

// CodeError is the interface implemented by the errors that carry a tracking code.
type CodeError interface {
	error
	// TrackingCode gets the error tracking code. Empty for codeless definitions.
	TrackingCode() registry.Code
}

// Error is the error instance raised from the Definition.
type Error struct {
	// ID is a unique error instance identification number.
	ID uuid.UUID
	// Message is the rendered definition template.
	Message string
	// Operation is the raise site in the form 'function#file:line'.
	Operation string

	definition *Definition
}

func newError(d *Definition, msg string) *Error {
	return &Error{
		ID:         uuid.New(),
		Message:    msg,
		Operation:  trackerrors.Operation(3),
		definition: d,
	}
}

// Class implements errors.ClassError interface.
func (e *Error) Class() class.Class {
	return e.definition.class
}

// Definition gets the definition the error was raised from.
func (e *Error) Definition() *Definition {
	return e.definition
}

// Error implements error interface. The message is prefixed with the tracking code
// if the definition has one.
func (e *Error) Error() string {
	if e.definition.code == "" {
		return e.Message
	}
	return string(e.definition.code) + " " + e.Message
}

// HasCode checks if the error carries a tracking code.
func (e *Error) HasCode() bool {
	return e.definition.code != ""
}

// Is checks if the 'target' is the definition the error was raised from, or an error
// raised from the same definition.
func (e *Error) Is(target error) bool {
	switch t := target.(type) {
	case *Definition:
		return t == e.definition
	case *Error:
		return t.definition == e.definition
	}
	return false
}

// TrackingCode implements CodeError interface.
func (e *Error) TrackingCode() registry.Code {
	return e.definition.code
}

// CodeOf gets the tracking code of the error or any error it wraps. Returns false
// if no coded error is found.
func CodeOf(err error) (registry.Code, bool) {
	var codeError CodeError
	if !errors.As(err, &codeError) {
		return "", false
	}
	code := codeError.TrackingCode()
	return code, code != ""
}
