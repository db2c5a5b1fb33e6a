package errors

import (
	"errors"

	"github.com/neuronlabs/trackable/errors/class"
)

// IsClass checks if given error or any error it wraps is of given 'class'.
func IsClass(err error, c class.Class) bool {
	var classError ClassError
	if !errors.As(err, &classError) {
		return false
	}
	return classError.Class() == c
}

// IsMajor checks if given error or any error it wraps is classified within the major 'm'.
func IsMajor(err error, m class.Major) bool {
	var classError ClassError
	if !errors.As(err, &classError) {
		return false
	}
	return classError.Class().IsMajor(m)
}

// ClassOf gets the classification of the error. Returns false if the error is not classified.
func ClassOf(err error) (class.Class, bool) {
	var classError ClassError
	if !errors.As(err, &classError) {
		return class.Class(0), false
	}
	return classError.Class(), true
}
