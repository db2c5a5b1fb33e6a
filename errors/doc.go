// Package errors provides lightweight classified errors used by the trackable packages.
//
// Each error carries a Class from the 'class' subpackage, a unique instance ID and the
// operation - the function, file and line where the error was created.
package errors
