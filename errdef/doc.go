// Package errdef defines the raisable error definitions. Each definition pairs an optional
// tracking code with the message template and the error classification. Raising a definition
// renders its message and returns a trackable error instance.
package errdef
