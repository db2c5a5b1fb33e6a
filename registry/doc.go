// Package registry is the process-wide store of the trackable definitions keyed by their
// tracking codes.
//
// The registry guarantees that a tracking code is never ambiguous: a code might be registered
// once only and the registered definition is never replaced nor removed. The registry is
// populated during the startup, then sealed and used read-only. All methods are safe for
// concurrent use.
package registry
