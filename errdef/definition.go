package errdef

import (
	"github.com/neuronlabs/trackable/errors/class"
	"github.com/neuronlabs/trackable/namespace"
	"github.com/neuronlabs/trackable/registry"
	"github.com/neuronlabs/trackable/template"
)

// compile time check for the registry.Definition interface.
var _ registry.Definition = &Definition{}

// Option is the error definition option.
type Option func(d *Definition)

// WithCode sets the definition tracking code.
func WithCode(code registry.Code) Option {
	return func(d *Definition) {
		d.code = code
	}
}

// Named sets the definition identifier.
func Named(name string) Option {
	return func(d *Definition) {
		d.name = name
	}
}

// InNamespace groups the definition under the namespace path 'p'.
func InNamespace(p namespace.Path) Option {
	return func(d *Definition) {
		d.namespace = p
	}
}

// WithClass sets the classification of the raised errors.
func WithClass(c class.Class) Option {
	return func(d *Definition) {
		d.class = c
	}
}

// Definition is the raisable error definition.
type Definition struct {
	code      registry.Code
	name      string
	namespace namespace.Path
	class     class.Class
	template  *template.Template
}

// New creates new error definition with the template 'raw'. By default the raised errors
// are classified as class.DomainRaised. The definition is not registered.
func New(raw string, options ...Option) (*Definition, error) {
	tmpl, err := template.Parse(raw)
	if err != nil {
		return nil, err
	}
	d := &Definition{template: tmpl, class: class.DomainRaised}
	for _, option := range options {
		option(d)
	}
	return d, nil
}

// MustNew creates new error definition. Panics on error.
func MustNew(raw string, options ...Option) *Definition {
	d, err := New(raw, options...)
	if err != nil {
		panic(err)
	}
	return d
}

// Define creates new error definition and if it has a tracking code registers it within
// the registry 'r'. Definitions without a code are never registered.
func Define(r *registry.Registry, raw string, options ...Option) (*Definition, error) {
	d, err := New(raw, options...)
	if err != nil {
		return nil, err
	}
	if d.code == "" {
		return d, nil
	}
	if err = r.Register(d); err != nil {
		return nil, err
	}
	return d, nil
}

// Class gets the classification of the raised errors.
func (d *Definition) Class() class.Class {
	return d.class
}

// Code implements registry.Definition.
func (d *Definition) Code() registry.Code {
	return d.code
}

// HasCode checks if the definition has a tracking code.
func (d *Definition) HasCode() bool {
	return d.code != ""
}

// Name implements registry.Definition.
func (d *Definition) Name() string {
	return d.name
}

// Namespace implements registry.Definition.
func (d *Definition) Namespace() namespace.Path {
	return d.namespace
}

// Template implements registry.Definition.
func (d *Definition) Template() *template.Template {
	return d.template
}

// Error implements error interface. It allows to match raised errors with the
// definition by the errors.Is function.
func (d *Definition) Error() string {
	return d.template.Raw()
}

// Raise renders the message with the 'args' and returns new error instance.
// If the number of arguments doesn't match the template arity, the mismatch error
// is returned instead.
func (d *Definition) Raise(args ...interface{}) error {
	msg, err := d.template.Render(args...)
	if err != nil {
		return err
	}
	return newError(d, msg)
}

// String implements fmt.Stringer interface.
func (d *Definition) String() string {
	if d.code == "" {
		return d.template.Raw()
	}
	return string(d.code) + " " + d.template.Raw()
}
