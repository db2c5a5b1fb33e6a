// Package message defines the trackable log messages. A message definition is an immutable
// pair of the tracking code and the parsed message template.
package message

import (
	"github.com/neuronlabs/trackable/namespace"
	"github.com/neuronlabs/trackable/registry"
	"github.com/neuronlabs/trackable/template"
)

// compile time check for the registry.Definition interface.
var _ registry.Definition = &Definition{}

// Option is the message definition option.
type Option func(d *Definition)

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

// Definition is the trackable log message definition.
type Definition struct {
	code      registry.Code
	name      string
	namespace namespace.Path
	template  *template.Template
}

// New creates new message definition with provided tracking 'code' and template 'raw'.
// The definition is not registered.
func New(code registry.Code, raw string, options ...Option) (*Definition, error) {
	tmpl, err := template.Parse(raw)
	if err != nil {
		return nil, err
	}
	d := &Definition{code: code, template: tmpl}
	for _, option := range options {
		option(d)
	}
	return d, nil
}

// MustNew creates new message definition. Panics on error.
func MustNew(code registry.Code, raw string, options ...Option) *Definition {
	d, err := New(code, raw, options...)
	if err != nil {
		panic(err)
	}
	return d
}

// Define creates new message definition and registers it within the registry 'r'.
// If the registration fails no definition is returned.
func Define(r *registry.Registry, code registry.Code, raw string, options ...Option) (*Definition, error) {
	d, err := New(code, raw, options...)
	if err != nil {
		return nil, err
	}
	if err = r.Register(d); err != nil {
		return nil, err
	}
	return d, nil
}

// Code implements registry.Definition.
func (d *Definition) Code() registry.Code {
	return d.code
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

// Severity gets the severity denoted by the tracking code.
func (d *Definition) Severity() registry.Severity {
	return d.code.Severity()
}

// Render substitutes the template placeholders with the 'args'. The number of arguments
// must match the template arity.
func (d *Definition) Render(args ...interface{}) (string, error) {
	return d.template.Render(args...)
}

// MustRender renders the message. Panics on error.
func (d *Definition) MustRender(args ...interface{}) string {
	s, err := d.template.Render(args...)
	if err != nil {
		panic(err)
	}
	return s
}

// Format renders the message prefixed with its tracking code - i.e.
// 'CONJ00007D Working with OIDC Provider https://idp.example.com'.
func (d *Definition) Format(args ...interface{}) (string, error) {
	s, err := d.template.Render(args...)
	if err != nil {
		return "", err
	}
	return string(d.code) + " " + s, nil
}

// String implements fmt.Stringer interface.
func (d *Definition) String() string {
	return string(d.code) + " " + d.template.Raw()
}
