package catalog

import (
	"gopkg.in/go-playground/validator.v9"

	"github.com/neuronlabs/trackable/errdef"
	"github.com/neuronlabs/trackable/errors"
	"github.com/neuronlabs/trackable/errors/class"
	"github.com/neuronlabs/trackable/message"
	"github.com/neuronlabs/trackable/namespace"
	"github.com/neuronlabs/trackable/registry"
)

var validate = validator.New()

// Kind is the kind of the catalog declaration.
type Kind string

// Declaration kinds.
const (
	KindMessage Kind = "message"
	KindError   Kind = "error"
)

// Entry is a single catalog declaration - the (namespace path, identifier, code, template) tuple.
type Entry struct {
	Kind      Kind   `toml:"kind" yaml:"kind" json:"kind" validate:"required,oneof=message error"`
	Namespace string `toml:"namespace,omitempty" yaml:"namespace,omitempty" json:"namespace,omitempty"`
	Name      string `toml:"name" yaml:"name" json:"name" validate:"required"`
	Code      string `toml:"code,omitempty" yaml:"code,omitempty" json:"code,omitempty" validate:"omitempty,alphanum,max=32"`
	Template  string `toml:"template" yaml:"template" json:"template" validate:"required"`
}

// EntryOf creates the catalog entry for the definition 'def'.
func EntryOf(def registry.Definition) Entry {
	e := Entry{
		Kind:      KindMessage,
		Namespace: def.Namespace().String(),
		Name:      def.Name(),
		Code:      string(def.Code()),
		Template:  def.Template().Raw(),
	}
	if _, ok := def.(*errdef.Definition); ok {
		e.Kind = KindError
	}
	return e
}

// Validate checks if the entry is well-formed. Message declarations must have the tracking code.
func (e *Entry) Validate() error {
	if err := validate.Struct(e); err != nil {
		return errors.Newf(class.CatalogDeclarationInvalid, "invalid declaration: '%s'", e.Name).WithDetail(err.Error())
	}
	if e.Kind == KindMessage && e.Code == "" {
		return errors.Newf(class.CatalogDeclarationInvalid, "message declaration: '%s' has no tracking code", e.Name)
	}
	return nil
}

// Definition creates the message or error definition declared by the entry.
// The definition is not registered.
func (e *Entry) Definition() (registry.Definition, error) {
	if err := e.Validate(); err != nil {
		return nil, err
	}
	p, err := namespace.Parse(e.Namespace)
	if err != nil {
		return nil, err
	}
	code := registry.Code(e.Code)

	if e.Kind == KindError {
		d, err := errdef.New(e.Template, errdef.WithCode(code), errdef.Named(e.Name), errdef.InNamespace(p))
		if err != nil {
			return nil, err
		}
		return d, nil
	}
	d, err := message.New(code, e.Template, message.Named(e.Name), message.InNamespace(p))
	if err != nil {
		return nil, err
	}
	return d, nil
}
