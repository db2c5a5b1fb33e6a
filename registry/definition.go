package registry

import (
	"github.com/neuronlabs/trackable/namespace"
	"github.com/neuronlabs/trackable/template"
)

// Definition is the registrable trackable definition. Both the message and the error
// definitions implement it.
type Definition interface {
	// Code gets the definition tracking code.
	Code() Code
	// Name gets the identifier of the definition within its namespace.
	Name() string
	// Namespace gets the namespace path of the definition.
	Namespace() namespace.Path
	// Template gets the parsed message template.
	Template() *template.Template
}
