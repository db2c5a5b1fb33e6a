// Package namer contains the naming conventions used for the catalog identifiers.
package namer

import (
	"sort"
	"strings"

	"github.com/iancoleman/strcase"

	"github.com/neuronlabs/trackable/errors"
	"github.com/neuronlabs/trackable/errors/class"
)

// Namer is the function that change the name with some prepared formatting.
type Namer func(string) string

// Naming convention names.
const (
	Identity   = "identity"
	Snake      = "snake"
	Kebab      = "kebab"
	Camel      = "camel"
	LowerCamel = "lowercamel"
)

var conventions = map[string]Namer{
	Identity:   NamingIdentity,
	Snake:      NamingSnake,
	Kebab:      NamingKebab,
	Camel:      NamingCamel,
	LowerCamel: NamingLowerCamel,
}

// Get gets the Namer for the naming 'convention'. An empty convention results in the identity Namer.
func Get(convention string) (Namer, error) {
	if convention == "" {
		return NamingIdentity, nil
	}
	n, ok := conventions[strings.ToLower(convention)]
	if !ok {
		return nil, errors.Newf(class.ConfigValueInvalid, "unknown naming convention: '%s'", convention).
			WithDetailf("allowed conventions: %s", strings.Join(Conventions(), ", "))
	}
	return n, nil
}

// Conventions lists the supported naming conventions in alphabetical order.
func Conventions() []string {
	names := make([]string, 0, len(conventions))
	for name := range conventions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NamingIdentity is a Namer function that returns the 'raw' unchanged.
func NamingIdentity(raw string) string {
	return raw
}

// NamingSnake is a Namer function that converts the 'raw' into the 'snake_case_identifier'.
func NamingSnake(raw string) string {
	return strcase.ToSnake(raw)
}

// NamingKebab is a Namer function that converts the 'raw' into the 'kebab-case-identifier'.
func NamingKebab(raw string) string {
	return strcase.ToKebab(raw)
}

// NamingCamel is a Namer function that converts the 'raw' into the 'CamelCaseIdentifier'.
func NamingCamel(raw string) string {
	return strcase.ToCamel(raw)
}

// NamingLowerCamel is a Namer function that converts the 'raw' into the 'camelCaseIdentifier'.
func NamingLowerCamel(raw string) string {
	return strcase.ToLowerCamel(raw)
}
