// Package env reads the environment variables required by the authenticators. Missing
// variables are reported with the catalog.MissingEnvVariable error.
package env

import (
	"strings"

	"github.com/spf13/viper"

	"github.com/neuronlabs/trackable/catalog"
	"github.com/neuronlabs/trackable/log"
)

// Loader reads the environment variables.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates new environment variables loader.
func NewLoader() *Loader {
	return &Loader{v: viper.New()}
}

// Validated gets the value of the environment variable 'name'. If the variable is not set
// or its value is blank the catalog.MissingEnvVariable error is raised.
func (l *Loader) Validated(name string) (string, error) {
	value := l.lookup(name)
	if strings.TrimSpace(value) == "" {
		log.Debugf("Environment variable: '%s' is not defined", name)
		return "", catalog.MissingEnvVariable.Raise(name)
	}
	return value, nil
}

// MustValidated gets the value of the environment variable 'name'. Panics if it is not defined.
func (l *Loader) MustValidated(name string) string {
	value, err := l.Validated(name)
	if err != nil {
		panic(err)
	}
	return value
}

// Fetch gets the value of the environment variable 'name' or the 'fallback' if it is not set.
func (l *Loader) Fetch(name, fallback string) string {
	if value := l.lookup(name); value != "" {
		return value
	}
	return fallback
}

func (l *Loader) lookup(name string) string {
	key := strings.ToLower(name)
	if err := l.v.BindEnv(key, name); err != nil {
		log.Debugf("Binding environment variable: '%s' failed: %v", name, err)
		return ""
	}
	return l.v.GetString(key)
}
