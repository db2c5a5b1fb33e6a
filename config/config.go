// Package config contains the configuration of the trackable message registry.
package config

import (
	"gopkg.in/go-playground/validator.v9"

	"github.com/neuronlabs/trackable/errors"
	"github.com/neuronlabs/trackable/errors/class"
	"github.com/neuronlabs/trackable/log"
)

var validate = validator.New()

// Config contains general configurations for the trackable registry.
type Config struct {
	// Log defines the logger configuration.
	Log *Log `mapstructure:"log" validate:"required"`
	// Registry defines the tracking code registry configuration.
	Registry *Registry `mapstructure:"registry" validate:"required"`
	// Catalog defines the catalog declarations configuration.
	Catalog *Catalog `mapstructure:"catalog" validate:"required"`
}

// Validate validates the config values.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return errors.New(class.ConfigValueInvalid, "invalid config").WithDetail(err.Error())
	}
	return nil
}

// Log is the logger configuration.
type Log struct {
	// Level is the current logging level.
	// Allowed values:
	// - debug3
	// - debug2
	// - debug
	// - info
	// - warning
	// - error
	// - critical
	Level string `mapstructure:"level" validate:"isdefault|oneof=debug3 debug2 debug info warning error critical"`
}

// SetLevel sets the configured level for the default logger.
func (l *Log) SetLevel() error {
	if l == nil {
		return errors.New(class.ConfigValueNil, "provided nil log config value")
	}
	if l.Level == "" {
		return nil
	}
	level := log.ParseLevel(l.Level)
	if level == log.LUNKNOWN {
		return errors.Newf(class.ConfigValueInvalid, "invalid 'log.level' value: '%s'", l.Level)
	}
	if log.Logger() == nil {
		log.Default()
	}
	return log.SetLevel(level)
}

// Registry is the tracking code registry configuration.
type Registry struct {
	// StrictSeverity enforces the tracking codes to end with the severity letter: D, I, W, E or F.
	StrictSeverity bool `mapstructure:"strict_severity"`
	// AllowLateRegistration keeps the default registry writable after the catalog is initialized.
	AllowLateRegistration bool `mapstructure:"allow_late_registration"`
}

// Catalog is the catalog declarations configuration.
type Catalog struct {
	// Files are the paths to additional catalog declaration files.
	// Supported formats are: toml, yaml and json.
	Files []string `mapstructure:"files" validate:"dive,required"`
}
