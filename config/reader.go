package config

import (
	"os"
	"strings"
	"sync"

	"github.com/spf13/viper"

	"github.com/neuronlabs/trackable/errors"
	"github.com/neuronlabs/trackable/errors/class"
	"github.com/neuronlabs/trackable/log"
)

// EnvPrefix is the prefix of the environment variables overriding the config values,
// i.e. TRACKABLE_LOG_LEVEL overrides the 'log.level' key.
const EnvPrefix = "TRACKABLE"

var (
	defaultConfig *Config
	defaultLock   sync.Mutex
)

// ViperSetDefaults sets the default values for the viper config.
func ViperSetDefaults(v *viper.Viper) {
	setDefaults(v)
}

// ReadNamedConfig reads the config with the provided name from the working directory
// or the 'configs' directory.
func ReadNamedConfig(name string) (*Config, error) {
	v := newViper()
	v.SetConfigName(name)
	v.AddConfigPath(".")
	v.AddConfigPath("configs")
	return read(v)
}

// ReadConfig reads the config named 'trackable'.
func ReadConfig() (*Config, error) {
	return ReadNamedConfig("trackable")
}

// ReadConfigFile reads the config from the file at 'path'. The format is
// taken from the file extension.
func ReadConfigFile(path string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(path)
	return read(v)
}

// ReadDefaultConfig reads the default configuration. The values might be overridden
// by the environment variables. A successfully read config is cached and returned by
// the subsequent calls.
func ReadDefaultConfig() (*Config, error) {
	defaultLock.Lock()
	defer defaultLock.Unlock()

	if defaultConfig != nil {
		return defaultConfig, nil
	}
	c, err := unmarshal(newViper())
	if err != nil {
		log.Debugf("Reading default config failed: %v", err)
		return nil, err
	}
	defaultConfig = c
	return c, nil
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)
	return v
}

func read(v *viper.Viper) (*Config, error) {
	if err := v.ReadInConfig(); err != nil {
		switch err.(type) {
		case viper.ConfigFileNotFoundError:
			return nil, errors.Wrap(class.ConfigReadNotFound, err, "config not found")
		default:
			if os.IsNotExist(err) {
				return nil, errors.Wrap(class.ConfigReadNotFound, err, "config not found")
			}
			return nil, errors.Wrap(class.ConfigReadFormat, err, "reading config failed")
		}
	}
	log.Debugf("Reading config file: '%s'", v.ConfigFileUsed())
	return unmarshal(v)
}

func unmarshal(v *viper.Viper) (*Config, error) {
	c := &Config{}
	if err := v.Unmarshal(c); err != nil {
		log.Debugf("Unmarshaling Config failed. %v", err)
		return nil, errors.Wrap(class.ConfigReadFormat, err, "decoding config failed")
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Default values
func setDefaults(v *viper.Viper) {
	keys := map[string]interface{}{
		"log.level":                        "info",
		"registry.strict_severity":         false,
		"registry.allow_late_registration": false,
		"catalog.files":                    []string{},
	}

	for k, value := range keys {
		v.SetDefault(k, value)
	}
}
