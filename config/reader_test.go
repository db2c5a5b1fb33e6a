package config

import (
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neuronlabs/trackable/errors"
	"github.com/neuronlabs/trackable/errors/class"
)

// TestReadDefaultConfig tests the default config values.
func TestReadDefaultConfig(t *testing.T) {
	defaultConfig = nil
	defer func() { defaultConfig = nil }()

	t.Run("InvalidEnv", func(t *testing.T) {
		t.Setenv("TRACKABLE_LOG_LEVEL", "verbose")

		var err error
		require.NotPanics(t, func() { _, err = ReadDefaultConfig() })
		require.Error(t, err)
		assert.True(t, errors.IsClass(err, class.ConfigValueInvalid))
		assert.Nil(t, defaultConfig)
	})

	c, err := ReadDefaultConfig()
	require.NoError(t, err)
	require.NotNil(t, c)

	assert.Equal(t, "info", c.Log.Level)
	assert.False(t, c.Registry.StrictSeverity)
	assert.False(t, c.Registry.AllowLateRegistration)
	assert.Empty(t, c.Catalog.Files)

	t.Run("Cached", func(t *testing.T) {
		var wg sync.WaitGroup
		for i := 0; i < 4; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				cached, err := ReadDefaultConfig()
				assert.NoError(t, err)
				assert.Same(t, c, cached)
			}()
		}
		wg.Wait()
	})
}

// TestReadConfigFile tests reading the config files.
func TestReadConfigFile(t *testing.T) {
	t.Run("Yaml", func(t *testing.T) {
		c, err := ReadConfigFile("testdata/trackable.yaml")
		require.NoError(t, err)

		assert.Equal(t, "debug", c.Log.Level)
		assert.True(t, c.Registry.StrictSeverity)
		assert.False(t, c.Registry.AllowLateRegistration)
		assert.Equal(t, []string{"catalogs/authn-ldap.toml"}, c.Catalog.Files)
	})

	t.Run("EnvOverride", func(t *testing.T) {
		require.NoError(t, os.Setenv("TRACKABLE_REGISTRY_ALLOW_LATE_REGISTRATION", "true"))
		defer os.Unsetenv("TRACKABLE_REGISTRY_ALLOW_LATE_REGISTRATION")

		c, err := ReadConfigFile("testdata/trackable.yaml")
		require.NoError(t, err)
		assert.True(t, c.Registry.AllowLateRegistration)
	})

	t.Run("NotFound", func(t *testing.T) {
		_, err := ReadConfigFile("testdata/missing.yaml")
		require.Error(t, err)
		assert.True(t, errors.IsClass(err, class.ConfigReadNotFound))

		_, err = ReadNamedConfig("missing")
		require.Error(t, err)
		assert.True(t, errors.IsClass(err, class.ConfigReadNotFound))
	})

	t.Run("Invalid", func(t *testing.T) {
		_, err := ReadConfigFile("testdata/invalid.toml")
		require.Error(t, err)
		assert.True(t, errors.IsClass(err, class.ConfigValueInvalid))
	})
}

func TestLogSetLevel(t *testing.T) {
	var l *Log
	err := l.SetLevel()
	require.Error(t, err)
	assert.True(t, errors.IsClass(err, class.ConfigValueNil))

	err = (&Log{Level: "verbose"}).SetLevel()
	require.Error(t, err)
	assert.True(t, errors.IsClass(err, class.ConfigValueInvalid))
}
