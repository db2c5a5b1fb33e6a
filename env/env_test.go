package env

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neuronlabs/trackable/catalog"
	"github.com/neuronlabs/trackable/errdef"
	trackerrors "github.com/neuronlabs/trackable/errors"
	"github.com/neuronlabs/trackable/errors/class"
)

func setEnv(t *testing.T, name, value string) {
	require.NoError(t, os.Setenv(name, value))
	t.Cleanup(func() { os.Unsetenv(name) })
}

// TestValidated tests the required environment variables.
func TestValidated(t *testing.T) {
	l := NewLoader()

	t.Run("Defined", func(t *testing.T) {
		setEnv(t, "TRACKABLE_TEST_CLIENT_ID", "conjur-client")

		value, err := l.Validated("TRACKABLE_TEST_CLIENT_ID")
		require.NoError(t, err)
		assert.Equal(t, "conjur-client", value)
		assert.Equal(t, "conjur-client", l.MustValidated("TRACKABLE_TEST_CLIENT_ID"))
	})

	t.Run("Missing", func(t *testing.T) {
		_, err := l.Validated("TRACKABLE_TEST_CLIENT_SECRET")
		require.Error(t, err)

		assert.Equal(t, "Environment variable [TRACKABLE_TEST_CLIENT_SECRET] is not defined", err.Error())
		assert.True(t, errors.Is(err, catalog.MissingEnvVariable))
		assert.True(t, trackerrors.IsClass(err, class.ConfigEnvMissing))

		var e *errdef.Error
		require.True(t, errors.As(err, &e))
		assert.Equal(t, catalog.MissingEnvVariable, e.Definition())

		assert.Panics(t, func() { l.MustValidated("TRACKABLE_TEST_CLIENT_SECRET") })
	})

	t.Run("Blank", func(t *testing.T) {
		setEnv(t, "TRACKABLE_TEST_PROVIDER_URI", "   ")

		_, err := l.Validated("TRACKABLE_TEST_PROVIDER_URI")
		require.Error(t, err)
		assert.True(t, errors.Is(err, catalog.MissingEnvVariable))
	})
}

// TestFetch tests the environment variables with fallback values.
func TestFetch(t *testing.T) {
	l := NewLoader()
	assert.Equal(t, "http://conjur", l.Fetch("TRACKABLE_TEST_APPLIANCE_URL", "http://conjur"))

	setEnv(t, "TRACKABLE_TEST_APPLIANCE_URL", "https://conjur.example.com")
	assert.Equal(t, "https://conjur.example.com", l.Fetch("TRACKABLE_TEST_APPLIANCE_URL", "http://conjur"))
}
