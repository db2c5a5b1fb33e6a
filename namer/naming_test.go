package namer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neuronlabs/trackable/errors"
	"github.com/neuronlabs/trackable/errors/class"
)

func TestGet(t *testing.T) {
	cases := map[string]string{
		"":           "OriginValidated",
		Identity:     "OriginValidated",
		Snake:        "origin_validated",
		Kebab:        "origin-validated",
		Camel:        "OriginValidated",
		"LowerCamel": "originValidated",
	}
	for convention, expected := range cases {
		n, err := Get(convention)
		require.NoError(t, err, convention)
		assert.Equal(t, expected, n("OriginValidated"), convention)
	}

	_, err := Get("pascal")
	require.Error(t, err)
	assert.True(t, errors.IsClass(err, class.ConfigValueInvalid))

	assert.Equal(t, []string{"camel", "identity", "kebab", "lowercamel", "snake"}, Conventions())
}
