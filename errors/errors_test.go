package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neuronlabs/trackable/errors/class"
)

// TestError tests the classified error functions.
func TestError(t *testing.T) {
	message := "some testing message"
	first := New(class.RegistryCodeUnknown, message)
	second := Newf(class.RegistryCodeUnknown, "formatted: '%d'", 2)

	assert.Equal(t, "some testing message", first.Error())
	assert.Equal(t, "formatted: '2'", second.Error())

	// check operations
	assert.True(t, strings.HasPrefix(first.Operation, "github.com/neuronlabs/trackable/errors.TestError#errors_test.go:"), first.Operation)
	assert.True(t, strings.HasPrefix(second.Operation, "github.com/neuronlabs/trackable/errors.TestError#errors_test.go:"), second.Operation)
	assert.NotEqual(t, first.Operation, second.Operation)

	assert.NotEqual(t, uuid.Nil, first.ID)
	assert.NotEqual(t, first.ID, second.ID)

	assert.Equal(t, class.RegistryCodeUnknown, first.Class())

	detail := "This is detail."
	first.WithDetail(detail)
	assert.Equal(t, detail, first.Details)

	second.WithDetailf("This is %dnd detail.", 2)
	assert.Equal(t, "This is 2nd detail.", second.Details)

	second.WrapDetail("Wrapped.")
	assert.Equal(t, "Wrapped. This is 2nd detail.", second.Details)
}

func TestIsClass(t *testing.T) {
	err := New(class.RegistryCodeDuplicate, "duplicated")

	assert.True(t, IsClass(err, class.RegistryCodeDuplicate))
	assert.False(t, IsClass(err, class.RegistryCodeUnknown))
	assert.True(t, IsMajor(err, class.MjrRegistry))
	assert.False(t, IsMajor(err, class.MjrTemplate))

	t.Run("Wrapped", func(t *testing.T) {
		wrapped := fmt.Errorf("initializing: %w", err)
		assert.True(t, IsClass(wrapped, class.RegistryCodeDuplicate))

		c, ok := ClassOf(wrapped)
		require.True(t, ok)
		assert.Equal(t, class.RegistryCodeDuplicate, c)
	})

	t.Run("NotClassified", func(t *testing.T) {
		plain := errors.New("plain")
		assert.False(t, IsClass(plain, class.RegistryCodeDuplicate))

		_, ok := ClassOf(plain)
		assert.False(t, ok)
	})
}

func TestWrap(t *testing.T) {
	cause := errors.New("no such file")
	err := Wrap(class.CatalogFileRead, cause, "reading catalog file")

	assert.Equal(t, "reading catalog file: no such file", err.Error())
	assert.True(t, errors.Is(err, cause))
}

func TestMultiError(t *testing.T) {
	var m MultiError
	assert.NoError(t, m.ErrorOrNil())

	first := New(class.RegistryCodeDuplicate, "first")
	m = append(m, first)
	assert.Equal(t, first, m.ErrorOrNil())

	m = append(m, New(class.RegistryCodeInvalid, "second"))
	assert.Equal(t, "first, second", m.ErrorOrNil().Error())
}
