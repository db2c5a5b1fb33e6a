package class

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestClass tests the error classification system.
func TestClass(t *testing.T) {
	majors.reset()
	defer registerClasses()
	defer majors.reset()

	t.Run("RegisterMajor", func(t *testing.T) {
		defer majors.reset()

		m, err := RegisterMajor("TestingMajor")
		require.NoError(t, err)

		assert.True(t, m.Valid())
		assert.Equal(t, uint8(1), uint8(m))

		m, err = RegisterMajor("TestingMajor2", "second")
		require.NoError(t, err)

		assert.Equal(t, uint8(2), uint8(m))
		assert.Equal(t, "second", m.Description())
		assert.Len(t, Majors(), 2)
	})

	t.Run("DuplicatedMajor", func(t *testing.T) {
		defer majors.reset()

		_, err := RegisterMajor("TestingMajor")
		require.NoError(t, err)

		_, err = RegisterMajor("TestingMajor")
		require.Error(t, err)
	})

	t.Run("RegisterMinor", func(t *testing.T) {
		defer majors.reset()

		m, err := RegisterMajor("TestingMajor")
		require.NoError(t, err)

		minorName := "TestingMinor"

		minor, err := m.RegisterMinor(minorName)
		require.NoError(t, err)

		assert.Equal(t, minorName, minor.Name())
		assert.Len(t, m.Minors(), 1)

		_, err = m.RegisterMinor(minorName)
		require.Error(t, err)

		t.Run("RegisterIndex", func(t *testing.T) {
			indexName := "TestingIndex"

			index, err := minor.RegisterIndex(indexName)
			require.NoError(t, err)

			assert.True(t, index.Valid(), "%d", index.value)

			_, err = minor.RegisterIndex(indexName)
			require.Error(t, err)

			assert.Equal(t, indexName, index.Name())
			assert.Len(t, minor.Indexes(), 1)
		})
	})

	t.Run("InvalidMajor", func(t *testing.T) {
		defer majors.reset()

		_, err := Major(5).RegisterMinor("Minor")
		require.Error(t, err)

		_, err = Minor{value: 3, major: Major(5)}.RegisterIndex("Index")
		require.Error(t, err)
	})

	t.Run("NewClass", func(t *testing.T) {
		defer majors.reset()

		major, err := RegisterMajor("TestingMajor")
		require.NoError(t, err)

		minor, err := major.RegisterMinor("TestingMinor")
		require.NoError(t, err)

		index, err := minor.RegisterIndex("TestingIndex")
		require.NoError(t, err)

		class, err := NewClass(index)
		require.NoError(t, err)

		assert.Equal(t, Class(1<<(32-majorBitSize)|1<<(32-minorBitSize-majorBitSize)|1), class)
		assert.Equal(t, "00000010000000001000000000000001", fmt.Sprintf("%032b", class))

		assert.Equal(t, index.Value(), class.Index().Value())
		assert.Equal(t, minor.Value(), class.Minor().Value())
		assert.Equal(t, major, class.Major())
		assert.True(t, class.IsMajor(major))
		assert.True(t, class.IsMinor(minor))

		minorClass, err := NewMinorClass(minor)
		require.NoError(t, err)
		assert.Equal(t, minorClass.MjrMnrMasked(), class.MjrMnrMasked())
		assert.False(t, minorClass.Index().Valid())
	})

	t.Run("String", func(t *testing.T) {
		defer majors.reset()

		major, err := RegisterMajor("Major")
		require.NoError(t, err)

		minor, err := major.RegisterMinor("Minor")
		require.NoError(t, err)

		index, err := minor.RegisterIndex("Argument Mismatch")
		require.NoError(t, err)

		class, err := NewClass(index)
		require.NoError(t, err)

		assert.Equal(t, "MajorMinorArgumentMismatch", class.String())
		assert.Equal(t, "MajorMinor", MustNewMinorClass(minor).String())
	})
}

func TestRegisteredClasses(t *testing.T) {
	assert.Equal(t, "RegistryCodeDuplicate", RegistryCodeDuplicate.String())
	assert.Equal(t, "TemplateRenderArgumentMismatch", TemplateRenderArgumentMismatch.String())
	assert.Equal(t, "ConfigEnvMissing", ConfigEnvMissing.String())
	assert.Equal(t, "DomainRaised", DomainRaised.String())

	assert.True(t, RegistryCodeUnknown.IsMajor(MjrRegistry))
	assert.NotEqual(t, RegistryCodeDuplicate, RegistryCodeUnknown)
	assert.Equal(t, RegistryCodeDuplicate.MjrMnrMasked(), RegistryCodeUnknown.MjrMnrMasked())
}
