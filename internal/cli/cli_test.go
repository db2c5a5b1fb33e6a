package cli

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neuronlabs/trackable/catalog"
	"github.com/neuronlabs/trackable/errors"
	"github.com/neuronlabs/trackable/errors/class"
)

func execute(args ...string) (string, error) {
	cmd := NewRootCmd()
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(append([]string{"--no-color"}, args...))
	err := cmd.Execute()
	return buf.String(), err
}

func TestList(t *testing.T) {
	out, err := execute("list")
	require.NoError(t, err)
	assert.Contains(t, out, "CONJ00003D")
	assert.Contains(t, out, "Origin validated")
	assert.Contains(t, out, "23 definitions in all namespaces")

	t.Run("Namespace", func(t *testing.T) {
		out, err := execute("list", "LogMessages/Authentication/Security")
		require.NoError(t, err)
		assert.Contains(t, out, "CONJ00002D")
		assert.NotContains(t, out, "CONJ00003D")
		assert.Contains(t, out, "2 definitions in Log Messages > Authentication > Security")
	})

	t.Run("Files", func(t *testing.T) {
		out, err := execute("list", "--file", "testdata/authn-ldap.yaml")
		require.NoError(t, err)
		assert.Contains(t, out, "CONJ00101D")
		assert.Contains(t, out, "25 definitions in all namespaces")
	})

	t.Run("InvalidNamespace", func(t *testing.T) {
		_, err := execute("list", "LogMessages//Util")
		require.Error(t, err)
		assert.True(t, errors.IsClass(err, class.RegistryNamespaceInvalid))
	})
}

func TestShow(t *testing.T) {
	out, err := execute("show", "CONJ00007D")
	require.NoError(t, err)
	assert.Contains(t, out, "Name:      OIDCProviderUri")
	assert.Contains(t, out, "Kind:      message")
	assert.Contains(t, out, "Namespace: Log Messages > Authentication > Authn Oidc")
	assert.Contains(t, out, "Severity:  debug")
	assert.Contains(t, out, "Arity:     1")

	_, err = execute("show", "CONJ99999D")
	require.Error(t, err)
	assert.True(t, errors.IsClass(err, class.RegistryCodeUnknown))
}

func TestRender(t *testing.T) {
	out, err := execute("render", "CONJ00002D", "alice", "ldap-1")
	require.NoError(t, err)
	assert.Equal(t, "CONJ00002D User 'alice' is not authorized to authenticate with webservice 'ldap-1'\n", out)

	t.Run("Error", func(t *testing.T) {
		out, err := execute("render", "--file", "testdata/authn-ldap.yaml", "CONJ00102E", "cn=admin")
		require.NoError(t, err)
		assert.Equal(t, "CONJ00102E Bind as 'cn=admin' failed\n", out)
	})

	t.Run("Mismatch", func(t *testing.T) {
		_, err := execute("render", "CONJ00002D", "alice")
		require.Error(t, err)
		assert.True(t, errors.IsClass(err, class.TemplateRenderArgumentMismatch))
	})
}

func TestExport(t *testing.T) {
	out, err := execute("export", "--format", "json", "--naming", "snake")
	require.NoError(t, err)
	assert.Contains(t, out, `"name": "origin_validated"`)
	assert.Contains(t, out, `"name": "missing_env_variable"`)

	t.Run("Output", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "catalog.toml")
		_, err := execute("export", "--format", "toml", "-o", path, "--file", "testdata/authn-ldap.yaml")
		require.NoError(t, err)

		entries, err := catalog.ReadFile(path)
		require.NoError(t, err)
		assert.Len(t, entries, 27)
	})

	t.Run("UnknownFormat", func(t *testing.T) {
		_, err := execute("export", "--format", "xml")
		require.Error(t, err)
		assert.True(t, errors.IsClass(err, class.CatalogFileFormat))
	})
}

func TestAudit(t *testing.T) {
	out, err := execute("audit")
	require.NoError(t, err)
	assert.Contains(t, out, "OK 23 definitions")
	assert.Contains(t, out, "Log Messages > Util: 5 definitions")

	t.Run("Duplicate", func(t *testing.T) {
		out, err := execute("audit", "testdata/duplicate.toml")
		require.Error(t, err)
		assert.True(t, errors.IsClass(err, class.RegistryCodeDuplicate))
		assert.Contains(t, out, "FAIL")
		assert.Contains(t, out, "testdata/duplicate.toml")
	})

	t.Run("Strict", func(t *testing.T) {
		out, err := execute("audit", "testdata/no-severity.toml")
		require.NoError(t, err)
		assert.Contains(t, out, "OK 24 definitions")

		_, err = execute("audit", "--strict", "testdata/no-severity.toml")
		require.Error(t, err)
		assert.True(t, errors.IsClass(err, class.RegistryCodeInvalid))
	})
}

func TestInvalidConfig(t *testing.T) {
	t.Setenv("TRACKABLE_LOG_LEVEL", "verbose")

	var err error
	require.NotPanics(t, func() {
		_, err = execute("--config", filepath.Join("..", "..", "config", "testdata", "trackable.yaml"), "list")
	})
	require.Error(t, err)
	assert.True(t, errors.IsClass(err, class.ConfigValueInvalid))
}
