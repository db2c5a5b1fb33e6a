package template

import (
	"errors"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	trackerrors "github.com/neuronlabs/trackable/errors"
	"github.com/neuronlabs/trackable/errors/class"
)

// TestParse tests the placeholder parsing.
func TestParse(t *testing.T) {
	t.Run("NoPlaceholders", func(t *testing.T) {
		tmpl, err := Parse("Origin validated")
		require.NoError(t, err)

		assert.Empty(t, tmpl.Slots())
		assert.Equal(t, 0, tmpl.Arity())
		assert.Equal(t, "Origin validated", tmpl.Raw())
	})

	t.Run("Positional", func(t *testing.T) {
		tmpl, err := Parse("User '{0}' is not authorized to authenticate with webservice '{1}'")
		require.NoError(t, err)

		assert.Equal(t, []Slot{{Index: 0}, {Index: 1}}, tmpl.Slots())
		assert.Equal(t, 2, tmpl.Arity())
	})

	t.Run("Named", func(t *testing.T) {
		tmpl, err := Parse("Pod '{0-pod-name}', channel '{1-cahnnel-name}': {2-message-data}")
		require.NoError(t, err)

		assert.Equal(t, []Slot{
			{Index: 0, Name: "pod-name"},
			{Index: 1, Name: "cahnnel-name"},
			{Index: 2, Name: "message-data"},
		}, tmpl.Slots())
	})

	t.Run("AppearanceOrder", func(t *testing.T) {
		tmpl, err := Parse("{0} {2-second} {1}")
		require.NoError(t, err)

		slots := tmpl.Slots()
		require.Len(t, slots, 3)
		assert.Equal(t, 0, slots[0].Index)
		assert.Equal(t, 2, slots[1].Index)
		assert.Equal(t, "second", slots[1].Name)
		assert.Equal(t, 1, slots[2].Index)
		assert.Equal(t, 3, tmpl.Arity())
	})

	t.Run("Literals", func(t *testing.T) {
		for _, raw := range []string{"{", "{}", "{x}", "{0-}", "{0", "{0-name", "{-1}", "{ 0}", "}{"} {
			tmpl, err := Parse(raw)
			require.NoError(t, err, raw)
			assert.Empty(t, tmpl.Slots(), raw)

			rendered, err := tmpl.Render()
			require.NoError(t, err, raw)
			assert.Equal(t, raw, rendered)
		}
	})

	t.Run("LiteralBraceBeforeSlot", func(t *testing.T) {
		tmpl, err := Parse("{{0}}")
		require.NoError(t, err)

		require.Len(t, tmpl.Slots(), 1)
		rendered, err := tmpl.Render("value")
		require.NoError(t, err)
		assert.Equal(t, "{value}", rendered)
	})

	t.Run("NameWithBrace", func(t *testing.T) {
		tmpl, err := Parse("{0-a{b}")
		require.NoError(t, err)

		assert.Equal(t, []Slot{{Index: 0, Name: "a{b"}}, tmpl.Slots())
	})

	t.Run("IndexOutOfRange", func(t *testing.T) {
		_, err := Parse("{1024}")
		require.Error(t, err)
		assert.True(t, trackerrors.IsClass(err, class.TemplateParseIndex))

		_, err = Parse("{99999999999999999999999}")
		require.Error(t, err)
		assert.True(t, trackerrors.IsClass(err, class.TemplateParseIndex))

		assert.Panics(t, func() { MustParse("{2048-name}") })
	})

	t.Run("SlotsAreCopied", func(t *testing.T) {
		tmpl := MustParse("{0-user}")
		slots := tmpl.Slots()
		slots[0].Name = "changed"

		assert.Equal(t, "user", tmpl.Slots()[0].Name)
	})
}

// TestRender tests the template rendering.
func TestRender(t *testing.T) {
	t.Run("ScenarioA", func(t *testing.T) {
		tmpl := MustParse("User '{0}' is not authorized to authenticate with webservice '{1}'")

		rendered, err := tmpl.Render("alice", "ldap-1")
		require.NoError(t, err)
		assert.Equal(t, "User 'alice' is not authorized to authenticate with webservice 'ldap-1'", rendered)
	})

	t.Run("ScenarioB", func(t *testing.T) {
		tmpl := MustParse("Working with OIDC Provider {0-provider-uri}")

		rendered, err := tmpl.Render("https://idp.example.com")
		require.NoError(t, err)
		assert.Equal(t, "Working with OIDC Provider https://idp.example.com", rendered)
	})

	t.Run("NameInvariance", func(t *testing.T) {
		named, err := MustParse("{0-user} logged in").Render("bob")
		require.NoError(t, err)

		plain, err := MustParse("{0} logged in").Render("bob")
		require.NoError(t, err)

		assert.Equal(t, plain, named)
	})

	t.Run("Positional", func(t *testing.T) {
		tmpl := MustParse("first: {0}, second: {2}, third: {1}")

		rendered, err := tmpl.Render("A", "B", "C")
		require.NoError(t, err)
		assert.Equal(t, "first: A, second: C, third: B", rendered)
	})

	t.Run("RepeatedSlot", func(t *testing.T) {
		rendered, err := MustParse("{0}-{0-again}").Render("x")
		require.NoError(t, err)
		assert.Equal(t, "x-x", rendered)
	})

	t.Run("UnusedIndex", func(t *testing.T) {
		tmpl := MustParse("{0} and {2}")
		require.Equal(t, 3, tmpl.Arity())

		rendered, err := tmpl.Render("a", "unused", "c")
		require.NoError(t, err)
		assert.Equal(t, "a and c", rendered)
	})

	t.Run("Deterministic", func(t *testing.T) {
		tmpl := MustParse("Rate limited cache reached the '{0-limit}' limit and will not call target for the next '{1-seconds}' seconds")

		first, err := tmpl.Render(3, 60)
		require.NoError(t, err)
		second, err := tmpl.Render(3, 60)
		require.NoError(t, err)

		assert.Equal(t, first, second)
		assert.Equal(t, "Rate limited cache reached the '3' limit and will not call target for the next '60' seconds", first)
	})

	t.Run("ArgumentMismatch", func(t *testing.T) {
		tmpl := MustParse("Pod '{0-pod-name}' error : '{1}'")

		_, err := tmpl.Render("pod-1")
		require.Error(t, err)
		assert.True(t, trackerrors.IsClass(err, class.TemplateRenderArgumentMismatch))

		_, err = tmpl.Render("pod-1", "err", "extra")
		require.Error(t, err)
		assert.True(t, trackerrors.IsClass(err, class.TemplateRenderArgumentMismatch))

		_, err = MustParse("Security validated").Render("extra")
		require.Error(t, err)
		assert.True(t, trackerrors.IsClass(err, class.TemplateRenderArgumentMismatch))
	})
}

type podName string

func (p podName) String() string {
	return "pod/" + string(p)
}

// TestToString tests the argument conversion rule.
func TestToString(t *testing.T) {
	assert.Equal(t, "", ToString(nil))
	assert.Equal(t, "text", ToString("text"))
	assert.Equal(t, "42", ToString(42))
	assert.Equal(t, "-7", ToString(int64(-7)))
	assert.Equal(t, "1.5", ToString(1.5))
	assert.Equal(t, "true", ToString(true))
	assert.Equal(t, "bytes", ToString([]byte("bytes")))
	assert.Equal(t, "pod/web", ToString(podName("web")))
	assert.Equal(t, "1m0s", ToString(time.Minute))
	assert.Equal(t, "failure", ToString(errors.New("failure")))
	assert.Equal(t, "[a b]", ToString([]string{"a", "b"}))

	t.Run("NilPointers", func(t *testing.T) {
		var uri *url.URL
		var name *podName
		var err *url.Error
		var count *int

		assert.Equal(t, "", ToString(uri))
		assert.Equal(t, "", ToString(name))
		assert.Equal(t, "", ToString(err))
		assert.Equal(t, "", ToString(count))

		rendered, renderErr := MustParse("Working with OIDC Provider {0-provider-uri}").Render(uri)
		require.NoError(t, renderErr)
		assert.Equal(t, "Working with OIDC Provider ", rendered)
	})
}
