package abstractfactory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/patternkit/pkg/abstractfactory"
)

type endpoint struct {
	Name    string   `json:"name" yaml:"name"`
	URL     string   `json:"url" yaml:"url"`
	Retries int      `json:"retries" yaml:"retries"`
	Tags    []string `json:"tags,omitempty" yaml:"tags,omitempty"`
}

func TestFor(t *testing.T) {
	t.Run("known formats", func(t *testing.T) {
		f, err := abstractfactory.For("json")
		require.NoError(t, err)
		assert.Equal(t, "json", f.Name())

		f, err = abstractfactory.For("yaml")
		require.NoError(t, err)
		assert.Equal(t, "yaml", f.Name())
	})

	t.Run("unknown format", func(t *testing.T) {
		_, err := abstractfactory.For("toml")
		require.Error(t, err)
		assert.True(t, abstractfactory.IsUnknownFormatError(err))

		var ufe *abstractfactory.UnknownFormatError
		require.ErrorAs(t, err, &ufe)
		assert.Equal(t, "toml", ufe.Name)
		assert.Contains(t, ufe.Known, "json")
		assert.Contains(t, ufe.Known, "yaml")
	})
}

func TestCodecFamilies_RoundTrip(t *testing.T) {
	in := endpoint{
		Name:    "billing",
		URL:     "https://billing.internal",
		Retries: 3,
		Tags:    []string{"critical", "pci"},
	}

	for _, name := range []string{"json", "yaml"} {
		t.Run(name, func(t *testing.T) {
			f, err := abstractfactory.For(name)
			require.NoError(t, err)

			data, err := f.NewEncoder().Encode(in)
			require.NoError(t, err)
			require.NotEmpty(t, data)

			var out endpoint
			require.NoError(t, f.NewDecoder().Decode(data, &out))
			assert.Equal(t, in, out, "products of one family must round-trip")
		})
	}
}

func TestJSONFamily(t *testing.T) {
	t.Run("content type", func(t *testing.T) {
		enc := abstractfactory.JSON().NewEncoder()
		assert.Equal(t, "application/json", enc.ContentType())
	})

	t.Run("compact by default", func(t *testing.T) {
		enc := abstractfactory.JSON().NewEncoder()
		data, err := enc.Encode(map[string]int{"a": 1})
		require.NoError(t, err)
		assert.Equal(t, `{"a":1}`, string(data))
	})

	t.Run("with indent", func(t *testing.T) {
		enc := abstractfactory.JSON(abstractfactory.WithIndent("  ")).NewEncoder()
		data, err := enc.Encode(map[string]int{"a": 1})
		require.NoError(t, err)
		assert.Equal(t, "{\n  \"a\": 1\n}", string(data))
	})

	t.Run("decode error on malformed input", func(t *testing.T) {
		var v endpoint
		err := abstractfactory.JSON().NewDecoder().Decode([]byte("{not json"), &v)
		assert.Error(t, err)
	})
}

func TestYAMLFamily(t *testing.T) {
	t.Run("content type", func(t *testing.T) {
		enc := abstractfactory.YAML().NewEncoder()
		assert.Equal(t, "application/yaml", enc.ContentType())
	})

	t.Run("decode error on malformed input", func(t *testing.T) {
		var v endpoint
		err := abstractfactory.YAML().NewDecoder().Decode([]byte(":\t:"), &v)
		assert.Error(t, err)
	})
}
