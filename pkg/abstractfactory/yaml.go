package abstractfactory

import (
	"gopkg.in/yaml.v3"
)

// yamlFactory produces the YAML codec family.
type yamlFactory struct{}

// YAML returns the YAML codec family.
func YAML() CodecFactory {
	return yamlFactory{}
}

func (yamlFactory) Name() string { return FormatYAML }

func (yamlFactory) NewEncoder() Encoder { return yamlEncoder{} }

func (yamlFactory) NewDecoder() Decoder { return yamlDecoder{} }

type yamlEncoder struct{}

func (yamlEncoder) Encode(v any) ([]byte, error) {
	return yaml.Marshal(v)
}

func (yamlEncoder) ContentType() string { return "application/yaml" }

type yamlDecoder struct{}

func (yamlDecoder) Decode(data []byte, v any) error {
	return yaml.Unmarshal(data, v)
}
