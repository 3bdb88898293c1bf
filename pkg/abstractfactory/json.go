package abstractfactory

import (
	"github.com/goccy/go-json"
)

// jsonFactory produces the JSON codec family.
type jsonFactory struct {
	indent string
}

// JSONOption configures the JSON family.
type JSONOption func(*jsonFactory)

// WithIndent enables pretty-printed output using the given indent string.
func WithIndent(indent string) JSONOption {
	return func(f *jsonFactory) { f.indent = indent }
}

// JSON returns the JSON codec family.
func JSON(opts ...JSONOption) CodecFactory {
	f := &jsonFactory{}
	for _, opt := range opts {
		if opt != nil {
			opt(f)
		}
	}
	return f
}

func (f *jsonFactory) Name() string { return FormatJSON }

func (f *jsonFactory) NewEncoder() Encoder {
	return &jsonEncoder{indent: f.indent}
}

func (f *jsonFactory) NewDecoder() Decoder {
	return jsonDecoder{}
}

type jsonEncoder struct {
	indent string
}

func (e *jsonEncoder) Encode(v any) ([]byte, error) {
	if e.indent != "" {
		return json.MarshalIndent(v, "", e.indent)
	}
	return json.Marshal(v)
}

func (e *jsonEncoder) ContentType() string { return "application/json" }

type jsonDecoder struct{}

func (jsonDecoder) Decode(data []byte, v any) error {
	return json.Unmarshal(data, v)
}
