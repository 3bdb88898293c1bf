package abstractfactory

// Encoder serializes values into the family's wire format.
type Encoder interface {
	Encode(v any) ([]byte, error)
	// ContentType returns the MIME type of the produced bytes.
	ContentType() string
}

// Decoder deserializes bytes produced by the same family's Encoder.
type Decoder interface {
	Decode(data []byte, v any) error
}

// CodecFactory produces a matched encoder/decoder family. Products created by
// one factory round-trip each other.
type CodecFactory interface {
	// Name identifies the family ("json", "yaml").
	Name() string
	NewEncoder() Encoder
	NewDecoder() Decoder
}

// For returns the codec family registered under name. Unknown names return
// an UnknownFormatError listing the available families.
func For(name string) (CodecFactory, error) {
	switch name {
	case FormatJSON:
		return JSON(), nil
	case FormatYAML:
		return YAML(), nil
	default:
		return nil, &UnknownFormatError{Name: name, Known: []string{FormatJSON, FormatYAML}}
	}
}

// Format names accepted by For.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)
