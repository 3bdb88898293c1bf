// Package abstractfactory implements the Abstract Factory pattern: one
// factory interface producing a family of related products that are
// guaranteed to work together.
//
// The subject here is serialization. An encoder and a decoder only make sense
// as a matched pair - a JSON encoder with a YAML decoder is a bug - so rather
// than exposing encoders and decoders individually, the package exposes
// CodecFactory. Whichever factory the caller holds, the products it creates
// round-trip each other. Swapping the whole family (say, JSON for YAML on a
// config file) is a one-line change at the factory selection site, and no
// mixed pairing can be expressed by accident.
//
// # Usage
//
//	f, err := abstractfactory.For("yaml")
//	if err != nil { ... }
//
//	data, err := f.NewEncoder().Encode(cfg)
//	...
//	err = f.NewDecoder().Decode(data, &cfg)
//
// The JSON family is backed by github.com/goccy/go-json, the YAML family by
// gopkg.in/yaml.v3.
package abstractfactory
