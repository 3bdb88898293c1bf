// Package prototype implements the Prototype pattern: new objects are
// produced by cloning pre-configured exemplars instead of constructing from
// scratch.
//
// The pattern pays off when an object is expensive or intricate to assemble -
// many defaulted fields, nested structures, configuration already applied -
// and most new instances are small variations of a known-good template. In Go
// the crux is deep copying: a naive struct copy shares maps and slices with
// the original, so mutating the "copy" corrupts the prototype. The Cloner
// contract makes the deep copy explicit and the Registry keeps named
// exemplars to spawn from.
//
// # Usage
//
//	reg := prototype.NewRegistry[*prototype.Document]()
//	reg.MustRegister("invoice", invoiceTemplate)
//
//	doc, err := reg.Clone("invoice")   // independent deep copy, fresh ID
//	doc.Title = "Invoice #1042"
//
// The bundled Document type is the worked example: cloned documents share no
// mutable state with their template and receive a fresh identity, which is
// exactly the behavior the tests pin down.
package prototype
