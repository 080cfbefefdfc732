// Package jsonx provides safe JSON encoding and decoding on top of
// encoding/json. Every operation returns a Result whose failure is a
// JSONError, so malformed input, cycles and unsupported types never leak
// raw library errors.
//
// Highlights:
// - Marshal/MarshalString: encode any value
// - Unmarshal/UnmarshalString: decode into a concrete T
// - WithIndent/WithEscapeHTML: encode shaping
// - WithUseNumber/WithDisallowUnknownFields: decode strictness
//
// Empty input and a JSON null decoded into a nillable target are reported
// as failures rather than silently producing zero values or nils.
package jsonx
