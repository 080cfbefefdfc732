// Package parse provides safe text-to-value conversions. Every operation
// returns a Result whose failure is a ParseError carrying the original
// input and the name of the attempted target type.
//
// Highlights:
// - Int/Int64: integers, with WithBase for non-decimal input
// - Float64/Decimal: binary floats or exact decimals (shopspring)
// - Bool: strconv.ParseBool semantics
// - Time: multi-layout parsing with WithLayouts and WithLocation
// - UUID: RFC 4122 identifiers
//
// Blank input fails immediately; surrounding whitespace on otherwise valid
// input is ignored.
package parse
