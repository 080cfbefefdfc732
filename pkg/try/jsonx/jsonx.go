package jsonx

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"

	"github.com/ib-77/try/pkg/try"
)

var errTrailingData = errors.New("unexpected data after top-level value")

type config struct {
	indentPrefix    string
	indent          string
	hasIndent       bool
	escapeHTML      bool
	hasEscapeHTML   bool
	useNumber       bool
	disallowUnknown bool
}

// Option adjusts a single encode or decode.
type Option func(*config)

// WithIndent pretty-prints encoded output with the given prefix and
// per-level indent, as json.MarshalIndent does.
func WithIndent(prefix, indent string) Option {
	return func(c *config) {
		c.indentPrefix = prefix
		c.indent = indent
		c.hasIndent = true
	}
}

// WithEscapeHTML controls escaping of <, > and & in encoded output.
// Encoding escapes them unless this option turns it off.
func WithEscapeHTML(escape bool) Option {
	return func(c *config) {
		c.escapeHTML = escape
		c.hasEscapeHTML = true
	}
}

// WithUseNumber decodes JSON numbers into json.Number instead of float64.
func WithUseNumber() Option {
	return func(c *config) { c.useNumber = true }
}

// WithDisallowUnknownFields makes decoding fail when the input carries an
// object key the target struct has no field for.
func WithDisallowUnknownFields() Option {
	return func(c *config) { c.disallowUnknown = true }
}

func newConfig(opts []Option) config {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

func ok[T any](v T) try.Result[T, *try.JSONError] {
	return try.Success[T, *try.JSONError](v)
}

func fail[T any](err *try.JSONError) try.Result[T, *try.JSONError] {
	return try.Fail[T, *try.JSONError](err)
}

// Marshal encodes v to JSON. Encode failures (cycles, unsupported types,
// failing MarshalJSON implementations) become a JSONError with the cause.
func Marshal(v any, opts ...Option) try.Result[[]byte, *try.JSONError] {
	cfg := newConfig(opts)

	if !cfg.hasIndent && !cfg.hasEscapeHTML {
		data, err := json.Marshal(v)
		if err != nil {
			return fail[[]byte](try.NewJSONError("encode failed", err))
		}
		return ok(data)
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	if cfg.hasEscapeHTML {
		enc.SetEscapeHTML(cfg.escapeHTML)
	}
	if cfg.hasIndent {
		enc.SetIndent(cfg.indentPrefix, cfg.indent)
	}
	if err := enc.Encode(v); err != nil {
		return fail[[]byte](try.NewJSONError("encode failed", err))
	}
	// Encoder terminates every value with a newline; Marshal does not.
	return ok(bytes.TrimSuffix(buf.Bytes(), []byte("\n")))
}

// MarshalString is Marshal with a string payload.
func MarshalString(v any, opts ...Option) try.Result[string, *try.JSONError] {
	res := Marshal(v, opts...)
	if res.IsFailure() {
		return fail[string](res.Err())
	}
	return ok(string(res.Value()))
}

// Unmarshal decodes data into a T. Empty or whitespace-only input fails
// immediately; malformed input becomes a JSONError with the decoder's
// error as cause. Decoding JSON null into a nillable T is reported as a
// "null result" failure rather than handing the caller a nil.
func Unmarshal[T any](data []byte, opts ...Option) try.Result[T, *try.JSONError] {
	if len(bytes.TrimSpace(data)) == 0 {
		return fail[T](try.NewJSONError("empty input", nil))
	}
	cfg := newConfig(opts)

	var target T
	if cfg.useNumber || cfg.disallowUnknown {
		dec := json.NewDecoder(bytes.NewReader(data))
		if cfg.useNumber {
			dec.UseNumber()
		}
		if cfg.disallowUnknown {
			dec.DisallowUnknownFields()
		}
		if err := dec.Decode(&target); err != nil {
			return fail[T](try.NewJSONError("decode failed", err))
		}
		if _, err := dec.Token(); !errors.Is(err, io.EOF) {
			return fail[T](try.NewJSONError("decode failed", errTrailingData))
		}
	} else if err := json.Unmarshal(data, &target); err != nil {
		return fail[T](try.NewJSONError("decode failed", err))
	}

	if try.IsNil(target) {
		return fail[T](try.NewJSONError("null result", nil))
	}
	return ok(target)
}

// UnmarshalString is Unmarshal over a string payload.
func UnmarshalString[T any](text string, opts ...Option) try.Result[T, *try.JSONError] {
	return Unmarshal[T]([]byte(text), opts...)
}
